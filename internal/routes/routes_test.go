package routes_test

import (
	"testing"

	"github.com/nebula-platform/nebula/internal/routes"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		want       routes.Route
		recognized bool
	}{
		{"root", "/", routes.Home, true},
		{"empty", "", routes.Home, true},
		{"login", "/login", routes.Login, true},
		{"signup", "/signup", routes.Signup, true},
		{"login trailing slash", "/login/", routes.Login, true},
		{"signup trailing slashes", "/signup//", routes.Signup, true},
		{"unknown", "/register", routes.Default, false},
		{"unknown nested", "/login/extra", routes.Default, false},
		{"case sensitive", "/Login", routes.Default, false},
		{"garbage", "/%2e%2e", routes.Default, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := routes.Normalize(tt.path)
			if got != tt.want || ok != tt.recognized {
				t.Errorf("Normalize(%q) = (%v, %v), want (%v, %v)",
					tt.path, got, ok, tt.want, tt.recognized)
			}
		})
	}
}

func TestPathRoundTrip(t *testing.T) {
	for _, r := range routes.All() {
		got, ok := routes.Normalize(r.Path())
		if !ok {
			t.Errorf("Normalize(%q) not recognized", r.Path())
		}
		if got != r {
			t.Errorf("Normalize(%q) = %v, want %v", r.Path(), got, r)
		}
	}
}

func TestNormalizeIsTotal(t *testing.T) {
	// Any input maps to a valid member of the set.
	for _, p := range []string{"", "/", "/x", "///", "/dashboard", "no-slash", "/login?next=1"} {
		r, _ := routes.Normalize(p)
		if r != routes.Home && r != routes.Login && r != routes.Signup {
			t.Errorf("Normalize(%q) produced out-of-set route %d", p, int(r))
		}
	}
}
