package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/nebula-platform/nebula/internal/auth"
)

const testSecret = "unit-test-secret-key-not-for-production"

func TestGeneratePair(t *testing.T) {
	tm := auth.NewTokenManager(testSecret, time.Minute, time.Hour)

	pair, err := tm.GeneratePair("user-123")
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be non-empty")
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Fatal("access and refresh tokens must differ")
	}

	uid, err := tm.ParseAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if uid != "user-123" {
		t.Errorf("access subject = %q, want %q", uid, "user-123")
	}

	uid, err = tm.ParseRefresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("parse refresh: %v", err)
	}
	if uid != "user-123" {
		t.Errorf("refresh subject = %q, want %q", uid, "user-123")
	}
}

func TestParseRejectsWrongType(t *testing.T) {
	tm := auth.NewTokenManager(testSecret, time.Minute, time.Hour)
	pair, err := tm.GeneratePair("user-123")
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	if _, err := tm.ParseAccess(pair.RefreshToken); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("ParseAccess(refresh token) err = %v, want ErrInvalidToken", err)
	}
	if _, err := tm.ParseRefresh(pair.AccessToken); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("ParseRefresh(access token) err = %v, want ErrInvalidToken", err)
	}
}

func TestParseRejectsGarbageAndWrongKey(t *testing.T) {
	tm := auth.NewTokenManager(testSecret, time.Minute, time.Hour)

	if _, err := tm.ParseAccess("not-a-jwt"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("garbage token err = %v, want ErrInvalidToken", err)
	}

	other := auth.NewTokenManager("a-completely-different-secret", time.Minute, time.Hour)
	pair, err := other.GeneratePair("user-123")
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}
	if _, err := tm.ParseAccess(pair.AccessToken); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("wrong-key token err = %v, want ErrInvalidToken", err)
	}
}

func TestParseRejectsExpired(t *testing.T) {
	short := auth.NewTokenManager(testSecret, time.Nanosecond, time.Nanosecond)
	pair, err := short.GeneratePair("user-123")
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, err := short.ParseAccess(pair.AccessToken); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expired token err = %v, want ErrInvalidToken", err)
	}
}

func TestRefresh(t *testing.T) {
	tm := auth.NewTokenManager(testSecret, time.Minute, time.Hour)
	pair, err := tm.GeneratePair("user-123")
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	access, err := tm.Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	uid, err := tm.ParseAccess(access)
	if err != nil {
		t.Fatalf("parse refreshed access: %v", err)
	}
	if uid != "user-123" {
		t.Errorf("subject = %q, want %q", uid, "user-123")
	}

	// An access token must not be usable to refresh.
	if _, err := tm.Refresh(pair.AccessToken); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("Refresh(access token) err = %v, want ErrInvalidToken", err)
	}
}
