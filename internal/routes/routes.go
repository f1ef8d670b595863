// Package routes models the closed set of public shell pages. Paths are
// normalized into a tagged Route so handlers never deal in free-form strings;
// anything outside the set coerces to the default route.
package routes

import "strings"

// Route identifies one public shell page.
type Route int

const (
	Home Route = iota
	Login
	Signup
)

// Default is the route unknown paths are coerced to.
const Default = Home

// Path returns the browser path for the route.
func (r Route) Path() string {
	switch r {
	case Login:
		return "/login"
	case Signup:
		return "/signup"
	default:
		return "/"
	}
}

// String returns the route name for logs and metrics labels.
func (r Route) String() string {
	switch r {
	case Login:
		return "login"
	case Signup:
		return "signup"
	default:
		return "home"
	}
}

// Normalize maps an arbitrary request path to a member of the route set.
// The boolean reports whether the path was recognized; unrecognized paths
// return (Default, false), so normalization never fails.
func Normalize(path string) (Route, bool) {
	p := strings.TrimRight(path, "/")
	if p == "" {
		return Home, true
	}
	switch p {
	case "/login":
		return Login, true
	case "/signup":
		return Signup, true
	}
	return Default, false
}

// All lists every member of the route set, in navigation order.
func All() []Route {
	return []Route{Home, Login, Signup}
}
