// Package guard decides whether a view may be shown for the current
// session state.
package guard

import (
	"net/http"

	"github.com/dmitrijs2005/gophauth/internal/client/session"
	"github.com/gorilla/mux"
)

type Access int

const (
	Public Access = iota
	// Protected views need an authenticated session.
	Protected
	// GuestOnly views (landing, login, register) send signed-in users on.
	GuestOnly
)

type Decision int

const (
	Allow Decision = iota
	Redirect
	// Wait means the session is still being resolved.
	Wait
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Redirect:
		return "redirect"
	case Wait:
		return "wait"
	default:
		return "unknown"
	}
}

func Decide(state session.State, access Access) Decision {
	switch access {
	case Protected:
		switch state {
		case session.StateAuthenticated:
			return Allow
		case session.StateLoading:
			return Wait
		default:
			return Redirect
		}
	case GuestOnly:
		if state == session.StateAuthenticated {
			return Redirect
		}
		return Allow
	default:
		return Allow
	}
}

// StateSource is satisfied by *session.Store.
type StateSource interface {
	State() session.State
}

// Middleware applies Decide to every request. Redirects go to target with
// 303 See Other; Wait answers 503 with Retry-After.
func Middleware(src StateSource, access Access, target string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch Decide(src.State(), access) {
			case Redirect:
				http.Redirect(w, r, target, http.StatusSeeOther)
			case Wait:
				w.Header().Set("Retry-After", "1")
				http.Error(w, "session is loading, retry shortly", http.StatusServiceUnavailable)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
