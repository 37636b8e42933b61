package middleware

import (
	"context"
	"net/http"

	"github.com/venuedesk/venuedesk/internal/session"
)

type contextKey string

const sessionContextKey contextKey = "session"

// GetSession retrieves the session snapshot taken for this request.
// Handlers must read the snapshot from context on every render
// rather than caching an actor across requests, so a logout is
// observed on the very next request.
func GetSession(ctx context.Context) session.Snapshot {
	snap, _ := ctx.Value(sessionContextKey).(session.Snapshot)
	return snap
}

// Session returns middleware that snapshots the session store into
// the request context
func Session(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), sessionContextKey, store.Snapshot())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireActor returns middleware gating a route on a signed-in
// actor. An anonymous session is redirected to the sign-in screen;
// a session that has not finished hydrating gets a retryable 503
// rather than a flash of wrong content.
func RequireActor() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			snap := GetSession(r.Context())

			if snap.State != session.LoadStateReady {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "Session loading", http.StatusServiceUnavailable)
				return
			}
			if snap.Actor == nil {
				http.Redirect(w, r, "/signin?next="+r.URL.Path, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
