package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/venuedesk/venuedesk/internal/identity"
	"github.com/venuedesk/venuedesk/internal/model"
	"github.com/venuedesk/venuedesk/internal/web/middleware"
	"github.com/venuedesk/venuedesk/internal/web/nav"
)

// signinData is the sign-in form's render data
type signinData struct {
	Handle string
	Next   string
	Error  string
}

// SignInPage renders the sign-in screen
func (h *handlers) SignInPage(w http.ResponseWriter, r *http.Request) {
	snap := middleware.GetSession(r.Context())
	if snap.Actor != nil {
		// Already signed in, go to the role's landing page
		h.redirectHome(w, r, snap.Actor.Role)
		return
	}

	data, ok := h.pageData(w, r, "Sign in", signinData{
		Next: r.URL.Query().Get("next"),
	})
	if !ok {
		return
	}
	h.renderer.Page(w, http.StatusOK, "signin", data)
}

// SignIn handles the sign-in form submission
func (h *handlers) SignIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderSignInError(w, r, "Invalid form data", "", "")
		return
	}

	handle := strings.TrimSpace(r.FormValue("handle"))
	next := r.FormValue("next")

	roleClaim, err := model.ParseRole(r.FormValue("role"))
	if err != nil {
		h.renderSignInError(w, r, "Choose a role to sign in as", handle, next)
		return
	}

	cred := identity.Credential{
		Handle: handle,
		Secret: r.FormValue("secret"),
	}

	actor, err := h.sessions.Login(r.Context(), cred, roleClaim)
	if err != nil {
		if errors.Is(err, model.ErrIdentityResolution) {
			h.renderSignInError(w, r, "We couldn't sign you in with those details", handle, next)
			return
		}
		h.logger.Error("sign-in failed", slog.String("error", err.Error()))
		h.renderSignInError(w, r, "Sign-in is unavailable right now, please try again", handle, next)
		return
	}

	middleware.SetFlash(w, "success", "Welcome back, "+actor.DisplayName+"!")

	if next != "" && strings.HasPrefix(next, "/") {
		http.Redirect(w, r, next, http.StatusSeeOther)
		return
	}
	h.redirectHome(w, r, actor.Role)
}

// SignOut handles the sign-out action. The notification and the
// redirect to the sign-in screen happen only after the session store
// has fully cleared both memory and the persisted record.
func (h *handlers) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context()); err != nil {
		h.logger.Error("sign-out failed", slog.String("error", err.Error()))
		middleware.SetFlash(w, "error", "Sign-out failed, please try again")
		http.Redirect(w, r, h.refererOrHome(r), http.StatusSeeOther)
		return
	}

	// The profile menu belongs to the signed-in nav; tear it down
	h.menu.Close()

	middleware.SetFlash(w, "info", "You have been signed out")
	http.Redirect(w, r, "/signin", http.StatusSeeOther)
}

func (h *handlers) renderSignInError(w http.ResponseWriter, r *http.Request, msg, handle, next string) {
	data, ok := h.pageData(w, r, "Sign in", signinData{
		Handle: handle,
		Next:   next,
		Error:  msg,
	})
	if !ok {
		return
	}
	h.renderer.Page(w, http.StatusUnprocessableEntity, "signin", data)
}

// redirectHome sends the actor to the landing page for their role
func (h *handlers) redirectHome(w http.ResponseWriter, r *http.Request, role model.Role) {
	path, err := nav.HomePathFor(role)
	if err != nil {
		h.logger.Error("no landing page for role", slog.String("role", string(role)))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func (h *handlers) refererOrHome(r *http.Request) string {
	if ref := r.Header.Get("Referer"); ref != "" && strings.HasPrefix(ref, "/") {
		return ref
	}
	return "/"
}
