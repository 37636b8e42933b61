package web

import (
	"net/http"
	"strings"

	"github.com/venuedesk/venuedesk/internal/overlay"
	"github.com/venuedesk/venuedesk/internal/web/middleware"
)

// ToggleMenu opens or closes the profile menu from the identity
// button in the navigation bar
func (h *handlers) ToggleMenu(w http.ResponseWriter, r *http.Request) {
	snap := middleware.GetSession(r.Context())
	if snap.Actor == nil {
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
		return
	}

	if h.menu.IsOpen() {
		h.menu.Close()
	} else {
		h.menu.Open()
	}

	http.Redirect(w, r, h.refererOrHome(r), http.StatusSeeOther)
}

// Interaction routes a page interaction through the overlay bus.
// The target is the slash-separated element path that was clicked;
// any open overlay whose bounds do not contain it dismisses itself.
func (h *handlers) Interaction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	target := strings.TrimSpace(r.FormValue("target"))
	if target == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	h.interactions.Publish(overlay.Interaction{Target: target})

	http.Redirect(w, r, h.refererOrHome(r), http.StatusSeeOther)
}
