package web

import (
	"fmt"
	"net/http"

	"github.com/venuedesk/venuedesk/internal/model"
	"github.com/venuedesk/venuedesk/internal/web/middleware"
)

// Home renders the public landing page
func (h *handlers) Home(w http.ResponseWriter, r *http.Request) {
	data, ok := h.pageData(w, r, "Home", nil)
	if !ok {
		return
	}
	h.renderer.Page(w, http.StatusOK, "home", data)
}

// Venues renders the public venue listing placeholder
func (h *handlers) Venues(w http.ResponseWriter, r *http.Request) {
	data, ok := h.pageData(w, r, "Venues", nil)
	if !ok {
		return
	}
	h.renderer.Page(w, http.StatusOK, "venues", data)
}

// guestDashboardData is the guest dashboard's render data
type guestDashboardData struct {
	Currency    string
	SavedVenues []string
}

// GuestDashboard renders the guest's bookings screen
func (h *handlers) GuestDashboard(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.requireRole(w, r, model.RoleGuest)
	if !ok {
		return
	}

	guest, err := profileAs[model.GuestProfile](profile)
	if err != nil {
		h.renderProfileMismatch(w, err)
		return
	}

	data, ok := h.pageData(w, r, "My bookings", guestDashboardData{
		Currency:    guest.Currency,
		SavedVenues: guest.SavedVenues,
	})
	if !ok {
		return
	}
	h.renderer.Page(w, http.StatusOK, "guest_dashboard", data)
}

// hostDashboardData is the host dashboard's render data
type hostDashboardData struct {
	ListedVenues    int
	PendingReviews  int
	ResponseRatePct float64
}

// HostDashboard renders the host's metrics screen
func (h *handlers) HostDashboard(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.requireRole(w, r, model.RoleHost)
	if !ok {
		return
	}

	host, err := profileAs[model.HostProfile](profile)
	if err != nil {
		h.renderProfileMismatch(w, err)
		return
	}

	data, ok := h.pageData(w, r, "Host dashboard", hostDashboardData{
		ListedVenues:    host.ListedVenues,
		PendingReviews:  host.PendingReviews,
		ResponseRatePct: host.ResponseRate * 100,
	})
	if !ok {
		return
	}
	h.renderer.Page(w, http.StatusOK, "host_dashboard", data)
}

// AdminDashboard renders the admin screen
func (h *handlers) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.requireRole(w, r, model.RoleAdmin)
	if !ok {
		return
	}

	admin, err := profileAs[model.AdminProfile](profile)
	if err != nil {
		h.renderProfileMismatch(w, err)
		return
	}

	data, ok := h.pageData(w, r, "Admin dashboard", admin)
	if !ok {
		return
	}
	h.renderer.Page(w, http.StatusOK, "admin_dashboard", data)
}

// requireRole checks that the signed-in actor holds the given role,
// redirecting to their own landing page otherwise. The session
// middleware guarantees an actor is present on these routes.
func (h *handlers) requireRole(w http.ResponseWriter, r *http.Request, role model.Role) (model.Profile, bool) {
	snap := middleware.GetSession(r.Context())
	if snap.Actor == nil {
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
		return nil, false
	}

	if snap.Actor.Role != role {
		middleware.SetFlash(w, "error", "That screen is not available for your role")
		h.redirectHome(w, r, snap.Actor.Role)
		return nil, false
	}

	return snap.Profile, true
}

// profileAs asserts the profile to the payload type for the screen.
// The session invariant sets actor and profile together, so a
// mismatch here means corrupted state and the render path fails
// rather than guessing.
func profileAs[T model.Profile](profile model.Profile) (T, error) {
	typed, ok := profile.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("session profile is %T, expected %T", profile, zero)
	}
	return typed, nil
}

func (h *handlers) renderProfileMismatch(w http.ResponseWriter, err error) {
	h.logger.Error("profile mismatch: " + err.Error())
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
