package web

import (
	"net/http"

	"github.com/venuedesk/venuedesk/internal/web/middleware"
	"github.com/venuedesk/venuedesk/internal/web/nav"
)

// pageData assembles the shared layout data for a request: the
// navigation view built from this request's session snapshot plus
// any pending flash message. Returns false after writing an error
// response if the nav mapping failed (an out-of-set role reached
// the render path).
func (h *handlers) pageData(w http.ResponseWriter, r *http.Request, title string, data any) (PageData, bool) {
	snap := middleware.GetSession(r.Context())

	view, err := nav.ViewFor(snap, h.menu.IsOpen())
	if err != nil {
		h.logger.Error("navigation mapping failed: " + err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return PageData{}, false
	}

	return PageData{
		Title: title,
		Nav:   view,
		Flash: middleware.GetFlash(r.Context()),
		Data:  data,
	}, true
}
