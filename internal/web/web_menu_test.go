package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileMenuToggle(t *testing.T) {
	ts := newWebTestServer(t)
	ts.signIn("guest@venuedesk.dev", "guest")

	// Menu starts closed
	rr := ts.get("/guest")
	doc := parseHTML(rr.Body)
	assertNotContainsElement(t, doc, "#profile-menu")

	// Clicking the identity button opens it
	rr = ts.post("/nav/menu", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	rr = ts.get("/guest")
	doc = parseHTML(rr.Body)
	assertContainsElement(t, doc, "#profile-menu")
	assertContainsElement(t, doc, "#signout")

	// Clicking it again closes it
	rr = ts.post("/nav/menu", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	rr = ts.get("/guest")
	doc = parseHTML(rr.Body)
	assertNotContainsElement(t, doc, "#profile-menu")
}

func TestProfileMenuAnonymous(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/nav/menu", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/signin", rr.Header().Get("Location"))
}

func TestProfileMenuDismissedByOutsideInteraction(t *testing.T) {
	ts := newWebTestServer(t)
	ts.signIn("guest@venuedesk.dev", "guest")

	ts.post("/nav/menu", nil)

	// An interaction elsewhere on the page closes the menu
	rr := ts.post("/ui/interaction", url.Values{"target": {"page/hero"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	rr = ts.get("/guest")
	doc := parseHTML(rr.Body)
	assertNotContainsElement(t, doc, "#profile-menu")
}

func TestProfileMenuSurvivesInsideInteraction(t *testing.T) {
	ts := newWebTestServer(t)
	ts.signIn("guest@venuedesk.dev", "guest")

	ts.post("/nav/menu", nil)

	// Interacting within the menu's own bounds keeps it open
	rr := ts.post("/ui/interaction", url.Values{"target": {"nav/profile-menu/signout"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	rr = ts.get("/guest")
	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "#profile-menu")
}

func TestInteractionRequiresTarget(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/ui/interaction", url.Values{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSignOutClosesMenu(t *testing.T) {
	ts := newWebTestServer(t)
	ts.signIn("guest@venuedesk.dev", "guest")

	ts.post("/nav/menu", nil)
	ts.post("/signout", nil)

	// Sign back in: the menu must not still be open from before
	ts.signIn("guest@venuedesk.dev", "guest")
	rr := ts.get("/guest")
	doc := parseHTML(rr.Body)
	assertNotContainsElement(t, doc, "#profile-menu")
}
