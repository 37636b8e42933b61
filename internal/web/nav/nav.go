// Package nav maps session state to the navigation bar's view data.
// The role-to-entries mapping is a total function over the closed
// role set; an out-of-set role is a hard error, never an empty menu.
package nav

import (
	"fmt"

	"github.com/venuedesk/venuedesk/internal/model"
	"github.com/venuedesk/venuedesk/internal/session"
)

// Entry is a single navigation link
type Entry struct {
	Label string
	Path  string
}

// EntriesFor returns the navigation entries for a role. Every role
// in the closed set maps to a non-empty entry list; anything else
// fails with model.ErrUnrecognizedRole so a bad role value can never
// render an empty or ambiguous menu.
func EntriesFor(role model.Role) ([]Entry, error) {
	switch role {
	case model.RoleGuest:
		return []Entry{
			{Label: "Explore venues", Path: "/venues"},
			{Label: "My bookings", Path: "/guest"},
			{Label: "Saved", Path: "/guest#saved"},
		}, nil
	case model.RoleHost:
		return []Entry{
			{Label: "Host dashboard", Path: "/host"},
			{Label: "My listings", Path: "/host#listings"},
			{Label: "Reviews", Path: "/host#reviews"},
		}, nil
	case model.RoleAdmin:
		return []Entry{
			{Label: "Admin dashboard", Path: "/admin"},
			{Label: "Members", Path: "/admin#members"},
			{Label: "Moderation", Path: "/admin#moderation"},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnrecognizedRole, role)
	}
}

// HomePathFor returns the landing path for a signed-in role
func HomePathFor(role model.Role) (string, error) {
	switch role {
	case model.RoleGuest:
		return "/guest", nil
	case model.RoleHost:
		return "/host", nil
	case model.RoleAdmin:
		return "/admin", nil
	default:
		return "", fmt.Errorf("%w: %q", model.ErrUnrecognizedRole, role)
	}
}

// View is the navigation bar's render data
type View struct {
	Ready       bool
	SignedIn    bool
	DisplayName string
	Role        model.Role
	Entries     []Entry
	MenuOpen    bool
}

// ViewFor builds the navigation view from a session snapshot.
// Until the session is ready the view renders the neutral
// placeholder, never authenticated UI.
func ViewFor(snap session.Snapshot, menuOpen bool) (View, error) {
	if snap.State != session.LoadStateReady {
		return View{Ready: false}, nil
	}
	if snap.Actor == nil {
		return View{Ready: true}, nil
	}

	entries, err := EntriesFor(snap.Actor.Role)
	if err != nil {
		return View{}, err
	}

	return View{
		Ready:       true,
		SignedIn:    true,
		DisplayName: snap.Actor.DisplayName,
		Role:        snap.Actor.Role,
		Entries:     entries,
		MenuOpen:    menuOpen,
	}, nil
}
