package response

import (
	"encoding/json"
	"time"

	"github.com/venuedesk/venuedesk/internal/model"
	"github.com/venuedesk/venuedesk/internal/session"
)

// Actor represents a signed-in actor in API responses
type Actor struct {
	ID          string    `json:"id"`
	Handle      string    `json:"handle"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// ActorFromModel converts a model.Actor to a response Actor
func ActorFromModel(a *model.Actor) Actor {
	return Actor{
		ID:          string(a.ID),
		Handle:      a.Handle,
		DisplayName: a.DisplayName,
		Role:        string(a.Role),
		CreatedAt:   a.CreatedAt,
	}
}

// Session is the response for session endpoints. Profile carries the
// tagged role envelope so clients can decode it with the same codec
// the record store uses.
type Session struct {
	State   string          `json:"state"`
	Actor   *Actor          `json:"actor,omitempty"`
	Profile json.RawMessage `json:"profile,omitempty"`
}

// SessionFromSnapshot creates a Session from a session snapshot
func SessionFromSnapshot(snap session.Snapshot) (Session, error) {
	resp := Session{State: snap.State.String()}
	if snap.Actor != nil {
		actor := ActorFromModel(snap.Actor)
		resp.Actor = &actor

		profile, err := model.MarshalProfile(snap.Profile)
		if err != nil {
			return Session{}, err
		}
		resp.Profile = profile
	}
	return resp, nil
}

// Health is the response for the health endpoint
type Health struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}
