package session

import (
	"encoding/json"
	"fmt"

	"github.com/venuedesk/venuedesk/internal/model"
)

// persistedSession is the serialized session record: the actor plus
// the tagged profile envelope. Load state is never persisted; it is
// recomputed as ready after hydration.
type persistedSession struct {
	Actor   model.Actor     `json:"actor"`
	Profile json.RawMessage `json:"profile"`
}

// encodeRecord serializes an actor/profile pair for the record store
func encodeRecord(actor model.Actor, profile model.Profile) ([]byte, error) {
	profileData, err := model.MarshalProfile(profile)
	if err != nil {
		return nil, err
	}
	return json.Marshal(persistedSession{
		Actor:   actor,
		Profile: profileData,
	})
}

// decodeRecord parses a persisted session record back into its
// actor/profile pair, rejecting records that violate the session
// invariants (missing actor identity, role outside the closed set,
// profile tagged with a different role than the actor holds).
func decodeRecord(data []byte) (*model.Actor, model.Profile, error) {
	var rec persistedSession
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, nil, fmt.Errorf("unmarshal session record: %w", err)
	}

	if rec.Actor.ID == "" {
		return nil, nil, fmt.Errorf("session record has no actor id")
	}
	if !rec.Actor.Role.Valid() {
		return nil, nil, fmt.Errorf("%w: %q", model.ErrUnrecognizedRole, rec.Actor.Role)
	}

	profile, err := model.UnmarshalProfile(rec.Profile)
	if err != nil {
		return nil, nil, err
	}
	if profile.ProfileRole() != rec.Actor.Role {
		return nil, nil, fmt.Errorf("session record profile role %q does not match actor role %q",
			profile.ProfileRole(), rec.Actor.Role)
	}

	actor := rec.Actor
	return &actor, profile, nil
}
