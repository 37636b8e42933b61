package model

import (
	"encoding/json"
	"fmt"
)

// Profile is the role-dependent supplementary data bound to a session
// alongside the actor. Each role carries its own typed payload; the
// session sets and clears actor and profile together.
type Profile interface {
	// ProfileRole returns the role the payload belongs to
	ProfileRole() Role
}

// GuestProfile carries guest-side booking preferences
type GuestProfile struct {
	Currency     string   `json:"currency"`
	SavedVenues  []string `json:"saved_venues,omitempty"`
	UpcomingTrip string   `json:"upcoming_trip,omitempty"`
}

// ProfileRole implements Profile
func (GuestProfile) ProfileRole() Role { return RoleGuest }

// HostProfile carries host-side listing metrics
type HostProfile struct {
	ListedVenues   int     `json:"listed_venues"`
	PendingReviews int     `json:"pending_reviews"`
	ResponseRate   float64 `json:"response_rate"`
}

// ProfileRole implements Profile
func (HostProfile) ProfileRole() Role { return RoleHost }

// AdminProfile carries the administrative scope granted to the actor
type AdminProfile struct {
	Scope       string `json:"scope"`
	CanSuspend  bool   `json:"can_suspend"`
	CanModerate bool   `json:"can_moderate"`
}

// ProfileRole implements Profile
func (AdminProfile) ProfileRole() Role { return RoleAdmin }

// profileEnvelope is the serialized form of a Profile: the role tag
// selects which payload type the data decodes into
type profileEnvelope struct {
	Role Role            `json:"role"`
	Data json.RawMessage `json:"data"`
}

// MarshalProfile encodes a profile into its tagged envelope form
func MarshalProfile(p Profile) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("marshal profile: nil profile")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal profile payload: %w", err)
	}
	return json.Marshal(profileEnvelope{Role: p.ProfileRole(), Data: data})
}

// UnmarshalProfile decodes a tagged envelope back into the typed
// profile for its role. An envelope carrying a role outside the
// closed set fails with ErrUnrecognizedRole.
func UnmarshalProfile(data []byte) (Profile, error) {
	var env profileEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal profile envelope: %w", err)
	}

	switch env.Role {
	case RoleGuest:
		var p GuestProfile
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return nil, fmt.Errorf("unmarshal guest profile: %w", err)
		}
		return p, nil
	case RoleHost:
		var p HostProfile
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return nil, fmt.Errorf("unmarshal host profile: %w", err)
		}
		return p, nil
	case RoleAdmin:
		var p AdminProfile
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return nil, fmt.Errorf("unmarshal admin profile: %w", err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedRole, env.Role)
	}
}
