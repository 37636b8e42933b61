package model

import (
	"fmt"
	"strings"
	"time"
)

// ActorID uniquely identifies an actor across the system
type ActorID string

// Role is the closed set of roles an actor can hold.
// A role is fixed for the lifetime of a session; changing
// role means establishing a new session.
type Role string

const (
	RoleGuest Role = "guest"
	RoleHost  Role = "host"
	RoleAdmin Role = "admin"
)

// Roles lists every valid role, in display order
func Roles() []Role {
	return []Role{RoleGuest, RoleHost, RoleAdmin}
}

// Valid reports whether the role is a member of the closed set
func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleHost, RoleAdmin:
		return true
	}
	return false
}

// ParseRole converts a string into a Role
// Returns ErrUnrecognizedRole for anything outside the closed set
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedRole, s)
	}
	return r, nil
}

// UnmarshalText implements encoding.TextUnmarshaler so roles can be
// decoded from config and serialized records
func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Actor is the authenticated principal bound to a session
type Actor struct {
	ID          ActorID   `json:"id"`
	Handle      string    `json:"handle"` // email or username, unique within the provider
	DisplayName string    `json:"display_name"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
