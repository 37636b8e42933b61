package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/venuedesk/venuedesk/internal/dependencies/clock"
	"github.com/venuedesk/venuedesk/internal/model"
)

// MockConfig seeds the fixed actors served by the mock provider
type MockConfig struct {
	GuestHandle      string
	GuestDisplayName string
	HostHandle       string
	HostDisplayName  string
}

// DefaultMockConfig returns the stock development identities
func DefaultMockConfig() MockConfig {
	return MockConfig{
		GuestHandle:      "guest@venuedesk.dev",
		GuestDisplayName: "Sam Guest",
		HostHandle:       "host@venuedesk.dev",
		HostDisplayName:  "Harper Host",
	}
}

// MockProvider is a development identity provider holding two fixed
// actors keyed solely by role claim. The credential is ignored.
//
// A role claim outside {guest, host} fails with
// model.ErrIdentityResolution rather than silently defaulting,
// matching what a production provider would do with an ungrantable
// claim.
type MockProvider struct {
	guest        model.Actor
	guestProfile model.GuestProfile
	host         model.Actor
	hostProfile  model.HostProfile
}

// Ensure MockProvider implements the interface
var _ Provider = (*MockProvider)(nil)

// NewMockProvider creates a mock provider with actors seeded from cfg
func NewMockProvider(cfg MockConfig, clk clock.Clock) *MockProvider {
	now := clk.Now()

	return &MockProvider{
		guest: model.Actor{
			ID:          model.ActorID("a_" + uuid.NewString()),
			Handle:      cfg.GuestHandle,
			DisplayName: cfg.GuestDisplayName,
			Role:        model.RoleGuest,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		guestProfile: model.GuestProfile{
			Currency:    "USD",
			SavedVenues: []string{"v_rooftop_terrace", "v_garden_hall"},
		},
		host: model.Actor{
			ID:          model.ActorID("a_" + uuid.NewString()),
			Handle:      cfg.HostHandle,
			DisplayName: cfg.HostDisplayName,
			Role:        model.RoleHost,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		hostProfile: model.HostProfile{
			ListedVenues:   3,
			PendingReviews: 1,
			ResponseRate:   0.97,
		},
	}
}

// Resolve returns the fixed actor for the claimed role
func (p *MockProvider) Resolve(ctx context.Context, _ Credential, roleClaim model.Role) (model.Actor, model.Profile, error) {
	switch roleClaim {
	case model.RoleGuest:
		return p.guest, p.guestProfile, nil
	case model.RoleHost:
		return p.host, p.hostProfile, nil
	default:
		return model.Actor{}, nil, fmt.Errorf("%w: no mock actor for role claim %q", model.ErrIdentityResolution, roleClaim)
	}
}
