package identity

import (
	"context"

	"github.com/venuedesk/venuedesk/internal/model"
)

// Credential carries the inputs a provider may use to authenticate
// a principal. The mock provider ignores it; a production provider
// would verify it.
type Credential struct {
	Handle string
	Secret string
}

// Provider resolves a credential and role claim into an actor and
// the role-typed profile that travels with it.
//
// Implementations return model.ErrIdentityResolution (possibly
// wrapped) when no principal can be resolved for the given inputs.
type Provider interface {
	Resolve(ctx context.Context, cred Credential, roleClaim model.Role) (model.Actor, model.Profile, error)
}
