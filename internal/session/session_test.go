package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/venuedesk/venuedesk/internal/dependencies/mocks"
	"github.com/venuedesk/venuedesk/internal/identity"
	"github.com/venuedesk/venuedesk/internal/model"
	"github.com/venuedesk/venuedesk/internal/record"
	"github.com/venuedesk/venuedesk/internal/record/memory"
	"github.com/venuedesk/venuedesk/internal/testutil"
)

// countingProvider wraps a provider and counts Resolve calls
type countingProvider struct {
	inner    identity.Provider
	resolves int
}

func (p *countingProvider) Resolve(ctx context.Context, cred identity.Credential, claim model.Role) (model.Actor, model.Profile, error) {
	p.resolves++
	return p.inner.Resolve(ctx, cred, claim)
}

// faultyStore wraps a record store and fails operations on demand
type faultyStore struct {
	record.Store
	failWrites  bool
	failDeletes bool
}

var errStorageDown = errors.New("storage down")

func (f *faultyStore) Write(ctx context.Context, key string, data []byte) error {
	if f.failWrites {
		return errStorageDown
	}
	return f.Store.Write(ctx, key, data)
}

func (f *faultyStore) Delete(ctx context.Context, key string) error {
	if f.failDeletes {
		return errStorageDown
	}
	return f.Store.Delete(ctx, key)
}

type StoreSuite struct {
	suite.Suite
	records  *memory.Store
	faulty   *faultyStore
	provider *countingProvider
	store    *Store
	ctx      context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.records = memory.New()
	s.faulty = &faultyStore{Store: s.records}

	clk := mocks.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	s.provider = &countingProvider{inner: identity.NewMockProvider(identity.DefaultMockConfig(), clk)}

	s.store = New(s.faulty, s.provider, testutil.NopLogger())
	s.ctx = context.Background()
}

// login is a helper for tests that need an established session
func (s *StoreSuite) login(claim model.Role) model.Actor {
	s.store.Hydrate(s.ctx)
	actor, err := s.store.Login(s.ctx, identity.Credential{}, claim)
	s.Require().NoError(err)
	return actor
}

// Hydration tests

func (s *StoreSuite) TestHydrateWithNoRecordIsAnonymous() {
	s.store.Hydrate(s.ctx)

	s.Equal(LoadStateReady, s.store.State())
	_, ok := s.store.CurrentActor()
	s.False(ok)
	_, ok = s.store.CurrentProfile()
	s.False(ok)
}

func (s *StoreSuite) TestHydrateWithCorruptRecordIsAnonymous() {
	err := s.records.Write(s.ctx, RecordKey, []byte("{{{not json"))
	s.Require().NoError(err)

	s.store.Hydrate(s.ctx)

	s.Equal(LoadStateReady, s.store.State())
	_, ok := s.store.CurrentActor()
	s.False(ok)
}

func (s *StoreSuite) TestHydrateWithUnknownRoleInRecordIsAnonymous() {
	err := s.records.Write(s.ctx, RecordKey,
		[]byte(`{"actor":{"id":"a_1","handle":"x","display_name":"X","role":"superuser"},"profile":{"role":"superuser","data":{}}}`))
	s.Require().NoError(err)

	s.store.Hydrate(s.ctx)

	s.Equal(LoadStateReady, s.store.State())
	_, ok := s.store.CurrentActor()
	s.False(ok)
}

func (s *StoreSuite) TestHydrateWithMismatchedProfileRoleIsAnonymous() {
	// Guest actor carrying a host profile violates the session invariant
	actor, _, err := s.provider.Resolve(s.ctx, identity.Credential{}, model.RoleGuest)
	s.Require().NoError(err)

	data, err := encodeRecord(actor, model.HostProfile{ListedVenues: 1})
	s.Require().NoError(err)
	s.Require().NoError(s.records.Write(s.ctx, RecordKey, data))

	s.store.Hydrate(s.ctx)

	s.Equal(LoadStateReady, s.store.State())
	_, ok := s.store.CurrentActor()
	s.False(ok)
}

func (s *StoreSuite) TestHydrateIsIdempotent() {
	s.login(model.RoleHost)

	// Repeat hydration must not regress the ready state or re-read storage
	s.store.Hydrate(s.ctx)

	s.Equal(LoadStateReady, s.store.State())
	actor, ok := s.store.CurrentActor()
	s.True(ok)
	s.Equal(model.RoleHost, actor.Role)
}

func (s *StoreSuite) TestRehydrateRecoversSessionWithoutProvider() {
	logged := s.login(model.RoleHost)
	resolvesBefore := s.provider.resolves

	fresh := New(s.records, s.provider, testutil.NopLogger())
	fresh.Hydrate(s.ctx)

	actor, ok := fresh.CurrentActor()
	s.Require().True(ok)
	s.Equal(logged, actor)

	profile, ok := fresh.CurrentProfile()
	s.Require().True(ok)
	s.Equal(model.RoleHost, profile.ProfileRole())

	s.Equal(resolvesBefore, s.provider.resolves)
}

// Login tests

func (s *StoreSuite) TestLoginBindsActorAndProfile() {
	actor := s.login(model.RoleHost)

	s.Equal(model.RoleHost, actor.Role)

	current, ok := s.store.CurrentActor()
	s.Require().True(ok)
	s.Equal(actor, current)

	profile, ok := s.store.CurrentProfile()
	s.Require().True(ok)
	s.Equal(model.RoleHost, profile.ProfileRole())
}

func (s *StoreSuite) TestLoginWritesThroughToRecordStore() {
	actor := s.login(model.RoleGuest)

	data, err := s.records.Read(s.ctx, RecordKey)
	s.Require().NoError(err)

	persisted, profile, err := decodeRecord(data)
	s.Require().NoError(err)
	s.Equal(actor, *persisted)
	s.Equal(model.RoleGuest, profile.ProfileRole())
}

func (s *StoreSuite) TestLoginBeforeHydrationFails() {
	_, err := s.store.Login(s.ctx, identity.Credential{}, model.RoleHost)
	s.ErrorIs(err, model.ErrSessionNotReady)
}

func (s *StoreSuite) TestLoginFailsOnUnresolvableClaim() {
	s.store.Hydrate(s.ctx)

	_, err := s.store.Login(s.ctx, identity.Credential{}, model.RoleAdmin)
	s.ErrorIs(err, model.ErrIdentityResolution)

	_, ok := s.store.CurrentActor()
	s.False(ok)
	_, err = s.records.Read(s.ctx, RecordKey)
	s.ErrorIs(err, model.ErrRecordNotFound)
}

func (s *StoreSuite) TestLoginLeavesSessionUnchangedOnWriteFailure() {
	s.login(model.RoleGuest)

	s.faulty.failWrites = true
	_, err := s.store.Login(s.ctx, identity.Credential{}, model.RoleHost)
	s.Require().ErrorIs(err, errStorageDown)

	// Memory still reflects the guest session, not a half-applied host one
	actor, ok := s.store.CurrentActor()
	s.Require().True(ok)
	s.Equal(model.RoleGuest, actor.Role)

	data, err := s.records.Read(s.ctx, RecordKey)
	s.Require().NoError(err)
	persisted, _, err := decodeRecord(data)
	s.Require().NoError(err)
	s.Equal(model.RoleGuest, persisted.Role)
}

func (s *StoreSuite) TestLoginReplacesExistingSessionWholesale() {
	s.login(model.RoleGuest)

	actor, err := s.store.Login(s.ctx, identity.Credential{}, model.RoleHost)
	s.Require().NoError(err)
	s.Equal(model.RoleHost, actor.Role)

	profile, ok := s.store.CurrentProfile()
	s.Require().True(ok)
	s.Equal(model.RoleHost, profile.ProfileRole())
}

// Logout tests

func (s *StoreSuite) TestLogoutClearsSessionAndRecord() {
	s.login(model.RoleHost)

	s.Require().NoError(s.store.Logout(s.ctx))

	_, ok := s.store.CurrentActor()
	s.False(ok)
	_, ok = s.store.CurrentProfile()
	s.False(ok)

	_, err := s.records.Read(s.ctx, RecordKey)
	s.ErrorIs(err, model.ErrRecordNotFound)
}

func (s *StoreSuite) TestLogoutIsIdempotent() {
	s.login(model.RoleHost)

	s.Require().NoError(s.store.Logout(s.ctx))
	s.Require().NoError(s.store.Logout(s.ctx))

	_, ok := s.store.CurrentActor()
	s.False(ok)
}

func (s *StoreSuite) TestLogoutWhenAnonymousIsNoOp() {
	s.store.Hydrate(s.ctx)
	s.NoError(s.store.Logout(s.ctx))
}

func (s *StoreSuite) TestLogoutLeavesSessionOnDeleteFailure() {
	s.login(model.RoleHost)

	s.faulty.failDeletes = true
	err := s.store.Logout(s.ctx)
	s.Require().ErrorIs(err, errStorageDown)

	// Still logged in: memory never runs ahead of the persisted record
	actor, ok := s.store.CurrentActor()
	s.Require().True(ok)
	s.Equal(model.RoleHost, actor.Role)
}

// Sequencing tests

func (s *StoreSuite) TestLastTransitionWins() {
	s.store.Hydrate(s.ctx)

	_, err := s.store.Login(s.ctx, identity.Credential{}, model.RoleGuest)
	s.Require().NoError(err)
	_, err = s.store.Login(s.ctx, identity.Credential{}, model.RoleHost)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Logout(s.ctx))
	_, err = s.store.Login(s.ctx, identity.Credential{}, model.RoleGuest)
	s.Require().NoError(err)

	actor, ok := s.store.CurrentActor()
	s.Require().True(ok)
	s.Equal(model.RoleGuest, actor.Role)
}

func (s *StoreSuite) TestConcurrentTransitionsStaySerialized() {
	s.store.Hydrate(s.ctx)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_, _ = s.store.Login(s.ctx, identity.Credential{}, model.RoleHost)
			_ = s.store.Logout(s.ctx)
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	// Whatever interleaving happened, memory and the persisted record agree
	_, loggedIn := s.store.CurrentActor()
	_, err := s.records.Read(s.ctx, RecordKey)
	if loggedIn {
		s.NoError(err)
	} else {
		s.ErrorIs(err, model.ErrRecordNotFound)
	}
}

// Record codec tests

func (s *StoreSuite) TestRecordRoundTrip() {
	actor, profile, err := s.provider.Resolve(s.ctx, identity.Credential{}, model.RoleHost)
	s.Require().NoError(err)

	data, err := encodeRecord(actor, profile)
	s.Require().NoError(err)

	decodedActor, decodedProfile, err := decodeRecord(data)
	s.Require().NoError(err)
	s.Equal(actor, *decodedActor)
	s.Equal(profile, decodedProfile)
}

// Subscription tests

func (s *StoreSuite) TestSubscribeDeliversTransitions() {
	ch, cancel := s.store.Subscribe()
	defer cancel()

	s.store.Hydrate(s.ctx)
	snap := <-ch
	s.Equal(LoadStateReady, snap.State)
	s.Nil(snap.Actor)

	_, err := s.store.Login(s.ctx, identity.Credential{}, model.RoleHost)
	s.Require().NoError(err)
	snap = <-ch
	s.Require().NotNil(snap.Actor)
	s.Equal(model.RoleHost, snap.Actor.Role)

	s.Require().NoError(s.store.Logout(s.ctx))
	snap = <-ch
	s.Nil(snap.Actor)
	s.Nil(snap.Profile)
}

func (s *StoreSuite) TestSubscribeCancelReleasesSubscription() {
	_, cancel := s.store.Subscribe()
	s.Equal(1, s.store.SubscriberCount())

	cancel()
	s.Equal(0, s.store.SubscriberCount())

	// Cancel twice is safe
	cancel()
	s.Equal(0, s.store.SubscriberCount())
}

func (s *StoreSuite) TestSubscribersDoNotAccumulate() {
	for i := 0; i < 10; i++ {
		_, cancel := s.store.Subscribe()
		cancel()
	}
	s.Equal(0, s.store.SubscriberCount())
}
