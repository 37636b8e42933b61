package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/venuedesk/venuedesk/internal/config"
	"github.com/venuedesk/venuedesk/internal/identity"
	"github.com/venuedesk/venuedesk/internal/model"
	"github.com/venuedesk/venuedesk/internal/session"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: full session lifecycle from cold start through sign-out
func (s *IntegrationSuite) TestSessionLifecycle() {
	// Step 1: Cold start hydrates to an anonymous ready session
	s.app.Sessions.Hydrate(s.ctx)
	snap := s.app.Sessions.Snapshot()
	s.Equal(session.LoadStateReady, snap.State)
	s.Nil(snap.Actor)

	// Step 2: Sign in as a guest
	cred := identity.Credential{Handle: "guest@venuedesk.dev", Secret: "pw"}
	_, err := s.app.Sessions.Login(s.ctx, cred, model.RoleGuest)
	s.Require().NoError(err)

	snap = s.app.Sessions.Snapshot()
	s.Require().NotNil(snap.Actor)
	s.Equal(model.RoleGuest, snap.Actor.Role)
	s.Equal("Sam Guest", snap.Actor.DisplayName)

	// Step 3: A fresh store over the same records recovers the session
	// without consulting the identity provider
	restarted := session.New(s.app.Records, s.app.Provider, nil)
	restarted.Hydrate(s.ctx)
	restored := restarted.Snapshot()
	s.Require().NotNil(restored.Actor)
	s.Equal(snap.Actor.ID, restored.Actor.ID)
	s.Equal(model.RoleGuest, restored.Profile.ProfileRole())

	// Step 4: Sign out clears both stores through the shared records
	s.Require().NoError(s.app.Sessions.Logout(s.ctx))
	s.Nil(s.app.Sessions.Snapshot().Actor)

	again := session.New(s.app.Records, s.app.Provider, nil)
	again.Hydrate(s.ctx)
	s.Nil(again.Snapshot().Actor)
}

// Test: switching roles replaces the persisted session wholesale
func (s *IntegrationSuite) TestRoleSwitchReplacesSession() {
	s.app.Sessions.Hydrate(s.ctx)

	cred := identity.Credential{Handle: "guest@venuedesk.dev", Secret: "pw"}
	_, err := s.app.Sessions.Login(s.ctx, cred, model.RoleGuest)
	s.Require().NoError(err)

	cred = identity.Credential{Handle: "host@venuedesk.dev", Secret: "pw"}
	_, err = s.app.Sessions.Login(s.ctx, cred, model.RoleHost)
	s.Require().NoError(err)

	snap := s.app.Sessions.Snapshot()
	s.Require().NotNil(snap.Actor)
	s.Equal(model.RoleHost, snap.Actor.Role)
	s.Equal(model.RoleHost, snap.Profile.ProfileRole())

	restarted := session.New(s.app.Records, s.app.Provider, nil)
	restarted.Hydrate(s.ctx)
	restored := restarted.Snapshot()
	s.Require().NotNil(restored.Actor)
	s.Equal(model.RoleHost, restored.Actor.Role)
}

func TestNewDefaultsToMemoryBackend(t *testing.T) {
	app, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if app.Records == nil || app.Sessions == nil || app.Interactions == nil {
		t.Fatal("expected all components wired")
	}
}

func TestNewWiresSQLiteBackend(t *testing.T) {
	app, err := New(Config{Storage: config.StorageConfig{
		Backend:    config.StorageSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "records.db"),
	}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := context.Background()
	app.Sessions.Hydrate(ctx)
	_, err = app.Sessions.Login(ctx, identity.Credential{Handle: "guest@venuedesk.dev"}, model.RoleGuest)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := app.Records.Read(ctx, session.RecordKey); err != nil {
		t.Fatalf("expected session record persisted to sqlite, got %v", err)
	}
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	_, err := New(Config{Storage: config.StorageConfig{Backend: "cassette"}})
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
