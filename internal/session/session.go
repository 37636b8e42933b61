package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/venuedesk/venuedesk/internal/identity"
	"github.com/venuedesk/venuedesk/internal/model"
	"github.com/venuedesk/venuedesk/internal/record"
)

// RecordKey is the fixed key the session record is persisted under
const RecordKey = "venuedesk:session:current"

// LoadState tracks whether the session has finished hydrating.
// It only ever moves forward: uninitialized -> hydrating -> ready.
type LoadState int

const (
	LoadStateUninitialized LoadState = iota
	LoadStateHydrating
	LoadStateReady
)

// String returns the state name for logging
func (s LoadState) String() string {
	switch s {
	case LoadStateUninitialized:
		return "uninitialized"
	case LoadStateHydrating:
		return "hydrating"
	case LoadStateReady:
		return "ready"
	default:
		return fmt.Sprintf("LoadState(%d)", int(s))
	}
}

// Snapshot is a point-in-time view of the session handed to
// subscribers and read-side consumers. Actor and Profile are nil
// together when the session is anonymous.
type Snapshot struct {
	State   LoadState
	Actor   *model.Actor
	Profile model.Profile
}

// Store is the sole owner and mutator of session state: the single
// source of truth consumers read from, and the only place the record
// store is touched.
//
// Mutating operations (Hydrate, Login, Logout) are serialized under
// one mutex, so two transitions issued in quick succession resolve
// in issue order and the later one wins. Reads never block on a
// mutation in flight; they observe the last committed state.
type Store struct {
	records  record.Store
	provider identity.Provider
	logger   *slog.Logger

	opMu sync.Mutex // serializes mutating operations in issue order

	mu      sync.RWMutex // guards the committed state below
	state   LoadState
	actor   *model.Actor
	profile model.Profile

	watchMu     sync.Mutex
	watchers    map[int]chan Snapshot
	nextWatcher int
}

// New creates a session store. The store starts uninitialized;
// callers must Hydrate it once at process start before serving
// consumers.
func New(records record.Store, provider identity.Provider, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Store{
		records:  records,
		provider: provider,
		logger:   logger.With(slog.String("component", "session")),
		state:    LoadStateUninitialized,
		watchers: make(map[int]chan Snapshot),
	}
}

// Hydrate loads the persisted session record into memory. It runs at
// most once: repeat calls are no-ops. A missing or malformed record
// is not an error; the session settles to anonymous. Hydrate always
// leaves the store ready.
func (s *Store) Hydrate(ctx context.Context) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	if s.state != LoadStateUninitialized {
		s.mu.Unlock()
		return
	}
	s.state = LoadStateHydrating
	s.mu.Unlock()

	actor, profile := s.readPersisted(ctx)

	s.mu.Lock()
	s.actor = actor
	s.profile = profile
	s.state = LoadStateReady
	s.mu.Unlock()

	if actor != nil {
		s.logger.Info("session hydrated",
			slog.String("actor_id", string(actor.ID)),
			slog.String("role", string(actor.Role)))
	} else {
		s.logger.Info("session hydrated anonymous")
	}
	s.notify()
}

// readPersisted fetches and decodes the session record, mapping every
// failure mode to "never logged in"
func (s *Store) readPersisted(ctx context.Context) (*model.Actor, model.Profile) {
	data, err := s.records.Read(ctx, RecordKey)
	if err != nil {
		if !errors.Is(err, model.ErrRecordNotFound) {
			s.logger.Warn("session record unreadable, starting anonymous",
				slog.String("error", err.Error()))
		}
		return nil, nil
	}

	actor, profile, err := decodeRecord(data)
	if err != nil {
		s.logger.Warn("session record corrupt, starting anonymous",
			slog.String("error", err.Error()))
		return nil, nil
	}
	return actor, profile
}

// Login resolves an actor through the identity provider and binds it
// to the session: write-through to the record store first, then the
// in-memory commit. On any failure the session is left unchanged.
func (s *Store) Login(ctx context.Context, cred identity.Credential, roleClaim model.Role) (model.Actor, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if s.State() != LoadStateReady {
		return model.Actor{}, model.ErrSessionNotReady
	}

	actor, profile, err := s.provider.Resolve(ctx, cred, roleClaim)
	if err != nil {
		return model.Actor{}, fmt.Errorf("resolve identity: %w", err)
	}

	data, err := encodeRecord(actor, profile)
	if err != nil {
		return model.Actor{}, fmt.Errorf("encode session record: %w", err)
	}

	if err := s.records.Write(ctx, RecordKey, data); err != nil {
		return model.Actor{}, fmt.Errorf("persist session record: %w", err)
	}

	s.mu.Lock()
	committed := actor
	s.actor = &committed
	s.profile = profile
	s.mu.Unlock()

	s.logger.Info("session established",
		slog.String("actor_id", string(actor.ID)),
		slog.String("role", string(actor.Role)))
	s.notify()

	return actor, nil
}

// Logout clears the bound actor and deletes the persisted record.
// Logging out of an anonymous session is a no-op, not an error. If
// the record delete fails the in-memory session is left unchanged so
// the UI never shows logged-out with a live persisted record.
func (s *Store) Logout(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.RLock()
	anonymous := s.actor == nil
	s.mu.RUnlock()
	if anonymous {
		return nil
	}

	if err := s.records.Delete(ctx, RecordKey); err != nil {
		return fmt.Errorf("delete session record: %w", err)
	}

	s.mu.Lock()
	s.actor = nil
	s.profile = nil
	s.mu.Unlock()

	s.logger.Info("session cleared")
	s.notify()
	return nil
}

// CurrentActor returns the bound actor, if any. Pure read; never
// blocks on mutations in flight.
func (s *Store) CurrentActor() (model.Actor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.actor == nil {
		return model.Actor{}, false
	}
	return *s.actor, true
}

// CurrentProfile returns the profile bound alongside the actor, if any
func (s *Store) CurrentProfile() (model.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.profile == nil {
		return nil, false
	}
	return s.profile, true
}

// State returns the current load state
func (s *Store) State() LoadState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Snapshot returns the committed state as one consistent view
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{State: s.state, Profile: s.profile}
	if s.actor != nil {
		actor := *s.actor
		snap.Actor = &actor
	}
	return snap
}
