package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/venuedesk/venuedesk/internal/dependencies/mocks"
	"github.com/venuedesk/venuedesk/internal/identity"
	"github.com/venuedesk/venuedesk/internal/record/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	records := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	provider := identity.NewMockProvider(identity.DefaultMockConfig(), mockClock)

	app := newWithDependencies(records, mockClock, provider, logger)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
