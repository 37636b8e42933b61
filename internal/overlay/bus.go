// Package overlay provides outside-interaction dismissal for
// transient UI overlays: a bus that routes user interaction events
// and a controller that closes an overlay when an interaction lands
// outside its bounds.
package overlay

import (
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Interaction is a single user interaction routed through the bus.
// Target is the slash-separated element path of whatever was
// interacted with (e.g. "nav/profile-menu/signout").
type Interaction struct {
	Target string
}

// Within reports whether the interaction target lies inside the
// element subtree rooted at bounds
func (i Interaction) Within(bounds string) bool {
	return i.Target == bounds || strings.HasPrefix(i.Target, bounds+"/")
}

// Bus fans interaction events out to attached listeners
type Bus struct {
	logger *slog.Logger

	mu        sync.Mutex
	listeners map[int]func(Interaction)
	next      int
}

// NewBus creates a new interaction bus
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Bus{
		logger:    logger.With(slog.String("component", "overlay-bus")),
		listeners: make(map[int]func(Interaction)),
	}
}

// Publish delivers an interaction to every attached listener.
// Listeners run outside the bus lock, so a listener may detach
// itself (or others) while handling the event.
func (b *Bus) Publish(i Interaction) {
	b.mu.Lock()
	fns := make([]func(Interaction), 0, len(b.listeners))
	for _, fn := range b.listeners {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(i)
	}
}

// ListenerCount returns the number of attached listeners
func (b *Bus) ListenerCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

// listen attaches a listener and returns its detach function.
// Detaching twice is safe.
func (b *Bus) listen(fn func(Interaction)) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.listeners[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.listeners, id)
	}
}
