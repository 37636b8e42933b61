package overlay

import "sync"

// Controller manages one transient overlay (a dropdown, a profile
// menu). While the overlay is open exactly one listener is attached
// to the bus; any interaction outside the overlay's bounds closes it
// and detaches the listener. Close and Teardown release the listener
// on every exit path, so open/close cycles never accumulate
// listeners.
type Controller struct {
	bus       *Bus
	bounds    string
	onDismiss func()

	mu     sync.Mutex
	open   bool
	detach func()
}

// NewController creates a controller for the overlay rooted at
// bounds. onDismiss fires when an outside interaction closes the
// overlay; it may be nil.
func NewController(bus *Bus, bounds string, onDismiss func()) *Controller {
	return &Controller{
		bus:       bus,
		bounds:    bounds,
		onDismiss: onDismiss,
	}
}

// Open marks the overlay open and attaches its interaction listener.
// Opening an already-open overlay is a no-op; re-opening after a
// close establishes a fresh listener.
func (c *Controller) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open {
		return
	}
	c.open = true
	c.detach = c.bus.listen(c.handle)
}

// Close marks the overlay closed and detaches its listener.
// Closing an already-closed overlay is a no-op.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked()
}

// Teardown releases the controller when its owning surface unmounts.
// Safe to call with the overlay open, closed, or never opened.
func (c *Controller) Teardown() {
	c.Close()
}

// IsOpen reports whether the overlay is currently open
func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// handle is the attached bus listener: interactions inside the
// bounds are ignored, anything else dismisses the overlay
func (c *Controller) handle(i Interaction) {
	if i.Within(c.bounds) {
		return
	}

	c.mu.Lock()
	wasOpen := c.open
	c.closeLocked()
	c.mu.Unlock()

	if wasOpen && c.onDismiss != nil {
		c.onDismiss()
	}
}

// closeLocked detaches the listener; callers hold c.mu
func (c *Controller) closeLocked() {
	if !c.open {
		return
	}
	c.open = false
	if c.detach != nil {
		c.detach()
		c.detach = nil
	}
}
