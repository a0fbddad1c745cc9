// Package adaptive implements orientation-responsive layout: a controller
// observing container resizes and deriving a horizontal/vertical split from
// the aspect ratio.
package adaptive

// Orientation is the binary layout direction.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// Listener receives orientation changes, synchronously on the caller's
// goroutine.
type Listener func(Orientation)

// Controller tracks container size and derives the current orientation.
//
// While enabled, every resize re-evaluates the orientation; listeners fire
// only when the value actually flips. Disabling resets to the default
// orientation and always fires, even when the value is unchanged, so that
// dependent widgets re-apply their non-adaptive arrangement.
type Controller struct {
	enabled            bool
	current            Orientation
	defaultOrientation Orientation
	width, height      int
	listeners          []Listener
}

// NewController creates a disabled controller resting at defaultOrientation.
func NewController(defaultOrientation Orientation) *Controller {
	return &Controller{
		current:            defaultOrientation,
		defaultOrientation: defaultOrientation,
	}
}

// Subscribe registers a listener for orientation changes.
func (c *Controller) Subscribe(fn Listener) {
	c.listeners = append(c.listeners, fn)
}

// Enabled reports whether adaptive layout is active.
func (c *Controller) Enabled() bool { return c.enabled }

// Orientation returns the current orientation.
func (c *Controller) Orientation() Orientation { return c.current }

// Resize records the container size and, when enabled, re-evaluates the
// orientation. Equal width and height resolve to Vertical.
func (c *Controller) Resize(width, height int) {
	c.width, c.height = width, height
	if !c.enabled {
		return
	}
	c.update()
}

// SetEnabled toggles adaptive layout. Enabling recomputes immediately from
// the last recorded size; disabling resets to the default orientation and
// notifies unconditionally. Setting the current state is a no-op.
func (c *Controller) SetEnabled(enabled bool) {
	if c.enabled == enabled {
		return
	}
	c.enabled = enabled
	if !enabled {
		c.current = c.defaultOrientation
		c.notify()
		return
	}
	c.update()
}

func (c *Controller) update() {
	var next Orientation
	if c.width > c.height {
		next = Horizontal
	} else {
		next = Vertical
	}
	if next == c.current {
		return
	}
	c.current = next
	c.notify()
}

func (c *Controller) notify() {
	for _, fn := range c.listeners {
		fn(c.current)
	}
}
