package input

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Collector accumulates raw window events between ticks and hands them out as one Frame per tick.
// Window callbacks write into it from the window thread while the tick loop drains it, so
// every method is safe for concurrent use.
type Collector interface {
	// MouseMove records an absolute cursor position. The first position only sets the
	// reference point; every later one contributes its delta to the tick's motion.
	//
	// Parameters:
	//   - x, y: cursor position in window pixels
	MouseMove(x, y float32)

	// MouseMotion records a relative pointer motion delta directly.
	//
	// Parameters:
	//   - dx, dy: motion delta in pixels
	MouseMotion(dx, dy float32)

	// Scroll records a vertical scroll delta.
	//
	// Parameters:
	//   - delta: positive = scroll up
	Scroll(delta float32)

	// ButtonDown records a mouse button press.
	//
	// Parameters:
	//   - button: the mouse button code
	ButtonDown(button uint32)

	// ButtonUp records a mouse button release.
	//
	// Parameters:
	//   - button: the mouse button code
	ButtonUp(button uint32)

	// KeyDown records a key press (auto-repeat presses are harmless).
	//
	// Parameters:
	//   - key: the key code
	KeyDown(key uint32)

	// KeyUp records a key release.
	//
	// Parameters:
	//   - key: the key code
	KeyUp(key uint32)

	// Drain returns the input accumulated since the previous Drain and resets the
	// tick-scoped accumulators. Held button and key state carries over.
	//
	// Returns:
	//   - Frame: the input for this tick
	Drain() Frame
}

type collector struct {
	mu *sync.Mutex

	motion mgl32.Vec2
	scroll float32

	cursor    mgl32.Vec2
	hasCursor bool

	buttons      map[uint32]bool
	justPressed  map[uint32]bool
	justReleased map[uint32]bool

	keys             map[uint32]bool
	keysJustReleased map[uint32]bool
}

var _ Collector = &collector{}

// NewCollector creates an empty Collector.
//
// Returns:
//   - Collector: the newly created collector
func NewCollector() Collector {
	return &collector{
		mu:               &sync.Mutex{},
		buttons:          make(map[uint32]bool),
		justPressed:      make(map[uint32]bool),
		justReleased:     make(map[uint32]bool),
		keys:             make(map[uint32]bool),
		keysJustReleased: make(map[uint32]bool),
	}
}

func (c *collector) MouseMove(x, y float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	pos := mgl32.Vec2{x, y}
	if c.hasCursor {
		c.motion = c.motion.Add(pos.Sub(c.cursor))
	}
	c.cursor = pos
	c.hasCursor = true
}

func (c *collector) MouseMotion(dx, dy float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.motion = c.motion.Add(mgl32.Vec2{dx, dy})
}

func (c *collector) Scroll(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scroll += delta
}

func (c *collector) ButtonDown(button uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.buttons[button] {
		c.justPressed[button] = true
	}
	c.buttons[button] = true
}

func (c *collector) ButtonUp(button uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.buttons[button] {
		c.justReleased[button] = true
	}
	delete(c.buttons, button)
}

func (c *collector) KeyDown(key uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys[key] = true
}

func (c *collector) KeyUp(key uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.keys[key] {
		c.keysJustReleased[key] = true
	}
	delete(c.keys, key)
}

func (c *collector) Drain() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	f := Frame{
		Motion:           c.motion,
		Scroll:           c.scroll,
		buttons:          copySet(c.buttons),
		justPressed:      c.justPressed,
		justReleased:     c.justReleased,
		keys:             copySet(c.keys),
		keysJustReleased: c.keysJustReleased,
	}

	c.motion = mgl32.Vec2{}
	c.scroll = 0
	c.justPressed = make(map[uint32]bool)
	c.justReleased = make(map[uint32]bool)
	c.keysJustReleased = make(map[uint32]bool)
	return f
}

func copySet(src map[uint32]bool) map[uint32]bool {
	dst := make(map[uint32]bool, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
