package input

import "github.com/go-gl/mathgl/mgl32"

// Frame is the aggregated input for a single update tick.
// It is produced by Collector.Drain and must be treated as tick-scoped: the next
// Drain starts from zero motion, zero scroll and no transitions.
type Frame struct {
	// Motion is the sum of all pointer motion deltas received this tick, in pixels.
	Motion mgl32.Vec2

	// Scroll is the sum of all vertical scroll deltas received this tick.
	Scroll float32

	buttons      map[uint32]bool
	justPressed  map[uint32]bool
	justReleased map[uint32]bool

	keys             map[uint32]bool
	keysJustReleased map[uint32]bool
}

// NewFrame builds a Frame directly. Hosts that already aggregate their own events
// (and tests) use this instead of a Collector.
//
// Parameters:
//   - motion: accumulated pointer motion delta
//   - scroll: accumulated scroll delta
//   - options: functional options setting button and key state
//
// Returns:
//   - Frame: the assembled frame
func NewFrame(motion mgl32.Vec2, scroll float32, options ...FrameOption) Frame {
	f := Frame{
		Motion:           motion,
		Scroll:           scroll,
		buttons:          make(map[uint32]bool),
		justPressed:      make(map[uint32]bool),
		justReleased:     make(map[uint32]bool),
		keys:             make(map[uint32]bool),
		keysJustReleased: make(map[uint32]bool),
	}
	for _, opt := range options {
		opt(&f)
	}
	return f
}

// Pressed reports whether the mouse button is currently held.
func (f Frame) Pressed(button uint32) bool {
	return f.buttons[button]
}

// JustPressed reports whether the mouse button went down this tick.
func (f Frame) JustPressed(button uint32) bool {
	return f.justPressed[button]
}

// JustReleased reports whether the mouse button went up this tick.
func (f Frame) JustReleased(button uint32) bool {
	return f.justReleased[button]
}

// ButtonChanged reports whether the mouse button was pressed or released this tick.
func (f Frame) ButtonChanged(button uint32) bool {
	return f.justPressed[button] || f.justReleased[button]
}

// KeyPressed reports whether the key is currently held.
func (f Frame) KeyPressed(key uint32) bool {
	return f.keys[key]
}

// AnyKeyPressed reports whether at least one of the keys is currently held.
func (f Frame) AnyKeyPressed(keys ...uint32) bool {
	for _, k := range keys {
		if f.keys[k] {
			return true
		}
	}
	return false
}

// KeyJustReleased reports whether the key went up this tick.
func (f Frame) KeyJustReleased(key uint32) bool {
	return f.keysJustReleased[key]
}

// Empty reports whether the frame carries no motion, no scroll and no transitions.
// Held buttons and keys alone do not make a frame non-empty.
func (f Frame) Empty() bool {
	return f.Motion.LenSqr() == 0 && f.Scroll == 0 &&
		len(f.justPressed) == 0 && len(f.justReleased) == 0 && len(f.keysJustReleased) == 0
}
