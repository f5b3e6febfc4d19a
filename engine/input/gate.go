package input

// Gate is implemented by a UI layer that can claim the pointer.
// While it does, camera gestures must not consume pointer or scroll input.
type Gate interface {
	// PointerOverArea reports whether the pointer hovers a UI surface.
	PointerOverArea() bool

	// UsingPointer reports whether a UI widget is being dragged or clicked.
	UsingPointer() bool

	// WantsPointerInput reports whether a UI widget wants pointer input.
	WantsPointerInput() bool
}

// Blocked reports whether the gate currently claims the pointer. A nil gate never blocks.
//
// Parameters:
//   - g: the UI gate, may be nil
//
// Returns:
//   - bool: true if camera gestures must be skipped this tick
func Blocked(g Gate) bool {
	if g == nil {
		return false
	}
	return g.WantsPointerInput() || g.PointerOverArea() || g.UsingPointer()
}

type noUI struct{}

func (noUI) PointerOverArea() bool   { return false }
func (noUI) UsingPointer() bool      { return false }
func (noUI) WantsPointerInput() bool { return false }

// NoUI is the gate for hosts without a UI overlay. It never claims the pointer.
var NoUI Gate = noUI{}

// StaticGate is a Gate with fixed answers, useful for hosts that compute the UI state once per tick.
type StaticGate struct {
	OverArea   bool
	Using      bool
	WantsInput bool
}

func (g StaticGate) PointerOverArea() bool   { return g.OverArea }
func (g StaticGate) UsingPointer() bool      { return g.Using }
func (g StaticGate) WantsPointerInput() bool { return g.WantsInput }
