package input

import "github.com/Carmen-Shannon/oxy-shaderlab/common"

// Bindings maps camera gestures to physical buttons and keys.
type Bindings struct {
	// OrbitButton rotates the camera while held without a pan key.
	OrbitButton uint32

	// PanButton pans the camera while held together with one of PanKeys.
	PanButton uint32

	// PanKeys are the modifier keys that turn an orbit drag into a pan drag.
	PanKeys []uint32

	// FrameSelectionKey recenters the camera on the selection when released.
	FrameSelectionKey uint32
}

// DefaultBindings returns middle-mouse orbit, shift + middle-mouse pan and period to frame the selection.
//
// Returns:
//   - Bindings: the default bindings
func DefaultBindings() Bindings {
	return Bindings{
		OrbitButton:       common.MouseButtonMiddle,
		PanButton:         common.MouseButtonMiddle,
		PanKeys:           []uint32{common.KeyLeftShift, common.KeyRightShift},
		FrameSelectionKey: common.KeyPeriod,
	}
}

// PanModifierHeld reports whether any pan modifier key is held in the frame.
func (b Bindings) PanModifierHeld(f Frame) bool {
	return f.AnyKeyPressed(b.PanKeys...)
}
