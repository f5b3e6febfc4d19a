package input

// FrameOption is a functional option for configuring a Frame via NewFrame.
type FrameOption func(*Frame)

// WithButtonsHeld marks mouse buttons as currently held.
//
// Parameters:
//   - buttons: the held mouse button codes
//
// Returns:
//   - FrameOption: option function to apply
func WithButtonsHeld(buttons ...uint32) FrameOption {
	return func(f *Frame) {
		for _, b := range buttons {
			f.buttons[b] = true
		}
	}
}

// WithButtonPressed marks a mouse button as pressed this tick. The button is also held.
//
// Parameters:
//   - button: the mouse button code
//
// Returns:
//   - FrameOption: option function to apply
func WithButtonPressed(button uint32) FrameOption {
	return func(f *Frame) {
		f.buttons[button] = true
		f.justPressed[button] = true
	}
}

// WithButtonReleased marks a mouse button as released this tick. The button is not held.
//
// Parameters:
//   - button: the mouse button code
//
// Returns:
//   - FrameOption: option function to apply
func WithButtonReleased(button uint32) FrameOption {
	return func(f *Frame) {
		delete(f.buttons, button)
		f.justReleased[button] = true
	}
}

// WithKeysHeld marks keys as currently held.
//
// Parameters:
//   - keys: the held key codes
//
// Returns:
//   - FrameOption: option function to apply
func WithKeysHeld(keys ...uint32) FrameOption {
	return func(f *Frame) {
		for _, k := range keys {
			f.keys[k] = true
		}
	}
}

// WithKeyReleased marks a key as released this tick.
//
// Parameters:
//   - key: the key code
//
// Returns:
//   - FrameOption: option function to apply
func WithKeyReleased(key uint32) FrameOption {
	return func(f *Frame) {
		delete(f.keys, key)
		f.keysJustReleased[key] = true
	}
}
