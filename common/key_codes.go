package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW      = 87  // W key (ASCII)
	KeyA      = 65  // A key (ASCII)
	KeyS      = 83  // S key (ASCII)
	KeyD      = 68  // D key (ASCII)
	KeyF      = 70  // F key (ASCII)
	KeyR      = 82  // R key (ASCII)
	KeySpace  = 32  // Spacebar (ASCII)
	KeyPeriod = 46  // Period key (ASCII)
	KeyEsc    = 256 // Escape key (GLFW)
)

// Modifier keys
const (
	KeyLeftShift    = 340 // Left Shift (GLFW)
	KeyLeftControl  = 341 // Left Control (GLFW)
	KeyLeftAlt      = 342 // Left Alt (GLFW)
	KeyRightShift   = 344 // Right Shift (GLFW)
	KeyRightControl = 345 // Right Control (GLFW)
	KeyRightAlt     = 346 // Right Alt (GLFW)
)

// Mouse button codes, matching glfw.MouseButton values.
const (
	MouseButtonLeft   = 0
	MouseButtonRight  = 1
	MouseButtonMiddle = 2
)

// keyNames maps the names accepted in configuration files to key codes.
var keyNames = map[string]uint32{
	"w":             KeyW,
	"a":             KeyA,
	"s":             KeyS,
	"d":             KeyD,
	"f":             KeyF,
	"r":             KeyR,
	"space":         KeySpace,
	"period":        KeyPeriod,
	"escape":        KeyEsc,
	"left_shift":    KeyLeftShift,
	"right_shift":   KeyRightShift,
	"left_control":  KeyLeftControl,
	"right_control": KeyRightControl,
	"left_alt":      KeyLeftAlt,
	"right_alt":     KeyRightAlt,
}

// buttonNames maps the names accepted in configuration files to mouse button codes.
var buttonNames = map[string]uint32{
	"left":   MouseButtonLeft,
	"right":  MouseButtonRight,
	"middle": MouseButtonMiddle,
}

// KeyByName looks up a key code by its configuration name (e.g. "left_shift").
//
// Parameters:
//   - name: the lower-case key name
//
// Returns:
//   - uint32: the key code
//   - bool: false if the name is unknown
func KeyByName(name string) (uint32, bool) {
	k, ok := keyNames[name]
	return k, ok
}

// MouseButtonByName looks up a mouse button code by its configuration name ("left", "right", "middle").
//
// Parameters:
//   - name: the lower-case button name
//
// Returns:
//   - uint32: the button code
//   - bool: false if the name is unknown
func MouseButtonByName(name string) (uint32, bool) {
	b, ok := buttonNames[name]
	return b, ok
}
