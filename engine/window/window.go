package window

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// ErrNotOpen is returned by Close when no platform window is open.
var ErrNotOpen = errors.New("window: not open")

// Window is an OS window that reports its size and forwards raw input events.
// Event callbacks run on the thread driving ProcessMessages.
type Window interface {
	// SetUpdateCallback sets the function run once per message loop pass, after events are polled.
	//
	// Parameters:
	//   - callback: the function, nil to disable
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function run when the framebuffer size changes.
	//
	// Parameters:
	//   - callback: receives the new framebuffer width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the function run for vertical scroll events.
	//
	// Parameters:
	//   - callback: receives the scroll delta, positive when scrolling up
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback sets the function run for key presses, including auto-repeat.
	//
	// Parameters:
	//   - callback: receives the key code (see common.Key*)
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the function run for key releases.
	//
	// Parameters:
	//   - callback: receives the key code (see common.Key*)
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetMouseButtonDownCallback sets the function run for mouse button presses.
	//
	// Parameters:
	//   - callback: receives the button code (see common.MouseButton*)
	SetMouseButtonDownCallback(callback func(button uint32))

	// SetMouseButtonUpCallback sets the function run for mouse button releases.
	//
	// Parameters:
	//   - callback: receives the button code (see common.MouseButton*)
	SetMouseButtonUpCallback(callback func(button uint32))

	// SetMouseMoveCallback sets the function run when the cursor moves.
	//
	// Parameters:
	//   - callback: receives the cursor position in framebuffer pixels
	SetMouseMoveCallback(callback func(x, y float32))

	// IsRunning reports whether the window is open and has not been asked to close.
	IsRunning() bool

	// Close destroys the window. Must be called on the thread that created it.
	//
	// Returns:
	//   - error: ErrNotOpen if there is no open window
	Close() error

	// ProcessMessages polls events and runs the update callback until the window closes.
	ProcessMessages()

	// Width returns the framebuffer width in pixels. Safe to call from any goroutine.
	Width() int

	// Height returns the framebuffer height in pixels. Safe to call from any goroutine.
	Height() int
}

// sizeLimits bounds interactive resizing, in screen coordinates.
type sizeLimits struct {
	minWidth, minHeight int
	maxWidth, maxHeight int
}

// events holds the registered input and lifecycle callbacks.
type events struct {
	update     func()
	resize     func(width, height int)
	scroll     func(delta float32)
	keyDown    func(keyCode uint32)
	keyUp      func(keyCode uint32)
	buttonDown func(button uint32)
	buttonUp   func(button uint32)
	mouseMove  func(x, y float32)
}

type engineWindow struct {
	title  string
	limits sizeLimits

	// mu guards width and height, written on the event thread and read by the tick loop.
	mu     sync.Mutex
	width  int
	height int

	platform *glfwWindow
	on       events
}

var _ Window = &engineWindow{}

// NewWindow opens a GLFW window configured by options.
// Must be called from the main goroutine, which stays locked to its OS thread.
//
// Parameters:
//   - options: functional options (title, size, size limits)
//
// Returns:
//   - Window: the open window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:  "oxy-shaderlab",
		limits: sizeLimits{minWidth: 320, minHeight: 200, maxWidth: 3840, maxHeight: 2160},
		width:  1280,
		height: 720,
	}
	for _, opt := range options {
		opt(w)
	}
	platform, err := openGLFWWindow(w)
	if err != nil {
		panic(fmt.Sprintf("window: failed to create platform window: %v", err))
	}
	w.platform = platform
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.on.update = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.on.resize = callback
}

func (w *engineWindow) SetScrollCallback(callback func(delta float32)) {
	w.on.scroll = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.on.keyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.on.keyUp = callback
}

func (w *engineWindow) SetMouseButtonDownCallback(callback func(button uint32)) {
	w.on.buttonDown = callback
}

func (w *engineWindow) SetMouseButtonUpCallback(callback func(button uint32)) {
	w.on.buttonUp = callback
}

func (w *engineWindow) SetMouseMoveCallback(callback func(x, y float32)) {
	w.on.mouseMove = callback
}

func (w *engineWindow) IsRunning() bool {
	return w.platform != nil && w.platform.open()
}

func (w *engineWindow) Close() error {
	if w.platform == nil {
		return ErrNotOpen
	}
	w.platform.destroy()
	w.platform = nil
	return nil
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		w.platform.poll()
		if !w.IsRunning() {
			return
		}
		if w.on.update != nil {
			w.on.update()
		}
		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

func (w *engineWindow) Height() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.height
}

// setSize records a new framebuffer size and notifies the resize callback.
func (w *engineWindow) setSize(width, height int) {
	w.mu.Lock()
	w.width, w.height = width, height
	w.mu.Unlock()
	if w.on.resize != nil {
		w.on.resize(width, height)
	}
}
