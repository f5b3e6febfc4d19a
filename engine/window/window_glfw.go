package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow owns the GLFW handle behind an engineWindow.
type glfwWindow struct {
	handle  *glfw.Window
	closing bool
}

// openGLFWWindow initialises GLFW, creates the window without a client API (the host renders
// through WebGPU) and routes its events into w.
func openGLFWWindow(w *engineWindow) (*glfwWindow, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	handle, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	l := w.limits
	handle.SetSizeLimits(l.minWidth, l.minHeight, l.maxWidth, l.maxHeight)

	gw := &glfwWindow{handle: handle}
	gw.route(w)

	// The framebuffer can be larger than the requested size on high-DPI displays.
	w.setSize(handle.GetFramebufferSize())
	return gw, nil
}

// route installs GLFW callbacks that forward into w's registered events.
func (gw *glfwWindow) route(w *engineWindow) {
	gw.handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.requestClose()
			return
		}
		switch action {
		case glfw.Press, glfw.Repeat:
			emit(w.on.keyDown, uint32(key))
		case glfw.Release:
			emit(w.on.keyUp, uint32(key))
		}
	})

	gw.handle.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			emit(w.on.buttonDown, uint32(button))
		case glfw.Release:
			emit(w.on.buttonUp, uint32(button))
		}
	})

	gw.handle.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		emit(w.on.scroll, float32(yoff))
	})

	gw.handle.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		if w.on.mouseMove == nil {
			return
		}
		sx, sy := gw.pixelScale()
		w.on.mouseMove(float32(xpos)*sx, float32(ypos)*sy)
	})

	gw.handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.setSize(width, height)
	})
}

// emit calls fn with v when fn is set.
func emit[T any](fn func(T), v T) {
	if fn != nil {
		fn(v)
	}
}

// pixelScale converts cursor screen coordinates to framebuffer pixels on each axis.
func (gw *glfwWindow) pixelScale() (float32, float32) {
	ww, wh := gw.handle.GetSize()
	fw, fh := gw.handle.GetFramebufferSize()
	if ww <= 0 || wh <= 0 {
		return 1, 1
	}
	return float32(fw) / float32(ww), float32(fh) / float32(wh)
}

func (gw *glfwWindow) requestClose() {
	gw.closing = true
	gw.handle.SetShouldClose(true)
}

func (gw *glfwWindow) open() bool {
	return !gw.closing && !gw.handle.ShouldClose()
}

func (gw *glfwWindow) poll() {
	glfw.PollEvents()
}

// destroy releases the window and shuts GLFW down.
func (gw *glfwWindow) destroy() {
	gw.requestClose()
	gw.handle.Destroy()
	glfw.Terminate()
}
