package window

import "github.com/Carmen-Shannon/oxy-shaderlab/engine/input"

// BindCollector routes the window's pointer, scroll, button and key events into an input collector.
// Any callbacks previously registered for those events are replaced.
//
// Parameters:
//   - w: the event source
//   - c: the collector drained once per tick by the host
func BindCollector(w Window, c input.Collector) {
	w.SetMouseMoveCallback(c.MouseMove)
	w.SetScrollCallback(c.Scroll)
	w.SetMouseButtonDownCallback(c.ButtonDown)
	w.SetMouseButtonUpCallback(c.ButtonUp)
	w.SetKeyDownCallback(c.KeyDown)
	w.SetKeyUpCallback(c.KeyUp)
}
