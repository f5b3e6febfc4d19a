package camera

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-shaderlab/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// ActionKind identifies which gesture an Action carries.
type ActionKind int

const (
	// ActionNone means no gesture applies this tick.
	ActionNone ActionKind = iota
	// ActionRotate orbits the camera around its focus.
	ActionRotate
	// ActionPan moves the focus along the camera's local right/up axes.
	ActionPan
	// ActionZoom changes the orbit radius.
	ActionZoom
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionRotate:
		return "rotate"
	case ActionPan:
		return "pan"
	case ActionZoom:
		return "zoom"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is the single gesture chosen for a tick. Exactly one of rotate, pan or zoom
// can apply per tick; Delta is set for rotate and pan, Amount for zoom.
type Action struct {
	Kind   ActionKind
	Delta  mgl32.Vec2
	Amount float32
}

// Rotate returns a rotate action for the pointer motion delta.
func Rotate(delta mgl32.Vec2) Action {
	return Action{Kind: ActionRotate, Delta: delta}
}

// Pan returns a pan action for the pointer motion delta.
func Pan(delta mgl32.Vec2) Action {
	return Action{Kind: ActionPan, Delta: delta}
}

// Zoom returns a zoom action for the scroll amount.
func Zoom(amount float32) Action {
	return Action{Kind: ActionZoom, Amount: amount}
}

// Decide picks the tick's gesture from raw input.
// Motion goes to rotation while the orbit button is held without a pan key, or to panning
// while the pan button is held with a pan key. Rotation wins over pan, pan wins over zoom.
//
// Parameters:
//   - frame: the tick's aggregated input
//   - bindings: the button and key mapping
//
// Returns:
//   - Action: the chosen gesture, ActionNone if nothing applies
func Decide(frame input.Frame, bindings input.Bindings) Action {
	var rotation, pan mgl32.Vec2

	panHeld := bindings.PanModifierHeld(frame)
	if frame.Pressed(bindings.OrbitButton) && !panHeld {
		rotation = frame.Motion
	} else if frame.Pressed(bindings.PanButton) && panHeld {
		pan = frame.Motion
	}

	switch {
	case rotation.LenSqr() > 0:
		return Rotate(rotation)
	case pan.LenSqr() > 0:
		return Pan(pan)
	case frame.Scroll != 0:
		return Zoom(frame.Scroll)
	default:
		return Action{}
	}
}
