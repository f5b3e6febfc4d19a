package camera

import (
	"errors"
	"math"

	"github.com/Carmen-Shannon/oxy-shaderlab/common"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MinRadius is the smallest orbit radius. Zooming to zero would leave nothing to scale from.
	MinRadius float32 = 0.05

	// DefaultRadius is the orbit radius of a camera built without an explicit one.
	DefaultRadius float32 = 5.0

	// DefaultZoomSensitivity is the fraction of the radius removed per unit of scroll.
	DefaultZoomSensitivity float32 = 0.002
)

// ErrEmptySelection is returned by FrameSelection when there is nothing to frame.
var ErrEmptySelection = errors.New("camera: selection is empty")

var (
	worldUp    = mgl32.Vec3{0, 1, 0}
	localRight = mgl32.Vec3{1, 0, 0}
	localUp    = mgl32.Vec3{0, 1, 0}
)

// OrbitState is the pan/orbit state owned by one camera.
type OrbitState struct {
	// Focus is the world-space point the camera orbits around.
	Focus mgl32.Vec3

	// Radius is the distance from Focus to the camera along its local +Z axis.
	Radius float32

	// UpsideDown inverts horizontal rotation. It is only refreshed on the tick the
	// orbit button goes down or up, never mid-gesture.
	UpsideDown bool
}

// NewOrbitState returns a state orbiting focus at radius, clamped to MinRadius.
func NewOrbitState(focus mgl32.Vec3, radius float32) OrbitState {
	return OrbitState{Focus: focus, Radius: max(radius, MinRadius)}
}

// NewOrbitStateFromPosition returns a state orbiting focus at the distance of position.
func NewOrbitStateFromPosition(position, focus mgl32.Vec3) OrbitState {
	return NewOrbitState(focus, position.Sub(focus).Len())
}

// Transform is the camera's world transform. The host owns it; Update reads and rewrites it.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// IdentityTransform returns a transform at the origin looking down -Z.
func IdentityTransform() Transform {
	return Transform{Rotation: mgl32.QuatIdent()}
}

// Viewport is the size of the window area the pointer moves across, in pixels.
type Viewport struct {
	Width  float32
	Height float32
}

func (v Viewport) valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Projection carries the projection parameters panning needs.
type Projection struct {
	// Perspective is false for orthographic cameras.
	Perspective bool
	// Fov is the vertical field of view in radians.
	Fov float32
	// AspectRatio is width / height.
	AspectRatio float32
}

// Settings tunes Update.
type Settings struct {
	Bindings        input.Bindings
	ZoomSensitivity float32
	MinRadius       float32
}

// DefaultSettings returns the default bindings, a zoom sensitivity of 0.002 and MinRadius.
func DefaultSettings() Settings {
	return Settings{
		Bindings:        input.DefaultBindings(),
		ZoomSensitivity: DefaultZoomSensitivity,
		MinRadius:       MinRadius,
	}
}

// Update applies one tick of input to an orbit camera.
// The upside-down flag is refreshed first when the orbit button changed state, then at most one
// of rotate, pan or zoom is applied (see Decide). The position is only rewritten if a gesture
// was applied.
//
// Parameters:
//   - state: the camera's orbit state
//   - transform: the camera's current transform
//   - frame: the tick's aggregated input
//   - viewport: the window size in pixels
//   - projection: the camera projection, used to scale panning
//   - settings: bindings and tuning
//
// Returns:
//   - OrbitState: the updated orbit state
//   - Transform: the updated transform
//   - Action: the gesture that was applied, ActionNone if nothing changed
func Update(state OrbitState, transform Transform, frame input.Frame, viewport Viewport, projection Projection, settings Settings) (OrbitState, Transform, Action) {
	if frame.ButtonChanged(settings.Bindings.OrbitButton) {
		up := transform.Rotation.Rotate(worldUp)
		state.UpsideDown = up.Y() <= 0
	}

	action := Decide(frame, settings.Bindings)
	switch action.Kind {
	case ActionRotate:
		if !viewport.valid() {
			return state, transform, Action{}
		}
		transform.Rotation = rotate(transform.Rotation, action.Delta, viewport, state.UpsideDown)
	case ActionPan:
		if !viewport.valid() {
			return state, transform, Action{}
		}
		state.Focus = pan(state, transform.Rotation, action.Delta, viewport, projection)
	case ActionZoom:
		state.Radius -= action.Amount * state.Radius * settings.ZoomSensitivity
		state.Radius = max(state.Radius, settings.MinRadius)
	default:
		return state, transform, action
	}

	return state, Recompose(state, transform), action
}

// rotate applies yaw about the world Y axis on the left and pitch about the local X axis on
// the right, which keeps the horizon level (turntable behavior).
func rotate(rotation mgl32.Quat, delta mgl32.Vec2, viewport Viewport, upsideDown bool) mgl32.Quat {
	dx := delta.X() / viewport.Width * math.Pi * 2
	if upsideDown {
		dx = -dx
	}
	dy := delta.Y() / viewport.Height * math.Pi

	yaw := mgl32.QuatRotate(-dx, worldUp)
	pitch := mgl32.QuatRotate(-dy, localRight)
	return yaw.Mul(rotation).Mul(pitch).Normalize()
}

// pan returns the focus moved along the camera's right and up axes, scaled by the radius so
// that the focus tracks the pointer at any zoom level.
func pan(state OrbitState, rotation mgl32.Quat, delta mgl32.Vec2, viewport Viewport, projection Projection) mgl32.Vec3 {
	if projection.Perspective {
		delta = mgl32.Vec2{
			delta.X() * projection.Fov * projection.AspectRatio / viewport.Width,
			delta.Y() * projection.Fov / viewport.Height,
		}
	}
	right := rotation.Rotate(localRight).Mul(-delta.X())
	up := rotation.Rotate(localUp).Mul(delta.Y())
	return state.Focus.Add(right.Add(up).Mul(state.Radius))
}

// Recompose places the camera Radius units from Focus along its local +Z axis.
// It is safe to run every tick: repeated calls yield the same transform.
//
// Parameters:
//   - state: the orbit state
//   - transform: the transform whose rotation is kept
//
// Returns:
//   - Transform: the transform with a recomputed position
func Recompose(state OrbitState, transform Transform) Transform {
	offset := transform.Rotation.Mat4().Mat3().Mul3x1(mgl32.Vec3{0, 0, state.Radius})
	transform.Position = state.Focus.Add(offset)
	return transform
}

// FrameSelection recenters the orbit on the mean of the selected points, keeping the camera
// where it is: the new radius is the distance from the current position to that mean.
// Orientation is untouched; the position is rederived by the next Recompose.
//
// Parameters:
//   - state: the orbit state
//   - transform: the current camera transform
//   - points: world-space positions of the selected objects
//
// Returns:
//   - OrbitState: the recentered state
//   - error: ErrEmptySelection if points is empty (state is returned unchanged)
func FrameSelection(state OrbitState, transform Transform, points []mgl32.Vec3) (OrbitState, error) {
	center, ok := common.Centroid(points)
	if !ok {
		return state, ErrEmptySelection
	}
	state.Radius = max(transform.Position.Sub(center).Len(), MinRadius)
	state.Focus = center
	return state, nil
}
