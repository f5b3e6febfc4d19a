package camera

import (
	"errors"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-shaderlab/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// SelectionSource returns the world-space positions of the currently selected objects.
type SelectionSource func() []mgl32.Vec3

// Controller owns one camera's orbit state and transform and advances them once per tick.
// Controllers are safe for concurrent use, but the host is expected to call Tick from a
// single update path.
type Controller interface {
	// Tick runs one update: gestures (unless the gate claims the pointer), the frame-selection
	// key (never gated), then the always-run Adjust pass.
	//
	// Parameters:
	//   - frame: the tick's aggregated input
	//   - viewport: the window size in pixels
	//   - projection: the camera projection, used to scale panning
	//   - gate: the UI gate, may be nil
	//
	// Returns:
	//   - Action: the gesture applied this tick
	Tick(frame input.Frame, viewport Viewport, projection Projection, gate input.Gate) Action

	// CenterOnSelection recenters the orbit on the mean of points. An empty selection is a no-op.
	//
	// Parameters:
	//   - points: world-space positions of the selected objects
	//
	// Returns:
	//   - bool: true if the focus changed
	CenterOnSelection(points []mgl32.Vec3) bool

	// Adjust rederives the position from the current focus, radius and rotation.
	Adjust()

	// SetSelectionSource sets the function queried when the frame-selection key is released.
	//
	// Parameters:
	//   - source: the selection source, or nil to disable the key
	SetSelectionSource(source SelectionSource)

	// State returns a copy of the orbit state.
	//
	// Returns:
	//   - OrbitState: the current orbit state
	State() OrbitState

	// SetState replaces the orbit state. The position follows on the next Adjust or Tick.
	//
	// Parameters:
	//   - state: the new orbit state
	SetState(state OrbitState)

	// Transform returns a copy of the camera transform.
	//
	// Returns:
	//   - Transform: the current transform
	Transform() Transform

	// SetRotation replaces the camera orientation and recomposes the position.
	//
	// Parameters:
	//   - rotation: the new orientation (normalized before use)
	SetRotation(rotation mgl32.Quat)

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the camera position
	Position() mgl32.Vec3

	// Focus returns the point the camera orbits around.
	//
	// Returns:
	//   - mgl32.Vec3: the focus point
	Focus() mgl32.Vec3

	// Radius returns the distance from the focus to the camera.
	//
	// Returns:
	//   - float32: the orbit radius
	Radius() float32

	// UpsideDown reports whether horizontal rotation is currently inverted.
	//
	// Returns:
	//   - bool: the latched upside-down flag
	UpsideDown() bool

	// Bindings returns the button and key mapping.
	//
	// Returns:
	//   - input.Bindings: the bindings
	Bindings() input.Bindings
}

type controllerImpl struct {
	mu *sync.Mutex

	state     OrbitState
	transform Transform
	settings  Settings

	// initialPosition, when set, derives the radius at construction time.
	initialPosition *mgl32.Vec3

	selection SelectionSource
	logger    *log.Logger
}

var _ Controller = &controllerImpl{}

// NewController creates an orbit controller focused on the origin at DefaultRadius, looking down -Z.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(options ...ControllerOption) Controller {
	cc := &controllerImpl{
		mu:        &sync.Mutex{},
		state:     NewOrbitState(mgl32.Vec3{}, DefaultRadius),
		transform: IdentityTransform(),
		settings:  DefaultSettings(),
		logger:    log.Default(),
	}
	for _, opt := range options {
		opt(cc)
	}

	if cc.initialPosition != nil {
		cc.state.Radius = cc.initialPosition.Sub(cc.state.Focus).Len()
	}
	cc.state.Radius = max(cc.state.Radius, cc.settings.MinRadius)
	cc.transform = Recompose(cc.state, cc.transform)
	return cc
}

func (cc *controllerImpl) Tick(frame input.Frame, viewport Viewport, projection Projection, gate input.Gate) Action {
	var points []mgl32.Vec3
	cc.mu.Lock()
	source := cc.selection
	selectKey := cc.settings.Bindings.FrameSelectionKey
	cc.mu.Unlock()
	// Query outside the lock so a source may read the controller.
	if source != nil && frame.KeyJustReleased(selectKey) {
		points = source()
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()

	action := Action{}
	if !input.Blocked(gate) {
		cc.state, cc.transform, action = Update(cc.state, cc.transform, frame, viewport, projection, cc.settings)
	}
	if points != nil {
		cc.centerOnSelection(points)
	}
	cc.transform = Recompose(cc.state, cc.transform)
	return action
}

func (cc *controllerImpl) CenterOnSelection(points []mgl32.Vec3) bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.centerOnSelection(points)
}

// centerOnSelection recenters the focus. Caller must hold the mutex.
func (cc *controllerImpl) centerOnSelection(points []mgl32.Vec3) bool {
	state, err := FrameSelection(cc.state, cc.transform, points)
	if errors.Is(err, ErrEmptySelection) {
		return false
	}
	state.Radius = max(state.Radius, cc.settings.MinRadius)
	cc.state = state
	cc.logger.Printf("[Camera] framed %d selected points: focus=%v radius=%.3f", len(points), state.Focus, state.Radius)
	return true
}

func (cc *controllerImpl) Adjust() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.transform = Recompose(cc.state, cc.transform)
}

func (cc *controllerImpl) SetSelectionSource(source SelectionSource) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.selection = source
}

func (cc *controllerImpl) State() OrbitState {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state
}

func (cc *controllerImpl) SetState(state OrbitState) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.state = state
}

func (cc *controllerImpl) Transform() Transform {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.transform
}

func (cc *controllerImpl) SetRotation(rotation mgl32.Quat) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.transform.Rotation = rotation.Normalize()
	cc.transform = Recompose(cc.state, cc.transform)
}

func (cc *controllerImpl) Position() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.transform.Position
}

func (cc *controllerImpl) Focus() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.Focus
}

func (cc *controllerImpl) Radius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.Radius
}

func (cc *controllerImpl) UpsideDown() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.UpsideDown
}

func (cc *controllerImpl) Bindings() input.Bindings {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.settings.Bindings
}
