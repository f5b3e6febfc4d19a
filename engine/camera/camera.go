package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-shaderlab/common"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultOrthographicHalfHeight is the half height, in world units, of an orthographic camera's view volume.
const DefaultOrthographicHalfHeight float32 = 5.0

type cameraImpl struct {
	mu *sync.Mutex

	fov          float32
	aspect       float32
	near         float32
	far          float32
	orthographic bool
	halfHeight   float32

	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4

	controller Controller
}

// Camera defines the interface for the camera system.
// The camera holds projection settings and computes view/projection matrices
// from an attached Controller's transform each frame via Update().
type Camera interface {
	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// Orthographic reports whether the camera uses an orthographic projection.
	//
	// Returns:
	//   - bool: true for orthographic, false for perspective
	Orthographic() bool

	// Projection returns the projection parameters the orbit controller needs for panning.
	//
	// Returns:
	//   - Projection: the current projection parameters
	Projection() Projection

	// ViewMatrix returns the current 4x4 view matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current 4x4 projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns the current combined view-projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the combined view-projection matrix
	ViewProjectionMatrix() [16]float32

	// Uniform returns the camera's GPU uniform for the current matrices.
	// The camera position is zero if no controller is attached.
	//
	// Returns:
	//   - GPUCameraUniform: the uniform ready to Marshal
	Uniform() GPUCameraUniform

	// Controller returns the attached Controller.
	// Returns nil if no controller is attached.
	//
	// Returns:
	//   - Controller: the attached controller or nil
	Controller() Controller

	// Update reads the controller transform and recomputes matrices.
	// Should be called once per tick, after the controller's Tick.
	// If no controller is attached, this method does nothing.
	Update()

	// SetFov sets the vertical field of view in radians and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// SetOrthographic switches between orthographic and perspective projection.
	//
	// Parameters:
	//   - orthographic: true for orthographic
	SetOrthographic(orthographic bool)

	// SetController attaches a Controller to the camera.
	//
	// Parameters:
	//   - ctrl: the controller to attach
	SetController(ctrl Controller)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings.
// A controller must be attached via SetController or WithController option
// before transform data is available.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:         &sync.Mutex{},
		fov:        45.0 * (math.Pi / 180.0), // radians
		aspect:     1.0,
		near:       0.1,
		far:        100.0,
		halfHeight: DefaultOrthographicHalfHeight,
	}
	c.viewMatrix = mgl32.Ident4()
	c.projectionMatrix = mgl32.Ident4()
	c.viewProjectionMatrix = mgl32.Ident4()

	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) Orthographic() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orthographic
}

func (c *cameraImpl) Projection() Projection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Projection{
		Perspective: !c.orthographic,
		Fov:         c.fov,
		AspectRatio: c.aspect,
	}
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return [16]float32(c.viewMatrix)
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return [16]float32(c.projectionMatrix)
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return [16]float32(c.viewProjectionMatrix)
}

func (c *cameraImpl) Uniform() GPUCameraUniform {
	c.mu.Lock()
	ctrl := c.controller
	viewProj := [16]float32(c.viewProjectionMatrix)
	c.mu.Unlock()

	var position [3]float32
	if ctrl != nil {
		position = ctrl.Position()
	}
	return NewGPUCameraUniform(viewProj, position)
}

func (c *cameraImpl) Controller() Controller {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller == nil {
		return
	}
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) SetOrthographic(orthographic bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orthographic = orthographic
	c.updateMatrices()
}

func (c *cameraImpl) SetController(ctrl Controller) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
	c.updateMatrices()
}

// updateMatrices recalculates the projection matrix and, when a controller is attached,
// the view and view-projection matrices from its transform.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	if c.orthographic {
		c.projectionMatrix = common.Orthographic(c.halfHeight, c.aspect, c.near, c.far)
	} else {
		c.projectionMatrix = common.Perspective(c.fov, c.aspect, c.near, c.far)
	}

	if c.controller != nil {
		t := c.controller.Transform()
		c.viewMatrix = common.ViewFromTransform(t.Position, t.Rotation)
	}
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}
