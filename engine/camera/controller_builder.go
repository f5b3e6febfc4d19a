package camera

import (
	"log"

	"github.com/Carmen-Shannon/oxy-shaderlab/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*controllerImpl)

// WithFocus sets the initial point the camera orbits around.
//
// Parameters:
//   - focus: world-space focus point
//
// Returns:
//   - ControllerOption: functional option to set the focus
func WithFocus(focus mgl32.Vec3) ControllerOption {
	return func(cc *controllerImpl) {
		cc.state.Focus = focus
	}
}

// WithRadius sets the initial orbit radius.
//
// Parameters:
//   - radius: distance from the focus, clamped to the minimum radius
//
// Returns:
//   - ControllerOption: functional option to set the radius
func WithRadius(radius float32) ControllerOption {
	return func(cc *controllerImpl) {
		cc.state.Radius = radius
		cc.initialPosition = nil
	}
}

// WithPosition derives the initial radius from a spawn position: the radius becomes the
// distance from position to the focus. The orientation is not changed.
//
// Parameters:
//   - position: world-space spawn position
//
// Returns:
//   - ControllerOption: functional option to set the radius from a position
func WithPosition(position mgl32.Vec3) ControllerOption {
	return func(cc *controllerImpl) {
		p := position
		cc.initialPosition = &p
	}
}

// WithRotation sets the initial camera orientation.
//
// Parameters:
//   - rotation: the orientation (normalized before use)
//
// Returns:
//   - ControllerOption: functional option to set the rotation
func WithRotation(rotation mgl32.Quat) ControllerOption {
	return func(cc *controllerImpl) {
		cc.transform.Rotation = rotation.Normalize()
	}
}

// WithBindings sets the button and key mapping.
//
// Parameters:
//   - bindings: the input bindings
//
// Returns:
//   - ControllerOption: functional option to set the bindings
func WithBindings(bindings input.Bindings) ControllerOption {
	return func(cc *controllerImpl) {
		cc.settings.Bindings = bindings
	}
}

// WithZoomSensitivity sets the fraction of the radius removed per unit of scroll.
//
// Parameters:
//   - sensitivity: zoom sensitivity (default 0.002)
//
// Returns:
//   - ControllerOption: functional option to set the zoom sensitivity
func WithZoomSensitivity(sensitivity float32) ControllerOption {
	return func(cc *controllerImpl) {
		cc.settings.ZoomSensitivity = sensitivity
	}
}

// WithMinRadius sets the zoom floor. Values below MinRadius are raised to MinRadius.
//
// Parameters:
//   - radius: the smallest allowed orbit radius
//
// Returns:
//   - ControllerOption: functional option to set the minimum radius
func WithMinRadius(radius float32) ControllerOption {
	return func(cc *controllerImpl) {
		cc.settings.MinRadius = max(radius, MinRadius)
	}
}

// WithSelectionSource sets the function queried when the frame-selection key is released.
//
// Parameters:
//   - source: the selection source
//
// Returns:
//   - ControllerOption: functional option to set the selection source
func WithSelectionSource(source SelectionSource) ControllerOption {
	return func(cc *controllerImpl) {
		cc.selection = source
	}
}

// WithLogger sets the logger used for camera events.
//
// Parameters:
//   - logger: the logger, nil keeps log.Default()
//
// Returns:
//   - ControllerOption: functional option to set the logger
func WithLogger(logger *log.Logger) ControllerOption {
	return func(cc *controllerImpl) {
		if logger != nil {
			cc.logger = logger
		}
	}
}
