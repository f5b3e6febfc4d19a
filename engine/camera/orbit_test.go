package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-shaderlab/common"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

var (
	testViewport   = Viewport{Width: 800, Height: 600}
	testProjection = Projection{Perspective: true, Fov: math.Pi / 4, AspectRatio: 800.0 / 600.0}
)

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, want[i], got[i], eps, "component %d of %v", i, got)
	}
}

func startingPose(radius float32) (OrbitState, Transform) {
	state := NewOrbitState(mgl32.Vec3{}, radius)
	return state, Recompose(state, IdentityTransform())
}

func TestDecide(t *testing.T) {
	middle := uint32(common.MouseButtonMiddle)
	shift := uint32(common.KeyLeftShift)
	motion := mgl32.Vec2{4, -2}

	tests := []struct {
		name  string
		frame input.Frame
		want  Action
	}{
		{"idle", input.NewFrame(mgl32.Vec2{}, 0), Action{}},
		{"motion without button", input.NewFrame(motion, 0), Action{}},
		{"orbit drag", input.NewFrame(motion, 0, input.WithButtonsHeld(middle)), Rotate(motion)},
		{"rotate wins over zoom", input.NewFrame(motion, 3, input.WithButtonsHeld(middle)), Rotate(motion)},
		{"pan with modifier", input.NewFrame(motion, 0, input.WithButtonsHeld(middle), input.WithKeysHeld(shift)), Pan(motion)},
		{"pan wins over zoom", input.NewFrame(motion, 3, input.WithButtonsHeld(middle), input.WithKeysHeld(shift)), Pan(motion)},
		{"held button without motion zooms", input.NewFrame(mgl32.Vec2{}, -2, input.WithButtonsHeld(middle)), Zoom(-2)},
		{"scroll only", input.NewFrame(mgl32.Vec2{}, 1.5), Zoom(1.5)},
		{"modifier without button", input.NewFrame(motion, 0, input.WithKeysHeld(shift)), Action{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.frame, input.DefaultBindings()))
		})
	}
}

func TestActionKindString(t *testing.T) {
	assert.Equal(t, "rotate", ActionRotate.String())
	assert.Equal(t, "none", ActionNone.String())
	assert.Equal(t, "ActionKind(9)", ActionKind(9).String())
}

func TestUpdateIdleLeavesStateUntouched(t *testing.T) {
	state, transform := startingPose(5)
	frame := input.NewFrame(mgl32.Vec2{}, 0, input.WithButtonsHeld(common.MouseButtonMiddle))

	gotState, gotTransform, action := Update(state, transform, frame, testViewport, testProjection, DefaultSettings())
	assert.Equal(t, ActionNone, action.Kind)
	assert.Equal(t, state, gotState)
	assert.Equal(t, transform, gotTransform)
}

func TestZoomRespectsRadiusFloor(t *testing.T) {
	state, transform := startingPose(0.06)
	frame := input.NewFrame(mgl32.Vec2{}, 1000)

	state, transform, action := Update(state, transform, frame, testViewport, testProjection, DefaultSettings())
	assert.Equal(t, ActionZoom, action.Kind)
	assert.Equal(t, MinRadius, state.Radius)
	assert.InDelta(t, MinRadius, transform.Position.Len(), eps)
}

func TestZoomScalesRadius(t *testing.T) {
	state, transform := startingPose(5)
	frame := input.NewFrame(mgl32.Vec2{}, 100)

	state, transform, _ = Update(state, transform, frame, testViewport, testProjection, DefaultSettings())
	assert.InDelta(t, 4.0, state.Radius, eps)
	assertVec3(t, mgl32.Vec3{0, 0, 4}, transform.Position)

	frame = input.NewFrame(mgl32.Vec2{}, -100)
	state, _, _ = Update(state, transform, frame, testViewport, testProjection, DefaultSettings())
	assert.InDelta(t, 4.8, state.Radius, eps)
}

func TestRotateYawKeepsRadius(t *testing.T) {
	state, transform := startingPose(5)
	// a quarter of the viewport width is a quarter turn
	frame := input.NewFrame(mgl32.Vec2{200, 0}, 0, input.WithButtonsHeld(common.MouseButtonMiddle))

	state, transform, action := Update(state, transform, frame, testViewport, testProjection, DefaultSettings())
	require.Equal(t, ActionRotate, action.Kind)
	assertVec3(t, mgl32.Vec3{-5, 0, 0}, transform.Position)
	assert.InDelta(t, 5.0, transform.Position.Sub(state.Focus).Len(), eps)
	assert.InDelta(t, 1.0, transform.Rotation.Len(), eps)
}

func TestRotatePitchKeepsHorizonLevel(t *testing.T) {
	state, transform := startingPose(5)
	frame := input.NewFrame(mgl32.Vec2{37, 91}, 0, input.WithButtonsHeld(common.MouseButtonMiddle))

	_, transform, _ = Update(state, transform, frame, testViewport, testProjection, DefaultSettings())
	right := transform.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
	assert.InDelta(t, 0.0, right.Y(), eps)
}

func TestUpsideDownRefreshedOnlyOnTransition(t *testing.T) {
	state := NewOrbitState(mgl32.Vec3{}, 5)
	transform := Recompose(state, Transform{Rotation: mgl32.QuatRotate(math.Pi, mgl32.Vec3{1, 0, 0})})
	middle := uint32(common.MouseButtonMiddle)

	held := input.NewFrame(mgl32.Vec2{}, 0, input.WithButtonsHeld(middle))
	state, transform, _ = Update(state, transform, held, testViewport, testProjection, DefaultSettings())
	assert.False(t, state.UpsideDown)

	pressed := input.NewFrame(mgl32.Vec2{}, 0, input.WithButtonPressed(middle))
	state, transform, _ = Update(state, transform, pressed, testViewport, testProjection, DefaultSettings())
	assert.True(t, state.UpsideDown)

	// righting the camera mid-drag does not clear the flag
	transform = Recompose(state, IdentityTransform())
	state, transform, _ = Update(state, transform, held, testViewport, testProjection, DefaultSettings())
	assert.True(t, state.UpsideDown)

	released := input.NewFrame(mgl32.Vec2{}, 0, input.WithButtonReleased(middle))
	state, _, _ = Update(state, transform, released, testViewport, testProjection, DefaultSettings())
	assert.False(t, state.UpsideDown)
}

func TestUpsideDownInvertsYaw(t *testing.T) {
	state, transform := startingPose(5)
	frame := input.NewFrame(mgl32.Vec2{200, 0}, 0, input.WithButtonsHeld(common.MouseButtonMiddle))

	_, normal, _ := Update(state, transform, frame, testViewport, testProjection, DefaultSettings())
	state.UpsideDown = true
	_, inverted, _ := Update(state, transform, frame, testViewport, testProjection, DefaultSettings())

	assertVec3(t, mgl32.Vec3{-5, 0, 0}, normal.Position)
	assertVec3(t, mgl32.Vec3{5, 0, 0}, inverted.Position)
}

func TestPanPerspective(t *testing.T) {
	state, transform := startingPose(5)
	projection := Projection{Perspective: true, Fov: 1, AspectRatio: 1}
	viewport := Viewport{Width: 100, Height: 100}
	frame := input.NewFrame(mgl32.Vec2{10, 20}, 0,
		input.WithButtonsHeld(common.MouseButtonMiddle),
		input.WithKeysHeld(common.KeyRightShift),
	)

	state, transform, action := Update(state, transform, frame, viewport, projection, DefaultSettings())
	require.Equal(t, ActionPan, action.Kind)
	assertVec3(t, mgl32.Vec3{-0.5, 1, 0}, state.Focus)
	assertVec3(t, mgl32.Vec3{-0.5, 1, 5}, transform.Position)
	assert.InDelta(t, 5.0, state.Radius, eps)
}

func TestPanOrthographicIsUnscaled(t *testing.T) {
	state, transform := startingPose(2)
	frame := input.NewFrame(mgl32.Vec2{1, 0}, 0,
		input.WithButtonsHeld(common.MouseButtonMiddle),
		input.WithKeysHeld(common.KeyLeftShift),
	)

	state, _, _ = Update(state, transform, frame, testViewport, Projection{}, DefaultSettings())
	assertVec3(t, mgl32.Vec3{-2, 0, 0}, state.Focus)
}

func TestZeroViewportSkipsPointerGestures(t *testing.T) {
	state, transform := startingPose(5)
	frame := input.NewFrame(mgl32.Vec2{10, 10}, 0, input.WithButtonsHeld(common.MouseButtonMiddle))

	gotState, gotTransform, action := Update(state, transform, frame, Viewport{Width: 0, Height: 600}, testProjection, DefaultSettings())
	assert.Equal(t, ActionNone, action.Kind)
	assert.Equal(t, state, gotState)
	assert.Equal(t, transform, gotTransform)
}

func TestRecomposeIsIdempotent(t *testing.T) {
	state := NewOrbitState(mgl32.Vec3{1, 2, 3}, 7)
	transform := Transform{
		Position: mgl32.Vec3{100, 100, 100},
		Rotation: mgl32.QuatRotate(0.7, mgl32.Vec3{0, 1, 0}).Mul(mgl32.QuatRotate(-0.3, mgl32.Vec3{1, 0, 0})),
	}

	once := Recompose(state, transform)
	twice := Recompose(state, once)
	assert.Equal(t, once, twice)
	assert.InDelta(t, 7.0, once.Position.Sub(state.Focus).Len(), eps)
}

func TestFrameSelection(t *testing.T) {
	state := NewOrbitState(mgl32.Vec3{3, 3, 3}, 2)
	transform := Transform{Position: mgl32.Vec3{0, 5, 0}, Rotation: mgl32.QuatIdent()}

	got, err := FrameSelection(state, transform, []mgl32.Vec3{{1, 0, 0}, {-1, 0, 0}})
	require.NoError(t, err)
	assertVec3(t, mgl32.Vec3{}, got.Focus)
	assert.InDelta(t, 5.0, got.Radius, eps)
}

func TestFrameSelectionEmpty(t *testing.T) {
	state := NewOrbitState(mgl32.Vec3{3, 3, 3}, 2)

	got, err := FrameSelection(state, IdentityTransform(), nil)
	assert.ErrorIs(t, err, ErrEmptySelection)
	assert.Equal(t, state, got)
}

func TestFrameSelectionOnCameraPosition(t *testing.T) {
	transform := Transform{Position: mgl32.Vec3{1, 1, 1}, Rotation: mgl32.QuatIdent()}

	got, err := FrameSelection(NewOrbitState(mgl32.Vec3{}, 5), transform, []mgl32.Vec3{{1, 1, 1}})
	require.NoError(t, err)
	assert.Equal(t, MinRadius, got.Radius)
}

func TestNewOrbitState(t *testing.T) {
	assert.Equal(t, MinRadius, NewOrbitState(mgl32.Vec3{}, 0).Radius)
	assert.InDelta(t, 12.0, NewOrbitStateFromPosition(mgl32.Vec3{0, 0, 12}, mgl32.Vec3{}).Radius, eps)
}
