package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, 0, Coalesce(0, 0))
	assert.Equal(t, []int{1}, CoalesceSlice(nil, []int{}, []int{1}, []int{2}))
	assert.Nil(t, CoalesceSlice[int](nil, []int{}))
}

func TestNames(t *testing.T) {
	k, ok := KeyByName("period")
	assert.True(t, ok)
	assert.Equal(t, uint32(KeyPeriod), k)

	_, ok = KeyByName("hyper")
	assert.False(t, ok)

	b, ok := MouseButtonByName("middle")
	assert.True(t, ok)
	assert.Equal(t, uint32(MouseButtonMiddle), b)
}

func TestViewFromTransformInvertsCameraTransform(t *testing.T) {
	position := mgl32.Vec3{1, 2, 12}
	rotation := mgl32.QuatRotate(math.Pi/5, mgl32.Vec3{0, 1, 0}).Mul(mgl32.QuatRotate(-0.3, mgl32.Vec3{1, 0, 0}))

	view := ViewFromTransform(position, rotation)
	want := mgl32.Translate3D(position.X(), position.Y(), position.Z()).Mul4(rotation.Mat4()).Inv()
	for i := range view {
		assert.InDelta(t, want[i], view[i], 1e-5, "element %d", i)
	}

	eye := view.Mul4x1(position.Vec4(1))
	assert.InDelta(t, 0.0, eye.Vec3().Len(), 1e-5)
}

func TestProjectionDepthRange(t *testing.T) {
	near, far := float32(0.1), float32(100)
	for name, proj := range map[string]mgl32.Mat4{
		"perspective":  Perspective(math.Pi/4, 1.5, near, far),
		"orthographic": Orthographic(3, 1.5, near, far),
	} {
		t.Run(name, func(t *testing.T) {
			n := proj.Mul4x1(mgl32.Vec4{0, 0, -near, 1})
			f := proj.Mul4x1(mgl32.Vec4{0, 0, -far, 1})
			assert.InDelta(t, 0.0, n.Z()/n.W(), 1e-5)
			assert.InDelta(t, 1.0, f.Z()/f.W(), 1e-5)
		})
	}
}

func TestCentroid(t *testing.T) {
	_, ok := Centroid(nil)
	assert.False(t, ok)

	c, ok := Centroid([]mgl32.Vec3{{1, 0, 0}, {-1, 2, 0}, {3, 1, 3}})
	assert.True(t, ok)
	assert.InDelta(t, 1.0, c.X(), 1e-6)
	assert.InDelta(t, 1.0, c.Y(), 1e-6)
	assert.InDelta(t, 1.0, c.Z(), 1e-6)
}
