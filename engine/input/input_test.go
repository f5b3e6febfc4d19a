package input

import (
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-shaderlab/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCollectorAccumulatesMotionAndScroll(t *testing.T) {
	c := NewCollector()

	c.MouseMove(10, 10) // reference point only
	c.MouseMove(15, 8)
	c.MouseMove(20, 4)
	c.MouseMotion(1, 1)
	c.Scroll(1.5)
	c.Scroll(-0.5)

	f := c.Drain()
	assert.Equal(t, mgl32.Vec2{11, -5}, f.Motion)
	assert.Equal(t, float32(1), f.Scroll)

	next := c.Drain()
	assert.Equal(t, mgl32.Vec2{}, next.Motion)
	assert.Zero(t, next.Scroll)
	assert.True(t, next.Empty())
}

func TestCollectorButtonTransitions(t *testing.T) {
	c := NewCollector()

	c.ButtonDown(common.MouseButtonMiddle)
	f := c.Drain()
	assert.True(t, f.Pressed(common.MouseButtonMiddle))
	assert.True(t, f.JustPressed(common.MouseButtonMiddle))
	assert.True(t, f.ButtonChanged(common.MouseButtonMiddle))

	// held across ticks without a new transition
	f = c.Drain()
	assert.True(t, f.Pressed(common.MouseButtonMiddle))
	assert.False(t, f.ButtonChanged(common.MouseButtonMiddle))

	c.ButtonUp(common.MouseButtonMiddle)
	f = c.Drain()
	assert.False(t, f.Pressed(common.MouseButtonMiddle))
	assert.True(t, f.JustReleased(common.MouseButtonMiddle))

	// release without a press is not a transition
	c.ButtonUp(common.MouseButtonLeft)
	f = c.Drain()
	assert.False(t, f.ButtonChanged(common.MouseButtonLeft))
}

func TestCollectorKeys(t *testing.T) {
	c := NewCollector()

	c.KeyDown(common.KeyLeftShift)
	c.KeyDown(common.KeyLeftShift) // auto-repeat
	f := c.Drain()
	assert.True(t, f.KeyPressed(common.KeyLeftShift))
	assert.True(t, f.AnyKeyPressed(common.KeyRightShift, common.KeyLeftShift))
	assert.False(t, f.KeyJustReleased(common.KeyLeftShift))

	c.KeyDown(common.KeyPeriod)
	c.KeyUp(common.KeyPeriod)
	f = c.Drain()
	assert.False(t, f.KeyPressed(common.KeyPeriod))
	assert.True(t, f.KeyJustReleased(common.KeyPeriod))
	assert.False(t, f.Empty())

	f = c.Drain()
	assert.False(t, f.KeyJustReleased(common.KeyPeriod))
}

func TestCollectorDrainedFrameIsIndependent(t *testing.T) {
	c := NewCollector()
	c.ButtonDown(common.MouseButtonMiddle)
	f := c.Drain()

	c.ButtonUp(common.MouseButtonMiddle)
	assert.True(t, f.Pressed(common.MouseButtonMiddle))
	assert.False(t, f.JustReleased(common.MouseButtonMiddle))
}

func TestCollectorConcurrentWriters(t *testing.T) {
	c := NewCollector()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.MouseMotion(1, 0)
				c.Scroll(1)
			}
		}()
	}
	wg.Wait()

	f := c.Drain()
	assert.Equal(t, float32(800), f.Motion.X())
	assert.Equal(t, float32(800), f.Scroll)
}

func TestNewFrameOptions(t *testing.T) {
	f := NewFrame(mgl32.Vec2{1, 2}, 3,
		WithButtonPressed(common.MouseButtonMiddle),
		WithKeysHeld(common.KeyRightShift),
		WithKeyReleased(common.KeyPeriod),
	)
	assert.Equal(t, mgl32.Vec2{1, 2}, f.Motion)
	assert.True(t, f.Pressed(common.MouseButtonMiddle))
	assert.True(t, f.JustPressed(common.MouseButtonMiddle))
	assert.True(t, f.KeyPressed(common.KeyRightShift))
	assert.True(t, f.KeyJustReleased(common.KeyPeriod))

	r := NewFrame(mgl32.Vec2{}, 0, WithButtonReleased(common.MouseButtonMiddle))
	assert.False(t, r.Pressed(common.MouseButtonMiddle))
	assert.True(t, r.ButtonChanged(common.MouseButtonMiddle))
}

func TestZeroFrameIsUsable(t *testing.T) {
	var f Frame
	assert.True(t, f.Empty())
	assert.False(t, f.Pressed(common.MouseButtonMiddle))
	assert.False(t, f.KeyPressed(common.KeyLeftShift))
}

func TestBindings(t *testing.T) {
	b := DefaultBindings()
	assert.Equal(t, uint32(common.MouseButtonMiddle), b.OrbitButton)
	assert.Equal(t, uint32(common.KeyPeriod), b.FrameSelectionKey)

	assert.False(t, b.PanModifierHeld(NewFrame(mgl32.Vec2{}, 0)))
	assert.True(t, b.PanModifierHeld(NewFrame(mgl32.Vec2{}, 0, WithKeysHeld(common.KeyRightShift))))
}

func TestBlocked(t *testing.T) {
	tests := []struct {
		name string
		gate Gate
		want bool
	}{
		{"nil gate", nil, false},
		{"no ui", NoUI, false},
		{"pointer over area", StaticGate{OverArea: true}, true},
		{"using pointer", StaticGate{Using: true}, true},
		{"wants input", StaticGate{WantsInput: true}, true},
		{"all clear", StaticGate{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Blocked(tt.gate))
		})
	}
}
