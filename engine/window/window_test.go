package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-shaderlab/common"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestBindCollector(t *testing.T) {
	// engineWindow without a platform window still dispatches callbacks
	w := &engineWindow{}
	c := input.NewCollector()
	BindCollector(w, c)

	w.on.mouseMove(100, 100)
	w.on.buttonDown(common.MouseButtonMiddle)
	w.on.mouseMove(110, 95)
	w.on.scroll(2)
	w.on.keyDown(common.KeyLeftShift)
	w.on.keyDown(common.KeyPeriod)
	w.on.keyUp(common.KeyPeriod)

	f := c.Drain()
	assert.Equal(t, mgl32.Vec2{10, -5}, f.Motion)
	assert.Equal(t, float32(2), f.Scroll)
	assert.True(t, f.JustPressed(common.MouseButtonMiddle))
	assert.True(t, f.KeyPressed(common.KeyLeftShift))
	assert.True(t, f.KeyJustReleased(common.KeyPeriod))

	w.on.buttonUp(common.MouseButtonMiddle)
	f = c.Drain()
	assert.True(t, f.JustReleased(common.MouseButtonMiddle))
	assert.False(t, f.Pressed(common.MouseButtonMiddle))
}

func TestBuilderOptions(t *testing.T) {
	w := &engineWindow{width: 1280, height: 720}
	for _, opt := range []WindowBuilderOption{
		WithTitle("lab"),
		WithSize(0, 900),
		WithSizeLimits(10, 20, 30, 40),
	} {
		opt(w)
	}
	assert.Equal(t, "lab", w.title)
	assert.Equal(t, 1280, w.Width())
	assert.Equal(t, 900, w.Height())
	assert.Equal(t, sizeLimits{minWidth: 10, minHeight: 20, maxWidth: 30, maxHeight: 40}, w.limits)
	assert.False(t, w.IsRunning())
	assert.ErrorIs(t, w.Close(), ErrNotOpen)
}

func TestSetSizeIsVisibleAcrossGoroutines(t *testing.T) {
	w := &engineWindow{}
	var got [2]int
	w.SetResizeCallback(func(width, height int) { got = [2]int{width, height} })

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_ = w.Width() * w.Height()
		}
	}()
	w.setSize(1600, 900)
	<-done

	assert.Equal(t, [2]int{1600, 900}, got)
	assert.Equal(t, 1600, w.Width())
	assert.Equal(t, 900, w.Height())
}
