package config

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-shaderlab/common"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	bindings, err := cfg.Bindings.Resolve()
	require.NoError(t, err)
	assert.Equal(t, input.DefaultBindings(), bindings)

	assert.Len(t, cfg.Planes, 4)
	assert.Equal(t, []mgl32.Vec3{{-2, 0, 0}}, cfg.SelectedPositions())
	assert.InDelta(t, math.Pi/4, cfg.Camera.Fov(), 1e-6)
	assert.Equal(t, mgl32.Vec3{0, 0, 12}, cfg.Camera.PositionVec())
}

func TestDecodeOverlaysDefaults(t *testing.T) {
	src := `
[window]
width = 800

[camera]
focus = [1.0, 2.0, 3.0]
fov_degrees = 60.0

[bindings]
orbit_button = "right"
pan_keys = ["left_control"]

[[planes]]
name = "floor"
subdivisions = 10
size = 4.0
selected = true
`
	cfg, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 700, cfg.Window.Height)
	assert.Equal(t, "oxy-shaderlab", cfg.Window.Title)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cfg.Camera.FocusVec())
	assert.Equal(t, float32(0.1), cfg.Camera.Near)
	assert.InDelta(t, math.Pi/3, cfg.Camera.Fov(), 1e-6)

	bindings, err := cfg.Bindings.Resolve()
	require.NoError(t, err)
	assert.Equal(t, uint32(common.MouseButtonRight), bindings.OrbitButton)
	assert.Equal(t, uint32(common.MouseButtonMiddle), bindings.PanButton)
	assert.Equal(t, []uint32{common.KeyLeftControl}, bindings.PanKeys)

	require.Len(t, cfg.Planes, 1)
	assert.Equal(t, PlaneConfig{Name: "floor", Subdivisions: 10, Size: 4, Selected: true}, cfg.Planes[0])
}

func TestDecodeEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown key", "[window]\ncolour = \"red\"\n"},
		{"zero tick rate", "[engine]\ntick_rate = 0.0\n"},
		{"inverted clip planes", "[camera]\nnear = 10.0\nfar = 1.0\n"},
		{"flat orthographic volume", "[camera]\northographic = true\northo_half_height = 0.0\n"},
		{"unknown button", "[bindings]\norbit_button = \"thumb\"\n"},
		{"unknown pan key", "[bindings]\npan_keys = [\"hyper\"]\n"},
		{"flat plane", "[[planes]]\nname = \"a\"\nsize = 0.0\n"},
		{"duplicate plane", "[[planes]]\nname = \"a\"\nsize = 1.0\n[[planes]]\nname = \"a\"\nsize = 1.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestDecodeOrthoHalfHeightOnlyCheckedWhenOrthographic(t *testing.T) {
	cfg, err := Decode(strings.NewReader("[camera]\northo_half_height = -1.0\n"))
	require.NoError(t, err)
	assert.False(t, cfg.Camera.Orthographic)

	cfg, err = Decode(strings.NewReader("[camera]\northographic = true\northo_half_height = 2.5\n"))
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), cfg.Camera.OrthoHalfHeight)
}

func TestDecodeSyntaxError(t *testing.T) {
	_, err := Decode(strings.NewReader("[window\n"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestEncodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Default()))

	cfg, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shaderlab.toml")
	require.NoError(t, os.WriteFile(path, []byte("[engine]\ntick_rate = 120.0\nprofiling = true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 120.0, cfg.Engine.TickRate)
	assert.True(t, cfg.Engine.Profiling)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
