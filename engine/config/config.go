package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/Carmen-Shannon/oxy-shaderlab/common"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is returned when a decoded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the demo program's configuration, normally read from a TOML file.
type Config struct {
	Window   WindowConfig   `toml:"window"`
	Engine   EngineConfig   `toml:"engine"`
	Camera   CameraConfig   `toml:"camera"`
	Bindings BindingsConfig `toml:"bindings"`
	Planes   []PlaneConfig  `toml:"planes"`
}

// WindowConfig sizes and labels the window.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// EngineConfig tunes the tick loop.
type EngineConfig struct {
	TickRate  float64 `toml:"tick_rate"`
	Profiling bool    `toml:"profiling"`
}

// CameraConfig places the orbit camera and sets its projection.
type CameraConfig struct {
	Focus           [3]float32 `toml:"focus"`
	Position        [3]float32 `toml:"position"`
	FovDegrees      float32    `toml:"fov_degrees"`
	Near            float32    `toml:"near"`
	Far             float32    `toml:"far"`
	Orthographic    bool       `toml:"orthographic"`
	OrthoHalfHeight float32    `toml:"ortho_half_height"`
	ZoomSensitivity float32    `toml:"zoom_sensitivity"`
	MinRadius       float32    `toml:"min_radius"`
}

// BindingsConfig names the orbit and pan controls, e.g. "middle" or "left_shift".
// See common.KeyByName and common.MouseButtonByName for the accepted names.
type BindingsConfig struct {
	OrbitButton       string   `toml:"orbit_button"`
	PanButton         string   `toml:"pan_button"`
	PanKeys           []string `toml:"pan_keys"`
	FrameSelectionKey string   `toml:"frame_selection_key"`
}

// PlaneConfig describes one subdivided plane in the demo scene.
type PlaneConfig struct {
	Name         string     `toml:"name"`
	Subdivisions uint32     `toml:"subdivisions"`
	Size         float32    `toml:"size"`
	Position     [3]float32 `toml:"position"`
	Selected     bool       `toml:"selected"`
}

// Default returns the demo scene: four planes around the origin and a camera 12 units down +Z.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		Window: WindowConfig{Title: "oxy-shaderlab", Width: 1290, Height: 700},
		Engine: EngineConfig{TickRate: 60},
		Camera: CameraConfig{
			Position:        [3]float32{0, 0, 12},
			FovDegrees:      45,
			Near:            0.1,
			Far:             1000,
			OrthoHalfHeight: 3,
			ZoomSensitivity: 0.002,
			MinRadius:       0.05,
		},
		Bindings: BindingsConfig{
			OrbitButton:       "middle",
			PanButton:         "middle",
			PanKeys:           []string{"left_shift", "right_shift"},
			FrameSelectionKey: "period",
		},
		Planes: []PlaneConfig{
			{Name: "moving texture", Subdivisions: 2, Size: 1, Position: [3]float32{0.8, 0, 2}},
			{Name: "health", Subdivisions: 0, Size: 1, Position: [3]float32{-2, 0, 2}},
			{Name: "wavy plane", Subdivisions: 25, Size: 2, Position: [3]float32{-2, 0, 0}, Selected: true},
			{Name: "simple divide", Subdivisions: 1, Size: 1, Position: [3]float32{0, 0, -2}},
		},
	}
}

// Load reads a TOML file over the defaults. Keys missing from the file keep their default
// values; a non-empty planes or pan_keys list in the file replaces the default list.
//
// Parameters:
//   - path: the TOML file path
//
// Returns:
//   - Config: the loaded configuration
//   - error: an I/O or decode error, or one wrapping ErrInvalidConfig
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r over the defaults and validates the result. Unknown keys are rejected.
//
// Parameters:
//   - r: the TOML source
//
// Returns:
//   - Config: the decoded configuration
//   - error: a decode error, or one wrapping ErrInvalidConfig
func Decode(r io.Reader) (Config, error) {
	def := Default()
	cfg := def
	// Lists are taken whole from the file or whole from the defaults.
	cfg.Planes = nil
	cfg.Bindings.PanKeys = nil

	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, strict.String())
		}
		return Config{}, err
	}

	cfg.Planes = common.CoalesceSlice(cfg.Planes, def.Planes)
	cfg.Bindings.PanKeys = common.CoalesceSlice(cfg.Bindings.PanKeys, def.Bindings.PanKeys)
	cfg.Window.Title = common.Coalesce(cfg.Window.Title, def.Window.Title)
	cfg.Bindings.PanButton = common.Coalesce(cfg.Bindings.PanButton, cfg.Bindings.OrbitButton)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
//
// Parameters:
//   - w: the destination
//   - cfg: the configuration to write
//
// Returns:
//   - error: an encode error
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Validate checks value ranges and that every binding name resolves.
//
// Returns:
//   - error: an error wrapping ErrInvalidConfig, or nil
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Engine.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate %v must be positive", ErrInvalidConfig, c.Engine.TickRate)
	case c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180:
		return fmt.Errorf("%w: fov_degrees %v out of range (0, 180)", ErrInvalidConfig, c.Camera.FovDegrees)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalidConfig, c.Camera.Near, c.Camera.Far)
	case c.Camera.Orthographic && c.Camera.OrthoHalfHeight <= 0:
		return fmt.Errorf("%w: ortho_half_height %v must be positive", ErrInvalidConfig, c.Camera.OrthoHalfHeight)
	case c.Camera.ZoomSensitivity <= 0:
		return fmt.Errorf("%w: zoom_sensitivity %v must be positive", ErrInvalidConfig, c.Camera.ZoomSensitivity)
	}
	if _, err := c.Bindings.Resolve(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Planes))
	for i, p := range c.Planes {
		if p.Name == "" {
			return fmt.Errorf("%w: plane %d has no name", ErrInvalidConfig, i)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate plane %q", ErrInvalidConfig, p.Name)
		}
		seen[p.Name] = true
		if p.Size <= 0 {
			return fmt.Errorf("%w: plane %q size %v must be positive", ErrInvalidConfig, p.Name, p.Size)
		}
	}
	return nil
}

// Resolve converts the binding names to key and button codes.
//
// Returns:
//   - input.Bindings: the resolved bindings
//   - error: an error wrapping ErrInvalidConfig naming the first unknown name
func (b BindingsConfig) Resolve() (input.Bindings, error) {
	var out input.Bindings
	var ok bool
	if out.OrbitButton, ok = common.MouseButtonByName(b.OrbitButton); !ok {
		return input.Bindings{}, fmt.Errorf("%w: unknown orbit_button %q", ErrInvalidConfig, b.OrbitButton)
	}
	if out.PanButton, ok = common.MouseButtonByName(b.PanButton); !ok {
		return input.Bindings{}, fmt.Errorf("%w: unknown pan_button %q", ErrInvalidConfig, b.PanButton)
	}
	if out.FrameSelectionKey, ok = common.KeyByName(b.FrameSelectionKey); !ok {
		return input.Bindings{}, fmt.Errorf("%w: unknown frame_selection_key %q", ErrInvalidConfig, b.FrameSelectionKey)
	}
	for _, name := range b.PanKeys {
		key, ok := common.KeyByName(name)
		if !ok {
			return input.Bindings{}, fmt.Errorf("%w: unknown pan key %q", ErrInvalidConfig, name)
		}
		out.PanKeys = append(out.PanKeys, key)
	}
	return out, nil
}

// Fov returns the vertical field of view in radians.
//
// Returns:
//   - float32: the field of view
func (c CameraConfig) Fov() float32 {
	return c.FovDegrees * math.Pi / 180
}

// FocusVec returns the focus as a vector.
func (c CameraConfig) FocusVec() mgl32.Vec3 {
	return mgl32.Vec3(c.Focus)
}

// PositionVec returns the spawn position as a vector.
func (c CameraConfig) PositionVec() mgl32.Vec3 {
	return mgl32.Vec3(c.Position)
}

// SelectedPositions returns the positions of the planes marked selected.
//
// Returns:
//   - []mgl32.Vec3: the selected plane positions, in declaration order
func (c Config) SelectedPositions() []mgl32.Vec3 {
	var out []mgl32.Vec3
	for _, p := range c.Planes {
		if p.Selected {
			out = append(out, mgl32.Vec3(p.Position))
		}
	}
	return out
}
