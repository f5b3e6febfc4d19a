package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/Carmen-Shannon/oxy-shaderlab/engine"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/camera"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/config"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/mesh"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/window"
)

func main() {
	configPath := flag.String("config", "shaderlab.toml", "path to a TOML config file; defaults are used if it does not exist")
	dumpConfig := flag.Bool("dump-config", false, "print the effective config as TOML and exit")
	flag.Parse()

	cfg := loadConfig(*configPath)
	if *dumpConfig {
		if err := config.Encode(os.Stdout, cfg); err != nil {
			log.Fatalf("[Shaderlab] %v", err)
		}
		return
	}

	// ── Meshes ──────────────────────────────────────────────────────────
	specs := make([]mesh.Spec, len(cfg.Planes))
	for i, p := range cfg.Planes {
		specs[i] = mesh.PlaneSpec(p.Name, mesh.SubdividedPlane{Subdivisions: p.Subdivisions, Size: p.Size})
	}
	batcher := mesh.NewBatcher()
	meshes, err := batcher.Generate(specs)
	batcher.Close()
	if err != nil {
		log.Fatalf("[Shaderlab] %v", err)
	}

	// Uploads are logged until a GPU path is attached to the sink.
	sink := mesh.SinkFunc(func(b mesh.Buffers) error {
		log.Printf("[Shaderlab] mesh %q: %d vertices (%d bytes), %d indices (%d bytes)",
			b.Name, b.VertexCount, len(b.Vertices), b.IndexCount, len(b.Indices))
		return nil
	})
	for i, m := range meshes {
		if err := mesh.Upload(sink, specs[i].Name, m); err != nil {
			log.Fatalf("[Shaderlab] %v", err)
		}
	}

	// ── Engine + Window ─────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithProfiling(cfg.Engine.Profiling),
		engine.WithTickRate(cfg.Engine.TickRate),
		engine.WithWindow(window.NewWindow(
			window.WithTitle(cfg.Window.Title),
			window.WithSize(cfg.Window.Width, cfg.Window.Height),
		)),
	)

	// ── Camera ──────────────────────────────────────────────────────────
	bindings, err := cfg.Bindings.Resolve()
	if err != nil {
		log.Fatalf("[Shaderlab] %v", err)
	}
	ctrl := camera.NewController(
		camera.WithFocus(cfg.Camera.FocusVec()),
		camera.WithPosition(cfg.Camera.PositionVec()),
		camera.WithBindings(bindings),
		camera.WithZoomSensitivity(cfg.Camera.ZoomSensitivity),
		camera.WithMinRadius(cfg.Camera.MinRadius),
		camera.WithSelectionSource(cfg.SelectedPositions),
	)

	camOpts := []camera.CameraBuilderOption{
		camera.WithFov(cfg.Camera.Fov()),
		camera.WithNear(cfg.Camera.Near),
		camera.WithFar(cfg.Camera.Far),
	}
	if cfg.Camera.Orthographic {
		camOpts = append(camOpts, camera.WithOrthographic(cfg.Camera.OrthoHalfHeight))
	}
	cam := camera.NewCamera(camOpts...)
	eng.AddCamera(cam, ctrl)

	log.Printf("[Shaderlab] camera at %v orbiting %v (radius %.2f)", ctrl.Position(), ctrl.Focus(), ctrl.Radius())
	eng.Run()
}

// loadConfig reads path, falling back to the defaults when the file does not exist.
func loadConfig(path string) config.Config {
	cfg, err := config.Load(path)
	switch {
	case err == nil:
		log.Printf("[Shaderlab] loaded config from %s", path)
		return cfg
	case errors.Is(err, os.ErrNotExist):
		log.Printf("[Shaderlab] %s not found, using defaults", path)
		return config.Default()
	default:
		log.Fatalf("[Shaderlab] %v", err)
		return config.Config{}
	}
}
