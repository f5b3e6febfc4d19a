package engine

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-shaderlab/engine/camera"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/input"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/profiler"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/window"
)

// TickCallback is called once per engine tick with the elapsed time and the tick's input.
type TickCallback func(deltaTime float32, frame input.Frame)

// engine implements the Engine interface.
// The window thread feeds the collector; the tick goroutine drains it.
type engine struct {
	mu *sync.Mutex

	tickRateChannel chan time.Duration

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once

	window    window.Window
	collector input.Collector
	gate      input.Gate

	cameras []cameraBinding

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   TickCallback

	logger *log.Logger
}

// cameraBinding pairs a camera with the orbit controller that drives it.
type cameraBinding struct {
	camera     camera.Camera
	controller camera.Controller
}

// Engine is the main entry point for the engine.
// It runs a fixed-rate tick loop that drains window input and drives orbit cameras.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance, nil when running headless
	Window() window.Window

	// Collector returns the input collector drained each tick.
	//
	// Returns:
	//   - input.Collector: the collector
	Collector() input.Collector

	// Viewport returns the current window size as a camera viewport.
	//
	// Returns:
	//   - camera.Viewport: the viewport, zero when running headless
	Viewport() camera.Viewport

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	//
	// Parameters:
	//   - tps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(tps float64)

	// SetTickCallback registers the function called each engine tick after the cameras update.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds and the tick's input
	SetTickCallback(callback TickCallback)

	// SetGate sets the UI gate consulted before cameras consume pointer input.
	//
	// Parameters:
	//   - gate: the gate, nil never blocks
	SetGate(gate input.Gate)

	// AddCamera registers a camera driven by an orbit controller. The controller is attached
	// to the camera, and the camera's aspect ratio follows window resizes.
	//
	// Parameters:
	//   - cam: the camera
	//   - ctrl: the controller driving it
	AddCamera(cam camera.Camera, ctrl camera.Controller)

	// Tick runs one engine tick immediately: drain input, update cameras, call the tick callback.
	//
	// Parameters:
	//   - deltaTime: the elapsed time in seconds
	//
	// Returns:
	//   - input.Frame: the input consumed by this tick
	Tick(deltaTime float32) input.Frame

	// Run starts the tick loop and the window message loop (blocks until the window closes
	// or Quit is called).
	Run()

	// Quit signals all engine goroutines to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// When a window is supplied, its input events are routed into the engine's collector.
//
// Parameters:
//   - options: functional options for engine configuration (window, tick rate, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:              &sync.Mutex{},
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		collector:       input.NewCollector(),
		gate:            input.NoUI,
		engineTickRate:  time.Second / 60,
		logger:          log.Default(),
	}

	for _, opt := range options {
		opt(e)
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))
	}

	if e.window != nil {
		window.BindCollector(e.window, e.collector)
		e.window.SetResizeCallback(func(width, height int) {
			if height <= 0 {
				return
			}
			e.mu.Lock()
			cameras := append([]cameraBinding(nil), e.cameras...)
			e.mu.Unlock()
			for _, cb := range cameras {
				cb.camera.SetAspect(float32(width) / float32(height))
			}
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Collector() input.Collector {
	return e.collector
}

func (e *engine) Viewport() camera.Viewport {
	if e.window == nil {
		return camera.Viewport{}
	}
	return camera.Viewport{Width: float32(e.window.Width()), Height: float32(e.window.Height())}
}

func (e *engine) SetGate(gate input.Gate) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gate = gate
}

func (e *engine) AddCamera(cam camera.Camera, ctrl camera.Controller) {
	cam.SetController(ctrl)
	if vp := e.Viewport(); vp.Height > 0 {
		cam.SetAspect(vp.Width / vp.Height)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cameras = append(e.cameras, cameraBinding{camera: cam, controller: ctrl})
}

func (e *engine) Tick(deltaTime float32) input.Frame {
	frame := e.collector.Drain()
	viewport := e.Viewport()

	e.mu.Lock()
	cameras := append([]cameraBinding(nil), e.cameras...)
	gate := e.gate
	callback := e.tickCallback
	profiling := e.profilingEnabled
	e.mu.Unlock()

	for _, cb := range cameras {
		action := cb.controller.Tick(frame, viewport, cb.camera.Projection(), gate)
		cb.camera.Update()
		if profiling && action.Kind != camera.ActionNone {
			e.profiler.Record(action.Kind.String())
		}
	}

	if callback != nil {
		callback(deltaTime, frame)
	}
	if profiling {
		e.profiler.Tick()
	}
	return frame
}

func (e *engine) Run() {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()

	e.handle()
	if e.window != nil {
		e.window.SetUpdateCallback(func() {
			select {
			case <-e.quitChannel:
				_ = e.window.Close()
			default:
			}
		})
		e.window.ProcessMessages()
	} else {
		<-e.quitChannel
	}
	// A closed window ends the run.
	e.signalQuit()
	e.wg.Wait()
	e.logger.Printf("[Engine] stopped")
}

func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
		close(e.quitChannel)
	})
}

// handle launches the tick goroutine, tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(1)
	go e.handleEngine()
}

// handleEngine runs the fixed-rate engine tick loop in its own goroutine.
// Listens for dynamic rate changes via tickRateChannel. Exits when the quit channel is closed.
// Recovers from panics in tick callbacks and signals quit on recovery.
func (e *engine) handleEngine() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			e.logger.Printf("[Engine] tick goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	e.mu.Lock()
	rate := e.engineTickRate
	e.mu.Unlock()
	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now
			e.Tick(dt)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.mu.Lock()
			e.engineTickRate = newRate
			e.mu.Unlock()
		}
	}
}

func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect on the next tick.
func (e *engine) SetTickRate(tps float64) {
	newRate := tickInterval(tps)

	e.mu.Lock()
	running := e.running
	if !running {
		e.engineTickRate = newRate
	}
	e.mu.Unlock()
	if !running {
		return
	}

	// Replace any pending update so the latest rate wins.
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

func (e *engine) SetTickCallback(callback TickCallback) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}

// tickInterval converts a tick rate to a ticker interval, defaulting to 60 ticks per second.
func tickInterval(tps float64) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	return time.Duration(float64(time.Second) / tps)
}
