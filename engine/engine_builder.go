package engine

import (
	"log"

	"github.com/Carmen-Shannon/oxy-shaderlab/engine/input"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/profiler"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler sets the profiler used when profiling is enabled.
//
// Parameters:
//   - p: the profiler
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithTickRate sets the engine tick rate in ticks per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - tps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(tps float64) EngineBuilderOption {
	return func(e *engine) {
		e.engineTickRate = tickInterval(tps)
	}
}

// WithWindow sets the window whose events feed the engine's input collector.
// Without a window the engine runs headless and input must be pushed into Collector() directly.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithCollector replaces the engine's input collector.
//
// Parameters:
//   - c: the collector
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCollector(c input.Collector) EngineBuilderOption {
	return func(e *engine) {
		if c != nil {
			e.collector = c
		}
	}
}

// WithGate sets the UI gate consulted before cameras consume pointer input.
//
// Parameters:
//   - gate: the gate (default input.NoUI)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithGate(gate input.Gate) EngineBuilderOption {
	return func(e *engine) {
		e.gate = gate
	}
}

// WithTickCallback registers the function called each engine tick.
//
// Parameters:
//   - callback: function receiving the delta time in seconds and the tick's input
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickCallback(callback TickCallback) EngineBuilderOption {
	return func(e *engine) {
		e.tickCallback = callback
	}
}

// WithLogger sets the logger used for engine events.
//
// Parameters:
//   - logger: the logger, nil keeps log.Default()
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(logger *log.Logger) EngineBuilderOption {
	return func(e *engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}
