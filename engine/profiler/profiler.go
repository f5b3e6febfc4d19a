package profiler

import (
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
)

// Stats is one reporting interval's worth of measurements.
type Stats struct {
	// TickRate is the measured ticks per second.
	TickRate float64
	// Events counts recorded events by name, e.g. camera actions.
	Events map[string]int
	// HeapMB is the live heap size.
	HeapMB float64
	// AllocRateMB is the heap allocation rate in MB/s.
	AllocRateMB float64
	// GCCount is the cumulative number of completed GC cycles.
	GCCount uint32
}

// String formats the stats as a single log line.
func (s Stats) String() string {
	names := make([]string, 0, len(s.Events))
	for name := range s.Events {
		names = append(names, name)
	}
	sort.Strings(names)

	var events strings.Builder
	for i, name := range names {
		if i > 0 {
			events.WriteByte(' ')
		}
		fmt.Fprintf(&events, "%s=%d", name, s.Events[name])
	}
	return fmt.Sprintf("TPS: %.2f | Events: [%s] | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d",
		s.TickRate, events.String(), s.HeapMB, s.AllocRateMB, s.GCCount)
}

// Profiler tracks tick rate, named event counts and memory statistics.
// Outputs stats to the log at a configurable interval. Record may be called from any goroutine.
type Profiler struct {
	mu *sync.Mutex

	tickCount      int
	lastTime       time.Time
	updateInterval time.Duration
	events         map[string]int
	memStats       runtime.MemStats
	lastTotalAlloc uint64
	last           Stats

	logger *log.Logger
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often stats are reported.
//
// Parameters:
//   - interval: the reporting interval (default 1s)
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// WithLogger sets the logger stats are written to.
//
// Parameters:
//   - logger: the logger, nil keeps log.Default()
//
// Returns:
//   - ProfilerOption: option function to apply
func WithLogger(logger *log.Logger) ProfilerOption {
	return func(p *Profiler) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		mu:             &sync.Mutex{},
		lastTime:       time.Now(),
		updateInterval: time.Second,
		events:         make(map[string]int),
		logger:         log.Default(),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Record counts one occurrence of a named event in the current interval.
//
// Parameters:
//   - event: the event name
func (p *Profiler) Record(event string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events[event]++
}

// Tick should be called once per engine tick.
// Logs statistics when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	return p.tick(time.Now())
}

// Last returns the most recently reported stats.
//
// Returns:
//   - Stats: the last interval's stats, zero before the first report
func (p *Profiler) Last() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

func (p *Profiler) tick(now time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.tickCount++
	elapsed := now.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc

	p.last = Stats{
		TickRate:    float64(p.tickCount) / elapsed.Seconds(),
		Events:      p.events,
		HeapMB:      float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB: float64(allocDelta) / 1024 / 1024 / elapsed.Seconds(),
		GCCount:     p.memStats.NumGC,
	}
	p.logger.Printf("[Profiler] %s", p.last)

	p.tickCount = 0
	p.lastTime = now
	p.lastTotalAlloc = p.memStats.TotalAlloc
	p.events = make(map[string]int)
	return true
}
