package mesh

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// ErrBatcherClosed is returned by Generate after Close.
var ErrBatcherClosed = errors.New("mesh: batcher closed")

// Spec names one grid to generate in a batch.
type Spec struct {
	Name string
	Rows int
	Cols int
	Size float32
}

// PlaneSpec returns the Spec of a SubdividedPlane.
//
// Parameters:
//   - name: the mesh label
//   - plane: the plane to generate
//
// Returns:
//   - Spec: a spec with Subdivisions+2 rows and columns
func PlaneSpec(name string, plane SubdividedPlane) Spec {
	n := int(plane.Subdivisions) + 2
	return Spec{Name: name, Rows: n, Cols: n, Size: plane.Size}
}

// Batcher generates many grids in parallel on a reusable worker pool.
type Batcher interface {
	// Generate builds every spec. Results are in input order.
	//
	// Parameters:
	//   - specs: the grids to generate
	//
	// Returns:
	//   - []*GridMesh: one mesh per spec, nil if any failed
	//   - error: the error of the first failing spec in input order
	Generate(specs []Spec) ([]*GridMesh, error)

	// Workers returns the maximum number of concurrent generators.
	//
	// Returns:
	//   - int: the worker count
	Workers() int

	// Close stops the worker goroutines and waits for them to exit.
	// Safe to call multiple times; Generate fails with ErrBatcherClosed afterwards.
	Close()
}

type batcherImpl struct {
	mu      *sync.Mutex
	workers int
	pool    worker.DynamicWorkerPool
	nextID  int
	closed  bool
	logger  *log.Logger
}

var _ Batcher = &batcherImpl{}

// BatcherOption is a functional option for configuring a Batcher.
type BatcherOption func(*batcherImpl)

// WithWorkers sets the maximum number of concurrent generators.
//
// Parameters:
//   - workers: worker count, non-positive values keep the default of runtime.NumCPU()
//
// Returns:
//   - BatcherOption: functional option to set the worker count
func WithWorkers(workers int) BatcherOption {
	return func(b *batcherImpl) {
		if workers > 0 {
			b.workers = workers
		}
	}
}

// WithLogger sets the logger used to report batch timings.
//
// Parameters:
//   - logger: the logger, nil disables batch logging
//
// Returns:
//   - BatcherOption: functional option to set the logger
func WithLogger(logger *log.Logger) BatcherOption {
	return func(b *batcherImpl) {
		b.logger = logger
	}
}

// NewBatcher creates a Batcher and starts its worker goroutines.
// The workers live until Close is called.
//
// Parameters:
//   - options: functional options to configure the batcher
//
// Returns:
//   - Batcher: the newly created batcher
func NewBatcher(options ...BatcherOption) Batcher {
	b := &batcherImpl{
		mu:      &sync.Mutex{},
		workers: runtime.NumCPU(),
		logger:  log.Default(),
	}
	for _, opt := range options {
		opt(b)
	}
	b.pool = worker.NewDynamicWorkerPool(b.workers, 256, 1*time.Second)
	return b
}

func (b *batcherImpl) Workers() int {
	return b.workers
}

func (b *batcherImpl) Generate(specs []Spec) ([]*GridMesh, error) {
	// One batch at a time keeps task IDs unique.
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrBatcherClosed
	}

	start := time.Now()
	meshes := make([]*GridMesh, len(specs))
	errs := make([]error, len(specs))

	// pool.Wait() tracks worker exits, not task completion, so each batch gets its own barrier.
	var wg sync.WaitGroup
	for i, spec := range specs {
		wg.Add(1)
		b.pool.SubmitTask(worker.Task{
			ID: b.nextID,
			Do: func() (any, error) {
				defer wg.Done()
				m, err := Generate(spec.Rows, spec.Cols, spec.Size)
				if err != nil {
					err = fmt.Errorf("generate %q: %w", spec.Name, err)
				}
				meshes[i], errs[i] = m, err
				return m, err
			},
		})
		b.nextID++
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if b.logger != nil {
		b.logger.Printf("[Mesh] generated %d grids in %s", len(specs), time.Since(start))
	}
	return meshes, nil
}

func (b *batcherImpl) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true

	// Each worker takes exactly one exit task, since Goexit ends the goroutine that runs it.
	// pool.Stop alone is not enough: a worker discards stop signals addressed to other workers.
	var wg sync.WaitGroup
	for range b.workers {
		wg.Add(1)
		b.pool.SubmitTask(worker.Task{
			ID: b.nextID,
			Do: func() (any, error) {
				defer wg.Done()
				runtime.Goexit()
				return nil, nil
			},
		})
		b.nextID++
	}
	wg.Wait()
	b.pool.Stop()
}
