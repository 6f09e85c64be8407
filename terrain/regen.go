package terrain

import (
	"context"
	"sync"
)

// Regenerator rebuilds meshes on a background goroutine and double-buffers
// the result so readers never wait on generation.
type Regenerator struct {
	gen *Generator

	pending chan Params
	updates chan struct{}

	mu      sync.RWMutex
	front   *Mesh
	version uint64
	lastErr error
	busy    bool
}

// NewRegenerator wraps gen. Call Run to start the worker.
func NewRegenerator(gen *Generator) *Regenerator {
	return &Regenerator{
		gen:     gen,
		pending: make(chan Params, 1),
		updates: make(chan struct{}, 1),
	}
}

// Request queues p, replacing any request not yet picked up. Never blocks.
func (r *Regenerator) Request(p Params) {
	for {
		select {
		case r.pending <- p:
			return
		default:
		}
		// Drop the stale request
		select {
		case <-r.pending:
		default:
		}
	}
}

// Run processes requests until ctx is done.
func (r *Regenerator) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case p := <-r.pending:
			r.setBusy(true)
			mesh, err := r.gen.Generate(p)
			r.swap(mesh, err)
		}
	}
}

// Start runs the worker on its own goroutine.
func (r *Regenerator) Start(ctx context.Context) {
	go r.Run(ctx)
}

func (r *Regenerator) setBusy(b bool) {
	r.mu.Lock()
	r.busy = b
	r.mu.Unlock()
}

func (r *Regenerator) swap(mesh *Mesh, err error) {
	r.mu.Lock()
	r.busy = false
	r.lastErr = err
	if err == nil {
		r.front = mesh
		r.version++
	}
	r.mu.Unlock()

	select {
	case r.updates <- struct{}{}:
	default:
	}
}

// Current returns the last good mesh and its version. The mesh is nil until
// the first generation succeeds.
func (r *Regenerator) Current() (*Mesh, uint64) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.front, r.version
}

// Err returns the error from the most recent generation, nil if it succeeded.
func (r *Regenerator) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastErr
}

// Busy reports whether a generation is in flight.
func (r *Regenerator) Busy() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.busy
}

// Updates signals after every finished generation, successful or not.
func (r *Regenerator) Updates() <-chan struct{} {
	return r.updates
}
