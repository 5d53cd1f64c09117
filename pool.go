package vocabfmt

import (
	"errors"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps browser instances to limit memory (~200MB each).
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for Chrome child processes.
	cpuDivisor = 2
)

// ReporterPool manages Reporter instances for parallel report building.
// Each Reporter owns its browser, so n reports can print at once.
// Reporters are created lazily on first Acquire.
type ReporterPool struct {
	size      int
	opts      []Option
	reporters []*Reporter
	sem       chan *Reporter
	mu        sync.Mutex
	created   int
	closed    bool
}

// NewReporterPool creates a pool with capacity for n Reporters, each built
// with opts. Option errors surface from Acquire.
func NewReporterPool(n int, opts ...Option) *ReporterPool {
	if n < 1 {
		n = 1
	}

	return &ReporterPool{
		size:      n,
		opts:      opts,
		reporters: make([]*Reporter, 0, n),
		sem:       make(chan *Reporter, n),
	}
}

// Acquire gets a Reporter from the pool, creating one if capacity remains.
// Blocks if all Reporters are in use.
func (p *ReporterPool) Acquire() (*Reporter, error) {
	select {
	case r, ok := <-p.sem:
		if !ok {
			return nil, ErrPoolClosed
		}
		return r, nil
	default:
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create outside the lock
		r, err := NewReporter(p.opts...)
		if err != nil {
			p.mu.Lock()
			p.created--
			p.mu.Unlock()
			return nil, err
		}

		p.mu.Lock()
		p.reporters = append(p.reporters, r)
		p.mu.Unlock()

		return r, nil
	}
	p.mu.Unlock()

	r, ok := <-p.sem
	if !ok {
		return nil, ErrPoolClosed
	}
	return r, nil
}

// Release returns a Reporter to the pool. Releasing after Close is a
// no-op; Close has already shut the Reporter down.
func (p *ReporterPool) Release(r *Reporter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	// sem holds size slots, one per Reporter, so this never blocks
	select {
	case p.sem <- r:
	default:
	}
}

// Close releases all browser resources.
// Returns an aggregated error if several Reporters fail to close.
func (p *ReporterPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sem)
	reporters := p.reporters
	p.mu.Unlock()

	var errs []error
	for _, r := range reporters {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Size returns the pool capacity.
func (p *ReporterPool) Size() int {
	return p.size
}

// ResolvePoolSize determines the worker count.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is container-aware once automaxprocs has run
	n := runtime.GOMAXPROCS(0) / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
