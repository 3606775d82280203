package pool

import (
	"os"
	"sync/atomic"

	"github.com/sean-dougherty/seqio/errs"
)

// spinlock is a test-and-set lock over a short critical section (a slice
// push/pop). Expected contention is low, so a spinlock avoids the syscall
// overhead of a standard mutex for the common uncontended case.
type spinlock struct {
	state atomic.Int32
}

func (l *spinlock) Lock() {
	for !l.state.CompareAndSwap(0, 1) {
		// busy-wait; critical section is a couple of list operations
	}
}

func (l *spinlock) Unlock() {
	l.state.Store(0)
}

// FdPool is a pool of opened read-only file handles for one path.
//
// Readers acquire a handle via Acquire and release it via the returned
// Guard's Close method (directly, or implicitly via a managed Guard).
// The pool is safe for concurrent use from multiple goroutines; the
// critical section guarding the idle list is a spinlock rather than a
// sync.Mutex, per the low-contention, short-critical-section profile
// described for this component.
type FdPool struct {
	path string
	lock spinlock
	idle []*os.File
}

// NewFdPool creates a pool of read-only handles for path. No handles are
// opened until the first Acquire.
func NewFdPool(path string) *FdPool {
	return &FdPool{path: path}
}

// Path returns the filesystem path this pool serves handles for.
func (p *FdPool) Path() string {
	return p.path
}

// Acquire returns a Guard wrapping an idle handle, opening a new one if the
// pool has none cached. The returned Guard must be closed to return the
// handle to the pool.
func (p *FdPool) Acquire() (*Guard, error) {
	f, err := p.take()
	if err != nil {
		return nil, err
	}

	return &Guard{pool: p, file: f}, nil
}

// AcquireManaged is like Acquire, but also stores the checked-out handle in
// *slot, nulling it when the guard is released. This lets a borrower (e.g. a
// FASTA substream) expose the raw *os.File for the lifetime of the guard and
// have it automatically disconnected on close.
func (p *FdPool) AcquireManaged(slot **os.File) (*Guard, error) {
	f, err := p.take()
	if err != nil {
		return nil, err
	}

	*slot = f

	return &Guard{pool: p, file: f, slot: slot}, nil
}

func (p *FdPool) take() (*os.File, error) {
	p.lock.Lock()
	n := len(p.idle)
	if n > 0 {
		f := p.idle[n-1]
		p.idle = p.idle[:n-1]
		p.lock.Unlock()

		return f, nil
	}
	p.lock.Unlock()

	f, err := os.Open(p.path)
	if err != nil {
		return nil, &PathError{Path: p.path, Err: err}
	}

	return f, nil
}

// release returns f to the idle list. Called by Guard.Close.
func (p *FdPool) release(f *os.File) {
	p.lock.Lock()
	p.idle = append(p.idle, f)
	p.lock.Unlock()
}

// Len returns the number of idle handles currently cached by the pool.
// Primarily useful in tests asserting file-descriptor accounting.
func (p *FdPool) Len() int {
	p.lock.Lock()
	n := len(p.idle)
	p.lock.Unlock()

	return n
}

// CloseIdle closes every idle handle currently cached and empties the pool.
// In-flight Guards are unaffected; their handles return to an empty pool and
// are closed by a subsequent CloseIdle, or leaked if never returned. Callers
// should only call CloseIdle once all Guards for this pool have been closed.
func (p *FdPool) CloseIdle() error {
	p.lock.Lock()
	idle := p.idle
	p.idle = nil
	p.lock.Unlock()

	var first error
	for _, f := range idle {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// Guard borrows one file handle from a FdPool. The handle is returned to the
// pool exactly once, on the first call to Close.
type Guard struct {
	pool   *FdPool
	file   *os.File
	slot   **os.File
	closed bool
}

// File returns the borrowed handle. Valid until Close is called.
func (g *Guard) File() *os.File {
	return g.file
}

// Close releases the handle back to its pool. Idempotent: subsequent calls
// are no-ops.
func (g *Guard) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true

	if g.slot != nil {
		*g.slot = nil
	}

	g.pool.release(g.file)

	return nil
}

// PathError reports a failure opening a pooled path. It unwraps to both
// the underlying os error and errs.ErrIO, so errs.KindOf classifies every
// open failure as KindIO.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return "seqio: open " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() []error {
	return []error{e.Err, errs.ErrIO}
}
