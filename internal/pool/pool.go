// Package pool provides generic sync.Pool-backed slice pools for reducing
// allocations in hot paths. A Pool[T] reuses backing arrays across calls
// that repeatedly need a []T of varying length, such as the per-pass pixel
// grids allocated on every upscale.
package pool

import "sync"

// Pool reuses []T buffers. The zero value is not valid; use New.
type Pool[T any] struct {
	p sync.Pool
}

// New returns a Pool ready for use.
func New[T any]() *Pool[T] {
	return &Pool[T]{
		p: sync.Pool{
			New: func() any {
				s := make([]T, 0)
				return &s
			},
		},
	}
}

// Get returns a []T of length n, reusing a pooled backing array when its
// capacity is large enough. The caller must call Put when done.
func (pl *Pool[T]) Get(n int) []T {
	bp := pl.p.Get().(*[]T)
	b := *bp
	if cap(b) < n {
		return make([]T, n)
	}
	return b[:n]
}

// Put returns a slice to the pool. The slice must have been obtained from
// Get (or be nil/empty); its contents are not cleared.
func (pl *Pool[T]) Put(b []T) {
	b = b[:0]
	pl.p.Put(&b)
}
