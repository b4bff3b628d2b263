// Package cell provides storage behind the reader/writer pairs of
// read/write registry entries: a mutex-guarded in-memory cell and a
// SQLite-backed cell that keeps a history of writes.
//
// The registry itself does no locking. Entries shared between goroutines
// route their reader and writer through one of these cells:
//
//	var counter = cell.NewLocked(0)
//	var hits = reg.ReadWrite(counter.Load, counter.Store)
package cell

import "sync"

// Locked is a value guarded by a RWMutex.
type Locked[T any] struct {
	mu sync.RWMutex
	v  T
}

// NewLocked returns a cell holding v.
func NewLocked[T any](v T) *Locked[T] {
	return &Locked[T]{v: v}
}

// Load returns the current value.
func (c *Locked[T]) Load() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v
}

// Store replaces the current value.
func (c *Locked[T]) Store(v T) {
	c.mu.Lock()
	c.v = v
	c.mu.Unlock()
}

// Update replaces the value with fn applied to it and returns the result.
// fn runs with the write lock held and must not call back into c.
func (c *Locked[T]) Update(fn func(T) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v = fn(c.v)
	return c.v
}
