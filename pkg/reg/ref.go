package reg

import "fmt"

// Ref is a read-only reference to a value owned by an entry's storage or
// by its reader. It observes every later change to the referent.
type Ref[T any] struct {
	p *T
}

// Value returns a copy of the referent as it is now. A Ref to nothing
// yields the zero value.
func (r Ref[T]) Value() T {
	if r.p == nil {
		var zero T
		return zero
	}
	return *r.p
}

// Valid reports whether r refers to a value.
func (r Ref[T]) Valid() bool { return r.p != nil }

// Same reports whether r and o refer to the same value.
func (r Ref[T]) Same(o Ref[T]) bool { return r.p == o.p }

func (r Ref[T]) String() string {
	if r.p == nil {
		return "<nil>"
	}
	return fmt.Sprint(*r.p)
}

func refTo[T any](p *T) Ref[T] { return Ref[T]{p: p} }
