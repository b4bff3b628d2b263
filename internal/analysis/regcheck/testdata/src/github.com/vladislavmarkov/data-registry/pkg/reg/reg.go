// Package reg mirrors the exported constructor signatures of the registry
// for analyzer tests.
package reg

type None = struct{}

type (
	Readonly struct{}
	Mutable  struct{}
)

type Access interface{ Readonly | Mutable }

type Ref[T any] struct{ p *T }

type Entry[A Access, C, T, R any] struct {
	read  func(ctx ...C) R
	write func(v T, ctx ...C)
}

func Static[T any]() *Entry[Mutable, None, T, T] { return nil }
func StaticOf[T any](init func() T) *Entry[Mutable, None, T, T] { return nil }
func StaticRef[T any]() *Entry[Mutable, None, T, Ref[T]] { return nil }
func StaticRefOf[T any](init func() T) *Entry[Mutable, None, T, Ref[T]] { return nil }

func ReadOnly[T any](read func() T) *Entry[Readonly, None, T, T] { return nil }
func ReadOnlyWith[C, T any](read func(ctx ...C) T) *Entry[Readonly, C, T, T] { return nil }
func ReadOnlyRef[T any](read func() *T) *Entry[Readonly, None, T, Ref[T]] { return nil }

func ReadWrite[T any](read func() T, write func(T)) *Entry[Mutable, None, T, T] { return nil }
func ReadWriteWith[C, T any](read func(ctx ...C) T, write func(v T, ctx ...C)) *Entry[Mutable, C, T, T] {
	return nil
}

func Get[A Access, C, T, R any](e *Entry[A, C, T, R], ctx ...C) R {
	var r R
	return r
}
