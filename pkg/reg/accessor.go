package reg

import (
	"fmt"
	"reflect"
)

// ReadOnly declares an entry whose value is produced by read on every Get.
func ReadOnly[T any](read func() T) *Entry[Readonly, None, T, T] {
	mustRead(read != nil)
	mustBeValue[T]()
	return &Entry[Readonly, None, T, T]{
		kind:     KindReadOnly,
		exposure: ByValue,
		read:     func(...None) T { return read() },
	}
}

// ReadOnlyWith is ReadOnly for readers that take context arguments.
func ReadOnlyWith[C, T any](read func(ctx ...C) T) *Entry[Readonly, C, T, T] {
	mustRead(read != nil)
	mustBeValue[T]()
	return &Entry[Readonly, C, T, T]{
		kind:     KindReadOnly,
		exposure: ByValue,
		read:     read,
	}
}

// ReadOnlyRef declares an entry whose reader hands out a reference to
// storage it owns. Get exposes it as a Ref.
func ReadOnlyRef[T any](read func() *T) *Entry[Readonly, None, T, Ref[T]] {
	mustRead(read != nil)
	return &Entry[Readonly, None, T, Ref[T]]{
		kind:     KindReadOnly,
		exposure: ByRef,
		read:     func(...None) Ref[T] { return refTo(read()) },
	}
}

// ReadOnlyRefWith is ReadOnlyRef for readers that take context arguments.
func ReadOnlyRefWith[C, T any](read func(ctx ...C) *T) *Entry[Readonly, C, T, Ref[T]] {
	mustRead(read != nil)
	return &Entry[Readonly, C, T, Ref[T]]{
		kind:     KindReadOnly,
		exposure: ByRef,
		read:     func(ctx ...C) Ref[T] { return refTo(read(ctx...)) },
	}
}

// ReadWrite declares an entry routed through a reader/writer pair. The
// registry keeps no storage for it.
func ReadWrite[T any](read func() T, write func(T)) *Entry[Mutable, None, T, T] {
	mustRead(read != nil)
	mustWrite(write != nil)
	mustBeValue[T]()
	return &Entry[Mutable, None, T, T]{
		kind:     KindReadWrite,
		exposure: ByValue,
		read:     func(...None) T { return read() },
		write:    func(v T, _ ...None) { write(v) },
	}
}

// ReadWriteWith is ReadWrite for accessors that take context arguments.
func ReadWriteWith[C, T any](read func(ctx ...C) T, write func(v T, ctx ...C)) *Entry[Mutable, C, T, T] {
	mustRead(read != nil)
	mustWrite(write != nil)
	mustBeValue[T]()
	return &Entry[Mutable, C, T, T]{
		kind:     KindReadWrite,
		exposure: ByValue,
		read:     read,
		write:    write,
	}
}

// ReadWriteRef is ReadWrite for readers that hand out references.
func ReadWriteRef[T any](read func() *T, write func(T)) *Entry[Mutable, None, T, Ref[T]] {
	mustRead(read != nil)
	mustWrite(write != nil)
	return &Entry[Mutable, None, T, Ref[T]]{
		kind:     KindReadWrite,
		exposure: ByRef,
		read:     func(...None) Ref[T] { return refTo(read()) },
		write:    func(v T, _ ...None) { write(v) },
	}
}

// ReadWriteRefWith is ReadWriteRef for accessors that take context arguments.
func ReadWriteRefWith[C, T any](read func(ctx ...C) *T, write func(v T, ctx ...C)) *Entry[Mutable, C, T, Ref[T]] {
	mustRead(read != nil)
	mustWrite(write != nil)
	return &Entry[Mutable, C, T, Ref[T]]{
		kind:     KindReadWrite,
		exposure: ByRef,
		read:     func(ctx ...C) Ref[T] { return refTo(read(ctx...)) },
		write:    write,
	}
}

func mustRead(ok bool) {
	if !ok {
		panic(ErrNilReader)
	}
}

func mustWrite(ok bool) {
	if !ok {
		panic(ErrNilWriter)
	}
}

// mustBeValue rejects value readers whose result shares storage with the
// reader: pointers, maps and slices. Readers handing out references belong
// in the *Ref constructors.
func mustBeValue[T any]() {
	switch t := reflect.TypeFor[T](); t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Slice:
		panic(fmt.Errorf("%w: reader returns %s", ErrMutableReference, t))
	}
}
