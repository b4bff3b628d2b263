package reg

import (
	"fmt"
	"reflect"
)

// Kind is the access strategy of an entry.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindStatic
	KindReadOnly
	KindReadWrite
)

func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindReadOnly:
		return "read-only"
	case KindReadWrite:
		return "read-write"
	default:
		return "unknown"
	}
}

// Exposure is how Get hands out an entry's value.
type Exposure uint8

const (
	// ByValue entries return an independent copy on every Get.
	ByValue Exposure = iota + 1
	// ByRef entries return a Ref whose referent later gets and sets may change.
	ByRef
)

func (e Exposure) String() string {
	switch e {
	case ByValue:
		return "value"
	case ByRef:
		return "ref"
	default:
		return "unknown"
	}
}

// None is the context type of entries that take no context arguments.
type None = struct{}

// Readonly marks entries that only support Get.
type Readonly struct{}

// Mutable marks entries that support Get and Set.
type Mutable struct{}

// Access is the set of entry capability markers.
type Access interface {
	Readonly | Mutable
}

// Scalar is the set of value types exposed by value from static storage.
type Scalar interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Entry binds a declared identifier to a value type T, an access mode A,
// a context element type C and the exposed type R returned by Get.
//
// Entries are only usable through the pointers returned by the
// constructors in this package. They must not be copied.
type Entry[A Access, C, T, R any] struct {
	_        noCopy
	kind     Kind
	exposure Exposure
	read     func(ctx ...C) R
	write    func(v T, ctx ...C)
}

// Kind reports the access strategy the entry was declared with.
func (e *Entry[A, C, T, R]) Kind() Kind {
	if e == nil {
		return KindUnknown
	}
	return e.kind
}

// Exposure reports whether Get returns copies or references.
func (e *Entry[A, C, T, R]) Exposure() Exposure {
	if e == nil {
		return 0
	}
	return e.exposure
}

// Info describes an entry for diagnostics.
type Info struct {
	Kind     Kind
	Exposure Exposure
	Value    reflect.Type
	// Context is nil for entries declared without context arguments.
	Context reflect.Type
}

func (i Info) String() string {
	if i.Context == nil {
		return fmt.Sprintf("%s %s by %s", i.Kind, i.Value, i.Exposure)
	}
	return fmt.Sprintf("%s %s by %s, context %s", i.Kind, i.Value, i.Exposure, i.Context)
}

// Info returns the declared shape of the entry.
func (e *Entry[A, C, T, R]) Info() Info {
	info := Info{
		Kind:     e.Kind(),
		Exposure: e.Exposure(),
		Value:    reflect.TypeFor[T](),
	}
	if ctx := reflect.TypeFor[C](); ctx != reflect.TypeFor[None]() {
		info.Context = ctx
	}
	return info
}

func (e *Entry[A, C, T, R]) get(ctx []C) R {
	if e == nil || e.read == nil {
		panic(ErrNotStored)
	}
	return e.read(ctx...)
}

func (e *Entry[A, C, T, R]) set(v T, ctx []C) {
	if e == nil || e.write == nil {
		panic(ErrNotStored)
	}
	e.write(v, ctx...)
}

// noCopy is flagged by go vet's copylocks check when an Entry is copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
