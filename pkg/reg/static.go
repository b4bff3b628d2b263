package reg

// Static declares a scalar entry backed by storage it owns, initialized to
// the zero value of T.
func Static[T Scalar]() *Entry[Mutable, None, T, T] {
	return store(new(T), ByValue, valueAt[T])
}

// StaticOf declares a scalar entry whose storage is initialized by init.
// init runs once, when the entry is declared.
func StaticOf[T Scalar](init func() T) *Entry[Mutable, None, T, T] {
	return store(construct(init), ByValue, valueAt[T])
}

// StaticRef declares a compound entry backed by storage it owns,
// initialized to the zero value of T. Get returns a Ref to the storage.
func StaticRef[T any]() *Entry[Mutable, None, T, Ref[T]] {
	return store(new(T), ByRef, refTo[T])
}

// StaticRefOf declares a compound entry whose storage is built by init,
// typically a closure over a constructor call:
//
//	var location = reg.StaticRefOf(func() geo.Vec2D { return geo.NewVec2D(1, 2) })
//
// init runs once, when the entry is declared.
func StaticRefOf[T any](init func() T) *Entry[Mutable, None, T, Ref[T]] {
	return store(construct(init), ByRef, refTo[T])
}

// construct builds the backing storage. A nil init leaves it zero.
func construct[T any](init func() T) *T {
	p := new(T)
	if init != nil {
		*p = init()
	}
	return p
}

func store[T, R any](p *T, exposure Exposure, expose func(*T) R) *Entry[Mutable, None, T, R] {
	return &Entry[Mutable, None, T, R]{
		kind:     KindStatic,
		exposure: exposure,
		read:     func(...None) R { return expose(p) },
		write:    func(v T, _ ...None) { *p = v },
	}
}

func valueAt[T any](p *T) T { return *p }
