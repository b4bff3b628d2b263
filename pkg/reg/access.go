package reg

// Get returns the current value of e, forwarding ctx unchanged to its
// reader. Scalar and value-reader entries return a copy; reference
// entries return a Ref.
func Get[A Access, C, T, R any](e *Entry[A, C, T, R], ctx ...C) R {
	return e.get(ctx)
}

// Set stores v into e, forwarding ctx unchanged to its writer. Only
// Mutable entries accept Set; passing a read-only entry does not compile.
func Set[C, T, R any](e *Entry[Mutable, C, T, R], v T, ctx ...C) {
	e.set(v, ctx)
}
