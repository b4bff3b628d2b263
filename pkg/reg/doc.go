// Package reg is a typed registry of shared values.
//
// Components share a value by declaring an entry once, at package scope,
// and reading or writing it through Get and Set. An entry binds its
// identifier to a value type and to one access strategy:
//
//   - static storage owned by the entry (Static, StaticOf, StaticRef, StaticRefOf);
//   - a read-only reader (ReadOnly, ReadOnlyWith, ReadOnlyRef, ReadOnlyRefWith);
//   - a reader/writer pair (ReadWrite, ReadWriteWith, ReadWriteRef, ReadWriteRefWith).
//
// Every call site resolves the entry to its declared type at compile time.
// There are no string keys and no lookup tables:
//
//	var (
//		speed     = reg.Static[uint16]()
//		location  = reg.StaticRefOf(func() geo.Vec2D { return geo.NewVec2D(1, 2) })
//		heartbeat = reg.ReadOnly(nextHeartbeat)
//		state     = reg.ReadWrite(loadState, storeState)
//	)
//
//	reg.Set(speed, 42)
//	v := reg.Get(speed)              // uint16, a copy
//	x := reg.Get(location).Value().X // location is exposed as a Ref
//	reg.Set(state, Operating)
//	reg.Set(heartbeat, 1)            // does not compile: heartbeat is read-only
//
// Scalar values (booleans, numbers, strings and types defined over them) are
// exposed by value. Compound values are exposed as a Ref, a read-only view of
// storage that later gets and sets may change. A Ref is shallow: maps, slices
// and pointers held inside the referent still reach shared state. Value
// readers returning a pointer, map or slice are rejected at declaration.
//
// Extra context arguments given to Get and Set are forwarded unchanged to
// the reader and writer of entries declared with the *With constructors.
// Their number is not checked at compile time; Get(e) with no arguments
// calls the reader with an empty ctx, so *With readers must handle it.
//
// The registry does no locking. Entries shared between goroutines need
// synchronization inside their reader/writer or around their storage.
package reg
