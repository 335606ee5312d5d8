// Package typestate provides builders whose "every required field is set"
// rule is checked by the Go compiler instead of at run time.
//
// Each builder carries one type parameter per field, tagged either [Unset]
// or [Set]. Setters consume the builder and return a new one with that
// field's tag flipped to Set. The finalizer is a plain function whose
// parameter type names the all-Set instantiation, so any other builder
// fails to type check:
//
//	type Addr struct {
//	    Host string
//	    Port int
//	}
//
//	b := typestate.New2(func(h string, p int) Addr { return Addr{h, p} })
//	addr := typestate.Build2(b.Second(8080).First("localhost"))
//
//	typestate.Build2(b.First("localhost"))
//	// compile error: Builder2[Addr, string, int, Set, Unset] does not match
//	// Builder2[Addr, string, int, Set, Set]
//
// Go methods cannot be restricted to one instantiation of their receiver,
// which is why finalizers are functions ([Build2], [Build3]) rather than
// methods.
//
// # Storage and release
//
// Every field lives in a [Slot] from the moment the builder is created.
// The tag alone records whether the slot is occupied. Values implementing
// [Releaser] are released exactly once when they are overwritten or when
// the builder is discarded; values moved into a target by Build are never
// released by the builder.
//
// Go has no destructors, so abandoning a partially filled builder is
// explicit:
//
//	b := item.New().A("name")
//	if !ready {
//	    b.Discard() // releases A, leaves B alone
//	    return
//	}
//
// # Overwrites
//
// Setting a field twice is allowed. The earlier value is released before
// the new one is stored and the tag stays Set.
//
// # Concurrency
//
// Builders are plain values with no internal locking. Separate builders
// may be used from separate goroutines. A single builder must not be
// shared.
//
// # Subpackages
//
//   - item: a hand-written builder for a concrete two-field target
//   - staged: the same target with one concrete type per combination of
//     set fields
//   - typestatetest: release counters for testing builders
package typestate
