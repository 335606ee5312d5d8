package typestate

import (
	"fmt"
	"reflect"
)

// Builder2 accumulates the two inputs of a target R.
//
// S1 and S2 tag the first and second field. Setters return a builder with
// the field's tag flipped to Set; Build2 accepts only Builder2[..., Set, Set],
// so finalizing with a missing field is a compile error:
//
//	b := typestate.New2(func(host string, port int) Addr { return Addr{host, port} })
//	addr := typestate.Build2(b.First("localhost").Second(8080)) // ok
//	addr = typestate.Build2(b.First("localhost"))               // does not compile
//
// A Builder2 value is consumed by passing it to a setter, Build2 or
// Discard, and must not be used afterwards.
type Builder2[R, T1, T2 any, S1, S2 State] struct {
	hooks  *Hooks
	finish func(T1, T2) R
	first  Slot[T1]
	second Slot[T2]
}

// New2 returns an empty builder that will construct its target with
// finish. finish must not be nil.
func New2[R, T1, T2 any](finish func(T1, T2) R, opts ...Option) Builder2[R, T1, T2, Unset, Unset] {
	h := NewHooks(opts...)
	return Builder2[R, T1, T2, Unset, Unset]{
		hooks:  h,
		finish: finish,
		first:  NewSlot[T1](h.FieldName(0, "first")),
		second: NewSlot[T2](h.FieldName(1, "second")),
	}
}

// First stores v as the first field. A previously set value is released
// before v is stored.
func (b Builder2[R, T1, T2, S1, S2]) First(v T1) Builder2[R, T1, T2, Set, S2] {
	Assign[S1](&b.first, b.hooks, v)
	return Builder2[R, T1, T2, Set, S2](b)
}

// Second stores v as the second field. A previously set value is released
// before v is stored.
func (b Builder2[R, T1, T2, S1, S2]) Second(v T2) Builder2[R, T1, T2, S1, Set] {
	Assign[S2](&b.second, b.hooks, v)
	return Builder2[R, T1, T2, S1, Set](b)
}

// Discard releases every set field and consumes the builder.
// Unset fields are left untouched.
func (b Builder2[R, T1, T2, S1, S2]) Discard() {
	ReleaseIfSet[S1](&b.first, b.hooks)
	ReleaseIfSet[S2](&b.second, b.hooks)
	b.hooks.Discarded(targetName[R](), Occupied[S1]()+Occupied[S2]())
}

// String describes the builder's field states.
func (b Builder2[R, T1, T2, S1, S2]) String() string {
	return fmt.Sprintf("Builder2[%s]{%s=%s %s=%s}", targetName[R](),
		b.first.Field(), StateName[S1](), b.second.Field(), StateName[S2]())
}

// Build2 moves both fields into a new R and consumes the builder.
// Nothing is released: ownership of the values passes to the target.
func Build2[R, T1, T2 any](b Builder2[R, T1, T2, Set, Set]) R {
	r := b.finish(b.first.Take(), b.second.Take())
	b.hooks.Built(targetName[R]())
	return r
}

func targetName[R any]() string {
	return reflect.TypeFor[R]().String()
}
