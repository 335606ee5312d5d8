// Package staged builds item.Item through one concrete type per
// combination of set fields instead of type parameters.
//
//	Empty --A--> WithA --B--> Complete
//	Empty --B--> WithB --A--> Complete
//
// Every stage keeps the setters that remain meaningful, including
// re-setting a field it already holds. Only Complete has Build, so a chain
// that skips a field has no Build method to call:
//
//	it := staged.New().B([]int{1}).A("x").Build()
//
//	staged.New().A("x").Build() // does not compile: WithA has no Build
package staged

import (
	"github.com/jdziat/typestate"
	"github.com/jdziat/typestate/item"
)

const target = "item.Item"

type fields struct {
	hooks *typestate.Hooks
	a     typestate.Slot[string]
	b     typestate.Slot[[]int]
}

func discard[SA, SB typestate.State](f *fields) {
	typestate.ReleaseIfSet[SA](&f.a, f.hooks)
	typestate.ReleaseIfSet[SB](&f.b, f.hooks)
	f.hooks.Discarded(target, typestate.Occupied[SA]()+typestate.Occupied[SB]())
}

// Empty is a builder with no fields set.
type Empty struct{ f fields }

// WithA is a builder with only field a set.
type WithA struct{ f fields }

// WithB is a builder with only field b set.
type WithB struct{ f fields }

// Complete is a builder with both fields set.
type Complete struct{ f fields }

// New returns an Empty builder.
func New(opts ...typestate.Option) Empty {
	h := typestate.NewHooks(opts...)
	return Empty{f: fields{
		hooks: h,
		a:     typestate.NewSlot[string](h.FieldName(0, "a")),
		b:     typestate.NewSlot[[]int](h.FieldName(1, "b")),
	}}
}

// A sets field a.
func (s Empty) A(a string) WithA {
	typestate.Assign[typestate.Unset](&s.f.a, s.f.hooks, a)
	return WithA(s)
}

// B sets field b.
func (s Empty) B(b []int) WithB {
	typestate.Assign[typestate.Unset](&s.f.b, s.f.hooks, b)
	return WithB(s)
}

// Discard drops the builder. Nothing is held, so nothing is released.
func (s Empty) Discard() { discard[typestate.Unset, typestate.Unset](&s.f) }

// A replaces field a, releasing the previous value.
func (s WithA) A(a string) WithA {
	typestate.Assign[typestate.Set](&s.f.a, s.f.hooks, a)
	return s
}

// B sets field b.
func (s WithA) B(b []int) Complete {
	typestate.Assign[typestate.Unset](&s.f.b, s.f.hooks, b)
	return Complete(s)
}

// Discard drops the builder, releasing field a.
func (s WithA) Discard() { discard[typestate.Set, typestate.Unset](&s.f) }

// A sets field a.
func (s WithB) A(a string) Complete {
	typestate.Assign[typestate.Unset](&s.f.a, s.f.hooks, a)
	return Complete(s)
}

// B replaces field b, releasing the previous value.
func (s WithB) B(b []int) WithB {
	typestate.Assign[typestate.Set](&s.f.b, s.f.hooks, b)
	return s
}

// Discard drops the builder, releasing field b.
func (s WithB) Discard() { discard[typestate.Unset, typestate.Set](&s.f) }

// A replaces field a, releasing the previous value.
func (s Complete) A(a string) Complete {
	typestate.Assign[typestate.Set](&s.f.a, s.f.hooks, a)
	return s
}

// B replaces field b, releasing the previous value.
func (s Complete) B(b []int) Complete {
	typestate.Assign[typestate.Set](&s.f.b, s.f.hooks, b)
	return s
}

// Discard drops the builder, releasing both fields.
func (s Complete) Discard() { discard[typestate.Set, typestate.Set](&s.f) }

// Build moves both fields into a new Item.
func (s Complete) Build() item.Item {
	it := item.Item{A: s.f.a.Take(), B: s.f.b.Take()}
	s.f.hooks.Built(target)
	return it
}
