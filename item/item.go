// Package item builds Item values with a hand-written type-state builder.
//
// ItemBuilder tracks whether A and B have been supplied in its type
// parameters. Build only accepts ItemBuilder[typestate.Set, typestate.Set]:
//
//	it := item.Build(item.New().A("incomplete").B([]int{}))
//
//	item.Build(item.New()) // does not compile
package item

import (
	"fmt"

	"github.com/jdziat/typestate"
)

// Item is the value produced by Build.
type Item struct {
	A string
	B []int
}

// String renders the item in the form Item { a: "x", b: [1, 2] }.
func (it Item) String() string {
	b := "["
	for i, v := range it.B {
		if i > 0 {
			b += ", "
		}
		b += fmt.Sprint(v)
	}
	b += "]"
	return fmt.Sprintf("Item { a: %q, b: %s }", it.A, b)
}

// ItemBuilder holds the fields of an Item under construction.
// SA and SB tag field a and field b respectively.
type ItemBuilder[SA, SB typestate.State] struct {
	hooks *typestate.Hooks
	a     typestate.Slot[string]
	b     typestate.Slot[[]int]
}

// New returns a builder with both fields unset.
func New(opts ...typestate.Option) ItemBuilder[typestate.Unset, typestate.Unset] {
	h := typestate.NewHooks(opts...)
	return ItemBuilder[typestate.Unset, typestate.Unset]{
		hooks: h,
		a:     typestate.NewSlot[string](h.FieldName(0, "a")),
		b:     typestate.NewSlot[[]int](h.FieldName(1, "b")),
	}
}

// A sets field a. Calling it again replaces the previous value.
func (ib ItemBuilder[SA, SB]) A(a string) ItemBuilder[typestate.Set, SB] {
	typestate.Assign[SA](&ib.a, ib.hooks, a)
	return ItemBuilder[typestate.Set, SB](ib)
}

// B sets field b. The slice is stored as given, not copied.
func (ib ItemBuilder[SA, SB]) B(b []int) ItemBuilder[SA, typestate.Set] {
	typestate.Assign[SB](&ib.b, ib.hooks, b)
	return ItemBuilder[SA, typestate.Set](ib)
}

// Discard drops the builder, releasing the fields that were set.
func (ib ItemBuilder[SA, SB]) Discard() {
	typestate.ReleaseIfSet[SA](&ib.a, ib.hooks)
	typestate.ReleaseIfSet[SB](&ib.b, ib.hooks)
	ib.hooks.Discarded("item.Item", typestate.Occupied[SA]()+typestate.Occupied[SB]())
}

// String describes which fields are set.
func (ib ItemBuilder[SA, SB]) String() string {
	return fmt.Sprintf("ItemBuilder{%s=%s %s=%s}",
		ib.a.Field(), typestate.StateName[SA](),
		ib.b.Field(), typestate.StateName[SB]())
}

// Build moves both fields into a new Item.
func Build(ib ItemBuilder[typestate.Set, typestate.Set]) Item {
	it := Item{A: ib.a.Take(), B: ib.b.Take()}
	ib.hooks.Built("item.Item")
	return it
}
