package typestate

// Releaser is implemented by field values that own a resource which must
// be given back when the value is discarded or overwritten.
//
// Builders call Release exactly once for every value they discard. Values
// moved into a target by Build are never released by the builder.
type Releaser interface {
	Release()
}

// Slot is reserved storage for one builder field.
//
// A Slot has no occupancy flag of its own. The owning builder's tag for
// the field is the only record of whether the slot holds a value, so every
// method below must only be called in the state its comment names.
type Slot[T any] struct {
	field string
	value T
}

// NewSlot returns an empty slot for the named field.
func NewSlot[T any](field string) Slot[T] {
	return Slot[T]{field: field}
}

// Field returns the name the slot was created with.
func (s Slot[T]) Field() string {
	return s.field
}

// Store writes v into the slot. The slot must be unoccupied; callers
// overwriting a value release it first.
func (s *Slot[T]) Store(v T) {
	s.value = v
}

// Take moves the value out of an occupied slot and leaves it empty.
// Ownership passes to the caller and nothing is released.
func (s *Slot[T]) Take() T {
	v := s.value
	var zero T
	s.value = zero
	return v
}

// Release gives back the value held by an occupied slot.
//
// If the value implements Releaser its Release method runs once. The hooks
// are then notified and the slot is cleared.
func (s *Slot[T]) Release(h *Hooks) {
	if r, ok := any(s.value).(Releaser); ok {
		r.Release()
	}
	h.released(s.field)
	var zero T
	s.value = zero
}

// Assign stores v into a slot whose field is tagged S.
//
// When S is Set the previous value is released before v is stored, so an
// overwrite never leaks the old value. It reports whether a value was
// overwritten.
func Assign[S State, T any](s *Slot[T], h *Hooks, v T) bool {
	overwritten := IsSet[S]()
	if overwritten {
		s.Release(h)
	}
	s.Store(v)
	h.stored(s.field, overwritten)
	return overwritten
}

// ReleaseIfSet releases the slot when its field is tagged Set and leaves
// it untouched otherwise.
func ReleaseIfSet[S State, T any](s *Slot[T], h *Hooks) {
	if IsSet[S]() {
		s.Release(h)
	}
}
