package typestate

import "fmt"

// Builder3 is the three-field counterpart of Builder2. Build3 accepts only
// Builder3[..., Set, Set, Set].
type Builder3[R, T1, T2, T3 any, S1, S2, S3 State] struct {
	hooks  *Hooks
	finish func(T1, T2, T3) R
	first  Slot[T1]
	second Slot[T2]
	third  Slot[T3]
}

// New3 returns an empty builder that will construct its target with
// finish. finish must not be nil.
func New3[R, T1, T2, T3 any](finish func(T1, T2, T3) R, opts ...Option) Builder3[R, T1, T2, T3, Unset, Unset, Unset] {
	h := NewHooks(opts...)
	return Builder3[R, T1, T2, T3, Unset, Unset, Unset]{
		hooks:  h,
		finish: finish,
		first:  NewSlot[T1](h.FieldName(0, "first")),
		second: NewSlot[T2](h.FieldName(1, "second")),
		third:  NewSlot[T3](h.FieldName(2, "third")),
	}
}

// First stores v as the first field, releasing any previous value.
func (b Builder3[R, T1, T2, T3, S1, S2, S3]) First(v T1) Builder3[R, T1, T2, T3, Set, S2, S3] {
	Assign[S1](&b.first, b.hooks, v)
	return Builder3[R, T1, T2, T3, Set, S2, S3](b)
}

// Second stores v as the second field, releasing any previous value.
func (b Builder3[R, T1, T2, T3, S1, S2, S3]) Second(v T2) Builder3[R, T1, T2, T3, S1, Set, S3] {
	Assign[S2](&b.second, b.hooks, v)
	return Builder3[R, T1, T2, T3, S1, Set, S3](b)
}

// Third stores v as the third field, releasing any previous value.
func (b Builder3[R, T1, T2, T3, S1, S2, S3]) Third(v T3) Builder3[R, T1, T2, T3, S1, S2, Set] {
	Assign[S3](&b.third, b.hooks, v)
	return Builder3[R, T1, T2, T3, S1, S2, Set](b)
}

// Discard releases every set field and consumes the builder.
func (b Builder3[R, T1, T2, T3, S1, S2, S3]) Discard() {
	ReleaseIfSet[S1](&b.first, b.hooks)
	ReleaseIfSet[S2](&b.second, b.hooks)
	ReleaseIfSet[S3](&b.third, b.hooks)
	b.hooks.Discarded(targetName[R](), Occupied[S1]()+Occupied[S2]()+Occupied[S3]())
}

// String describes the builder's field states.
func (b Builder3[R, T1, T2, T3, S1, S2, S3]) String() string {
	return fmt.Sprintf("Builder3[%s]{%s=%s %s=%s %s=%s}", targetName[R](),
		b.first.Field(), StateName[S1](),
		b.second.Field(), StateName[S2](),
		b.third.Field(), StateName[S3]())
}

// Build3 moves all three fields into a new R and consumes the builder.
func Build3[R, T1, T2, T3 any](b Builder3[R, T1, T2, T3, Set, Set, Set]) R {
	r := b.finish(b.first.Take(), b.second.Take(), b.third.Take())
	b.hooks.Built(targetName[R]())
	return r
}
