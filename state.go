package typestate

// Unset tags a builder field that has not been given a value yet.
// It is a zero-sized marker and is never stored.
type Unset struct{}

// Set tags a builder field whose slot holds a value.
type Set struct{}

// State is the constraint satisfied by the two field tags.
//
// Builders declare one type parameter per field constrained by State.
// Because the constraint is a closed union, no other type can be used
// to instantiate a builder.
type State interface {
	Unset | Set
}

// IsSet reports whether S is the Set tag.
//
// It is only used by release logic to decide whether a slot is occupied.
// Whether a builder can be finalized is never decided at run time.
func IsSet[S State]() bool {
	var s S
	_, ok := any(s).(Set)
	return ok
}

// Occupied returns 1 if S is Set and 0 otherwise. Builders sum it over
// their fields to count occupied slots.
func Occupied[S State]() int {
	if IsSet[S]() {
		return 1
	}
	return 0
}

// StateName returns "set" or "unset".
func StateName[S State]() string {
	if IsSet[S]() {
		return "set"
	}
	return "unset"
}
