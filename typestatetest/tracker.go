package typestatetest

import (
	"sort"
	"sync"

	"github.com/jdziat/typestate"
)

var _ typestate.Releaser = (*Resource)(nil)

// Tracker counts releases of the resources it creates and of the fields
// reported through its hook. It is safe for concurrent use.
type Tracker struct {
	mu       sync.Mutex
	created  []string
	released map[string]int
	fields   map[string]int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		released: make(map[string]int),
		fields:   make(map[string]int),
	}
}

// Resource is a field value that records its own release.
type Resource struct {
	Name    string
	tracker *Tracker
}

// New creates a resource named name. Names should be unique per tracker.
func (t *Tracker) New(name string) *Resource {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.created = append(t.created, name)
	return &Resource{Name: name, tracker: t}
}

// Release implements typestate.Releaser.
func (r *Resource) Release() {
	r.tracker.mu.Lock()
	defer r.tracker.mu.Unlock()
	r.tracker.released[r.Name]++
}

// Hook returns a callback suitable for typestate.WithReleaseHook that
// counts releases per field name.
func (t *Tracker) Hook() func(field string) {
	return func(field string) {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.fields[field]++
	}
}

// Released returns how many times the named resource was released.
func (t *Tracker) Released(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.released[name]
}

// FieldReleases returns how many releases the hook saw for field.
func (t *Tracker) FieldReleases(field string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fields[field]
}

// TotalReleased returns the number of resource releases.
func (t *Tracker) TotalReleased() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, c := range t.released {
		n += c
	}
	return n
}

// Live returns the sorted names of resources that have not been released.
func (t *Tracker) Live() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	var live []string
	for _, name := range t.created {
		if t.released[name] == 0 {
			live = append(live, name)
		}
	}
	sort.Strings(live)
	return live
}

// DoubleReleased returns the sorted names of resources released more
// than once.
func (t *Tracker) DoubleReleased() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	var names []string
	for name, c := range t.released {
		if c > 1 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
