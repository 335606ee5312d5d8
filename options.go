package typestate

// Option configures the Hooks shared by every state of a builder.
type Option func(*Hooks)

// WithLogger sets the logger used for slot and build events.
// All builder events are logged at Debug level.
func WithLogger(logger StructuredLogger) Option {
	return func(h *Hooks) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithReleaseHook registers fn to be called once for every field value a
// builder releases, after the value's own Release method has run.
//
// The hook is shared by all states of one builder. If builders created
// with the same hook are used from several goroutines, fn must be safe
// for concurrent use.
func WithReleaseHook(fn func(field string)) Option {
	return func(h *Hooks) {
		h.onRelease = fn
	}
}

// WithFieldNames overrides the field names reported to hooks and logs.
// Names are matched to fields by position; missing names keep their
// defaults.
func WithFieldNames(names ...string) Option {
	return func(h *Hooks) {
		h.names = append([]string(nil), names...)
	}
}

// Hooks carries the logger and release callback of one builder.
//
// Hooks is immutable once NewHooks returns and every state of a builder
// shares the same pointer. A nil *Hooks is valid and does nothing.
type Hooks struct {
	logger    StructuredLogger
	onRelease func(field string)
	names     []string
}

// NewHooks applies opts over the defaults: a NopLogger and no release
// callback.
func NewHooks(opts ...Option) *Hooks {
	h := &Hooks{logger: NopLogger{}}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Logger returns the configured logger, never nil.
func (h *Hooks) Logger() StructuredLogger {
	if h == nil || h.logger == nil {
		return NopLogger{}
	}
	return h.logger
}

// FieldName returns the configured name for the field at position i, or
// def if none was configured.
func (h *Hooks) FieldName(i int, def string) string {
	if h == nil || i < 0 || i >= len(h.names) || h.names[i] == "" {
		return def
	}
	return h.names[i]
}

// Built records that a builder for target was consumed by Build.
func (h *Hooks) Built(target string) {
	h.Logger().Debug("typestate: built", "target", target)
}

// Discarded records that a builder for target was consumed by Discard
// with released fields released.
func (h *Hooks) Discarded(target string, released int) {
	h.Logger().Debug("typestate: discarded", "target", target, "released", released)
}

func (h *Hooks) stored(field string, overwritten bool) {
	if overwritten {
		h.Logger().Debug("typestate: field overwritten", "field", field)
		return
	}
	h.Logger().Debug("typestate: field set", "field", field)
}

func (h *Hooks) released(field string) {
	h.Logger().Debug("typestate: field released", "field", field)
	if h != nil && h.onRelease != nil {
		h.onRelease(field)
	}
}
