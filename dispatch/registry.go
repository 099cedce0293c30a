package dispatch

import (
	"errors"
	"fmt"
	"github.com/samber/lo"
	"github.com/saylorsolutions/serialevents/iterx"
	"log/slog"
	"slices"
	"strings"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownMethod   = errors.New("unknown subscriber method")
)

// Listener is called with the event value for each dispatch it's resolved for.
// A returned error stops the dispatch and is returned to the dispatching code.
type Listener[E any] func(event E) error

// Registration is a [Listener] with its class and format filters.
type Registration[E any] struct {
	Listener Listener[E]
	Class    Filter
	Format   Filter
}

// Table maps event names to registrations in dispatch order.
type Table[E any] map[string][]Registration[E]

// RegisterOption sets a filter on a [Registration] created with [Registry.Register].
type RegisterOption func(*filters)

type filters struct {
	class  Filter
	format Filter
}

// ForClass restricts a [Listener] to dispatches for the given class.
func ForClass(class string) RegisterOption {
	return func(f *filters) {
		f.class = Only(class)
	}
}

// ForFormat restricts a [Listener] to dispatches for the given format.
func ForFormat(format string) RegisterOption {
	return func(f *filters) {
		f.format = Only(format)
	}
}

// Option configures a [Registry].
type Option func(*registryConf)

type registryConf struct {
	log *slog.Logger
}

// WithLogger sets the logger used to report cache activity at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(conf *registryConf) {
		if log != nil {
			conf.log = log
		}
	}
}

type resolutionKey struct {
	class  string
	format string
}

// Registry stores listener registrations and dispatches event values of type E to the listeners matching an (event, class, format) triple.
//
// Resolutions are computed on first use and cached until the registrations for that event name change.
// A Registry is not safe for concurrent use, since even [Registry.Dispatch] populates the cache.
// Guard it with a mutex, or use [SyncRegistry], if it must be shared between goroutines.
type Registry[E any] struct {
	log       *slog.Logger
	listeners Table[E]
	resolved  map[string]map[resolutionKey][]Listener[E]
}

// NewRegistry creates an empty [Registry].
// The zero value is also ready to use, but logs nothing.
func NewRegistry[E any](opts ...Option) *Registry[E] {
	conf := registryConf{
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&conf)
	}
	return &Registry[E]{
		log:       conf.log,
		listeners: Table[E]{},
		resolved:  map[string]map[resolutionKey][]Listener[E]{},
	}
}

func (r *Registry[E]) init() {
	if r == nil {
		panic("nil Registry")
	}
	if r.log == nil {
		r.log = slog.New(slog.DiscardHandler)
	}
	if r.listeners == nil {
		r.listeners = Table[E]{}
	}
	if r.resolved == nil {
		r.resolved = map[string]map[resolutionKey][]Listener[E]{}
	}
}

// ReplaceAll replaces every registration with the given table, and drops all cached resolutions.
// The table is copied, so changing it afterward doesn't affect the [Registry].
// Registrations with a nil [Listener] are left out of the copy.
func (r *Registry[E]) ReplaceAll(table Table[E]) {
	r.init()
	r.listeners = lo.MapValues(table, func(regs []Registration[E], _ string) []Registration[E] {
		return iterx.Select(regs, hasListener[E]).Slice()
	})
	r.resolved = map[string]map[resolutionKey][]Listener[E]{}
	r.log.Debug("Replaced all listeners", "events", len(r.listeners))
}

// Register appends a [Listener] for the event name.
// Use [ForClass] and [ForFormat] to restrict the dispatches it receives.
// A nil listener is ignored, the same as [Methods] refusing to bind one.
func (r *Registry[E]) Register(event string, listener Listener[E], opts ...RegisterOption) {
	if listener == nil {
		r.init()
		r.log.Debug("Ignored nil listener", "event", event)
		return
	}
	var f filters
	for _, opt := range opts {
		opt(&f)
	}
	r.add(event, Registration[E]{Listener: listener, Class: f.class, Format: f.format})
}

func (r *Registry[E]) add(event string, reg Registration[E]) {
	r.init()
	r.listeners[event] = append(r.listeners[event], reg)
	r.invalidate(event)
}

func (r *Registry[E]) invalidate(event string) {
	if _, ok := r.resolved[event]; !ok {
		return
	}
	delete(r.resolved, event)
	r.log.Debug("Invalidated resolved listeners", "event", event)
}

// HasListeners reports whether any listener would be called by [Registry.Dispatch] with the same arguments.
// The resolution is cached, so a following Dispatch for the same triple doesn't resolve again.
func (r *Registry[E]) HasListeners(event, class, format string) bool {
	r.init()
	if _, ok := r.listeners[event]; !ok {
		return false
	}
	return len(r.resolve(event, class, format)) > 0
}

// Listeners returns a copy of the listeners resolved for the triple, in dispatch order.
func (r *Registry[E]) Listeners(event, class, format string) []Listener[E] {
	r.init()
	if _, ok := r.listeners[event]; !ok {
		return nil
	}
	return slices.Clone(r.resolve(event, class, format))
}

// Events returns the sorted event names that have registrations.
func (r *Registry[E]) Events() []string {
	r.init()
	events := lo.Keys(r.listeners)
	slices.Sort(events)
	return events
}

// Dispatch calls each [Listener] resolved for the triple in registration order, passing the event value through unchanged.
// Nothing happens if there are no registrations for the event name.
//
// The first error returned from a [Listener] stops the dispatch and is returned as-is.
// Listeners iterate over the resolution taken when Dispatch started, so listeners registered while dispatching are only called by later dispatches.
func (r *Registry[E]) Dispatch(event, class, format string, value E) error {
	r.init()
	if _, ok := r.listeners[event]; !ok {
		return nil
	}
	for _, listener := range r.resolve(event, class, format) {
		if err := listener(value); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry[E]) resolve(event, class, format string) []Listener[E] {
	key := resolutionKey{class: class, format: format}
	if listeners, ok := r.resolved[event][key]; ok {
		return listeners
	}
	matches := iterx.Select(r.listeners[event], classMatch[E](class).And(formatMatch[E](format))).Slice()
	var listeners []Listener[E]
	for _, reg := range matches {
		listeners = append(listeners, reg.Listener)
	}
	if r.resolved[event] == nil {
		r.resolved[event] = map[resolutionKey][]Listener[E]{}
	}
	r.resolved[event][key] = listeners
	r.log.Debug("Resolved listeners", "event", event, "class", class, "format", format, "count", len(listeners))
	return listeners
}

var methodNameReplacer = strings.NewReplacer("_", "", ".", "")

// DefaultMethodName derives the subscriber method name used for an event when a [Descriptor] doesn't name one.
// Every '_' and '.' is removed, and "on" is prepended, so "post_serialize" becomes "onpostserialize".
func DefaultMethodName(event string) string {
	return "on" + methodNameReplacer.Replace(event)
}

func unknownMethod(event, method string) error {
	return fmt.Errorf("%w: %w: no method '%s' for event '%s'", ErrInvalidArgument, ErrUnknownMethod, method, event)
}
