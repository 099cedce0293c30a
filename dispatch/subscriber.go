//go:generate go run go.uber.org/mock/mockgen -source=subscriber.go -destination=../mocks/mock_subscriber.go -package=mocks

package dispatch

import (
	"fmt"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Descriptor declares one event a [Subscriber] listens to.
// When Method is empty, [DefaultMethodName] is used to find the method for Event.
type Descriptor struct {
	Event  string `validate:"required"`
	Method string
	Class  Filter
	Format Filter
}

// MethodName returns the method bound for this [Descriptor].
func (d Descriptor) MethodName() string {
	if len(d.Method) > 0 {
		return d.Method
	}
	return DefaultMethodName(d.Event)
}

// MethodSource binds method names to listeners.
type MethodSource[E any] interface {
	// Method returns the [Listener] for the method name, or false if there is none.
	Method(name string) (Listener[E], bool)
}

// Subscriber declares a set of events and provides the methods that handle them.
type Subscriber[E any] interface {
	MethodSource[E]
	// SubscribedEvents returns the events to register, in registration order.
	SubscribedEvents() []Descriptor
}

// Methods is a [MethodSource] backed by a map.
type Methods[E any] map[string]Listener[E]

func (m Methods[E]) Method(name string) (Listener[E], bool) {
	listener, ok := m[name]
	if !ok || listener == nil {
		return nil, false
	}
	return listener, true
}

type subscriber[E any] struct {
	Methods[E]
	descriptors []Descriptor
}

func (s *subscriber[E]) SubscribedEvents() []Descriptor {
	return s.descriptors
}

// NewSubscriber creates a [Subscriber] from a method table and the events it handles.
func NewSubscriber[E any](methods Methods[E], descriptors ...Descriptor) Subscriber[E] {
	return &subscriber[E]{
		Methods:     methods,
		descriptors: descriptors,
	}
}

// RegisterBatch registers a [Listener] bound from the source for each [Descriptor], in order.
// Methods are bound once here, not for each dispatch.
//
// An error matching [ErrInvalidArgument] is returned for the first [Descriptor] without an event name, or with a method the source can't bind.
// Descriptors before it stay registered.
func (r *Registry[E]) RegisterBatch(source MethodSource[E], descriptors ...Descriptor) error {
	for i, desc := range descriptors {
		if err := validate.Struct(desc); err != nil {
			return fmt.Errorf("%w: descriptor %d must have an event: %w", ErrInvalidArgument, i, err)
		}
		method := desc.MethodName()
		listener, ok := source.Method(method)
		if !ok || listener == nil {
			return unknownMethod(desc.Event, method)
		}
		r.add(desc.Event, Registration[E]{Listener: listener, Class: desc.Class, Format: desc.Format})
	}
	return nil
}

// AddSubscriber registers every event declared by the [Subscriber].
func (r *Registry[E]) AddSubscriber(sub Subscriber[E]) error {
	return r.RegisterBatch(sub, sub.SubscribedEvents()...)
}
