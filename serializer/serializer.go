// Package serializer encodes values as JSON or YAML, dispatching serializer lifecycle events to listeners registered for the value's type and format.
package serializer

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/serialevents/dispatch"
	"log/slog"
	"reflect"
)

const (
	EventPreSerialize    = "serializer.pre_serialize"
	EventPostSerialize   = "serializer.post_serialize"
	EventPreDeserialize  = "serializer.pre_deserialize"
	EventPostDeserialize = "serializer.post_deserialize"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrListener          = errors.New("event listener failed")
)

// Registry is the set of registry operations the [Serializer] needs.
// Both [dispatch.Registry] and [dispatch.SyncRegistry] satisfy it.
type Registry interface {
	HasListeners(event, class, format string) bool
	Dispatch(event, class, format string, value *ObjectEvent) error
}

// ObjectEvent is passed to listeners of all serializer events.
// Listeners may change the object and type before serialization, or the data before deserialization and after serialization.
type ObjectEvent struct {
	Format string
	Type   string
	Object any
	Data   []byte
}

// SetType overrides the type name used to select listeners for the rest of the operation.
func (e *ObjectEvent) SetType(typeName string) {
	e.Type = typeName
}

// Option configures a [Serializer].
type Option func(*Serializer)

// WithLogger sets the logger used by the [Serializer].
func WithLogger(log *slog.Logger) Option {
	return func(s *Serializer) {
		if log != nil {
			s.log = log
		}
	}
}

// WithCodec adds or replaces the [Codec] for a format.
func WithCodec(format string, codec Codec) Option {
	return func(s *Serializer) {
		if codec != nil {
			s.codecs[format] = codec
		}
	}
}

// WithRegistry sets the registry that listeners are dispatched from.
func WithRegistry(reg Registry) Option {
	return func(s *Serializer) {
		if reg != nil {
			s.events = reg
		}
	}
}

// Serializer encodes and decodes values, notifying listeners before and after each operation.
// Listeners are selected by the value's type name from [TypeName] and the format.
type Serializer struct {
	log    *slog.Logger
	events Registry
	codecs map[string]Codec
}

// New creates a [Serializer] with JSON and YAML codecs.
// Without [WithRegistry], a new [dispatch.SyncRegistry] is created.
func New(opts ...Option) *Serializer {
	s := &Serializer{
		log: slog.New(slog.DiscardHandler),
		codecs: map[string]Codec{
			FormatJSON: JSONCodec,
			FormatYAML: YAMLCodec,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.events == nil {
		s.events = dispatch.NewSyncRegistry[*ObjectEvent](dispatch.WithLogger(s.log))
	}
	return s
}

// Events returns the registry listeners are dispatched from.
func (s *Serializer) Events() Registry {
	return s.events
}

func (s *Serializer) codec(format string) (Codec, error) {
	codec, ok := s.codecs[format]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, format)
	}
	return codec, nil
}

func (s *Serializer) dispatch(event string, evt *ObjectEvent) error {
	if !s.events.HasListeners(event, evt.Type, evt.Format) {
		return nil
	}
	if err := s.events.Dispatch(event, evt.Type, evt.Format, evt); err != nil {
		s.log.Debug("Listener failed", "event", event, "type", evt.Type, "format", evt.Format, "error", err)
		return fmt.Errorf("%w: %s for '%s': %w", ErrListener, event, evt.Type, err)
	}
	return nil
}

// Serialize encodes the value in the given format.
// Pre-serialize listeners may replace the value or its type, and post-serialize listeners may replace the encoded data.
func (s *Serializer) Serialize(v any, format string) ([]byte, error) {
	codec, err := s.codec(format)
	if err != nil {
		return nil, err
	}
	evt := &ObjectEvent{Format: format, Type: TypeName(v), Object: v}
	if err := s.dispatch(EventPreSerialize, evt); err != nil {
		return nil, err
	}
	evt.Data, err = codec.Marshal(evt.Object)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize '%s' as %s: %w", evt.Type, format, err)
	}
	if err := s.dispatch(EventPostSerialize, evt); err != nil {
		return nil, err
	}
	s.log.Debug("Serialized", "type", evt.Type, "format", format, "size", len(evt.Data))
	return evt.Data, nil
}

// Deserialize decodes data in the given format into target, which must be a non-nil pointer.
// Pre-deserialize listeners may rewrite the data, and post-deserialize listeners see the decoded target.
func (s *Serializer) Deserialize(data []byte, target any, format string) error {
	codec, err := s.codec(format)
	if err != nil {
		return err
	}
	if rv := reflect.ValueOf(target); rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("target must be a non-nil pointer, got %T", target)
	}
	evt := &ObjectEvent{Format: format, Type: TypeName(target), Object: target, Data: data}
	if err := s.dispatch(EventPreDeserialize, evt); err != nil {
		return err
	}
	if err := codec.Unmarshal(evt.Data, target); err != nil {
		return fmt.Errorf("failed to deserialize '%s' from %s: %w", evt.Type, format, err)
	}
	if err := s.dispatch(EventPostDeserialize, evt); err != nil {
		return err
	}
	s.log.Debug("Deserialized", "type", evt.Type, "format", format, "size", len(evt.Data))
	return nil
}

// TypeName returns the name used as the class for a value's events.
// This is the package path and type name, without pointer indirection.
// Unnamed types use their type literal, and nil returns an empty string.
func TypeName(v any) string {
	if v == nil {
		return ""
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if len(t.Name()) == 0 || len(t.PkgPath()) == 0 {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
