package dispatch

import (
	"github.com/saylorsolutions/serialevents/syncx"
	"sync"
)

// SyncRegistry is a [Registry] that may be shared between goroutines.
//
// Registry state is only accessed while holding a lock, but listeners are called after the lock is released.
// This means a [Listener] may register other listeners without deadlocking, and slow listeners don't block registration.
type SyncRegistry[E any] struct {
	mux sync.Mutex
	reg *Registry[E]
}

// NewSyncRegistry creates an empty [SyncRegistry].
func NewSyncRegistry[E any](opts ...Option) *SyncRegistry[E] {
	return &SyncRegistry[E]{
		reg: NewRegistry[E](opts...),
	}
}

// registry must be called while holding the lock.
func (s *SyncRegistry[E]) registry() *Registry[E] {
	if s.reg == nil {
		s.reg = NewRegistry[E]()
	}
	return s.reg
}

func (s *SyncRegistry[E]) ReplaceAll(table Table[E]) {
	syncx.LockFunc(&s.mux, func() {
		s.registry().ReplaceAll(table)
	})
}

func (s *SyncRegistry[E]) Register(event string, listener Listener[E], opts ...RegisterOption) {
	syncx.LockFunc(&s.mux, func() {
		s.registry().Register(event, listener, opts...)
	})
}

func (s *SyncRegistry[E]) RegisterBatch(source MethodSource[E], descriptors ...Descriptor) error {
	return syncx.LockFuncT(&s.mux, func() error {
		return s.registry().RegisterBatch(source, descriptors...)
	})
}

func (s *SyncRegistry[E]) AddSubscriber(sub Subscriber[E]) error {
	return s.RegisterBatch(sub, sub.SubscribedEvents()...)
}

func (s *SyncRegistry[E]) HasListeners(event, class, format string) bool {
	return syncx.LockFuncT(&s.mux, func() bool {
		return s.registry().HasListeners(event, class, format)
	})
}

func (s *SyncRegistry[E]) Listeners(event, class, format string) []Listener[E] {
	return syncx.LockFuncT(&s.mux, func() []Listener[E] {
		return s.registry().Listeners(event, class, format)
	})
}

func (s *SyncRegistry[E]) Events() []string {
	return syncx.LockFuncT(&s.mux, func() []string {
		return s.registry().Events()
	})
}

// Dispatch resolves listeners while locked, then calls them in order after unlocking.
// Error semantics are the same as [Registry.Dispatch].
func (s *SyncRegistry[E]) Dispatch(event, class, format string, value E) error {
	listeners := syncx.LockFuncT(&s.mux, func() []Listener[E] {
		reg := s.registry()
		reg.init()
		if _, ok := reg.listeners[event]; !ok {
			return nil
		}
		// Resolutions are never modified after they're cached, only replaced.
		return reg.resolve(event, class, format)
	})
	for _, listener := range listeners {
		if err := listener(value); err != nil {
			return err
		}
	}
	return nil
}
