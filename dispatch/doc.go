/*
Package dispatch provides a light-weight listener registry for notifying observers about operations on a specific data type and format.

This is not a general purpose event bus.
There is no listener priority, no way to stop propagation, and no isolation between listeners.
It's built to make repeated dispatches cheap, since a serialization pipeline may dispatch the same events many times per second.

# Registration

Every [Listener] is registered under an event name, optionally restricted with a class [Filter] and a format [Filter].
An unset [Filter] matches anything, while a [Filter] created with [Only] matches a single value.

	reg := dispatch.NewRegistry[*MyEvent]()
	reg.Register("serializer.pre_serialize", onPreSerialize, dispatch.ForClass("app.User"), dispatch.ForFormat("json"))

Listeners registered for the same event name are called in the order they were registered.

A [Subscriber] can declare many events at once with a [Descriptor] for each.
When a [Descriptor] doesn't name a method, [DefaultMethodName] is used to derive one from the event name.
Methods are bound when the [Subscriber] is added, so a missing method is reported by [Registry.AddSubscriber] rather than at dispatch time.

To swap out all registrations at once, use [Registry.ReplaceAll].

# Dispatching

[Registry.Dispatch] calls each listener that matches the (event, class, format) triple, passing the event value through unchanged.
The first error returned from a listener stops the dispatch and is returned to the caller as-is.
Panics are not recovered.

[Registry.HasListeners] can be used to skip building an expensive event value when nobody is listening.
It resolves listeners the same way as Dispatch, so a following Dispatch for the same triple is served from the cache.

# Resolution Cache

The listeners matching a triple are resolved on first use, and cached.
Registering a listener drops the cached resolutions for its event name only, and [Registry.ReplaceAll] drops all of them.
There is no other eviction, since the cache is bounded by the number of distinct triples actually dispatched.

A dispatch always works with the resolution taken when it started.
If a listener registers another listener for the same event, the new listener is called starting with the next dispatch.

# Concurrency

A [Registry] is not safe for concurrent use, because every operation may write to the resolution cache.
Use a [SyncRegistry] to share registrations between goroutines.
*/
package dispatch
