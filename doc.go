/*
Package serialevents is the root of a module for notifying observers about serialization operations on specific data types and formats.

  - Package dispatch provides the listener registry, which resolves and caches the listeners for an (event, class, format) triple.
  - Package serializer is a JSON and YAML serializer that dispatches pre- and post-operation events through the registry.
  - Package config loads scenario files for the eventctl command.

The eventctl command in cmd/eventctl runs a scenario of dispatches against tracing listeners, which is useful for checking how a set of filters resolves.
*/
package serialevents
