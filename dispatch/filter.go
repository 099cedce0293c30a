package dispatch

import (
	"github.com/saylorsolutions/serialevents/iterx"
)

// Filter is an optional discriminator for a [Registration].
// The zero value is unset, and matches any class or format given at dispatch time.
// A Filter created with [Only] matches exactly one value, which may be the empty string.
type Filter struct {
	value string
	set   bool
}

// Any is the unset [Filter]. It's the same as the zero value, but reads better in table literals.
var Any = Filter{}

// Only creates a [Filter] that matches only the given value.
func Only(value string) Filter {
	return Filter{value: value, set: true}
}

// OnlyIfSet creates a [Filter] from an optional value, where a nil pointer is unset.
func OnlyIfSet(value *string) Filter {
	if value == nil {
		return Any
	}
	return Only(*value)
}

// IsSet reports whether the [Filter] restricts matching.
func (f Filter) IsSet() bool {
	return f.set
}

// Value returns the value the [Filter] matches, and whether it's set.
func (f Filter) Value() (string, bool) {
	return f.value, f.set
}

// Matches reports whether the given value passes the [Filter].
func (f Filter) Matches(value string) bool {
	return !f.set || f.value == value
}

func (f Filter) String() string {
	if !f.set {
		return "*"
	}
	return f.value
}

func classMatch[E any](class string) iterx.Filter[Registration[E]] {
	return func(reg Registration[E]) bool {
		return reg.Class.Matches(class)
	}
}

func formatMatch[E any](format string) iterx.Filter[Registration[E]] {
	return func(reg Registration[E]) bool {
		return reg.Format.Matches(format)
	}
}

func hasListener[E any](reg Registration[E]) bool {
	return reg.Listener != nil
}
