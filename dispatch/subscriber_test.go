package dispatch

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestRegistry_AddSubscriber(t *testing.T) {
	reg := NewRegistry[*testEventValue]()
	sub := NewSubscriber(Methods[*testEventValue]{
		"onserializerpostserialize":  recordCall("default"),
		"custom":                     recordCall("custom"),
		"onserializerpredeserialize": recordCall("other"),
	},
		Descriptor{Event: testEvent},
		Descriptor{Event: testEvent, Method: "custom", Class: Only(testClass), Format: Only(testFormat)},
		Descriptor{Event: testOtherEvent, Format: Only("yaml")},
	)
	require.NoError(t, reg.AddSubscriber(sub))

	assert.Equal(t, []string{"default", "custom"}, dispatchCalls(t, reg, testEvent, testClass, testFormat))
	assert.Equal(t, []string{"default"}, dispatchCalls(t, reg, testEvent, testClass, "yaml"))
	assert.Equal(t, []string{"other"}, dispatchCalls(t, reg, testOtherEvent, "", "yaml"))
	assert.Empty(t, dispatchCalls(t, reg, testOtherEvent, "", testFormat))
}

func TestRegistry_RegisterBatch_MissingEvent(t *testing.T) {
	reg := NewRegistry[*testEventValue]()
	methods := Methods[*testEventValue]{
		"first":  recordCall("first"),
		"second": recordCall("second"),
	}
	err := reg.RegisterBatch(methods,
		Descriptor{Event: testEvent, Method: "first"},
		Descriptor{Method: "second"},
		Descriptor{Event: testEvent, Method: "second"},
	)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.NotErrorIs(t, err, ErrUnknownMethod)
	assert.Equal(t, []string{"first"}, dispatchCalls(t, reg, testEvent, "", ""),
		"Descriptors before the invalid one should stay registered, and the rest should be skipped")
	assert.Equal(t, []string{testEvent}, reg.Events())
}

func TestRegistry_RegisterBatch_UnknownMethod(t *testing.T) {
	reg := NewRegistry[*testEventValue]()
	methods := Methods[*testEventValue]{
		"nil": nil,
	}
	err := reg.RegisterBatch(methods, Descriptor{Event: "post_serialize"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, err, ErrUnknownMethod)
	assert.ErrorContains(t, err, "onpostserialize")

	err = reg.RegisterBatch(methods, Descriptor{Event: "post_serialize", Method: "nil"})
	assert.ErrorIs(t, err, ErrUnknownMethod, "Nil listeners should not be bound")
	assert.False(t, reg.HasListeners("post_serialize", "", ""))
}

func TestRegistry_RegisterBatch_InvalidatesEachEvent(t *testing.T) {
	reg := NewRegistry[*testEventValue]()
	reg.Register(testEvent, recordCall("a"))
	reg.Register(testOtherEvent, recordCall("b"))
	reg.Register("untouched", recordCall("c"))
	for _, event := range []string{testEvent, testOtherEvent, "untouched"} {
		assert.True(t, reg.HasListeners(event, "", ""))
	}

	err := reg.RegisterBatch(Methods[*testEventValue]{"m": recordCall("m")},
		Descriptor{Event: testEvent, Method: "m"},
		Descriptor{Event: testOtherEvent, Method: "m"},
	)
	require.NoError(t, err)
	assert.NotContains(t, reg.resolved, testEvent)
	assert.NotContains(t, reg.resolved, testOtherEvent)
	assert.Contains(t, reg.resolved, "untouched")
	assert.Equal(t, []string{"a", "m"}, dispatchCalls(t, reg, testEvent, "", ""))
	assert.Equal(t, []string{"b", "m"}, dispatchCalls(t, reg, testOtherEvent, "", ""))
}

func TestDescriptor_MethodName(t *testing.T) {
	assert.Equal(t, "onpostserialize", Descriptor{Event: "post_serialize"}.MethodName())
	assert.Equal(t, "handle", Descriptor{Event: "post_serialize", Method: "handle"}.MethodName())
}
