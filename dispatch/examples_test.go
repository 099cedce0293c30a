package dispatch

import (
	"fmt"
)

type exampleEvent struct {
	Object string
}

func ExampleRegistry_Dispatch() {
	reg := NewRegistry[*exampleEvent]()

	// Listeners without filters are called for every class and format.
	reg.Register("serializer.pre_serialize", func(evt *exampleEvent) error {
		fmt.Println("any:", evt.Object)
		return nil
	})

	// Filters restrict the dispatches a listener is called for.
	reg.Register("serializer.pre_serialize", func(evt *exampleEvent) error {
		fmt.Println("users as json:", evt.Object)
		return nil
	}, ForClass("app.User"), ForFormat("json"))

	// HasListeners can be used to avoid building an event value nobody will see.
	if reg.HasListeners("serializer.pre_serialize", "app.User", "json") {
		_ = reg.Dispatch("serializer.pre_serialize", "app.User", "json", &exampleEvent{Object: "alice"})
	}
	_ = reg.Dispatch("serializer.pre_serialize", "app.User", "yaml", &exampleEvent{Object: "bob"})

	// Output:
	// any: alice
	// users as json: alice
	// any: bob
}

func ExampleRegistry_AddSubscriber() {
	reg := NewRegistry[*exampleEvent]()
	sub := NewSubscriber(Methods[*exampleEvent]{
		// Derived from the event name with DefaultMethodName.
		"onpostdeserialize": func(evt *exampleEvent) error {
			fmt.Println("deserialized", evt.Object)
			return nil
		},
	},
		Descriptor{Event: "post_deserialize", Format: Only("yaml")},
	)
	if err := reg.AddSubscriber(sub); err != nil {
		fmt.Println("Failed to add subscriber:", err)
		return
	}
	_ = reg.Dispatch("post_deserialize", "app.User", "yaml", &exampleEvent{Object: "carol"})
	_ = reg.Dispatch("post_deserialize", "app.User", "json", &exampleEvent{Object: "dave"})

	// Output:
	// deserialized carol
}
