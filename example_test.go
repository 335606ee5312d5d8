package typestate_test

import (
	"fmt"

	"github.com/jdziat/typestate"
	"github.com/jdziat/typestate/typestatetest"
)

type Addr struct {
	Host string
	Port int
}

// This example builds a two-field value in either order.
func ExampleBuild2() {
	newAddr := func(host string, port int) Addr { return Addr{Host: host, Port: port} }

	addr := typestate.Build2(typestate.New2(newAddr).Second(8080).First("localhost"))

	fmt.Printf("%s:%d\n", addr.Host, addr.Port)
	// Output: localhost:8080
}

// This example shows the state of a partially filled builder.
func ExampleBuilder2_String() {
	newAddr := func(host string, port int) Addr { return Addr{Host: host, Port: port} }

	b := typestate.New2(newAddr, typestate.WithFieldNames("host", "port")).First("localhost")
	fmt.Println(b)
	b.Discard()
	// Output: Builder2[typestate_test.Addr]{host=set port=unset}
}

// This example shows that overwriting a field releases the earlier value.
func ExampleWithReleaseHook() {
	tr := typestatetest.NewTracker()
	keep := func(a, b *typestatetest.Resource) [2]string { return [2]string{a.Name, b.Name} }

	b := typestate.New2(keep, typestate.WithReleaseHook(func(field string) {
		fmt.Println("released", field)
	}))
	names := typestate.Build2(b.First(tr.New("old")).First(tr.New("new")).Second(tr.New("other")))

	fmt.Println(names, tr.Released("old"))
	// Output:
	// released first
	// [new other] 1
}
