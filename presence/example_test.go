// SPDX-License-Identifier: MIT

package presence_test

import (
	"fmt"

	"github.com/katalvlaran/proxima/presence"
	"github.com/katalvlaran/proxima/vivaldi"
)

// ExampleExecute records a crossing between two nearby parties and sends
// its 18-byte event.
func ExampleExecute() {
	a := presence.Party{ID: 1, Coord: vivaldi.MustNew(0, 0), Secret: 42}
	b := presence.Party{ID: 2, Coord: vivaldi.MustNew(3, 4), Secret: 99}

	rec, err := presence.Execute(a, b, 1_000_000)
	if err != nil {
		panic(err)
	}
	wire, _ := rec.Event.MarshalBinary()

	fmt.Println(rec.Status(), rec.Proximity.Distance, len(wire))
	// Output: recorded 5 18
}

// ExampleSession walks a session through a successful exchange.
func ExampleSession() {
	s := presence.NewSession(1, 0)
	_ = s.Discover(2, 10)
	_ = s.BeginExchange(20)
	_ = s.Verify(30)
	_ = s.Close(presence.CloseSuccess, 40)

	fmt.Println(s.State(), s.CloseReason())
	// Output: closed success
}
