// Package typestatetest provides resource-tracking stand-ins for testing
// code built on package typestate.
//
// A [Tracker] hands out [Resource] values that count how many times they
// are released. Use them as builder field values to check that overwrites
// and discards release each value exactly once:
//
//	tr := typestatetest.NewTracker()
//	b := typestate.New2(pair, typestate.WithReleaseHook(tr.Hook()))
//	b.First(tr.New("a")).First(tr.New("b")).Discard()
//
//	if got := tr.Released("a"); got != 1 {
//	    t.Errorf("Released(a) = %d, want 1", got)
//	}
//
// [MockLogger] captures builder log output.
package typestatetest
