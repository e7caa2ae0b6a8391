// Package state provides the unidirectional state container used by every
// design system component.
//
// A [Reducer] is a pure function from a state and an event to the next
// state. A [Store] owns one state value and one reducer, applies events
// synchronously in the order they are sent, and notifies subscribers after
// each event:
//
//	s := state.NewStore(component.NewButtonState(), component.ReduceButton)
//	s.Send(component.ButtonSetLoading(true))
//	fmt.Println(s.State().Enabled) // false
//
// Stores are not safe for concurrent use. They are owned by a single control
// loop (a UI event loop, a request handler, a test) which serializes calls
// to [Store.Send].
package state
