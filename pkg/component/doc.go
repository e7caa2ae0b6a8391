// Package component defines the state and reducer of every interactive
// design system component.
//
// Each component has a state struct, a closed set of events and a pure
// reduce function suitable for [state.Store]. Event sets are closed through
// an unexported marker method, so a reducer's type switch covers every
// event its component accepts.
//
// # Interaction Rules
//
// Components share a few rules:
//
//   - Disabling a component resets dependent interactive state. A disabled
//     Button stops loading, and a disabled TextField or TextArea loses focus.
//   - Selection components (TabBar, Sidebar, SegmentedControl, Picker,
//     Select) ignore selection while disabled.
//   - A Toggle ignores flips while disabled, although SetOn still applies.
//   - Putting a Button into the loading state disables it.
//
// Events that violate these rules are dropped without error.
//
// [state.Store]: github.com/leetpulse/dskit/pkg/state.Store
package component
