// Package tui hosts the interactive component playground.
//
// A [Dispatcher] adapts a [state.Store] to the bubbletea update loop: key
// handlers return the Cmd from [Dispatcher.Send], and the model's Update
// passes every message through [Dispatcher.Update]. Because bubbletea calls
// Update from a single goroutine, events reach the store one at a time.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leetpulse/dskit/pkg/state"
)

// EventMsg carries a store event through the bubbletea runtime. The
// Target field routes it to one dispatcher when several share an event type.
type EventMsg[E any] struct {
	Target string
	Event  E
}

// Dispatcher feeds bubbletea messages into a store.
type Dispatcher[S, E any] struct {
	name  string
	store *state.Store[S, E]
}

// NewDispatcher wraps store. The name routes [EventMsg] values.
func NewDispatcher[S, E any](name string, store *state.Store[S, E]) *Dispatcher[S, E] {
	return &Dispatcher[S, E]{name: name, store: store}
}

// Send returns a command that delivers e to this dispatcher's store.
func (d *Dispatcher[S, E]) Send(e E) tea.Cmd {
	return func() tea.Msg { return EventMsg[E]{Target: d.name, Event: e} }
}

// Update applies msg when it is an event for this dispatcher and reports
// whether the store changed.
func (d *Dispatcher[S, E]) Update(msg tea.Msg) bool {
	m, ok := msg.(EventMsg[E])
	if !ok || m.Target != d.name {
		return false
	}
	d.store.Send(m.Event)
	return true
}

// State returns the store's current state.
func (d *Dispatcher[S, E]) State() S { return d.store.State() }
