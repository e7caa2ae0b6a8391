package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leetpulse/dskit/pkg/component"
	"github.com/leetpulse/dskit/pkg/state"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDispatcher(t *testing.T) {
	store := state.NewStore(component.NewButtonState(), component.ReduceButton)
	d := NewDispatcher("button", store)

	msg := d.Send(component.ButtonSetLoading(true))()
	if !d.Update(msg) {
		t.Fatal("Update should apply an event addressed to the dispatcher")
	}
	if s := d.State(); !s.Loading || s.Enabled {
		t.Errorf("state = %+v, want loading and disabled", s)
	}

	other := EventMsg[component.ButtonEvent]{Target: "other", Event: component.ButtonSetEnabled(true)}
	if d.Update(other) {
		t.Error("Update applied an event for another dispatcher")
	}
	if d.Update(runes("x")) {
		t.Error("Update applied a non-event message")
	}
}

func TestDispatcherNotifiesSubscribers(t *testing.T) {
	store := state.NewStore(component.NewToggleState(false), component.ReduceToggle)
	var seen []bool
	store.Subscribe(func(s component.ToggleState) { seen = append(seen, s.On) })

	d := NewDispatcher("toggle", store)
	d.Update(d.Send(component.ToggleFlip{})())
	d.Update(d.Send(component.ToggleFlip{})())

	if len(seen) != 2 || !seen[0] || seen[1] {
		t.Errorf("subscriber saw %v, want [true false]", seen)
	}
}

func TestCatalog(t *testing.T) {
	names := Names()
	if len(names) != len(catalog) {
		t.Fatalf("Names() = %v", names)
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			c, ok := Lookup(name)
			if !ok {
				t.Fatalf("Lookup(%q) failed", name)
			}
			if len(c.Keys()) == 0 {
				t.Error("component has no key bindings")
			}
			if c.View() == "" {
				t.Error("component has an empty view")
			}
			seen := map[string]bool{}
			for _, k := range c.Keys() {
				for _, s := range k.Keys() {
					if seen[s] {
						t.Errorf("key %q bound twice", s)
					}
					seen[s] = true
				}
			}
		})
	}

	if _, ok := Lookup("Button"); !ok {
		t.Error("Lookup should ignore case")
	}
	if _, ok := Lookup("carousel"); ok {
		t.Error("Lookup found an unknown component")
	}
}

func TestLookupReturnsFreshState(t *testing.T) {
	a, _ := Lookup("toggle")
	cmd, _, _ := a.Handle(runes("1"))
	a.Update(cmd())

	b, _ := Lookup("toggle")
	if a.View() == b.View() {
		t.Error("components from separate lookups share state")
	}
}

// press sends key through the model and delivers the resulting event.
func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd != nil {
		next, _ = m.Update(cmd())
		m = next.(Model)
	}
	return m
}

func TestModelButtonScenario(t *testing.T) {
	c, _ := Lookup("button")
	m := New(c)

	m = press(t, m, runes("l"))
	if !strings.Contains(m.View(), "Submitting...") {
		t.Errorf("loading button not shown:\n%s", m.View())
	}

	m = press(t, m, runes("x"))
	view := m.View()
	if strings.Contains(view, "Submitting...") {
		t.Error("disabling should clear loading")
	}
	if !strings.Contains(view, "start loading › disable") {
		t.Errorf("event history missing:\n%s", view)
	}
	if m.steps != 2 {
		t.Errorf("steps = %d, want 2", m.steps)
	}
}

func TestModelToggleSpace(t *testing.T) {
	c, _ := Lookup("toggle")
	m := press(t, New(c), tea.KeyMsg{Type: tea.KeySpace})
	if !strings.Contains(m.View(), "(•) on") {
		t.Errorf("space should flip the toggle:\n%s", m.View())
	}
}

func TestModelSelectionDisabled(t *testing.T) {
	c, _ := Lookup("selection")
	m := New(c)
	m = press(t, m, runes("2"))
	m = press(t, m, runes("x"))
	m = press(t, m, runes("3"))

	view := m.View()
	if !strings.Contains(view, "select b") {
		t.Errorf("history missing first selection:\n%s", view)
	}
	if !strings.Contains(view, "selected     b") {
		t.Errorf("selection should stay on b while disabled:\n%s", view)
	}
}

func TestModelProgressClamps(t *testing.T) {
	c, _ := Lookup("progress")
	m := press(t, New(c), runes("o"))
	view := m.View()
	if !strings.Contains(view, "1.5") || !strings.Contains(view, "100%") {
		t.Errorf("want raw 1.5 rendered at 100%%:\n%s", view)
	}
}

func TestModelQuitAndHelp(t *testing.T) {
	c, _ := Lookup("alert")
	m := New(c)

	next, _ := m.Update(runes("?"))
	if !next.(Model).help.ShowAll {
		t.Error("? should expand the help")
	}

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestModelHistoryIsBounded(t *testing.T) {
	c, _ := Lookup("bubble")
	m := New(c)
	for range historySize + 5 {
		m = press(t, m, runes("h"))
	}
	if len(m.history) != historySize {
		t.Errorf("history length = %d, want %d", len(m.history), historySize)
	}
}
