package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leetpulse/dskit/pkg/component"
	"github.com/leetpulse/dskit/pkg/model"
	"github.com/leetpulse/dskit/pkg/pipeline"
	"github.com/leetpulse/dskit/pkg/render/term"
	"github.com/leetpulse/dskit/pkg/state"
	"github.com/leetpulse/dskit/pkg/tree"
)

// Component is one playground entry: a store, the key bindings that send
// its events and a view of its state.
type Component struct {
	Name        string
	Description string

	actions []Action
	update  func(tea.Msg) bool
	view    func() string
}

// Action binds a key to one event.
type Action struct {
	Binding key.Binding
	Label   string
	cmd     tea.Cmd
}

// Keys returns the component's key bindings in declaration order.
func (c *Component) Keys() []key.Binding {
	keys := make([]key.Binding, len(c.actions))
	for i, a := range c.actions {
		keys[i] = a.Binding
	}
	return keys
}

// Handle returns the command and label of the action bound to msg.
func (c *Component) Handle(msg tea.KeyMsg) (tea.Cmd, string, bool) {
	for _, a := range c.actions {
		if key.Matches(msg, a.Binding) {
			return a.cmd, a.Label, true
		}
	}
	return nil, "", false
}

// Update forwards msg to the component's dispatcher and reports whether
// the state changed.
func (c *Component) Update(msg tea.Msg) bool { return c.update(msg) }

// View renders the current state.
func (c *Component) View() string { return c.view() }

type action[E any] struct {
	keys  []string
	label string
	event E
}

func on[E any](label string, event E, keys ...string) action[E] {
	return action[E]{keys: keys, label: label, event: event}
}

func newComponent[S, E any](name, desc string, initial S, reduce state.Reducer[S, E], view func(S) string, actions ...action[E]) *Component {
	d := NewDispatcher(name, state.NewStore(initial, reduce))
	c := &Component{
		Name:        name,
		Description: desc,
		update:      d.Update,
		view:        func() string { return view(d.State()) },
	}
	for _, a := range actions {
		c.actions = append(c.actions, Action{
			Binding: key.NewBinding(key.WithKeys(a.keys...), key.WithHelp(a.keys[0], a.label)),
			Label:   a.label,
			cmd:     d.Send(a.event),
		})
	}
	return c
}

var catalog = map[string]func() *Component{
	"button":     buttonComponent,
	"toggle":     toggleComponent,
	"selection":  selectionComponent,
	"textfield":  textFieldComponent,
	"progress":   progressComponent,
	"bubble":     bubbleComponent,
	"validation": validationComponent,
	"alert":      alertComponent,
}

// Names lists the playground components in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a fresh instance of the named component.
func Lookup(name string) (*Component, bool) {
	build, ok := catalog[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return build(), true
}

func buttonComponent() *Component {
	view := func(s component.ButtonState) string {
		label := "Submit"
		style := styleSelected
		switch {
		case s.Loading:
			label = "Submitting..."
			style = styleWarn
		case !s.Enabled:
			style = styleOff
		}
		return styleWidget.Render(style.Render(label)) + "\n" +
			fields("enabled", s.Enabled, "loading", s.Loading)
	}
	return newComponent("button", "Disabling clears loading; loading disables.",
		component.NewButtonState(), component.ReduceButton, view,
		on[component.ButtonEvent]("enable", component.ButtonSetEnabled(true), "e"),
		on[component.ButtonEvent]("disable", component.ButtonSetEnabled(false), "x"),
		on[component.ButtonEvent]("start loading", component.ButtonSetLoading(true), "l"),
		on[component.ButtonEvent]("stop loading", component.ButtonSetLoading(false), "s"),
	)
}

func toggleComponent() *Component {
	view := func(s component.ToggleState) string {
		knob := styleOff.Render("( ) off")
		if s.On {
			knob = styleOn.Render("(•) on")
		}
		return styleWidget.Render(knob) + "\n" + fields("on", s.On, "enabled", s.Enabled)
	}
	return newComponent("toggle", "Flips are ignored while disabled; set always applies.",
		component.NewToggleState(false), component.ReduceToggle, view,
		on[component.ToggleEvent]("flip", component.ToggleFlip{}, "space", " "),
		on[component.ToggleEvent]("set on", component.ToggleSetOn(true), "1"),
		on[component.ToggleEvent]("set off", component.ToggleSetOn(false), "0"),
		on[component.ToggleEvent]("enable", component.ToggleSetEnabled(true), "e"),
		on[component.ToggleEvent]("disable", component.ToggleSetEnabled(false), "x"),
	)
}

// previewTree is the tree shown by the selection playground; the selected
// node is highlighted.
var previewTree = model.TreeDocument{
	Root: "a",
	Nodes: []tree.Node{
		{ID: "a", Label: "A", Left: "b", Right: "c"},
		{ID: "b", Label: "B", Left: "d"},
		{ID: "c", Label: "C"},
		{ID: "d", Label: "D"},
	},
}

func selectionPreview(selected string) string {
	doc := previewTree
	if selected != "" {
		doc.Highlighted = []string{selected}
	}
	l, err := pipeline.ComputeLayout(model.Document{Kind: model.KindTree, Tree: &doc},
		pipeline.Options{Width: 160, NodeSize: 20, LevelSpacing: 30})
	if err != nil {
		return styleError.Render(err.Error())
	}
	return term.Render(l, term.Options{Columns: 32, Rows: 8, NoLegend: true})
}

func selectionComponent() *Component {
	view := func(s component.SelectionState) string {
		selected := s.SelectedID
		if !s.HasSelection() {
			selected = styleDim.Render("(none)")
		}
		return selectionPreview(s.SelectedID) + "\n" +
			fields("selected", selected, "enabled", s.Enabled)
	}
	actions := []action[component.SelectionEvent]{
		on[component.SelectionEvent]("clear", component.SelectionChoose(""), "0"),
	}
	for i, n := range previewTree.Nodes {
		k := fmt.Sprint(i + 1)
		actions = append(actions, on[component.SelectionEvent]("select "+n.ID, component.SelectionChoose(n.ID), k))
	}
	actions = append(actions,
		on[component.SelectionEvent]("enable", component.SelectionSetEnabled(true), "e"),
		on[component.SelectionEvent]("disable", component.SelectionSetEnabled(false), "x"),
	)
	return newComponent("selection", "Tab bar, sidebar, picker: choices are dropped while disabled.",
		component.NewSelectionState(""), component.ReduceSelection, view, actions...)
}

func textFieldComponent() *Component {
	view := func(s component.TextFieldState) string {
		border := styleWidget
		switch s.Validation.Status {
		case component.ValidationValid:
			border = border.BorderForeground(colorGreen)
		case component.ValidationInvalid:
			border = border.BorderForeground(colorRed)
		}
		if s.Focused {
			border = border.BorderStyle(lipgloss.ThickBorder())
		}
		text := "value"
		if !s.Enabled {
			text = styleOff.Render(text)
		}
		out := border.Render(text) + "\n" + fields(
			"enabled", s.Enabled,
			"focused", s.Focused,
			"validation", s.Validation.Status)
		if s.Validation.Message != "" {
			out += "\n" + styleError.Render(s.Validation.Message)
		}
		return out
	}
	return newComponent("textfield", "Focus, enablement and validation display.",
		component.NewTextFieldState(), component.ReduceTextField, view,
		on[component.TextFieldEvent]("focus", component.TextFieldSetFocused(true), "f"),
		on[component.TextFieldEvent]("blur", component.TextFieldSetFocused(false), "b"),
		on[component.TextFieldEvent]("valid", component.TextFieldSetValidation(component.Valid()), "v"),
		on[component.TextFieldEvent]("invalid", component.TextFieldSetValidation(component.Invalid("must not be empty")), "i"),
		on[component.TextFieldEvent]("clear validation", component.TextFieldSetValidation(component.FieldValidation{}), "c"),
		on[component.TextFieldEvent]("enable", component.TextFieldSetEnabled(true), "e"),
		on[component.TextFieldEvent]("disable", component.TextFieldSetEnabled(false), "x"),
	)
}

const barWidth = 24

func progressComponent() *Component {
	view := func(s component.ProgressRingState) string {
		m := component.RenderProgressRing(s)
		if m.Indeterminate {
			return styleWidget.Render(styleDim.Render(strings.Repeat("~", barWidth))) + "\n" +
				fields("progress", "indeterminate")
		}
		filled := int(*m.Progress*barWidth + 0.5)
		bar := styleOn.Render(strings.Repeat("█", filled)) + styleOff.Render(strings.Repeat("░", barWidth-filled))
		return styleWidget.Render(bar) + "\n" +
			fields("raw", fmt.Sprintf("%g", *s.Progress), "rendered", fmt.Sprintf("%.0f%%", *m.Progress*100))
	}
	return newComponent("progress", "Raw progress is kept; the render model clamps to [0, 1].",
		component.ProgressRingState{}, component.ReduceProgressRing, view,
		on[component.ProgressRingEvent]("0%", component.SetProgress(0), "0"),
		on[component.ProgressRingEvent]("50%", component.SetProgress(0.5), "5"),
		on[component.ProgressRingEvent]("100%", component.SetProgress(1), "9"),
		on[component.ProgressRingEvent]("150%", component.SetProgress(1.5), "o"),
		on[component.ProgressRingEvent]("-50%", component.SetProgress(-0.5), "u"),
		on[component.ProgressRingEvent]("indeterminate", component.ProgressRingSet{}, "n"),
	)
}

func bubbleComponent() *Component {
	view := func(s component.BubbleState) string {
		style := styleValue
		switch s.ChangeType {
		case component.ChangeAdded:
			style = styleOn
		case component.ChangeRemoved:
			style = styleError
		case component.ChangeModified:
			style = styleWarn
		case component.ChangeUnchanged:
			style = styleDim
		}
		if s.Highlighted {
			style = style.Bold(true).Underline(true)
		}
		change := string(s.ChangeType)
		if change == "" {
			change = "none"
		}
		return styleWidget.Render(style.Render("( 42 )")) + "\n" +
			fields("highlighted", s.Highlighted, "change", change)
	}
	return newComponent("bubble", "Value bubble with highlight and change marker.",
		component.BubbleState{}, component.ReduceBubble, view,
		on[component.BubbleEvent]("highlight", component.BubbleSetHighlighted(true), "h"),
		on[component.BubbleEvent]("unhighlight", component.BubbleSetHighlighted(false), "u"),
		on[component.BubbleEvent]("added", component.BubbleSetChangeType(component.ChangeAdded), "a"),
		on[component.BubbleEvent]("removed", component.BubbleSetChangeType(component.ChangeRemoved), "r"),
		on[component.BubbleEvent]("modified", component.BubbleSetChangeType(component.ChangeModified), "m"),
		on[component.BubbleEvent]("unchanged", component.BubbleSetChangeType(component.ChangeUnchanged), "c"),
		on[component.BubbleEvent]("no marker", component.BubbleSetChangeType(component.ChangeNone), "n"),
	)
}

func validationComponent() *Component {
	view := func(s component.ValidationState) string {
		status := styleOn.Render("valid")
		if !s.IsValid() {
			status = styleError.Render("invalid: " + s.Message())
		}
		return styleWidget.Render(status) + "\n" +
			fields("dirty", s.Dirty, "code", s.Result.Code)
	}
	return newComponent("validation", "Setting a result marks the state dirty.",
		component.ValidationState{}, component.ReduceValidation, view,
		on[component.ValidationEvent]("pass", component.ValidationSetResult(component.ValidationResult{}), "v"),
		on[component.ValidationEvent]("fail", component.ValidationSetResult(component.InvalidResult("too short", "min_length")), "i"),
		on[component.ValidationEvent]("mark dirty", component.ValidationSetDirty(true), "d"),
		on[component.ValidationEvent]("reset", component.ValidationReset{}, "r"),
	)
}

func alertComponent() *Component {
	view := func(s component.AlertState) string {
		body := styleDim.Render("(dismissed)")
		if s.Presented {
			body = styleTitle.Render("Delete node?")
			if s.Processing {
				body += "\n" + styleWarn.Render("deleting...")
			}
		}
		return styleWidget.Render(body) + "\n" +
			fields("presented", s.Presented, "processing", s.Processing, "enabled", s.Enabled)
	}
	return newComponent("alert", "Modal alert with a processing state.",
		component.NewAlertState(), component.ReduceAlert, view,
		on[component.AlertEvent]("present", component.AlertSetPresented(true), "p"),
		on[component.AlertEvent]("dismiss", component.AlertSetPresented(false), "d"),
		on[component.AlertEvent]("processing", component.AlertSetProcessing(true), "w"),
		on[component.AlertEvent]("done", component.AlertSetProcessing(false), "s"),
		on[component.AlertEvent]("enable", component.AlertSetEnabled(true), "e"),
		on[component.AlertEvent]("disable", component.AlertSetEnabled(false), "x"),
	)
}
