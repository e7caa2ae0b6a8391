package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leetpulse/dskit/pkg/errors"
)

// historySize is the number of events kept in the event log.
const historySize = 8

type keyMap struct {
	actions []key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return append(k.actions[:len(k.actions):len(k.actions)], k.Help, k.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	rows := make([][]key.Binding, 0, len(k.actions)/4+2)
	for i := 0; i < len(k.actions); i += 4 {
		rows = append(rows, k.actions[i:min(i+4, len(k.actions))])
	}
	return append(rows, []key.Binding{k.Help, k.Quit})
}

// Model is the bubbletea model of the playground.
type Model struct {
	comp    *Component
	keys    keyMap
	help    help.Model
	history []string
	steps   int
}

// New creates a playground for comp.
func New(comp *Component) Model {
	return Model{
		comp: comp,
		keys: keyMap{
			actions: comp.Keys(),
			Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
			Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		},
		help: help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if cmd, label, ok := m.comp.Handle(msg); ok {
			m.history = append(m.history, label)
			if len(m.history) > historySize {
				m.history = m.history[len(m.history)-historySize:]
			}
			return m, cmd
		}
		return m, nil
	}
	if m.comp.Update(msg) {
		m.steps++
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(m.comp.Name))
	b.WriteString("  ")
	b.WriteString(styleDim.Render(m.comp.Description))
	b.WriteString("\n\n")
	b.WriteString(m.comp.View())
	b.WriteString("\n")

	events := styleDim.Render("no events yet")
	if len(m.history) > 0 {
		events = styleDim.Render(strings.Join(m.history, " › "))
	}
	b.WriteString(stylePanel.Render(fmt.Sprintf("%s %s", styleKey.Render(fmt.Sprintf("events (%d)", m.steps)), events)))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// Run starts the playground for the named component on the terminal.
func Run(name string, opts ...tea.ProgramOption) error {
	comp, ok := Lookup(name)
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "unknown component %q (valid: %s)", name, strings.Join(Names(), ", "))
	}
	_, err := tea.NewProgram(New(comp), opts...).Run()
	return err
}
