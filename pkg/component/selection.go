package component

// SelectionState is shared by the single-choice components: TabBar,
// Sidebar, SegmentedControl, Picker and Select. An empty SelectedID means
// nothing is selected.
type SelectionState struct {
	SelectedID string `json:"selected_id,omitempty"`
	Enabled    bool   `json:"enabled"`
}

// Component-specific names for the shared selection state.
type (
	TabBarState           = SelectionState
	SidebarState          = SelectionState
	SegmentedControlState = SelectionState
	PickerState           = SelectionState
	SelectState           = SelectionState
)

// NewSelectionState returns an enabled selection with selected chosen.
func NewSelectionState(selected string) SelectionState {
	return SelectionState{SelectedID: selected, Enabled: true}
}

// HasSelection reports whether an item is selected.
func (s SelectionState) HasSelection() bool { return s.SelectedID != "" }

// SelectionEvent is an event accepted by [ReduceSelection].
type SelectionEvent interface{ selectionEvent() }

// SelectionChoose selects an item by id. The empty id clears the selection.
type SelectionChoose string

// SelectionSetEnabled enables or disables the component.
type SelectionSetEnabled bool

func (SelectionChoose) selectionEvent()     {}
func (SelectionSetEnabled) selectionEvent() {}

// ReduceSelection applies a selection event. Choices are dropped while the
// component is disabled.
func ReduceSelection(s SelectionState, e SelectionEvent) SelectionState {
	switch e := e.(type) {
	case SelectionChoose:
		if s.Enabled {
			s.SelectedID = string(e)
		}
	case SelectionSetEnabled:
		s.Enabled = bool(e)
	}
	return s
}
