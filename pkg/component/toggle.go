package component

// ToggleState is the state of an on/off switch.
type ToggleState struct {
	On      bool `json:"on"`
	Enabled bool `json:"enabled"`
}

// NewToggleState returns an enabled toggle in the given position.
func NewToggleState(on bool) ToggleState { return ToggleState{On: on, Enabled: true} }

// ToggleEvent is an event accepted by [ReduceToggle].
type ToggleEvent interface{ toggleEvent() }

type (
	// ToggleSetOn sets the position directly, even while disabled.
	ToggleSetOn bool
	// ToggleFlip flips the position when enabled.
	ToggleFlip struct{}
	// ToggleSetEnabled enables or disables the toggle.
	ToggleSetEnabled bool
)

func (ToggleSetOn) toggleEvent()      {}
func (ToggleFlip) toggleEvent()       {}
func (ToggleSetEnabled) toggleEvent() {}

// ReduceToggle applies a toggle event.
func ReduceToggle(s ToggleState, e ToggleEvent) ToggleState {
	switch e := e.(type) {
	case ToggleSetOn:
		s.On = bool(e)
	case ToggleFlip:
		if s.Enabled {
			s.On = !s.On
		}
	case ToggleSetEnabled:
		s.Enabled = bool(e)
	}
	return s
}
