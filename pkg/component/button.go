package component

// ButtonState is the state of a button.
type ButtonState struct {
	Enabled bool `json:"enabled"`
	Loading bool `json:"loading"`
}

// NewButtonState returns an enabled, idle button.
func NewButtonState() ButtonState { return ButtonState{Enabled: true} }

// ButtonEvent is an event accepted by [ReduceButton].
type ButtonEvent interface{ buttonEvent() }

// ButtonSetEnabled enables or disables the button.
type ButtonSetEnabled bool

// ButtonSetLoading starts or stops the loading indicator.
type ButtonSetLoading bool

func (ButtonSetEnabled) buttonEvent() {}
func (ButtonSetLoading) buttonEvent() {}

// ReduceButton applies a button event. Disabling clears Loading and
// loading disables the button.
func ReduceButton(s ButtonState, e ButtonEvent) ButtonState {
	switch e := e.(type) {
	case ButtonSetEnabled:
		s.Enabled = bool(e)
		if !s.Enabled {
			s.Loading = false
		}
	case ButtonSetLoading:
		s.Loading = bool(e)
		if s.Loading {
			s.Enabled = false
		}
	}
	return s
}
