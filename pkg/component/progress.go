package component

// ProgressRingState is the state of a circular progress indicator. A nil
// Progress shows an indeterminate ring.
type ProgressRingState struct {
	Progress *float64 `json:"progress,omitempty"`
}

// ProgressRingEvent is an event accepted by [ReduceProgressRing].
type ProgressRingEvent interface{ progressRingEvent() }

// ProgressRingSet replaces the progress value. Nil switches to indeterminate.
type ProgressRingSet struct {
	Progress *float64
}

func (ProgressRingSet) progressRingEvent() {}

// SetProgress returns a ProgressRingSet for a determinate value.
func SetProgress(p float64) ProgressRingSet { return ProgressRingSet{Progress: &p} }

// ReduceProgressRing stores the progress as given. Clamping happens in the
// render model so the raw value stays observable.
func ReduceProgressRing(s ProgressRingState, e ProgressRingEvent) ProgressRingState {
	if e, ok := e.(ProgressRingSet); ok {
		if e.Progress == nil {
			s.Progress = nil
		} else {
			p := *e.Progress
			s.Progress = &p
		}
	}
	return s
}

// ProgressRingModel is what a renderer draws.
type ProgressRingModel struct {
	Progress      *float64 `json:"progress,omitempty"`
	Indeterminate bool     `json:"indeterminate"`
}

// RenderProgressRing builds the render model, clamping progress to [0, 1].
func RenderProgressRing(s ProgressRingState) ProgressRingModel {
	if s.Progress == nil {
		return ProgressRingModel{Indeterminate: true}
	}
	p := min(max(*s.Progress, 0), 1)
	return ProgressRingModel{Progress: &p}
}
