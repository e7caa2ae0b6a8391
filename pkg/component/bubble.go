package component

import "fmt"

// ChangeType marks how a visualized value changed in the last step.
// The zero value means no change marker.
type ChangeType string

const (
	ChangeNone      ChangeType = ""
	ChangeAdded     ChangeType = "added"
	ChangeRemoved   ChangeType = "removed"
	ChangeModified  ChangeType = "modified"
	ChangeUnchanged ChangeType = "unchanged"
)

// ParseChangeType parses a change type name. The empty string and "none"
// map to ChangeNone.
func ParseChangeType(s string) (ChangeType, error) {
	switch ChangeType(s) {
	case ChangeNone, "none":
		return ChangeNone, nil
	case ChangeAdded, ChangeRemoved, ChangeModified, ChangeUnchanged:
		return ChangeType(s), nil
	}
	return ChangeNone, fmt.Errorf("unknown change type %q", s)
}

// BubbleState is the state of a value bubble in a visualization.
type BubbleState struct {
	Highlighted bool       `json:"highlighted"`
	ChangeType  ChangeType `json:"change_type,omitempty"`
}

// BubbleEvent is an event accepted by [ReduceBubble].
type BubbleEvent interface{ bubbleEvent() }

type (
	BubbleSetHighlighted bool
	BubbleSetChangeType  ChangeType
)

func (BubbleSetHighlighted) bubbleEvent() {}
func (BubbleSetChangeType) bubbleEvent()  {}

// ReduceBubble applies a bubble event.
func ReduceBubble(s BubbleState, e BubbleEvent) BubbleState {
	switch e := e.(type) {
	case BubbleSetHighlighted:
		s.Highlighted = bool(e)
	case BubbleSetChangeType:
		s.ChangeType = ChangeType(e)
	}
	return s
}
