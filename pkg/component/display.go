package component

// ToastState is the state of a transient notification.
type ToastState struct {
	Visible bool `json:"visible"`
	Enabled bool `json:"enabled"`
}

// NewToastState returns a hidden, enabled toast.
func NewToastState() ToastState { return ToastState{Enabled: true} }

// ToastEvent is an event accepted by [ReduceToast].
type ToastEvent interface{ toastEvent() }

type (
	ToastSetVisible bool
	ToastSetEnabled bool
)

func (ToastSetVisible) toastEvent() {}
func (ToastSetEnabled) toastEvent() {}

// ReduceToast applies a toast event.
func ReduceToast(s ToastState, e ToastEvent) ToastState {
	switch e := e.(type) {
	case ToastSetVisible:
		s.Visible = bool(e)
	case ToastSetEnabled:
		s.Enabled = bool(e)
	}
	return s
}

// AlertState is the state of a modal alert.
type AlertState struct {
	Presented  bool `json:"presented"`
	Processing bool `json:"processing"`
	Enabled    bool `json:"enabled"`
}

// NewAlertState returns a dismissed, enabled alert.
func NewAlertState() AlertState { return AlertState{Enabled: true} }

// AlertEvent is an event accepted by [ReduceAlert].
type AlertEvent interface{ alertEvent() }

type (
	AlertSetPresented  bool
	AlertSetProcessing bool
	AlertSetEnabled    bool
)

func (AlertSetPresented) alertEvent()  {}
func (AlertSetProcessing) alertEvent() {}
func (AlertSetEnabled) alertEvent()    {}

// ReduceAlert applies an alert event.
func ReduceAlert(s AlertState, e AlertEvent) AlertState {
	switch e := e.(type) {
	case AlertSetPresented:
		s.Presented = bool(e)
	case AlertSetProcessing:
		s.Processing = bool(e)
	case AlertSetEnabled:
		s.Enabled = bool(e)
	}
	return s
}

// EmptyStateState is the state of an empty-content placeholder.
type EmptyStateState struct {
	Loading       bool `json:"loading"`
	ActionEnabled bool `json:"action_enabled"`
}

// NewEmptyStateState returns an idle placeholder with its action enabled.
func NewEmptyStateState() EmptyStateState { return EmptyStateState{ActionEnabled: true} }

// EmptyStateEvent is an event accepted by [ReduceEmptyState].
type EmptyStateEvent interface{ emptyStateEvent() }

type (
	EmptyStateSetLoading       bool
	EmptyStateSetActionEnabled bool
)

func (EmptyStateSetLoading) emptyStateEvent()       {}
func (EmptyStateSetActionEnabled) emptyStateEvent() {}

// ReduceEmptyState applies an empty state event.
func ReduceEmptyState(s EmptyStateState, e EmptyStateEvent) EmptyStateState {
	switch e := e.(type) {
	case EmptyStateSetLoading:
		s.Loading = bool(e)
	case EmptyStateSetActionEnabled:
		s.ActionEnabled = bool(e)
	}
	return s
}

// SectionHeaderState is the state of a section header.
type SectionHeaderState struct {
	Enabled bool `json:"enabled"`
}

// NewSectionHeaderState returns an enabled header.
func NewSectionHeaderState() SectionHeaderState { return SectionHeaderState{Enabled: true} }

// SectionHeaderEvent is an event accepted by [ReduceSectionHeader].
type SectionHeaderEvent interface{ sectionHeaderEvent() }

type SectionHeaderSetEnabled bool

func (SectionHeaderSetEnabled) sectionHeaderEvent() {}

// ReduceSectionHeader applies a section header event.
func ReduceSectionHeader(s SectionHeaderState, e SectionHeaderEvent) SectionHeaderState {
	if e, ok := e.(SectionHeaderSetEnabled); ok {
		s.Enabled = bool(e)
	}
	return s
}

// HeaderState is the state of a screen header.
type HeaderState struct {
	Loading bool `json:"loading"`
}

// HeaderEvent is an event accepted by [ReduceHeader].
type HeaderEvent interface{ headerEvent() }

type HeaderSetLoading bool

func (HeaderSetLoading) headerEvent() {}

// ReduceHeader applies a header event.
func ReduceHeader(s HeaderState, e HeaderEvent) HeaderState {
	if e, ok := e.(HeaderSetLoading); ok {
		s.Loading = bool(e)
	}
	return s
}

// ListRowState is the state of a row in a list.
type ListRowState struct {
	Enabled     bool `json:"enabled"`
	Selected    bool `json:"selected"`
	Highlighted bool `json:"highlighted"`
}

// NewListRowState returns an enabled, unselected row.
func NewListRowState() ListRowState { return ListRowState{Enabled: true} }

// ListRowEvent is an event accepted by [ReduceListRow].
type ListRowEvent interface{ listRowEvent() }

type (
	ListRowSetEnabled     bool
	ListRowSetSelected    bool
	ListRowSetHighlighted bool
)

func (ListRowSetEnabled) listRowEvent()     {}
func (ListRowSetSelected) listRowEvent()    {}
func (ListRowSetHighlighted) listRowEvent() {}

// ReduceListRow applies a list row event.
func ReduceListRow(s ListRowState, e ListRowEvent) ListRowState {
	switch e := e.(type) {
	case ListRowSetEnabled:
		s.Enabled = bool(e)
	case ListRowSetSelected:
		s.Selected = bool(e)
	case ListRowSetHighlighted:
		s.Highlighted = bool(e)
	}
	return s
}

// MetricCardState is the state of a metric summary card.
type MetricCardState struct {
	Loading bool `json:"loading"`
	Enabled bool `json:"enabled"`
}

// NewMetricCardState returns an idle, enabled card.
func NewMetricCardState() MetricCardState { return MetricCardState{Enabled: true} }

// MetricCardEvent is an event accepted by [ReduceMetricCard].
type MetricCardEvent interface{ metricCardEvent() }

type (
	MetricCardSetLoading bool
	MetricCardSetEnabled bool
)

func (MetricCardSetLoading) metricCardEvent() {}
func (MetricCardSetEnabled) metricCardEvent() {}

// ReduceMetricCard applies a metric card event.
func ReduceMetricCard(s MetricCardState, e MetricCardEvent) MetricCardState {
	switch e := e.(type) {
	case MetricCardSetLoading:
		s.Loading = bool(e)
	case MetricCardSetEnabled:
		s.Enabled = bool(e)
	}
	return s
}
