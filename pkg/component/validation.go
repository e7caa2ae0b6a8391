package component

// ValidationResult is the outcome of validating a value. The zero value is
// valid.
type ValidationResult struct {
	Invalid bool   `json:"invalid"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// IsValid reports whether r is a passing result.
func (r ValidationResult) IsValid() bool { return !r.Invalid }

// InvalidResult returns a failing result with a message and machine code.
func InvalidResult(message, code string) ValidationResult {
	return ValidationResult{Invalid: true, Message: message, Code: code}
}

// ValidationState tracks the latest validation result and whether the user
// has edited the value.
type ValidationState struct {
	Result ValidationResult `json:"result"`
	Dirty  bool             `json:"dirty"`
}

// ValidationEvent is an event accepted by [ReduceValidation].
type ValidationEvent interface{ validationEvent() }

type (
	// ValidationSetResult records a result and marks the state dirty.
	ValidationSetResult ValidationResult
	// ValidationSetDirty sets the dirty flag.
	ValidationSetDirty bool
	// ValidationReset returns to a clean, valid state.
	ValidationReset struct{}
)

func (ValidationSetResult) validationEvent() {}
func (ValidationSetDirty) validationEvent()  {}
func (ValidationReset) validationEvent()     {}

// ReduceValidation applies a validation event.
func ReduceValidation(s ValidationState, e ValidationEvent) ValidationState {
	switch e := e.(type) {
	case ValidationSetResult:
		s.Result = ValidationResult(e)
		s.Dirty = true
	case ValidationSetDirty:
		s.Dirty = bool(e)
	case ValidationReset:
		s = ValidationState{}
	}
	return s
}

// IsValid reports whether the latest result passed.
func (s ValidationState) IsValid() bool { return s.Result.IsValid() }

// Message returns the failure message, or "" when valid.
func (s ValidationState) Message() string {
	if s.Result.Invalid {
		return s.Result.Message
	}
	return ""
}
