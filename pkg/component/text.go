package component

// ValidationStatus is the validation display state of a text field.
type ValidationStatus int

const (
	ValidationNone ValidationStatus = iota
	ValidationValid
	ValidationInvalid
)

// String returns "none", "valid" or "invalid".
func (v ValidationStatus) String() string {
	switch v {
	case ValidationValid:
		return "valid"
	case ValidationInvalid:
		return "invalid"
	}
	return "none"
}

// FieldValidation is a text field's validation display. Message is only
// meaningful when Status is ValidationInvalid and may be empty.
type FieldValidation struct {
	Status  ValidationStatus `json:"status"`
	Message string           `json:"message,omitempty"`
}

// Invalid returns an invalid validation with an optional message.
func Invalid(msg string) FieldValidation {
	return FieldValidation{Status: ValidationInvalid, Message: msg}
}

// Valid returns a valid validation.
func Valid() FieldValidation { return FieldValidation{Status: ValidationValid} }

// TextFieldState is the state of a single-line text input.
type TextFieldState struct {
	Enabled    bool            `json:"enabled"`
	Focused    bool            `json:"focused"`
	Validation FieldValidation `json:"validation"`
}

// NewTextFieldState returns an enabled, unfocused field with no validation.
func NewTextFieldState() TextFieldState { return TextFieldState{Enabled: true} }

// TextFieldEvent is an event accepted by [ReduceTextField].
type TextFieldEvent interface{ textFieldEvent() }

type (
	// TextFieldSetEnabled enables or disables the field.
	TextFieldSetEnabled bool
	// TextFieldSetFocused focuses or blurs the field.
	TextFieldSetFocused bool
	// TextFieldSetValidation replaces the validation display.
	TextFieldSetValidation FieldValidation
)

func (TextFieldSetEnabled) textFieldEvent()    {}
func (TextFieldSetFocused) textFieldEvent()    {}
func (TextFieldSetValidation) textFieldEvent() {}

// ReduceTextField applies a text field event. Disabling blurs the field and
// focus changes are ignored while disabled.
func ReduceTextField(s TextFieldState, e TextFieldEvent) TextFieldState {
	switch e := e.(type) {
	case TextFieldSetEnabled:
		s.Enabled = bool(e)
		if !s.Enabled {
			s.Focused = false
		}
	case TextFieldSetFocused:
		if s.Enabled {
			s.Focused = bool(e)
		}
	case TextFieldSetValidation:
		s.Validation = FieldValidation(e)
	}
	return s
}

// TextAreaState is the state of a multi-line text input.
type TextAreaState struct {
	Enabled bool `json:"enabled"`
	Focused bool `json:"focused"`
}

// NewTextAreaState returns an enabled, unfocused text area.
func NewTextAreaState() TextAreaState { return TextAreaState{Enabled: true} }

// TextAreaEvent is an event accepted by [ReduceTextArea].
type TextAreaEvent interface{ textAreaEvent() }

type (
	TextAreaSetEnabled bool
	TextAreaSetFocused bool
)

func (TextAreaSetEnabled) textAreaEvent() {}
func (TextAreaSetFocused) textAreaEvent() {}

// ReduceTextArea applies a text area event with the same focus rules as
// [ReduceTextField].
func ReduceTextArea(s TextAreaState, e TextAreaEvent) TextAreaState {
	switch e := e.(type) {
	case TextAreaSetEnabled:
		s.Enabled = bool(e)
		if !s.Enabled {
			s.Focused = false
		}
	case TextAreaSetFocused:
		if s.Enabled {
			s.Focused = bool(e)
		}
	}
	return s
}
