package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// FieldViolation describes one failed constraint on one payload field.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationErrors is the complete list of violations found in a payload.
// It implements the error interface so it can travel through the usual
// error-return path; handlers unwrap it with [errors.As] to surface the
// per-field messages.
type ValidationErrors []FieldViolation

// Error joins all violation messages into a single string.
func (v ValidationErrors) Error() string {
	return "validation error: " + strings.Join(v.Messages(), "; ")
}

// Messages returns the violation messages in payload-field order.
func (v ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(v))
	for _, violation := range v {
		messages = append(messages, violation.Message)
	}
	return messages
}
