package models

// ErrorKind classifies errors surfaced to the user.
type ErrorKind string

const (
	// KindValidation marks input that failed validation.
	KindValidation ErrorKind = "validation"
	// KindNotImplemented marks operations that need a backend proxy.
	KindNotImplemented ErrorKind = "not_implemented"
	// KindStorageCorruption marks persisted state that could not be decoded.
	KindStorageCorruption ErrorKind = "storage_corruption"
)

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrValidation        = &Error{Kind: KindValidation}
	ErrNotImplemented    = &Error{Kind: KindNotImplemented}
	ErrStorageCorruption = &Error{Kind: KindStorageCorruption}
)

// Error is a categorized, human readable error.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// NewValidationError returns a validation error with the given message.
func NewValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// NewNotImplementedError returns the error for operations that require a backend proxy.
func NewNotImplementedError() *Error {
	return &Error{Kind: KindNotImplemented, Message: "method not implemented - requires backend proxy"}
}

// NewStorageCorruptionError wraps a decoding failure of persisted state.
func NewStorageCorruptionError(key string, err error) *Error {
	return &Error{Kind: KindStorageCorruption, Message: "stored value for " + key + " is unreadable", Err: err}
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches sentinels by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == "" && t.Err == nil
}
