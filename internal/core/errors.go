package core

import "errors"

// Error codes for domain errors.
const (
	ErrCodeBadRequest     = "bad_request"
	ErrCodeUnknownSpeaker = "unknown_speaker"
	ErrCodeStorage        = "storage_error"
)

var (
	ErrEmptyMessage   = errors.New("message is empty")
	ErrUnknownSpeaker = errors.New("unknown speaker id")
)

// CoreError wraps a code and human-readable message.
type CoreError struct {
	Code    string
	Message string
	Err     error
}

func (e *CoreError) Error() string {
	return e.Message
}

func (e *CoreError) Unwrap() error {
	return e.Err
}

func coreError(code, msg string, err error) *CoreError {
	return &CoreError{Code: code, Message: msg, Err: err}
}
