package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeFetch represents product page fetch errors
	ErrorTypeFetch ErrorType = "fetch"
	// ErrorTypeParse represents HTML parsing errors
	ErrorTypeParse ErrorType = "parse"
	// ErrorTypeNotify represents notification delivery errors
	ErrorTypeNotify ErrorType = "notify"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// CheckError represents an availability-check error
type CheckError struct {
	Type    ErrorType
	Target  string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *CheckError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Target, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Target, e.Message)
}

// Unwrap returns the underlying error
func (e *CheckError) Unwrap() error {
	return e.Err
}

// IsFatal returns true if the error should abort the run with a non-zero
// exit. Notification failures are logged and swallowed, never escalated.
func (e *CheckError) IsFatal() bool {
	switch e.Type {
	case ErrorTypeFetch, ErrorTypeParse, ErrorTypeConfiguration:
		return true
	default:
		return false
	}
}

// New creates a new CheckError
func New(errType ErrorType, target, message string, err error) *CheckError {
	return &CheckError{
		Type:    errType,
		Target:  target,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewFetch creates a new fetch error
func NewFetch(target, message string, err error) *CheckError {
	return New(ErrorTypeFetch, target, message, err)
}

// NewParse creates a new parse error
func NewParse(target, message string, err error) *CheckError {
	return New(ErrorTypeParse, target, message, err)
}

// NewNotify creates a new notification error
func NewNotify(target, message string, err error) *CheckError {
	return New(ErrorTypeNotify, target, message, err)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *CheckError {
	return New(ErrorTypeConfiguration, "", message, err)
}
