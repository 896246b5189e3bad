package track

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrCancelled marks results that were cancelled without a more
	// specific cause.
	ErrCancelled = errors.New("operation cancelled")

	// ErrNoCause replaces a nil error on the failure track so a failed
	// result can never report a nil cause.
	ErrNoCause = errors.New("failure without cause")
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, ErrCancelled)
}

// PanicError wraps a panic payload that was not itself an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Recovered normalizes a recover() payload into an error.
func Recovered(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &PanicError{Value: v}
}

// ExpectError is raised when a forced unwrap hits the wrong track.
type ExpectError struct {
	Message string
	Cause   error
}

func (e *ExpectError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *ExpectError) Unwrap() error {
	return e.Cause
}
