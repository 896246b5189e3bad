package track

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
	isCancel  bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		isCancel:  false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	if err == nil {
		err = ErrNoCause
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
		isCancel:  false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Cancel[T any](err error) Result[T] {
	if err == nil {
		err = ErrCancelled
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Of adapts a conventional (value, error) pair. A nil error yields a
// success, a cancellation error yields a cancelled failure.
func Of[T any](v T, err error) Result[T] {
	if err == nil {
		return Success(v)
	}
	if IsCancellationError(err) {
		return Cancel[T](err)
	}
	return Fail[T](err)
}

// FailFrom carries a non-success result across a type change, keeping the
// original cause, cancel flag, id and creation time.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: from.isSuccess,
		isCancel:  from.isCancel,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

// Get unpacks the result into a conventional (value, error) pair.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure reports the error track, cancelled failures included.
func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isCancel && !r.isSuccess
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) GetOrElse(fallback T) T {
	if r.isSuccess {
		return r.value
	}
	return fallback
}

func (r Result[T]) OrElse(alt Result[T]) Result[T] {
	if r.isSuccess {
		return r
	}
	return alt
}

// OnSuccess runs fn when the result is on the success track and returns
// the receiver unchanged.
func (r Result[T]) OnSuccess(fn func(v T)) Result[T] {
	if r.isSuccess && fn != nil {
		fn(r.value)
	}
	return r
}

// OnError runs fn for a plain failure. Cancelled failures go to OnCancel.
func (r Result[T]) OnError(fn func(err error)) Result[T] {
	if !r.isSuccess && !r.isCancel && fn != nil {
		fn(r.err)
	}
	return r
}

func (r Result[T]) OnCancel(fn func(err error)) Result[T] {
	if r.isCancel && fn != nil {
		fn(r.err)
	}
	return r
}

// Expect returns the success value or panics with an ExpectError carrying
// msg and the failure cause.
func (r Result[T]) Expect(msg string) T {
	if r.isSuccess {
		return r.value
	}
	panic(&ExpectError{Message: msg, Cause: r.err})
}

// ExpectWith returns the success value or panics with the error built by
// the caller from the failure cause.
func (r Result[T]) ExpectWith(build func(err error) error) T {
	if r.isSuccess {
		return r.value
	}
	panic(build(r.err))
}

// ToOption keeps the success value and drops the failure cause.
func (r Result[T]) ToOption() Option[T] {
	if r.isSuccess {
		return Some(r.value)
	}
	return None[T]()
}

func (r Result[T]) String() string {
	switch {
	case r.isSuccess:
		return fmt.Sprintf("Success(%v)", r.value)
	case r.isCancel:
		return fmt.Sprintf("Cancel(%v)", r.err)
	case r.IsEmpty():
		return "Empty"
	default:
		return fmt.Sprintf("Fail(%v)", r.err)
	}
}
