package track

import "fmt"

type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// OfPtr collapses a nil pointer to None and dereferences otherwise.
func OfPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// OfOk adapts a comma-ok pair such as a map lookup or type assertion.
func OfOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Option[T]) GetOrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

func (o Option[T]) OrElse(alt Option[T]) Option[T] {
	if o.present {
		return o
	}
	return alt
}

// Ptr returns a pointer to a copy of the value, nil when absent.
func (o Option[T]) Ptr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// OnSome runs fn when a value is present and returns the receiver
// unchanged.
func (o Option[T]) OnSome(fn func(v T)) Option[T] {
	if o.present && fn != nil {
		fn(o.value)
	}
	return o
}

func (o Option[T]) OnNone(fn func()) Option[T] {
	if !o.present && fn != nil {
		fn()
	}
	return o
}

// Expect returns the value or panics with an ExpectError carrying msg.
func (o Option[T]) Expect(msg string) T {
	if o.present {
		return o.value
	}
	panic(&ExpectError{Message: msg})
}

// ExpectWith returns the value or panics with the caller-built error.
func (o Option[T]) ExpectWith(build func() error) T {
	if o.present {
		return o.value
	}
	panic(build())
}

// ToResult turns absence into a failure with the given cause.
func (o Option[T]) ToResult(err error) Result[T] {
	if o.present {
		return Success(o.value)
	}
	return Fail[T](err)
}

func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
