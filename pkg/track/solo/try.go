package solo

import (
	"context"
	"errors"

	"github.com/ib-77/twotrack/pkg/track"
)

// Try calls a conventional (Out, error) function on the success track.
// Cancellation errors land on the cancelled flavour of the error track.
func Try[In any, Out any](ctx context.Context, input track.Result[In],
	onTry func(ctx context.Context, r In) (Out, error)) track.Result[Out] {

	if input.IsSuccess() {

		out, err := onTry(ctx, input.Value())
		if err != nil {
			if track.IsCancellationError(err) {
				return track.Cancel[Out](err)
			}
			return track.Fail[Out](err)
		}

		return track.Success(out)
	}

	return track.FailFrom[In, Out](input)
}

// Catch runs produce and converts a panic into a failure. The recovered
// payload is normalized into an error and passed through handle before it
// lands on the error track. A nil handle keeps the recovered error as-is.
func Catch[T any](ctx context.Context,
	produce func(ctx context.Context) T,
	handle func(ctx context.Context, err error) error) (res track.Result[T]) {

	defer func() {
		if r := recover(); r != nil {
			err := track.Recovered(r)
			if handle != nil {
				err = handle(ctx, err)
			}
			res = track.Fail[T](err)
		}
	}()

	return track.Success(produce(ctx))
}

// CatchOnly behaves like Catch but intercepts only panics whose normalized
// error matches E. Anything else panics again with the original payload.
func CatchOnly[T any, E error](ctx context.Context,
	produce func(ctx context.Context) T,
	handle func(ctx context.Context, err E) error) (res track.Result[T]) {

	defer func() {
		if r := recover(); r != nil {
			var match E
			err := track.Recovered(r)
			if !errors.As(err, &match) {
				panic(r)
			}
			if handle != nil {
				res = track.Fail[T](handle(ctx, match))
			} else {
				res = track.Fail[T](err)
			}
		}
	}()

	return track.Success(produce(ctx))
}

// MapTry is Map with a safety net: a panic out of onSuccess becomes a
// failure instead of unwinding the pipeline. The error track passes
// through without invoking onSuccess or the net.
func MapTry[In any, Out any](ctx context.Context, input track.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	handle func(ctx context.Context, err error) error) track.Result[Out] {

	if !input.IsSuccess() {
		return track.FailFrom[In, Out](input)
	}

	return Catch(ctx, func(ctx context.Context) Out {
		return onSuccess(ctx, input.Value())
	}, handle)
}

// MapTryOnly narrows the MapTry net to panics matching E.
func MapTryOnly[In any, Out any, E error](ctx context.Context, input track.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	handle func(ctx context.Context, err E) error) track.Result[Out] {

	if !input.IsSuccess() {
		return track.FailFrom[In, Out](input)
	}

	return CatchOnly[Out, E](ctx, func(ctx context.Context) Out {
		return onSuccess(ctx, input.Value())
	}, handle)
}

// BindTry is Switch with the same safety net as MapTry.
func BindTry[In any, Out any](ctx context.Context, input track.Result[In],
	onSuccess func(ctx context.Context, r In) track.Result[Out],
	handle func(ctx context.Context, err error) error) track.Result[Out] {

	if !input.IsSuccess() {
		return track.FailFrom[In, Out](input)
	}

	caught := Catch(ctx, func(ctx context.Context) track.Result[Out] {
		return onSuccess(ctx, input.Value())
	}, handle)
	if caught.IsSuccess() {
		return caught.Value()
	}
	return track.FailFrom[track.Result[Out], Out](caught)
}

// BindTryOnly narrows the BindTry net to panics matching E.
func BindTryOnly[In any, Out any, E error](ctx context.Context, input track.Result[In],
	onSuccess func(ctx context.Context, r In) track.Result[Out],
	handle func(ctx context.Context, err E) error) track.Result[Out] {

	if !input.IsSuccess() {
		return track.FailFrom[In, Out](input)
	}

	caught := CatchOnly[track.Result[Out], E](ctx, func(ctx context.Context) track.Result[Out] {
		return onSuccess(ctx, input.Value())
	}, handle)
	if caught.IsSuccess() {
		return caught.Value()
	}
	return track.FailFrom[track.Result[Out], Out](caught)
}

// TeeTry runs a side effect on the success track under a net. When the
// side effect panics, handle decides the replacement result; without a
// handle the panic becomes a plain failure.
func TeeTry[T any](ctx context.Context, input track.Result[T],
	onSuccess func(ctx context.Context, r T),
	handle func(ctx context.Context, err error) track.Result[T]) (res track.Result[T]) {

	if !input.IsSuccess() {
		return input
	}

	defer func() {
		if r := recover(); r != nil {
			err := track.Recovered(r)
			if handle != nil {
				res = handle(ctx, err)
			} else {
				res = track.Fail[T](err)
			}
		}
	}()

	onSuccess(ctx, input.Value())
	return input
}
