package async

import (
	"context"

	"github.com/ib-77/twotrack/pkg/track"
	"github.com/ib-77/twotrack/pkg/track/solo"
)

// lift applies a solo primitive to the future's resolution. A resolved
// input is transformed in place without suspending, otherwise the
// primitive runs after a single await.
func lift[In, Out any](ctx context.Context, f *Future[In],
	apply func(ctx context.Context, in track.Result[In]) track.Result[Out]) *Future[Out] {

	if in, ok := f.poll(); ok {
		return Resolved(apply(ctx, in))
	}
	return Run(ctx, func(ctx context.Context) track.Result[Out] {
		return apply(ctx, f.AwaitContext(ctx))
	})
}

func Map[In any, Out any](ctx context.Context, f *Future[In],
	onSuccess func(ctx context.Context, r In) Out) *Future[Out] {

	return lift(ctx, f, func(ctx context.Context, in track.Result[In]) track.Result[Out] {
		return solo.Map[In, Out](ctx, in, onSuccess)
	})
}

func Switch[In any, Out any](ctx context.Context, f *Future[In],
	onSuccess func(ctx context.Context, r In) track.Result[Out]) *Future[Out] {

	return lift(ctx, f, func(ctx context.Context, in track.Result[In]) track.Result[Out] {
		return solo.Switch[In, Out](ctx, in, onSuccess)
	})
}

func MapError[T any](ctx context.Context, f *Future[T],
	onError func(ctx context.Context, err error) error) *Future[T] {

	return lift(ctx, f, func(ctx context.Context, in track.Result[T]) track.Result[T] {
		return solo.MapError[T](ctx, in, onError)
	})
}

func Recover[T any](ctx context.Context, f *Future[T],
	onError func(ctx context.Context, err error) track.Result[T]) *Future[T] {

	return lift(ctx, f, func(ctx context.Context, in track.Result[T]) track.Result[T] {
		return solo.Recover[T](ctx, in, onError)
	})
}

func Validate[T any](ctx context.Context, f *Future[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) *Future[T] {

	return lift(ctx, f, func(ctx context.Context, in track.Result[T]) track.Result[T] {
		return solo.AndValidate[T](ctx, in, validate)
	})
}

func Tee[T any](ctx context.Context, f *Future[T],
	onSuccess func(ctx context.Context, r track.Result[T])) *Future[T] {

	return lift(ctx, f, func(ctx context.Context, in track.Result[T]) track.Result[T] {
		return solo.Tee[T](ctx, in, onSuccess)
	})
}

func DoubleTee[T any](ctx context.Context, f *Future[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) *Future[T] {

	return lift(ctx, f, func(ctx context.Context, in track.Result[T]) track.Result[T] {
		return solo.DoubleTee[T](ctx, in, onSuccess, onError, onCancel)
	})
}

func Try[In any, Out any](ctx context.Context, f *Future[In],
	onTry func(ctx context.Context, r In) (Out, error)) *Future[Out] {

	return lift(ctx, f, func(ctx context.Context, in track.Result[In]) track.Result[Out] {
		return solo.Try[In, Out](ctx, in, onTry)
	})
}

func MapTry[In any, Out any](ctx context.Context, f *Future[In],
	onSuccess func(ctx context.Context, r In) Out,
	handle func(ctx context.Context, err error) error) *Future[Out] {

	return lift(ctx, f, func(ctx context.Context, in track.Result[In]) track.Result[Out] {
		return solo.MapTry[In, Out](ctx, in, onSuccess, handle)
	})
}

func BindTry[In any, Out any](ctx context.Context, f *Future[In],
	onSuccess func(ctx context.Context, r In) track.Result[Out],
	handle func(ctx context.Context, err error) error) *Future[Out] {

	return lift(ctx, f, func(ctx context.Context, in track.Result[In]) track.Result[Out] {
		return solo.BindTry[In, Out](ctx, in, onSuccess, handle)
	})
}

// Then sequences a continuation that itself returns a Future. The
// continuation is started and awaited only on the success track, the
// error track resolves immediately.
func Then[In any, Out any](ctx context.Context, f *Future[In],
	onSuccess func(ctx context.Context, r In) *Future[Out]) *Future[Out] {

	if in, ok := f.poll(); ok {
		if in.IsSuccess() {
			return onSuccess(ctx, in.Value())
		}
		return Resolved(track.FailFrom[In, Out](in))
	}

	return Run(ctx, func(ctx context.Context) track.Result[Out] {
		in := f.AwaitContext(ctx)
		if in.IsSuccess() {
			return onSuccess(ctx, in.Value()).AwaitContext(ctx)
		}
		return track.FailFrom[In, Out](in)
	})
}

// Catch runs produce on its own goroutine and converts a panic into a
// failed resolution, as solo.Catch does synchronously.
func Catch[T any](ctx context.Context,
	produce func(ctx context.Context) T,
	handle func(ctx context.Context, err error) error) *Future[T] {

	return Run(ctx, func(ctx context.Context) track.Result[T] {
		return solo.Catch[T](ctx, produce, handle)
	})
}

// FinallyHandlers folds the three tracks of a resolution into one value.
type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, err error) Out
	OnCancel  func(ctx context.Context, err error) Out
}

// Finally awaits the future and folds it into a plain value. This is the
// blocking exit point of an async pipeline.
func Finally[In, Out any](ctx context.Context, f *Future[In],
	handlers FinallyHandlers[In, Out]) Out {

	in := f.AwaitContext(ctx)
	return solo.Finally[In, Out](ctx, in, handlers.OnSuccess, handlers.OnError, handlers.OnCancel)
}
