package solo

import (
	"context"
	"errors"

	"github.com/ib-77/twotrack/pkg/track"
)

func Succeed[T any](input T) track.Result[T] {
	return track.Success(input)
}

func Fail[T any](err error) track.Result[T] {
	return track.Fail[T](err)
}

func Cancel[T any](err error) track.Result[T] {
	return track.Cancel[T](err)
}

// FromOutcome adopts any Outcome implementation into a Result, keeping the
// cancel flag when the source carries one.
func FromOutcome[T any](o track.Outcome[T]) track.Result[T] {
	if track.IsNil(o) {
		return track.Fail[T](track.ErrNoCause)
	}
	if o.IsSuccess() {
		return track.Success(o.Value())
	}
	if wc, ok := o.(track.OutcomeWithCancel[T]); ok && wc.IsCancel() {
		return track.Cancel[T](o.Err())
	}
	return track.Fail[T](o.Err())
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) track.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input track.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) track.Result[T] {

	if input.IsSuccess() {

		if valid, errMsg := validate(ctx, input.Value()); valid {
			return track.Success(input.Value())
		} else {
			return track.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func ValidateAll[T any](
	ctx context.Context,
	input track.Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in track.Result[T]) track.Result[T]) track.Result[T] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current track.Result[T]) track.Result[T] {

			if current.IsFailure() {
				e := track.GetErrors(err)
				e = append(e, current.Err())
				err = errors.Join(e...)
			}

			if track.IsNil(err) {
				return current
			}

			return track.Fail[T](err)
		},
		inputsF...,
	)
}

func Switch[In any, Out any](ctx context.Context,
	input track.Result[In],
	onSuccess func(ctx context.Context, r In) track.Result[Out]) track.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return track.FailFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input track.Result[In],
	onSuccess func(ctx context.Context, r In) Out) track.Result[Out] {

	if input.IsSuccess() {
		return track.Success(onSuccess(ctx, input.Value()))
	}
	return track.FailFrom[In, Out](input)
}

// MapError transforms the failure cause and leaves the success track
// untouched. The cancel flag survives the transformation.
func MapError[T any](ctx context.Context,
	input track.Result[T],
	onError func(ctx context.Context, err error) error) track.Result[T] {

	if input.IsSuccess() {
		return input
	}
	if input.IsCancel() {
		return track.Cancel[T](onError(ctx, input.Err()))
	}
	return track.Fail[T](onError(ctx, input.Err()))
}

// Recover gives the error track a chance to rejoin the success track.
// Cancelled failures are offered to the handler as well.
func Recover[T any](ctx context.Context,
	input track.Result[T],
	onError func(ctx context.Context, err error) track.Result[T]) track.Result[T] {

	if input.IsSuccess() {
		return input
	}
	return onError(ctx, input.Err())
}

func Tee[T any](ctx context.Context,
	input track.Result[T],
	onSuccess func(ctx context.Context, r track.Result[T])) track.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input track.Result[T],
	condition func(ctx context.Context, r track.Result[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r track.Result[T])) track.Result[T] {

	if input.IsSuccess() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input track.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) track.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		if input.IsCancel() {
			onCancel(ctx, input.Err())
		} else {
			onError(ctx, input.Err())
		}
	}

	return input
}

// DoubleMap maps the success value and observes the failure cause. The
// failure itself stays on the error track, Finally is the exit point.
func DoubleMap[In any, Out any](ctx context.Context, input track.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) track.Result[Out] {

	if input.IsSuccess() {
		return track.Success(onSuccess(ctx, input.Value()))
	}

	if input.IsCancel() {
		onCancel(ctx, input.Err())
	} else {
		onError(ctx, input.Err())
	}

	return track.FailFrom[In, Out](input)
}

func FailOnError[T any](ctx context.Context, input track.Result[T],
	maybeErr func(ctx context.Context, in T) error) track.Result[T] {
	if input.IsSuccess() {
		err := maybeErr(ctx, input.Value())
		if err != nil {
			return track.Fail[T](err)
		}
		return input
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input track.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	} else if input.IsCancel() {
		return onCancel(ctx, input.Err())
	} else {
		return onError(ctx, input.Err())
	}
}

func Join[T any](ctx context.Context,
	input track.Result[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current track.Result[T]) track.Result[T],
	inputsF ...func(ctx context.Context, in track.Result[T]) track.Result[T]) track.Result[T] {

	if len(inputsF) == 0 || concat == nil || !track.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !track.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !track.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
