package maybe

import (
	"context"
	"errors"

	"github.com/ib-77/twotrack/pkg/track"
)

// Try calls a conventional (Out, error) function on a present value. The
// error collapses to None since absence carries no cause; reach for the
// solo package when the cause matters.
func Try[In any, Out any](ctx context.Context, input track.Option[In],
	onTry func(ctx context.Context, r In) (Out, error)) track.Option[Out] {

	if v, ok := input.Get(); ok {
		out, err := onTry(ctx, v)
		if err != nil {
			return track.None[Out]()
		}
		return track.Some(out)
	}
	return track.None[Out]()
}

// Catch runs produce and converts a panic into absence. The handler only
// observes the normalized error, None has no slot for it.
func Catch[T any](ctx context.Context,
	produce func(ctx context.Context) T,
	handle func(ctx context.Context, err error)) (res track.Option[T]) {

	defer func() {
		if r := recover(); r != nil {
			if handle != nil {
				handle(ctx, track.Recovered(r))
			}
			res = track.None[T]()
		}
	}()

	return track.Some(produce(ctx))
}

// CatchOnly behaves like Catch but intercepts only panics whose normalized
// error matches E. Anything else panics again with the original payload.
func CatchOnly[T any, E error](ctx context.Context,
	produce func(ctx context.Context) T,
	handle func(ctx context.Context, err E)) (res track.Option[T]) {

	defer func() {
		if r := recover(); r != nil {
			var match E
			if !errors.As(track.Recovered(r), &match) {
				panic(r)
			}
			if handle != nil {
				handle(ctx, match)
			}
			res = track.None[T]()
		}
	}()

	return track.Some(produce(ctx))
}

// MapTry is Map with a safety net: a panic out of onSome becomes None.
// Absence passes through without invoking onSome or the net.
func MapTry[In any, Out any](ctx context.Context, input track.Option[In],
	onSome func(ctx context.Context, r In) Out,
	handle func(ctx context.Context, err error)) track.Option[Out] {

	if v, ok := input.Get(); ok {
		return Catch(ctx, func(ctx context.Context) Out {
			return onSome(ctx, v)
		}, handle)
	}
	return track.None[Out]()
}

// BindTry is Switch with the same safety net as MapTry.
func BindTry[In any, Out any](ctx context.Context, input track.Option[In],
	onSome func(ctx context.Context, r In) track.Option[Out],
	handle func(ctx context.Context, err error)) track.Option[Out] {

	v, ok := input.Get()
	if !ok {
		return track.None[Out]()
	}

	caught := Catch(ctx, func(ctx context.Context) track.Option[Out] {
		return onSome(ctx, v)
	}, handle)
	if inner, ok := caught.Get(); ok {
		return inner
	}
	return track.None[Out]()
}

// OnSomeTry runs a side effect on a present value under a net. When the
// side effect panics, handle decides the replacement option; without a
// handle the option collapses to None.
func OnSomeTry[T any](ctx context.Context, input track.Option[T],
	onSome func(ctx context.Context, r T),
	handle func(ctx context.Context, err error) track.Option[T]) (res track.Option[T]) {

	if v, ok := input.Get(); ok {
		defer func() {
			if r := recover(); r != nil {
				err := track.Recovered(r)
				if handle != nil {
					res = handle(ctx, err)
				} else {
					res = track.None[T]()
				}
			}
		}()

		onSome(ctx, v)
	}
	return input
}
