package maybe

import (
	"context"

	"github.com/ib-77/twotrack/pkg/track"
)

func Just[T any](input T) track.Option[T] {
	return track.Some(input)
}

func Nothing[T any]() track.Option[T] {
	return track.None[T]()
}

// FromPresence adopts any Presence implementation into an Option.
func FromPresence[T any](p track.Presence[T]) track.Option[T] {
	if track.IsNil(p) {
		return track.None[T]()
	}
	return track.OfOk(p.Get())
}

func Map[In any, Out any](ctx context.Context,
	input track.Option[In],
	onSome func(ctx context.Context, r In) Out) track.Option[Out] {

	if v, ok := input.Get(); ok {
		return track.Some(onSome(ctx, v))
	}
	return track.None[Out]()
}

func Switch[In any, Out any](ctx context.Context,
	input track.Option[In],
	onSome func(ctx context.Context, r In) track.Option[Out]) track.Option[Out] {

	if v, ok := input.Get(); ok {
		return onSome(ctx, v)
	}
	return track.None[Out]()
}

func Filter[T any](ctx context.Context,
	input track.Option[T],
	keep func(ctx context.Context, r T) bool) track.Option[T] {

	if v, ok := input.Get(); ok && keep(ctx, v) {
		return input
	}
	return track.None[T]()
}

func Tee[T any](ctx context.Context,
	input track.Option[T],
	onSome func(ctx context.Context, r T)) track.Option[T] {

	if v, ok := input.Get(); ok {
		onSome(ctx, v)
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input track.Option[T],
	onSome func(ctx context.Context, r T),
	onNone func(ctx context.Context)) track.Option[T] {

	if v, ok := input.Get(); ok {
		onSome(ctx, v)
	} else {
		onNone(ctx)
	}

	return input
}

func Finally[In, Out any](ctx context.Context, input track.Option[In],
	onSome func(ctx context.Context, r In) Out,
	onNone func(ctx context.Context) Out) Out {

	if v, ok := input.Get(); ok {
		return onSome(ctx, v)
	}
	return onNone(ctx)
}
