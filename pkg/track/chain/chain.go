package chain

import (
	"context"

	"github.com/ib-77/twotrack/pkg/track"
	"github.com/ib-77/twotrack/pkg/track/solo"
)

// Chain wraps a track.Result with its context to enable fluent chaining.
// Begin with Start or FromValue.
type Chain[T any] struct {
	ctx context.Context
	res track.Result[T]
}

// Start creates a new chain from a track.Result
func Start[T any](ctx context.Context, r track.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, track.Success(v))
}

// Result returns the underlying track.Result
func (c Chain[T]) Result() track.Result[T] {
	return c.res
}

// Then composes a function that already returns track.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) track.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Switch[T, T](c.ctx, c.res, onSuccess)}
}

// ThenTry composes a function that returns (T, error)
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Try[T, T](c.ctx, c.res, try)}
}

// Map transforms the successful value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Map[T, T](c.ctx, c.res, onSuccess)}
}

// MapError transforms the failure cause
func (c Chain[T]) MapError(onError func(ctx context.Context, err error) error) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.MapError[T](c.ctx, c.res, onError)}
}

// Recover lets a handler move the chain back to the success track
func (c Chain[T]) Recover(onError func(ctx context.Context, err error) track.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Recover[T](c.ctx, c.res, onError)}
}

// Validate keeps the value when valid and fails the chain otherwise
func (c Chain[T]) Validate(validate func(ctx context.Context, t T) (valid bool, errMsg string)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.AndValidate[T](c.ctx, c.res, validate)}
}

// Ensure performs a side effect on success without changing the result
func (c Chain[T]) Ensure(onSuccess func(ctx context.Context, t T)) Chain[T] {
	if onSuccess == nil {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: solo.Tee[T](c.ctx, c.res,
		func(ctx context.Context, r track.Result[T]) {
			onSuccess(ctx, r.Value())
		})}
}

// EnsureErr performs a side effect on the error track without changing the
// result. Cancelled failures are included.
func (c Chain[T]) EnsureErr(onError func(ctx context.Context, err error)) Chain[T] {
	if c.res.IsFailure() && onError != nil {
		onError(c.ctx, c.res.Err())
	}
	return c
}

// Or keeps the first chain on the success track. With no success around,
// the first cancelled candidate wins over a plain failure.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	return c.or(alternative)
}

func (c Chain[T]) or(chains ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	hasCancel := false
	hasFail := false
	var cancelRes track.Result[T]
	var failRes track.Result[T]
	var cancelCtx, failCtx context.Context

	for _, ch := range candidates {
		res := ch.res

		if res.IsSuccess() {
			return Chain[T]{ctx: ch.ctx, res: res}
		}

		if res.IsCancel() {
			if !hasCancel {
				hasCancel = true
				cancelRes = res
				cancelCtx = ch.ctx
			}
		} else if res.IsFailure() {
			if !hasFail {
				hasFail = true
				failRes = res
				failCtx = ch.ctx
			}
		}
	}

	if hasCancel {
		return Chain[T]{ctx: cancelCtx, res: cancelRes}
	}
	if hasFail {
		return Chain[T]{ctx: failCtx, res: failRes}
	}

	return c
}

// And requires every chain to be on the success track, the first failure
// wins.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	return c.and(required)
}

func (c Chain[T]) and(chains ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	var res track.Result[T]
	for _, ch := range candidates {
		res = ch.res

		if res.IsFailure() {
			return Chain[T]{ctx: ch.ctx, res: res}
		}
	}

	return Chain[T]{ctx: c.ctx, res: res}
}

// While keeps applying onSuccess as long as the chain stays on the success
// track and the predicate holds.
func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) track.Result[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for c.res.IsSuccess() && while(c.ctx, c.res.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

// RepeatUntil applies onSuccess at least once and stops when the predicate
// reports done or the chain leaves the success track.
func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) track.Result[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || until(c.ctx, c.res.Value()) {
			return c
		}
	}
}

// Switch moves the chain from T to U via a function returning track.Result[U]
func Switch[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) track.Result[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Switch[T, U](c.ctx, c.res, onSuccess)}
}

// MapTo transforms the successful value into a new type
func MapTo[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Map[T, U](c.ctx, c.res, onSuccess)}
}

// TryTo calls a function (U, error) and converts the error to failure
func TryTo[T, U any](c Chain[T], try func(ctx context.Context, t T) (U, error)) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Try[T, U](c.ctx, c.res, try)}
}

// Finally collapses the chain into a final value via handlers
func Finally[T, U any](c Chain[T],
	onSuccess func(ctx context.Context, t T) U,
	onError func(ctx context.Context, err error) U,
	onCancel func(ctx context.Context, err error) U) U {
	return solo.Finally[T, U](c.ctx, c.res, onSuccess, onError, onCancel)
}
