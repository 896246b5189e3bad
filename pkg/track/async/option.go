package async

import (
	"context"
	"time"

	"github.com/ib-77/twotrack/pkg/track"
	"github.com/ib-77/twotrack/pkg/track/maybe"
)

// OptFuture is the Option twin of Future: a one-shot deferred Option[T].
type OptFuture[T any] struct {
	done chan struct{}
	opt  track.Option[T]
}

// RunOpt starts fn in its own goroutine and returns the OptFuture of its
// option.
func RunOpt[T any](ctx context.Context, fn func(ctx context.Context) track.Option[T]) *OptFuture[T] {
	f := &OptFuture[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		f.opt = fn(ctx)
	}()

	return f
}

// ResolvedOpt wraps an already known option. Awaiting it never suspends.
func ResolvedOpt[T any](o track.Option[T]) *OptFuture[T] {
	f := &OptFuture[T]{done: make(chan struct{}), opt: o}
	close(f.done)
	return f
}

// SomeOf is shorthand for ResolvedOpt(track.Some(v)).
func SomeOf[T any](v T) *OptFuture[T] {
	return ResolvedOpt(track.Some(v))
}

// Await blocks until the future resolves.
func (f *OptFuture[T]) Await() track.Option[T] {
	<-f.done
	return f.opt
}

// AwaitContext blocks until the future resolves or ctx ends. A context end
// yields None together with the context error, absence has no slot for a
// cause.
func (f *OptFuture[T]) AwaitContext(ctx context.Context) (track.Option[T], error) {
	select {
	case <-f.done:
		return f.opt, nil
	case <-ctx.Done():
		return track.None[T](), ctx.Err()
	}
}

// AwaitTimeout waits for the future up to d.
func (f *OptFuture[T]) AwaitTimeout(d time.Duration) (track.Option[T], error) {
	select {
	case <-f.done:
		return f.opt, nil
	case <-time.After(d):
		return track.None[T](), context.DeadlineExceeded
	}
}

// Done exposes the resolution signal for select loops.
func (f *OptFuture[T]) Done() <-chan struct{} {
	return f.done
}

func (f *OptFuture[T]) poll() (track.Option[T], bool) {
	select {
	case <-f.done:
		return f.opt, true
	default:
		return track.None[T](), false
	}
}

// liftOpt applies a maybe primitive to the future's resolution, mirroring
// lift for the Option family.
func liftOpt[In, Out any](ctx context.Context, f *OptFuture[In],
	apply func(ctx context.Context, in track.Option[In]) track.Option[Out]) *OptFuture[Out] {

	if in, ok := f.poll(); ok {
		return ResolvedOpt(apply(ctx, in))
	}
	return RunOpt(ctx, func(ctx context.Context) track.Option[Out] {
		in, _ := f.AwaitContext(ctx)
		return apply(ctx, in)
	})
}

func MapOpt[In any, Out any](ctx context.Context, f *OptFuture[In],
	onSome func(ctx context.Context, r In) Out) *OptFuture[Out] {

	return liftOpt(ctx, f, func(ctx context.Context, in track.Option[In]) track.Option[Out] {
		return maybe.Map[In, Out](ctx, in, onSome)
	})
}

func SwitchOpt[In any, Out any](ctx context.Context, f *OptFuture[In],
	onSome func(ctx context.Context, r In) track.Option[Out]) *OptFuture[Out] {

	return liftOpt(ctx, f, func(ctx context.Context, in track.Option[In]) track.Option[Out] {
		return maybe.Switch[In, Out](ctx, in, onSome)
	})
}

func FilterOpt[T any](ctx context.Context, f *OptFuture[T],
	keep func(ctx context.Context, r T) bool) *OptFuture[T] {

	return liftOpt(ctx, f, func(ctx context.Context, in track.Option[T]) track.Option[T] {
		return maybe.Filter[T](ctx, in, keep)
	})
}

func TeeOpt[T any](ctx context.Context, f *OptFuture[T],
	onSome func(ctx context.Context, r T)) *OptFuture[T] {

	return liftOpt(ctx, f, func(ctx context.Context, in track.Option[T]) track.Option[T] {
		return maybe.Tee[T](ctx, in, onSome)
	})
}

func DoubleTeeOpt[T any](ctx context.Context, f *OptFuture[T],
	onSome func(ctx context.Context, r T),
	onNone func(ctx context.Context)) *OptFuture[T] {

	return liftOpt(ctx, f, func(ctx context.Context, in track.Option[T]) track.Option[T] {
		return maybe.DoubleTee[T](ctx, in, onSome, onNone)
	})
}

// ThenOpt sequences a continuation that itself returns an OptFuture. The
// continuation is started and awaited only for a present value, absence
// resolves immediately.
func ThenOpt[In any, Out any](ctx context.Context, f *OptFuture[In],
	onSome func(ctx context.Context, r In) *OptFuture[Out]) *OptFuture[Out] {

	if in, ok := f.poll(); ok {
		if v, present := in.Get(); present {
			return onSome(ctx, v)
		}
		return ResolvedOpt(track.None[Out]())
	}

	return RunOpt(ctx, func(ctx context.Context) track.Option[Out] {
		in, err := f.AwaitContext(ctx)
		if err != nil {
			return track.None[Out]()
		}
		if v, present := in.Get(); present {
			next, _ := onSome(ctx, v).AwaitContext(ctx)
			return next
		}
		return track.None[Out]()
	})
}

// CatchOpt runs produce on its own goroutine and converts a panic into an
// absent resolution, as maybe.Catch does synchronously.
func CatchOpt[T any](ctx context.Context,
	produce func(ctx context.Context) T,
	handle func(ctx context.Context, err error)) *OptFuture[T] {

	return RunOpt(ctx, func(ctx context.Context) track.Option[T] {
		return maybe.Catch[T](ctx, produce, handle)
	})
}
