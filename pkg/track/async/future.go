package async

import (
	"context"
	"time"

	"github.com/ib-77/twotrack/pkg/track"
)

// Future is a one-shot deferred Result[T]. It resolves exactly once and
// every Await observes the same resolution.
type Future[T any] struct {
	done chan struct{}
	res  track.Result[T]
}

// Run starts fn in its own goroutine and returns the Future of its result.
// A panic inside fn is not intercepted here, wrap the work with Catch when
// panics should land on the error track.
func Run[T any](ctx context.Context, fn func(ctx context.Context) track.Result[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		f.res = fn(ctx)
	}()

	return f
}

// Go wraps a conventional (T, error) producer.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	return Run(ctx, func(ctx context.Context) track.Result[T] {
		return track.Of(fn(ctx))
	})
}

// Resolved wraps an already known result. Awaiting it never suspends.
func Resolved[T any](r track.Result[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), res: r}
	close(f.done)
	return f
}

// Succeed is shorthand for Resolved(track.Success(v)).
func Succeed[T any](v T) *Future[T] {
	return Resolved(track.Success(v))
}

// Await blocks until the future resolves.
func (f *Future[T]) Await() track.Result[T] {
	<-f.done
	return f.res
}

// AwaitContext blocks until the future resolves or ctx ends, whichever
// comes first. A context end yields a cancelled result.
func (f *Future[T]) AwaitContext(ctx context.Context) track.Result[T] {
	select {
	case <-f.done:
		return f.res
	case <-ctx.Done():
		return track.Cancel[T](ctx.Err())
	}
}

// AwaitTimeout waits for the future up to d.
func (f *Future[T]) AwaitTimeout(d time.Duration) track.Result[T] {
	select {
	case <-f.done:
		return f.res
	case <-time.After(d):
		return track.Cancel[T](context.DeadlineExceeded)
	}
}

// Done exposes the resolution signal for select loops.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// poll reports the resolution without blocking.
func (f *Future[T]) poll() (track.Result[T], bool) {
	select {
	case <-f.done:
		return f.res, true
	default:
		var zero track.Result[T]
		return zero, false
	}
}

// Chan exposes the resolution as a single-value channel.
func (f *Future[T]) Chan(ctx context.Context) <-chan track.Result[T] {
	out := make(chan track.Result[T])

	go func() {
		defer close(out)

		res := f.AwaitContext(ctx)
		select {
		case out <- res:
		case <-ctx.Done():
		}
	}()

	return out
}

// FromChan adopts the first value of ch as the resolution. A closed empty
// channel and a context end both resolve to a cancelled result.
func FromChan[T any](ctx context.Context, ch <-chan track.Result[T]) *Future[T] {
	return Run(ctx, func(ctx context.Context) track.Result[T] {
		select {
		case r, ok := <-ch:
			if !ok {
				return track.Cancel[T](track.ErrCancelled)
			}
			return r
		case <-ctx.Done():
			return track.Cancel[T](ctx.Err())
		}
	})
}
