package stream

import (
	"context"
	"sync"

	"github.com/ib-77/twotrack/pkg/track"
	"github.com/ib-77/twotrack/pkg/track/async"
	"github.com/ib-77/twotrack/pkg/track/solo"
)

// Stage transforms one result. Workers apply the stage per value, failures
// and cancels ride the rail through untouched stages.
type Stage[In, Out any] func(ctx context.Context, input track.Result[In]) track.Result[Out]

type optionKey string

const workerOptionKey optionKey = "worker_options"

type workerOptions struct {
	max int
}

// WithWorkers returns a context carrying a default worker count, used by
// Run and Turnout calls that pass workers <= 0.
func WithWorkers(ctx context.Context, workers int) context.Context {
	return context.WithValue(ctx, workerOptionKey, workerOptions{max: workers})
}

func workerCount(ctx context.Context, requested int) int {
	if requested >= 1 {
		return requested
	}
	if opt, ok := ctx.Value(workerOptionKey).(workerOptions); ok && opt.max >= 1 {
		return opt.max
	}
	return 1
}

// Feed emits every value as a success. The channel closes after the last
// value or as soon as ctx ends.
func Feed[T any](ctx context.Context, values ...T) <-chan track.Result[T] {
	in := make(chan track.Result[T])

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- track.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// FeedResults emits prepared results unchanged.
func FeedResults[T any](ctx context.Context, results ...track.Result[T]) <-chan track.Result[T] {
	in := make(chan track.Result[T])

	go func() {
		defer close(in)

		for _, r := range results {
			select {
			case in <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func pump[In, Out any](ctx context.Context, inputCh <-chan track.Result[In],
	outCh chan<- track.Result[Out], stage Stage[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			out := stage(ctx, in)

			select {
			case <-ctx.Done():
				return
			case outCh <- out:
			}
		}
	}
}

// Turnout fans a stage across workers goroutines. The output closes when
// the input is drained or ctx ends. With more than one worker the output
// order follows completion. A workers value <= 0 falls back to the
// WithWorkers option on ctx, then to a single worker.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan track.Result[In],
	stage Stage[In, Out], workers int) <-chan track.Result[Out] {

	workers = workerCount(ctx, workers)

	out := make(chan track.Result[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go pump(ctx, inputCh, out, stage, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Run is Turnout for stages that keep the value type.
func Run[T any](ctx context.Context, inputCh <-chan track.Result[T],
	stage Stage[T, T], workers int) <-chan track.Result[T] {
	return Turnout(ctx, inputCh, stage, workers)
}

func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) Stage[T, T] {
	return func(ctx context.Context, input track.Result[T]) track.Result[T] {
		return solo.AndValidate(ctx, input, validate)
	}
}

func Switch[In, Out any](onSuccess func(ctx context.Context, r In) track.Result[Out]) Stage[In, Out] {
	return func(ctx context.Context, input track.Result[In]) track.Result[Out] {
		return solo.Switch(ctx, input, onSuccess)
	}
}

func Map[In, Out any](onSuccess func(ctx context.Context, r In) Out) Stage[In, Out] {
	return func(ctx context.Context, input track.Result[In]) track.Result[Out] {
		return solo.Map(ctx, input, onSuccess)
	}
}

func MapError[T any](onError func(ctx context.Context, err error) error) Stage[T, T] {
	return func(ctx context.Context, input track.Result[T]) track.Result[T] {
		return solo.MapError(ctx, input, onError)
	}
}

func DoubleMap[In, Out any](onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Stage[In, Out] {
	return func(ctx context.Context, input track.Result[In]) track.Result[Out] {
		return solo.DoubleMap(ctx, input, onSuccess, onError, onCancel)
	}
}

func Tee[T any](onSuccess func(ctx context.Context, r track.Result[T])) Stage[T, T] {
	return func(ctx context.Context, input track.Result[T]) track.Result[T] {
		return solo.Tee(ctx, input, onSuccess)
	}
}

func DoubleTee[T any](onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) Stage[T, T] {
	return func(ctx context.Context, input track.Result[T]) track.Result[T] {
		return solo.DoubleTee(ctx, input, onSuccess, onError, onCancel)
	}
}

func Try[In, Out any](onTry func(ctx context.Context, r In) (Out, error)) Stage[In, Out] {
	return func(ctx context.Context, input track.Result[In]) track.Result[Out] {
		return solo.Try(ctx, input, onTry)
	}
}

func MapTry[In, Out any](onSuccess func(ctx context.Context, r In) Out,
	handle func(ctx context.Context, err error) error) Stage[In, Out] {
	return func(ctx context.Context, input track.Result[In]) track.Result[Out] {
		return solo.MapTry(ctx, input, onSuccess, handle)
	}
}

// Finally folds every result into a plain value and emits it. The handlers
// bundle is shared with the async package.
func Finally[In, Out any](ctx context.Context, inputCh <-chan track.Result[In],
	handlers async.FinallyHandlers[In, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-inputCh:
				if !ok {
					return
				}

				v := solo.Finally(ctx, r, handlers.OnSuccess, handlers.OnError, handlers.OnCancel)

				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// Collect drains the channel into a slice. A context end returns what has
// arrived so far.
func Collect[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// First returns the first value or the default when the channel closes or
// ctx ends beforehand.
func First[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}
