package async

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ib-77/twotrack/pkg/track"
)

func TestRun_Await(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	gate := make(chan struct{})
	f := Run(ctx, func(ctx context.Context) track.Result[int] {
		<-gate
		return track.Success(21)
	})

	close(gate)
	res := f.Await()
	if !res.IsSuccess() || res.Value() != 21 {
		t.Fatalf("expected success with 21, got: %v", res)
	}
}

func TestAwait_EveryCallerSeesSameResolution(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := Run(ctx, func(ctx context.Context) track.Result[int] {
		return track.Success(5)
	})

	first := f.Await()
	second := f.Await()
	if first.Value() != 5 || second.Value() != 5 || first.Id() != second.Id() {
		t.Fatalf("expected one shared resolution, got: %v and %v", first, second)
	}
}

func TestResolved_NeverSuspends(t *testing.T) {
	t.Parallel()

	f := Resolved(track.Success("now"))

	select {
	case <-f.Done():
	default:
		t.Fatalf("expected a resolved future to be done immediately")
	}

	if res := f.Await(); res.Value() != "now" {
		t.Fatalf("expected 'now', got: %v", res)
	}
}

func TestSucceed(t *testing.T) {
	t.Parallel()

	res := Succeed(3).Await()
	if !res.IsSuccess() || res.Value() != 3 {
		t.Fatalf("expected success with 3, got: %v", res)
	}
}

func TestAwaitContext_ContextEndsFirst(t *testing.T) {
	t.Parallel()

	gate := make(chan struct{})
	f := Run(context.Background(), func(ctx context.Context) track.Result[int] {
		<-gate
		return track.Success(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := f.AwaitContext(ctx)
	if !res.IsCancel() || !errors.Is(res.Err(), context.Canceled) {
		t.Fatalf("expected a cancelled result carrying ctx.Err(), got: %v", res)
	}

	// the future itself still resolves normally
	close(gate)
	if late := f.Await(); !late.IsSuccess() || late.Value() != 1 {
		t.Fatalf("expected the underlying resolution untouched, got: %v", late)
	}
}

func TestAwaitTimeout(t *testing.T) {
	t.Parallel()

	gate := make(chan struct{})
	f := Run(context.Background(), func(ctx context.Context) track.Result[int] {
		<-gate
		return track.Success(1)
	})

	res := f.AwaitTimeout(10 * time.Millisecond)
	if !res.IsCancel() || !errors.Is(res.Err(), context.DeadlineExceeded) {
		t.Fatalf("expected a deadline cancel, got: %v", res)
	}

	close(gate)
	if late := f.AwaitTimeout(time.Second); !late.IsSuccess() {
		t.Fatalf("expected the resolution within the window, got: %v", late)
	}
}

func TestGo_Classification(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := Go(ctx, func(ctx context.Context) (int, error) { return 4, nil }).Await()
	if !ok.IsSuccess() || ok.Value() != 4 {
		t.Fatalf("expected success with 4, got: %v", ok)
	}

	plain := errors.New("io broke")
	failed := Go(ctx, func(ctx context.Context) (int, error) { return 0, plain }).Await()
	if failed.IsSuccess() || failed.IsCancel() || failed.Err() != plain {
		t.Fatalf("expected a plain failure, got: %v", failed)
	}

	cancelled := Go(ctx, func(ctx context.Context) (int, error) {
		return 0, context.DeadlineExceeded
	}).Await()
	if !cancelled.IsCancel() {
		t.Fatalf("expected a deadline error to land on the cancelled flavour, got: %v", cancelled)
	}
}

func TestChan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := Succeed(9)
	ch := f.Chan(ctx)

	res, ok := <-ch
	if !ok || !res.IsSuccess() || res.Value() != 9 {
		t.Fatalf("expected the resolution on the channel, got: ok=%v, res=%v", ok, res)
	}

	if _, open := <-ch; open {
		t.Fatalf("expected the channel to close after one value")
	}
}

func TestFromChan_AdoptsFirstValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ch := make(chan track.Result[string], 1)
	ch <- track.Success("queued")

	res := FromChan(ctx, ch).Await()
	if !res.IsSuccess() || res.Value() != "queued" {
		t.Fatalf("expected the queued value, got: %v", res)
	}
}

func TestFromChan_ClosedEmptyCancels(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ch := make(chan track.Result[string])
	close(ch)

	res := FromChan(ctx, ch).Await()
	if !res.IsCancel() || !errors.Is(res.Err(), track.ErrCancelled) {
		t.Fatalf("expected a drained channel to cancel, got: %v", res)
	}
}

func TestFromChan_ContextEndCancels(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := make(chan track.Result[string])
	res := FromChan(ctx, ch).Await()
	if !res.IsCancel() || !errors.Is(res.Err(), context.Canceled) {
		t.Fatalf("expected the context end to cancel, got: %v", res)
	}
}
