package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/twotrack/pkg/track"
)

func TestStartAndFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := Start(ctx, track.Success(5))
	if !c.Result().IsSuccess() || c.Result().Value() != 5 {
		t.Fatalf("expected success with 5, got: %v", c.Result())
	}

	v := FromValue(ctx, "hello")
	if !v.Result().IsSuccess() || v.Result().Value() != "hello" {
		t.Fatalf("expected success with 'hello', got: %v", v.Result())
	}
}

func TestThen_SuccessAndShortCircuit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := FromValue(ctx, 2).
		Then(func(ctx context.Context, v int) track.Result[int] {
			return track.Success(v + 1)
		}).
		Then(func(ctx context.Context, v int) track.Result[int] {
			return track.Success(v * 10)
		}).
		Result()
	if !res.IsSuccess() || res.Value() != 30 {
		t.Fatalf("expected success with 30, got: %v", res)
	}

	err := errors.New("broken")
	called := false
	out := Start(ctx, track.Fail[int](err)).
		Then(func(ctx context.Context, v int) track.Result[int] {
			called = true
			return track.Success(v)
		}).
		Result()
	if called {
		t.Fatalf("onSuccess must not run on the error track")
	}
	if out.IsSuccess() || out.Err() != err {
		t.Fatalf("expected 'broken' to pass through, got: %v", out)
	}
}

func TestThenTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := FromValue(ctx, 9).
		ThenTry(func(ctx context.Context, v int) (int, error) {
			return v + 1, nil
		}).
		Result()
	if !res.IsSuccess() || res.Value() != 10 {
		t.Fatalf("expected success with 10, got: %v", res)
	}

	bad := errors.New("try failed")
	out := FromValue(ctx, 9).
		ThenTry(func(ctx context.Context, v int) (int, error) {
			return 0, bad
		}).
		Result()
	if out.IsSuccess() || out.Err() != bad {
		t.Fatalf("expected the try failure, got: %v", out)
	}
}

func TestMapAndMapError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := FromValue(ctx, 3).
		Map(func(ctx context.Context, v int) int { return v * v }).
		Result()
	if res.Value() != 9 {
		t.Fatalf("expected 9, got: %v", res.Value())
	}

	out := Start(ctx, track.Fail[int](errors.New("raw"))).
		MapError(func(ctx context.Context, err error) error {
			return errors.New("decorated: " + err.Error())
		}).
		Result()
	if out.Err() == nil || out.Err().Error() != "decorated: raw" {
		t.Fatalf("expected the decorated cause, got: %v", out.Err())
	}
}

func TestRecover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := Start(ctx, track.Fail[int](errors.New("gone"))).
		Recover(func(ctx context.Context, err error) track.Result[int] {
			return track.Success(-1)
		}).
		Map(func(ctx context.Context, v int) int { return v * 2 }).
		Result()
	if !res.IsSuccess() || res.Value() != -2 {
		t.Fatalf("expected the recovered chain to continue, got: %v", res)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	positive := func(ctx context.Context, v int) (bool, string) {
		return v > 0, "must be positive"
	}

	if res := FromValue(ctx, 5).Validate(positive).Result(); !res.IsSuccess() {
		t.Fatalf("expected success, got: %v", res.Err())
	}

	res := FromValue(ctx, -5).Validate(positive).Result()
	if res.IsSuccess() || res.Err() == nil || res.Err().Error() != "must be positive" {
		t.Fatalf("expected the validation failure, got: %v", res)
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	res := FromValue(ctx, 4).
		Ensure(func(ctx context.Context, v int) { seen = v }).
		Result()
	if seen != 4 || res.Value() != 4 {
		t.Fatalf("expected side effect and unchanged chain, got: seen=%d", seen)
	}

	seen = 0
	Start(ctx, track.Fail[int](errors.New("e"))).
		Ensure(func(ctx context.Context, v int) { seen = 1 })
	if seen != 0 {
		t.Fatalf("expected no side effect on the error track")
	}

	// nil callback is a no-op
	if res := FromValue(ctx, 4).Ensure(nil).Result(); res.Value() != 4 {
		t.Fatalf("expected a nil callback to pass through, got: %v", res)
	}
}

func TestEnsureErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var observed error
	err := errors.New("watch me")
	res := Start(ctx, track.Fail[int](err)).
		EnsureErr(func(ctx context.Context, e error) { observed = e }).
		Result()
	if observed != err || res.Err() != err {
		t.Fatalf("expected the cause observed and unchanged, got: observed=%v", observed)
	}

	observed = nil
	Start(ctx, track.Cancel[int](err)).
		EnsureErr(func(ctx context.Context, e error) { observed = e })
	if observed != err {
		t.Fatalf("expected cancelled failures to be observed as well")
	}

	observed = nil
	FromValue(ctx, 1).EnsureErr(func(ctx context.Context, e error) { observed = e })
	if observed != nil {
		t.Fatalf("expected no observation on the success track")
	}
}

func TestOr_FirstSuccessWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := Start(ctx, track.Fail[int](errors.New("a"))).
		Or(FromValue(ctx, 11)).
		Result()
	if !res.IsSuccess() || res.Value() != 11 {
		t.Fatalf("expected the alternative success, got: %v", res)
	}

	keep := FromValue(ctx, 1).Or(FromValue(ctx, 2)).Result()
	if keep.Value() != 1 {
		t.Fatalf("expected the first success to win, got: %v", keep.Value())
	}
}

func TestOr_CancelBeatsPlainFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	plain := errors.New("plain")
	stop := errors.New("stop")

	res := Start(ctx, track.Fail[int](plain)).
		Or(Start(ctx, track.Cancel[int](stop))).
		Result()
	if !res.IsCancel() || res.Err() != stop {
		t.Fatalf("expected the cancelled candidate to win, got: cancel=%v, err=%v", res.IsCancel(), res.Err())
	}

	// order flipped, cancel still wins
	res = Start(ctx, track.Cancel[int](stop)).
		Or(Start(ctx, track.Fail[int](plain))).
		Result()
	if !res.IsCancel() || res.Err() != stop {
		t.Fatalf("expected the cancelled candidate to win regardless of order, got: %v", res)
	}
}

func TestAnd_FirstFailureWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := FromValue(ctx, 1).And(FromValue(ctx, 2)).Result()
	if !res.IsSuccess() || res.Value() != 2 {
		t.Fatalf("expected the last success, got: %v", res)
	}

	first := errors.New("first")
	second := errors.New("second")
	out := Start(ctx, track.Fail[int](first)).
		And(Start(ctx, track.Fail[int](second))).
		Result()
	if out.Err() != first {
		t.Fatalf("expected the first failure to win, got: %v", out.Err())
	}

	mixed := FromValue(ctx, 1).
		And(Start(ctx, track.Fail[int](second))).
		Result()
	if mixed.Err() != second {
		t.Fatalf("expected the failing requirement to win, got: %v", mixed)
	}
}

func TestWhile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := FromValue(ctx, 1).
		While(func(ctx context.Context, v int) track.Result[int] {
			return track.Success(v * 2)
		}, func(ctx context.Context, v int) bool {
			return v < 10
		}).
		Result()
	if !res.IsSuccess() || res.Value() != 16 {
		t.Fatalf("expected 16 after doubling past 10, got: %v", res.Value())
	}

	// predicate false up front, body never runs
	called := false
	skip := FromValue(ctx, 100).
		While(func(ctx context.Context, v int) track.Result[int] {
			called = true
			return track.Success(v)
		}, func(ctx context.Context, v int) bool {
			return v < 10
		}).
		Result()
	if called || skip.Value() != 100 {
		t.Fatalf("expected the body to be skipped, got: called=%v", called)
	}

	// failure inside the loop leaves the loop
	out := FromValue(ctx, 1).
		While(func(ctx context.Context, v int) track.Result[int] {
			if v >= 4 {
				return track.Fail[int](errors.New("limit"))
			}
			return track.Success(v * 2)
		}, func(ctx context.Context, v int) bool {
			return true
		}).
		Result()
	if out.IsSuccess() || out.Err() == nil || out.Err().Error() != "limit" {
		t.Fatalf("expected the loop failure, got: %v", out)
	}
}

func TestRepeatUntil(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// runs at least once even when the predicate would already hold
	runs := 0
	res := FromValue(ctx, 100).
		RepeatUntil(func(ctx context.Context, v int) track.Result[int] {
			runs++
			return track.Success(v + 1)
		}, func(ctx context.Context, v int) bool {
			return v > 10
		}).
		Result()
	if runs != 1 || res.Value() != 101 {
		t.Fatalf("expected exactly one run, got: runs=%d, val=%v", runs, res.Value())
	}

	// repeats until the predicate reports done
	res = FromValue(ctx, 0).
		RepeatUntil(func(ctx context.Context, v int) track.Result[int] {
			return track.Success(v + 3)
		}, func(ctx context.Context, v int) bool {
			return v >= 9
		}).
		Result()
	if res.Value() != 9 {
		t.Fatalf("expected 9, got: %v", res.Value())
	}

	// failure input never starts the loop
	called := false
	out := Start(ctx, track.Fail[int](errors.New("dead"))).
		RepeatUntil(func(ctx context.Context, v int) track.Result[int] {
			called = true
			return track.Success(v)
		}, func(ctx context.Context, v int) bool {
			return true
		}).
		Result()
	if called || out.IsSuccess() {
		t.Fatalf("expected the error track to skip the loop, got: called=%v", called)
	}
}

func TestSwitchToNewType(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := Switch(FromValue(ctx, 42), func(ctx context.Context, v int) track.Result[string] {
		return track.Success("n=" + strconv.Itoa(v))
	}).Result()
	if !res.IsSuccess() || res.Value() != "n=42" {
		t.Fatalf("expected success 'n=42', got: %v", res)
	}

	err := errors.New("typed")
	out := Switch(Start(ctx, track.Fail[int](err)), func(ctx context.Context, v int) track.Result[string] {
		return track.Success("x")
	}).Result()
	if out.IsSuccess() || out.Err() != err {
		t.Fatalf("expected 'typed' to cross the type change, got: %v", out)
	}
}

func TestMapTo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := MapTo(FromValue(ctx, 7), func(ctx context.Context, v int) string {
		return strconv.Itoa(v)
	}).Result()
	if res.Value() != "7" {
		t.Fatalf("expected '7', got: %v", res.Value())
	}
}

func TestTryTo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := TryTo(FromValue(ctx, "8"), func(ctx context.Context, v string) (int, error) {
		return strconv.Atoi(v)
	}).Result()
	if !res.IsSuccess() || res.Value() != 8 {
		t.Fatalf("expected success with 8, got: %v", res)
	}

	out := TryTo(FromValue(ctx, "zz"), func(ctx context.Context, v string) (int, error) {
		return strconv.Atoi(v)
	}).Result()
	if out.IsSuccess() {
		t.Fatalf("expected the conversion failure")
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fold := func(c Chain[int]) string {
		return Finally(c,
			func(ctx context.Context, v int) string { return "ok:" + strconv.Itoa(v) },
			func(ctx context.Context, err error) string { return "err:" + err.Error() },
			func(ctx context.Context, err error) string { return "cancel:" + err.Error() })
	}

	if got := fold(FromValue(ctx, 3)); got != "ok:3" {
		t.Fatalf("expected 'ok:3', got %q", got)
	}
	if got := fold(Start(ctx, track.Fail[int](errors.New("f")))); got != "err:f" {
		t.Fatalf("expected 'err:f', got %q", got)
	}
	if got := fold(Start(ctx, track.Cancel[int](errors.New("c")))); got != "cancel:c" {
		t.Fatalf("expected 'cancel:c', got %q", got)
	}
}
