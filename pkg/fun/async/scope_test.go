package async

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/ib-77/fun/pkg/fun/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTry_RejectionSkipsRestOfBody(t *testing.T) {
	ctx := context.Background()
	failure := errors.New("error")

	var trace []string
	var caught error
	out, err := Try(ctx, func(s *Scope) string {
		res := Await(s, All(s.Context(), FromValues(1, 1, 1, 1)...))
		trace = append(trace, "joined")
		require.Equal(t, []int{1, 1, 1, 1}, res)

		_ = Await(s, Rejected[int](failure))
		trace = append(trace, "unreachable")
		return "done"
	}, func(_ context.Context, err error) string {
		caught = err
		return "recovered"
	})

	require.NoError(t, err)
	assert.Equal(t, "recovered", out)
	assert.ErrorIs(t, caught, failure)
	assert.Equal(t, []string{"joined"}, trace)
}

func TestTry_CompletesWithoutRejection(t *testing.T) {
	ctx := context.Background()
	out, err := Try(ctx, func(s *Scope) int {
		return Await(s, Resolved(1)) + Await(s, Resolved(2))
	}, func(context.Context, error) int {
		t.Fatalf("catch must not run")
		return 0
	})

	require.NoError(t, err)
	assert.Equal(t, 3, out)
}

func TestTry_NilCatchReturnsReason(t *testing.T) {
	failure := errors.New("uncaught")
	_, err := Try(context.Background(), func(s *Scope) int {
		return Await(s, Rejected[int](failure))
	}, nil)

	require.ErrorIs(t, err, failure)
}

func TestTry_NestedScopeRecoversOnlyItsOwnAwaits(t *testing.T) {
	ctx := context.Background()
	inner := errors.New("inner")
	outer := errors.New("outer")

	var innerCaught, outerCaught error
	_, err := Try(ctx, func(outerScope *Scope) int {
		_, _ = Try(ctx, func(innerScope *Scope) int {
			return Await(innerScope, Rejected[int](inner))
		}, func(_ context.Context, err error) int {
			innerCaught = err
			return 0
		})

		_, _ = Try(ctx, func(innerScope *Scope) int {
			// awaiting on the outer scope unwinds past the inner one
			return Await(outerScope, Rejected[int](outer))
		}, func(_ context.Context, err error) int {
			t.Fatalf("inner catch must not see an outer rejection")
			return 0
		})
		return 1
	}, func(_ context.Context, err error) int {
		outerCaught = err
		return -1
	})

	require.NoError(t, err)
	assert.ErrorIs(t, innerCaught, inner)
	assert.ErrorIs(t, outerCaught, outer)
}

func TestTry_ForeignPanicIsNotRecovered(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		_, _ = Try(context.Background(), func(s *Scope) int {
			panic("boom")
		}, func(context.Context, error) int { return 0 })
	})
}

func TestTry_ContextDoneUnwindsAwait(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, never := Create[int]()
	out, err := Try(ctx, func(s *Scope) string {
		Await(s, never)
		return "unreachable"
	}, func(_ context.Context, err error) string {
		return err.Error()
	})

	require.NoError(t, err)
	assert.Equal(t, context.DeadlineExceeded.Error(), out)
}

func TestFlow_IndependentFlowsDoNotBlockEachOther(t *testing.T) {
	ctx := context.Background()

	gate, gated := Create[int]()
	slow := Flow(ctx, func(s *Scope) int {
		return Await(s, gated) * 10
	}, nil)
	fast := Flow(ctx, func(s *Scope) int {
		return Await(s, Resolved(1))
	}, nil)

	v, err := fast.Await(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, StatePending, slow.State())

	gate.Fulfill(4)
	v, err = slow.Await(ctx)
	require.NoError(t, err)
	require.Equal(t, 40, v)
}

func TestFlow_CatchFulfilsAndNilCatchRejects(t *testing.T) {
	ctx := context.Background()
	failure := errors.New("error")

	recovered := Flow(ctx, func(s *Scope) string {
		return Await(s, Rejected[string](failure))
	}, func(_ context.Context, err error) string {
		return "caught: " + err.Error()
	})
	v, err := recovered.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, "caught: error", v)

	uncaught := Flow(ctx, func(s *Scope) string {
		return Await(s, Rejected[string](failure))
	}, nil)
	_, err = uncaught.Await(ctx)
	require.ErrorIs(t, err, failure)
	assert.Equal(t, StateRejected, uncaught.State())
}

func TestFlow_ForeignPanicRejects(t *testing.T) {
	ctx := context.Background()
	_, err := Flow(ctx, func(s *Scope) int {
		panic("kaput")
	}, func(context.Context, error) int { return 0 }).Await(ctx)

	require.ErrorIs(t, err, ErrPanicked)
}

func TestFlow_GoexitInBodyRejects(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	h := Flow(ctx, func(s *Scope) int {
		runtime.Goexit()
		return 1
	}, nil)

	_, err := h.Await(ctx)
	require.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, StateRejected, h.State())
}

func TestFlow_ReportsToConfiguredSink(t *testing.T) {
	var mu sync.Mutex
	var reported []any
	sink := report.SinkFunc(func(_ context.Context, label string, value any) {
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, "flow", label)
		reported = append(reported, value)
	})
	ctx := WithSink(context.Background(), sink)

	_, err := Flow(ctx, func(s *Scope) int { return Await(s, Resolved(5)) }, nil).Await(ctx)
	require.NoError(t, err)
	_, err = Flow(ctx, func(s *Scope) int { return Await(s, Rejected[int](nil)) }, nil).Await(ctx)
	require.ErrorIs(t, err, ErrRejected)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []any{5}, reported)
}

func TestOptions_Defaults(t *testing.T) {
	ctx := context.Background()
	assert.NotNil(t, GetLogger(ctx))
	assert.Equal(t, report.Nop(), GetSink(ctx, report.Nop()))
	assert.Nil(t, GetSink(WithSink(ctx, nil), nil))
}
