package async

import (
	"context"

	"github.com/google/uuid"
	"github.com/ib-77/fun/pkg/fun/report"
	"go.uber.org/zap"
)

// Scope is the recovery scope of one sequential flow. It is only valid
// inside the body it was handed to.
type Scope struct {
	ctx context.Context
	id  uuid.UUID
}

// rejection carries an awaited handle's error up to the scope that owns it.
type rejection struct {
	scope *Scope
	err   error
}

func newScope(ctx context.Context) *Scope {
	return &Scope{ctx: ctx, id: uuid.New()}
}

func (s *Scope) Context() context.Context {
	return s.ctx
}

func (s *Scope) ID() uuid.UUID {
	return s.id
}

// Await suspends the flow owning s until h settles and returns its value. If
// h rejects, or the scope's context is done first, none of the statements
// following Await in the body run: control transfers to the catch function
// of the Try or Flow that created s.
func Await[T any](s *Scope, h *Handle[T]) T {
	v, err := h.Await(s.ctx)
	if err != nil {
		panic(rejection{scope: s, err: err})
	}
	return v
}

// Try runs body synchronously inside a new recovery scope.
//
// If body completes, its value is returned. If an Await inside body rejects,
// catch receives the reason and its return value becomes the result with a
// nil error. With a nil catch the reason is returned as the error instead.
// Panics that do not come from this scope's Await are not recovered.
func Try[T any](ctx context.Context, body func(s *Scope) T,
	catch func(ctx context.Context, err error) T) (T, error) {

	s := newScope(ctx)
	v, err := runScope(s, body)
	if err == nil {
		return v, nil
	}

	if catch == nil {
		var zero T
		return zero, err
	}

	GetLogger(ctx).Debug("flow recovered",
		zap.Stringer("scope", s.id),
		zap.Error(err))
	return catch(ctx, err), nil
}

func runScope[T any](s *Scope, body func(s *Scope) T) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			rej, ok := r.(rejection)
			if !ok || rej.scope != s {
				panic(r)
			}
			err = rej.err
		}
	}()
	return body(s), nil
}

// Flow runs Try on its own goroutine. Flows are independent: one flow
// waiting on a handle never blocks another. The returned handle fulfils with
// the value of body or catch, and rejects only when catch is nil and a
// rejection reached the scope. When a sink is configured via WithSink, the
// fulfilled value is reported under the label "flow".
func Flow[T any](ctx context.Context, body func(s *Scope) T,
	catch func(ctx context.Context, err error) T) *Handle[T] {

	sink := GetSink(ctx, report.Nop())
	return Go(ctx, func(ctx context.Context) (T, error) {
		v, err := Try(ctx, body, catch)
		if err != nil {
			return v, err
		}
		sink.Report(ctx, "flow", v)
		return v, nil
	})
}
