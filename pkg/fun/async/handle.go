package async

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

type State uint8

const (
	StatePending State = iota
	StateFulfilled
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateFulfilled:
		return "fulfilled"
	case StateRejected:
		return "rejected"
	default:
		return "pending"
	}
}

// Handle is the consumer side of an asynchronous computation. Once settled
// its state, value and error never change. Handles are only valid when made
// by Create, Resolved, Rejected or Go; awaiting a nil or zero Handle returns
// ErrInvalidHandle.
type Handle[T any] struct {
	id   uuid.UUID
	once sync.Once
	done chan struct{}

	// written once, before done is closed
	state State
	value T
	err   error
}

// Promise is the producer side used to settle a Handle. A zero Promise is
// not linked to any handle and never settles anything.
type Promise[T any] struct {
	h *Handle[T]
}

func newHandle[T any]() *Handle[T] {
	return &Handle[T]{
		id:   uuid.New(),
		done: make(chan struct{}),
	}
}

// Create returns a linked Promise and Handle. The Handle stays Pending until
// the Promise is fulfilled or rejected.
func Create[T any]() (Promise[T], *Handle[T]) {
	h := newHandle[T]()
	return Promise[T]{h: h}, h
}

// Fulfill settles the handle with value. It returns false if the handle was
// already settled, in which case nothing changes.
func (p Promise[T]) Fulfill(value T) bool {
	return p.h.settle(StateFulfilled, value, nil)
}

// Reject settles the handle with err, or ErrRejected when err is nil. It
// returns false if the handle was already settled.
func (p Promise[T]) Reject(err error) bool {
	if err == nil {
		err = ErrRejected
	}
	var zero T
	return p.h.settle(StateRejected, zero, err)
}

func (p Promise[T]) Handle() *Handle[T] {
	return p.h
}

func (h *Handle[T]) settle(state State, value T, err error) bool {
	if !h.valid() {
		return false
	}

	settled := false
	h.once.Do(func() {
		h.state = state
		h.value = value
		h.err = err
		close(h.done)
		settled = true
	})
	return settled
}

func (h *Handle[T]) valid() bool {
	return h != nil && h.done != nil
}

func (h *Handle[T]) ID() uuid.UUID {
	if h == nil {
		return uuid.Nil
	}
	return h.id
}

// Done is closed once the handle settles. It is nil for an invalid handle.
func (h *Handle[T]) Done() <-chan struct{} {
	if h == nil {
		return nil
	}
	return h.done
}

func (h *Handle[T]) State() State {
	if !h.valid() {
		return StatePending
	}

	select {
	case <-h.done:
		return h.state
	default:
		return StatePending
	}
}

// Await blocks until the handle settles or ctx is done. A settled handle
// always wins over an expired context.
func (h *Handle[T]) Await(ctx context.Context) (T, error) {
	if !h.valid() {
		var zero T
		return zero, ErrInvalidHandle
	}

	select {
	case <-h.done:
		return h.value, h.err
	default:
	}

	select {
	case <-h.done:
		return h.value, h.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func Resolved[T any](value T) *Handle[T] {
	promise, h := Create[T]()
	promise.Fulfill(value)
	return h
}

func Rejected[T any](err error) *Handle[T] {
	promise, h := Create[T]()
	promise.Reject(err)
	return h
}

// FromValues returns one fulfilled handle per value, in order.
func FromValues[T any](values ...T) []*Handle[T] {
	handles := make([]*Handle[T], 0, len(values))
	for _, v := range values {
		handles = append(handles, Resolved(v))
	}
	return handles
}

// Go runs f on its own goroutine. A returned error rejects the handle; a
// panic rejects it with an error wrapping ErrPanicked, and an f that never
// returns normally (runtime.Goexit) rejects it with ErrAborted.
func Go[T any](ctx context.Context, f func(ctx context.Context) (T, error)) *Handle[T] {
	promise, h := Create[T]()

	go func() {
		returned := false
		defer func() {
			if r := recover(); r != nil {
				promise.Reject(fmt.Errorf("%w: %v", ErrPanicked, r))
				return
			}
			if !returned {
				promise.Reject(ErrAborted)
			}
		}()

		v, err := f(ctx)
		returned = true
		if err != nil {
			promise.Reject(err)
			return
		}
		promise.Fulfill(v)
	}()

	return h
}

// Then creates a handle that fulfils with transform applied to h's value,
// or rejects with h's error.
func Then[A, B any](h *Handle[A], transform func(A) B) *Handle[B] {
	return Go(context.Background(), func(ctx context.Context) (B, error) {
		a, err := h.Await(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return transform(a), nil
	})
}
