package pipeline

import (
	"context"

	"github.com/ib-77/fun/pkg/fun/either"
)

// Chain wraps an either.Either with context to enable fluent chaining
type Chain[E, A any] struct {
	ctx   context.Context
	value either.Either[E, A]
}

// Start creates a new chain from an existing Either
func Start[E, A any](ctx context.Context, value either.Either[E, A]) *Chain[E, A] {
	return &Chain[E, A]{
		ctx:   ctx,
		value: value,
	}
}

// FromValue creates a new chain on the Right channel
func FromValue[E, A any](ctx context.Context, value A) *Chain[E, A] {
	return &Chain[E, A]{
		ctx:   ctx,
		value: either.Right[E](value),
	}
}

// Result returns the underlying Either
func (c *Chain[E, A]) Result() either.Either[E, A] {
	return c.value
}

// Then chains a partial step. A Left is carried over without calling onRight.
func Then[E, A, B any](c *Chain[E, A], onRight func(context.Context, A) either.Either[E, B]) *Chain[E, B] {
	if l, isLeft := c.value.LeftValue(); isLeft {
		return &Chain[E, B]{ctx: c.ctx, value: either.Left[E, B](l)}
	}

	v, _ := c.value.Get()
	return &Chain[E, B]{
		ctx:   c.ctx,
		value: onRight(c.ctx, v),
	}
}

// Map chains a total transformation of the Right value
func Map[E, A, B any](c *Chain[E, A], onRight func(context.Context, A) B) *Chain[E, B] {
	return &Chain[E, B]{
		ctx: c.ctx,
		value: either.Map(c.value, func(a A) B {
			return onRight(c.ctx, a)
		}),
	}
}

// Ensure performs a side effect on Right without changing the value
func (c *Chain[E, A]) Ensure(onRight func(context.Context, A)) *Chain[E, A] {
	if v, isRight := c.value.Get(); isRight && onRight != nil {
		onRight(c.ctx, v)
	}
	return c
}

// Finally collapses the chain into a concrete value
func Finally[E, A, B any](c *Chain[E, A], onRight func(context.Context, A) B, onLeft func(context.Context, E) B) B {
	return either.Match(c.value,
		func(e E) B { return onLeft(c.ctx, e) },
		func(a A) B { return onRight(c.ctx, a) })
}
