package pipeline

import (
	"context"

	"github.com/ib-77/fun/pkg/fun"
	"github.com/ib-77/fun/pkg/fun/combinator"
	"github.com/ib-77/fun/pkg/fun/option"
	"github.com/ib-77/fun/pkg/fun/report"
)

// Compose chains f and g where the intermediate type B is independent of
// both the pipeline's input and output types.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return combinator.Compose(f, g)
}

// ToOption keeps only whether a value is present. For an Either this drops
// the diagnostic of a Left.
func ToOption[A any](p fun.Present[A]) option.Option[A] {
	v, ok := p.Get()
	return option.FromOk(v, ok)
}

// Observe returns an identity stage that hands every value passing through
// it to sink.
func Observe[A any](ctx context.Context, sink report.Sink, label string) func(A) A {
	if sink == nil {
		sink = report.Nop()
	}
	return func(a A) A {
		sink.Report(ctx, label, a)
		return a
	}
}
