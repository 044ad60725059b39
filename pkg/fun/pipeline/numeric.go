package pipeline

import (
	"fmt"

	"github.com/ib-77/fun/pkg/fun/combinator"
	"github.com/ib-77/fun/pkg/fun/either"
	"github.com/ib-77/fun/pkg/fun/option"
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

const (
	ErrMsgDivideByZero = "Cannot divide by zero"
	ErrMsgOddNumber    = "Cannot divide by odd number"
)

func NormalSum[N Number](a, b N) N {
	return a + b
}

// Sum is the curried form of NormalSum.
func Sum[N Number](a N) func(N) N {
	return combinator.Curry(NormalSum[N])(a)
}

func Increment[N Number](a N) N {
	return a + 1
}

// IncreaseByOne is Increment derived by fixing the first operand of Sum.
func IncreaseByOne[N Number](a N) N {
	return Sum[N](1)(a)
}

func ToString[N Number](a N) string {
	return fmt.Sprint(a)
}

func IncrementThenToString[N Number](a N) string {
	return Compose(Increment[N], ToString[N])(a)
}

// DivideByTwo is absent for zero and halves everything else. Integer inputs
// truncate; floats halve exactly.
func DivideByTwo[N Number](a N) option.Option[N] {
	if a == 0 {
		return option.None[N]()
	}
	return option.Some(a / 2)
}

func IncrementIfPresent[N Number](o option.Option[N]) option.Option[N] {
	if option.IsNone(o) {
		return option.None[N]()
	}
	v, _ := o.Get()
	return option.Some(Increment(v))
}

func DivideByTwoThenIncrement[N Number](a N) option.Option[N] {
	return Compose(DivideByTwo[N], IncrementIfPresent[N])(a)
}

// DivideByTwoIfEven rejects zero before it checks parity.
func DivideByTwoIfEven[N constraints.Integer](n N) either.Either[string, N] {
	if n == 0 {
		return either.Left[string, N](ErrMsgDivideByZero)
	}
	if n%2 != 0 {
		return either.Left[string, N](ErrMsgOddNumber)
	}
	return either.Right[string](n / 2)
}

func IncrementIfRight[E any, N Number](e either.Either[E, N]) either.Either[E, N] {
	if e.IsLeft() {
		return e
	}
	v, _ := e.Get()
	return either.Right[E](Increment(v))
}

func HalveEvenThenIncrement[N constraints.Integer](n N) either.Either[string, N] {
	return Compose(DivideByTwoIfEven[N], IncrementIfRight[string, N])(n)
}
