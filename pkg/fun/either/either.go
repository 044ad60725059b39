package either

import "fmt"

type Kind uint8

const (
	KindLeft Kind = iota
	KindRight
)

func (k Kind) String() string {
	if k == KindRight {
		return "Right"
	}
	return "Left"
}

// Either is Left(E) or Right(A). The zero value is a Left holding the zero E.
type Either[E, A any] struct {
	kind  Kind
	left  E
	right A
}

func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{
		kind: KindLeft,
		left: e,
	}
}

func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{
		kind:  KindRight,
		right: a,
	}
}

// FromResult lifts Go's (value, error) return convention: a non-nil err
// becomes the Left channel.
func FromResult[A any](value A, err error) Either[error, A] {
	if err != nil {
		return Left[error, A](err)
	}
	return Right[error](value)
}

func (e Either[E, A]) IsLeft() bool {
	return e.kind == KindLeft
}

func (e Either[E, A]) IsRight() bool {
	return e.kind == KindRight
}

func (e Either[E, A]) Kind() Kind {
	return e.kind
}

func (e Either[E, A]) Tag() string {
	return e.kind.String()
}

// Get returns the Right value and true, or the zero A and false
func (e Either[E, A]) Get() (A, bool) {
	return e.right, e.kind == KindRight
}

// LeftValue returns the Left diagnostic and true, or the zero E and false
func (e Either[E, A]) LeftValue() (E, bool) {
	return e.left, e.kind == KindLeft
}

func (e Either[E, A]) GetOrElse(fallback A) A {
	if e.kind == KindRight {
		return e.right
	}
	return fallback
}

func (e Either[E, A]) String() string {
	if e.kind == KindRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Map transforms a Right value. A Left is returned with the same diagnostic
// and f is not invoked.
func Map[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.IsLeft() {
		return Left[E, B](e.left)
	}
	return Right[E](f(e.right))
}

// MapLeft transforms the diagnostic of a Left and leaves a Right untouched.
func MapLeft[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.IsRight() {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

func Match[E, A, B any](e Either[E, A], onLeft func(E) B, onRight func(A) B) B {
	if e.IsLeft() {
		return onLeft(e.left)
	}
	return onRight(e.right)
}
