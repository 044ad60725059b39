package option

import "fmt"

// Kind is the discriminant of an Option.
type Kind uint8

const (
	KindNone Kind = iota
	KindSome
)

func (k Kind) String() string {
	if k == KindSome {
		return "Some"
	}
	return "None"
}

// Option holds either exactly one value of type A or nothing. The zero value
// is None.
type Option[A any] struct {
	kind  Kind
	value A
}

func Some[A any](value A) Option[A] {
	return Option[A]{
		kind:  KindSome,
		value: value,
	}
}

func None[A any]() Option[A] {
	return Option[A]{kind: KindNone}
}

// FromOk mirrors the comma-ok idiom of map lookups and type assertions.
func FromOk[A any](value A, ok bool) Option[A] {
	if !ok {
		return None[A]()
	}
	return Some(value)
}

// FromPtr treats a nil pointer as None and otherwise copies the pointee.
func FromPtr[A any](ptr *A) Option[A] {
	if ptr == nil {
		return None[A]()
	}
	return Some(*ptr)
}

// IsNone reports whether o is None.
func IsNone[A any](o Option[A]) bool {
	return o.IsNone()
}

func (o Option[A]) IsNone() bool {
	return o.kind == KindNone
}

func (o Option[A]) IsSome() bool {
	return o.kind == KindSome
}

func (o Option[A]) Kind() Kind {
	return o.kind
}

func (o Option[A]) Tag() string {
	return o.kind.String()
}

// Get returns the value and true for Some, the zero value and false for None
func (o Option[A]) Get() (A, bool) {
	return o.value, o.kind == KindSome
}

func (o Option[A]) GetOrElse(fallback A) A {
	if o.kind == KindSome {
		return o.value
	}
	return fallback
}

func (o Option[A]) String() string {
	if o.kind == KindSome {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map applies f to the value of a Some and rewraps the result. For None, f is
// never invoked.
func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.IsNone() {
		return None[B]()
	}
	return Some(f(o.value))
}

// Match reduces o by calling exactly one of the handlers.
func Match[A, B any](o Option[A], onSome func(A) B, onNone func() B) B {
	if o.IsNone() {
		return onNone()
	}
	return onSome(o.value)
}
