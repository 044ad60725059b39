package combinator

// Compose returns h such that h(x) == g(f(x)).
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// ComposeAll chains endomorphisms left to right. With no arguments it
// returns Identity.
func ComposeAll[A any](fs ...func(A) A) func(A) A {
	chain := make([]func(A) A, len(fs))
	copy(chain, fs)

	return func(a A) A {
		for _, f := range chain {
			a = f(a)
		}
		return a
	}
}

func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return Curry(func(b B, c C) D {
			return f(a, b, c)
		})
	}
}

func Uncurry[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}

// Recurry re-wraps an already curried function. The result is pointwise
// equal to f but does not share f's intermediate closures.
func Recurry[A, B, C any](f func(A) func(B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a)(b)
		}
	}
}

// Partial fixes the first argument of f.
func Partial[A, B, C any](f func(A, B) C, a A) func(B) C {
	return Curry(f)(a)
}

func Identity[A any](a A) A {
	return a
}

// Const returns a function that ignores its argument and always yields a.
func Const[B, A any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}
