// Package option provides Option[A], a sum type that is either Some(value)
// or None. Absence is represented structurally; nothing in this package
// panics or returns an error.
//
// Key operations:
// - Some/None/FromOk/FromPtr: construct an Option
// - IsNone/IsSome: discriminate before branching
// - Map: transform a present value, None passes through untouched
// - Match: exhaustive reduction to a concrete value
package option
