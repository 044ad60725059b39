// Package fun is the root of a small functional-programming toolkit.
//
// The toolkit is split into subpackages:
// - combinator: Compose, Curry, Partial and friends for plain Go funcs
// - option: Option[A], modelling absence without errors
// - either: Either[E, A], modelling recoverable failure with a diagnostic
// - pipeline: heterogeneous composition of partial functions with explicit
//   tag checks at every stage
// - async: settle-once handles, fail-fast ordered join and sequential
//   awaiting with a recovery scope
// - report: write-only sinks for observing finished values
//
// This package only holds the contracts shared by the sum types.
package fun
