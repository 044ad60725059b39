// Package either provides Either[E, A], a two-branch sum type where Left
// carries a diagnostic of type E and Right carries a success value of type A.
//
// By convention Left short-circuits: Map never touches a Left. A producer
// that can fail for several distinct reasons returns an Either; a producer
// that can simply be absent returns an option.Option instead.
package either
