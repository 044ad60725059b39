// Package pipeline composes functions whose intermediate values are wrapped
// in option.Option or either.Either.
//
// There is deliberately no bind: every stage that receives a wrapped value
// inspects the tag itself before calling the next computation, so the point
// where a pipeline short-circuits is visible at the call site.
//
// Key operations:
// - Compose: heterogeneous A -> B -> C composition
// - DivideByTwo/DivideByTwoIfEven: reference partial producers
// - IncrementIfPresent/IncrementIfRight: explicit-branch follow-up stages
// - Chain: fluent, context-carrying wrapper for Either pipelines
// - Observe: hand a value to a report.Sink without changing it
package pipeline
