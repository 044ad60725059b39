// Package combinator contains higher-order functions that build new
// functions out of existing ones without touching any external state.
//
// Highlights:
// - Compose/ComposeAll: unary left-to-right composition
// - Curry/Curry3/Uncurry/Recurry: move between tupled and curried forms
// - Partial: fix the first argument of a binary function
// - Identity/Const/Flip: the usual small building blocks
package combinator
