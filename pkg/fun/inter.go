package fun

import "fmt"

// Variant is implemented by the sum types of this module so that callers
// outside the owning package can observe which branch is active.
type Variant interface {
	fmt.Stringer
	// Tag returns the name of the active variant, e.g. "Some" or "Left"
	Tag() string
}

// Present defines an interface for types that may or may not carry a value
type Present[T any] interface {
	// Get returns the carried value and true, or the zero value and false
	Get() (T, bool)
}
