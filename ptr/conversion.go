// Package ptr provides generic utilities for converting to/from pointers where doing so directly isn't possible e.g.
// getting a pointer to a constant value.
package ptr

// To returns a pointer to a copy of the provided value.
func To[V any](v V) *V {
	return &v
}

// From dereferences the given pointer, returning the zero value if <nil>; this mimics the pointer conversion utilities
// exposed by the AWS SDK which pre-date generics.
func From[V any](v *V) V {
	if v != nil {
		return *v
	}

	return *new(V)
}
