// Package entity contains the core business objects of the project.
package entity

import (
	"maps"
	"slices"
)

// Attributes is a typed key/value bag attached to variants, cart lines and order items
// (e.g. {"size": "M", "color": "red"}). Keys are unique; ordering carries no meaning.
type Attributes map[string]string

// Keys returns the attribute keys in ascending order.
func (a Attributes) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}

// Get returns the value stored under key.
func (a Attributes) Get(key string) (string, bool) {
	v, ok := a[key]

	return v, ok
}

// Clone returns an independent copy. A nil bag clones to nil.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}

	return maps.Clone(a)
}

// Equal reports whether both bags hold the same pairs.
func (a Attributes) Equal(other Attributes) bool {
	return maps.Equal(a, other)
}

// IsEmpty reports whether the bag has no pairs.
func (a Attributes) IsEmpty() bool {
	return len(a) == 0
}
