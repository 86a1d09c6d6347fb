// Package normalization maps free-form config strings onto enum values
// with a default for unrecognized input.
package normalization

import (
	"fmt"
	"sort"
	"strings"
)

// Normalizer converts raw strings to values of a comparable enum type.
type Normalizer[T comparable] struct {
	validValues  map[string]T
	validKeys    []string
	defaultValue T
}

// NewNormalizer builds a Normalizer from a key→value map. Keys are
// matched case-insensitively with surrounding whitespace ignored.
func NewNormalizer[T comparable](values map[string]T, defaultValue T) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	validKeys := make([]string, 0, len(values))
	for k, v := range values {
		key := clean(k)
		normalized[key] = v
		validKeys = append(validKeys, key)
	}
	sort.Strings(validKeys)

	return &Normalizer[T]{
		validValues:  normalized,
		validKeys:    validKeys,
		defaultValue: defaultValue,
	}
}

// Normalize converts raw to its enum value, falling back to the default.
func (n *Normalizer[T]) Normalize(raw string) T {
	if value, exists := n.validValues[clean(raw)]; exists {
		return value
	}
	return n.defaultValue
}

// NormalizeWithError converts raw to its enum value, or reports the
// valid options.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	if value, exists := n.validValues[clean(raw)]; exists {
		return value, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q, valid options: %v", raw, n.validKeys)
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
