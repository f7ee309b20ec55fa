// Package filter provides predicate helpers for selecting configuration
// file paths.
package filter

import (
	"strings"
)

// Predicate reports whether a path matches a condition.
type Predicate func(path string) bool

// NormalizeString lowercases a value and strips surrounding whitespace
// before comparison.
func NormalizeString(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Suffix returns a Predicate matching paths with the given suffix
// (case-insensitive, normalized).
func Suffix(suffix string) Predicate {
	expected := NormalizeString(suffix)
	return func(path string) bool {
		return strings.HasSuffix(NormalizeString(path), expected)
	}
}

// Partial returns a Predicate matching paths that contain the given
// substring (case-insensitive, normalized).
func Partial(substring string) Predicate {
	expected := NormalizeString(substring)
	return func(path string) bool {
		return strings.Contains(NormalizeString(path), expected)
	}
}

// All combines predicates, matching only when every one matches.
func All(predicates ...Predicate) Predicate {
	return func(path string) bool {
		for _, p := range predicates {
			if !p(path) {
				return false
			}
		}
		return true
	}
}

// Select returns the paths matching the predicate, preserving input order.
func Select(paths []string, predicate Predicate) []string {
	selected := make([]string, 0, len(paths))
	for _, p := range paths {
		if predicate(p) {
			selected = append(selected, p)
		}
	}
	return selected
}
