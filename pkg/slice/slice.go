// Copyright (c) 2026 Filmorate. All rights reserved.

/*
Package slice compliments the standard [slices] package by providing functional
programming utilities (Map, Filter) leveraging generics.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Filter filters a slice, returning only elements where the predicate function evaluates to true.
func Filter[T any](input []T, predicate func(T) bool) []T {
	if input == nil {
		return nil
	}

	// Not pre-allocating to full length to avoid excessive memory on heavy filters
	var result []T
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}

// Intersect returns the elements present in both input slices, preserving the
// order of the first slice. Duplicates in the first slice are kept once.
func Intersect[T comparable](first, second []T) []T {
	if len(first) == 0 || len(second) == 0 {
		return nil
	}

	lookup := make(map[T]struct{}, len(second))
	for _, v := range second {
		lookup[v] = struct{}{}
	}

	var result []T
	seen := make(map[T]struct{}, len(first))
	for _, v := range first {
		if _, dup := seen[v]; dup {
			continue
		}
		if _, ok := lookup[v]; ok {
			result = append(result, v)
			seen[v] = struct{}{}
		}
	}

	return result
}

// Contains reports whether the slice holds the given element.
func Contains[T comparable](input []T, element T) bool {
	for _, v := range input {
		if v == element {
			return true
		}
	}
	return false
}
