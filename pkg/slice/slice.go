// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice compliments the standard [slices] package by providing functional
programming utilities (Map, Filter, Page) leveraging generics.
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
//
// The result never aliases input.
func Filter[T any](input []T, predicate func(T) bool) []T {
	if input == nil {
		return nil
	}

	result := make([]T, 0, len(input))
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}

// Page returns the window [offset, offset+limit) of input, clamped to its bounds.
func Page[T any](input []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(input) || limit <= 0 {
		return []T{}
	}

	end := offset + limit
	if end > len(input) {
		end = len(input)
	}

	return input[offset:end]
}
