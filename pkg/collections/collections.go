// Package collections provides generic helpers for counting, flattening,
// and deduplicating slices.
package collections

import "sort"

// Counter counts occurrences of comparable items.
type Counter[T comparable] map[T]int

// NewCounter builds a Counter from items.
func NewCounter[T comparable](items []T) Counter[T] {
	c := make(Counter[T], len(items))
	c.Add(items...)
	return c
}

// Add increments the count of each given item.
func (c Counter[T]) Add(items ...T) {
	for _, item := range items {
		c[item]++
	}
}

// Count returns the count for an item, zero when absent.
func (c Counter[T]) Count(item T) int {
	return c[item]
}

// Pair is an item with its count.
type Pair[T comparable] struct {
	Item  T
	Count int
}

// MostCommon returns up to n items ordered by descending count. Ties keep
// a stable order by count only; pass n <= 0 for all items.
func (c Counter[T]) MostCommon(n int) []Pair[T] {
	pairs := make([]Pair[T], 0, len(c))
	for item, count := range c {
		pairs = append(pairs, Pair[T]{Item: item, Count: count})
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Count > pairs[j].Count
	})

	if n > 0 && n < len(pairs) {
		pairs = pairs[:n]
	}
	return pairs
}

// Flatten concatenates a slice of slices into a single slice.
func Flatten[T any](nested [][]T) []T {
	total := 0
	for _, inner := range nested {
		total += len(inner)
	}

	flat := make([]T, 0, total)
	for _, inner := range nested {
		flat = append(flat, inner...)
	}
	return flat
}

// UniqueOrdered removes duplicates while preserving first-seen order.
func UniqueOrdered[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	unique := make([]T, 0, len(items))

	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		unique = append(unique, item)
	}
	return unique
}
