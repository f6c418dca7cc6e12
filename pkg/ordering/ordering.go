// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package ordering implements the sort-order arithmetic shared by lists and
// cards. Sort orders are 1-based integers scoped to a container and only
// their relative order is meaningful: deletes leave gaps and a card moved
// across lists parks at 0 until its next reorder. Renumbering restores a
// dense sequence for the one container being reordered.
package ordering

import "fmt"

// Position pairs an entity ID with its assigned sort order.
type Position struct {
	ID        string
	SortOrder int64
}

// Next returns the sort order for an appended entity given the current
// maximum in the container. An empty container has maximum 0, so the first
// entity lands at 1.
func Next(max int64) int64 {
	return max + 1
}

// Move removes the element at from and reinserts it at to, shifting the
// elements in between. The input slice is not modified.
func Move(ids []string, from, to int) ([]string, error) {
	if from < 0 || from >= len(ids) {
		return nil, fmt.Errorf("source index %d out of range [0, %d)", from, len(ids))
	}
	if to < 0 || to >= len(ids) {
		return nil, fmt.Errorf("target index %d out of range [0, %d)", to, len(ids))
	}

	out := make([]string, 0, len(ids))
	out = append(out, ids[:from]...)
	out = append(out, ids[from+1:]...)

	out = append(out[:to], append([]string{ids[from]}, out[to:]...)...)
	return out, nil
}

// Renumber assigns consecutive 1-based positions following slice order.
// Applying it to an already dense sequence yields identical assignments,
// which keeps reorder operations idempotent.
func Renumber(ids []string) []Position {
	positions := make([]Position, len(ids))
	for i, id := range ids {
		positions[i] = Position{ID: id, SortOrder: int64(i) + 1}
	}
	return positions
}

// IndexOf returns the position of id in ids, or -1 when absent.
func IndexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
