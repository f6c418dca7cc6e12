// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ordering

import (
	"reflect"
	"testing"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name     string
		max      int64
		expected int64
	}{
		{name: "Empty container starts at 1", max: 0, expected: 1},
		{name: "Appends after current maximum", max: 7, expected: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Next(tt.max); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name      string
		ids       []string
		from      int
		to        int
		expected  []string
		expectErr bool
	}{
		{
			name:     "Move forward",
			ids:      []string{"a", "b", "c", "d"},
			from:     0,
			to:       2,
			expected: []string{"b", "c", "a", "d"},
		},
		{
			name:     "Move backward",
			ids:      []string{"a", "b", "c", "d"},
			from:     3,
			to:       1,
			expected: []string{"a", "d", "b", "c"},
		},
		{
			name:     "Move to same index is identity",
			ids:      []string{"a", "b", "c"},
			from:     1,
			to:       1,
			expected: []string{"a", "b", "c"},
		},
		{
			name:      "Source out of range",
			ids:       []string{"a", "b"},
			from:      2,
			to:        0,
			expectErr: true,
		},
		{
			name:      "Target out of range",
			ids:       []string{"a", "b"},
			from:      0,
			to:        -1,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := append([]string(nil), tt.ids...)

			got, err := Move(tt.ids, tt.from, tt.to)

			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
			if !reflect.DeepEqual(tt.ids, original) {
				t.Errorf("input slice was modified: %v", tt.ids)
			}
		})
	}
}

func TestRenumber(t *testing.T) {
	t.Run("Assigns dense 1-based positions", func(t *testing.T) {
		got := Renumber([]string{"x", "y", "z"})
		expected := []Position{{"x", 1}, {"y", 2}, {"z", 3}}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("expected %v, got %v", expected, got)
		}
	})

	t.Run("Renumbering twice is idempotent", func(t *testing.T) {
		first := Renumber([]string{"x", "y"})
		ids := make([]string, len(first))
		for i, p := range first {
			ids[i] = p.ID
		}
		second := Renumber(ids)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("expected %v, got %v", first, second)
		}
	})
}

func TestIndexOf(t *testing.T) {
	ids := []string{"a", "b", "c"}
	if got := IndexOf(ids, "b"); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if got := IndexOf(ids, "missing"); got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
}
