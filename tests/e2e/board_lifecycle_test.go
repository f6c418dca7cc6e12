// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package e2e

import (
	"net/http"
	"strings"
	"testing"
)

// Covers the full board flow: organization, board, lists, cards,
// reordering, cross-list move and the card's activity trail.
func TestBoardLifecycle(t *testing.T) {
	alice := newClient(t, "alice-board-lifecycle")

	var org organization
	alice.post("/api/v0/organizations", map[string]string{"name": "Board E2E Org"}, http.StatusCreated, &org)

	var b board
	alice.post(orgPath(org.ID, "boards"), map[string]string{"title": "Sprint Board"}, http.StatusCreated, &b)

	var todo, doing list
	alice.post(boardPath(b.ID, "lists"), map[string]string{"title": "Todo"}, http.StatusCreated, &todo)
	alice.post(boardPath(b.ID, "lists"), map[string]string{"title": "Doing"}, http.StatusCreated, &doing)

	if todo.SortOrder != 1 || doing.SortOrder != 2 {
		t.Fatalf("expected appended lists at 1 and 2, got %d and %d", todo.SortOrder, doing.SortOrder)
	}

	var first, second, third card
	alice.post(boardPath(b.ID, "lists", todo.ID, "cards"), map[string]string{"title": "Task A"}, http.StatusCreated, &first)
	alice.post(boardPath(b.ID, "lists", todo.ID, "cards"), map[string]string{"title": "Task B"}, http.StatusCreated, &second)
	alice.post(boardPath(b.ID, "lists", todo.ID, "cards"), map[string]string{"title": "Task C"}, http.StatusCreated, &third)

	if first.SortOrder != 1 || second.SortOrder != 2 || third.SortOrder != 3 {
		t.Fatalf("expected appended cards at 1,2,3 got %d,%d,%d", first.SortOrder, second.SortOrder, third.SortOrder)
	}
	if first.Priority != "medium" {
		t.Errorf("expected default priority medium, got %q", first.Priority)
	}

	// Move Task C to the top of its list.
	var reordered []card
	alice.post(boardPath(b.ID, "lists", todo.ID, "cards", third.ID, "sort"),
		map[string]int{"new_index": 0}, http.StatusOK, &reordered)
	if len(reordered) != 3 || reordered[0].ID != third.ID || reordered[0].SortOrder != 1 {
		t.Fatalf("unexpected order after reorder: %+v", reordered)
	}

	// Move Task A across lists.
	var moved card
	alice.post(boardPath(b.ID, "lists", todo.ID, "cards", first.ID, "move"),
		map[string]string{"target_list_id": doing.ID}, http.StatusOK, &moved)
	if moved.ListID != doing.ID {
		t.Fatalf("expected card in target list, got %+v", moved)
	}

	// The moved card must survive deleting its source list.
	alice.delete(boardPath(b.ID, "lists", todo.ID), http.StatusOK)

	var lists []list
	alice.get(boardPath(b.ID, "lists"), http.StatusOK, &lists)
	if len(lists) != 1 || lists[0].ID != doing.ID {
		t.Fatalf("expected only the target list to remain, got %+v", lists)
	}
	if len(lists[0].Cards) != 1 || lists[0].Cards[0].ID != first.ID {
		t.Fatalf("expected moved card to survive source deletion, got %+v", lists[0].Cards)
	}

	// Complete the card and check its activity trail.
	var completed card
	alice.post(boardPath(b.ID, "lists", doing.ID, "cards", first.ID, "complete"),
		map[string]bool{"completed": true}, http.StatusOK, &completed)
	if !completed.Completed {
		t.Fatalf("expected completed card, got %+v", completed)
	}

	var activities []activityEntry
	alice.get(boardPath(b.ID, "lists", doing.ID, "cards", first.ID, "activities"), http.StatusOK, &activities)
	if len(activities) < 3 {
		t.Fatalf("expected created, moved and updated entries, got %+v", activities)
	}
	// Newest first.
	if activities[0].Action != "updated" {
		t.Errorf("expected most recent action updated, got %q", activities[0].Action)
	}
	foundMove := false
	for _, a := range activities {
		if a.Action == "moved" && a.Detail != nil && strings.Contains(*a.Detail, "Todo") {
			foundMove = true
		}
	}
	if !foundMove {
		t.Errorf("expected a move entry naming the source list, got %+v", activities)
	}
}

func TestBoardAccessControl(t *testing.T) {
	alice := newClient(t, "alice-board-access")
	mallory := newClient(t, "mallory-board-access")

	var org organization
	alice.post("/api/v0/organizations", map[string]string{"name": "Access E2E Org"}, http.StatusCreated, &org)

	var b board
	alice.post(orgPath(org.ID, "boards"), map[string]string{"title": "Private"}, http.StatusCreated, &b)

	// Non-members cannot see or touch the board.
	mallory.get(boardPath(b.ID, "lists"), http.StatusForbidden, nil)
	mallory.do(http.MethodPost, orgPath(org.ID, "boards"), map[string]string{"title": "Intruder"}, http.StatusForbidden, nil)
	mallory.delete(orgPath(org.ID), http.StatusForbidden)
}
