// SPDX-License-Identifier: MIT
// Package: gainsearch/gain
//
// tracker.go: ordered (score desc, id asc) candidate index.
//
// Complexity:
//   • Set / Add / Remove: O(log n).
//   • Best: O(log n) (leftmost node).
//   • Score / Contains: O(1).

package gain

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// ErrUnknownCandidate indicates an update to an id that is not tracked.
var ErrUnknownCandidate = errors.New("gain: unknown candidate")

// entry is the tree key; it is immutable once inserted.
type entry struct {
	score int64
	id    int
}

// compareEntries orders by score descending, then id ascending.
func compareEntries(a, b interface{}) int {
	x, y := a.(entry), b.(entry)
	switch {
	case x.score > y.score:
		return -1
	case x.score < y.score:
		return 1
	case x.id < y.id:
		return -1
	case x.id > y.id:
		return 1
	}
	return 0
}

// Tracker is an ordered score index over integer candidates.
type Tracker struct {
	tree   redblacktree.Tree
	scores map[int]int64
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		tree:   redblacktree.Tree{Comparator: compareEntries},
		scores: make(map[int]int64),
	}
}

// Len reports the number of tracked candidates.
func (t *Tracker) Len() int { return len(t.scores) }

// Contains reports whether id is tracked.
func (t *Tracker) Contains(id int) bool {
	_, ok := t.scores[id]
	return ok
}

// Score returns the current score of id.
func (t *Tracker) Score(id int) (int64, bool) {
	s, ok := t.scores[id]
	return s, ok
}

// Set inserts id or replaces its score.
func (t *Tracker) Set(id int, score int64) {
	if old, ok := t.scores[id]; ok {
		if old == score {
			return
		}
		t.tree.Remove(entry{score: old, id: id})
	}
	t.scores[id] = score
	t.tree.Put(entry{score: score, id: id}, nil)
}

// Add shifts the score of a tracked id by delta.
func (t *Tracker) Add(id int, delta int64) error {
	old, ok := t.scores[id]
	if !ok {
		return fmt.Errorf("Add: id=%d: %w", id, ErrUnknownCandidate)
	}
	t.Set(id, old+delta)
	return nil
}

// Remove drops id; removing an untracked id is a no-op.
func (t *Tracker) Remove(id int) {
	old, ok := t.scores[id]
	if !ok {
		return
	}
	t.tree.Remove(entry{score: old, id: id})
	delete(t.scores, id)
}

// Best returns the highest-scoring candidate (lowest id on ties).
func (t *Tracker) Best() (id int, score int64, ok bool) {
	node := t.tree.Left()
	if node == nil {
		return 0, 0, false
	}
	e := node.Key.(entry)
	return e.id, e.score, true
}

// Ranked returns up to k candidates in tracker order. k <= 0 returns all.
func (t *Tracker) Ranked(k int) []int {
	if k <= 0 || k > len(t.scores) {
		k = len(t.scores)
	}
	out := make([]int, 0, k)
	it := t.tree.Iterator()
	for len(out) < k && it.Next() {
		out = append(out, it.Key().(entry).id)
	}
	return out
}

// Ties returns every candidate sharing the best score, ascending by id.
func (t *Tracker) Ties() []int {
	it := t.tree.Iterator()
	if !it.Next() {
		return nil
	}
	top := it.Key().(entry)
	out := []int{top.id}
	for it.Next() {
		e := it.Key().(entry)
		if e.score != top.score {
			break
		}
		out = append(out, e.id)
	}
	return out
}
