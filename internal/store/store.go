// Package store owns the client-side set of papers.
//
// The set is mutated only from the UI dispatch loop, one message at a
// time, so the store itself carries no locking. Refresh batches merge
// with last-write-wins semantics; the display order is re-derived on
// demand because the set is small and changes often.
package store

import (
	"sort"

	"github.com/subitlab-buf/subboard-mng-gui/internal/domain"
)

// Store maps paper ids to records, remembering first-seen order so that
// papers with equal submission times keep a stable relative position
// across re-sorts.
type Store struct {
	papers map[int]domain.Paper
	seen   []int
}

// New returns an empty store.
func New() *Store {
	return &Store{papers: make(map[int]domain.Paper)}
}

// Upsert merges a refresh batch: each record is inserted, or replaces
// the existing record with the same id in full. Applying the same batch
// twice is a no-op.
func (s *Store) Upsert(batch []domain.Paper) {
	for _, p := range batch {
		if _, ok := s.papers[p.ID]; !ok {
			s.seen = append(s.seen, p.ID)
		}
		s.papers[p.ID] = p
	}
}

// Get looks up a paper by id.
func (s *Store) Get(id int) (domain.Paper, bool) {
	p, ok := s.papers[id]
	return p, ok
}

// Len reports the number of papers held.
func (s *Store) Len() int {
	return len(s.papers)
}

// ClearDecided removes every paper whose decision is no longer pending.
// Pending entries are untouched. Idempotent.
func (s *Store) ClearDecided() {
	kept := s.seen[:0]
	for _, id := range s.seen {
		p, ok := s.papers[id]
		if !ok {
			continue
		}
		if p.Pending() {
			kept = append(kept, id)
			continue
		}
		delete(s.papers, id)
	}
	s.seen = kept
}

// OrderedDescending returns the papers sorted by submission time, most
// recent first. Ties keep first-seen order.
func (s *Store) OrderedDescending() []domain.Paper {
	ordered := make([]domain.Paper, 0, len(s.seen))
	for _, id := range s.seen {
		if p, ok := s.papers[id]; ok {
			ordered = append(ordered, p)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SubmittedAt.After(ordered[j].SubmittedAt)
	})
	return ordered
}

// Neighbors returns the ids immediately before and after id in the
// descending order. The booleans report whether such a neighbor exists;
// both are false when id is absent.
func (s *Store) Neighbors(id int) (prev int, next int, hasPrev, hasNext bool) {
	ordered := s.OrderedDescending()
	for i, p := range ordered {
		if p.ID != id {
			continue
		}
		if i > 0 {
			prev, hasPrev = ordered[i-1].ID, true
		}
		if i+1 < len(ordered) {
			next, hasNext = ordered[i+1].ID, true
		}
		return prev, next, hasPrev, hasNext
	}
	return 0, 0, false, false
}

// First returns the id of the most recent paper, if any.
func (s *Store) First() (int, bool) {
	ordered := s.OrderedDescending()
	if len(ordered) == 0 {
		return 0, false
	}
	return ordered[0].ID, true
}
