package flappy

import (
	"fmt"
	"strconv"
)

// KV is the key-value persistence the best score is kept in.
// storage.Store and storage.MemoryKV implement it.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Scorer counts cleared pipes and keeps the best score.
type Scorer struct {
	score int
	best  int
	store KV
	key   string
}

// NewScorer creates a scorer and reads the stored best score once.
// A nil store keeps the best score in memory only.
func NewScorer(store KV, key string) *Scorer {
	return &Scorer{
		best:  loadBest(store, key),
		store: store,
		key:   key,
	}
}

// loadBest reads the persisted best score.
// Missing, unreadable or malformed values count as zero.
func loadBest(store KV, key string) int {
	if store == nil {
		return 0
	}
	raw, ok, err := store.Get(key)
	if err != nil || !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Point adds one cleared pipe to the current score.
func (s *Scorer) Point() {
	s.score++
}

// Score returns the current run's score.
func (s *Scorer) Score() int {
	return s.score
}

// Best returns the best score seen so far.
func (s *Scorer) Best() int {
	return s.best
}

// Reset zeroes the current score. The best score is kept.
func (s *Scorer) Reset() {
	s.score = 0
}

// Finish closes the run: if the score beat the best it becomes the new best
// and is written to the store. The stored value is read again first, since
// other sessions may share the store, and a higher stored best is adopted
// instead of being overwritten. The in-memory best is raised even if the
// write fails.
func (s *Scorer) Finish() (newBest bool, err error) {
	if stored := loadBest(s.store, s.key); stored > s.best {
		s.best = stored
	}
	if s.score <= s.best {
		return false, nil
	}
	s.best = s.score
	if s.store == nil {
		return true, nil
	}
	if err := s.store.Set(s.key, strconv.Itoa(s.best)); err != nil {
		return true, fmt.Errorf("flappy: cannot persist best score: %w", err)
	}
	return true, nil
}
