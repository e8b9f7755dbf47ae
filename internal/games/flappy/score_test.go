package flappy

import (
	"errors"
	"testing"

	"github.com/vovakirdan/skyhop/internal/core"
)

var errDiskFull = errors.New("disk full")

// brokenKV fails every operation.
type brokenKV struct{}

func (brokenKV) Get(string) (string, bool, error) { return "", false, errDiskFull }
func (brokenKV) Set(string, string) error         { return errDiskFull }

// readOnlyKV serves a fixed value and refuses writes.
type readOnlyKV string

func (r readOnlyKV) Get(string) (string, bool, error) { return string(r), true, nil }
func (readOnlyKV) Set(string, string) error           { return errDiskFull }

func TestLoadBest(t *testing.T) {
	tests := []struct {
		name  string
		store KV
		want  int
	}{
		{"nil store", nil, 0},
		{"missing key", mapKV{}, 0},
		{"valid", mapKV{"flappy_best": "17"}, 17},
		{"not a number", mapKV{"flappy_best": "lots"}, 0},
		{"empty", mapKV{"flappy_best": ""}, 0},
		{"negative", mapKV{"flappy_best": "-4"}, 0},
		{"read error", brokenKV{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScorer(tt.store, "flappy_best")
			if s.Best() != tt.want {
				t.Errorf("Best() = %d, want %d", s.Best(), tt.want)
			}
		})
	}
}

func TestBestNeverDecreases(t *testing.T) {
	store := mapKV{"flappy_best": "5"}
	s := NewScorer(store, "flappy_best")

	for _, run := range []int{3, 8, 2, 8, 9} {
		s.Reset()
		for i := 0; i < run; i++ {
			s.Point()
		}
		before := s.Best()
		newBest, err := s.Finish()
		if err != nil {
			t.Fatalf("Finish: %v", err)
		}
		if s.Best() < before {
			t.Fatalf("best dropped from %d to %d", before, s.Best())
		}
		if newBest != (run > before) {
			t.Errorf("run %d: newBest = %v with previous best %d", run, newBest, before)
		}
	}
	if s.Best() != 9 || store["flappy_best"] != "9" {
		t.Errorf("best = %d, stored %q", s.Best(), store["flappy_best"])
	}
}

func TestTieIsNotNewBest(t *testing.T) {
	store := mapKV{"flappy_best": "4"}
	s := NewScorer(store, "flappy_best")
	for i := 0; i < 4; i++ {
		s.Point()
	}
	newBest, _ := s.Finish()
	if newBest {
		t.Error("equal score reported as new best")
	}
}

func TestFinishPersistFailure(t *testing.T) {
	s := NewScorer(readOnlyKV("1"), "flappy_best")
	s.Point()
	s.Point()

	newBest, err := s.Finish()
	if !newBest {
		t.Error("expected new best")
	}
	if !errors.Is(err, errDiskFull) {
		t.Errorf("err = %v, want wrapped disk full", err)
	}
	if s.Best() != 2 {
		t.Errorf("in-memory best = %d, want 2", s.Best())
	}
}

func TestPersistFailureEvent(t *testing.T) {
	g, clock := newTestGame(t, WithStore(brokenKV{}))
	step(g, clock, core.ActionJump)
	g.scorer.Point()

	res := killOnGround(t, g, clock)
	if !res.Has(core.EventGameOver) || !res.Has(core.EventPersistFailed) {
		t.Fatalf("events = %v", res.Events)
	}
	if res.State.Best != 1 {
		t.Errorf("best = %d, want 1", res.State.Best)
	}
	for _, e := range res.Events {
		if e.Kind == core.EventPersistFailed && !errors.Is(e.Err, errDiskFull) {
			t.Errorf("event err = %v", e.Err)
		}
	}
}

func TestBestLoadedOnReset(t *testing.T) {
	g, _ := newTestGame(t, WithStore(mapKV{"flappy_best": "42"}))
	if g.State().Best != 42 {
		t.Errorf("best = %d, want 42", g.State().Best)
	}
}

func TestFinishAdoptsHigherStoredBest(t *testing.T) {
	store := mapKV{}
	s := NewScorer(store, "flappy_best")
	store["flappy_best"] = "10"
	for i := 0; i < 3; i++ {
		s.Point()
	}

	newBest, err := s.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if newBest {
		t.Error("score below the stored best reported as new best")
	}
	if s.Best() != 10 {
		t.Errorf("best = %d, want 10", s.Best())
	}
	if store["flappy_best"] != "10" {
		t.Errorf("stored best = %q, want 10", store["flappy_best"])
	}
}

func TestSharedStoreBestNeverDecreases(t *testing.T) {
	store := mapKV{}
	a, clockA := newTestGame(t, WithStore(store))
	b, clockB := newTestGame(t, WithStore(store))

	step(b, clockB, core.ActionJump)
	for i := 0; i < 10; i++ {
		b.scorer.Point()
	}
	killOnGround(t, b, clockB)
	if store["flappy_best"] != "10" {
		t.Fatalf("stored best after first session = %q, want 10", store["flappy_best"])
	}

	step(a, clockA, core.ActionJump)
	for i := 0; i < 3; i++ {
		a.scorer.Point()
	}
	res := killOnGround(t, a, clockA)
	if store["flappy_best"] != "10" {
		t.Errorf("stored best = %q, want 10", store["flappy_best"])
	}
	if res.State.Best != 10 {
		t.Errorf("second session best = %d, want 10", res.State.Best)
	}
	for _, e := range res.Events {
		if e.Kind == core.EventGameOver && e.NewBest {
			t.Error("second session reported a new best")
		}
	}
}
