package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/.skyhop/scores.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".skyhop", "scores.db"); got != want {
		t.Errorf("ExpandPath() = %q, want %q", got, want)
	}

	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}

func TestStoreKV(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get("flappy_best"); err != nil || ok {
		t.Fatalf("Get() on empty store = ok %v, err %v", ok, err)
	}

	if err := store.Set("flappy_best", "12"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("flappy_best", "15"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	v, ok, err := store.Get("flappy_best")
	if err != nil || !ok || v != "15" {
		t.Errorf("Get() = %q, %v, %v; want 15", v, ok, err)
	}

	if err := store.Delete("flappy_best"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.Get("flappy_best"); ok {
		t.Error("key survived Delete()")
	}
	if err := store.Delete("missing"); err != nil {
		t.Errorf("Delete() of missing key: %v", err)
	}
}

func TestStoreKVSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Set("flappy_best", "7")
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if v, _, _ := store.Get("flappy_best"); v != "7" {
		t.Errorf("Get() after reopen = %q, want 7", v)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("flappy", s, "pipe"); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("other", 500, "ground")

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].Cause != "pipe" {
		t.Errorf("Cause = %q, want pipe", scores[0].Cause)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		store.SaveScore("flappy", (i+1)*10, "ground")
	}

	scores, err := store.TopScores("flappy", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, _ := store.AllScores("flappy")
	if len(all) != 5 {
		t.Errorf("AllScores() returned %d, want 5", len(all))
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	if high, err := store.HighScore("flappy"); err != nil || high != 0 {
		t.Fatalf("HighScore() on empty = %d, %v", high, err)
	}

	store.SaveScore("flappy", 3, "pipe")
	store.SaveScore("flappy", 9, "pipe")
	store.SaveScore("other", 30, "pipe")

	if high, _ := store.HighScore("flappy"); high != 9 {
		t.Errorf("HighScore() = %d, want 9", high)
	}

	if err := store.ClearScores("flappy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("flappy", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("Clearing one game touched another")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("flappy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("flappy", 4, "pipe")
	store.SaveScore("flappy", 8, "ground")

	stats, err = store.GetGameStats("flappy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 8 || stats.AvgScore != 6 || stats.TotalScore != 12 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()
	if _, ok, _ := kv.Get("k"); ok {
		t.Error("empty store returned a value")
	}
	kv.Set("k", "v")
	if v, ok, _ := kv.Get("k"); !ok || v != "v" {
		t.Errorf("Get() = %q, %v", v, ok)
	}
	kv.Delete("k")
	if _, ok, _ := kv.Get("k"); ok {
		t.Error("key survived Delete()")
	}
}

func TestExportCSV(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("flappy", 5, "pipe")
	store.SaveScore("flappy", 11, "ground")

	entries, err := store.AllScores("flappy")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	var sb strings.Builder
	if err := ExportCSV(&sb, entries); err != nil {
		t.Fatalf("ExportCSV() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2:\n%s", len(lines), sb.String())
	}
	if lines[0] != "rank,score,cause,played_at" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,11,ground,") || !strings.HasPrefix(lines[2], "2,5,pipe,") {
		t.Errorf("rows = %q", lines[1:])
	}
}

func TestSummarize(t *testing.T) {
	if got := Summarize(nil); got != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v", got)
	}

	one := Summarize([]ScoreEntry{{Score: 7}})
	if one.Runs != 1 || one.Mean != 7 || one.StdDev != 0 || one.Median != 7 || one.Best != 7 {
		t.Errorf("single run summary = %+v", one)
	}

	var entries []ScoreEntry
	for i := 1; i <= 10; i++ {
		entries = append(entries, ScoreEntry{Score: i})
	}
	s := Summarize(entries)
	if s.Runs != 10 || s.Best != 10 || s.Mean != 5.5 {
		t.Errorf("summary = %+v", s)
	}
	if s.Median != 5 || s.P90 != 9 {
		t.Errorf("median/p90 = %v/%v, want 5/9", s.Median, s.P90)
	}
	if s.StdDev < 3.02 || s.StdDev > 3.03 {
		t.Errorf("stddev = %v, want ~3.03", s.StdDev)
	}
}
