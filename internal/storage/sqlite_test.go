package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
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

func mustSave(t *testing.T, store *Store, r Run) Run {
	t.Helper()
	saved, err := store.SaveRun(r)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return saved
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	saved := mustSave(t, store, Run{Difficulty: "easy", MazeSize: 15, Score: 900})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	got, err := store.RunByID(saved.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil || got.Score != 900 {
		t.Fatalf("expected run to survive reopen, got %+v", got)
	}
}

func TestSaveRunAssignsIdentity(t *testing.T) {
	store := openTestStore(t)

	a := mustSave(t, store, Run{Difficulty: "easy", Score: 10})
	b := mustSave(t, store, Run{Difficulty: "easy", Score: 20})

	if a.ID == 0 || b.ID == 0 || a.ID == b.ID {
		t.Errorf("expected distinct row IDs, got %d and %d", a.ID, b.ID)
	}
	if len(a.RunID) != 36 || a.RunID == b.RunID {
		t.Errorf("expected distinct uuids, got %q and %q", a.RunID, b.RunID)
	}
	if a.CreatedAt.IsZero() {
		t.Error("CreatedAt should be filled in")
	}

	// Explicit run IDs are kept and must be unique.
	c := mustSave(t, store, Run{RunID: "fixed-id", Difficulty: "hard"})
	if c.RunID != "fixed-id" {
		t.Errorf("RunID = %q, expected fixed-id", c.RunID)
	}
	if _, err := store.SaveRun(Run{RunID: "fixed-id", Difficulty: "hard"}); err == nil {
		t.Error("duplicate RunID should fail")
	}
}

func TestRunRoundTrip(t *testing.T) {
	store := openTestStore(t)
	at := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

	want := Run{
		Player:       "alice",
		Difficulty:   "medium",
		MazeSize:     25,
		Seed:         -42,
		Moves:        130,
		Elapsed:      61500 * time.Millisecond,
		Score:        1043,
		ShortestPath: 96,
		CreatedAt:    at,
	}
	saved := mustSave(t, store, want)

	got, err := store.RunByID(saved.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil")
	}
	want.ID = saved.ID
	want.RunID = saved.RunID
	if !got.CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, expected %v", got.CreatedAt, at)
	}
	got.CreatedAt = at
	if *got != want {
		t.Errorf("RunByID() = %+v\nexpected %+v", *got, want)
	}

	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("RunByID(missing) = %v, %v; expected nil, nil", missing, err)
	}
}

func TestTopRunsOrdering(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{Player: "a", Difficulty: "easy", Score: 500, Elapsed: 30 * time.Second, Moves: 40})
	mustSave(t, store, Run{Player: "b", Difficulty: "easy", Score: 900, Elapsed: 50 * time.Second, Moves: 60})
	mustSave(t, store, Run{Player: "c", Difficulty: "easy", Score: 900, Elapsed: 20 * time.Second, Moves: 80})
	mustSave(t, store, Run{Player: "d", Difficulty: "easy", Score: 900, Elapsed: 20 * time.Second, Moves: 50})
	mustSave(t, store, Run{Player: "e", Difficulty: "hard", Score: 2000})

	runs, err := store.TopRuns("easy", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	var order string
	for _, r := range runs {
		order += r.Player
	}
	if order != "dcba" {
		t.Errorf("TopRuns order = %q, expected %q", order, "dcba")
	}

	limited, err := store.TopRuns("easy", 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 runs with limit, got %d", len(limited))
	}

	none, err := store.TopRuns("medium", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no medium runs, got %d", len(none))
	}
}

func TestHighScoreAndRank(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("empty HighScore = %d, expected 0", hs)
	}

	for _, score := range []int{300, 800, 800, 100} {
		mustSave(t, store, Run{Difficulty: "easy", Score: score})
	}

	hs, _ = store.HighScore("easy")
	if hs != 800 {
		t.Errorf("HighScore = %d, expected 800", hs)
	}

	tests := []struct {
		score, rank int
	}{
		{1000, 1},
		{800, 1},
		{500, 3},
		{300, 3},
		{0, 5},
	}
	for _, tc := range tests {
		rank, err := store.Rank("easy", tc.score)
		if err != nil {
			t.Fatalf("Rank() failed: %v", err)
		}
		if rank != tc.rank {
			t.Errorf("Rank(%d) = %d, expected %d", tc.score, rank, tc.rank)
		}
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)
	early := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mustSave(t, store, Run{Difficulty: "medium", Score: 1000, Elapsed: 40 * time.Second, Moves: 120, CreatedAt: early})
	mustSave(t, store, Run{Difficulty: "medium", Score: 600, Elapsed: 25 * time.Second, Moves: 150, CreatedAt: late})
	mustSave(t, store, Run{Difficulty: "hard", Score: 1200, Elapsed: 90 * time.Second, Moves: 300, CreatedAt: early})

	st, err := store.Stats("medium")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 2 || st.HighScore != 1000 || st.AvgScore != 800 {
		t.Errorf("Stats = %+v", st)
	}
	if st.BestTime != 25*time.Second || st.FewestMoves != 120 {
		t.Errorf("BestTime/FewestMoves = %v/%d", st.BestTime, st.FewestMoves)
	}
	if !st.LastPlayed.Equal(late) {
		t.Errorf("LastPlayed = %v, expected %v", st.LastPlayed, late)
	}

	empty, err := store.Stats("easy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty Stats = %+v", empty)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("AllStats() returned %d difficulties, expected 2", len(all))
	}
	if all["hard"].HighScore != 1200 || all["medium"].Runs != 2 {
		t.Errorf("AllStats = hard:%+v medium:%+v", all["hard"], all["medium"])
	}
}

func TestPlayerRuns(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := range 3 {
		mustSave(t, store, Run{Player: "bob", Difficulty: "easy", Score: i, CreatedAt: base.Add(time.Duration(i) * time.Hour)})
	}
	mustSave(t, store, Run{Player: "eve", Difficulty: "easy", Score: 99})

	runs, err := store.PlayerRuns("bob", 0)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs for bob, got %d", len(runs))
	}
	if runs[0].Score != 2 || runs[2].Score != 0 {
		t.Errorf("PlayerRuns should be newest first, got scores %d..%d", runs[0].Score, runs[2].Score)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{Difficulty: "easy", Score: 1})
	mustSave(t, store, Run{Difficulty: "easy", Score: 2})
	mustSave(t, store, Run{Difficulty: "hard", Score: 3})

	n, err := store.ClearRuns("easy")
	if err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("ClearRuns(easy) removed %d, expected 2", n)
	}
	if hs, _ := store.HighScore("hard"); hs != 3 {
		t.Errorf("hard runs should survive, HighScore = %d", hs)
	}

	n, err = store.ClearRuns("")
	if err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("ClearRuns(all) removed %d, expected 1", n)
	}
}

func TestConcurrentSaves(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := range 20 {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if _, err := store.SaveRun(Run{Difficulty: "easy", Score: score}); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent SaveRun failed: %v", err)
	}

	st, err := store.Stats("easy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 20 {
		t.Errorf("expected 20 runs, got %d", st.Runs)
	}
}
