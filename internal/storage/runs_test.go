package storage

import "testing"

func TestStoreSaveRunAndFetch(t *testing.T) {
	store := openTestStore(t)

	in := RunRecord{
		Mode:    "brick3d",
		Seed:    42,
		Preset:  "normal",
		Ticks:   3000,
		Score:   1450,
		Level:   2,
		Bricks:  61,
		Outcome: OutcomeTimeout,
		Hash:    "00000000deadbeef",
	}
	id, err := store.SaveRun(in)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	in.ID = id
	in.CreatedAt = got.CreatedAt
	if *got != in {
		t.Errorf("RunByID() = %+v, expected %+v", *got, in)
	}

	missing, err := store.RunByID(id + 100)
	if err != nil {
		t.Fatalf("RunByID() on missing row failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for missing run, got %+v", missing)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		mode := "brick3d"
		if i%2 == 1 {
			mode = "brick3d_endless"
		}
		store.SaveRun(RunRecord{Mode: mode, Seed: int64(i), Ticks: 10, Outcome: OutcomeGameOver, Hash: "h"})
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("Expected 5 runs, got %d", len(all))
	}
	if all[0].Seed != 4 {
		t.Errorf("Expected newest run first (seed 4), got seed %d", all[0].Seed)
	}

	endless, err := store.RecentRuns("brick3d_endless", 1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(endless) != 1 || endless[0].Seed != 3 {
		t.Errorf("Expected only the latest endless run (seed 3), got %+v", endless)
	}
}

func TestStoreRunsBySeed(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Mode: "brick3d", Seed: 7, Ticks: 100, Outcome: OutcomeTimeout, Hash: "a"})
	store.SaveRun(RunRecord{Mode: "brick3d", Seed: 8, Ticks: 100, Outcome: OutcomeTimeout, Hash: "b"})
	store.SaveRun(RunRecord{Mode: "brick3d", Seed: 7, Ticks: 100, Outcome: OutcomeTimeout, Hash: "a"})

	runs, err := store.RunsBySeed("brick3d", 7)
	if err != nil {
		t.Fatalf("RunsBySeed() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs for seed 7, got %d", len(runs))
	}
	if runs[0].ID >= runs[1].ID {
		t.Error("Expected oldest run first")
	}
	if runs[0].Hash != runs[1].Hash {
		t.Errorf("Replayed hashes differ: %q vs %q", runs[0].Hash, runs[1].Hash)
	}
}
