package main

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick3d/internal/config"
	"github.com/vovakirdan/brick3d/internal/games/breakout"
	"github.com/vovakirdan/brick3d/internal/storage"
)

func testSimOptions(seed int64) simOptions {
	return simOptions{
		Mode:     breakout.ModeCampaign,
		Config:   config.DefaultBreakoutConfig(),
		Seed:     seed,
		TickRate: 60,
		MaxTicks: 1200,
		Aim:      0.3,
	}
}

func TestSimulateIsReproducible(t *testing.T) {
	a := simulate(testSimOptions(11))
	b := simulate(testSimOptions(11))

	if a.hash() != b.hash() {
		t.Errorf("same seed gave hashes %s and %s", a.hash(), b.hash())
	}
	if a.Ticks != b.Ticks || a.State != b.State {
		t.Errorf("same seed diverged: %+v vs %+v", a.State, b.State)
	}
	if a.Ticks > 1200 {
		t.Errorf("ran %d ticks, limit was 1200", a.Ticks)
	}
}

func TestSimulateOutcome(t *testing.T) {
	r := simulate(testSimOptions(5))
	switch {
	case r.State.GameOver && r.Outcome != storage.OutcomeGameOver:
		t.Errorf("outcome = %s for a lost game", r.Outcome)
	case r.State.Won && r.Outcome != storage.OutcomeWin:
		t.Errorf("outcome = %s for a won game", r.Outcome)
	case !r.State.GameOver && !r.State.Won && r.Outcome != storage.OutcomeTimeout:
		t.Errorf("outcome = %s for an unfinished game", r.Outcome)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		args     []string
		expected breakout.GameMode
		wantErr  bool
	}{
		{nil, breakout.ModeCampaign, false},
		{[]string{breakout.IDCampaign}, breakout.ModeCampaign, false},
		{[]string{breakout.IDEndless}, breakout.ModeEndless, false},
		{[]string{"pong"}, 0, true},
	}
	for _, tt := range tests {
		mode, _, err := parseMode(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseMode(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && mode != tt.expected {
			t.Errorf("parseMode(%v) = %v, expected %v", tt.args, mode, tt.expected)
		}
	}
}

func TestRecordRun(t *testing.T) {
	logger = log.New(io.Discard)
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	r := simulate(testSimOptions(3))
	if err := recordRun(store, breakout.IDCampaign, r); err != nil {
		t.Fatalf("recordRun() failed: %v", err)
	}

	runs, err := store.RunsBySeed(breakout.IDCampaign, 3)
	if err != nil {
		t.Fatalf("RunsBySeed() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("stored %d runs, expected 1", len(runs))
	}
	if runs[0].Hash != r.hash() || runs[0].Score != r.State.Score {
		t.Errorf("stored %+v, expected hash %s score %d", runs[0], r.hash(), r.State.Score)
	}
}
