package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick3d/internal/config"
	"github.com/vovakirdan/brick3d/internal/core"
	"github.com/vovakirdan/brick3d/internal/games/breakout"
	"github.com/vovakirdan/brick3d/internal/storage"
)

var (
	flagTicks  int
	flagRuns   int
	flagTrace  bool
	flagSave   string
	flagRecord bool
	flagOffset float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [mode]",
	Short: "Run the autopilot headless",
	Long: `Play the game with the built-in autopilot, without a terminal UI.

Each run uses seed, seed+1, ... so results are reproducible. With --record
the results go to the runs table; running the same seed again must produce
the same hash.

Examples:
  brick3d simulate --seed 42
  brick3d simulate brick3d_endless --runs 10 --ticks 36000 --record
  brick3d simulate --seed 7 --ticks 600 --save run.snap
  brick3d simulate --seed 7 --ticks 120 --trace --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.IntVar(&flagTicks, "ticks", 60*60*5, "Maximum ticks per run")
	f.IntVar(&flagRuns, "runs", 1, "Number of runs")
	f.BoolVar(&flagTrace, "trace", false, "Log every spawn, removal, sound and burst at debug level")
	f.StringVar(&flagSave, "save", "", "Write the final snapshot of the last run to this file (msgpack)")
	f.BoolVar(&flagRecord, "record", false, "Store results in the runs table")
	f.Float64Var(&flagOffset, "aim", 0.3, "Autopilot aim offset in paddle half-widths")
	f.IntVar(&flagLevel, "level", 0, "Start level (0 = configured start level)")
}

// simOptions are the inputs of one headless run.
type simOptions struct {
	Mode     breakout.GameMode
	Config   config.BreakoutConfig
	Seed     int64
	TickRate int
	MaxTicks int
	Level    int
	Aim      float64
	Sinks    breakout.Sinks
	Logger   *log.Logger
}

// simResult summarises a finished run.
type simResult struct {
	Seed     int64
	Ticks    int
	State    core.GameState
	Bricks   int
	Outcome  string
	Snapshot breakout.Snapshot
}

func (r simResult) hash() string {
	return fmt.Sprintf("%016x", r.Snapshot.Hash())
}

func simulate(o simOptions) simResult {
	opts := []breakout.Option{breakout.WithSinks(o.Sinks), breakout.WithStartLevel(o.Level)}
	if o.Logger != nil {
		opts = append(opts, breakout.WithLogger(o.Logger))
	}
	w := breakout.NewWorld(o.Mode, o.Config, opts...)
	w.Reset(core.RuntimeConfig{TickRate: o.TickRate, Seed: o.Seed})

	pilot := &breakout.Autopilot{Offset: o.Aim}
	ticks := pilot.Play(w, o.MaxTicks)

	st := w.State()
	outcome := storage.OutcomeTimeout
	switch {
	case st.Won:
		outcome = storage.OutcomeWin
	case st.GameOver:
		outcome = storage.OutcomeGameOver
	}
	return simResult{
		Seed:     o.Seed,
		Ticks:    ticks,
		State:    st,
		Bricks:   w.BricksDestroyed(),
		Outcome:  outcome,
		Snapshot: w.Snapshot(),
	}
}

func parseMode(args []string) (breakout.GameMode, string, error) {
	if len(args) == 0 || args[0] == breakout.IDCampaign {
		return breakout.ModeCampaign, breakout.IDCampaign, nil
	}
	if args[0] == breakout.IDEndless {
		return breakout.ModeEndless, breakout.IDEndless, nil
	}
	return 0, "", fmt.Errorf("unknown mode %q (known: %s, %s)", args[0], breakout.IDCampaign, breakout.IDEndless)
}

func runSimulate(_ *cobra.Command, args []string) error {
	mode, modeID, err := parseMode(args)
	if err != nil {
		return err
	}
	if flagRuns < 1 {
		return fmt.Errorf("--runs must be at least 1")
	}

	cfg, err := loadConfig()
	if err != nil {
		logger.Warn("using default config", "err", err)
	}

	var sinks breakout.Sinks
	if flagTrace {
		trace := breakout.NewLogScene(logger)
		sinks = breakout.Sinks{Scene: trace, Audio: trace, Particles: trace}
	}

	var store *storage.Store
	if flagRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	base := seedOrNow()
	var last simResult
	fmt.Printf("  %-20s  %-8s  %-8s  %-6s  %-7s  %-9s  %s\n", "Seed", "Ticks", "Score", "Level", "Bricks", "Outcome", "Hash")
	for i := range flagRuns {
		last = simulate(simOptions{
			Mode:     mode,
			Config:   cfg,
			Seed:     base + int64(i),
			TickRate: flagFPS,
			MaxTicks: flagTicks,
			Level:    flagLevel,
			Aim:      flagOffset,
			Sinks:    sinks,
			Logger:   logger.WithPrefix("world"),
		})
		fmt.Printf("  %-20d  %-8d  %-8d  %-6d  %-7d  %-9s  %s\n",
			last.Seed, last.Ticks, last.State.Score, last.State.Level, last.Bricks, last.Outcome, last.hash())

		if store != nil {
			if err := recordRun(store, modeID, last); err != nil {
				return err
			}
		}
	}

	if flagSave != "" {
		data, err := last.Snapshot.Encode()
		if err != nil {
			return fmt.Errorf("encoding snapshot: %w", err)
		}
		if err := os.WriteFile(flagSave, data, 0o644); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
		logger.Info("snapshot saved", "file", flagSave, "bytes", len(data), "tick", last.Snapshot.Tick)
	}
	return nil
}

// recordRun stores the run and warns when an earlier run with the same
// seed and length ended with a different hash.
func recordRun(store *storage.Store, modeID string, r simResult) error {
	previous, err := store.RunsBySeed(modeID, r.Seed)
	if err != nil {
		return err
	}
	for _, p := range previous {
		if p.Ticks == r.Ticks && p.Preset == flagDifficulty && p.Hash != r.hash() {
			logger.Warn("replay diverged", "seed", r.Seed, "previous", p.Hash, "now", r.hash())
		}
	}

	_, err = store.SaveRun(storage.RunRecord{
		Mode:    modeID,
		Seed:    r.Seed,
		Preset:  flagDifficulty,
		Ticks:   r.Ticks,
		Score:   r.State.Score,
		Level:   r.State.Level,
		Bricks:  r.Bricks,
		Outcome: r.Outcome,
		Hash:    r.hash(),
	})
	if err != nil {
		return err
	}
	if r.State.Score > 0 && r.Outcome != storage.OutcomeTimeout {
		_, err = store.SaveScore(modeID, "autopilot", r.State.Score, r.State.Level)
	}
	return err
}
