// brick3d is a 3D brick-breaker simulation played in the terminal.
//
// Usage:
//
//	brick3d play [mode]       - Play (menu when no mode is given)
//	brick3d simulate [mode]   - Run the autopilot headless and report
//	brick3d levels            - List layouts and per-level difficulty
//	brick3d scores [mode]     - Show high scores and recorded runs
//	brick3d inspect <file>    - Decode a saved snapshot
//	brick3d serve             - Start the SSH server
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: 60)
//	--seed <value>        - RNG seed for reproducible runs
//	--db <path>           - Database path (default: ~/.brick3d/brick3d.db)
//	--config <path>       - Custom breakout.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick3d/internal/config"
	"github.com/vovakirdan/brick3d/internal/games/breakout"
	"github.com/vovakirdan/brick3d/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brick3d",
	Short: "Brick3D - a 3D brick breaker for your terminal",
	Long: `Brick3D simulates a brick breaker in a box-shaped field: a paddle, one or
more balls and twenty layouts of special bricks that get tougher level by
level.

Examples:
  brick3d play
  brick3d play brick3d_endless --difficulty hard
  brick3d simulate --seed 42 --ticks 18000
  brick3d levels --show 20
  brick3d serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to the scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to a custom breakout.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup validates the global flags, builds the logger and hands the
// configuration to registry-created worlds.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "brick3d",
		Level:           level,
	})

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	configureWorlds(breakout.Sinks{}, 0)
	return nil
}

// configureWorlds applies the global flags plus the given sinks and start
// level to worlds created through the registry.
func configureWorlds(sinks breakout.Sinks, startLevel int) {
	breakout.Configure(breakout.Settings{
		ConfigPath: flagConfig,
		Preset:     config.ParsePreset(flagDifficulty),
		StartLevel: startLevel,
		Logger:     logger.WithPrefix("world"),
		Sinks:      sinks,
	})
}

// loadConfig resolves the same configuration a world would use.
func loadConfig() (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return cfg, err
	}
	if p := config.ParsePreset(flagDifficulty); p != "" {
		config.ApplyBreakoutPreset(&cfg, p)
	}
	return cfg, nil
}

func seedOrNow() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
