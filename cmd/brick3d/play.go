package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brick3d/internal/audio"
	"github.com/vovakirdan/brick3d/internal/core"
	"github.com/vovakirdan/brick3d/internal/games/breakout"
	"github.com/vovakirdan/brick3d/internal/platform/tui"
	"github.com/vovakirdan/brick3d/internal/registry"
	"github.com/vovakirdan/brick3d/internal/storage"
)

var (
	flagLevel  int
	flagMute   bool
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play brick3d",
	Long: `Start the menu, or jump straight into a mode.

Modes:
  brick3d          - Campaign, twenty layouts then a win
  brick3d_endless  - Layouts keep cycling while difficulty keeps rising

Controls:
  Left/Right, A/D  - Move paddle
  Space/Up         - Launch ball
  P                - Pause
  Esc/B            - Back to menu (when paused or finished)
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  brick3d play
  brick3d play brick3d --level 7
  brick3d play brick3d_endless --difficulty hard --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level (0 = configured start level)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name stored with your scores")
}

func runPlay(_ *cobra.Command, args []string) error {
	mode := ""
	if len(args) == 1 {
		mode = args[0]
		if !registry.Exists(mode) {
			return fmt.Errorf("unknown mode %q (known: %s, %s)", mode, breakout.IDCampaign, breakout.IDEndless)
		}
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var sinks breakout.Sinks
	if !flagMute {
		player := audio.NewPlayer(logger.WithPrefix("audio"))
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer player.Close()
			sinks.Audio = player
		}
	}
	configureWorlds(sinks, flagLevel)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if mode == "" {
		return tui.Run(store, cfg, flagPlayer)
	}

	game, err := registry.Create(mode)
	if err != nil {
		return err
	}
	final, err := tui.RunGame(game, store, cfg, flagPlayer)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("game finished", "mode", mode, "score", final.Score, "level", final.Level)
	return nil
}
