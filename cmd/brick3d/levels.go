package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick3d/internal/config"
	"github.com/vovakirdan/brick3d/internal/games/breakout"
)

var (
	flagShow int
	flagUpTo int
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List layouts and per-level difficulty",
	Long: `Print the layout catalogue together with the difficulty modifiers each
level gets under the selected preset and config.

Examples:
  brick3d levels
  brick3d levels --difficulty hard --up-to 30
  brick3d levels --show 14`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().IntVar(&flagShow, "show", 0, "Draw the layout of this level")
	levelsCmd.Flags().IntVar(&flagUpTo, "up-to", 0, "Last level to list (default: number of layouts)")
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		logger.Warn("using default config", "err", err)
	}
	engine := config.NewDifficultyEngine(cfg.Difficulty)
	gen := breakout.NewLevelGenerator(engine, &cfg)

	if flagShow > 0 {
		showLayout(flagShow, engine, gen)
		return nil
	}

	last := flagUpTo
	if last <= 0 {
		last = breakout.LevelCount()
	}

	fmt.Printf("  %-5s  %-18s  %-6s  %-6s  %-6s  %-6s  %-5s  %-8s  %s\n",
		"Level", "Layout", "Bricks", "Radius", "Paddle", "Speed", "Hits", "Obstacle", "Unlocked")
	for level := 1; level <= last; level++ {
		layout := breakout.LayoutFor(level)
		mods := engine.Modifiers(level)
		name := layout.Name
		if layout.Boss {
			name += " *"
		}
		fmt.Printf("  %-5d  %-18s  %-6d  %-6.2f  %-6.2f  %-6.2f  x%-4.2f  %-8s  %s\n",
			level, name, len(layout.Cells),
			mods.BallRadius, mods.PaddleWidth, mods.BallSpeed, mods.BrickHitsMultiplier,
			fmt.Sprintf("%.0f%%", engine.ObstacleChance(level)*100),
			kindNames(gen.UnlockedObstacles(level)))
	}
	fmt.Println()
	fmt.Println("  * boss layout: marked cells always become an unlocked obstacle")
	return nil
}

func showLayout(level int, engine *config.DifficultyEngine, gen *breakout.LevelGenerator) {
	layout := breakout.LayoutFor(level)
	fmt.Printf("Level %d - %s\n\n", level, layout.Name)
	for _, row := range layout.Grid() {
		fmt.Printf("  %s\n", strings.Join(strings.Split(row, ""), " "))
	}
	fmt.Println()
	fmt.Println("  w weak  n normal  s strong  a armored  e explosive  h shrink  O obstacle")
	fmt.Println()
	for _, c := range engine.Changes(level) {
		fmt.Printf("  %s\n", c.Message)
	}
	fmt.Printf("  Obstacles unlocked: %s\n", kindNames(gen.UnlockedObstacles(level)))
}

func kindNames(kinds []breakout.BrickKind) string {
	if len(kinds) == 0 {
		return "-"
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ",")
}
