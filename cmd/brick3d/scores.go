package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick3d/internal/games/breakout"
	"github.com/vovakirdan/brick3d/internal/registry"
	"github.com/vovakirdan/brick3d/internal/storage"
)

var (
	flagLimit    int
	flagShowRuns bool
	flagClear    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the best scores of a mode, and optionally the latest
recorded simulation runs.

Examples:
  brick3d scores
  brick3d scores brick3d_endless --limit 20
  brick3d scores --runs`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagShowRuns, "runs", false, "Also list recorded simulation runs")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	mode := breakout.IDCampaign
	if len(args) == 1 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q", mode)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(mode); err != nil {
			return err
		}
		fmt.Printf("Scores for %s cleared.\n", mode)
		return nil
	}

	scores, err := store.TopScores(mode, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", mode)
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'brick3d play %s' to set the first one!\n", mode)
	} else {
		fmt.Printf("  %-4s  %-10s  %-5s  %-12s  %s\n", "Rank", "Score", "Level", "Player", "Date")
		fmt.Printf("  %-4s  %-10s  %-5s  %-12s  %s\n", "----", "-----", "-----", "------", "----")
		for i, e := range scores {
			fmt.Printf("  %-4d  %-10d  %-5d  %-12s  %s\n",
				i+1, e.Score, e.Level, e.Player, e.CreatedAt.Format("2006-01-02 15:04"))
		}

		if stats, err := store.Stats(mode); err == nil {
			fmt.Printf("\n  %d games, average %.0f, best level %d\n", stats.GamesCount, stats.AvgScore, stats.BestLevel)
		}
	}

	if !flagShowRuns {
		return nil
	}

	runs, err := store.RecentRuns(mode, flagLimit)
	if err != nil {
		return err
	}
	fmt.Printf("\nRecent runs - %s\n\n", mode)
	if len(runs) == 0 {
		fmt.Println("No runs recorded. Use 'brick3d simulate --record'.")
		return nil
	}
	fmt.Printf("  %-5s  %-20s  %-7s  %-8s  %-8s  %-5s  %-9s  %s\n", "ID", "Seed", "Preset", "Ticks", "Score", "Level", "Outcome", "Hash")
	for _, r := range runs {
		preset := r.Preset
		if preset == "" {
			preset = "-"
		}
		fmt.Printf("  %-5d  %-20d  %-7s  %-8d  %-8d  %-5d  %-9s  %s\n",
			r.ID, r.Seed, preset, r.Ticks, r.Score, r.Level, r.Outcome, r.Hash)
	}
	return nil
}
