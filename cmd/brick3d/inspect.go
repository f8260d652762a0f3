package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick3d/internal/games/breakout"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Decode a saved snapshot",
	Long: `Print the contents of a snapshot written by 'brick3d simulate --save'.

Example:
  brick3d inspect run.snap`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	snap, err := breakout.DecodeSnapshot(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", args[0], err)
	}

	fmt.Printf("Snapshot v%d  %s  tick %d  hash %016x\n\n", snap.Version, snap.Mode, snap.Tick, snap.Hash())
	fmt.Printf("  state    %s\n", snap.State)
	fmt.Printf("  score    %d\n", snap.Score)
	fmt.Printf("  lives    %d\n", snap.Lives)
	fmt.Printf("  level    %d (%s)\n", snap.Level, snap.Layout)
	fmt.Printf("  bricks   %d left, %d destroyed\n", len(snap.Bricks), snap.Destroyed)
	fmt.Printf("  paddle   x=%.2f width=%.2f\n", snap.PaddleX, snap.PaddleWidth)
	if snap.Reversed > 0 {
		fmt.Printf("  reversed %.1fs\n", snap.Reversed)
	}

	for i, b := range snap.Balls {
		fmt.Printf("  ball %d   pos=(%.2f, %.2f, %.2f) speed=%.2f r=%.2f", i, b.Pos[0], b.Pos[1], b.Pos[2], b.Speed, b.Radius)
		if b.Attached {
			fmt.Print(" attached")
		}
		fmt.Println()
	}

	counts := make(map[string]int)
	for _, b := range snap.Bricks {
		counts[breakout.BrickKind(b.Kind).String()]++
	}
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	if len(kinds) > 0 {
		fmt.Println()
		for _, k := range kinds {
			fmt.Printf("  %-12s %d\n", k, counts[k])
		}
	}
	if len(snap.Pickups) > 0 || len(snap.Lasers) > 0 {
		fmt.Printf("\n  %d pickups falling, %d lasers in flight\n", len(snap.Pickups), len(snap.Lasers))
	}
	return nil
}
