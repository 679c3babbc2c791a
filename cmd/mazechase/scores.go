package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mazechase/internal/registry"
	"github.com/vovakirdan/tui-mazechase/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the best runs for a variant",
	Long: `Display the top 10 runs for the given variant (default: mazechase),
with the level each run reached and the seed it was played with.

Examples:
  mazechase scores
  mazechase scores mazechase_reset
  mazechase scores --recent 5
  mazechase scores --run 0b4c5a9e-6f1d-4e0a-9d57-2f6c8e1a3b7d
  mazechase scores mazechase_reset --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var (
	flagRecent int
	flagRunID  string
	flagClear  bool
)

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 0, "Show the N most recent runs of every variant")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show one run by id, with the command to replay its seed")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run of the variant")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := variantArg(args)
	requireVariant(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	switch {
	case flagRunID != "":
		err = printRun(os.Stdout, store, flagRunID)
	case flagRecent > 0:
		err = printRecentRuns(os.Stdout, store, flagRecent)
	case flagClear:
		err = clearRuns(os.Stdout, store, gameID)
	default:
		err = printTopRuns(os.Stdout, store, gameID)
	}
	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printTopRuns writes the best ten runs of a variant followed by its stats.
func printTopRuns(w io.Writer, store *storage.Store, gameID string) error {
	info, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("%w: %q", registry.ErrUnknownVariant, gameID)
	}

	runs, err := store.TopRuns(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Best Runs - %s\n\n", info.Title)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'mazechase play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-20s  %s\n", "Rank", "Score", "Level", "Seed", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-20s  %s\n", "----", "-----", "-----", "----", "----")

	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-8d  %-5d  %-20d  %s\n", i+1, r.Score, r.Level, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Deepest level: %d  Rounds: %d  Average: %.1f  Last played: %s\n",
		stats.HighScore, stats.MaxLevel, stats.GamesCount, stats.AvgScore,
		stats.LastPlayed.Format("2006-01-02 15:04"))
	return nil
}

// printRecentRuns writes the newest runs of every variant with their ids.
func printRecentRuns(w io.Writer, store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Recent Runs\n\n")
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-36s  %-16s  %-8s  %-5s  %s\n", "Run", "Variant", "Score", "Level", "Date")
	for _, r := range runs {
		fmt.Fprintf(w, "  %-36s  %-16s  %-8d  %-5d  %s\n",
			r.RunID, r.GameID, r.Score, r.Level, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// printRun writes one run in full and how to play its seed again.
func printRun(w io.Writer, store *storage.Store, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid run id %q: %w", rawID, err)
	}

	run, err := store.RunByID(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Run %s\n\n", run.RunID)
	fmt.Fprintf(w, "  Variant: %s\n", run.GameID)
	fmt.Fprintf(w, "  Score:   %d\n", run.Score)
	fmt.Fprintf(w, "  Level:   %d\n", run.Level)
	fmt.Fprintf(w, "  Ticks:   %d\n", run.Ticks)
	fmt.Fprintf(w, "  Seed:    %d\n", run.Seed)
	fmt.Fprintf(w, "  Date:    %s\n", run.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Play this seed again with 'mazechase play %s --seed %d'\n", run.GameID, run.Seed)
	return nil
}

// clearRuns deletes the recorded runs of a variant.
func clearRuns(w io.Writer, store *storage.Store, gameID string) error {
	n, err := store.ClearRuns(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Deleted %d runs of %s.\n", n, gameID)
	return nil
}
