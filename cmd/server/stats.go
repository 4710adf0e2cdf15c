package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ugaemi/cleannile/internal/store"
)

var statsReset bool

var errMemoryStats = errors.New("the memory stats backend keeps nothing between runs; set STATS_BACKEND to file, redis or postgres")

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show or reset recorded statistics",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsReset, "reset", false, "clear all recorded statistics")
}

func runStats(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogger(cfg, cmd.ErrOrStderr())
	if cfg.StatsBackend == store.BackendMemory {
		return errMemoryStats
	}

	ctx := cmd.Context()
	recorder, err := newRecorder(ctx, cfg)
	if err != nil {
		return err
	}
	defer recorder.Close()

	if statsReset {
		if err := recorder.Reset(ctx); err != nil {
			return fmt.Errorf("failed to reset stats: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Statistics cleared.")
		return nil
	}

	st, err := recorder.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to read stats: %w", err)
	}
	printStats(cmd.OutOrStdout(), st)
	return nil
}

func printStats(w io.Writer, st store.Stats) {
	fmt.Fprintf(w, "Best score:    %d\n", st.BestScore)
	fmt.Fprintf(w, "Games played:  %d\n", st.TotalGames)
	fmt.Fprintf(w, "Total score:   %d\n", st.TotalScore)
	fmt.Fprintf(w, "Average score: %d\n", st.AverageScore())
	fmt.Fprintf(w, "Time played:   %ds\n", st.TotalSeconds)
}
