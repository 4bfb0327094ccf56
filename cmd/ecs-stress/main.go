// ecs-stress runs many players headless with scripted arrow-key input and prints
// a timing report.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var opts Options

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "ecs-stress",
	Short:        "Stress the player systems with many headless characters",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "ecs-stress",
		})

		ctx, cancel := context.WithTimeout(cmd.Context(), opts.Duration)
		defer cancel()

		logger.Info("starting stress test", "players", opts.Players, "duration", opts.Duration)
		report, err := Simulate(ctx, opts, logger)
		if err != nil {
			return err
		}
		logger.Info("simulation finished", "updates", report.TotalUpdates)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "\n\n--- Stress Test Report ---")
		if err := report.Generate(out); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
		fmt.Fprintln(out, "--- End of Report ---")
		return nil
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.DurationVar(&opts.Duration, "duration", 10*time.Second, "The total duration the test should run for")
	flags.IntVar(&opts.Players, "players", 10000, "Number of players to spawn")
	flags.Int64Var(&opts.MaxUpdates, "updates", 0, "Stop after this many updates (0 = until duration)")
	flags.Float64Var(&opts.DeltaTime, "dt", 1.0/60.0, "Simulated seconds per update")
	flags.IntVar(&opts.HoldFrames, "hold", 30, "Updates each scripted key combination is held for")
	flags.Uint64Var(&opts.Seed, "seed", 1, "Seed for scripted input and idle jitter")
	flags.BoolVar(&opts.GCPauseMetrics, "gc-pause-metrics", false, "Enable detailed GC pause metrics in the report")
}
