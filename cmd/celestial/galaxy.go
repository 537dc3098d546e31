package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/noodlebox/celestial/galaxy"
	"github.com/noodlebox/celestial/internal/scenario"
)

var galaxyRun time.Duration

var galaxyCmd = &cobra.Command{
	Use:   "galaxy",
	Short: "Show two star systems of clocks",
	Long: `Show two star systems, each with a clock for every body in the table.

With --run, the galaxy ticks itself in the background for the given time (or
until interrupted) and the resulting times are printed. A failed tick ends
the run early with an error.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkOptions(); err != nil {
			return err
		}
		table, err := loadTable()
		if err != nil {
			return err
		}
		logger := newLogger(cmd)
		g, err := scenario.Galaxy(table, scenario.NewRand(opts.seed), logger, galaxy.WithInterval(opts.interval), galaxy.WithSource(source()))
		if err != nil {
			return err
		}
		defer g.Close()

		if galaxyRun <= 0 {
			return show(cmd, "Galaxy", g)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		ctx, cancel := context.WithTimeout(ctx, galaxyRun)
		defer cancel()

		g.Start(ctx)
		select {
		case <-ctx.Done():
		case <-g.Done():
		}
		g.Stop()
		logger.Debug("galaxy stopped", "ticks", g.Ticks())
		if err := g.Err(); err != nil {
			return fmt.Errorf("galaxy stopped early: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, t := range view(g).Times() {
			_, _ = fmt.Fprintln(out, t)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(galaxyCmd)
	galaxyCmd.Flags().DurationVar(&galaxyRun, "run", 0, "tick in the background for this long, then print the times")
}
