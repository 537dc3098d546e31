package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/noodlebox/celestial"
	"github.com/noodlebox/celestial/bodies"
	"github.com/noodlebox/celestial/galaxy"
	"github.com/noodlebox/celestial/internal/display"
	"github.com/noodlebox/celestial/internal/logging"
	"github.com/noodlebox/celestial/internal/scenario"
	"github.com/noodlebox/celestial/internal/tui"
	"github.com/noodlebox/celestial/realtime"
	"github.com/noodlebox/celestial/relativetime"
)

type options struct {
	bodiesPath string
	interval   time.Duration
	plain      bool
	seed       uint64
	debug      bool
	military   bool
	speed      float64
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "celestial",
	Short: "Clocks for the days of other worlds",
	Long: `Celestial keeps time on bodies whose days are not 24 hours long.
Run it without a command to choose a planet clock, an orrery of every
planet, or a galaxy of two star systems from an interactive menu.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	addPersistentFlags(rootCmd.PersistentFlags())
}

func addPersistentFlags(fs *pflag.FlagSet) {
	fs.StringVar(&opts.bodiesPath, "bodies", "", "YAML file of bodies and day lengths (default: the solar system)")
	fs.DurationVar(&opts.interval, "interval", galaxy.DefaultInterval, "time between ticks")
	fs.BoolVar(&opts.plain, "plain", false, "print plain text instead of the interactive view")
	fs.Uint64Var(&opts.seed, "seed", 0, "seed for random start times (0 picks one)")
	fs.BoolVar(&opts.debug, "debug", false, "log debug messages")
	fs.BoolVar(&opts.military, "military", false, "show military times")
	fs.Float64Var(&opts.speed, "speed", 1, "simulated seconds per real second")
}

func checkOptions() error {
	if opts.interval <= 0 {
		return fmt.Errorf("--interval must be positive, got %s", opts.interval)
	}
	if opts.speed <= 0 {
		return fmt.Errorf("--speed must be positive, got %g", opts.speed)
	}
	return nil
}

// source returns the clock pacing ticks, running --speed times faster than
// the wall clock. The live view can pause and rescale it.
func source() *relativetime.Clock {
	rt := realtime.NewClock()
	return relativetime.NewClock(rt, rt.Now(), opts.speed)
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	return logging.New(cmd.ErrOrStderr(), opts.debug)
}

func loadTable() (*bodies.Table, error) {
	if opts.bodiesPath == "" {
		return bodies.Default(), nil
	}
	return bodies.Load(opts.bodiesPath)
}

// militaryView presents a timepiece's military times as its times.
type militaryView struct {
	celestial.Timepiece
	times func() []string
}

func (v militaryView) Times() []string { return v.times() }

func view(tp celestial.Timepiece) celestial.Timepiece {
	if !opts.military {
		return tp
	}
	switch mt := tp.(type) {
	case interface{ MilitaryTimes() []string }:
		return militaryView{Timepiece: tp, times: mt.MilitaryTimes}
	case interface{ MilitaryTime() string }:
		return militaryView{Timepiece: tp, times: func() []string { return []string{mt.MilitaryTime()} }}
	}
	return tp
}

// show displays tp until the user leaves the view or, in plain mode, until
// the command's context ends.
func show(cmd *cobra.Command, title string, tp celestial.Timepiece) error {
	if err := checkOptions(); err != nil {
		return err
	}

	if opts.plain {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", title)
		return display.Run(cmd.Context(), cmd.OutOrStdout(), view(tp), source(), opts.interval)
	}

	m := tui.NewLive(title, tp, source(), opts.interval)
	if opts.military {
		m = m.Military()
	}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}
	return final.(tui.LiveModel).Err()
}

func runMenu(cmd *cobra.Command) error {
	table, err := loadTable()
	if err != nil {
		return err
	}
	logger := newLogger(cmd)

	for {
		final, err := tea.NewProgram(tui.NewMenu()).Run()
		if err != nil {
			return err
		}

		choice := final.(tui.MenuModel).Choice()
		if choice == "" || choice == tui.ChoiceExit {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Goodbye!")
			return nil
		}
		if err := runChoice(cmd, choice, table, logger); err != nil {
			return err
		}
	}
}

func runChoice(cmd *cobra.Command, choice string, table *bodies.Table, logger *slog.Logger) error {
	switch choice {
	case tui.ChoicePlanet:
		final, err := tea.NewProgram(tui.NewBodyList(table)).Run()
		if err != nil {
			return err
		}
		b, ok := final.(tui.BodyModel).Selected()
		if !ok {
			return nil
		}
		return show(cmd, b.Name+" ("+b.NewClock().BodyMaximums()+" day)", scenario.Planet(b))

	case tui.ChoiceOrrery:
		o, err := scenario.Orrery(table, scenario.NewRand(opts.seed), logger)
		if err != nil {
			return err
		}
		return show(cmd, "Orrery", o)

	case tui.ChoiceGalaxy:
		g, err := scenario.Galaxy(table, scenario.NewRand(opts.seed), logger)
		if err != nil {
			return err
		}
		defer g.Close()
		return show(cmd, "Galaxy", g)
	}
	return fmt.Errorf("unknown menu choice %q", choice)
}
