package main

import (
	"github.com/spf13/cobra"

	"github.com/noodlebox/celestial/internal/scenario"
)

var clockCmd = &cobra.Command{
	Use:   "clock <body>",
	Short: "Show one body's clock",
	Long:  `Show a clock for the named body, starting at midnight. Names are matched without regard to case.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}
		b, err := table.Lookup(args[0])
		if err != nil {
			return err
		}
		return show(cmd, b.Name+" ("+b.NewClock().BodyMaximums()+" day)", scenario.Planet(b))
	},
}

func init() {
	rootCmd.AddCommand(clockCmd)
}
