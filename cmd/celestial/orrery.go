package main

import (
	"github.com/spf13/cobra"

	"github.com/noodlebox/celestial/internal/scenario"
)

var orreryCmd = &cobra.Command{
	Use:   "orrery",
	Short: "Show a clock for every body",
	Long:  `Show a clock for every body in the table, each started at a random time early in its day.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}
		o, err := scenario.Orrery(table, scenario.NewRand(opts.seed), newLogger(cmd))
		if err != nil {
			return err
		}
		return show(cmd, "Orrery", o)
	},
}

func init() {
	rootCmd.AddCommand(orreryCmd)
}
