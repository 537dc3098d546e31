package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	nameStyle   = lipgloss.NewStyle().Width(10)
	lengthStyle = lipgloss.NewStyle().Width(12).Align(lipgloss.Right)
)

var bodiesCmd = &cobra.Command{
	Use:   "bodies",
	Short: "List the bodies and their day lengths",
	Long: `List every body in the table with the day length it was given and the
day length its clock keeps. Clocks keep minutes in steps of four, so the two
can differ.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(out, headerStyle.Render(
			nameStyle.Render("BODY")+lengthStyle.Render("DAY")+lengthStyle.Render("CLOCK DAY")))
		for _, b := range table.Bodies {
			day := fmt.Sprintf("%d:%02d:00", b.Hours, b.Minutes)
			_, _ = fmt.Fprintln(out,
				nameStyle.Render(b.Name)+lengthStyle.Render(day)+lengthStyle.Render(b.NewClock().BodyMaximums()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bodiesCmd)
}
