package cmd

import (
	"fmt"

	"github.com/theirongolddev/nestegg/internal/cli"

	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Year-by-year balance table",
	RunE:  runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, _ []string) error {
	out, err := evaluate(cmd)
	if err != nil {
		return err
	}
	if flagJSON {
		return printOutcomeJSON(out, out.Schedule())
	}
	if err := printValidation(out); err != nil {
		return err
	}

	points := out.Schedule()

	if len(points) == 0 {
		fmt.Println("\n  Nothing to simulate: the horizon is shorter than half a month.")
		return nil
	}

	m := money()
	rows := make([][]string, 0, len(points))
	for _, pt := range points {
		rows = append(rows, []string{
			fmt.Sprintf("%d", pt.Year),
			cli.FormatNumber(int64(pt.Months)),
			m.Format(pt.Contributed),
			m.Format(pt.Interest),
			m.Format(pt.Balance),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Balance by year (%s)", cli.FormatYears(out.Years)),
		Headers: []string{"Year", "Months", "Principal", "Interest", "Balance"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
