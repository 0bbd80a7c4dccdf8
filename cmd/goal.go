package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/nestegg/internal/cli"

	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Find the month a savings goal is reached",
	Example: "  nestegg goal --goal 50000\n" +
		"  nestegg goal -p 10000 -r 7 -c 500 -g 50000 --age 30 --target-age 60",
	RunE: runGoal,
}

func init() {
	rootCmd.AddCommand(goalCmd)
}

func runGoal(cmd *cobra.Command, _ []string) error {
	out, err := evaluate(cmd)
	if err != nil {
		return err
	}
	if flagJSON && !out.Validation.Valid {
		return printOutcomeJSON(out, nil)
	}
	if err := printValidation(out); err != nil {
		return err
	}
	if out.Goal == nil {
		return errors.New("no savings goal set, pass --goal")
	}

	if flagJSON {
		return printOutcomeJSON(out, out.Goal)
	}

	m := money()
	g := out.Goal
	fmt.Println()
	fmt.Println(goalLine(out, m))
	fmt.Println()

	rows := [][]string{
		{"Goal", m.Format(*out.Scenario.Goal)},
		{"Horizon", cli.FormatYears(out.Years)},
	}
	if g.Reached {
		rows = append(rows,
			[]string{"Year", fmt.Sprintf("%d", g.Year)},
			[]string{"Month", fmt.Sprintf("%s (%d)", cli.FormatMonth(g.MonthOfYear), g.MonthOfYear)},
			[]string{"Months from now", cli.FormatNumber(int64(g.AbsoluteMonth))},
			[]string{"Age at goal", fmt.Sprintf("%.1f", out.Scenario.CurrentAge+float64(g.AbsoluteMonth)/12)},
		)
	} else {
		rows = append(rows,
			[]string{"Projected balance", m.Format(out.Projection.FutureValue)},
			[]string{"Shortfall", m.Format(g.Shortfall)},
		)
	}

	fmt.Print(cli.RenderTable(cli.Table{Headers: []string{"Goal search", ""}, Rows: rows}))
	fmt.Println()
	return nil
}
