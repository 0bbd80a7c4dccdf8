package cmd

import (
	"fmt"

	"github.com/theirongolddev/nestegg/internal/cli"

	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project the future value of your savings",
	RunE:  runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, _ []string) error {
	out, err := evaluate(cmd)
	if err != nil {
		return err
	}

	if flagJSON {
		return printOutcomeJSON(out, out)
	}
	if err := printValidation(out); err != nil {
		return err
	}

	m := money()
	title := fmt.Sprintf("SAVINGS PROJECTION  %s", cli.FormatYears(out.Years))
	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	if out.UsedFallback {
		fmt.Println(cli.RenderMuted("  Target age is not after current age, using the fallback horizon."))
	}
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Inputs",
		Headers: []string{"Input", "Value"},
		Rows:    inputRows(out.Scenario, m),
	}))
	fmt.Println()

	rows := make([][]string, 0, 6)
	for _, r := range out.Breakdown() {
		amount := m.Format(r.Amount)
		if r.IsYears {
			amount = cli.FormatYears(r.Amount)
		}
		rows = append(rows, []string{r.Label, amount, cli.FormatShare(r.Share)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Results",
		Headers: []string{"Concept", "Amount", "% of final"},
		Rows:    rows,
	}))
	fmt.Println()

	p := out.Projection
	fmt.Println(cli.RenderShareBar("Principal", p.PrincipalTotal, cli.ColorPrincipal, "Interest", p.Interest, cli.ColorInterest, 40))
	fmt.Println()
	fmt.Println(cli.RenderShareBar("Initial", out.Scenario.Principal, cli.ColorInitial, "Contributions", p.ContributionsTotal, cli.ColorContribution, 40))

	if line := goalLine(out, m); line != "" {
		fmt.Println()
		fmt.Println(line)
	}

	if points := out.Schedule(); len(points) > 1 {
		balances := make([]float64, len(points))
		for i, pt := range points {
			balances[i] = pt.Balance
		}
		fmt.Println()
		fmt.Printf("  Balance  %s\n", cli.RenderSparkline(balances))
	}
	fmt.Println()

	return nil
}
