package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/nestegg/internal/cli"
	"github.com/theirongolddev/nestegg/internal/config"
	"github.com/theirongolddev/nestegg/internal/store"

	"github.com/spf13/cobra"
)

var scenarioCmd = &cobra.Command{
	Use:     "scenario",
	Aliases: []string{"scenarios"},
	Short:   "Save, list, show and delete named scenarios",
}

var scenarioSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Save the current inputs under a name",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioSave,
}

var scenarioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scenarios",
	Args:  cobra.NoArgs,
	RunE:  runScenarioList,
}

var scenarioShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioShow,
}

var scenarioDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioDelete,
}

func init() {
	scenarioCmd.AddCommand(scenarioSaveCmd, scenarioListCmd, scenarioShowCmd, scenarioDeleteCmd)
	rootCmd.AddCommand(scenarioCmd)
}

func requireStore() (*store.Store, error) {
	if flagNoStore {
		return nil, errors.New("scenario commands need the scenario store (drop --no-store)")
	}
	path := config.StorePath(cfg)
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario store: %w", err)
	}
	return st, nil
}

func runScenarioSave(cmd *cobra.Command, args []string) error {
	st, err := requireStore()
	if err != nil {
		return err
	}
	defer st.Close()

	s, err := resolveScenario(cmd, st)
	if err != nil {
		return err
	}
	if err := printValidation(s.Evaluate()); err != nil {
		return err
	}
	if err := st.Save(args[0], s); err != nil {
		return err
	}
	logger.Debug().Str("name", args[0]).Msg("scenario saved")

	fmt.Printf("  Saved scenario %q\n", args[0])
	return nil
}

func runScenarioList(_ *cobra.Command, _ []string) error {
	st, err := requireStore()
	if err != nil {
		return err
	}
	defer st.Close()

	list, err := st.List()
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(list)
	}
	if len(list) == 0 {
		fmt.Println("\n  No saved scenarios. Use `nestegg scenario save NAME`.")
		return nil
	}

	m := money()
	rows := make([][]string, 0, len(list))
	for _, sv := range list {
		out := sv.Scenario.Evaluate()
		fv := "invalid"
		if out.Validation.Valid {
			fv = m.Format(out.Projection.FutureValue)
		}
		rows = append(rows, []string{
			sv.Name,
			m.Format(sv.Scenario.MonthlyContribution),
			cli.FormatRate(sv.Scenario.AnnualRatePct),
			fv,
			sv.UpdatedAt.Local().Format("2006-01-02 15:04"),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Name", "Monthly", "Rate", "Final capital", "Updated"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runScenarioShow(_ *cobra.Command, args []string) error {
	st, err := requireStore()
	if err != nil {
		return err
	}
	defer st.Close()

	sv, err := st.Get(args[0])
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(sv)
	}

	m := money()
	rows := inputRows(sv.Scenario, m)
	rows = append(rows,
		[]string{"Fallback horizon", fallbackLabel(sv.Scenario.FallbackYears)},
		cli.Separator,
		[]string{"ID", sv.ID},
		[]string{"Created", sv.CreatedAt.Local().Format("2006-01-02 15:04")},
		[]string{"Updated", sv.UpdatedAt.Local().Format("2006-01-02 15:04")},
	)

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{Title: sv.Name, Headers: []string{"Field", "Value"}, Rows: rows}))
	fmt.Println()
	return nil
}

func runScenarioDelete(_ *cobra.Command, args []string) error {
	st, err := requireStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("  Deleted scenario %q\n", args[0])
	return nil
}
