package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/theirongolddev/nestegg/internal/cli"
	"github.com/theirongolddev/nestegg/internal/scenario"
)

var errInvalidInput = errors.New("invalid input")

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printOutcomeJSON encodes v for a valid outcome. For an invalid one it encodes
// the validation result alone, whose fields may not be representable in JSON,
// and returns errInvalidInput.
func printOutcomeJSON(o scenario.Outcome, v any) error {
	if !o.Validation.Valid {
		if err := printJSON(o.Validation); err != nil {
			return err
		}
		return errInvalidInput
	}
	return printJSON(v)
}

// printValidation lists field errors on stderr and returns errInvalidInput, or
// nil when the outcome is valid.
func printValidation(o scenario.Outcome) error {
	if o.Validation.Valid {
		return nil
	}
	fmt.Fprintln(os.Stderr)
	for _, k := range sortedKeys(o.Validation.Errors) {
		fmt.Fprintf(os.Stderr, "  %s  %s\n", cli.RenderStatus(false, k), o.Validation.Errors[k])
	}
	fmt.Fprintln(os.Stderr)
	return errInvalidInput
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func fallbackLabel(years float64) string {
	if math.IsNaN(years) || years == 0 {
		return cli.FormatYears(scenario.DefaultFallbackYears) + " (default)"
	}
	return cli.FormatYears(years)
}

func inputRows(s scenario.Scenario, m cli.Money) [][]string {
	goal := "none"
	if s.HasGoal() {
		goal = m.Format(*s.Goal)
	}
	return [][]string{
		{"Current savings", m.Format(s.Principal)},
		{"Annual interest", cli.FormatRate(s.AnnualRatePct)},
		{"Monthly contribution", m.Format(s.MonthlyContribution)},
		{"Ages", fmt.Sprintf("%g → %g", s.CurrentAge, s.TargetAge)},
		{"Savings goal", goal},
	}
}

func goalLine(o scenario.Outcome, m cli.Money) string {
	if o.Goal == nil {
		return ""
	}
	label := "Goal reached: no"
	if o.Goal.Reached {
		label = "Goal reached: yes"
	}
	return "  " + cli.RenderStatus(o.Goal.Reached, label) + "\n  " + o.GoalMessage(m.Format)
}
