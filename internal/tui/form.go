package tui

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/nestegg/internal/calc"
	"github.com/theirongolddev/nestegg/internal/scenario"

	"github.com/charmbracelet/huh"
)

// formValues holds the raw text of every input. huh binds to these fields by
// pointer, so the struct is always shared through a *formValues.
type formValues struct {
	principal     string
	currentAge    string
	rate          string
	contribution  string
	targetAge     string
	goal          string
	fallbackYears string
}

// parseNumber returns NaN for empty, unparsable or non-finite input.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

func formatNumber(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func valuesFrom(s scenario.Scenario) *formValues {
	v := &formValues{
		principal:     formatNumber(s.Principal),
		currentAge:    formatNumber(s.CurrentAge),
		rate:          formatNumber(s.AnnualRatePct),
		contribution:  formatNumber(s.MonthlyContribution),
		targetAge:     formatNumber(s.TargetAge),
		fallbackYears: formatNumber(s.FallbackYears),
	}
	if s.Goal != nil {
		v.goal = formatNumber(*s.Goal)
	}
	return v
}

// scenario parses the inputs. An empty goal means no goal.
func (v *formValues) scenario() scenario.Scenario {
	s := scenario.Scenario{
		Principal:           parseNumber(v.principal),
		CurrentAge:          parseNumber(v.currentAge),
		AnnualRatePct:       parseNumber(v.rate),
		MonthlyContribution: parseNumber(v.contribution),
		TargetAge:           parseNumber(v.targetAge),
		FallbackYears:       parseNumber(v.fallbackYears),
	}
	if strings.TrimSpace(v.goal) != "" {
		g := parseNumber(v.goal)
		s.Goal = &g
	}
	return s
}

// fieldValidator checks one input with the calculator's validation rules,
// substituting the text being edited for the bound value.
func (v *formValues) fieldValidator(field string, set func(*formValues, string)) func(string) error {
	return func(text string) error {
		cp := *v
		set(&cp, text)
		res := cp.scenario().Validate()
		if msg, ok := res.Errors[field]; ok {
			return errors.New(msg)
		}
		return nil
	}
}

func newForm(v *formValues, width int) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Current savings").
				Value(&v.principal).
				Validate(v.fieldValidator(calc.FieldPrincipal, func(f *formValues, s string) { f.principal = s })),
			huh.NewInput().
				Title("Current age").
				Value(&v.currentAge).
				Validate(v.fieldValidator(calc.FieldCurrentAge, func(f *formValues, s string) { f.currentAge = s })),
			huh.NewInput().
				Title("Annual interest (%)").
				Value(&v.rate).
				Validate(v.fieldValidator(calc.FieldAnnualRatePct, func(f *formValues, s string) { f.rate = s })),
			huh.NewInput().
				Title("Monthly contribution").
				Value(&v.contribution).
				Validate(v.fieldValidator(calc.FieldMonthlyContribution, func(f *formValues, s string) { f.contribution = s })),
			huh.NewInput().
				Title("Target age").
				Value(&v.targetAge).
				Validate(v.fieldValidator(calc.FieldTargetAge, func(f *formValues, s string) { f.targetAge = s })),
			huh.NewInput().
				Title("Savings goal").
				Description("Optional").
				Value(&v.goal).
				Validate(v.fieldValidator(calc.FieldGoal, func(f *formValues, s string) { f.goal = s })),
			huh.NewInput().
				Title("Years to simulate").
				Description("Used when the target age is not after the current age").
				Value(&v.fallbackYears).
				Validate(v.fieldValidator(scenario.FieldFallbackYears, func(f *formValues, s string) { f.fallbackYears = s })),
		),
	).WithShowHelp(false)

	if width > 0 {
		form = form.WithWidth(width)
	}
	return form
}
