package cmd

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/nestegg/internal/config"
	"github.com/theirongolddev/nestegg/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupValues holds the wizard's text fields before they are parsed.
type setupValues struct {
	principal    string
	age          string
	rate         string
	contribution string
	targetAge    string
	goal         string
	symbol       string
	symbolAfter  bool
	theme        string
}

func newSetupValues(c config.Config) *setupValues {
	d := c.Defaults
	v := &setupValues{
		principal:    ftoa(d.Principal),
		age:          ftoa(d.CurrentAge),
		rate:         ftoa(d.AnnualRatePct),
		contribution: ftoa(d.MonthlyContribution),
		targetAge:    ftoa(d.TargetAge),
		symbol:       c.Display.CurrencySymbol,
		symbolAfter:  c.Display.SymbolAfter,
		theme:        c.Appearance.Theme,
	}
	if d.HasGoal() {
		v.goal = ftoa(*d.Goal)
	}
	return v
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func atof(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not a finite number")
	}
	return v, nil
}

func requireNumber(s string) error {
	if _, err := atof(s); err != nil {
		return errors.New("enter a number")
	}
	return nil
}

func optionalNumber(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return requireNumber(s)
}

// apply parses the wizard values into c. The defaults must pass validation.
func (v *setupValues) apply(c *config.Config) error {
	d := c.Defaults
	var err error
	for _, f := range []struct {
		in  string
		out *float64
	}{
		{v.principal, &d.Principal},
		{v.age, &d.CurrentAge},
		{v.rate, &d.AnnualRatePct},
		{v.contribution, &d.MonthlyContribution},
		{v.targetAge, &d.TargetAge},
	} {
		if *f.out, err = atof(f.in); err != nil {
			return fmt.Errorf("parsing %q: %w", f.in, err)
		}
	}

	d.Goal = nil
	if strings.TrimSpace(v.goal) != "" {
		g, err := atof(v.goal)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", v.goal, err)
		}
		d.Goal = &g
	}

	if res := d.Evaluate().Validation; !res.Valid {
		field := sortedKeys(res.Errors)[0]
		return fmt.Errorf("%s: %s", field, res.Errors[field])
	}

	c.Defaults = d
	c.Display.CurrencySymbol = strings.TrimSpace(v.symbol)
	c.Display.SymbolAfter = v.symbolAfter
	c.Appearance.Theme = v.theme
	return nil
}

func runSetup(_ *cobra.Command, _ []string) error {
	v := newSetupValues(cfg)

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to nestegg!").
				Description("These defaults fill in every input you don't pass as a flag."),
			huh.NewInput().Title("Current savings").Value(&v.principal).Validate(requireNumber),
			huh.NewInput().Title("Current age").Value(&v.age).Validate(requireNumber),
			huh.NewInput().Title("Annual interest (%)").Value(&v.rate).Validate(requireNumber),
			huh.NewInput().Title("Monthly contribution").Value(&v.contribution).Validate(requireNumber),
			huh.NewInput().Title("Target age").Value(&v.targetAge).Validate(requireNumber),
			huh.NewInput().Title("Savings goal").Description("Leave blank for none").
				Value(&v.goal).Validate(optionalNumber),
		),
		huh.NewGroup(
			huh.NewInput().Title("Currency symbol").Value(&v.symbol).CharLimit(4),
			huh.NewConfirm().Title("Symbol after the amount?").
				Affirmative("After").Negative("Before").Value(&v.symbolAfter),
			huh.NewSelect[string]().Title("Color theme").Options(themeOpts...).Value(&v.theme),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return err
	}

	next := cfg
	if err := v.apply(&next); err != nil {
		return err
	}
	if err := config.Save(next); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	logger.Debug().Str("path", config.Path()).Msg("config saved")

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `nestegg setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
