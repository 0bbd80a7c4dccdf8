// Package cmd implements the nestegg CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/theirongolddev/nestegg/internal/cli"
	"github.com/theirongolddev/nestegg/internal/config"
	"github.com/theirongolddev/nestegg/internal/logging"
	"github.com/theirongolddev/nestegg/internal/scenario"
	"github.com/theirongolddev/nestegg/internal/store"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagPrincipal    float64
	flagAge          float64
	flagRate         float64
	flagContribution float64
	flagTargetAge    float64
	flagGoal         float64
	flagYears        float64
	flagScenario     string
	flagNoStore      bool
	flagJSON         bool
	flagLogLevel     string
)

// Loaded once per invocation in PersistentPreRunE.
var (
	cfg    config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "nestegg",
	Short: "Savings and compound-interest calculator",
	Long: "Project how savings grow with compound interest and monthly contributions,\n" +
		"and find out when a savings goal is reached.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runProject,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Float64VarP(&flagPrincipal, "principal", "p", 0, "Current savings")
	pf.Float64VarP(&flagAge, "age", "a", 0, "Current age")
	pf.Float64VarP(&flagRate, "rate", "r", 0, "Annual interest in percent (7 for 7%)")
	pf.Float64VarP(&flagContribution, "contribution", "c", 0, "Monthly contribution")
	pf.Float64VarP(&flagTargetAge, "target-age", "t", 0, "Target age")
	pf.Float64VarP(&flagGoal, "goal", "g", 0, "Savings goal (0 for none)")
	pf.Float64VarP(&flagYears, "years", "y", 0, "Years to simulate when the target age is not after the current age")
	pf.StringVarP(&flagScenario, "scenario", "s", "", "Start from a saved scenario")
	pf.BoolVar(&flagNoStore, "no-store", false, "Do not read or write saved scenarios")
	pf.BoolVar(&flagJSON, "json", false, "Print machine-readable JSON")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		// A broken config should not block the calculator.
		fmt.Fprintf(os.Stderr, "  %v, using defaults\n", err)
		cfg = config.DefaultConfig()
	}

	lc := logging.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty}
	if flagLogLevel != "" {
		lc.Level = flagLogLevel
	}
	logger = logging.New(lc)
	logging.SetGlobalLogger(logger)

	logger.Debug().Str("command", cmd.Name()).Str("config", config.Path()).Msg("starting")
	return nil
}

func money() cli.Money {
	return cli.Money{Symbol: cfg.Display.CurrencySymbol, After: cfg.Display.SymbolAfter}
}

// openStore opens the scenario database, returning nil when storage is disabled
// or unavailable.
func openStore() *store.Store {
	if flagNoStore {
		return nil
	}
	path := config.StorePath(cfg)
	st, err := store.Open(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("scenario store unavailable")
		return nil
	}
	logger.Debug().Str("path", path).Msg("scenario store opened")
	return st
}

// resolveScenario builds the inputs: flags override a named scenario, which
// overrides the last evaluated scenario, which overrides config defaults.
func resolveScenario(cmd *cobra.Command, st *store.Store) (scenario.Scenario, error) {
	s := cfg.Defaults

	if st != nil {
		if flagScenario != "" {
			saved, err := st.Get(flagScenario)
			if err != nil {
				return s, err
			}
			s = saved.Scenario
		} else if last, err := st.LoadLast(); err == nil {
			s = last
		} else if !errors.Is(err, store.ErrNotFound) {
			logger.Warn().Err(err).Msg("loading last scenario")
		}
	} else if flagScenario != "" {
		return s, errors.New("--scenario needs the scenario store (drop --no-store)")
	}

	if err := applyFlags(cmd, &s); err != nil {
		return s, err
	}
	return s, nil
}

func applyFlags(cmd *cobra.Command, s *scenario.Scenario) error {
	f := cmd.Flags()
	for _, fl := range []struct {
		name string
		src  float64
		dst  *float64
	}{
		{"principal", flagPrincipal, &s.Principal},
		{"age", flagAge, &s.CurrentAge},
		{"rate", flagRate, &s.AnnualRatePct},
		{"contribution", flagContribution, &s.MonthlyContribution},
		{"target-age", flagTargetAge, &s.TargetAge},
		{"years", flagYears, &s.FallbackYears},
	} {
		if !f.Changed(fl.name) {
			continue
		}
		if !isFinite(fl.src) {
			return fmt.Errorf("--%s must be a finite number", fl.name)
		}
		*fl.dst = fl.src
	}
	if f.Changed("goal") {
		if !isFinite(flagGoal) {
			return errors.New("--goal must be a finite number")
		}
		g := flagGoal
		s.Goal = &g
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// evaluate resolves and evaluates the scenario, remembering it as the last one
// when it is valid.
func evaluate(cmd *cobra.Command) (scenario.Outcome, error) {
	st := openStore()
	if st != nil {
		defer st.Close()
	}

	s, err := resolveScenario(cmd, st)
	if err != nil {
		return scenario.Outcome{}, err
	}

	out := s.Evaluate()
	logger.Debug().
		Bool("valid", out.Validation.Valid).
		Float64("years", out.Years).
		Float64("future_value", out.Projection.FutureValue).
		Msg("scenario evaluated")

	if out.Validation.Valid && st != nil {
		if err := st.SaveLast(s); err != nil {
			logger.Warn().Err(err).Msg("saving last scenario")
		}
	}
	return out, nil
}
