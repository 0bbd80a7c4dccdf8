package cmd

import (
	"fmt"

	"github.com/theirongolddev/nestegg/internal/cli"
	"github.com/theirongolddev/nestegg/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagJSON {
		return printJSON(cfg)
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	m := money()
	d := cfg.Defaults
	fmt.Println("  [Defaults]")
	fmt.Printf("    Current savings:      %s\n", m.Format(d.Principal))
	fmt.Printf("    Current age:          %g\n", d.CurrentAge)
	fmt.Printf("    Annual interest:      %s\n", cli.FormatRate(d.AnnualRatePct))
	fmt.Printf("    Monthly contribution: %s\n", m.Format(d.MonthlyContribution))
	fmt.Printf("    Target age:           %g\n", d.TargetAge)
	if d.HasGoal() {
		fmt.Printf("    Savings goal:         %s\n", m.Format(*d.Goal))
	} else {
		fmt.Println("    Savings goal:         not set")
	}
	fmt.Printf("    Fallback horizon:     %s\n", fallbackLabel(d.FallbackYears))
	fmt.Println()

	fmt.Println("  [Display]")
	place := "before amount"
	if cfg.Display.SymbolAfter {
		place = "after amount"
	}
	fmt.Printf("    Currency: %s (%s)\n", cfg.Display.CurrencySymbol, place)
	fmt.Printf("    Example:  %s\n", m.Format(1234.5))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level:  %s\n", cfg.Log.Level)
	fmt.Printf("    Pretty: %v\n", cfg.Log.Pretty)
	fmt.Println()

	fmt.Println("  [Store]")
	fmt.Printf("    Path: %s\n", config.StorePath(cfg))
	if st := openStore(); st != nil {
		if n, err := st.Count(); err == nil {
			fmt.Printf("    Saved scenarios: %d\n", n)
		}
		_ = st.Close()
	}
	fmt.Println()

	fmt.Println("  Run `nestegg setup` to reconfigure.")
	return nil
}
