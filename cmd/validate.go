package cmd

import (
	"fmt"

	"github.com/theirongolddev/nestegg/internal/cli"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check inputs without projecting",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	st := openStore()
	if st != nil {
		defer st.Close()
	}
	s, err := resolveScenario(cmd, st)
	if err != nil {
		return err
	}

	out := s.Evaluate()
	if flagJSON {
		if err := printJSON(out.Validation); err != nil {
			return err
		}
	} else if out.Validation.Valid {
		fmt.Println(cli.RenderStatus(true, "  Inputs are valid."))
	}

	if !out.Validation.Valid {
		if !flagJSON {
			_ = printValidation(out)
		}
		return errInvalidInput
	}
	return nil
}
