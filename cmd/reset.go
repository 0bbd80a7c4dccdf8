package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the last inputs and start from the configured defaults",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	st, err := requireStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.ClearLast(); err != nil {
		return err
	}
	fmt.Println("  Last inputs cleared. Saved scenarios are kept.")
	return nil
}
