package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"scribeci/internal/runtime"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the CI context report",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := runtime.LoadContext()
		if err != nil {
			return fmt.Errorf("failed to load context: %w", err)
		}
		ctx.PrintSummary()
		return nil
	},
}
