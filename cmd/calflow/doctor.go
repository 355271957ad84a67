package calflow

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChakkritGit/calflow/internal/service"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(ctx context.Context, t *service.Tracker) error {
			report, err := t.Doctor(ctx, doctorFix)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Drifted totals: %d\n", report.DriftedTotals)
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicate food ids: %d\n", report.DuplicateFoodIDs)
			fmt.Fprintf(cmd.OutOrStdout(), "Empty names: %d\n", report.EmptyNames)
			if doctorFix {
				fmt.Fprintf(cmd.OutOrStdout(), "Fixed totals: %d\n", report.FixedTotals)
				// Re-check after fixes so exit status reflects final state.
				report, err = t.Doctor(ctx, false)
				if err != nil {
					return err
				}
			}
			if report.DriftedTotals > 0 || report.DuplicateFoodIDs > 0 || report.EmptyNames > 0 {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Attempt safe auto-fixes")
}
