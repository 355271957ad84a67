package calflow

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ChakkritGit/calflow/internal/service"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Record body weight",
}

var (
	weightKg   float64
	weightDate string
)

var weightRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record weight for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(weightDate)
		if err != nil {
			return err
		}
		return withTracker(func(ctx context.Context, t *service.Tracker) error {
			if err := t.UpdateWeight(ctx, date, weightKg, time.Now()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %.1f kg on %s\n", weightKg, date)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightRecordCmd)

	weightRecordCmd.Flags().Float64Var(&weightKg, "kg", 0, "Weight in kilograms")
	weightRecordCmd.Flags().StringVar(&weightDate, "date", "", "Date (YYYY-MM-DD, default today)")
	_ = weightRecordCmd.MarkFlagRequired("kg")
}
