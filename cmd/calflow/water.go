package calflow

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChakkritGit/calflow/internal/service"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track water intake",
}

var (
	waterMl   int
	waterDate string
)

var waterAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add water intake for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(waterDate)
		if err != nil {
			return err
		}
		return withTracker(func(ctx context.Context, t *service.Tracker) error {
			log, err := t.AddWater(ctx, date, waterMl)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Water on %s: %d ml (goal %d ml)\n", date, log.WaterIntakeMl, t.Profile().WaterGoalMl)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(waterCmd)
	waterCmd.AddCommand(waterAddCmd)

	waterAddCmd.Flags().IntVar(&waterMl, "ml", 0, "Amount in milliliters")
	waterAddCmd.Flags().StringVar(&waterDate, "date", "", "Date (YYYY-MM-DD, default today)")
	_ = waterAddCmd.MarkFlagRequired("ml")
}
