package calflow

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChakkritGit/calflow/internal/service"
)

var (
	todayDate string
	todayJSON bool
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake against the daily target",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(todayDate)
		if err != nil {
			return err
		}
		return withTracker(func(ctx context.Context, t *service.Tracker) error {
			status := t.DayStatus(date)
			if todayJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(status)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", status.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Target: %d kcal\n", status.TargetCalories)
			fmt.Fprintf(cmd.OutOrStdout(), "Consumed: %d kcal (%d entries)\n", status.Consumed, status.Entries)
			fmt.Fprintf(cmd.OutOrStdout(), "Remaining: %d kcal (%.0f%%)\n", status.Progress.Remaining, status.Progress.Percent)
			if status.Progress.Ratio > 100 {
				fmt.Fprintf(cmd.OutOrStdout(), "Over target by %d kcal\n", -status.Progress.Remaining)
			}
			if status.WeightRecorded > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f kg\n", status.WeightRecorded)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d / %d ml\n", status.WaterIntakeMl, status.WaterGoalMl)
			fmt.Fprintf(cmd.OutOrStdout(), "Streak: %d day(s)\n", status.Streak)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date (YYYY-MM-DD, default today)")
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "Print status as JSON")
}
