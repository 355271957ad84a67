package calflow

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ChakkritGit/calflow/internal/service"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Manage food entries",
}

var (
	foodName     string
	foodCalories int
	foodDate     string
	foodID       string
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(foodDate)
		if err != nil {
			return err
		}
		return withTracker(func(ctx context.Context, t *service.Tracker) error {
			entry, err := t.AddFood(ctx, date, foodName, foodCalories, time.Now())
			if err != nil {
				return err
			}
			log := t.LogFor(date)
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%d kcal) to %s [id %s]\n", entry.Name, entry.Calories, date, entry.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Total for %s: %d kcal\n", date, log.TotalCalories)
			return nil
		})
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a food entry by id",
	RunE: func(cmd *cobra.Command, args []string) error {
		if foodID == "" {
			return fmt.Errorf("--id is required")
		}
		date, err := parseDateOrToday(foodDate)
		if err != nil {
			return err
		}
		return withTracker(func(ctx context.Context, t *service.Tracker) error {
			removed, err := t.DeleteFood(ctx, date, foodID)
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintf(cmd.OutOrStdout(), "No entry %s on %s\n", foodID, date)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %s from %s\n", foodID, date)
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List food entries for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(foodDate)
		if err != nil {
			return err
		}
		return withTracker(func(ctx context.Context, t *service.Tracker) error {
			log := t.LogFor(date)
			if log == nil || len(log.Foods) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No entries for %s\n", date)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTIME\tNAME\tKCAL")
			for _, f := range log.Foods {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\n", f.ID, f.Timestamp.Local().Format("15:04"), f.Name, f.Calories)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d kcal\n", log.TotalCalories)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodAddCmd, foodDeleteCmd, foodListCmd)

	foodAddCmd.Flags().StringVar(&foodName, "name", "", "Food name")
	foodAddCmd.Flags().IntVar(&foodCalories, "calories", 0, "Calories (kcal)")
	foodAddCmd.Flags().StringVar(&foodDate, "date", "", "Date (YYYY-MM-DD, default today)")
	_ = foodAddCmd.MarkFlagRequired("name")

	foodDeleteCmd.Flags().StringVar(&foodID, "id", "", "Entry id")
	foodDeleteCmd.Flags().StringVar(&foodDate, "date", "", "Date (YYYY-MM-DD, default today)")

	foodListCmd.Flags().StringVar(&foodDate, "date", "", "Date (YYYY-MM-DD, default today)")
}
