package calflow

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ChakkritGit/calflow/internal/model"
	"github.com/ChakkritGit/calflow/internal/service"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the user profile",
}

var (
	profileName       string
	profileGender     string
	profileAge        int
	profileHeight     float64
	profileWeight     float64
	profileTarget     float64
	profileActivity   string
	profileGoal       string
	profileManualTDEE int
	profileWaterGoal  int
	profileJSON       bool
)

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile and computed daily target",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(ctx context.Context, t *service.Tracker) error {
			p := t.Profile()
			if profileJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(p)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", p.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Gender: %s\n", p.Gender)
			fmt.Fprintf(cmd.OutOrStdout(), "Age: %d\n", p.Age)
			fmt.Fprintf(cmd.OutOrStdout(), "Height: %.1f cm\n", p.HeightCm)
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f kg (target %.1f kg)\n", p.CurrentWeightKg, p.TargetWeightKg)
			fmt.Fprintf(cmd.OutOrStdout(), "Activity: %s (%.3g)\n", model.ActivityTierName(p.ActivityLevel), p.ActivityLevel)
			fmt.Fprintf(cmd.OutOrStdout(), "Goal: %s\n", p.GoalType)
			if p.ManualTDEE > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Manual TDEE: %d kcal\n", p.ManualTDEE)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Water goal: %d ml\n", p.WaterGoalMl)
			fmt.Fprintf(cmd.OutOrStdout(), "Streak: %d day(s)\n", p.Streak)
			fmt.Fprintf(cmd.OutOrStdout(), "Daily target: %d kcal\n", t.DailyTarget())
			return nil
		})
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := service.ProfilePatch{}
		flags := cmd.Flags()
		if flags.Changed("name") {
			patch.Name = &profileName
		}
		if flags.Changed("gender") {
			gender := model.ParseGender(profileGender)
			patch.Gender = &gender
		}
		if flags.Changed("age") {
			patch.Age = &profileAge
		}
		if flags.Changed("height") {
			patch.HeightCm = &profileHeight
		}
		if flags.Changed("weight") {
			patch.CurrentWeightKg = &profileWeight
		}
		if flags.Changed("target-weight") {
			patch.TargetWeightKg = &profileTarget
		}
		if flags.Changed("activity") {
			level, err := model.ParseActivityLevel(profileActivity)
			if err != nil {
				return err
			}
			patch.ActivityLevel = &level
		}
		if flags.Changed("goal") {
			goal, err := model.ParseGoalType(profileGoal)
			if err != nil {
				return err
			}
			patch.GoalType = &goal
		}
		if flags.Changed("manual-tdee") {
			patch.ManualTDEE = &profileManualTDEE
		}
		if flags.Changed("water-goal") {
			patch.WaterGoalMl = &profileWaterGoal
		}
		return withTracker(func(ctx context.Context, t *service.Tracker) error {
			if err := t.UpdateProfile(ctx, patch, time.Now()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile updated. Daily target: %d kcal\n", t.DailyTarget())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd, profileSetCmd)

	profileShowCmd.Flags().BoolVar(&profileJSON, "json", false, "Print profile as JSON")

	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender (male or female)")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in centimeters")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Current weight in kilograms")
	profileSetCmd.Flags().Float64Var(&profileTarget, "target-weight", 0, "Target weight in kilograms")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "Activity tier (sedentary, light, moderate, active, very_active)")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "Goal (lose, maintain, gain)")
	profileSetCmd.Flags().IntVar(&profileManualTDEE, "manual-tdee", 0, "Manual TDEE override in kcal (0 clears it)")
	profileSetCmd.Flags().IntVar(&profileWaterGoal, "water-goal", 0, "Daily water goal in milliliters")
}
