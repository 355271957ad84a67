package service

import (
	"math"

	"github.com/ChakkritGit/calflow/internal/model"
)

// goalAdjustmentKcal is the fixed daily offset subtracted for a lose goal
// and added for a gain goal. Single source of truth; callers must not
// hardcode the magnitude.
const goalAdjustmentKcal = 500

// GoalAdjustmentKcal exposes the configured offset for display purposes.
func GoalAdjustmentKcal() int { return goalAdjustmentKcal }

// DailyTarget computes the daily calorie target in kcal. A positive manual
// TDEE on the profile overrides the formula entirely. Otherwise: BMR via
// Mifflin-St Jeor, times the activity multiplier, plus the goal adjustment,
// rounded to the nearest integer. The result is not negative-checked.
func DailyTarget(p model.Profile) int {
	if p.ManualTDEE > 0 {
		return p.ManualTDEE
	}
	bmr := 10*p.CurrentWeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == model.GenderFemale {
		bmr -= 161
	} else {
		bmr += 5
	}
	tdee := bmr * p.ActivityLevel
	switch p.GoalType {
	case model.GoalLose:
		tdee -= goalAdjustmentKcal
	case model.GoalGain:
		tdee += goalAdjustmentKcal
	}
	return int(math.Round(tdee))
}

// Progress describes consumption against the daily target. Percent is
// clamped to [0,100] for display; Ratio carries the unclamped percentage so
// callers can alert when consumption exceeds the target.
type Progress struct {
	Remaining int     `json:"remaining"`
	Percent   float64 `json:"percent"`
	Ratio     float64 `json:"ratio"`
}

// ComputeProgress fails closed on a non-positive target: Remaining is still
// reported but both percentages stay zero rather than dividing by zero.
func ComputeProgress(target, consumed int) Progress {
	p := Progress{Remaining: target - consumed}
	if target <= 0 {
		return p
	}
	p.Ratio = float64(consumed) / float64(target) * 100
	p.Percent = math.Min(math.Max(p.Ratio, 0), 100)
	return p
}
