package model

import (
	"fmt"
	"strings"
	"time"
)

// Gender selects the constant term of the Mifflin-St Jeor equation.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// GoalType selects the direction of the daily calorie adjustment.
type GoalType string

const (
	GoalLose     GoalType = "lose"
	GoalMaintain GoalType = "maintain"
	GoalGain     GoalType = "gain"
)

// ActivityMultipliers maps the named exertion tiers to their TDEE
// multiplier. This is the single source of truth for valid activity levels.
var ActivityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// ParseActivityLevel resolves a tier name or a literal multiplier value.
func ParseActivityLevel(value string) (float64, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	if m, ok := ActivityMultipliers[name]; ok {
		return m, nil
	}
	for _, m := range ActivityMultipliers {
		if name == fmt.Sprintf("%g", m) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("invalid activity level %q (use sedentary, light, moderate, active or very_active)", value)
}

// ActivityTierName returns the tier name for a known multiplier, or the
// numeric form for anything else (imports accept arbitrary numbers).
func ActivityTierName(multiplier float64) string {
	for name, m := range ActivityMultipliers {
		if m == multiplier {
			return name
		}
	}
	return fmt.Sprintf("%g", multiplier)
}

// ParseGoalType accepts only the three known goal tokens.
func ParseGoalType(value string) (GoalType, error) {
	switch GoalType(strings.ToLower(strings.TrimSpace(value))) {
	case GoalLose:
		return GoalLose, nil
	case GoalMaintain:
		return GoalMaintain, nil
	case GoalGain:
		return GoalGain, nil
	}
	return "", fmt.Errorf("invalid goal %q (use lose, maintain or gain)", value)
}

// ParseGender treats the literal "female" (any case) as female and anything
// else as male.
func ParseGender(value string) Gender {
	if strings.ToLower(strings.TrimSpace(value)) == string(GenderFemale) {
		return GenderFemale
	}
	return GenderMale
}

// Profile is the single per-installation user record. JSON tags follow the
// CalorieFlow wire shape so backups from the original app import cleanly.
type Profile struct {
	Name            string    `json:"name"`
	Gender          Gender    `json:"gender"`
	Age             int       `json:"age"`
	HeightCm        float64   `json:"height"`
	CurrentWeightKg float64   `json:"currentWeight"`
	TargetWeightKg  float64   `json:"targetWeight"`
	ActivityLevel   float64   `json:"activityLevel"`
	GoalType        GoalType  `json:"goalType"`
	ManualTDEE      int       `json:"manualTDEE,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt"`
	Streak          int       `json:"streak"`
	LastLogAt       time.Time `json:"lastLogTimestamp,omitzero"`
	WaterGoalMl     int       `json:"waterGoal"`
}

// FoodEntry is immutable once created and owned by exactly one DailyLog.
type FoodEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Calories  int       `json:"calories"`
	Timestamp time.Time `json:"timestamp"`
}

// DailyLog holds one calendar date's entries. TotalCalories must always
// equal the sum of Foods[].Calories.
type DailyLog struct {
	Date           string      `json:"date"`
	Foods          []FoodEntry `json:"foods"`
	TotalCalories  int         `json:"totalCalories"`
	WeightRecorded float64     `json:"weightRecorded,omitempty"`
	WaterIntakeMl  int         `json:"waterIntake"`
}

// BackupDocument is the portable export/import wire shape.
type BackupDocument struct {
	User       Profile              `json:"user"`
	Logs       map[string]*DailyLog `json:"logs"`
	Version    string               `json:"version"`
	ExportedAt time.Time            `json:"exportedAt"`
}

// DateLayout is the DailyLog map key format (device-local calendar date).
const DateLayout = "2006-01-02"

// DefaultProfile is the first-launch profile and the layering base during
// import normalization.
func DefaultProfile(now time.Time) Profile {
	return Profile{
		Name:            "User",
		Gender:          GenderMale,
		Age:             25,
		HeightCm:        170,
		CurrentWeightKg: 70,
		TargetWeightKg:  65,
		ActivityLevel:   ActivityMultipliers["sedentary"],
		GoalType:        GoalLose,
		UpdatedAt:       now,
		WaterGoalMl:     2000,
	}
}
