package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/ChakkritGit/calflow/internal/model"
)

// ProfilePatch carries the fields a caller wants to change; nil pointers
// leave the current value in place.
type ProfilePatch struct {
	Name            *string
	Gender          *model.Gender
	Age             *int
	HeightCm        *float64
	CurrentWeightKg *float64
	TargetWeightKg  *float64
	ActivityLevel   *float64
	GoalType        *model.GoalType
	ManualTDEE      *int
	WaterGoalMl     *int
}

// ApplyProfilePatch validates and applies a partial update, stamping
// UpdatedAt. Direct user input is validated here; imported documents go
// through the normalizer's silent-coercion path instead.
func ApplyProfilePatch(p *model.Profile, patch ProfilePatch, now time.Time) error {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return fmt.Errorf("profile name is required")
		}
		p.Name = name
	}
	if patch.Gender != nil {
		p.Gender = *patch.Gender
	}
	if patch.Age != nil {
		if *patch.Age <= 0 {
			return fmt.Errorf("age must be > 0")
		}
		p.Age = *patch.Age
	}
	if patch.HeightCm != nil {
		if *patch.HeightCm <= 0 {
			return fmt.Errorf("height must be > 0")
		}
		p.HeightCm = *patch.HeightCm
	}
	if patch.CurrentWeightKg != nil {
		if *patch.CurrentWeightKg <= 0 {
			return fmt.Errorf("weight must be > 0")
		}
		p.CurrentWeightKg = *patch.CurrentWeightKg
	}
	if patch.TargetWeightKg != nil {
		if *patch.TargetWeightKg <= 0 {
			return fmt.Errorf("target weight must be > 0")
		}
		p.TargetWeightKg = *patch.TargetWeightKg
	}
	if patch.ActivityLevel != nil {
		p.ActivityLevel = *patch.ActivityLevel
	}
	if patch.GoalType != nil {
		p.GoalType = *patch.GoalType
	}
	if patch.ManualTDEE != nil {
		if *patch.ManualTDEE < 0 {
			return fmt.Errorf("manual TDEE must be >= 0")
		}
		p.ManualTDEE = *patch.ManualTDEE
	}
	if patch.WaterGoalMl != nil {
		if *patch.WaterGoalMl < 0 {
			return fmt.Errorf("water goal must be >= 0")
		}
		p.WaterGoalMl = *patch.WaterGoalMl
	}
	p.UpdatedAt = now
	return nil
}
