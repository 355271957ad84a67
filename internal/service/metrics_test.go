package service_test

import (
	"testing"
	"time"

	"github.com/ChakkritGit/calflow/internal/model"
	"github.com/ChakkritGit/calflow/internal/service"
)

func baseProfile() model.Profile {
	p := model.DefaultProfile(time.Now())
	p.Gender = model.GenderMale
	p.Age = 25
	p.HeightCm = 170
	p.CurrentWeightKg = 70
	p.ActivityLevel = 1.2
	p.GoalType = model.GoalLose
	return p
}

func TestDailyTargetMifflinStJeor(t *testing.T) {
	t.Parallel()
	p := baseProfile()

	// BMR = 10*70 + 6.25*170 - 5*25 + 5 = 1642.5; TDEE = 1642.5*1.2 = 1971
	got := service.DailyTarget(p)
	want := 1971 - service.GoalAdjustmentKcal()
	if got != want {
		t.Fatalf("male lose target = %d, want %d", got, want)
	}

	p.GoalType = model.GoalMaintain
	if got := service.DailyTarget(p); got != 1971 {
		t.Fatalf("maintain target = %d, want 1971", got)
	}

	p.GoalType = model.GoalGain
	if got := service.DailyTarget(p); got != 1971+service.GoalAdjustmentKcal() {
		t.Fatalf("gain target = %d, want %d", got, 1971+service.GoalAdjustmentKcal())
	}
}

func TestDailyTargetFemaleConstant(t *testing.T) {
	t.Parallel()
	p := baseProfile()
	p.Gender = model.GenderFemale
	p.GoalType = model.GoalMaintain

	// BMR = 10*70 + 6.25*170 - 5*25 - 161 = 1476.5; TDEE = 1476.5*1.2 = 1771.8
	if got := service.DailyTarget(p); got != 1772 {
		t.Fatalf("female maintain target = %d, want 1772", got)
	}
}

func TestDailyTargetManualOverride(t *testing.T) {
	t.Parallel()
	p := baseProfile()
	p.ManualTDEE = 1800
	p.Gender = model.GenderFemale
	p.ActivityLevel = 1.9
	p.GoalType = model.GoalGain

	if got := service.DailyTarget(p); got != 1800 {
		t.Fatalf("manual override target = %d, want exactly 1800", got)
	}
}

func TestComputeProgress(t *testing.T) {
	t.Parallel()

	pr := service.ComputeProgress(2000, 500)
	if pr.Remaining != 1500 {
		t.Fatalf("remaining = %d, want 1500", pr.Remaining)
	}
	if pr.Percent != 25 {
		t.Fatalf("percent = %v, want 25", pr.Percent)
	}

	over := service.ComputeProgress(2000, 3000)
	if over.Remaining != -1000 {
		t.Fatalf("over remaining = %d, want -1000", over.Remaining)
	}
	if over.Percent != 100 {
		t.Fatalf("over percent = %v, want clamped 100", over.Percent)
	}
	if over.Ratio != 150 {
		t.Fatalf("over ratio = %v, want unclamped 150", over.Ratio)
	}
}

func TestComputeProgressFailsClosedOnBadTarget(t *testing.T) {
	t.Parallel()
	for _, target := range []int{0, -100} {
		pr := service.ComputeProgress(target, 500)
		if pr.Percent != 0 || pr.Ratio != 0 {
			t.Fatalf("target %d: percent=%v ratio=%v, want zeros", target, pr.Percent, pr.Ratio)
		}
		if pr.Remaining != target-500 {
			t.Fatalf("target %d: remaining = %d, want %d", target, pr.Remaining, target-500)
		}
	}
}
