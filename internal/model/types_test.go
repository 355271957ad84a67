package model_test

import (
	"testing"
	"time"

	"github.com/ChakkritGit/calflow/internal/model"
)

func TestParseActivityLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]float64{
		"sedentary":   1.2,
		"Light":       1.375,
		"moderate":    1.55,
		"active":      1.725,
		"very_active": 1.9,
		"1.55":        1.55,
	}
	for in, want := range cases {
		got, err := model.ParseActivityLevel(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q = %v, want %v", in, got, want)
		}
	}
	if _, err := model.ParseActivityLevel("couch"); err == nil {
		t.Fatal("expected error for unknown tier")
	}
	if _, err := model.ParseActivityLevel("1.5"); err == nil {
		t.Fatal("expected error for multiplier outside the fixed set")
	}
}

func TestParseGoalType(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"lose", "Maintain", "GAIN"} {
		if _, err := model.ParseGoalType(in); err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
	}
	if _, err := model.ParseGoalType("bulk"); err == nil {
		t.Fatal("expected error for unknown goal")
	}
}

func TestParseGender(t *testing.T) {
	t.Parallel()
	if got := model.ParseGender("FEMALE"); got != model.GenderFemale {
		t.Fatalf("parse FEMALE = %v", got)
	}
	for _, in := range []string{"male", "other", "", "f"} {
		if got := model.ParseGender(in); got != model.GenderMale {
			t.Fatalf("parse %q = %v, want male", in, got)
		}
	}
}

func TestDefaultProfileIsComputable(t *testing.T) {
	t.Parallel()
	p := model.DefaultProfile(time.Now())
	if p.ActivityLevel <= 0 {
		t.Fatalf("default activity level must be positive, got %v", p.ActivityLevel)
	}
	if p.GoalType != model.GoalLose {
		t.Fatalf("default goal = %v, want lose", p.GoalType)
	}
}
