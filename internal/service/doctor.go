package service

import (
	"github.com/ChakkritGit/calflow/internal/model"
)

// DoctorReport summarizes integrity findings over the log mapping.
type DoctorReport struct {
	DriftedTotals    int `json:"drifted_totals"`
	DuplicateFoodIDs int `json:"duplicate_food_ids"`
	EmptyNames       int `json:"empty_names"`
	FixedTotals      int `json:"fixed_totals,omitempty"`
}

// RunDoctor checks every daily log against the aggregate invariant
// (totalCalories == sum of entry calories) and for duplicate entry ids and
// empty names. With fix set, drifted totals are recomputed in place;
// duplicate ids and empty names are reported only, since there is no safe
// automatic repair for them.
func RunDoctor(logs map[string]*model.DailyLog, fix bool) DoctorReport {
	report := DoctorReport{}
	for _, log := range logs {
		seen := map[string]bool{}
		for _, f := range log.Foods {
			if f.Name == "" {
				report.EmptyNames++
			}
			if seen[f.ID] {
				report.DuplicateFoodIDs++
			}
			seen[f.ID] = true
		}
		if sum := sumCalories(log.Foods); sum != log.TotalCalories {
			report.DriftedTotals++
			if fix {
				log.TotalCalories = sum
				report.FixedTotals++
			}
		}
	}
	return report
}
