package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ChakkritGit/calflow/internal/model"
)

// NewFoodEntry builds an entry with a fresh id. Calories are deliberately
// not range-checked; the mutator's contract is aggregate consistency, not
// semantic plausibility of inputs.
func NewFoodEntry(name string, calories int, at time.Time) (model.FoodEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.FoodEntry{}, fmt.Errorf("entry name is required")
	}
	if at.IsZero() {
		at = time.Now()
	}
	return model.FoodEntry{
		ID:        uuid.NewString(),
		Name:      name,
		Calories:  calories,
		Timestamp: at,
	}, nil
}

// AddFood appends entry to the log for date, creating the log lazily, and
// restores the aggregate invariant by recomputing the full sum.
func AddFood(logs map[string]*model.DailyLog, date string, entry model.FoodEntry) (*model.DailyLog, error) {
	if strings.TrimSpace(entry.Name) == "" {
		return nil, fmt.Errorf("entry name is required")
	}
	log := ensureLog(logs, date)
	log.Foods = append(log.Foods, entry)
	log.TotalCalories = sumCalories(log.Foods)
	return log, nil
}

// RemoveFood deletes the entry with the given id from the date's log and
// recomputes TotalCalories as the full sum of the remaining entries (never
// a decrement, so prior drift cannot survive a delete). Removing from a
// date with no log, or an unknown id, is a no-op; the bool reports whether
// an entry was removed.
func RemoveFood(logs map[string]*model.DailyLog, date, foodID string) bool {
	log, ok := logs[date]
	if !ok {
		return false
	}
	kept := log.Foods[:0]
	removed := false
	for _, f := range log.Foods {
		if f.ID == foodID {
			removed = true
			continue
		}
		kept = append(kept, f)
	}
	log.Foods = kept
	log.TotalCalories = sumCalories(log.Foods)
	return removed
}

// RecordWeight sets the date's recorded weight and the profile's current
// weight together; callers treat the two writes as one transaction.
func RecordWeight(logs map[string]*model.DailyLog, profile *model.Profile, date string, weightKg float64) *model.DailyLog {
	log := ensureLog(logs, date)
	log.WeightRecorded = weightKg
	profile.CurrentWeightKg = weightKg
	return log
}

// AddWater accumulates milliliters on the date's log.
func AddWater(logs map[string]*model.DailyLog, date string, ml int) *model.DailyLog {
	log := ensureLog(logs, date)
	log.WaterIntakeMl += ml
	return log
}

// TouchStreak maintains the consecutive-day counter and last-log timestamp
// on the profile, keyed by the log day being written. Same-day repeats
// leave the streak alone, a backfill onto an earlier day never advances it,
// and a gap longer than one day resets it.
func TouchStreak(p *model.Profile, day time.Time) {
	key := day.Format(model.DateLayout)
	switch {
	case p.LastLogAt.IsZero():
		p.Streak = 1
	case p.LastLogAt.Format(model.DateLayout) == key:
		// already counted this day
		return
	case day.Before(p.LastLogAt):
		// backfill onto an earlier day
		return
	case p.LastLogAt.AddDate(0, 0, 1).Format(model.DateLayout) == key:
		p.Streak++
	default:
		p.Streak = 1
	}
	p.LastLogAt = day
}

func ensureLog(logs map[string]*model.DailyLog, date string) *model.DailyLog {
	if log, ok := logs[date]; ok {
		return log
	}
	log := &model.DailyLog{Date: date, Foods: []model.FoodEntry{}}
	logs[date] = log
	return log
}

func sumCalories(foods []model.FoodEntry) int {
	total := 0
	for _, f := range foods {
		total += f.Calories
	}
	return total
}
