package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ChakkritGit/calflow/internal/model"
	"github.com/ChakkritGit/calflow/internal/store"
)

// ErrNotReady is returned when a mutation is attempted before Load has
// resolved the persisted state; accepting one earlier could overwrite real
// data with placeholder defaults.
var ErrNotReady = errors.New("tracker state not loaded")

// Tracker owns the live application state: the single profile and the
// date-keyed log mapping. All mutations run synchronously; each one applies
// a pure transition and then persists the touched blob(s) through the
// store port.
type Tracker struct {
	store store.Store
	log   zerolog.Logger

	profile model.Profile
	logs    map[string]*model.DailyLog
	ready   bool
}

func NewTracker(st store.Store, log zerolog.Logger) *Tracker {
	return &Tracker{
		store: st,
		log:   log,
		logs:  map[string]*model.DailyLog{},
	}
}

// Load resolves both state blobs, falling back to first-launch defaults for
// missing keys, and opens the tracker for mutations.
func (t *Tracker) Load(ctx context.Context) error {
	now := time.Now()
	t.profile = model.DefaultProfile(now)
	t.logs = map[string]*model.DailyLog{}

	raw, hadProfile, err := t.store.Get(ctx, store.KeyProfile)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if hadProfile {
		if err := json.Unmarshal(raw, &t.profile); err != nil {
			return fmt.Errorf("decode stored profile: %w", err)
		}
	}

	raw, found, err := t.store.Get(ctx, store.KeyDailyLogs)
	if err != nil {
		return fmt.Errorf("load daily logs: %w", err)
	}
	if found {
		if err := json.Unmarshal(raw, &t.logs); err != nil {
			return fmt.Errorf("decode stored daily logs: %w", err)
		}
		if t.logs == nil {
			t.logs = map[string]*model.DailyLog{}
		}
	}

	t.ready = true
	t.log.Debug().Bool("had_profile", hadProfile).Int("log_days", len(t.logs)).Msg("state loaded")
	return nil
}

// Profile returns a copy of the live profile.
func (t *Tracker) Profile() model.Profile { return t.profile }

// LogFor returns the log for a date, or nil when nothing was recorded.
func (t *Tracker) LogFor(date string) *model.DailyLog { return t.logs[date] }

// Logs exposes the full mapping for read-only use (doctor, export).
func (t *Tracker) Logs() map[string]*model.DailyLog { return t.logs }

// DailyTarget is the computed (or manually overridden) kcal target.
func (t *Tracker) DailyTarget() int { return DailyTarget(t.profile) }

// DayStatus is the read model behind the today command.
type DayStatus struct {
	Date           string   `json:"date"`
	TargetCalories int      `json:"target_calories"`
	Consumed       int      `json:"consumed_calories"`
	Progress       Progress `json:"progress"`
	WeightRecorded float64  `json:"weight_recorded,omitempty"`
	WaterIntakeMl  int      `json:"water_intake_ml"`
	WaterGoalMl    int      `json:"water_goal_ml"`
	Streak         int      `json:"streak"`
	Entries        int      `json:"entries"`
}

func (t *Tracker) DayStatus(date string) DayStatus {
	target := DailyTarget(t.profile)
	status := DayStatus{
		Date:           date,
		TargetCalories: target,
		WaterGoalMl:    t.profile.WaterGoalMl,
		Streak:         t.profile.Streak,
	}
	if log, ok := t.logs[date]; ok {
		status.Consumed = log.TotalCalories
		status.WeightRecorded = log.WeightRecorded
		status.WaterIntakeMl = log.WaterIntakeMl
		status.Entries = len(log.Foods)
	}
	status.Progress = ComputeProgress(target, status.Consumed)
	return status
}

// AddFood creates an entry on the date's log and persists logs and profile
// (the profile carries the streak bookkeeping).
func (t *Tracker) AddFood(ctx context.Context, date, name string, calories int, at time.Time) (model.FoodEntry, error) {
	if !t.ready {
		return model.FoodEntry{}, ErrNotReady
	}
	day, err := time.ParseInLocation(model.DateLayout, date, time.Local)
	if err != nil {
		return model.FoodEntry{}, fmt.Errorf("invalid log date %q: %w", date, err)
	}
	entry, err := NewFoodEntry(name, calories, at)
	if err != nil {
		return model.FoodEntry{}, err
	}
	if _, err := AddFood(t.logs, date, entry); err != nil {
		return model.FoodEntry{}, err
	}
	// The streak counts logged days, so it keys off the log date, not the
	// entry timestamp; backfilling an old day must not bump it.
	TouchStreak(&t.profile, day)
	if err := t.persistLogs(ctx); err != nil {
		return model.FoodEntry{}, err
	}
	if err := t.persistProfile(ctx); err != nil {
		return model.FoodEntry{}, err
	}
	return entry, nil
}

// DeleteFood removes an entry by id and persists the logs blob.
func (t *Tracker) DeleteFood(ctx context.Context, date, foodID string) (bool, error) {
	if !t.ready {
		return false, ErrNotReady
	}
	removed := RemoveFood(t.logs, date, foodID)
	if !removed {
		return false, nil
	}
	return true, t.persistLogs(ctx)
}

// UpdateWeight records a weight on the date's log and mirrors it onto the
// profile; both blobs are persisted so the two writes land together.
func (t *Tracker) UpdateWeight(ctx context.Context, date string, weightKg float64, now time.Time) error {
	if !t.ready {
		return ErrNotReady
	}
	if weightKg <= 0 {
		return fmt.Errorf("weight must be > 0")
	}
	RecordWeight(t.logs, &t.profile, date, weightKg)
	t.profile.UpdatedAt = now
	if err := t.persistLogs(ctx); err != nil {
		return err
	}
	return t.persistProfile(ctx)
}

// AddWater accumulates intake for the date and persists the logs blob.
func (t *Tracker) AddWater(ctx context.Context, date string, ml int) (*model.DailyLog, error) {
	if !t.ready {
		return nil, ErrNotReady
	}
	if ml <= 0 {
		return nil, fmt.Errorf("water amount must be > 0")
	}
	log := AddWater(t.logs, date, ml)
	return log, t.persistLogs(ctx)
}

// UpdateProfile applies a partial profile update.
func (t *Tracker) UpdateProfile(ctx context.Context, patch ProfilePatch, now time.Time) error {
	if !t.ready {
		return ErrNotReady
	}
	if err := ApplyProfilePatch(&t.profile, patch, now); err != nil {
		return err
	}
	return t.persistProfile(ctx)
}

// ExportSnapshot builds the portable backup document from live state.
func (t *Tracker) ExportSnapshot(now time.Time) model.BackupDocument {
	return BuildExport(t.profile, t.logs, now)
}

// ImportDocument normalizes an untrusted backup and, on success, replaces
// the live state wholesale and persists both blobs. Any error leaves state
// untouched. Callers are expected to have confirmed the destructive replace
// with the user beforehand.
func (t *Tracker) ImportDocument(ctx context.Context, raw []byte, now time.Time) error {
	if !t.ready {
		return ErrNotReady
	}
	profile, logs, err := NormalizeBackup(raw, now, t.log)
	if err != nil {
		return err
	}
	prevProfile, prevLogs := t.profile, t.logs
	t.profile, t.logs = profile, logs
	if err := t.persistProfile(ctx); err != nil {
		t.profile, t.logs = prevProfile, prevLogs
		return err
	}
	if err := t.persistLogs(ctx); err != nil {
		t.profile, t.logs = prevProfile, prevLogs
		return err
	}
	t.log.Info().Int("log_days", len(logs)).Msg("backup imported")
	return nil
}

// Doctor runs the integrity checks and, when fix is set and repairs were
// applied, persists the corrected logs blob.
func (t *Tracker) Doctor(ctx context.Context, fix bool) (DoctorReport, error) {
	if !t.ready {
		return DoctorReport{}, ErrNotReady
	}
	report := RunDoctor(t.logs, fix)
	if report.FixedTotals > 0 {
		if err := t.persistLogs(ctx); err != nil {
			return report, err
		}
	}
	return report, nil
}

func (t *Tracker) persistProfile(ctx context.Context) error {
	raw, err := json.Marshal(t.profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := t.store.Set(ctx, store.KeyProfile, raw); err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}
	t.log.Debug().Msg("profile persisted")
	return nil
}

func (t *Tracker) persistLogs(ctx context.Context) error {
	raw, err := json.Marshal(t.logs)
	if err != nil {
		return fmt.Errorf("encode daily logs: %w", err)
	}
	if err := t.store.Set(ctx, store.KeyDailyLogs, raw); err != nil {
		return fmt.Errorf("persist daily logs: %w", err)
	}
	t.log.Debug().Msg("daily logs persisted")
	return nil
}
