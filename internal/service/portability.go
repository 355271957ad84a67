package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ChakkritGit/calflow/internal/model"
)

// BackupVersion is the fixed version tag written into every export.
const BackupVersion = "1.0"

// BackupExt is the branding suffix for export files. The payload is plain
// JSON; the extension carries no format difference.
const BackupExt = ".cfbak"

// ErrBadFormat marks a document missing its user or logs field. ErrBadJSON
// marks input that is not valid JSON at all. Both leave state untouched.
var (
	ErrBadFormat = errors.New("backup document must contain user and logs")
	ErrBadJSON   = errors.New("backup document is not valid JSON")
)

// BuildExport snapshots the current profile and log mapping verbatim with a
// fresh exportedAt timestamp.
func BuildExport(profile model.Profile, logs map[string]*model.DailyLog, now time.Time) model.BackupDocument {
	return model.BackupDocument{
		User:       profile,
		Logs:       logs,
		Version:    BackupVersion,
		ExportedAt: now,
	}
}

// rawBackup defers all interpretation of the untrusted document: the user
// object is examined field by field, the logs mapping is decoded wholesale.
type rawBackup struct {
	User json.RawMessage `json:"user"`
	Logs json.RawMessage `json:"logs"`
}

// NormalizeBackup validates and coerces an untrusted backup document into a
// valid profile and log mapping. It is a pure computation: no I/O, no
// mutation of live state; callers gate the destructive install behind a
// confirmation step.
//
// Coercion rules: the profile is built by layering hardcoded defaults, the
// document's fields verbatim, then an override pass on the high-risk numeric
// fields that keeps any valid number INCLUDING an explicit zero and falls
// back to the default otherwise. Malformed individual fields are repaired
// silently (logged at debug only). Log contents are installed without
// per-entry validation; that trust boundary is deliberate for a local
// single-user backup format.
func NormalizeBackup(raw []byte, now time.Time, log zerolog.Logger) (model.Profile, map[string]*model.DailyLog, error) {
	var doc rawBackup
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.Profile{}, nil, fmt.Errorf("%w: %v", ErrBadJSON, err)
	}
	if isJSONNull(doc.User) || isJSONNull(doc.Logs) {
		return model.Profile{}, nil, ErrBadFormat
	}

	var user map[string]any
	if err := json.Unmarshal(doc.User, &user); err != nil {
		return model.Profile{}, nil, fmt.Errorf("%w: user is not an object", ErrBadFormat)
	}

	profile := normalizeProfile(user, now, log)

	logs := map[string]*model.DailyLog{}
	if err := json.Unmarshal(doc.Logs, &logs); err != nil {
		return model.Profile{}, nil, fmt.Errorf("%w: logs is not a date mapping", ErrBadFormat)
	}
	if logs == nil {
		logs = map[string]*model.DailyLog{}
	}
	return profile, logs, nil
}

func normalizeProfile(user map[string]any, now time.Time, log zerolog.Logger) model.Profile {
	p := model.DefaultProfile(now)

	if name, ok := user["name"].(string); ok && name != "" {
		p.Name = name
	}

	gender, _ := user["gender"].(string)
	p.Gender = model.ParseGender(gender)

	// Numeric override pass: an explicit zero is accepted as valid even
	// where physically nonsensical; only unparseable values fall back.
	p.CurrentWeightKg = coerceFloat(user, "currentWeight", p.CurrentWeightKg, log)
	p.TargetWeightKg = coerceFloat(user, "targetWeight", p.TargetWeightKg, log)
	p.HeightCm = coerceFloat(user, "height", p.HeightCm, log)
	p.Age = int(coerceFloat(user, "age", float64(p.Age), log))
	p.ActivityLevel = coerceFloat(user, "activityLevel", p.ActivityLevel, log)

	if goal, ok := user["goalType"].(string); ok {
		if parsed, err := model.ParseGoalType(goal); err == nil {
			p.GoalType = parsed
		} else {
			log.Debug().Str("field", "goalType").Str("value", goal).Msg("import: unknown goal, using lose")
			p.GoalType = model.GoalLose
		}
	} else {
		p.GoalType = model.GoalLose
	}

	// Manual TDEE only overrides the formula when strictly positive.
	p.ManualTDEE = 0
	if n, ok := parseNumber(user["manualTDEE"]); ok && n > 0 {
		p.ManualTDEE = int(n)
	}

	// Auxiliary tracking fields ride along verbatim when parseable.
	if n, ok := parseNumber(user["streak"]); ok {
		p.Streak = int(n)
	}
	if n, ok := parseNumber(user["waterGoal"]); ok {
		p.WaterGoalMl = int(n)
	}
	if s, ok := user["lastLogTimestamp"].(string); ok {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			p.LastLogAt = t
		}
	}

	// Always stamped fresh regardless of the source document.
	p.UpdatedAt = now
	return p
}

// coerceFloat applies the numeric override rule for one field.
func coerceFloat(user map[string]any, field string, fallback float64, log zerolog.Logger) float64 {
	v, present := user[field]
	if !present {
		return fallback
	}
	n, ok := parseNumber(v)
	if !ok {
		log.Debug().Str("field", field).Interface("value", v).Msg("import: unparseable number, using default")
		return fallback
	}
	return n
}

// parseNumber accepts JSON numbers and numeric strings; NaN and anything
// unparseable are rejected.
func parseNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) {
			return 0, false
		}
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
