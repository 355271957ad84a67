package calflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ChakkritGit/calflow/internal/app"
	"github.com/ChakkritGit/calflow/internal/config"
	"github.com/ChakkritGit/calflow/internal/logger"
	"github.com/ChakkritGit/calflow/internal/model"
	"github.com/ChakkritGit/calflow/internal/service"
	"github.com/ChakkritGit/calflow/internal/store"
)

func resolveStorePath() (string, error) {
	if storePath != "" {
		return storePath, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if cfg.StorePath != "" {
		return cfg.StorePath, nil
	}
	return app.DefaultStorePath()
}

// withTracker opens the store, loads state, and hands a ready tracker to
// run. Mutations are rejected until the load fully resolves, so a command
// can never clobber persisted state with placeholder defaults.
func withTracker(run func(context.Context, *service.Tracker) error) error {
	path, err := resolveStorePath()
	if err != nil {
		return err
	}
	if err := app.EnsureStoreDir(path); err != nil {
		return err
	}
	st, err := store.OpenSQLite(path)
	if err != nil {
		return err
	}
	defer st.Close()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New("calflow", cfg.LogLevel)

	tracker := service.NewTracker(st, log)
	ctx := context.Background()
	if err := tracker.Load(ctx); err != nil {
		return err
	}
	return run(ctx, tracker)
}

// parseDateOrToday accepts YYYY-MM-DD in the device's local time zone.
func parseDateOrToday(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now().Format(model.DateLayout), nil
	}
	t, err := time.ParseInLocation(model.DateLayout, value, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", value)
	}
	return t.Format(model.DateLayout), nil
}
