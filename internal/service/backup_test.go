package service_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ChakkritGit/calflow/internal/model"
	"github.com/ChakkritGit/calflow/internal/service"
)

func snapshotDoc(t *testing.T, now time.Time, dates ...string) model.BackupDocument {
	t.Helper()
	logs := map[string]*model.DailyLog{}
	for _, date := range dates {
		if _, err := service.AddFood(logs, date, mustEntry(t, "Meal", 500)); err != nil {
			t.Fatalf("add food: %v", err)
		}
	}
	return service.BuildExport(model.DefaultProfile(now), logs, now)
}

func TestBackupWriteRestoreRoundTrip(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	out := filepath.Join(t.TempDir(), "snap"+service.BackupExt)

	info, err := service.WriteBackup(snapshotDoc(t, now, "2026-08-22", "2026-08-23"), out, false)
	if err != nil {
		t.Fatalf("write backup: %v", err)
	}
	if info.LogDays != 2 || info.Version != service.BackupVersion {
		t.Fatalf("info = %+v, want 2 days version %s", info, service.BackupVersion)
	}
	if !info.ExportedAt.Equal(now) {
		t.Fatalf("exportedAt = %v, want %v", info.ExportedAt, now)
	}

	raw, err := service.ReadBackup(out)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	_, logs, err := service.NormalizeBackup(raw, time.Now(), zerolog.Nop())
	if err != nil {
		t.Fatalf("normalize archive: %v", err)
	}
	if len(logs) != 2 || logs["2026-08-23"].TotalCalories != 500 {
		t.Fatalf("restored logs = %+v", logs)
	}
}

func TestBackupTamperedArchiveRejected(t *testing.T) {
	t.Parallel()
	out := filepath.Join(t.TempDir(), "snap"+service.BackupExt)
	if _, err := service.WriteBackup(snapshotDoc(t, time.Now(), "2026-08-23"), out, false); err != nil {
		t.Fatalf("write backup: %v", err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read archive: %v", err)
	}
	tampered := strings.Replace(string(raw), "500", "100", 1)
	if err := os.WriteFile(out, []byte(tampered), 0o644); err != nil {
		t.Fatalf("tamper archive: %v", err)
	}

	if _, err := service.ReadBackup(out); err == nil || !strings.Contains(err.Error(), "checksum mismatch") {
		t.Fatalf("expected checksum mismatch, got %v", err)
	}
}

func TestBackupCreateRefusesOverwrite(t *testing.T) {
	t.Parallel()
	out := filepath.Join(t.TempDir(), "snap"+service.BackupExt)
	first := snapshotDoc(t, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), "2026-08-20")
	if _, err := service.WriteBackup(first, out, false); err != nil {
		t.Fatalf("write backup: %v", err)
	}

	second := snapshotDoc(t, time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), "2026-08-22", "2026-08-23")
	if _, err := service.WriteBackup(second, out, false); err == nil {
		t.Fatal("expected overwrite without force to fail")
	}

	info, err := service.WriteBackup(second, out, true)
	if err != nil {
		t.Fatalf("forced overwrite: %v", err)
	}
	if info.LogDays != 2 {
		t.Fatalf("forced overwrite kept old archive: %+v", info)
	}
	// Sidecar must follow the new content or every later read fails.
	if _, err := service.ReadBackup(out); err != nil {
		t.Fatalf("read after forced overwrite: %v", err)
	}
}

func TestListBackupsNewestSnapshotFirst(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	older := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)

	if _, err := service.WriteBackup(snapshotDoc(t, newer, "2026-08-23"), filepath.Join(dir, "a"+service.BackupExt), false); err != nil {
		t.Fatalf("write newer: %v", err)
	}
	if _, err := service.WriteBackup(snapshotDoc(t, older, "2026-08-01"), filepath.Join(dir, "b"+service.BackupExt), false); err != nil {
		t.Fatalf("write older: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write stray file: %v", err)
	}

	items, err := service.ListBackups(dir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("listed %d archives, want 2", len(items))
	}
	if !items[0].ExportedAt.Equal(newer) || !items[1].ExportedAt.Equal(older) {
		t.Fatalf("order = %v then %v, want newest first", items[0].ExportedAt, items[1].ExportedAt)
	}
	if items[0].Checksum == "" {
		t.Fatal("listing must carry the sidecar checksum")
	}
}

func TestListBackupsMissingDir(t *testing.T) {
	t.Parallel()
	items, err := service.ListBackups(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing dir must not error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("items = %v, want empty", items)
	}
}
