package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ChakkritGit/calflow/internal/model"
)

// BackupInfo describes one snapshot archive: a backup document on disk plus
// its sha256 sidecar. Archives use the same document shape as export, so a
// restore runs through the import normalizer like any other untrusted input.
type BackupInfo struct {
	Path       string    `json:"path"`
	Checksum   string    `json:"checksum"`
	Version    string    `json:"version"`
	ExportedAt time.Time `json:"exported_at"`
	LogDays    int       `json:"log_days"`
	SizeBytes  int64     `json:"size_bytes"`
}

// WriteBackup writes doc to outPath and a sha256 sidecar next to it. An
// existing archive at outPath is only overwritten when force is set.
func WriteBackup(doc model.BackupDocument, outPath string, force bool) (BackupInfo, error) {
	if strings.TrimSpace(outPath) == "" {
		return BackupInfo{}, fmt.Errorf("backup output path is required")
	}
	if !force {
		if _, err := os.Stat(outPath); err == nil {
			return BackupInfo{}, fmt.Errorf("backup %s already exists; use --force to overwrite", outPath)
		}
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return BackupInfo{}, fmt.Errorf("encode backup document: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}
	if err := os.WriteFile(outPath, raw, 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write backup document: %w", err)
	}
	checksum := sha256Hex(raw)
	if err := os.WriteFile(outPath+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	return BackupInfo{
		Path:       outPath,
		Checksum:   checksum,
		Version:    doc.Version,
		ExportedAt: doc.ExportedAt,
		LogDays:    len(doc.Logs),
		SizeBytes:  int64(len(raw)),
	}, nil
}

// ReadBackup loads an archive's raw document bytes. When a checksum sidecar
// is present the content must match it; a tampered archive is rejected
// before any of it reaches the import path.
func ReadBackup(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backup %s: %w", path, err)
	}
	if expected, err := os.ReadFile(path + ".sha256"); err == nil {
		if strings.TrimSpace(string(expected)) != sha256Hex(raw) {
			return nil, fmt.Errorf("backup checksum mismatch for %s", path)
		}
	}
	return raw, nil
}

// ListBackups scans dir for archives, newest snapshot first. A missing dir
// means no backups, not an error.
func ListBackups(dir string) ([]BackupInfo, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []BackupInfo{}, nil
		}
		return nil, fmt.Errorf("read backup dir: %w", err)
	}
	out := make([]BackupInfo, 0)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), BackupExt) {
			continue
		}
		info, err := statBackup(filepath.Join(dir, f.Name()))
		if err != nil {
			continue
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ExportedAt.After(out[j].ExportedAt)
	})
	return out, nil
}

// statBackup summarizes one archive from its document header. A document
// that does not even parse still lists, with the file's mtime standing in
// for the snapshot time.
func statBackup(path string) (BackupInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return BackupInfo{}, err
	}
	info := BackupInfo{Path: path, SizeBytes: int64(len(raw))}
	var head struct {
		Version    string                     `json:"version"`
		ExportedAt time.Time                  `json:"exportedAt"`
		Logs       map[string]json.RawMessage `json:"logs"`
	}
	if err := json.Unmarshal(raw, &head); err == nil {
		info.Version = head.Version
		info.ExportedAt = head.ExportedAt
		info.LogDays = len(head.Logs)
	}
	if info.ExportedAt.IsZero() {
		if st, err := os.Stat(path); err == nil {
			info.ExportedAt = st.ModTime()
		}
	}
	if b, err := os.ReadFile(path + ".sha256"); err == nil {
		info.Checksum = strings.TrimSpace(string(b))
	}
	return info, nil
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
