package calflow

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ChakkritGit/calflow/internal/service"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage snapshot archives of your profile and logs",
}

var (
	backupOut   string
	backupDir   string
	backupForce bool
	restoreFile string
	restoreYes  bool
)

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Snapshot the profile and all logs into an archive",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(ctx context.Context, t *service.Tracker) error {
			out := backupOut
			if out == "" {
				dir := backupDir
				if dir == "" {
					var err error
					if dir, err = defaultBackupDir(); err != nil {
						return err
					}
				}
				out = filepath.Join(dir, fmt.Sprintf("calflow-%s%s", time.Now().Format("20060102-150405"), service.BackupExt))
			}
			info, err := service.WriteBackup(t.ExportSnapshot(time.Now()), out, backupForce)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created backup: %s (%d day(s))\n", info.Path, info.LogDays)
			fmt.Fprintf(cmd.OutOrStdout(), "Checksum: %s\n", info.Checksum)
			return nil
		})
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List snapshot archives",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := backupDir
		if dir == "" {
			var err error
			if dir, err = defaultBackupDir(); err != nil {
				return err
			}
		}
		items, err := service.ListBackups(dir)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "FILE\tDAYS\tSNAPSHOT\tCHECKSUM")
		for _, it := range items {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\t%s\n", it.Path, it.LogDays, it.ExportedAt.Format(time.RFC3339), it.Checksum)
		}
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Replace all current data with an archive's contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		if restoreFile == "" {
			return fmt.Errorf("--file is required")
		}
		raw, err := service.ReadBackup(restoreFile)
		if err != nil {
			return err
		}
		if !restoreYes && !confirmReplace(cmd) {
			fmt.Fprintln(cmd.OutOrStdout(), "Restore cancelled")
			return nil
		}
		return withTracker(func(ctx context.Context, t *service.Tracker) error {
			if err := t.ImportDocument(ctx, raw, time.Now()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %d day(s) from %s\n", len(t.Logs()), restoreFile)
			return nil
		})
	},
}

func defaultBackupDir() (string, error) {
	path, err := resolveStorePath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(path), "backups"), nil
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd, backupListCmd, backupRestoreCmd)

	backupCreateCmd.Flags().StringVar(&backupOut, "out", "", "Archive output path")
	backupCreateCmd.Flags().StringVar(&backupDir, "dir", "", "Archive directory (used when --out is empty)")
	backupCreateCmd.Flags().BoolVar(&backupForce, "force", false, "Overwrite an existing archive at the output path")
	backupListCmd.Flags().StringVar(&backupDir, "dir", "", "Archive directory (default: alongside the store under backups/)")
	backupRestoreCmd.Flags().StringVar(&restoreFile, "file", "", "Archive to restore from")
	backupRestoreCmd.Flags().BoolVar(&restoreYes, "yes", false, "Skip the confirmation prompt")
}
