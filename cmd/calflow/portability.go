package calflow

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ChakkritGit/calflow/internal/service"
)

var (
	exportOut  string
	importFile string
	importYes  bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export profile and logs to a portable backup document",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(ctx context.Context, t *service.Tracker) error {
			doc := t.ExportSnapshot(time.Now())
			out := exportOut
			if out == "" {
				out = fmt.Sprintf("calflow-%s%s", time.Now().Format("20060102-150405"), service.BackupExt)
			}
			raw, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("encode backup document: %w", err)
			}
			if err := os.WriteFile(out, raw, 0o644); err != nil {
				return fmt.Errorf("write backup document: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d day(s) to %s\n", len(doc.Logs), out)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a backup document, replacing all current data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if importFile == "" {
			return fmt.Errorf("--file is required")
		}
		raw, err := os.ReadFile(importFile)
		if err != nil {
			return fmt.Errorf("read backup document: %w", err)
		}
		if !importYes && !confirmReplace(cmd) {
			fmt.Fprintln(cmd.OutOrStdout(), "Import cancelled")
			return nil
		}
		return withTracker(func(ctx context.Context, t *service.Tracker) error {
			if err := t.ImportDocument(ctx, raw, time.Now()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d day(s); profile replaced\n", len(t.Logs()))
			return nil
		})
	},
}

// confirmReplace gates the destructive wholesale replace behind an explicit
// user confirmation.
func confirmReplace(cmd *cobra.Command) bool {
	fmt.Fprint(cmd.OutOrStdout(), "This replaces your current profile and all logs. Continue? [y/N] ")
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)

	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default calflow-<timestamp>"+service.BackupExt+")")
	importCmd.Flags().StringVar(&importFile, "file", "", "Backup document to import")
	importCmd.Flags().BoolVar(&importYes, "yes", false, "Skip the confirmation prompt")
}
