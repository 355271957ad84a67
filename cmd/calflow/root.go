package calflow

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var storePath string

var rootCmd = &cobra.Command{
	Use:   "calflow",
	Short: "calflow tracks daily food intake and body weight from your terminal",
	Long:  "calflow is a local-first calorie and weight tracking CLI with a computed daily energy target, water and streak tracking, and portable backups.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Path to state database")
}
