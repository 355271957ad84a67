package calflow

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChakkritGit/calflow/internal/app"
	"github.com/ChakkritGit/calflow/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local calflow store",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized calflow store at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
