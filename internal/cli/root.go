// Package cli defines the circ command tree.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "circ",
		Short: "In-memory library circulation desk",
		Long: `circ drives a small in-memory library: a catalog of books, journals,
DVDs, and ebooks, with checkouts, returns, renewals, holds, and fines.

The stores are populated from LIBRARY_SEED_PATH (or a built-in fixture)
on every run; nothing persists between invocations.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.PersistentFlags().String("config", "",
		"config file (default CONFIG_PATH env, then ./circ.yaml)")

	cmd.AddCommand(newDemoCmd())
	cmd.AddCommand(newDueCmd())
	cmd.AddCommand(newTypesCmd())

	return cmd
}

// configPath reads the persistent --config flag off any command in the
// tree.
func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}
