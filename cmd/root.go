package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/lingua/internal/content"
	"github.com/abhisek/lingua/internal/progress"
	"github.com/abhisek/lingua/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lingua",
	Short: "Language learning progress tracker",
	Long:  "Lingua — terminal companion for tracking language modules, quiz scores, daily streaks, and badges.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Optional; a missing .env is not an error.
		_ = godotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LINGUA_DB env var)")
	rootCmd.PersistentFlags().String("content", "", "Path to a JSON content file (defaults to the built-in catalog)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(contentCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LINGUA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the SQLite store for the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// openLedger opens the store and builds the progress ledger over it.
// The caller closes the store.
func openLedger(cmd *cobra.Command) (*store.Store, *progress.Service, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}
	ledger := progress.NewService(cmd.Context(), st.StateRepo(), st.EventRepo())
	return st, ledger, nil
}

// loadCatalog builds the content catalog from --content when given,
// otherwise from the built-in sample definition.
func loadCatalog(cmd *cobra.Command) (*content.Catalog, error) {
	if p, _ := cmd.Flags().GetString("content"); p != "" {
		return content.LoadCatalog(p)
	}
	return content.SeedCatalog(), nil
}
