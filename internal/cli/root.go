// Package cli implements the command-line interface for cornertable.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewbrown/cornertable/internal/store"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cornertable",
	Short: "Rubik's cube corner heuristic table generator",
	Long: `cornertable generates and inspects a precomputed heuristic table for the
corner subgroup of a Rubik's cube: for every reachable corner configuration,
the minimum number of face turns needed to return it to a reference state.

The table is packed two entries per byte and can be written to disk,
reloaded, and queried for a scrambled cube's corner distance.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Run history database path (default: ~/.cornertable/runs.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func openDB() (*store.DB, error) {
	var db *store.DB
	var err error

	if dbPath == "" {
		db, err = store.OpenDefault()
	} else {
		db, err = store.Open(dbPath)
	}
	if err != nil {
		return nil, fmt.Errorf("cli: open run database: %w", err)
	}
	return db, nil
}
