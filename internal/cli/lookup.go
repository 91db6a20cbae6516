package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewbrown/cornertable/internal/cornertable"
	"github.com/andrewbrown/cornertable/internal/cube"
)

var (
	lookupTable    string
	lookupScramble string
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Look up a scramble's corner distance in a generated table",
	Long: `lookup applies the given scramble to the solved cube and reports the
corner-subgroup distance recorded for the resulting configuration in the
table file.`,
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVar(&lookupTable, "table", "corner.table", "Table file to read")
	lookupCmd.Flags().StringVar(&lookupScramble, "scramble", "", "Scramble to apply before lookup (space-separated moves)")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	turns, err := cube.ParseSequence(lookupScramble)
	if err != nil {
		return fmt.Errorf("cli: parse --scramble: %w", err)
	}
	state := cube.ApplySequence(cube.Solved(), turns)

	f, err := os.Open(lookupTable)
	if err != nil {
		return fmt.Errorf("cli: open table: %w", err)
	}
	defer f.Close()

	table := cornertable.New()
	if err := table.Read(f); err != nil {
		return fmt.Errorf("cli: read table: %w", err)
	}

	dist, ok := table.Lookup(&state)
	if !ok {
		return fmt.Errorf("cli: no entry for this configuration (table not fully generated?)")
	}

	fmt.Printf("corner distance: %d\n", dist)
	return nil
}
