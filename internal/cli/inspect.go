package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewbrown/cornertable/internal/cornertable"
)

var inspectTable string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Report fill count and distance histogram for a generated table",
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectTable, "table", "corner.table", "Table file to read")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	f, err := os.Open(inspectTable)
	if err != nil {
		return fmt.Errorf("cli: open table: %w", err)
	}
	defer f.Close()

	table := cornertable.New()
	if err := table.Read(f); err != nil {
		return fmt.Errorf("cli: read table: %w", err)
	}

	fmt.Printf("fill count: %d\n", table.FillCount())
	fmt.Println("distance histogram:")
	for depth, count := range table.Histogram() {
		if count == 0 {
			continue
		}
		fmt.Printf("  %2d: %d\n", depth, count)
	}
	return nil
}
