package cli

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewbrown/cornertable/internal/cornertable"
	"github.com/andrewbrown/cornertable/internal/cube"
)

var (
	verifyTable   string
	verifySamples int
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Spot-check a generated table against random scrambles",
	Long: `verify draws random scrambles, applies one further random turn to each,
and checks that the table's reported distances satisfy the triangle
inequality: |dist(next) - dist(cur)| <= 1. A violation means the table
was generated incorrectly.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyTable, "table", "corner.table", "Table file to read")
	verifyCmd.Flags().IntVar(&verifySamples, "samples", 10000, "Number of random walk steps to check")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	f, err := os.Open(verifyTable)
	if err != nil {
		return fmt.Errorf("cli: open table: %w", err)
	}
	defer f.Close()

	table := cornertable.New()
	if err := table.Read(f); err != nil {
		return fmt.Errorf("cli: read table: %w", err)
	}

	solved := cube.Solved()
	solvedDist, ok := table.Lookup(&solved)
	if !ok || solvedDist != 0 {
		return fmt.Errorf("cli: verify: solved state distance = %d, ok = %v, want 0/true", solvedDist, ok)
	}

	cur := cube.Solved()
	curDist := 0
	violations := 0

	for i := 0; i < verifySamples; i++ {
		turn := rand.Intn(cube.TurnCount)
		var next cube.State
		cube.ApplyTurn(&next, &cur, turn)

		nextDist, ok := table.Lookup(&next)
		if !ok {
			return fmt.Errorf("cli: verify: no entry for sampled configuration at step %d", i)
		}

		diff := nextDist - curDist
		if diff > 1 || diff < -1 {
			violations++
			fmt.Printf("violation at step %d: dist(cur)=%d dist(next)=%d\n", i, curDist, nextDist)
		}

		cur, curDist = next, nextDist
	}

	if violations > 0 {
		return fmt.Errorf("cli: verify: %d triangle-inequality violations out of %d samples", violations, verifySamples)
	}

	fmt.Printf("ok: %d samples, no violations\n", verifySamples)
	return nil
}
