package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/andrewbrown/cornertable/internal/cornertable"
	"github.com/andrewbrown/cornertable/internal/cube"
	"github.com/andrewbrown/cornertable/internal/generator"
	"github.com/andrewbrown/cornertable/internal/store"
)

var (
	generateReference string
	generateOut       string
	generateQuiet     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the corner heuristic table",
	Long: `generate runs the iterative-deepening search from a reference cube state
and fills the corner heuristic table, then writes it to the given output
file. By default the reference state is the solved cube.

A live progress display shows the current search depth, stack pops, and
table fill count. The run is also recorded in the run history database.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateReference, "reference", "", "Reference scramble (space-separated moves, default: solved)")
	generateCmd.Flags().StringVar(&generateOut, "out", "corner.table", "Output table file path")
	generateCmd.Flags().BoolVar(&generateQuiet, "quiet", false, "Disable the live progress display")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	reference := cube.Solved()
	if generateReference != "" {
		turns, err := cube.ParseSequence(generateReference)
		if err != nil {
			return fmt.Errorf("cli: parse --reference: %w", err)
		}
		reference = cube.ApplySequence(reference, turns)
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	runs := store.NewRunRepository(db)
	runID, err := runs.Start(generateReference)
	if err != nil {
		return fmt.Errorf("cli: record run start: %w", err)
	}

	table := cornertable.New()

	logger := logrus.StandardLogger()
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if generateQuiet {
		stats, err := table.Generate(reference, generator.WithLogger(logger))
		if err != nil {
			_ = runs.Fail(runID, err.Error())
			return fmt.Errorf("cli: generate: %w", err)
		}
		return finishGenerate(runs, runID, table, stats)
	}

	progressCh := make(chan progressMsg, 64)
	doneCh := make(chan doneMsg, 1)

	onProgress := func(depth, popped, filled int) {
		select {
		case progressCh <- progressMsg{depth: depth, popped: popped, filled: filled}:
		default:
		}
	}

	go func() {
		stats, err := table.Generate(reference, generator.WithLogger(logger), generator.WithProgressFunc(onProgress))
		close(progressCh)
		doneCh <- doneMsg{stats: stats, err: err}
	}()

	model := newProgressModel(progressCh, doneCh)
	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("cli: TUI error: %w", err)
	}

	final := finalModel.(*progressModel)
	if final.err != nil {
		_ = runs.Fail(runID, final.err.Error())
		return fmt.Errorf("cli: generate: %w", final.err)
	}

	return finishGenerate(runs, runID, table, final.stats)
}

func finishGenerate(runs *store.RunRepository, runID string, table *cornertable.Table, stats generator.Stats) error {
	f, err := os.Create(generateOut)
	if err != nil {
		_ = runs.Fail(runID, err.Error())
		return fmt.Errorf("cli: create output file: %w", err)
	}
	defer f.Close()

	if err := table.Write(f); err != nil {
		_ = runs.Fail(runID, err.Error())
		return fmt.Errorf("cli: write table: %w", err)
	}

	if err := runs.Finish(runID, stats.MaxDepth, stats.FillCount, generateOut); err != nil {
		return fmt.Errorf("cli: record run finish: %w", err)
	}

	fmt.Printf("wrote %s: %d entries filled, max depth %d\n", generateOut, stats.FillCount, stats.MaxDepth)
	return nil
}
