package cornertable

import (
	"bytes"
	"testing"

	"github.com/andrewbrown/cornertable/internal/cube"
	"github.com/andrewbrown/cornertable/internal/generator"
)

func TestLookupOnEmptyTable(t *testing.T) {
	table := New()
	s := cube.Solved()
	if _, ok := table.Lookup(&s); ok {
		t.Error("Lookup on an empty table should report ok=false")
	}
}

func TestGenerateAndLookupRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("full generation is slow; skipped under -short")
	}

	table := New()
	stats, err := table.Generate(cube.Solved(), generator.WithProgressInterval(0))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if stats.FillCount != table.FillCount() {
		t.Errorf("stats.FillCount = %d, table.FillCount() = %d", stats.FillCount, table.FillCount())
	}

	solved := cube.Solved()
	if d, ok := table.Lookup(&solved); !ok || d != 0 {
		t.Errorf("Lookup(solved) = (%d, %v), want (0, true)", d, ok)
	}

	var buf bytes.Buffer
	if err := table.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	reloaded := New()
	if err := reloaded.Read(&buf); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if reloaded.FillCount() != table.FillCount() {
		t.Error("round-tripped table has a different fill count")
	}
}

func TestHistogramSumsToFillCount(t *testing.T) {
	if testing.Short() {
		t.Skip("full generation is slow; skipped under -short")
	}

	table := New()
	if _, err := table.Generate(cube.Solved(), generator.WithProgressInterval(0)); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	hist := table.Histogram()
	sum := 0
	for _, c := range hist {
		sum += c
	}
	if sum != table.FillCount() {
		t.Errorf("histogram sums to %d, FillCount() = %d", sum, table.FillCount())
	}
	if hist[generator.MaxDepth] == 0 {
		t.Error("no entries at the maximum depth")
	}
}
