// Package generator implements the IDA*-style iterative-deepening
// generator that fills the corner heuristic table: for every reachable
// corner configuration, the minimum number of face turns from a chosen
// reference state.
package generator

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/andrewbrown/cornertable/internal/cornerhash"
	"github.com/andrewbrown/cornertable/internal/cube"
	"github.com/andrewbrown/cornertable/internal/dfsstack"
	"github.com/andrewbrown/cornertable/internal/nibble"
	"github.com/andrewbrown/cornertable/internal/visited"
)

// MaxDepth is the known diameter of the corner subgroup: no reachable
// configuration is more than this many turns from any reference state.
const MaxDepth = 11

// progressInterval is how often (in stack pops) a diagnostic progress
// line is emitted. This is a side channel, not part of the contract.
const progressInterval = 1 << 18

// Option configures a Generator.
type Option func(*Generator)

// WithLogger overrides the logger used for progress output. The default
// is logrus.StandardLogger().
func WithLogger(l *logrus.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// WithProgressInterval overrides how many stack pops elapse between
// progress log lines. Mostly useful to quiet tests.
func WithProgressInterval(n int) Option {
	return func(g *Generator) { g.progressEvery = n }
}

// WithProgressFunc registers a callback invoked on the same cadence as the
// log line, for a caller (e.g. the CLI's live progress display) that wants
// structured progress updates instead of log lines.
func WithProgressFunc(fn func(depth, popped, filled int)) Option {
	return func(g *Generator) { g.onProgress = fn }
}

// Generator fills a packed nibble table with corner heuristic distances.
type Generator struct {
	log           *logrus.Logger
	progressEvery int
	onProgress    func(depth, popped, filled int)
}

// New constructs a Generator with the given options applied.
func New(opts ...Option) *Generator {
	g := &Generator{
		log:           logrus.StandardLogger(),
		progressEvery: progressInterval,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Stats summarizes a completed generation run.
type Stats struct {
	FillCount int
	MaxDepth  int
	Pops      int
}

// Run fills table so that, for every reachable corner configuration c,
// table holds distance(c)+1 at cornerhash.Hash(c) — the +1 shift keeps 0
// strictly reserved for "unset", so the solved state's true distance of 0
// is never confused with an unfilled entry. Table must be freshly
// allocated or cleared; Run does not clear it itself, since resuming a
// partially-filled table is not part of this contract (there is exactly
// one caller, cornertable.Table.Generate, and it always starts fresh).
func (g *Generator) Run(reference cube.State, table *nibble.Array) (Stats, error) {
	stack := dfsstack.New()
	seen := visited.New()

	stats := Stats{}
	pops := 0

	for depth := 0; stats.FillCount < nibble.Entries; depth++ {
		if depth > MaxDepth {
			return stats, fmt.Errorf("generator: exceeded max depth %d with only %d/%d entries filled", MaxDepth, stats.FillCount, nibble.Entries)
		}

		seen.Reset()
		stack.Reset()
		stack.Push(dfsstack.Frame{State: reference, LastTurn: -1, Dist: 0})

		for stack.Len() > 0 {
			frame, _ := stack.Pop()
			pops++
			if g.progressEvery > 0 && pops%g.progressEvery == 0 {
				g.log.WithFields(logrus.Fields{
					"depth":  depth,
					"popped": pops,
					"filled": stats.FillCount,
				}).Info("generating corner table")
				if g.onProgress != nil {
					g.onProgress(depth, pops, stats.FillCount)
				}
			}

			if frame.Dist == depth {
				h := cornerhash.Hash(&frame.State)
				if table.Get(h) == 0 {
					table.Set(h, byte(frame.Dist+1))
					stats.FillCount++
				}
				continue
			}

			for t := 0; t < cube.TurnCount; t++ {
				if frame.LastTurn >= 0 && cube.Prune(t, frame.LastTurn) {
					continue
				}
				var next cube.State
				cube.ApplyTurn(&next, &frame.State, t)
				h := cornerhash.Hash(&next)
				nextDist := frame.Dist + 1
				if seen.SeenAtOrBefore(h, nextDist) {
					continue
				}
				seen.Mark(h, nextDist)
				stack.Push(dfsstack.Frame{State: next, LastTurn: t, Dist: nextDist})
			}
		}

		stats.MaxDepth = depth
	}

	stats.Pops = pops
	return stats, nil
}
