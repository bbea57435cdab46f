// Package reconcile merges the entity span sets of two independently
// annotated sentences into one. Conflicts between the sources are
// resolved deterministically and recorded for audit; the engine never
// fails on well-formed input.
package reconcile

import (
	"sort"

	"github.com/corpuskit/nermerge/pkg/schemes"
)

// Source identifies which dataset a span came from. Source A is the
// reference dataset by convention of argument order.
type Source string

// The two merge sources.
const (
	SourceA Source = "A"
	SourceB Source = "B"
)

// String returns the string representation of a source.
func (s Source) String() string {
	return string(s)
}

// Candidate is a span together with its source, as seen by the sweep.
type Candidate struct {
	Span   schemes.Span `json:"span" yaml:"span"`
	Source Source       `json:"source" yaml:"source"`
}

// Engine merges two span sets per aligned sentence pair.
type Engine struct {
	strategy Strategy
}

// Option configures an Engine.
type Option func(*Engine)

// WithStrategy sets the type-conflict resolution strategy.
func WithStrategy(strategy Strategy) Option {
	return func(e *Engine) {
		if strategy != nil {
			e.strategy = strategy
		}
	}
}

// NewEngine creates an Engine. The default strategy prefers source A
// on type conflicts.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{strategy: NewSourcePriorityStrategy(SourceA, SourceB)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Strategy returns the engine's conflict-resolution strategy.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Merge reconciles the span sets of one aligned sentence pair. Both
// sets are over the same token indices. The returned spans are sorted
// by start index and pairwise non-overlapping; every overlapping
// disagreement produces one ConflictRecord. An empty set from either
// source is the identity: the other side passes through unchanged.
func (e *Engine) Merge(ordinal int, spansA, spansB []schemes.Span) ([]schemes.Span, []ConflictRecord) {
	candidates := make([]Candidate, 0, len(spansA)+len(spansB))
	for _, sp := range spansA {
		candidates = append(candidates, Candidate{Span: sp, Source: SourceA})
	}
	for _, sp := range spansB {
		candidates = append(candidates, Candidate{Span: sp, Source: SourceB})
	}

	// Sweep order: start index ascending, then source A before B,
	// then longer spans first.
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Span.Start != b.Span.Start {
			return a.Span.Start < b.Span.Start
		}
		if a.Source != b.Source {
			return a.Source == SourceA
		}
		return a.Span.Len() > b.Span.Len()
	})

	committed := make([]Candidate, 0, len(candidates))
	var records []ConflictRecord

	for _, candidate := range candidates {
		overlap := findOverlap(committed, candidate.Span)
		if overlap < 0 {
			committed = append(committed, candidate)
			continue
		}

		holder := committed[overlap]
		switch {
		case holder.Span.Equal(candidate.Span):
			// Duplicate collapse: both sources agree on this entity.
			records = append(records, ConflictRecord{
				Sentence: ordinal,
				Kind:     ConflictAgreement,
				Kept:     holder,
				Dropped:  &candidate,
				Reason:   "identical span in both sources",
			})
		case holder.Span.SameBoundaries(candidate.Span):
			winner, reason := e.strategy.ResolveType(holder, candidate)
			loser := candidate
			if !winner.Span.Equal(holder.Span) {
				loser = holder
				committed[overlap] = winner
			}
			records = append(records, ConflictRecord{
				Sentence: ordinal,
				Kind:     ConflictType,
				Kept:     winner,
				Dropped:  &loser,
				Reason:   reason,
			})
		default:
			// Partial overlap: the earlier-committed span wins.
			records = append(records, ConflictRecord{
				Sentence: ordinal,
				Kind:     ConflictBoundary,
				Kept:     holder,
				Dropped:  &candidate,
				Reason:   "overlaps earlier-committed span " + holder.Span.String(),
			})
		}
	}

	merged := make([]schemes.Span, len(committed))
	for i, c := range committed {
		merged[i] = c.Span
	}
	// Commit order already follows start order; the sort keeps the
	// output invariant independent of that detail.
	sort.Slice(merged, func(i, j int) bool { return merged[i].Start < merged[j].Start })

	return merged, records
}

// findOverlap returns the index of the first committed candidate whose
// span intersects the given span, or -1.
func findOverlap(committed []Candidate, span schemes.Span) int {
	for i, c := range committed {
		if c.Span.Overlaps(span) {
			return i
		}
	}
	return -1
}
