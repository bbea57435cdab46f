package reconcile

import (
	"fmt"
	"time"
)

// Stats are the run-wide counters, carried as an explicit value
// through the pipeline rather than as global state.
type Stats struct {
	// SentencesProcessed counts aligned pairs that were merged.
	SentencesProcessed int `json:"sentences_processed" yaml:"sentences_processed"`

	// SentencesSkipped counts pairs dropped for alignment or, in
	// lenient mode, malformed-input failures.
	SentencesSkipped int `json:"sentences_skipped" yaml:"sentences_skipped"`

	// SentencesWritten counts sentences emitted to the output,
	// including any skipped sentences passed through unmerged.
	SentencesWritten int `json:"sentences_written" yaml:"sentences_written"`

	// Span counts per side and merged.
	SpansA      int `json:"spans_a" yaml:"spans_a"`
	SpansB      int `json:"spans_b" yaml:"spans_b"`
	SpansMerged int `json:"spans_merged" yaml:"spans_merged"`

	// Conflicts resolved by category.
	Agreements        int `json:"agreements" yaml:"agreements"`
	TypeConflicts     int `json:"type_conflicts" yaml:"type_conflicts"`
	BoundaryConflicts int `json:"boundary_conflicts" yaml:"boundary_conflicts"`
}

// ConflictsResolved returns the total number of recorded disagreements,
// agreements excluded.
func (s Stats) ConflictsResolved() int {
	return s.TypeConflicts + s.BoundaryConflicts
}

// SkipRecord documents one sentence pair that was not merged.
type SkipRecord struct {
	Sentence int    `json:"sentence" yaml:"sentence"`
	Reason   string `json:"reason" yaml:"reason"`
}

// Result is the outcome of one merge run: counters, the full conflict
// audit trail, and run metadata.
type Result struct {
	Stats     Stats            `json:"stats" yaml:"stats"`
	Conflicts []ConflictRecord `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`
	Skipped   []SkipRecord     `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Warnings  []string         `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// Run metadata.
	Scheme    string        `json:"scheme" yaml:"scheme"`
	Strategy  string        `json:"strategy" yaml:"strategy"`
	StartTime time.Time     `json:"start_time" yaml:"start_time"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
}

// HasWarnings returns true if the run produced warnings.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Summary returns a one-line human-readable summary of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"merged %d sentences (%d skipped): %d agreements, %d type conflicts, %d boundary conflicts",
		r.Stats.SentencesProcessed,
		r.Stats.SentencesSkipped,
		r.Stats.Agreements,
		r.Stats.TypeConflicts,
		r.Stats.BoundaryConflicts,
	)
}

// ResultBuilder accumulates a Result during a run.
type ResultBuilder struct {
	result *Result
}

// NewResultBuilder creates a builder stamped with the start time.
func NewResultBuilder() *ResultBuilder {
	return &ResultBuilder{
		result: &Result{
			StartTime: time.Now(),
		},
	}
}

// WithScheme records the tagging scheme in use.
func (b *ResultBuilder) WithScheme(scheme string) *ResultBuilder {
	b.result.Scheme = scheme
	return b
}

// WithStrategy records the conflict-resolution strategy in use.
func (b *ResultBuilder) WithStrategy(strategy Strategy) *ResultBuilder {
	if strategy != nil {
		b.result.Strategy = strategy.Name()
	}
	return b
}

// AddConflicts folds a sentence's conflict records into the result.
func (b *ResultBuilder) AddConflicts(records []ConflictRecord) *ResultBuilder {
	b.result.Conflicts = append(b.result.Conflicts, records...)
	for _, record := range records {
		switch record.Kind {
		case ConflictAgreement:
			b.result.Stats.Agreements++
		case ConflictType:
			b.result.Stats.TypeConflicts++
		case ConflictBoundary:
			b.result.Stats.BoundaryConflicts++
		}
	}
	return b
}

// AddProcessed counts one merged sentence pair and its span totals.
func (b *ResultBuilder) AddProcessed(spansA, spansB, spansMerged int) *ResultBuilder {
	b.result.Stats.SentencesProcessed++
	b.result.Stats.SpansA += spansA
	b.result.Stats.SpansB += spansB
	b.result.Stats.SpansMerged += spansMerged
	return b
}

// AddSkipped counts one unmergeable sentence pair.
func (b *ResultBuilder) AddSkipped(ordinal int, reason string) *ResultBuilder {
	b.result.Stats.SentencesSkipped++
	b.result.Skipped = append(b.result.Skipped, SkipRecord{Sentence: ordinal, Reason: reason})
	return b
}

// AddWritten counts one sentence emitted to the output.
func (b *ResultBuilder) AddWritten() *ResultBuilder {
	b.result.Stats.SentencesWritten++
	return b
}

// WithWarning adds a warning.
func (b *ResultBuilder) WithWarning(warning string) *ResultBuilder {
	b.result.Warnings = append(b.result.Warnings, warning)
	return b
}

// Build finalizes and returns the Result.
func (b *ResultBuilder) Build() *Result {
	b.result.Duration = time.Since(b.result.StartTime)
	return b.result
}
