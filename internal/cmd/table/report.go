// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/corpuskit/nermerge/pkg/reconcile"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// StatsToTableData converts merge statistics to a key-value table.
func StatsToTableData(stats reconcile.Stats) Data {
	rows := [][]string{
		{"Sentences Processed", strconv.Itoa(stats.SentencesProcessed)},
		{"Sentences Skipped", strconv.Itoa(stats.SentencesSkipped)},
		{"Sentences Written", strconv.Itoa(stats.SentencesWritten)},
		{"Spans (A)", strconv.Itoa(stats.SpansA)},
		{"Spans (B)", strconv.Itoa(stats.SpansB)},
		{"Spans Merged", strconv.Itoa(stats.SpansMerged)},
		{"Agreements", strconv.Itoa(stats.Agreements)},
		{"Type Conflicts", strconv.Itoa(stats.TypeConflicts)},
		{"Boundary Conflicts", strconv.Itoa(stats.BoundaryConflicts)},
	}

	return Data{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignLeft,
			AlignRight,
		},
	}
}

// ConflictsToTableData converts conflict records to table format.
func ConflictsToTableData(conflicts []reconcile.ConflictRecord) Data {
	headers := []string{"Sentence", "Kind", "Kept", "Dropped", "Reason"}

	rows := make([][]string, 0, len(conflicts))
	for _, c := range conflicts {
		kept := fmt.Sprintf("%s (%s)", c.Kept.Span, c.Kept.Source)
		dropped := ""
		if c.Dropped != nil {
			dropped = fmt.Sprintf("%s (%s)", c.Dropped.Span, c.Dropped.Source)
		}
		rows = append(rows, []string{
			strconv.Itoa(c.Sentence),
			string(c.Kind),
			kept,
			dropped,
			c.Reason,
		})
	}

	return Data{
		Headers: headers,
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignRight,
			AlignLeft,
			AlignLeft,
			AlignLeft,
			AlignLeft,
		},
	}
}

// LabelCountsToTableData converts a label inventory to table format,
// sorted by label name for stable output.
func LabelCountsToTableData(counts map[string]int) Data {
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	rows := make([][]string, 0, len(labels))
	for _, label := range labels {
		rows = append(rows, []string{label, strconv.Itoa(counts[label])})
	}

	return Data{
		Headers: []string{"Label", "Count"},
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignLeft,
			AlignRight,
		},
	}
}
