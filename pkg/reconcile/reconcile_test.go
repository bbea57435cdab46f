package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpuskit/nermerge/pkg/reconcile"
	"github.com/corpuskit/nermerge/pkg/schemes"
)

func span(start, end int, typ string) schemes.Span {
	return schemes.Span{Start: start, End: end, Type: typ}
}

func TestMergeEmptySides(t *testing.T) {
	engine := reconcile.NewEngine()
	spans := []schemes.Span{span(0, 1, "PER"), span(3, 4, "ORG")}

	t.Run("empty B passes A through", func(t *testing.T) {
		merged, records := engine.Merge(0, spans, nil)
		assert.Equal(t, spans, merged)
		assert.Empty(t, records)
	})

	t.Run("empty A passes B through", func(t *testing.T) {
		merged, records := engine.Merge(0, nil, spans)
		assert.Equal(t, spans, merged)
		assert.Empty(t, records)
	})

	t.Run("both empty", func(t *testing.T) {
		merged, records := engine.Merge(0, nil, nil)
		assert.Empty(t, merged)
		assert.Empty(t, records)
	})
}

func TestMergeDisjointUnion(t *testing.T) {
	engine := reconcile.NewEngine()

	merged, records := engine.Merge(0,
		[]schemes.Span{span(0, 1, "PER")},
		[]schemes.Span{span(3, 5, "LOC")},
	)

	assert.Equal(t, []schemes.Span{span(0, 1, "PER"), span(3, 5, "LOC")}, merged)
	assert.Empty(t, records)
}

func TestMergeIdempotentSelfMerge(t *testing.T) {
	engine := reconcile.NewEngine()
	spans := []schemes.Span{span(0, 1, "PER"), span(3, 4, "ORG")}

	merged, records := engine.Merge(0, spans, spans)

	assert.Equal(t, spans, merged)
	require.Len(t, records, 2)
	for _, record := range records {
		assert.Equal(t, reconcile.ConflictAgreement, record.Kind)
		assert.Equal(t, reconcile.SourceA, record.Kept.Source)
		require.NotNil(t, record.Dropped)
		assert.Equal(t, reconcile.SourceB, record.Dropped.Source)
	}
}

func TestMergeTypeConflictDefaultAWins(t *testing.T) {
	engine := reconcile.NewEngine()

	merged, records := engine.Merge(4,
		[]schemes.Span{span(2, 3, "ORG")},
		[]schemes.Span{span(2, 3, "LOC")},
	)

	assert.Equal(t, []schemes.Span{span(2, 3, "ORG")}, merged)
	require.Len(t, records, 1)
	assert.Equal(t, reconcile.ConflictType, records[0].Kind)
	assert.Equal(t, 4, records[0].Sentence)
	assert.Equal(t, "ORG", records[0].Kept.Span.Type)
	require.NotNil(t, records[0].Dropped)
	assert.Equal(t, "LOC", records[0].Dropped.Span.Type)
}

func TestMergeTypeConflictBPriority(t *testing.T) {
	engine := reconcile.NewEngine(reconcile.WithStrategy(
		reconcile.NewSourcePriorityStrategy(reconcile.SourceB, reconcile.SourceA),
	))

	merged, records := engine.Merge(0,
		[]schemes.Span{span(2, 3, "ORG")},
		[]schemes.Span{span(2, 3, "LOC")},
	)

	assert.Equal(t, []schemes.Span{span(2, 3, "LOC")}, merged)
	require.Len(t, records, 1)
	assert.Equal(t, reconcile.SourceB, records[0].Kept.Source)
	assert.Equal(t, reconcile.SourceA, records[0].Dropped.Source)
}

func TestMergeBoundaryConflictEarlierCommittedWins(t *testing.T) {
	engine := reconcile.NewEngine()

	t.Run("A starts earlier", func(t *testing.T) {
		merged, records := engine.Merge(0,
			[]schemes.Span{span(0, 2, "PER")},
			[]schemes.Span{span(2, 4, "ORG")},
		)

		assert.Equal(t, []schemes.Span{span(0, 2, "PER")}, merged)
		require.Len(t, records, 1)
		assert.Equal(t, reconcile.ConflictBoundary, records[0].Kind)
		assert.Equal(t, reconcile.SourceA, records[0].Kept.Source)
	})

	t.Run("B starts earlier", func(t *testing.T) {
		merged, records := engine.Merge(0,
			[]schemes.Span{span(2, 4, "ORG")},
			[]schemes.Span{span(0, 2, "PER")},
		)

		assert.Equal(t, []schemes.Span{span(0, 2, "PER")}, merged)
		require.Len(t, records, 1)
		assert.Equal(t, reconcile.ConflictBoundary, records[0].Kind)
		assert.Equal(t, reconcile.SourceB, records[0].Kept.Source)
	})

	t.Run("same start prefers A then longer", func(t *testing.T) {
		merged, records := engine.Merge(0,
			[]schemes.Span{span(1, 2, "PER")},
			[]schemes.Span{span(1, 4, "ORG")},
		)

		// A sorts first at equal start, so it commits and the longer
		// B span loses.
		assert.Equal(t, []schemes.Span{span(1, 2, "PER")}, merged)
		require.Len(t, records, 1)
		assert.Equal(t, reconcile.ConflictBoundary, records[0].Kind)
		assert.Equal(t, reconcile.SourceA, records[0].Kept.Source)
	})
}

func TestMergeChainOfOverlaps(t *testing.T) {
	engine := reconcile.NewEngine()

	// B's middle span overlaps A's committed first span; B's last span
	// is disjoint and commits.
	merged, records := engine.Merge(0,
		[]schemes.Span{span(0, 3, "PER")},
		[]schemes.Span{span(2, 5, "ORG"), span(7, 8, "LOC")},
	)

	assert.Equal(t, []schemes.Span{span(0, 3, "PER"), span(7, 8, "LOC")}, merged)
	require.Len(t, records, 1)
	assert.Equal(t, reconcile.ConflictBoundary, records[0].Kind)
}

func TestMergeOutputInvariants(t *testing.T) {
	engine := reconcile.NewEngine()

	merged, _ := engine.Merge(0,
		[]schemes.Span{span(4, 6, "PER"), span(0, 1, "ORG")},
		[]schemes.Span{span(2, 3, "LOC"), span(5, 7, "MISC"), span(9, 9, "PER")},
	)

	for i := 1; i < len(merged); i++ {
		assert.Less(t, merged[i-1].Start, merged[i].Start, "output must be sorted")
		assert.Less(t, merged[i-1].End, merged[i].Start, "output must be non-overlapping")
	}
}

func TestMergeDeterminism(t *testing.T) {
	engine := reconcile.NewEngine()
	spansA := []schemes.Span{span(0, 2, "PER"), span(5, 6, "ORG")}
	spansB := []schemes.Span{span(1, 3, "LOC"), span(5, 6, "MISC")}

	first, firstRecords := engine.Merge(0, spansA, spansB)
	for i := 0; i < 10; i++ {
		merged, records := engine.Merge(0, spansA, spansB)
		assert.Equal(t, first, merged)
		assert.Equal(t, firstRecords, records)
	}
}
