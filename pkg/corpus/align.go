package corpus

import (
	"io"

	"github.com/corpuskit/nermerge/pkg/errors"
)

// Pair is an aligned sentence pair: the same ordinal drawn from both
// streams. Exactly one of the alignment outcomes holds per pair:
// either Err is nil and the tokens match position for position, or
// Err describes why the pair cannot be merged.
type Pair struct {
	Ordinal int
	A, B    *Sentence
	Err     error
}

// Aligner pairs the sentences of two streams by ordinal position.
// Token counts and surface strings must match exactly; entity
// boundaries downstream are index-based, so textual identity is
// required.
type Aligner struct {
	a, b    *Reader
	ordinal int
	done    bool
}

// NewAligner creates an Aligner over two sentence streams.
func NewAligner(a, b *Reader) *Aligner {
	return &Aligner{a: a, b: b}
}

// Next returns the next sentence pair. Alignment failures are
// reported on the pair itself (Pair.Err), not as a read error, so a
// bad pair does not stop the stream. Next returns io.EOF once both
// streams are exhausted; a sentence left over in only one stream
// yields a pair with an alignment error and the surviving side set.
func (al *Aligner) Next() (*Pair, error) {
	if al.done {
		return nil, io.EOF
	}

	sentenceA, errA := al.a.Next()
	sentenceB, errB := al.b.Next()

	// Malformed lines are sentence-scoped: the reader has already
	// consumed the offending sentence, so surface them on the pair and
	// keep the stream usable. Anything else is a stream failure.
	var pairErr error
	if errA != nil && errA != io.EOF {
		if !errors.IsMalformedLine(errA) {
			return nil, errA
		}
		pairErr = errA
	}
	if errB != nil && errB != io.EOF {
		if !errors.IsMalformedLine(errB) {
			return nil, errB
		}
		if pairErr == nil {
			pairErr = errB
		}
	}

	ordinal := al.ordinal
	al.ordinal++

	if pairErr != nil {
		return &Pair{Ordinal: ordinal, A: sentenceA, B: sentenceB, Err: pairErr}, nil
	}

	switch {
	case sentenceA == nil && sentenceB == nil:
		al.done = true
		return nil, io.EOF
	case sentenceA == nil || sentenceB == nil:
		side := "A"
		if sentenceA == nil {
			side = "B"
		}
		return &Pair{
			Ordinal: ordinal,
			A:       sentenceA,
			B:       sentenceB,
			Err: &errors.AlignmentError{
				Sentence: ordinal,
				Position: -1,
				Message:  "stream " + side + " has a sentence with no counterpart",
			},
		}, nil
	}

	pair := &Pair{Ordinal: ordinal, A: sentenceA, B: sentenceB}
	pair.Err = align(ordinal, sentenceA, sentenceB)
	return pair, nil
}

// align verifies that two sentences cover the same token sequence.
func align(ordinal int, a, b *Sentence) error {
	if a.Len() != b.Len() {
		return &errors.AlignmentError{
			Sentence: ordinal,
			Position: -1,
			Message:  "token counts differ",
		}
	}
	for i := range a.Tokens {
		if a.Tokens[i].Text != b.Tokens[i].Text {
			return &errors.AlignmentError{
				Sentence: ordinal,
				Position: i,
				TokenA:   a.Tokens[i].Text,
				TokenB:   b.Tokens[i].Text,
			}
		}
	}
	return nil
}
