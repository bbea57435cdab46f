package corpus_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpuskit/nermerge/pkg/corpus"
	"github.com/corpuskit/nermerge/pkg/errors"
)

func newAligner(a, b string) *corpus.Aligner {
	return corpus.NewAligner(
		corpus.NewReader(strings.NewReader(a)),
		corpus.NewReader(strings.NewReader(b)),
	)
}

func TestAlignerMatchingStreams(t *testing.T) {
	a := "x B-PER\ny O\n\nz O\n"
	b := "x O\ny B-ORG\n\nz O\n"

	aligner := newAligner(a, b)

	first, err := aligner.Next()
	require.NoError(t, err)
	require.NoError(t, first.Err)
	assert.Equal(t, 0, first.Ordinal)
	assert.Equal(t, []string{"B-PER", "O"}, first.A.Tags())
	assert.Equal(t, []string{"O", "B-ORG"}, first.B.Tags())

	second, err := aligner.Next()
	require.NoError(t, err)
	require.NoError(t, second.Err)
	assert.Equal(t, 1, second.Ordinal)

	_, err = aligner.Next()
	assert.Equal(t, io.EOF, err)
}

func TestAlignerTokenMismatch(t *testing.T) {
	aligner := newAligner("x O\ny O\n", "x O\nY O\n")

	pair, err := aligner.Next()
	require.NoError(t, err)
	require.Error(t, pair.Err)
	assert.True(t, errors.IsAlignmentMismatch(pair.Err))

	var alignErr *errors.AlignmentError
	require.ErrorAs(t, pair.Err, &alignErr)
	assert.Equal(t, 1, alignErr.Position)
	assert.Equal(t, "y", alignErr.TokenA)
	assert.Equal(t, "Y", alignErr.TokenB)
}

func TestAlignerCountMismatch(t *testing.T) {
	aligner := newAligner("x O\ny O\n", "x O\n")

	pair, err := aligner.Next()
	require.NoError(t, err)
	require.Error(t, pair.Err)
	assert.True(t, errors.IsAlignmentMismatch(pair.Err))

	var alignErr *errors.AlignmentError
	require.ErrorAs(t, pair.Err, &alignErr)
	assert.Equal(t, -1, alignErr.Position)
}

func TestAlignerMismatchDoesNotStopStream(t *testing.T) {
	a := "x O\n\ngood O\n"
	b := "X O\n\ngood O\n"

	aligner := newAligner(a, b)

	bad, err := aligner.Next()
	require.NoError(t, err)
	assert.Error(t, bad.Err)

	good, err := aligner.Next()
	require.NoError(t, err)
	assert.NoError(t, good.Err)
	assert.Equal(t, 1, good.Ordinal)

	_, err = aligner.Next()
	assert.Equal(t, io.EOF, err)
}

func TestAlignerLeftoverSentence(t *testing.T) {
	aligner := newAligner("x O\n\nextra O\n", "x O\n")

	first, err := aligner.Next()
	require.NoError(t, err)
	require.NoError(t, first.Err)

	leftover, err := aligner.Next()
	require.NoError(t, err)
	require.Error(t, leftover.Err)
	assert.True(t, errors.IsAlignmentMismatch(leftover.Err))
	assert.NotNil(t, leftover.A)
	assert.Nil(t, leftover.B)
	assert.Contains(t, leftover.Err.Error(), "no counterpart")
}

func TestAlignerMalformedLineIsPairScoped(t *testing.T) {
	a := "bad-line\n\nok O\n"
	b := "fine O\n\nok O\n"

	aligner := newAligner(a, b)

	bad, err := aligner.Next()
	require.NoError(t, err)
	require.Error(t, bad.Err)
	assert.True(t, errors.IsMalformedLine(bad.Err))

	good, err := aligner.Next()
	require.NoError(t, err)
	require.NoError(t, good.Err)
	assert.Equal(t, []string{"ok"}, good.A.Texts())
	assert.Equal(t, []string{"ok"}, good.B.Texts())
}
