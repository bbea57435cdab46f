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

func TestReaderNext(t *testing.T) {
	input := strings.Join([]string{
		"Obama B-PER",
		"visited O",
		"Paris B-LOC",
		"",
		"He O",
		"left O",
	}, "\n")

	reader := corpus.NewReader(strings.NewReader(input))

	first, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, 0, first.Ordinal)
	assert.Equal(t, 1, first.Line)
	assert.Equal(t, []string{"Obama", "visited", "Paris"}, first.Texts())
	assert.Equal(t, []string{"B-PER", "O", "B-LOC"}, first.Tags())

	second, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, second.Ordinal)
	assert.Equal(t, 5, second.Line)
	assert.Equal(t, 2, second.Len())

	_, err = reader.Next()
	assert.Equal(t, io.EOF, err)

	// EOF is sticky
	_, err = reader.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReaderBlankLineHandling(t *testing.T) {
	t.Run("leading and repeated blank lines collapse", func(t *testing.T) {
		input := "\n\na O\n\n\n\nb O\n\n"
		sentences, err := corpus.NewReader(strings.NewReader(input)).ReadAll()
		require.NoError(t, err)
		require.Len(t, sentences, 2)
		assert.Equal(t, 0, sentences[0].Ordinal)
		assert.Equal(t, 1, sentences[1].Ordinal)
	})

	t.Run("whitespace-only line is a boundary", func(t *testing.T) {
		input := "a O\n   \nb O\n"
		sentences, err := corpus.NewReader(strings.NewReader(input)).ReadAll()
		require.NoError(t, err)
		assert.Len(t, sentences, 2)
	})

	t.Run("eof closes final sentence without trailing blank", func(t *testing.T) {
		sentences, err := corpus.NewReader(strings.NewReader("a O\nb O")).ReadAll()
		require.NoError(t, err)
		require.Len(t, sentences, 1)
		assert.Equal(t, 2, sentences[0].Len())
	})

	t.Run("empty stream", func(t *testing.T) {
		sentences, err := corpus.NewReader(strings.NewReader("")).ReadAll()
		require.NoError(t, err)
		assert.Empty(t, sentences)
	})
}

func TestReaderMalformedLine(t *testing.T) {
	input := strings.Join([]string{
		"ok O",
		"",
		"bad",
		"rest B-PER",
		"",
		"next O",
	}, "\n")

	reader := corpus.NewReader(strings.NewReader(input), corpus.WithPath("in.txt"))

	first, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, 0, first.Ordinal)

	// The malformed sentence is consumed whole and its ordinal is
	// still spent, so the streams stay comparable.
	_, err = reader.Next()
	require.Error(t, err)
	assert.True(t, errors.IsMalformedLine(err))

	var lineErr *errors.LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, "in.txt", lineErr.Path)
	assert.Equal(t, 3, lineErr.Line)
	assert.Equal(t, "bad", lineErr.Content)

	next, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, next.Ordinal)
	assert.Equal(t, []string{"next"}, next.Texts())
}

func TestReaderMalformedLineTooManyColumns(t *testing.T) {
	reader := corpus.NewReader(strings.NewReader("a B-PER extra\n"))
	_, err := reader.Next()
	require.Error(t, err)
	assert.True(t, errors.IsMalformedLine(err))
}

func TestWriterRoundTrip(t *testing.T) {
	input := "a B-PER\nb I-PER\n\nc O\n"

	sentences, err := corpus.NewReader(strings.NewReader(input)).ReadAll()
	require.NoError(t, err)

	var out strings.Builder
	writer := corpus.NewWriter(&out)
	for _, sentence := range sentences {
		require.NoError(t, writer.WriteSentence(sentence))
	}
	require.NoError(t, writer.Flush())

	assert.Equal(t, "a B-PER\nb I-PER\n\nc O\n", out.String())
}

func TestSentenceWithTags(t *testing.T) {
	sentence := &corpus.Sentence{
		Ordinal: 3,
		Line:    10,
		Tokens: []corpus.Token{
			{Text: "a", Tag: "O"},
			{Text: "b", Tag: "O"},
		},
	}

	retagged := sentence.WithTags([]string{"B-PER", "I-PER"})

	assert.Equal(t, 3, retagged.Ordinal)
	assert.Equal(t, 10, retagged.Line)
	assert.Equal(t, []string{"B-PER", "I-PER"}, retagged.Tags())
	assert.Equal(t, []string{"O", "O"}, sentence.Tags(), "original must not change")
}
