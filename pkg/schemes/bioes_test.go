package schemes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpuskit/nermerge/pkg/errors"
	"github.com/corpuskit/nermerge/pkg/schemes"
)

func TestBIOESDecode(t *testing.T) {
	codec := schemes.MustCodec(schemes.BIOES)

	tests := []struct {
		name string
		tags []string
		want []schemes.Span
	}{
		{
			name: "all outside",
			tags: []string{"O", "O"},
			want: nil,
		},
		{
			name: "single token span",
			tags: []string{"O", "S-PER", "O"},
			want: []schemes.Span{{Start: 1, End: 1, Type: "PER"}},
		},
		{
			name: "two token span",
			tags: []string{"B-ORG", "E-ORG"},
			want: []schemes.Span{{Start: 0, End: 1, Type: "ORG"}},
		},
		{
			name: "long span",
			tags: []string{"O", "B-LOC", "I-LOC", "I-LOC", "E-LOC"},
			want: []schemes.Span{{Start: 1, End: 4, Type: "LOC"}},
		},
		{
			name: "adjacent spans",
			tags: []string{"S-PER", "B-ORG", "E-ORG", "S-LOC"},
			want: []schemes.Span{
				{Start: 0, End: 0, Type: "PER"},
				{Start: 1, End: 2, Type: "ORG"},
				{Start: 3, End: 3, Type: "LOC"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Decode(tt.tags)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBIOESDecodeErrors(t *testing.T) {
	codec := schemes.MustCodec(schemes.BIOES)

	tests := []struct {
		name string
		tags []string
	}{
		{"dangling I", []string{"I-PER"}},
		{"dangling E", []string{"E-PER"}},
		{"open span hits O", []string{"B-PER", "O"}},
		{"open span hits S", []string{"B-PER", "S-LOC"}},
		{"open span hits B", []string{"B-PER", "B-ORG", "E-ORG"}},
		{"open span at sentence end", []string{"O", "B-PER", "I-PER"}},
		{"type change mid span", []string{"B-PER", "I-ORG", "E-PER"}},
		{"type change at close", []string{"B-PER", "E-ORG"}},
		{"bare S without type", []string{"S"}},
		{"unknown prefix", []string{"Q-PER"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode(tt.tags)
			require.Error(t, err)
			assert.True(t, errors.IsMalformedTagSequence(err))
		})
	}
}

func TestBIOESRoundTrip(t *testing.T) {
	codec := schemes.MustCodec(schemes.BIOES)

	sequences := [][]string{
		{"O"},
		{"S-PER"},
		{"B-ORG", "I-ORG", "E-ORG", "O", "S-LOC"},
		{"B-MISC", "E-MISC", "B-MISC", "E-MISC"},
	}

	for _, tags := range sequences {
		spans, err := codec.Decode(tags)
		require.NoError(t, err)

		encoded, err := codec.Encode(spans, len(tags))
		require.NoError(t, err)
		assert.Equal(t, tags, encoded)
	}
}

func TestBIOESEncodeSingleTokenUsesS(t *testing.T) {
	codec := schemes.MustCodec(schemes.BIOES)

	tags, err := codec.Encode([]schemes.Span{
		{Start: 0, End: 0, Type: "PER"},
		{Start: 2, End: 4, Type: "ORG"},
	}, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"S-PER", "O", "B-ORG", "I-ORG", "E-ORG"}, tags)
}
