package schemes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpuskit/nermerge/pkg/schemes"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		sequences [][]string
		want      schemes.Scheme
	}{
		{
			name:      "plain bio",
			sequences: [][]string{{"B-PER", "I-PER", "O"}},
			want:      schemes.BIO,
		},
		{
			name:      "single token marker means bioes",
			sequences: [][]string{{"O", "S-PER"}},
			want:      schemes.BIOES,
		},
		{
			name:      "end marker means bioes",
			sequences: [][]string{{"B-ORG", "E-ORG"}},
			want:      schemes.BIOES,
		},
		{
			name: "marker in a later sentence",
			sequences: [][]string{
				{"B-PER", "I-PER"},
				{"O", "O"},
				{"B-LOC", "I-LOC", "E-LOC"},
			},
			want: schemes.BIOES,
		},
		{
			name:      "no entities reads as bio",
			sequences: [][]string{{"O", "O"}, {"O"}},
			want:      schemes.BIO,
		},
		{
			name:      "empty corpus",
			sequences: nil,
			want:      schemes.BIO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schemes.Detect(tt.sequences...))
		})
	}
}

func TestConvert(t *testing.T) {
	t.Run("bio to bioes", func(t *testing.T) {
		got, err := schemes.Convert(
			[]string{"B-PER", "O", "B-ORG", "I-ORG", "I-ORG"},
			schemes.BIO, schemes.BIOES,
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"S-PER", "O", "B-ORG", "I-ORG", "E-ORG"}, got)
	})

	t.Run("bioes to bio", func(t *testing.T) {
		got, err := schemes.Convert(
			[]string{"S-PER", "O", "B-ORG", "E-ORG"},
			schemes.BIOES, schemes.BIO,
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"B-PER", "O", "B-ORG", "I-ORG"}, got)
	})

	t.Run("identity conversion", func(t *testing.T) {
		tags := []string{"B-PER", "I-PER", "O"}
		got, err := schemes.Convert(tags, schemes.BIO, schemes.BIO)
		require.NoError(t, err)
		assert.Equal(t, tags, got)
	})

	t.Run("malformed input surfaces decode error", func(t *testing.T) {
		_, err := schemes.Convert([]string{"I-PER"}, schemes.BIO, schemes.BIOES)
		assert.Error(t, err)
	})

	t.Run("unknown scheme", func(t *testing.T) {
		_, err := schemes.Convert([]string{"O"}, schemes.Scheme("IOB"), schemes.BIO)
		assert.Error(t, err)
	})
}
