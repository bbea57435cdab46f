package output_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpuskit/nermerge/internal/cmd/output"
	"github.com/corpuskit/nermerge/internal/cmd/table"
)

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]output.Format{
		"json":  output.FormatJSON,
		"YAML":  output.FormatYAML,
		"table": output.FormatTable,
		"":      output.Format(""),
	} {
		got, err := output.ParseFormat(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := output.ParseFormat("xml")
	assert.Error(t, err)
}

func TestJSONFormatter(t *testing.T) {
	var buf strings.Builder
	formatter := output.NewFormatter(output.FormatJSON)

	err := formatter.Format(&buf, map[string]int{"sentences": 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"sentences": 3}`, buf.String())
}

func TestYAMLFormatter(t *testing.T) {
	var buf strings.Builder
	formatter := output.NewFormatter(output.FormatYAML)

	err := formatter.Format(&buf, map[string]string{"scheme": "BIO"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "scheme: BIO")
}

func TestTableFormatter(t *testing.T) {
	formatter := output.NewFormatter(output.FormatTable)

	t.Run("renders table data", func(t *testing.T) {
		var buf strings.Builder
		err := formatter.Format(&buf, table.Data{
			Headers: []string{"Label", "Count"},
			Rows:    [][]string{{"PER", "12"}, {"LOC", "7"}},
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "PER")
		assert.Contains(t, buf.String(), "12")
	})

	t.Run("renders structs as key-value rows", func(t *testing.T) {
		var buf strings.Builder
		err := formatter.Format(&buf, struct {
			Scheme    string `json:"scheme"`
			Sentences int    `json:"sentences"`
		}{Scheme: "BIOES", Sentences: 4})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Scheme")
		assert.Contains(t, buf.String(), "BIOES")
	})

	t.Run("falls back to JSON for non-struct data", func(t *testing.T) {
		var buf strings.Builder
		err := formatter.Format(&buf, []string{"a", "b"})
		require.NoError(t, err)
		assert.JSONEq(t, `["a","b"]`, buf.String())
	})
}
