// Package inspect implements the inspect command, reporting what a
// corpus file contains.
package inspect

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/corpuskit/nermerge/internal/cmd/output"
	"github.com/corpuskit/nermerge/internal/cmd/table"
	"github.com/corpuskit/nermerge/pkg/corpus"
	"github.com/corpuskit/nermerge/pkg/errors"
	"github.com/corpuskit/nermerge/pkg/schemes"
)

// AppContext defines the interface that the inspect command needs from
// the app.
type AppContext interface {
	Logger() *zerolog.Logger
	OutputFormat() string
}

// Report summarizes one corpus file.
type Report struct {
	Path      string         `json:"path" yaml:"path"`
	Scheme    string         `json:"scheme" yaml:"scheme"`
	Sentences int            `json:"sentences" yaml:"sentences"`
	Tokens    int            `json:"tokens" yaml:"tokens"`
	Entities  int            `json:"entities" yaml:"entities"`
	Malformed int            `json:"malformed" yaml:"malformed"`
	Labels    map[string]int `json:"labels" yaml:"labels"`
}

// NewCommand creates the inspect command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Report scheme, counts, and label inventory of a corpus",
		Long: `Inspect reads a one-token-per-line corpus and reports the detected
tag scheme, sentence, token, and entity counts, and the inventory of
entity labels. Sentences whose tags do not decode are counted as
malformed rather than aborting the report.`,
		Example: `  nermerge inspect corpus.txt
  nermerge inspect corpus.txt -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := buildReport(args[0])
			if err != nil {
				return err
			}

			app.Logger().Debug().
				Str("path", report.Path).
				Str("scheme", report.Scheme).
				Int("sentences", report.Sentences).
				Msg("Inspected corpus")

			return printReport(app, report)
		},
	}

	return cmd
}

// buildReport reads the corpus and accumulates the summary.
func buildReport(path string) (*Report, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer in.Close()

	sentences, err := corpus.NewReader(in, corpus.WithPath(path)).ReadAll()
	if err != nil {
		return nil, err
	}

	sequences := make([][]string, len(sentences))
	for i, sentence := range sentences {
		sequences[i] = sentence.Tags()
	}
	scheme := schemes.Detect(sequences...)
	codec := schemes.MustCodec(scheme)

	report := &Report{
		Path:      path,
		Scheme:    scheme.String(),
		Sentences: len(sentences),
		Labels:    make(map[string]int),
	}

	for _, sentence := range sentences {
		report.Tokens += sentence.Len()

		spans, err := codec.Decode(sentence.Tags())
		if err != nil {
			report.Malformed++
			continue
		}
		report.Entities += len(spans)
		for _, span := range spans {
			report.Labels[span.Type]++
		}
	}

	return report, nil
}

// printReport writes the report to stdout in the configured format.
func printReport(app AppContext, report *Report) error {
	format := output.DetectFormat(app.OutputFormat())
	formatter := output.NewFormatter(format)

	if format != output.FormatTable {
		return formatter.Format(os.Stdout, report)
	}

	summary := table.Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"Path", report.Path},
			{"Scheme", report.Scheme},
			{"Sentences", fmt.Sprintf("%d", report.Sentences)},
			{"Tokens", fmt.Sprintf("%d", report.Tokens)},
			{"Entities", fmt.Sprintf("%d", report.Entities)},
			{"Malformed", fmt.Sprintf("%d", report.Malformed)},
		},
	}
	if err := formatter.Format(os.Stdout, summary); err != nil {
		return err
	}

	if len(report.Labels) > 0 {
		fmt.Println()
		return formatter.Format(os.Stdout, table.LabelCountsToTableData(report.Labels))
	}
	return nil
}
