// Package merge implements the merge command, the main entry point for
// combining two annotation streams over the same text.
package merge

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/corpuskit/nermerge"
	"github.com/corpuskit/nermerge/internal/cmd/output"
	"github.com/corpuskit/nermerge/internal/cmd/table"
	"github.com/corpuskit/nermerge/pkg/labelmap"
	"github.com/corpuskit/nermerge/pkg/reconcile"
)

// AppContext defines the interface that the merge command needs from the
// app. This allows for better testability and decoupling from the full app.
type AppContext interface {
	Logger() *zerolog.Logger
	OutputFormat() string
	Merger(opts ...nermerge.Option) (nermerge.Merger, error)
}

// NewCommand creates the merge command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var (
		scheme        string
		outPath       string
		strategy      string
		preferLabels  []string
		lenient       bool
		passthrough   bool
		labelMapPath  string
		showConflicts bool
	)

	cmd := &cobra.Command{
		Use:   "merge <a-file> <b-file>",
		Short: "Merge two annotation streams over the same text",
		Long: `Merge combines two one-token-per-line annotation files covering the
same tokens into a single output file.

Sentences are paired by position and must contain identical tokens.
Entity spans from both inputs are reconciled deterministically: exact
duplicates collapse, type disagreements on the same boundaries are
resolved by the strategy (input A wins by default), and overlapping
spans with different boundaries keep the earlier-committed span.`,
		Example: `  nermerge merge a.txt b.txt -w merged.txt
  nermerge merge --scheme bioes a.txt b.txt -w merged.txt
  nermerge merge a.txt b.txt -w merged.txt --lenient --passthrough
  nermerge merge a.txt b.txt -w merged.txt --labelmap labels.yaml
  nermerge merge a.txt b.txt -w merged.txt --strategy b --show-conflicts`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Config file and env supply defaults; flags set here win
			var opts []nermerge.Option
			flags := cmd.Flags()

			if flags.Changed("lenient") {
				opts = append(opts, nermerge.WithStrictMode(!lenient))
			}
			if flags.Changed("passthrough") {
				opts = append(opts, nermerge.WithSkippedPassthrough(passthrough))
			}
			if scheme != "" {
				opts = append(opts, nermerge.WithSchemeName(scheme))
			}

			strat, err := buildStrategy(strategy, preferLabels)
			if err != nil {
				return err
			}
			opts = append(opts, nermerge.WithStrategy(strat))

			if labelMapPath != "" {
				mapper, err := labelmap.Load(labelMapPath)
				if err != nil {
					return err
				}
				opts = append(opts, nermerge.WithLabelMapper(mapper))
			}

			merger, err := app.Merger(opts...)
			if err != nil {
				return err
			}

			result, err := merger.MergeFiles(cmd.Context(), args[0], args[1], outPath)
			if err != nil {
				return err
			}

			app.Logger().Info().
				Str("scheme", string(result.Scheme)).
				Int("sentences", result.Stats.SentencesWritten).
				Int("conflicts", result.Stats.ConflictsResolved()).
				Msg("Merge complete")

			return printResult(app, result, showConflicts)
		},
	}

	cmd.Flags().StringVarP(&scheme, "scheme", "s", "", "tag scheme of both inputs: bio, bioes (default bio)")
	cmd.Flags().StringVarP(&outPath, "write", "w", "", "output file (default stdout)")
	cmd.Flags().StringVar(&strategy, "strategy", "a", "type conflict winner: a, b")
	cmd.Flags().StringSliceVar(&preferLabels, "prefer-labels", nil, "labels that win type conflicts regardless of source")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "skip malformed sentence pairs instead of aborting")
	cmd.Flags().BoolVar(&passthrough, "passthrough", false, "copy input A through for skipped pairs (requires --lenient)")
	cmd.Flags().StringVar(&labelMapPath, "labelmap", "", "YAML label mapping applied before reconciliation")
	cmd.Flags().BoolVar(&showConflicts, "show-conflicts", false, "include per-conflict records in the report")

	return cmd
}

// buildStrategy maps the --strategy and --prefer-labels flags onto a
// reconciliation strategy.
func buildStrategy(name string, preferLabels []string) (reconcile.Strategy, error) {
	var base reconcile.Strategy
	switch strings.ToLower(name) {
	case "", "a":
		base = reconcile.NewSourcePriorityStrategy(reconcile.SourceA, reconcile.SourceB)
	case "b":
		base = reconcile.NewSourcePriorityStrategy(reconcile.SourceB, reconcile.SourceA)
	default:
		return nil, fmt.Errorf("invalid strategy %q: must be one of: a, b", name)
	}

	if len(preferLabels) > 0 {
		return reconcile.NewLabelPreferenceStrategy(preferLabels, base), nil
	}
	return base, nil
}

// printResult writes the merge report to stdout in the configured format.
// Tables summarize; json and yaml carry the whole result.
func printResult(app AppContext, result *reconcile.Result, showConflicts bool) error {
	format := output.DetectFormat(app.OutputFormat())
	formatter := output.NewFormatter(format)

	if format == output.FormatTable {
		if err := formatter.Format(os.Stdout, table.StatsToTableData(result.Stats)); err != nil {
			return err
		}
		if showConflicts && len(result.Conflicts) > 0 {
			fmt.Println()
			return formatter.Format(os.Stdout, table.ConflictsToTableData(result.Conflicts))
		}
		return nil
	}

	if !showConflicts {
		trimmed := *result
		trimmed.Conflicts = nil
		return formatter.Format(os.Stdout, &trimmed)
	}
	return formatter.Format(os.Stdout, result)
}
