// Package convert implements the convert command, re-encoding a corpus
// between tag schemes.
package convert

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/corpuskit/nermerge/pkg/corpus"
	"github.com/corpuskit/nermerge/pkg/errors"
	"github.com/corpuskit/nermerge/pkg/schemes"
)

// AppContext defines the interface that the convert command needs from
// the app.
type AppContext interface {
	Logger() *zerolog.Logger
}

// NewCommand creates the convert command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var (
		from    string
		to      string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Re-encode a corpus between tag schemes",
		Long: `Convert decodes every sentence's entity spans and re-encodes them in
the target scheme. The source scheme is detected from the tags unless
--from is given.`,
		Example: `  nermerge convert --to bioes corpus.txt -w corpus.bioes.txt
  nermerge convert --from bioes --to bio corpus.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := schemes.Parse(to)
			if err != nil {
				return err
			}

			in, err := os.Open(args[0])
			if err != nil {
				return errors.WrapIO("open", args[0], err)
			}
			defer in.Close()

			sentences, err := corpus.NewReader(in, corpus.WithPath(args[0])).ReadAll()
			if err != nil {
				return err
			}

			source, err := sourceScheme(from, sentences)
			if err != nil {
				return err
			}

			app.Logger().Debug().
				Str("from", source.String()).
				Str("to", target.String()).
				Int("sentences", len(sentences)).
				Msg("Converting corpus")

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return errors.WrapIO("create", outPath, err)
				}
				defer f.Close()
				out = f
			}

			writer := corpus.NewWriter(out, corpus.WithOutputPath(outPath))
			for _, sentence := range sentences {
				tags, err := schemes.Convert(sentence.Tags(), source, target)
				if err != nil {
					var tagErr *errors.TagSequenceError
					if errors.As(err, &tagErr) {
						return tagErr.WithSentence(sentence.Ordinal)
					}
					return err
				}
				if err := writer.WriteSentence(sentence.WithTags(tags)); err != nil {
					return err
				}
			}
			return writer.Flush()
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source scheme: bio, bioes (default: detect)")
	cmd.Flags().StringVar(&to, "to", "", "target scheme: bio, bioes")
	cmd.Flags().StringVarP(&outPath, "write", "w", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// sourceScheme resolves the input scheme, from the flag when given or
// detection over the whole corpus otherwise.
func sourceScheme(from string, sentences []*corpus.Sentence) (schemes.Scheme, error) {
	if from != "" {
		return schemes.Parse(from)
	}

	sequences := make([][]string, len(sentences))
	for i, sentence := range sentences {
		sequences[i] = sentence.Tags()
	}
	return schemes.Detect(sequences...), nil
}
