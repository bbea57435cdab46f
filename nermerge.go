// Package nermerge merges two independently annotated NER corpora into
// a single consolidated corpus. The inputs are pre-tokenized
// one-token-per-line streams; sentences are paired positionally,
// decoded into entity spans, reconciled under a deterministic conflict
// policy, and re-encoded in the configured tagging scheme.
package nermerge

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/corpuskit/nermerge/pkg/corpus"
	"github.com/corpuskit/nermerge/pkg/errors"
	"github.com/corpuskit/nermerge/pkg/logging"
	"github.com/corpuskit/nermerge/pkg/reconcile"
	"github.com/corpuskit/nermerge/pkg/schemes"
)

// Merger merges two annotated corpora into one.
type Merger interface {
	// Merge consumes the two annotated streams and writes the merged
	// corpus. It returns the run report; on an unrecovered failure the
	// report covers the sentences handled before the abort.
	Merge(ctx context.Context, a, b io.Reader, out io.Writer) (*reconcile.Result, error)

	// MergeFiles is Merge over file paths. Unreadable or unwritable
	// paths fail before any sentence is processed.
	MergeFiles(ctx context.Context, pathA, pathB, outPath string) (*reconcile.Result, error)

	// Scheme returns the tagging scheme the merger reads and writes.
	Scheme() schemes.Scheme
}

// merger is the internal implementation of the Merger interface.
type merger struct {
	config *config
	codec  schemes.Codec
	engine *reconcile.Engine
	logger *zerolog.Logger
}

// New creates a Merger with the given options. The defaults are the
// BIO scheme, strict error handling, and source-A priority on type
// conflicts.
func New(opts ...Option) (Merger, error) {
	m := &merger{config: newConfig()}

	if err := m.config.options(opts...); err != nil {
		return nil, err
	}

	codec, err := schemes.New(m.config.scheme)
	if err != nil {
		return nil, err
	}
	m.codec = codec
	m.engine = reconcile.NewEngine(reconcile.WithStrategy(m.config.strategy))
	m.logger = m.config.logger

	return m, nil
}

// Scheme returns the tagging scheme the merger reads and writes.
func (m *merger) Scheme() schemes.Scheme {
	return m.config.scheme
}

// Merge consumes the two annotated streams and writes the merged corpus.
func (m *merger) Merge(ctx context.Context, a, b io.Reader, out io.Writer) (*reconcile.Result, error) {
	return m.merge(ctx,
		corpus.NewReader(a),
		corpus.NewReader(b),
		corpus.NewWriter(out),
	)
}

// MergeFiles is Merge over file paths. An empty outPath writes the
// merged corpus to stdout.
func (m *merger) MergeFiles(ctx context.Context, pathA, pathB, outPath string) (*reconcile.Result, error) {
	fileA, err := os.Open(pathA)
	if err != nil {
		return nil, errors.WrapIO("open", pathA, err)
	}
	defer fileA.Close()

	fileB, err := os.Open(pathB)
	if err != nil {
		return nil, errors.WrapIO("open", pathB, err)
	}
	defer fileB.Close()

	var out io.Writer = os.Stdout
	if outPath != "" {
		outFile, err := os.Create(outPath)
		if err != nil {
			return nil, errors.WrapIO("create", outPath, err)
		}
		defer outFile.Close()
		out = outFile
	}

	result, err := m.merge(ctx,
		corpus.NewReader(fileA, corpus.WithPath(pathA)),
		corpus.NewReader(fileB, corpus.WithPath(pathB)),
		corpus.NewWriter(out, corpus.WithOutputPath(outPath)),
	)
	if err != nil {
		return result, err
	}
	if closer, ok := out.(*os.File); ok && outPath != "" {
		if err := closer.Close(); err != nil {
			return result, errors.WrapIO("close", outPath, err)
		}
	}
	return result, nil
}

// merge runs the pipeline: align, extract, reconcile, emit. One
// sentence pair is in flight at a time; output order equals input
// order.
func (m *merger) merge(ctx context.Context, readerA, readerB *corpus.Reader, writer *corpus.Writer) (*reconcile.Result, error) {
	if m.logger != nil {
		ctx = logging.WithLogger(ctx, m.logger)
	}
	ctx = logging.WithScheme(ctx, m.config.scheme.String())

	builder := reconcile.NewResultBuilder().
		WithScheme(m.config.scheme.String()).
		WithStrategy(m.engine.Strategy())

	aligner := corpus.NewAligner(readerA, readerB)

	for {
		if err := ctx.Err(); err != nil {
			return builder.Build(), errors.ErrCanceled
		}

		pair, err := aligner.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return builder.Build(), err
		}

		pairCtx := logging.WithSentence(ctx, pair.Ordinal)

		if pair.Err != nil {
			if aborted, err := m.skip(pairCtx, builder, writer, pair, pair.Err); aborted {
				return builder.Build(), err
			}
			continue
		}

		spansA, spansB, err := m.extract(pair)
		if err != nil {
			if errors.IsMalformedTagSequence(err) {
				if aborted, skipErr := m.skip(pairCtx, builder, writer, pair, err); aborted {
					return builder.Build(), skipErr
				}
				continue
			}
			return builder.Build(), err
		}

		merged, records := m.engine.Merge(pair.Ordinal, spansA, spansB)
		builder.AddConflicts(records).AddProcessed(len(spansA), len(spansB), len(merged))

		tags, err := m.codec.Encode(merged, pair.A.Len())
		if err != nil {
			// Unreachable given the engine's output invariant.
			return builder.Build(), &errors.InvariantError{
				Component: "emitter",
				Sentence:  pair.Ordinal,
				Message:   err.Error(),
				Context:   formatSpanSets(spansA, spansB, merged),
			}
		}

		if err := writer.WriteSentence(pair.A.WithTags(tags)); err != nil {
			return builder.Build(), err
		}
		builder.AddWritten()

		logging.Ctx(pairCtx).Debug().
			Int("spans_a", len(spansA)).
			Int("spans_b", len(spansB)).
			Int("spans_merged", len(merged)).
			Int("conflicts", len(records)).
			Msg("sentence pair merged")
	}

	if err := writer.Flush(); err != nil {
		return builder.Build(), err
	}
	return builder.Build(), nil
}

// extract decodes both sides' tags into span sets, applying the label
// mapper when configured. Codec errors are annotated with the sentence
// ordinal.
func (m *merger) extract(pair *corpus.Pair) (spansA, spansB []schemes.Span, err error) {
	spansA, err = m.decode(pair.A)
	if err != nil {
		return nil, nil, err
	}
	spansB, err = m.decode(pair.B)
	if err != nil {
		return nil, nil, err
	}
	if m.config.mapper != nil {
		spansA = m.config.mapper.A.Apply(spansA)
		spansB = m.config.mapper.B.Apply(spansB)
	}
	return spansA, spansB, nil
}

func (m *merger) decode(sentence *corpus.Sentence) ([]schemes.Span, error) {
	spans, err := m.codec.Decode(sentence.Tags())
	if err != nil {
		var tagErr *errors.TagSequenceError
		if errors.As(err, &tagErr) {
			return nil, tagErr.WithSentence(sentence.Ordinal)
		}
		return nil, err
	}
	return spans, nil
}

// skip handles an unmergeable sentence pair. In strict mode, malformed
// input aborts the run; alignment mismatches are always recoverable.
// Returns aborted=true when the run must stop.
func (m *merger) skip(ctx context.Context, builder *reconcile.ResultBuilder, writer *corpus.Writer, pair *corpus.Pair, cause error) (aborted bool, err error) {
	if !errors.IsRecoverable(cause) {
		return true, cause
	}
	if m.config.strict && !errors.IsAlignmentMismatch(cause) {
		return true, cause
	}

	builder.AddSkipped(pair.Ordinal, cause.Error())
	logging.Ctx(ctx).Warn().
		Err(cause).
		Msg("sentence pair skipped")

	if m.config.passthrough && pair.A != nil {
		if err := writer.WriteSentence(pair.A); err != nil {
			return true, err
		}
		builder.AddWritten()
	}
	return false, nil
}

// formatSpanSets renders the three span sets for invariant diagnostics.
func formatSpanSets(spansA, spansB, merged []schemes.Span) string {
	format := func(label string, spans []schemes.Span) string {
		s := label + ":"
		for _, sp := range spans {
			s += " " + sp.String()
		}
		return s
	}
	return format("A", spansA) + "\n" + format("B", spansB) + "\n" + format("merged", merged)
}
