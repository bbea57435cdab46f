package nermerge

import (
	"github.com/rs/zerolog"

	"github.com/corpuskit/nermerge/pkg/errors"
	"github.com/corpuskit/nermerge/pkg/labelmap"
	"github.com/corpuskit/nermerge/pkg/reconcile"
	"github.com/corpuskit/nermerge/pkg/schemes"
)

// Option is a function that configures a Merger instance.
type Option func(*config) error

// config holds the resolved Merger configuration.
type config struct {
	scheme      schemes.Scheme
	strategy    reconcile.Strategy
	strict      bool
	passthrough bool
	mapper      *labelmap.Mapper
	logger      *zerolog.Logger
}

// newConfig returns the default configuration: BIO scheme, strict
// error handling, skipped pairs omitted from the output. The logger is
// left unset so Merge falls back to the one carried by its context.
func newConfig() *config {
	return &config{
		scheme: schemes.BIO,
		strict: true,
	}
}

// options applies the given options in order.
func (c *config) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// WithScheme sets the tagging scheme both inputs and the output use.
func WithScheme(scheme schemes.Scheme) Option {
	return func(c *config) error {
		if _, err := schemes.New(scheme); err != nil {
			return err
		}
		c.scheme = scheme
		return nil
	}
}

// WithSchemeName sets the tagging scheme by name ("BIO", "BIOES").
func WithSchemeName(name string) Option {
	return func(c *config) error {
		scheme, err := schemes.Parse(name)
		if err != nil {
			return err
		}
		c.scheme = scheme
		return nil
	}
}

// WithStrategy sets the type-conflict resolution strategy.
func WithStrategy(strategy reconcile.Strategy) Option {
	return func(c *config) error {
		if strategy == nil {
			return errors.New("strategy cannot be nil")
		}
		c.strategy = strategy
		return nil
	}
}

// WithStrictMode controls the malformed-input policy: strict aborts
// the run, lenient skips the offending sentence pair with a warning.
// Strict is the default.
func WithStrictMode(strict bool) Option {
	return func(c *config) error {
		c.strict = strict
		return nil
	}
}

// WithSkippedPassthrough controls whether skipped sentence pairs are
// written through to the output unmerged (the A side, when it was
// readable) instead of omitted. Off by default.
func WithSkippedPassthrough(passthrough bool) Option {
	return func(c *config) error {
		c.passthrough = passthrough
		return nil
	}
}

// WithLabelMapper rewrites entity types on decoded spans before
// reconciliation, so both corpora share one label vocabulary.
func WithLabelMapper(mapper *labelmap.Mapper) Option {
	return func(c *config) error {
		c.mapper = mapper
		return nil
	}
}

// WithLogger sets the logger the pipeline reports to, overriding any
// logger carried by the Merge context.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		c.logger = logger
		return nil
	}
}
