// Package app provides the application context and dependency management
// for the nermerge CLI. It centralizes configuration, logging, and
// construction of merge pipelines behind a single injectable type.
package app

import (
	"github.com/rs/zerolog"

	"github.com/corpuskit/nermerge"
	"github.com/corpuskit/nermerge/pkg/labelmap"
)

// App represents the nermerge application with all its dependencies.
// It provides a centralized place for configuration and logging,
// following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the requested report format, empty when the
// command should auto-detect.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Merger builds a merge pipeline from the app configuration plus any
// command-specific options. Command flags win over config values, so
// command options are applied last.
func (a *App) Merger(opts ...nermerge.Option) (nermerge.Merger, error) {
	base := []nermerge.Option{
		nermerge.WithLogger(a.logger),
		nermerge.WithStrictMode(!a.config.Lenient),
		nermerge.WithSkippedPassthrough(a.config.Passthrough),
	}
	if a.config.Scheme != "" {
		base = append(base, nermerge.WithSchemeName(a.config.Scheme))
	}
	if a.config.LabelMap != "" {
		mapper, err := labelmap.Load(a.config.LabelMap)
		if err != nil {
			return nil, err
		}
		base = append(base, nermerge.WithLabelMapper(mapper))
	}
	return nermerge.New(append(base, opts...)...)
}
