// Package errors provides custom error types for the nermerge system.
// These errors enable programmatic error checking across the pipeline
// and carry the positional context (line numbers, sentence ordinals)
// needed for useful diagnostics on malformed corpora.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As are aliases for the standard library equivalents so
// callers need only one errors import.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors for the nermerge system
var (
	// ErrUnsupportedScheme indicates an unknown tagging scheme was requested
	ErrUnsupportedScheme = errors.New("unsupported tagging scheme")

	// ErrMalformedLine indicates an input line that is not "token tag"
	ErrMalformedLine = errors.New("malformed line")

	// ErrMalformedTagSequence indicates a tag sequence that violates the scheme
	ErrMalformedTagSequence = errors.New("malformed tag sequence")

	// ErrAlignmentMismatch indicates paired sentences whose tokens disagree
	ErrAlignmentMismatch = errors.New("alignment mismatch")

	// ErrInvariantViolation indicates an internal pipeline invariant was broken
	ErrInvariantViolation = errors.New("internal invariant violation")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// SchemeError represents a request for a tagging scheme the codec set
// does not support.
type SchemeError struct {
	Scheme string
}

// Error implements the error interface
func (e *SchemeError) Error() string {
	return fmt.Sprintf("unsupported tagging scheme %q (supported: BIO, BIOES)", e.Scheme)
}

// Is implements errors.Is support
func (e *SchemeError) Is(target error) bool {
	return target == ErrUnsupportedScheme
}

// NewSchemeError creates a new SchemeError
func NewSchemeError(scheme string) *SchemeError {
	return &SchemeError{Scheme: scheme}
}

// LineError represents a malformed input line.
type LineError struct {
	Path    string // input path, may be empty for anonymous streams
	Line    int    // 1-based line number within the stream
	Content string
	Message string
}

// Error implements the error interface
func (e *LineError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d: malformed line %q: %s", e.Path, e.Line, e.Content, e.Message)
	}
	return fmt.Sprintf("line %d: malformed line %q: %s", e.Line, e.Content, e.Message)
}

// Is implements errors.Is support
func (e *LineError) Is(target error) bool {
	return target == ErrMalformedLine
}

// NewLineError creates a new LineError
func NewLineError(path string, line int, content, message string) *LineError {
	return &LineError{Path: path, Line: line, Content: content, Message: message}
}

// TagSequenceError represents a tag sequence that violates the active
// scheme's transition rules.
type TagSequenceError struct {
	Scheme   string
	Sentence int // 0-based sentence ordinal, -1 if unknown
	Position int // 0-based token position of the offending tag
	Tag      string
	Message  string
}

// Error implements the error interface
func (e *TagSequenceError) Error() string {
	if e.Sentence >= 0 {
		return fmt.Sprintf("sentence %d: %s tag %q at token %d: %s",
			e.Sentence, e.Scheme, e.Tag, e.Position, e.Message)
	}
	return fmt.Sprintf("%s tag %q at token %d: %s", e.Scheme, e.Tag, e.Position, e.Message)
}

// Is implements errors.Is support
func (e *TagSequenceError) Is(target error) bool {
	return target == ErrMalformedTagSequence
}

// WithSentence returns a copy annotated with the sentence ordinal.
func (e *TagSequenceError) WithSentence(ordinal int) *TagSequenceError {
	annotated := *e
	annotated.Sentence = ordinal
	return &annotated
}

// NewTagSequenceError creates a new TagSequenceError with no sentence context.
func NewTagSequenceError(scheme string, position int, tag, message string) *TagSequenceError {
	return &TagSequenceError{Scheme: scheme, Sentence: -1, Position: position, Tag: tag, Message: message}
}

// AlignmentError represents a sentence pair whose tokens do not line up.
type AlignmentError struct {
	Sentence int // 0-based sentence ordinal
	Position int // token position of the first disagreement, -1 for count mismatch
	TokenA   string
	TokenB   string
	Message  string
}

// Error implements the error interface
func (e *AlignmentError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("sentence %d: alignment mismatch at token %d: %q (A) vs %q (B)",
			e.Sentence, e.Position, e.TokenA, e.TokenB)
	}
	return fmt.Sprintf("sentence %d: alignment mismatch: %s", e.Sentence, e.Message)
}

// Is implements errors.Is support
func (e *AlignmentError) Is(target error) bool {
	return target == ErrAlignmentMismatch
}

// InvariantError represents a broken internal invariant. These are bugs,
// never expected in normal operation, and always abort the run.
type InvariantError struct {
	Component string
	Sentence  int
	Message   string
	Context   string // formatted span sets or other diagnostic state
}

// Error implements the error interface
func (e *InvariantError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("invariant violation in %s (sentence %d): %s\n%s",
			e.Component, e.Sentence, e.Message, e.Context)
	}
	return fmt.Sprintf("invariant violation in %s (sentence %d): %s", e.Component, e.Sentence, e.Message)
}

// Is implements errors.Is support
func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariantViolation
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{Operation: operation, Path: path, Message: message, Err: err}
}

// ParseError represents an error when parsing auxiliary data files
// such as label-map YAML.
type ParseError struct {
	Format  string // "yaml", "json", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Helper functions for error checking

// IsUnsupportedScheme checks if an error is an unsupported scheme error
func IsUnsupportedScheme(err error) bool {
	return errors.Is(err, ErrUnsupportedScheme)
}

// IsMalformedLine checks if an error is a malformed line error
func IsMalformedLine(err error) bool {
	return errors.Is(err, ErrMalformedLine)
}

// IsMalformedTagSequence checks if an error is a malformed tag sequence error
func IsMalformedTagSequence(err error) bool {
	return errors.Is(err, ErrMalformedTagSequence)
}

// IsAlignmentMismatch checks if an error is an alignment mismatch
func IsAlignmentMismatch(err error) bool {
	return errors.Is(err, ErrAlignmentMismatch)
}

// IsInvariantViolation checks if an error is an internal invariant violation
func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrInvariantViolation)
}

// IsRecoverable reports whether a per-sentence error may be skipped in
// lenient mode. Alignment mismatches and malformed input qualify;
// invariant violations never do.
func IsRecoverable(err error) bool {
	return IsAlignmentMismatch(err) || IsMalformedLine(err) || IsMalformedTagSequence(err)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, File: file, Message: err.Error(), Err: err}
}
