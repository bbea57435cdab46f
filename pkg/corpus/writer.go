package corpus

import (
	"bufio"
	"io"

	"github.com/corpuskit/nermerge/pkg/errors"
)

// Writer emits sentences in the same one-token-per-line shape the
// Reader consumes, blank lines between sentences. There is exactly
// one writer per run and sentences are written in order.
type Writer struct {
	w     *bufio.Writer
	path  string
	first bool
}

// NewWriter creates a Writer over the output stream.
func NewWriter(w io.Writer, opts ...WriterOption) *Writer {
	writer := &Writer{w: bufio.NewWriter(w), first: true}
	for _, opt := range opts {
		opt(writer)
	}
	return writer
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithOutputPath attaches an output path to the writer for error messages.
func WithOutputPath(path string) WriterOption {
	return func(w *Writer) {
		w.path = path
	}
}

// WriteSentence appends one sentence to the output.
func (w *Writer) WriteSentence(sentence *Sentence) error {
	if !w.first {
		if err := w.w.WriteByte('\n'); err != nil {
			return errors.WrapIO("write", w.path, err)
		}
	}
	w.first = false

	for _, tok := range sentence.Tokens {
		if _, err := w.w.WriteString(tok.Text + " " + tok.Tag + "\n"); err != nil {
			return errors.WrapIO("write", w.path, err)
		}
	}
	return nil
}

// Flush writes any buffered output to the underlying stream.
func (w *Writer) Flush() error {
	return errors.WrapIO("flush", w.path, w.w.Flush())
}
