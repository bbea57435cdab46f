package corpus

import (
	"bufio"
	"io"
	"strings"

	"github.com/corpuskit/nermerge/pkg/errors"
)

// Reader yields sentences from an annotated stream one at a time.
// It is a single-pass reader; restarting requires re-opening the
// underlying stream.
type Reader struct {
	scanner *bufio.Scanner
	path    string
	line    int // 1-based number of the last line read
	ordinal int // ordinal of the next sentence to be returned
	done    bool
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithPath attaches an input path to the reader for error messages.
func WithPath(path string) ReaderOption {
	return func(r *Reader) {
		r.path = path
	}
}

// NewReader creates a Reader over an annotated token/tag stream.
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	reader := &Reader{scanner: bufio.NewScanner(r)}
	for _, opt := range opts {
		opt(reader)
	}
	return reader
}

// Next returns the next sentence in the stream. It returns io.EOF
// after the final sentence; end-of-file implicitly closes a sentence
// in progress. Runs of blank lines are collapsed, so an empty
// sentence is never returned. Malformed lines fail with a
// malformed-line error carrying the line number.
func (r *Reader) Next() (*Sentence, error) {
	if r.done {
		return nil, io.EOF
	}

	var sentence *Sentence
	for r.scanner.Scan() {
		r.line++
		text := r.scanner.Text()

		if strings.TrimSpace(text) == "" {
			if sentence != nil {
				r.ordinal++
				return sentence, nil
			}
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 2 {
			lineErr := errors.NewLineError(r.path, r.line, text, "expected token and tag")
			// Consume the rest of the sentence so the stream stays
			// positioned on a sentence boundary and ordinals remain
			// comparable across streams; the caller decides whether
			// the error aborts the run.
			r.drainSentence()
			r.ordinal++
			return nil, lineErr
		}

		if sentence == nil {
			sentence = &Sentence{Ordinal: r.ordinal, Line: r.line}
		}
		sentence.Tokens = append(sentence.Tokens, Token{Text: fields[0], Tag: fields[1]})
	}

	r.done = true
	if err := r.scanner.Err(); err != nil {
		return nil, errors.WrapIO("read", r.path, err)
	}
	if sentence != nil {
		r.ordinal++
		return sentence, nil
	}
	return nil, io.EOF
}

// drainSentence advances the scanner to the next blank line or EOF.
func (r *Reader) drainSentence() {
	for r.scanner.Scan() {
		r.line++
		if strings.TrimSpace(r.scanner.Text()) == "" {
			return
		}
	}
	r.done = true
}

// ReadAll drains the reader, returning every remaining sentence.
// Intended for small corpora and tests; the pipeline itself streams.
func (r *Reader) ReadAll() ([]*Sentence, error) {
	var sentences []*Sentence
	for {
		sentence, err := r.Next()
		if err == io.EOF {
			return sentences, nil
		}
		if err != nil {
			return sentences, err
		}
		sentences = append(sentences, sentence)
	}
}
