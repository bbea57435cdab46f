// Package corpus reads and writes sequence-labeled corpora in the
// one-token-per-line format: a token and its tag separated by
// whitespace, sentences delimited by blank lines. It also pairs the
// sentences of two streams positionally for merging.
package corpus

// Token is a surface string plus the tag it carries in one dataset.
// Tokens are immutable once read.
type Token struct {
	Text string
	Tag  string
}

// Sentence is an ordered sequence of tokens ending at a blank-line
// boundary, identified by its ordinal index within its stream.
type Sentence struct {
	// Ordinal is the 0-based sentence index within the stream.
	Ordinal int

	// Line is the 1-based line number of the sentence's first token,
	// kept for diagnostics.
	Line int

	Tokens []Token
}

// Len returns the number of tokens in the sentence.
func (s *Sentence) Len() int {
	return len(s.Tokens)
}

// Texts returns the surface strings in token order.
func (s *Sentence) Texts() []string {
	texts := make([]string, len(s.Tokens))
	for i, tok := range s.Tokens {
		texts[i] = tok.Text
	}
	return texts
}

// Tags returns the flat tag sequence in token order.
func (s *Sentence) Tags() []string {
	tags := make([]string, len(s.Tokens))
	for i, tok := range s.Tokens {
		tags[i] = tok.Tag
	}
	return tags
}

// WithTags returns a copy of the sentence carrying a new tag sequence
// over the same tokens. The tag slice must match the token count;
// callers guarantee this (the emitter produces one tag per token).
func (s *Sentence) WithTags(tags []string) *Sentence {
	tokens := make([]Token, len(s.Tokens))
	for i, tok := range s.Tokens {
		tokens[i] = Token{Text: tok.Text, Tag: tags[i]}
	}
	return &Sentence{Ordinal: s.Ordinal, Line: s.Line, Tokens: tokens}
}
