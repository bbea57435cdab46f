// Package schemes implements the tag-scheme codecs for sequence-labeled
// NER corpora. A codec translates between a sentence's flat per-token
// tags (B-ORG, I-ORG, O, ...) and the canonical span representation the
// reconciliation engine works on. The supported schemes form a closed
// set; adding one means adding a codec implementation here.
package schemes

import (
	"strings"

	"github.com/corpuskit/nermerge/pkg/errors"
)

// Scheme identifies a supported tagging scheme.
type Scheme string

// Supported schemes.
const (
	BIO   Scheme = "BIO"
	BIOES Scheme = "BIOES"
)

// Outside is the tag for tokens not covered by any span.
const Outside = "O"

// String returns the scheme name.
func (s Scheme) String() string {
	return string(s)
}

// Parse resolves a scheme name (case-insensitive) to a Scheme.
// Unknown names fail with an unsupported-scheme error.
func Parse(name string) (Scheme, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "BIO":
		return BIO, nil
	case "BIOES":
		return BIOES, nil
	default:
		return "", errors.NewSchemeError(name)
	}
}

// Codec encodes and decodes one tagging scheme.
type Codec interface {
	// Scheme returns the scheme this codec implements.
	Scheme() Scheme

	// Decode walks the flat tags and extracts the entity spans they
	// encode. Tag sequences that violate the scheme's transition rules
	// fail with a malformed-tag-sequence error.
	Decode(tags []string) ([]Span, error)

	// Encode projects spans back onto a sentence of the given length.
	// Tokens outside every span receive the Outside tag. The result
	// round-trips through Decode to the same span set. Spans that
	// violate the span-set invariants (out of bounds, overlapping,
	// unsorted, empty type) fail with a malformed-tag-sequence error.
	Encode(spans []Span, length int) ([]string, error)
}

// New returns the codec for a scheme.
func New(s Scheme) (Codec, error) {
	switch s {
	case BIO:
		return bioCodec{}, nil
	case BIOES:
		return bioesCodec{}, nil
	default:
		return nil, errors.NewSchemeError(string(s))
	}
}

// MustCodec returns the codec for a scheme and panics on unknown
// schemes. Intended for the compiled-in scheme constants.
func MustCodec(s Scheme) Codec {
	c, err := New(s)
	if err != nil {
		panic(err)
	}
	return c
}

// splitTag separates a flat tag into its prefix and entity type.
// "B-ORG" yields ("B", "ORG"); "O" yields ("O", "").
func splitTag(tag string) (prefix, entityType string) {
	if tag == Outside {
		return Outside, ""
	}
	parts := strings.SplitN(tag, "-", 2)
	if len(parts) != 2 {
		return tag, ""
	}
	return parts[0], parts[1]
}

// joinTag builds a flat tag from a prefix and entity type.
func joinTag(prefix, entityType string) string {
	return prefix + "-" + entityType
}

// validateSpans checks the span-set invariants Encode relies on:
// sorted by start, non-overlapping, within [0, length), start <= end,
// non-empty type.
func validateSpans(scheme Scheme, spans []Span, length int) error {
	prevEnd := -1
	for _, sp := range spans {
		switch {
		case sp.Type == "":
			return errors.NewTagSequenceError(string(scheme), sp.Start, "", "span has empty entity type")
		case sp.Start < 0 || sp.End >= length || sp.Start > sp.End:
			return errors.NewTagSequenceError(string(scheme), sp.Start, "",
				"span "+sp.String()+" out of bounds for sentence length")
		case sp.Start <= prevEnd:
			return errors.NewTagSequenceError(string(scheme), sp.Start, "",
				"span "+sp.String()+" overlaps or is unsorted")
		}
		prevEnd = sp.End
	}
	return nil
}
