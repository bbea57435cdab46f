package schemes

import "github.com/corpuskit/nermerge/pkg/errors"

// bioCodec implements the BIO scheme: a span starts at B-X and
// continues through I-X tags of the same type.
type bioCodec struct{}

// Scheme returns the scheme this codec implements.
func (bioCodec) Scheme() Scheme { return BIO }

// Decode extracts spans from a BIO tag sequence.
func (bioCodec) Decode(tags []string) ([]Span, error) {
	var spans []Span
	open := -1 // start index of the span being built, -1 when outside
	openType := ""

	closeOpen := func(end int) {
		if open >= 0 {
			spans = append(spans, Span{Start: open, End: end, Type: openType})
			open = -1
			openType = ""
		}
	}

	for i, tag := range tags {
		prefix, entityType := splitTag(tag)
		switch prefix {
		case Outside:
			closeOpen(i - 1)
		case "B":
			if entityType == "" {
				return nil, errors.NewTagSequenceError(string(BIO), i, tag, "missing entity type")
			}
			closeOpen(i - 1)
			open = i
			openType = entityType
		case "I":
			if open < 0 {
				return nil, errors.NewTagSequenceError(string(BIO), i, tag, "I- tag with no open span")
			}
			if entityType != openType {
				return nil, errors.NewTagSequenceError(string(BIO), i, tag,
					"entity type changed mid-span (expected "+openType+")")
			}
		default:
			return nil, errors.NewTagSequenceError(string(BIO), i, tag, "unknown tag prefix")
		}
	}
	closeOpen(len(tags) - 1)

	return spans, nil
}

// Encode projects spans back onto a flat BIO tag sequence.
func (bioCodec) Encode(spans []Span, length int) ([]string, error) {
	if err := validateSpans(BIO, spans, length); err != nil {
		return nil, err
	}

	tags := make([]string, length)
	for i := range tags {
		tags[i] = Outside
	}
	for _, sp := range spans {
		tags[sp.Start] = joinTag("B", sp.Type)
		for i := sp.Start + 1; i <= sp.End; i++ {
			tags[i] = joinTag("I", sp.Type)
		}
	}
	return tags, nil
}
