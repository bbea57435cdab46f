package schemes

import "github.com/corpuskit/nermerge/pkg/errors"

// bioesCodec implements the BIOES scheme: S-X marks a single-token
// span, B-X opens a multi-token span that continues through I-X and
// must terminate at E-X of the same type.
type bioesCodec struct{}

// Scheme returns the scheme this codec implements.
func (bioesCodec) Scheme() Scheme { return BIOES }

// Decode extracts spans from a BIOES tag sequence.
func (bioesCodec) Decode(tags []string) ([]Span, error) {
	var spans []Span
	open := -1
	openType := ""

	for i, tag := range tags {
		prefix, entityType := splitTag(tag)

		if open >= 0 && prefix != "I" && prefix != "E" {
			return nil, errors.NewTagSequenceError(string(BIOES), i, tag,
				"open span not terminated by E-"+openType)
		}

		switch prefix {
		case Outside:
			// outside any span
		case "S":
			if entityType == "" {
				return nil, errors.NewTagSequenceError(string(BIOES), i, tag, "missing entity type")
			}
			spans = append(spans, Span{Start: i, End: i, Type: entityType})
		case "B":
			if entityType == "" {
				return nil, errors.NewTagSequenceError(string(BIOES), i, tag, "missing entity type")
			}
			open = i
			openType = entityType
		case "I":
			if open < 0 {
				return nil, errors.NewTagSequenceError(string(BIOES), i, tag, "I- tag with no open span")
			}
			if entityType != openType {
				return nil, errors.NewTagSequenceError(string(BIOES), i, tag,
					"entity type changed mid-span (expected "+openType+")")
			}
		case "E":
			if open < 0 {
				return nil, errors.NewTagSequenceError(string(BIOES), i, tag, "E- tag with no open span")
			}
			if entityType != openType {
				return nil, errors.NewTagSequenceError(string(BIOES), i, tag,
					"entity type changed mid-span (expected "+openType+")")
			}
			spans = append(spans, Span{Start: open, End: i, Type: openType})
			open = -1
			openType = ""
		default:
			return nil, errors.NewTagSequenceError(string(BIOES), i, tag, "unknown tag prefix")
		}
	}

	if open >= 0 {
		return nil, errors.NewTagSequenceError(string(BIOES), len(tags)-1, tags[len(tags)-1],
			"span open at sentence end, missing E-"+openType)
	}

	return spans, nil
}

// Encode projects spans back onto a flat BIOES tag sequence.
func (bioesCodec) Encode(spans []Span, length int) ([]string, error) {
	if err := validateSpans(BIOES, spans, length); err != nil {
		return nil, err
	}

	tags := make([]string, length)
	for i := range tags {
		tags[i] = Outside
	}
	for _, sp := range spans {
		if sp.Len() == 1 {
			tags[sp.Start] = joinTag("S", sp.Type)
			continue
		}
		tags[sp.Start] = joinTag("B", sp.Type)
		for i := sp.Start + 1; i < sp.End; i++ {
			tags[i] = joinTag("I", sp.Type)
		}
		tags[sp.End] = joinTag("E", sp.Type)
	}
	return tags, nil
}
