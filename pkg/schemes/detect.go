package schemes

// Detect guesses the scheme a tag stream was written in: any S- or E-
// prefix means BIOES, otherwise BIO. A stream with no entity tags at
// all reads as BIO, which every BIOES decoder also accepts for the
// all-Outside case.
func Detect(tagSequences ...[]string) Scheme {
	for _, tags := range tagSequences {
		for _, tag := range tags {
			switch prefix, _ := splitTag(tag); prefix {
			case "S", "E":
				return BIOES
			}
		}
	}
	return BIO
}

// Convert re-encodes a tag sequence from one scheme to another by
// decoding to spans and encoding with the target codec. Converting a
// sequence to its own scheme is the identity for well-formed input.
func Convert(tags []string, from, to Scheme) ([]string, error) {
	src, err := New(from)
	if err != nil {
		return nil, err
	}
	dst, err := New(to)
	if err != nil {
		return nil, err
	}

	spans, err := src.Decode(tags)
	if err != nil {
		return nil, err
	}
	return dst.Encode(spans, len(tags))
}
