package schemes

import "fmt"

// Span is a contiguous run of tokens labeled as one entity. Start and
// End are 0-based token indices within the sentence, End inclusive.
// Spans are derived from tags at decode time and never mutated.
type Span struct {
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
	Type  string `json:"type" yaml:"type"`
}

// Len returns the number of tokens the span covers.
func (s Span) Len() int {
	return s.End - s.Start + 1
}

// Overlaps reports whether two spans share at least one token index.
func (s Span) Overlaps(other Span) bool {
	return s.Start <= other.End && other.Start <= s.End
}

// Equal reports whether two spans have identical boundaries and type.
func (s Span) Equal(other Span) bool {
	return s.Start == other.Start && s.End == other.End && s.Type == other.Type
}

// SameBoundaries reports whether two spans cover exactly the same tokens.
func (s Span) SameBoundaries(other Span) bool {
	return s.Start == other.Start && s.End == other.End
}

// String renders the span as [start,end]TYPE for diagnostics.
func (s Span) String() string {
	return fmt.Sprintf("[%d,%d]%s", s.Start, s.End, s.Type)
}
