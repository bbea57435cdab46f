package reconcile

import "fmt"

// ConflictKind classifies an overlapping span pair.
type ConflictKind string

// Conflict kinds. Agreements are recorded too: a duplicate collapse is
// the resolved form of "both sources claim this entity".
const (
	ConflictAgreement ConflictKind = "agreement"
	ConflictType      ConflictKind = "type"
	ConflictBoundary  ConflictKind = "boundary"
)

// ConflictRecord documents one overlapping span pair and the
// resolution taken. Records exist for audit and the final report;
// they are never errors.
type ConflictRecord struct {
	// Sentence is the ordinal of the sentence pair the conflict
	// occurred in.
	Sentence int `json:"sentence" yaml:"sentence"`

	Kind ConflictKind `json:"kind" yaml:"kind"`

	// Kept is the candidate committed to the merged set.
	Kept Candidate `json:"kept" yaml:"kept"`

	// Dropped is the losing candidate. For agreements it is the
	// collapsed duplicate.
	Dropped *Candidate `json:"dropped,omitempty" yaml:"dropped,omitempty"`

	// Reason is the human-readable resolution taken.
	Reason string `json:"reason" yaml:"reason"`
}

// String renders the record for logs.
func (r ConflictRecord) String() string {
	if r.Dropped != nil {
		return fmt.Sprintf("sentence %d: %s conflict: kept %s (%s), dropped %s (%s): %s",
			r.Sentence, r.Kind, r.Kept.Span, r.Kept.Source, r.Dropped.Span, r.Dropped.Source, r.Reason)
	}
	return fmt.Sprintf("sentence %d: %s conflict: kept %s (%s): %s",
		r.Sentence, r.Kind, r.Kept.Span, r.Kept.Source, r.Reason)
}
