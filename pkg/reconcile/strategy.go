package reconcile

import (
	"fmt"
	"strings"
)

// Strategy decides which entity type wins when both sources mark the
// same token boundaries with different types. Boundary conflicts are
// not strategy-dependent: the sweep's commit order resolves those.
type Strategy interface {
	// Name returns the strategy name.
	Name() string

	// Description returns a human-readable description.
	Description() string

	// ResolveType picks the winner of a same-boundary type conflict.
	ResolveType(a, b Candidate) (winner Candidate, reason string)
}

// SourcePriorityStrategy resolves type conflicts by a fixed source
// priority order. The default engine configuration is A before B,
// making A the reference dataset.
type SourcePriorityStrategy struct {
	priority []Source
}

// NewSourcePriorityStrategy creates a strategy preferring sources in
// the given order.
func NewSourcePriorityStrategy(priority ...Source) *SourcePriorityStrategy {
	if len(priority) == 0 {
		priority = []Source{SourceA, SourceB}
	}
	return &SourcePriorityStrategy{priority: priority}
}

// Name returns the strategy name.
func (s *SourcePriorityStrategy) Name() string {
	return "source-priority"
}

// Description returns a human-readable description.
func (s *SourcePriorityStrategy) Description() string {
	names := make([]string, len(s.priority))
	for i, src := range s.priority {
		names[i] = src.String()
	}
	return "type conflicts resolved by source priority: " + strings.Join(names, " > ")
}

// ResolveType picks the candidate whose source ranks first.
func (s *SourcePriorityStrategy) ResolveType(a, b Candidate) (Candidate, string) {
	for _, src := range s.priority {
		if a.Source == src {
			return a, fmt.Sprintf("source %s has priority over %s", a.Source, b.Source)
		}
		if b.Source == src {
			return b, fmt.Sprintf("source %s has priority over %s", b.Source, a.Source)
		}
	}
	return a, "no priority matched, keeping first candidate"
}

// LabelPreferenceStrategy resolves type conflicts by an ordered list
// of preferred entity types, falling back to another strategy when
// neither type is listed. Useful when one vocabulary is known to be
// more specific (VULID over FILE, say) regardless of source.
type LabelPreferenceStrategy struct {
	preferred []string
	fallback  Strategy
}

// NewLabelPreferenceStrategy creates a label-preference strategy with
// the given fallback. A nil fallback defaults to source priority A > B.
func NewLabelPreferenceStrategy(preferred []string, fallback Strategy) *LabelPreferenceStrategy {
	if fallback == nil {
		fallback = NewSourcePriorityStrategy()
	}
	return &LabelPreferenceStrategy{preferred: preferred, fallback: fallback}
}

// Name returns the strategy name.
func (s *LabelPreferenceStrategy) Name() string {
	return "label-preference"
}

// Description returns a human-readable description.
func (s *LabelPreferenceStrategy) Description() string {
	return "type conflicts resolved by label preference (" +
		strings.Join(s.preferred, " > ") + "), then " + s.fallback.Name()
}

// ResolveType picks the candidate whose type ranks first in the
// preference list, deferring to the fallback when neither appears.
func (s *LabelPreferenceStrategy) ResolveType(a, b Candidate) (Candidate, string) {
	for _, label := range s.preferred {
		if a.Span.Type == label {
			return a, fmt.Sprintf("label %s preferred over %s", a.Span.Type, b.Span.Type)
		}
		if b.Span.Type == label {
			return b, fmt.Sprintf("label %s preferred over %s", b.Span.Type, a.Span.Type)
		}
	}
	winner, reason := s.fallback.ResolveType(a, b)
	return winner, "no label preference matched: " + reason
}
