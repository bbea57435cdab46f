// Package labelmap renames entity types so two corpora annotated with
// different label vocabularies can be reconciled against a shared one.
// Rules come from a YAML file and support one-to-one renames and
// many-to-one collapses, applied per dataset side. Rewrites happen on
// decoded spans, never on raw tags, so the scheme prefix is untouched.
package labelmap

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/corpuskit/nermerge/pkg/errors"
	"github.com/corpuskit/nermerge/pkg/schemes"
)

// Rules is the per-side rule set as it appears in the YAML file.
type Rules struct {
	// Map holds one-to-one renames: source label to target label.
	Map map[string]string `yaml:"map"`

	// Collapse holds many-to-one groups.
	Collapse []Collapse `yaml:"collapse"`
}

// Collapse folds several source labels into one target label.
type Collapse struct {
	From []string `yaml:"from"`
	To   string   `yaml:"to"`
}

// File is the top-level YAML document: rules per side, plus rules
// applied to both sides.
type File struct {
	A    *Rules `yaml:"a"`
	B    *Rules `yaml:"b"`
	Both *Rules `yaml:"both"`
}

// Table is a compiled label-rewrite lookup for one dataset side.
type Table map[string]string

// Rewrite returns the mapped label, or the input unchanged when no
// rule matches.
func (t Table) Rewrite(label string) string {
	if target, ok := t[label]; ok {
		return target
	}
	return label
}

// Apply returns a copy of the spans with their types rewritten.
// A nil or empty table returns the input unchanged.
func (t Table) Apply(spans []schemes.Span) []schemes.Span {
	if len(t) == 0 {
		return spans
	}
	out := make([]schemes.Span, len(spans))
	for i, sp := range spans {
		sp.Type = t.Rewrite(sp.Type)
		out[i] = sp
	}
	return out
}

// Mapper holds the compiled tables for both sides.
type Mapper struct {
	A Table
	B Table
}

// Load reads and compiles a label-map file.
func Load(path string) (*Mapper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	mapper, err := Parse(data)
	if err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	return mapper, nil
}

// Parse compiles label-map YAML into a Mapper.
func Parse(data []byte) (*Mapper, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	a, err := compile(file.Both, file.A)
	if err != nil {
		return nil, err
	}
	b, err := compile(file.Both, file.B)
	if err != nil {
		return nil, err
	}
	return &Mapper{A: a, B: b}, nil
}

// compile merges rule sets into one lookup table. Later rule sets may
// not re-map a label an earlier set already maps; rule files must be
// unambiguous.
func compile(ruleSets ...*Rules) (Table, error) {
	table := make(Table)
	for _, rules := range ruleSets {
		if rules == nil {
			continue
		}
		for from, to := range rules.Map {
			if err := addRule(table, from, to); err != nil {
				return nil, err
			}
		}
		for _, group := range rules.Collapse {
			if group.To == "" {
				return nil, errors.New("collapse group missing target label")
			}
			for _, from := range group.From {
				if err := addRule(table, from, group.To); err != nil {
					return nil, err
				}
			}
		}
	}
	return table, nil
}

func addRule(table Table, from, to string) error {
	if from == "" || to == "" {
		return errors.New("label-map rule with empty label")
	}
	if existing, ok := table[from]; ok && existing != to {
		return errors.New("conflicting rules for label " + from)
	}
	table[from] = to
	return nil
}
