package otlearn

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// LoadConstraintSet reads a constraint-set file, dispatching on
// extension: ".json" for the structured list form, anything else for
// the printed
// "Name[...] >> Name[...]" form a human would edit by hand.
func LoadConstraintSet(path string, table *FeatureTable) (*ConstraintSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Key: path, Reason: err.Error()}
	}
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return ParseConstraintSetJSON(data, table)
	}
	return ParseConstraintSetPrinted(string(data), table)
}

type jsonBundle map[string]string

type jsonConstraint struct {
	Kind    string       `json:"kind"`
	Bundles []jsonBundle `json:"bundles"`
}

// ParseConstraintSetJSON parses the structured list form: an ordered
// JSON array of {"kind": ..., "bundles": [{"label": "value", ...}]}.
func ParseConstraintSetJSON(data []byte, table *FeatureTable) (*ConstraintSet, error) {
	var spec []jsonConstraint
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, &ConstraintFormatError{Reason: err.Error()}
	}
	constraints := make([]Constraint, len(spec))
	for i, jc := range spec {
		bundles := make([]FeatureBundle, len(jc.Bundles))
		for j, jb := range jc.Bundles {
			fb, err := NewFeatureBundle(table, map[string]string(jb))
			if err != nil {
				return nil, err
			}
			bundles[j] = fb
		}
		c, err := NewConstraint(jc.Kind, bundles)
		if err != nil {
			return nil, err
		}
		constraints[i] = c
	}
	return NewConstraintSet(constraints), nil
}

// ParseConstraintSetPrinted parses the human-editable printed form,
// the same form ConstraintSet.String produces: constraints separated
// by " >> ", each "Name[bundle1 bundle2 ...]" with each bundle
// "[+label1 -label2 ...]".
func ParseConstraintSetPrinted(s string, table *FeatureTable) (*ConstraintSet, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NewConstraintSet(nil), nil
	}
	parts := strings.Split(s, ">>")
	constraints := make([]Constraint, len(parts))
	for i, part := range parts {
		c, err := parseOneConstraint(strings.TrimSpace(part), table)
		if err != nil {
			return nil, err
		}
		constraints[i] = c
	}
	return NewConstraintSet(constraints), nil
}

func parseOneConstraint(s string, table *FeatureTable) (Constraint, error) {
	open := strings.IndexByte(s, '[')
	if open < 0 || !strings.HasSuffix(s, "]") {
		return nil, &ConstraintFormatError{Reason: "malformed constraint: " + s}
	}
	kind := s[:open]
	inner := s[open+1 : len(s)-1]
	inner = strings.TrimSpace(inner)

	var bundles []FeatureBundle
	for len(inner) > 0 {
		bopen := strings.IndexByte(inner, '[')
		if bopen < 0 {
			return nil, &ConstraintFormatError{Reason: "malformed bundle list in: " + s}
		}
		bclose := strings.IndexByte(inner, ']')
		if bclose < 0 {
			return nil, &ConstraintFormatError{Reason: "malformed bundle in: " + s}
		}
		fb, err := parseOneBundle(inner[bopen+1:bclose], table)
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, fb)
		inner = strings.TrimSpace(inner[bclose+1:])
	}
	return NewConstraint(kind, bundles)
}

func parseOneBundle(s string, table *FeatureTable) (FeatureBundle, error) {
	values := map[string]string{}
	for _, tok := range strings.Fields(s) {
		if len(tok) < 2 || (tok[0] != '+' && tok[0] != '-') {
			return FeatureBundle{}, &ConstraintFormatError{Reason: "malformed feature token: " + tok}
		}
		label := tok[1:]
		allowed := table.AllowedValues(label)
		idx := 0
		if tok[0] == '-' {
			idx = 1
		}
		if len(allowed) <= idx {
			return FeatureBundle{}, &ConstraintFormatError{Reason: fmt.Sprintf("no value %d for label %q", idx, label)}
		}
		values[label] = allowed[idx]
	}
	return NewFeatureBundle(table, values)
}
