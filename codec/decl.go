package codec

import (
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	cssel "github.com/cssel/cssel"
	"github.com/cssel/cssel/dsl"
)

// Fragment is one declarative selector piece: a kind name (the cssel.Kind
// spellings, hyphenated forms accepted) and its pre-formatted value.
type Fragment struct {
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
}

// Def is a declarative selector definition. A node is either a fragment list,
// a combine node, or a combine node followed by fragments appended to the
// combined result (fragments always apply after the combine).
type Def struct {
	Fragments []Fragment  `json:"fragments,omitempty" yaml:"fragments,omitempty"`
	Combine   *CombineDef `json:"combine,omitempty" yaml:"combine,omitempty"`
}

// CombineDef joins two sub-definitions with a combinator. Op accepts the
// literal combinator symbol or one of the names "descendant", "child",
// "adjacent_sibling", "general_sibling"; anything else passes through
// literally, mirroring the builder's unconstrained combinator.
type CombineDef struct {
	Left  Def    `json:"left" yaml:"left"`
	Op    string `json:"op" yaml:"op"`
	Right Def    `json:"right" yaml:"right"`
}

var opNames = map[string]cssel.Combinator{
	"descendant":       cssel.Descendant,
	"child":            cssel.Child,
	"adjacent_sibling": cssel.AdjacentSibling,
	"general_sibling":  cssel.GeneralSibling,
}

// Compile builds the selector text for a definition through the dsl facade.
// Grammar violations inside the definition propagate unchanged as
// cssel.Issues.
func Compile(d Def) (string, error) {
	b, err := compile(d)
	if err != nil {
		return "", err
	}
	return b.Build()
}

// CompileJSON decodes a JSON definition and compiles it.
func CompileJSON(data []byte) (string, error) {
	var d Def
	if err := json.Unmarshal(data, &d); err != nil {
		return "", cssel.AppendIssues(nil, cssel.Issue{
			Fragment: "json",
			Code:     cssel.CodeParseError,
			Message:  "definition is not well-formed JSON",
			Cause:    err,
		})
	}
	return Compile(d)
}

// CompileYAML decodes a YAML definition and compiles it.
func CompileYAML(data []byte) (string, error) {
	var d Def
	if err := yaml.Unmarshal(data, &d); err != nil {
		return "", cssel.AppendIssues(nil, cssel.Issue{
			Fragment: "yaml",
			Code:     cssel.CodeParseError,
			Message:  "definition is not well-formed YAML",
			Cause:    err,
		})
	}
	return Compile(d)
}

func compile(d Def) (*dsl.Builder, error) {
	if d.Combine == nil && len(d.Fragments) == 0 {
		return nil, cssel.AppendIssues(nil, cssel.Issue{
			Fragment: "def",
			Code:     cssel.CodeParseError,
			Message:  "definition has neither fragments nor a combine node",
		})
	}

	b := new(dsl.Builder)
	if d.Combine != nil {
		left, err := compile(d.Combine.Left)
		if err != nil {
			return nil, err
		}
		right, err := compile(d.Combine.Right)
		if err != nil {
			return nil, err
		}
		b.Combine(left, combinator(d.Combine.Op), right)
	}
	for _, f := range d.Fragments {
		if err := apply(b, f); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func combinator(op string) cssel.Combinator {
	if c, ok := opNames[op]; ok {
		return c
	}
	return cssel.Combinator(op)
}

func apply(b *dsl.Builder, f Fragment) error {
	k, ok := cssel.KindFromName(f.Kind)
	if !ok {
		return cssel.AppendIssues(nil, cssel.Issue{
			Fragment: f.Kind,
			Code:     cssel.CodeUnknownKind,
			Message:  "unknown fragment kind in definition",
		})
	}
	switch k {
	case cssel.KindElement:
		b.Element(f.Value)
	case cssel.KindID:
		b.ID(f.Value)
	case cssel.KindClass:
		b.Class(f.Value)
	case cssel.KindAttr:
		b.Attr(f.Value)
	case cssel.KindPseudoClass:
		b.PseudoClass(f.Value)
	case cssel.KindPseudoElement:
		b.PseudoElement(f.Value)
	}
	return nil
}
