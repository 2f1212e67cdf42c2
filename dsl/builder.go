package dsl

import (
	"strings"

	cssel "github.com/cssel/cssel"
	"github.com/cssel/cssel/internal/grammar"
)

// Builder accumulates the fragments of one compound selector. It is mutable
// and single-owner: obtain one from a facade function, chain fragment methods
// on it, finish with Build, then discard it.
//
// The zero value is ready to use.
type Builder struct {
	text   strings.Builder
	counts [cssel.NumKinds]int
	order  []cssel.Kind
	err    error // sticky; once set, every method is a no-op
}

// Element appends an element fragment (rendered as the raw value).
func (b *Builder) Element(value string) *Builder { return b.append(cssel.KindElement, value) }

// ID appends an id fragment (rendered as #value).
func (b *Builder) ID(value string) *Builder { return b.append(cssel.KindID, value) }

// Class appends a class fragment (rendered as .value).
func (b *Builder) Class(value string) *Builder { return b.append(cssel.KindClass, value) }

// Attr appends an attribute fragment (rendered as [value]). The value is used
// verbatim, so operators and quoting are the caller's, e.g. `href$=".png"`.
func (b *Builder) Attr(value string) *Builder { return b.append(cssel.KindAttr, value) }

// PseudoClass appends a pseudo-class fragment (rendered as :value).
func (b *Builder) PseudoClass(value string) *Builder { return b.append(cssel.KindPseudoClass, value) }

// PseudoElement appends a pseudo-element fragment (rendered as ::value).
func (b *Builder) PseudoElement(value string) *Builder {
	return b.append(cssel.KindPseudoElement, value)
}

// append renders the fragment into text, records it, and re-validates the
// whole append history. On a violation the counters and order record are
// cleared and the builder is poisoned; the text itself is not rolled back.
func (b *Builder) append(k cssel.Kind, value string) *Builder {
	if b.err != nil {
		return b
	}
	b.text.WriteString(grammar.Render(k, value))
	b.counts[k]++
	b.order = append(b.order, k)

	if si, ok := grammar.CheckCardinality(b.counts); !ok {
		b.fail(k, si)
		return b
	}
	if si, ok := grammar.CheckOrder(b.order); !ok {
		b.fail(k, si)
		return b
	}
	return b
}

// fail clears the validation state and records the violation, attributed to
// the fragment kind whose append triggered it.
func (b *Builder) fail(k cssel.Kind, si grammar.SimpleIssue) {
	b.resetValidation()
	b.err = cssel.AppendIssues(nil, cssel.IssueFor(k, si.Code, si.Message))
}

func (b *Builder) resetValidation() {
	b.counts = [cssel.NumKinds]int{}
	b.order = nil
}

// Combine appends "left op right" with a single space on each side of op.
// Both sub-builders are rendered via Build; their errors propagate unchanged.
// The combined text takes part in no cardinality or order bookkeeping, so
// fragments appended afterwards validate only against each other.
func (b *Builder) Combine(left *Builder, op cssel.Combinator, right *Builder) *Builder {
	if b.err != nil {
		return b
	}
	ls, err := left.Build()
	if err != nil {
		b.err = err
		return b
	}
	rs, err := right.Build()
	if err != nil {
		b.err = err
		return b
	}
	b.text.WriteString(ls)
	b.text.WriteString(" ")
	b.text.WriteString(string(op))
	b.text.WriteString(" ")
	b.text.WriteString(rs)
	return b
}

// Err returns the sticky validation error, if any, without finishing the
// build.
func (b *Builder) Err() error { return b.err }

// Build finishes the chain and returns the selector text. If any append
// violated the grammar, Build returns the recorded Issues instead. Build
// clears the ordering state, so a builder is meant to be discarded afterwards;
// appending more fragments to a built builder validates them in isolation.
func (b *Builder) Build() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	b.resetValidation()
	return b.text.String(), nil
}

// MustBuild is like Build but panics on a violation. Intended for selectors
// whose shape is fixed at compile time.
func (b *Builder) MustBuild() string {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
