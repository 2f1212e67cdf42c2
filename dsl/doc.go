// Package dsl provides the fluent compound-selector builder for cssel.
//
// Overview
//   - Facade: Element/ID/Class/Attr/PseudoClass/PseudoElement each allocate a
//     fresh Builder pre-seeded with one fragment; Combine joins two built
//     sub-selectors with a combinator.
//   - Builder API: chain fragment methods, then finish with Build()/MustBuild().
//   - Validation: after every append the builder checks cardinality (element,
//     id, pseudo-element at most once) and grammar order (element, id, class,
//     attribute, pseudo-class, pseudo-element). A violation poisons the
//     builder: the validation state is cleared, further calls are no-ops, and
//     Build returns the recorded Issues.
//
// Entry points
//   - Element(v)/ID(v)/Class(v)/Attr(v)/PseudoClass(v)/PseudoElement(v):
//     start a chain with one fragment.
//   - Combine(left, op, right): join two built sub-selectors; op is rendered
//     literally with a single space on each side and is never validated.
//   - (*Builder).Build(): terminal operation; returns the selector text or
//     the first violation as cssel.Issues.
//
// Design guidelines
//   - Builders are ephemeral and single-owner: construct, chain, Build,
//     discard. No facade-level state is shared between calls.
//   - Values are pre-formatted by the caller (e.g. Attr(`href$=".png"`));
//     the builder adds only the kind-specific delimiter.
//
// Example (quickstart)
//
//	s, err := dsl.Element("a").Attr(`href$=".png"`).PseudoClass("focus").Build()
//	// s == `a[href$=".png"]:focus`
//
//	s2, err := dsl.Combine(
//	    dsl.Element("div").ID("main"),
//	    cssel.AdjacentSibling,
//	    dsl.Element("table").ID("data"),
//	).Build()
//	// s2 == "div#main + table#data"
package dsl
