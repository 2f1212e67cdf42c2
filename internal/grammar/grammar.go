// Package grammar implements the ordering and cardinality rules for compound
// CSS selectors. It is the engine behind the dsl builder; callers convert its
// SimpleIssue values into the public error model at the boundary.
package grammar

import (
	cssel "github.com/cssel/cssel"
)

// SimpleIssue is the engine-level error shape, converted to cssel.Issue by
// callers.
type SimpleIssue struct {
	Kind    cssel.Kind
	Code    string
	Message string
}

// rank maps each fragment kind to its position in the fixed grammar order
// element < id < class < attr < pseudo-class < pseudo-element. Kind ordinals
// already follow that order; the table keeps the dependency explicit should
// the public enum ever be reordered.
var rank = [cssel.NumKinds]int{
	cssel.KindElement:       0,
	cssel.KindID:            1,
	cssel.KindClass:         2,
	cssel.KindAttr:          3,
	cssel.KindPseudoClass:   4,
	cssel.KindPseudoElement: 5,
}

// byRank lists the kinds sorted by grammar rank.
var byRank = func() [cssel.NumKinds]cssel.Kind {
	var out [cssel.NumKinds]cssel.Kind
	for k, r := range rank {
		out[r] = cssel.Kind(k)
	}
	return out
}()

// singleton marks the kinds limited to one occurrence per compound selector.
var singleton = [cssel.NumKinds]bool{
	cssel.KindElement:       true,
	cssel.KindID:            true,
	cssel.KindPseudoElement: true,
}

// CheckCardinality verifies the at-most-once rule for element, id, and
// pseudo-element against per-kind occurrence counts.
func CheckCardinality(counts [cssel.NumKinds]int) (SimpleIssue, bool) {
	for k := 0; k < cssel.NumKinds; k++ {
		if singleton[k] && counts[k] > 1 {
			return SimpleIssue{
				Kind:    cssel.Kind(k),
				Code:    cssel.CodeCardinality,
				Message: "element, id and pseudo-element should not occur more than one time inside the selector",
			}, false
		}
	}
	return SimpleIssue{}, true
}

// CheckOrder verifies that the first occurrences of the kinds in seq appear
// in grammar order. Repeats of class, attr, and pseudo-class are fine as long
// as their first occurrence is not behind a higher-ranked kind.
func CheckOrder(seq []cssel.Kind) (SimpleIssue, bool) {
	const absent = -1
	var first [cssel.NumKinds]int
	for k := range first {
		first[k] = absent
	}
	for i, k := range seq {
		if first[k] == absent {
			first[k] = i
		}
	}
	// First occurrences must be strictly increasing along the rank order.
	prev := absent
	for _, k := range byRank {
		pos := first[k]
		if pos == absent {
			continue
		}
		if prev != absent && pos < prev {
			return SimpleIssue{
				Kind:    k,
				Code:    cssel.CodeOrder,
				Message: "selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element",
			}, false
		}
		prev = pos
	}
	return SimpleIssue{}, true
}

// Render returns the kind-specific textual form of one fragment. Values are
// pre-formatted by the caller; only the delimiter or prefix is added here.
func Render(k cssel.Kind, value string) string {
	switch k {
	case cssel.KindElement:
		return value
	case cssel.KindID:
		return "#" + value
	case cssel.KindClass:
		return "." + value
	case cssel.KindAttr:
		return "[" + value + "]"
	case cssel.KindPseudoClass:
		return ":" + value
	case cssel.KindPseudoElement:
		return "::" + value
	default:
		return value
	}
}
