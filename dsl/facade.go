package dsl

import (
	cssel "github.com/cssel/cssel"
)

// The facade is stateless: every function allocates a fresh Builder and
// applies exactly one operation to it. Nothing is shared between calls.

// Element starts a chain with an element fragment.
func Element(value string) *Builder { return new(Builder).Element(value) }

// ID starts a chain with an id fragment.
func ID(value string) *Builder { return new(Builder).ID(value) }

// Class starts a chain with a class fragment.
func Class(value string) *Builder { return new(Builder).Class(value) }

// Attr starts a chain with an attribute fragment.
func Attr(value string) *Builder { return new(Builder).Attr(value) }

// PseudoClass starts a chain with a pseudo-class fragment.
func PseudoClass(value string) *Builder { return new(Builder).PseudoClass(value) }

// PseudoElement starts a chain with a pseudo-element fragment.
func PseudoElement(value string) *Builder { return new(Builder).PseudoElement(value) }

// Combine starts a chain holding "left op right". Both arguments must be
// fully-built sub-selectors; they are rendered immediately and should not be
// reused afterwards.
func Combine(left *Builder, op cssel.Combinator, right *Builder) *Builder {
	return new(Builder).Combine(left, op, right)
}
