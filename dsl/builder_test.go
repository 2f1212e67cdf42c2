package dsl_test

import (
	"testing"

	cssel "github.com/cssel/cssel"
	"github.com/cssel/cssel/dsl"
)

func TestBuilder_SingleFragments(t *testing.T) {
	cases := []struct {
		name string
		b    *dsl.Builder
		want string
	}{
		{"element", dsl.Element("div"), "div"},
		{"id", dsl.ID("nav-bar"), "#nav-bar"},
		{"class", dsl.Class("warning"), ".warning"},
		{"attr", dsl.Attr(`for="email"`), `[for="email"]`},
		{"pseudo-class", dsl.PseudoClass("invalid"), ":invalid"},
		{"pseudo-element", dsl.PseudoElement("first-line"), "::first-line"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.b.Build()
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBuilder_FullGrammarOrder(t *testing.T) {
	got, err := dsl.Element("div").
		ID("main").
		Class("container").
		Class("draggable").
		Attr(`data-state="open"`).
		PseudoClass("hover").
		PseudoElement("after").
		Build()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := `div#main.container.draggable[data-state="open"]:hover::after`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// TestBuilder_ValidOrderings walks every contiguous and gapped subsequence of
// the grammar order and checks that chaining it succeeds with the fragments
// rendered in append order.
func TestBuilder_ValidOrderings(t *testing.T) {
	type frag struct {
		kind cssel.Kind
		val  string
		out  string
	}
	all := []frag{
		{cssel.KindElement, "a", "a"},
		{cssel.KindID, "x", "#x"},
		{cssel.KindClass, "c", ".c"},
		{cssel.KindAttr, "k=v", "[k=v]"},
		{cssel.KindPseudoClass, "hover", ":hover"},
		{cssel.KindPseudoElement, "before", "::before"},
	}
	apply := func(b *dsl.Builder, f frag) *dsl.Builder {
		switch f.kind {
		case cssel.KindElement:
			return b.Element(f.val)
		case cssel.KindID:
			return b.ID(f.val)
		case cssel.KindClass:
			return b.Class(f.val)
		case cssel.KindAttr:
			return b.Attr(f.val)
		case cssel.KindPseudoClass:
			return b.PseudoClass(f.val)
		default:
			return b.PseudoElement(f.val)
		}
	}
	// Every non-empty subset of the six kinds, kept in grammar order.
	for mask := 1; mask < 1<<len(all); mask++ {
		var b *dsl.Builder
		want := ""
		for i, f := range all {
			if mask&(1<<i) == 0 {
				continue
			}
			if b == nil {
				b = apply(new(dsl.Builder), f)
			} else {
				b = apply(b, f)
			}
			want += f.out
		}
		got, err := b.Build()
		if err != nil {
			t.Fatalf("mask %06b: unexpected err: %v", mask, err)
		}
		if got != want {
			t.Fatalf("mask %06b: got %q, want %q", mask, got, want)
		}
	}
}

func TestBuilder_Cardinality(t *testing.T) {
	cases := []struct {
		name string
		b    *dsl.Builder
	}{
		{"element twice", dsl.Element("div").Element("p")},
		{"element twice with gap", dsl.Element("div").Class("x").Element("p")},
		{"id twice", dsl.ID("a").ID("b")},
		{"pseudo-element twice", dsl.PseudoElement("before").PseudoElement("after")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.b.Build()
			if err == nil {
				t.Fatalf("expected cardinality error")
			}
			if !cssel.IsCardinality(err) {
				t.Fatalf("expected cardinality code, got: %v", err)
			}
			if cssel.IsOrder(err) {
				t.Fatalf("cardinality must win over order, got: %v", err)
			}
		})
	}
}

func TestBuilder_Order(t *testing.T) {
	cases := []struct {
		name string
		b    *dsl.Builder
	}{
		{"id after class", dsl.Class("draggable").ID("main")},
		{"element after id", dsl.ID("main").Element("div")},
		{"attr after pseudo-class", dsl.Element("a").PseudoClass("hover").Attr("href")},
		{"class after pseudo-element", dsl.PseudoElement("after").Class("x")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.b.Build()
			if !cssel.IsOrder(err) {
				t.Fatalf("expected order code, got: %v", err)
			}
		})
	}
}

func TestBuilder_ElementIDClassSucceeds(t *testing.T) {
	got, err := dsl.Element("div").ID("main").Class("draggable").Build()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "div#main.draggable" {
		t.Fatalf("got %q", got)
	}
}

func TestBuilder_RepeatsOfRepeatableKinds(t *testing.T) {
	got, err := dsl.Class("a").Class("b").Attr("x").Attr("y").PseudoClass("p").PseudoClass("q").Build()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != ".a.b[x][y]:p:q" {
		t.Fatalf("got %q", got)
	}
}

func TestBuilder_PoisonedStaysPoisoned(t *testing.T) {
	b := dsl.Class("x").ID("y") // order violation
	if b.Err() == nil {
		t.Fatalf("expected sticky error")
	}
	// Further calls are no-ops and do not change the error.
	b.Element("div").PseudoClass("hover")
	_, err := b.Build()
	if !cssel.IsOrder(err) {
		t.Fatalf("expected the original order error, got: %v", err)
	}
	_, err2 := b.Build()
	if !cssel.IsOrder(err2) {
		t.Fatalf("poisoned builder must keep failing, got: %v", err2)
	}
}

func TestBuilder_MustBuildPanicsOnViolation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	dsl.Element("div").Element("p").MustBuild()
}

func TestBuilder_AttrPseudoClassExample(t *testing.T) {
	got, err := dsl.Element("a").Attr(`href$=".png"`).PseudoClass("focus").Build()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != `a[href$=".png"]:focus` {
		t.Fatalf("got %q", got)
	}
}
