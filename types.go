package cssel

// Kind identifies one typed piece of a compound selector.
type Kind uint8

const (
	KindElement Kind = iota
	KindID
	KindClass
	KindAttr
	KindPseudoClass
	KindPseudoElement

	// NumKinds is the number of fragment kinds; useful for per-kind tables.
	NumKinds = int(KindPseudoElement) + 1
)

var kindNames = [NumKinds]string{
	"element",
	"id",
	"class",
	"attr",
	"pseudo_class",
	"pseudo_element",
}

// String returns the stable lowercase name of the kind. These names are also
// the accepted spellings in declarative definitions (codec package).
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// KindFromName resolves a kind by its stable name. It accepts the String()
// spellings plus the hyphenated forms used in CSS prose
// ("pseudo-class", "pseudo-element").
func KindFromName(name string) (Kind, bool) {
	switch name {
	case "pseudo-class":
		return KindPseudoClass, true
	case "pseudo-element":
		return KindPseudoElement, true
	}
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Combinator expresses the structural relationship between two selectors.
// The builder does not constrain its value; any string is rendered literally
// with a single space on each side.
type Combinator string

const (
	Descendant      Combinator = " "
	Child           Combinator = ">"
	AdjacentSibling Combinator = "+"
	GeneralSibling  Combinator = "~"
)
