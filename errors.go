package cssel

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeCardinality reports an element, id, or pseudo-element fragment
	// occurring more than once in one compound selector.
	CodeCardinality = "cardinality"
	// CodeOrder reports a fragment appended out of the fixed grammar order
	// element > id > class > attr > pseudo-class > pseudo-element.
	CodeOrder = "order"
	// CodeParseError reports malformed input to Deserialize or to a
	// declarative definition loader.
	CodeParseError = "parse_error"
	// CodeSerialize reports a value Serialize could not encode.
	CodeSerialize = "serialize_error"
	// CodeUnknownKind reports a declarative definition naming a fragment
	// kind that does not exist.
	CodeUnknownKind = "unknown_kind"
)

// Issue represents a single builder or serialization error entry.
type Issue struct {
	Fragment string // Offending fragment kind name, or an input locator such as "json".
	Code     string // One of the codes listed above.
	Message  string
	Cause    error // Optional: underlying error.
}

// Issues is a collection of errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. cardinality at element
		fmt.Fprintf(b, "%s at %s", it.Code, it.Fragment)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func hasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// IsCardinality reports whether err carries a cardinality violation.
func IsCardinality(err error) bool { return hasCode(err, CodeCardinality) }

// IsOrder reports whether err carries a grammar-order violation.
func IsOrder(err error) bool { return hasCode(err, CodeOrder) }

// IsParseError reports whether err carries a parse failure.
func IsParseError(err error) bool { return hasCode(err, CodeParseError) }
