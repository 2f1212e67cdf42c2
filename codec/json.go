// Package codec provides serialization helpers and declarative selector
// definitions for cssel. JSON goes through goccy/go-json; YAML through
// gopkg.in/yaml.v3.
package codec

import (
	json "github.com/goccy/go-json"

	cssel "github.com/cssel/cssel"
)

// Serialize returns the canonical JSON text of v. Object keys follow the
// declaration order of the value's fields; no sorting is applied.
func Serialize(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", cssel.AppendIssues(nil, cssel.Issue{
			Fragment: "json",
			Code:     cssel.CodeSerialize,
			Message:  "value is not serializable",
			Cause:    err,
		})
	}
	return string(data), nil
}

// Deserialize parses JSON text into a value of the concrete type T. The
// methods of T become available on the result, which is how behavior is
// reattached to data that crossed a serialization boundary: parse, then
// reconstruct into the target type rather than patching behavior on at
// runtime. Malformed text fails with Issues carrying CodeParseError.
func Deserialize[T any](text string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		var zero T
		return zero, cssel.AppendIssues(nil, cssel.Issue{
			Fragment: "json",
			Code:     cssel.CodeParseError,
			Message:  "input is not well-formed JSON",
			Cause:    err,
		})
	}
	return out, nil
}
