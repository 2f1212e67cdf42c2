package cssel

// IssueFor creates an Issue attributed to a fragment kind with the provided
// code and message. This is a convenience helper to improve readability at
// call sites with many parameters.
func IssueFor(k Kind, code, msg string) Issue {
	return Issue{Fragment: k.String(), Code: code, Message: msg}
}
