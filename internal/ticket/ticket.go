// Package ticket extracts issue-tracker ticket identifiers from branch
// names, e.g. "FOO-1234" out of "FOO-1234/my-feature".
package ticket

import "regexp"

// Resolver finds ticket identifiers of the form <LABEL>-<digits> in branch
// names. Labels are scanned in configured order: the first label with a
// match anywhere in the branch wins, and within a label the leftmost match
// wins.
type Resolver struct {
	labels   []string
	patterns []*regexp.Regexp
}

// NewResolver compiles a resolver for the given labels.
// Label text is matched literally, so labels containing regexp
// metacharacters are safe.
func NewResolver(labels []string) *Resolver {
	patterns := make([]*regexp.Regexp, len(labels))
	for i, label := range labels {
		patterns[i] = regexp.MustCompile(regexp.QuoteMeta(label) + `-[0-9]+`)
	}
	return &Resolver{labels: labels, patterns: patterns}
}

// Labels returns the configured labels in scan order.
func (r *Resolver) Labels() []string {
	return r.labels
}

// Find returns the first ticket identifier in the branch name, or false if
// no configured label matches.
func (r *Resolver) Find(branch string) (string, bool) {
	for _, pattern := range r.patterns {
		if match := pattern.FindString(branch); match != "" {
			return match, true
		}
	}
	return "", false
}
