package commitmsg

import "fmt"

// Source identifies how the commit message came to exist. It mirrors the
// second argument git passes to the prepare-commit-msg hook; SourceNone
// means git passed no source, i.e. a plain interactive commit.
type Source string

// Commit sources, per githooks(5).
const (
	SourceNone     Source = ""
	SourceMessage  Source = "message"
	SourceTemplate Source = "template"
	SourceMerge    Source = "merge"
	SourceSquash   Source = "squash"
	SourceCommit   Source = "commit"
)

// ParseSource converts a hook argument into a Source.
// The empty string is SourceNone; anything outside the closed set is an
// error so callers can surface unexpected hook arguments.
func ParseSource(arg string) (Source, error) {
	switch s := Source(arg); s {
	case SourceNone, SourceMessage, SourceTemplate, SourceMerge, SourceSquash, SourceCommit:
		return s, nil
	default:
		return SourceNone, fmt.Errorf("unknown commit source %q", arg)
	}
}

// ParseSourceName converts a configuration token into a Source.
// Identical to ParseSource except that the absent source is spelled "none",
// since an empty string cannot appear in a config list.
func ParseSourceName(name string) (Source, error) {
	if name == "none" {
		return SourceNone, nil
	}
	if name == "" {
		return SourceNone, fmt.Errorf("empty commit source name")
	}
	return ParseSource(name)
}

// String makes the absent source readable in diagnostics.
func (s Source) String() string {
	if s == SourceNone {
		return "none"
	}
	return string(s)
}
