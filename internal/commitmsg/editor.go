package commitmsg

import (
	"regexp"
	"strings"
)

// commentStart matches the first line beginning with '#', i.e. the start of
// the auto-generated comment block. Anchored to line starts only: a '#'
// mid-line is message content, not a comment.
var commentStart = regexp.MustCompile(`(?m)^#`)

// Editor inserts ticket lines into commit message content.
type Editor struct {
	prefix   string
	eligible map[Source]bool
}

// NewEditor creates an editor that builds ticket lines as prefix + ticket
// and inserts them only for the given commit sources.
func NewEditor(prefix string, eligible []Source) *Editor {
	set := make(map[Source]bool, len(eligible))
	for _, s := range eligible {
		set[s] = true
	}
	return &Editor{prefix: prefix, eligible: set}
}

// Prefix returns the configured ticket line prefix.
func (e *Editor) Prefix() string {
	return e.prefix
}

// Eligible reports whether the editor inserts for the given source.
func (e *Editor) Eligible(source Source) bool {
	return e.eligible[source]
}

// Apply returns the content with the ticket line inserted, and whether the
// content changed. The content is returned unchanged when the ticket line
// is already present, or when the commit source is not eligible.
func (e *Editor) Apply(ticket string, source Source, content string) (string, bool) {
	ticketLine := e.prefix + ticket

	// No-op if the ticket details already exist
	if strings.Contains(content, ticketLine) {
		return content, false
	}

	if !e.eligible[source] {
		return content, false
	}

	loc := commentStart.FindStringIndex(content)
	if loc == nil {
		// Commit not opened with an editor: the file is pure content, so
		// append the ticket line at the end.
		return content + "\n" + ticketLine + "\n", true
	}

	// Commit opened with an editor: the file is the message followed by
	// auto-generated comments. Insert between the two.
	head := content[:loc[0]]
	tail := content[loc[0]:]

	insert := "\n" + ticketLine + "\n"
	if source == SourceNone {
		// Interactive edit with no explicit source: leave a blank line so
		// the ticket is visually separated from the comment block.
		insert += "\n"
	}

	return head + insert + tail, true
}
