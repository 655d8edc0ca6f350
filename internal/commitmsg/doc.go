// Package commitmsg edits commit message files: given a ticket identifier
// and the commit's provenance, it decides whether and where to insert a
// "Ticket: <ID>" line.
//
// A message file written by git has two conceptual parts: the user-authored
// body, and an optional auto-generated comment block of lines starting with
// '#' that git appends when an editor is opened. The ticket line goes at the
// end of the body, before any comment block.
package commitmsg
