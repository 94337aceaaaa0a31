package model

import "slices"

// Annotation highlights a span of the commit message implicated in a problem.
type Annotation struct {
	Label  string // e.g. "Too long"
	Offset int    // byte offset into the original message text
	Length int    // length of the highlighted span in characters
}

// Problem describes one violated lint rule in a commit message.
// It is immutable once constructed and compared field by field, so two
// problems built from the same message and rule are always equal.
type Problem struct {
	Title       string       // short description of what is wrong
	Tip         string       // advice on how to fix it
	Code        Code         // which lint produced this problem
	CommitText  string       // the full original message the annotations point into
	Annotations []Annotation // ordered, possibly empty
	URL         string       // optional link with more background, empty if none
}

// NewProblem creates a problem without annotations or a help URL.
func NewProblem(title, tip string, code Code, commitText string) Problem {
	return Problem{
		Title:      title,
		Tip:        tip,
		Code:       code,
		CommitText: commitText,
	}
}

// Equal reports whether two problems are structurally identical.
func (p Problem) Equal(other Problem) bool {
	return p.Title == other.Title &&
		p.Tip == other.Tip &&
		p.Code == other.Code &&
		p.CommitText == other.CommitText &&
		p.URL == other.URL &&
		slices.Equal(p.Annotations, other.Annotations)
}
