package model

import (
	"strings"
	"unicode/utf8"
)

// ProblemBuilder assembles a Problem step by step.
// Annotation offsets are byte positions into the commit text given at
// construction, lengths are in characters.
type ProblemBuilder struct {
	problem Problem
}

// NewProblemBuilder creates a builder with the required fields set.
func NewProblemBuilder(title, tip string, code Code, commitText string) *ProblemBuilder {
	return &ProblemBuilder{
		problem: NewProblem(title, tip, code, commitText),
	}
}

// WithURL adds a link with more information about the problem.
func (b *ProblemBuilder) WithURL(url string) *ProblemBuilder {
	b.problem.URL = url
	return b
}

// WithAnnotation highlights a span of the commit message.
func (b *ProblemBuilder) WithAnnotation(label string, offset, length int) *ProblemBuilder {
	b.problem.Annotations = append(b.problem.Annotations, Annotation{
		Label:  label,
		Offset: offset,
		Length: length,
	})
	return b
}

// WithAnnotationForLine highlights the part of a line that exceeds a character
// limit. lineIndex is the zero-based index of the line in the commit text.
// Lines within the limit are left unannotated.
func (b *ProblemBuilder) WithAnnotationForLine(lineIndex int, line string, limit int, label string) *ProblemBuilder {
	lineLength := utf8.RuneCountInString(line)
	if lineLength <= limit {
		return b
	}
	offset := lineStartOffset(b.problem.CommitText, lineIndex) + bytesOfRunes(line, limit)
	return b.WithAnnotation(label, offset, lineLength-limit)
}

// WithAnnotationAtLastLine highlights the last non-empty line of the commit
// message, used when something is missing from the end of it.
func (b *ProblemBuilder) WithAnnotationAtLastLine(label string) *ProblemBuilder {
	trimmed := strings.TrimRight(b.problem.CommitText, " \t\n")
	start := 0
	if idx := strings.LastIndexByte(trimmed, '\n'); idx >= 0 {
		start = idx + 1
	}
	return b.WithAnnotation(label, start, utf8.RuneCountInString(trimmed[start:]))
}

// Build returns the assembled problem.
func (b *ProblemBuilder) Build() Problem {
	return b.problem
}

// lineStartOffset returns the byte offset of the start of the given
// zero-based line, or the text length if the line does not exist.
func lineStartOffset(text string, lineIndex int) int {
	offset := 0
	for i := 0; i < lineIndex; i++ {
		next := strings.IndexByte(text[offset:], '\n')
		if next < 0 {
			return len(text)
		}
		offset += next + 1
	}
	return offset
}

// bytesOfRunes returns the byte length of the first n characters of s.
func bytesOfRunes(s string, n int) int {
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}
