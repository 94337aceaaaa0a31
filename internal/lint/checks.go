package lint

import (
	"strings"
	"unicode/utf8"

	"github.com/maxbolgarin/commitlint/internal/commit"
)

// Reference links shared by several checks.
const (
	urlCommitGuidelines = "https://git-scm.com/book/en/v2/Distributed-Git-Contributing-to-a-Project#_commit_guidelines"
	urlGitHooks         = "https://git-scm.com/docs/githooks#_commit_msg"
)

// subjectStart returns the zero-based line index and byte offset of the first
// subject line in the raw message, skipping leading blanks and comments.
func subjectStart(msg *commit.Message) (lineIndex, offset int) {
	lines, contentCount := msg.ContentLines()
	for i, line := range lines[:contentCount] {
		if commit.IsCommentLine(line) || strings.TrimSpace(line) == "" {
			continue
		}
		return i, msg.LineStartOffset(i)
	}
	return 0, 0
}

// firstSubjectLine returns the first line of the subject paragraph.
func firstSubjectLine(msg *commit.Message) string {
	subject := msg.Subject()
	if idx := strings.IndexByte(subject, '\n'); idx >= 0 {
		return subject[:idx]
	}
	return subject
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

// runesUntilNewline counts the characters from a byte offset up to the next
// newline or the end of the text.
func runesUntilNewline(text string, offset int) int {
	rest := text[offset:]
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		rest = rest[:idx]
	}
	return utf8.RuneCountInString(rest)
}
