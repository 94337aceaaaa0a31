// Package commit parses raw commit message text into the structured form the
// lint engine works on: subject, body, trailers and the original text with
// byte offsets preserved. Comment lines and the scissors section that git
// appends in verbose mode are recognized and kept out of the linted content.
package commit

import (
	"regexp"
	"strings"
)

const (
	commentPrefix = "#"
	scissorsLine  = "# ------------------------ >8 ------------------------"
)

var trailerRE = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9-]*): (.+)$`)

// Trailer is a structured key:value line from the commit message footer,
// e.g. "Signed-off-by: Jo Doe <jo@example.com>".
type Trailer struct {
	Key   string
	Value string
}

// Message is a parsed commit message. It is immutable after construction and
// safe to share between concurrently running checks.
type Message struct {
	raw      string
	subject  string
	body     string
	trailers []Trailer
	// lines of the message up to the scissors, with comment lines blanked
	// out, joined for pattern matching
	cleanText string
}

// New parses raw commit message text.
func New(raw string) *Message {
	m := &Message{raw: raw}
	m.parse()
	return m
}

// Raw returns the original message text, byte for byte.
func (m *Message) Raw() string {
	return m.raw
}

func (m *Message) String() string {
	return m.raw
}

// Subject returns the first paragraph of the message. When the author forgot
// the blank line between subject and body, the whole run of lines is the
// subject, which is exactly what the separation lint looks for.
func (m *Message) Subject() string {
	return m.subject
}

// Body returns everything after the subject paragraph, without comment lines
// and without the scissors section.
func (m *Message) Body() string {
	return m.body
}

// Trailers returns the key:value lines of the final paragraph, in order.
func (m *Message) Trailers() []Trailer {
	return m.trailers
}

// MatchesPattern reports whether the message content matches the pattern.
// Comment lines and the scissors section are not searched, so an issue
// reference inside a git comment does not count.
func (m *Message) MatchesPattern(re *regexp.Regexp) bool {
	return re.MatchString(m.cleanText)
}

// LineStartOffset returns the byte offset of the start of the given
// zero-based line in the raw text.
func (m *Message) LineStartOffset(lineIndex int) int {
	offset := 0
	for i := 0; i < lineIndex; i++ {
		next := strings.IndexByte(m.raw[offset:], '\n')
		if next < 0 {
			return len(m.raw)
		}
		offset += next + 1
	}
	return offset
}

// ContentLines returns the raw message split into lines, together with the
// number of leading lines that precede the scissors section. Lines at or
// beyond that count belong to the scissors section and are never linted.
func (m *Message) ContentLines() (lines []string, contentCount int) {
	lines = strings.Split(m.raw, "\n")
	contentCount = len(lines)
	for i, line := range lines {
		if line == scissorsLine {
			contentCount = i
			break
		}
	}
	return lines, contentCount
}

// IsCommentLine reports whether a line is a git comment.
func IsCommentLine(line string) bool {
	return strings.HasPrefix(line, commentPrefix)
}

func (m *Message) parse() {
	lines, contentCount := m.ContentLines()
	lines = lines[:contentCount]

	// Subject: the first run of non-blank, non-comment lines.
	var subjectLines []string
	rest := 0
	started := false
	for i, line := range lines {
		if IsCommentLine(line) {
			if started {
				rest = i
				break
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			if started {
				rest = i
				break
			}
			continue
		}
		subjectLines = append(subjectLines, line)
		started = true
		rest = i + 1
	}
	m.subject = strings.Join(subjectLines, "\n")

	// Body: everything after the subject, comments stripped.
	var bodyLines []string
	for _, line := range lines[min(rest, len(lines)):] {
		if IsCommentLine(line) {
			continue
		}
		bodyLines = append(bodyLines, line)
	}
	m.body = strings.TrimSpace(strings.Join(bodyLines, "\n"))

	m.trailers = parseTrailers(m.body)

	var cleanLines []string
	for _, line := range lines {
		if IsCommentLine(line) {
			continue
		}
		cleanLines = append(cleanLines, line)
	}
	m.cleanText = strings.Join(cleanLines, "\n")
}

// parseTrailers reads the last paragraph of the body and collects its
// key:value lines. A paragraph qualifies only if every line in it looks like
// a trailer, mirroring how git interpret-trailers treats the footer.
func parseTrailers(body string) []Trailer {
	if body == "" {
		return nil
	}
	paragraphs := strings.Split(body, "\n\n")
	last := strings.TrimSpace(paragraphs[len(paragraphs)-1])
	if last == "" {
		return nil
	}

	var trailers []Trailer
	for _, line := range strings.Split(last, "\n") {
		match := trailerRE.FindStringSubmatch(line)
		if match == nil {
			return nil
		}
		trailers = append(trailers, Trailer{Key: match[1], Value: match[2]})
	}
	return trailers
}
