package lint

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/maxbolgarin/commitlint/internal/commit"
	"github.com/maxbolgarin/commitlint/internal/model"
)

const (
	conventionalTitle = "Your commit message isn't in conventional style"
	conventionalTip   = "It's important to follow the conventional commit style when creating " +
		"your commit message. By using this style we can automatically calculate the version " +
		"of software using deployment pipelines, and also generate changelogs and other " +
		"useful information without human interaction.\n\n" +
		"You can fix it by following style\n\n" +
		"<type>[optional scope]: <description>\n\n" +
		"[optional body]\n\n" +
		"[optional footer(s)]"
	urlConventional = "https://www.conventionalcommits.org/"

	emojiLogTitle = "Your commit message isn't in emoji log style"
	emojiLogTip   = "It's important to follow the emoji log style when creating your commit " +
		"message. By using this style we can automatically generate changelogs.\n\n" +
		"You can fix it using one of the prefixes:\n\n" +
		"\U0001F4E6 NEW:\n" +
		"\U0001F44C IMPROVE:\n" +
		"\U0001F41B FIX:\n" +
		"\U0001F4D6 DOC:\n" +
		"\U0001F680 RELEASE:\n" +
		"\U0001F916 TEST:\n" +
		"‼️ BREAKING:\n\n" +
		"You can read more at https://github.com/ahmadawais/Emoji-Log"

	wipTitle = "Your commit message is marked as a work in progress"
	wipTip   = "Work in progress markers are meant to keep a commit from being merged, and " +
		"they read as noise in the history once it lands.\n\n" +
		"You can fix this by removing the marker and describing the change, or by amending " +
		"the commit once the work is done"

	placeholderTitle = "Your commit message is a placeholder"
	placeholderTip   = "A placeholder subject tells future readers nothing about why the " +
		"change exists, and it makes the history impossible to search.\n\n" +
		"You can fix this by describing what the change does and why it was needed"
)

var emojiLogPrefixes = []string{
	"\U0001F4E6 NEW: ",
	"\U0001F44C IMPROVE: ",
	"\U0001F41B FIX: ",
	"\U0001F4D6 DOC: ",
	"\U0001F680 RELEASE: ",
	"\U0001F916 TEST: ",
	"‼️ BREAKING: ",
}

var wipMarkerRE = regexp.MustCompile(`(?i)^(\[wip]\s*|wip(:\s*| +|$)|fixup! |squash! )`)

// Subjects that say nothing: default and throwaway messages seen verbatim.
var placeholderSubjects = map[string]struct{}{
	"update":  {},
	"updates": {},
	"fix":     {},
	"fixes":   {},
	"change":  {},
	"changes": {},
	"test":    {},
	"tests":   {},
	"stuff":   {},
	"misc":    {},
	"tweak":   {},
	"commit":  {},
	"temp":    {},
	"asdf":    {},
	"foo":     {},
}

func checkConventionalCommit(msg *commit.Message) *model.Problem {
	line := firstSubjectLine(msg)
	if isConventionalSubject(line) {
		return nil
	}

	_, offset := subjectStart(msg)
	problem := model.NewProblemBuilder(
		conventionalTitle, conventionalTip, model.CodeNotConventionalCommit, msg.Raw(),
	).
		WithAnnotation("Not conventional", offset, utf8.RuneCountInString(line)).
		WithURL(urlConventional).
		Build()
	return &problem
}

// isConventionalSubject parses "<type>[(scope)][!]: <description>".
func isConventionalSubject(subject string) bool {
	colon := strings.IndexByte(subject, ':')
	if colon < 0 {
		return false
	}
	if colon+1 >= len(subject) || subject[colon+1] != ' ' {
		return false
	}

	typeScope := strings.TrimSuffix(subject[:colon], "!")

	commitType := typeScope
	if open := strings.IndexByte(typeScope, '('); open >= 0 {
		if !strings.HasSuffix(typeScope, ")") || open == 0 {
			return false
		}
		commitType = typeScope[:open]
		scope := typeScope[open+1 : len(typeScope)-1]
		if scope == "" || !isAlphanumeric(scope) {
			return false
		}
	}

	return commitType != "" && isAlphanumeric(commitType)
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		isDigit := r >= '0' && r <= '9'
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !isDigit && !isLetter {
			return false
		}
	}
	return true
}

func checkEmojiLog(msg *commit.Message) *model.Problem {
	subject := msg.Subject()
	for _, prefix := range emojiLogPrefixes {
		if strings.HasPrefix(subject, prefix) {
			return nil
		}
	}
	problem := model.NewProblem(emojiLogTitle, emojiLogTip, model.CodeNotEmojiLog, msg.Raw())
	return &problem
}

func checkWip(msg *commit.Message) *model.Problem {
	line := firstSubjectLine(msg)
	marker := wipMarkerRE.FindString(line)
	if marker == "" {
		return nil
	}

	_, offset := subjectStart(msg)
	problem := model.NewProblemBuilder(
		wipTitle, wipTip, model.CodeWipCommit, msg.Raw(),
	).
		WithAnnotation("Work in progress", offset, utf8.RuneCountInString(strings.TrimRight(marker, " "))).
		Build()
	return &problem
}

func checkPlaceholder(msg *commit.Message) *model.Problem {
	line := firstSubjectLine(msg)
	normalized := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ".")))
	if _, ok := placeholderSubjects[normalized]; !ok {
		return nil
	}

	_, offset := subjectStart(msg)
	problem := model.NewProblemBuilder(
		placeholderTitle, placeholderTip, model.CodePlaceholderMessage, msg.Raw(),
	).
		WithAnnotation("Placeholder", offset, utf8.RuneCountInString(line)).
		Build()
	return &problem
}
