package lint

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/maxbolgarin/commitlint/internal/commit"
	"github.com/maxbolgarin/commitlint/internal/model"
)

const subjectCharacterLimit = 72

const (
	subjectSeparateTitle = "Your commit message is missing a blank line between the subject and the body"
	subjectSeparateTip   = "Most tools that render and parse commit messages, expect commit " +
		"messages to be in the form of subject and body. This includes git itself in tools " +
		"like git-format-patch. If you don't include this you may see strange behaviour from " +
		"git and any related tools.\n\n" +
		"To fix this separate subject from body with a blank line"

	subjectLengthTitle = "Your subject is longer than 72 characters"
	subjectLengthTip   = "It's important to keep the subject of the commit less than 72 " +
		"characters because when you look at the git log, that's where it truncates the " +
		"message. This means that people won't get the entirety of the information in your " +
		"commit.\n\nPlease keep the subject line 72 characters or under"

	subjectCapitalizedTitle = "Your commit message is missing a capital letter"
	subjectCapitalizedTip   = "The subject line is a title, and as such should be " +
		"capitalised.\n\nYou can fix this by capitalising the first character in the subject"

	subjectPeriodTitle = "Your commit message ends with a period"
	subjectPeriodTip   = "It's important to keep your commits short, because we only have a " +
		"limited number of characters to use (72) before the subject line is truncated. Full " +
		"stops aren't normally in subject lines, and take up an extra character, so we " +
		"shouldn't use them in commit message subjects.\n\n" +
		"You can fix this by removing the period"
)

// checkSubjectSeparateFromBody fires when the subject paragraph runs straight
// into the body without a blank line, which is what a multi-line subject means.
func checkSubjectSeparateFromBody(msg *commit.Message) *model.Problem {
	subject := msg.Subject()
	newline := strings.IndexByte(subject, '\n')
	if newline < 0 {
		return nil
	}

	_, offset := subjectStart(msg)
	secondLine := subject[newline+1:]
	if idx := strings.IndexByte(secondLine, '\n'); idx >= 0 {
		secondLine = secondLine[:idx]
	}

	problem := model.NewProblemBuilder(
		subjectSeparateTitle, subjectSeparateTip, model.CodeSubjectNotSeparateFromBody, msg.Raw(),
	).
		WithAnnotation("Missing blank line", offset+newline+1, utf8.RuneCountInString(secondLine)).
		WithURL(urlCommitGuidelines).
		Build()
	return &problem
}

func checkSubjectLength(msg *commit.Message) *model.Problem {
	line := firstSubjectLine(msg)
	length := utf8.RuneCountInString(line)
	if length <= subjectCharacterLimit {
		return nil
	}

	_, offset := subjectStart(msg)
	problem := model.NewProblemBuilder(
		subjectLengthTitle, subjectLengthTip, model.CodeSubjectLongerThan72Characters, msg.Raw(),
	).
		WithAnnotation("Too long", offset+bytesOfRunes(line, subjectCharacterLimit), length-subjectCharacterLimit).
		WithURL(urlCommitGuidelines).
		Build()
	return &problem
}

func checkSubjectCapitalized(msg *commit.Message) *model.Problem {
	subject := msg.Subject()
	for i, r := range subject {
		if unicode.IsSpace(r) {
			continue
		}
		if !unicode.IsLower(r) {
			return nil
		}

		_, offset := subjectStart(msg)
		problem := model.NewProblemBuilder(
			subjectCapitalizedTitle, subjectCapitalizedTip, model.CodeSubjectNotCapitalized, msg.Raw(),
		).
			WithURL(urlCommitGuidelines).
			WithAnnotation("Not capitalised", offset+i, 1).
			Build()
		return &problem
	}
	return nil
}

func checkSubjectPeriod(msg *commit.Message) *model.Problem {
	line := strings.TrimRight(firstSubjectLine(msg), " \t")
	if !strings.HasSuffix(line, ".") {
		return nil
	}

	trimmed := strings.TrimRight(line, ".")
	periods := utf8.RuneCountInString(line) - utf8.RuneCountInString(trimmed)

	_, offset := subjectStart(msg)
	problem := model.NewProblemBuilder(
		subjectPeriodTitle, subjectPeriodTip, model.CodeSubjectEndsWithPeriod, msg.Raw(),
	).
		WithAnnotation("Unneeded period", offset+len(trimmed), periods).
		WithURL(urlCommitGuidelines).
		Build()
	return &problem
}
