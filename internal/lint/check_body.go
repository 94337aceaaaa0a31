package lint

import (
	"strings"
	"unicode/utf8"

	"github.com/maxbolgarin/commitlint/internal/commit"
	"github.com/maxbolgarin/commitlint/internal/model"
)

const bodyCharacterLimit = 72

const (
	bodyWidthTitle = "Your commit has a body wider than 72 characters"
	bodyWidthTip   = "It's important to keep the body of the commit narrower than 72 " +
		"characters because when you look at the git log, that's where it truncates the " +
		"message. This means that people won't get the entirety of the information in your " +
		"commit.\n\nYou can fix this by making the lines in your body no more than 72 characters"
)

// checkBodyWidth reports one problem covering every over-wide body line, with
// a "Too long" annotation on the part of each line past the limit. Comment
// lines and the scissors section do not count.
func checkBodyWidth(msg *commit.Message) *model.Problem {
	wide := false
	for _, line := range strings.Split(msg.Body(), "\n") {
		if utf8.RuneCountInString(line) > bodyCharacterLimit {
			wide = true
			break
		}
	}
	if !wide {
		return nil
	}

	builder := model.NewProblemBuilder(
		bodyWidthTitle, bodyWidthTip, model.CodeBodyWiderThan72Characters, msg.Raw(),
	).WithURL(urlCommitGuidelines)

	lines, contentCount := msg.ContentLines()
	for i, line := range lines[:contentCount] {
		if commit.IsCommentLine(line) {
			continue
		}
		builder.WithAnnotationForLine(i, line, bodyCharacterLimit, "Too long")
	}

	problem := builder.Build()
	return &problem
}
