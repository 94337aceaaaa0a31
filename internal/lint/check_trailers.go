package lint

import (
	"fmt"
	"slices"
	"strings"

	"github.com/maxbolgarin/commitlint/internal/commit"
	"github.com/maxbolgarin/commitlint/internal/model"
)

const (
	duplicatedTrailersTitle     = "Your commit message has duplicated trailers"
	duplicatedTrailersTipFormat = "These are normally added accidentally when you're rebasing or " +
		"amending to a commit, sometimes in the text editor, but often by git hooks.\n\n" +
		"You can fix this by deleting the duplicated \"%s\" %s"

	signedOffByTitle = "Your commit message is missing a Signed-off-by trailer"
	signedOffByTip   = "Projects that use the Developer Certificate of Origin require every " +
		"commit to be signed off, and hooks or CI will reject commits without it.\n\n" +
		"You can fix this by committing with --signoff, or by adding a trailer like\n\n" +
		"Signed-off-by: Jo Doe <jo@example.com>"
	urlSignOff = "https://git-scm.com/docs/git-commit#Documentation/git-commit.txt---signoff"

	signedOffByKey = "Signed-off-by"
)

// Trailers where an exact duplicate is always an accident.
var duplicateCheckedTrailers = []string{signedOffByKey, "Co-authored-by", "Relates-to"}

// checkDuplicatedTrailers reports one problem covering every duplicated
// trailer, with an annotation on each occurrence beyond the first.
func checkDuplicatedTrailers(msg *commit.Message) *model.Problem {
	duplicated := duplicatedTrailerKeys(msg.Trailers())
	if len(duplicated) == 0 {
		return nil
	}

	unit := "field"
	if len(duplicated) > 1 {
		unit = "fields"
	}
	tip := fmt.Sprintf(duplicatedTrailersTipFormat, strings.Join(duplicated, `", "`), unit)

	builder := model.NewProblemBuilder(
		duplicatedTrailersTitle, tip, model.CodeDuplicatedTrailers, msg.Raw(),
	).WithURL(urlGitHooks)

	raw := msg.Raw()
	for _, key := range duplicated {
		first := true
		for offset := 0; ; {
			idx := strings.Index(raw[offset:], key)
			if idx < 0 {
				break
			}
			offset += idx
			if first {
				first = false
			} else {
				builder.WithAnnotation("Duplicated `"+key+"`", offset, runesUntilNewline(raw, offset))
			}
			offset += len(key)
		}
	}

	problem := builder.Build()
	return &problem
}

// duplicatedTrailerKeys returns the keys of trailers that appear more than
// once with the same value, sorted and deduplicated.
func duplicatedTrailerKeys(trailers []commit.Trailer) []string {
	counts := make(map[commit.Trailer]int, len(trailers))
	for _, trailer := range trailers {
		counts[trailer]++
	}

	var keys []string
	for trailer, count := range counts {
		if count > 1 && slices.Contains(duplicateCheckedTrailers, trailer.Key) {
			keys = append(keys, trailer.Key)
		}
	}
	slices.Sort(keys)
	return slices.Compact(keys)
}

// checkSignedOffBy reports a problem when the message carries no
// Signed-off-by trailer at all.
func checkSignedOffBy(msg *commit.Message) *model.Problem {
	for _, trailer := range msg.Trailers() {
		if trailer.Key == signedOffByKey {
			return nil
		}
	}

	problem := model.NewProblemBuilder(
		signedOffByTitle, signedOffByTip, model.CodeSignedOffByMissing, msg.Raw(),
	).
		WithAnnotationAtLastLine("No sign-off").
		WithURL(urlSignOff).
		Build()
	return &problem
}
