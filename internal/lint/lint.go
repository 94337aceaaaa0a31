// Package lint holds the catalog of commit message checks, the selection set
// used to pick a subset of them, and the sequential and concurrent evaluators
// that run the selected checks against one message.
package lint

import (
	"github.com/maxbolgarin/commitlint/internal/commit"
	"github.com/maxbolgarin/commitlint/internal/model"
)

// Lint identifies one check from the catalog. The declaration order below is
// the canonical catalog order: every evaluator reports problems in this
// order, no matter how the selection set was built.
type Lint int

const (
	DuplicatedTrailers Lint = iota
	PivotalTrackerIDMissing
	JiraIssueKeyMissing
	GitHubIDMissing
	SubjectNotSeparateFromBody
	SubjectLongerThan72Characters
	SubjectNotCapitalized
	SubjectEndsWithPeriod
	BodyWiderThan72Characters
	NotConventionalCommit
	NotEmojiLog
	SignedOffByMissing
	WipCommit
	PlaceholderMessage

	lintCount // keep last
)

// checkFunc is a pure predicate over a parsed message. It never fails: "no
// problem" is a nil result.
type checkFunc func(*commit.Message) *model.Problem

// catalog binds every lint to its problem code and check. The array index is
// the Lint value itself, which makes the mapping exhaustive by construction
// (a missing entry shows up as a nil check in tests).
var catalog = [lintCount]struct {
	code      model.Code
	check     checkFunc
	byDefault bool
}{
	DuplicatedTrailers:            {model.CodeDuplicatedTrailers, checkDuplicatedTrailers, true},
	PivotalTrackerIDMissing:       {model.CodePivotalTrackerIDMissing, checkPivotalTrackerID, false},
	JiraIssueKeyMissing:           {model.CodeJiraIssueKeyMissing, checkJiraIssueKey, false},
	GitHubIDMissing:               {model.CodeGitHubIDMissing, checkGitHubID, false},
	SubjectNotSeparateFromBody:    {model.CodeSubjectNotSeparateFromBody, checkSubjectSeparateFromBody, true},
	SubjectLongerThan72Characters: {model.CodeSubjectLongerThan72Characters, checkSubjectLength, true},
	SubjectNotCapitalized:         {model.CodeSubjectNotCapitalized, checkSubjectCapitalized, false},
	SubjectEndsWithPeriod:         {model.CodeSubjectEndsWithPeriod, checkSubjectPeriod, false},
	BodyWiderThan72Characters:     {model.CodeBodyWiderThan72Characters, checkBodyWidth, true},
	NotConventionalCommit:         {model.CodeNotConventionalCommit, checkConventionalCommit, false},
	NotEmojiLog:                   {model.CodeNotEmojiLog, checkEmojiLog, false},
	SignedOffByMissing:            {model.CodeSignedOffByMissing, checkSignedOffBy, false},
	WipCommit:                     {model.CodeWipCommit, checkWip, false},
	PlaceholderMessage:            {model.CodePlaceholderMessage, checkPlaceholder, false},
}

// Code returns the problem code this lint reports under.
func (l Lint) Code() model.Code {
	if l < 0 || l >= lintCount {
		return model.CodeUnknown
	}
	return catalog[l].code
}

// Name returns the lint's unique serialized name, e.g.
// "subject-longer-than-72-characters".
func (l Lint) Name() string {
	return l.Code().String()
}

func (l Lint) String() string {
	return l.Name()
}

// EnabledByDefault reports whether the lint runs when no configuration
// enables or disables anything.
func (l Lint) EnabledByDefault() bool {
	if l < 0 || l >= lintCount {
		return false
	}
	return catalog[l].byDefault
}

// Check runs the lint against a message. A nil result means the message
// passes. Checks are total: they never fail, whatever the input.
func (l Lint) Check(msg *commit.Message) *model.Problem {
	if l < 0 || l >= lintCount {
		return nil
	}
	return catalog[l].check(msg)
}

// AllLints returns the whole catalog in canonical order.
func AllLints() []Lint {
	lints := make([]Lint, 0, lintCount)
	for l := Lint(0); l < lintCount; l++ {
		lints = append(lints, l)
	}
	return lints
}

// FromName resolves a serialized name back to its lint.
func FromName(name string) (Lint, bool) {
	for l := Lint(0); l < lintCount; l++ {
		if l.Name() == name {
			return l, true
		}
	}
	return 0, false
}
