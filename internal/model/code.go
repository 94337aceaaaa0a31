package model

// Code is a stable identifier for the kind of problem a lint reports.
// Serialized names are part of the configuration contract: renaming one
// breaks every config file that mentions it, so the mapping below is
// append-only.
type Code int

const (
	CodeUnknown Code = iota
	CodeDuplicatedTrailers
	CodePivotalTrackerIDMissing
	CodeJiraIssueKeyMissing
	CodeGitHubIDMissing
	CodeSubjectNotSeparateFromBody
	CodeSubjectLongerThan72Characters
	CodeSubjectNotCapitalized
	CodeSubjectEndsWithPeriod
	CodeBodyWiderThan72Characters
	CodeNotConventionalCommit
	CodeNotEmojiLog
	CodeSignedOffByMissing
	CodeWipCommit
	CodePlaceholderMessage
)

var codeNames = map[Code]string{
	CodeDuplicatedTrailers:            "duplicated-trailers",
	CodePivotalTrackerIDMissing:       "pivotal-tracker-id-missing",
	CodeJiraIssueKeyMissing:           "jira-issue-key-missing",
	CodeGitHubIDMissing:               "github-id-missing",
	CodeSubjectNotSeparateFromBody:    "subject-not-separated-from-body",
	CodeSubjectLongerThan72Characters: "subject-longer-than-72-characters",
	CodeSubjectNotCapitalized:         "subject-line-not-capitalized",
	CodeSubjectEndsWithPeriod:         "subject-line-ends-with-period",
	CodeBodyWiderThan72Characters:     "body-wider-than-72-characters",
	CodeNotConventionalCommit:         "not-conventional-commit",
	CodeNotEmojiLog:                   "not-emoji-log",
	CodeSignedOffByMissing:            "signed-off-by-missing",
	CodeWipCommit:                     "wip-commit",
	CodePlaceholderMessage:            "placeholder-message",
}

// String returns the canonical serialized name of the code.
func (c Code) String() string {
	name, ok := codeNames[c]
	if !ok {
		return "unknown"
	}
	return name
}
