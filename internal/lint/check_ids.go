package lint

import (
	"regexp"

	"github.com/maxbolgarin/commitlint/internal/commit"
	"github.com/maxbolgarin/commitlint/internal/model"
)

const (
	pivotalTitle = "Your commit message is missing a Pivotal Tracker ID"
	pivotalTip   = "It's important to add the ID because it allows code to be linked back to " +
		"the stories it was done for, it can provide a chain of custody for code for audit " +
		"purposes, and it can give future explorers of the codebase insight into the wider " +
		"organisational need behind the change. We may also use it for automation purposes, " +
		"like generating changelogs or notification emails.\n\n" +
		"You can fix this by adding the ID in one of the styles below to the commit message\n" +
		"[Delivers #12345678]\n" +
		"[fixes #12345678]\n" +
		"[finishes #12345678]\n" +
		"[#12345884 #12345678]\n" +
		"[#12345884,#12345678]\n" +
		"[#12345678],[#12345884]\n" +
		"This will address [#12345884]"
	urlPivotal = "https://www.pivotaltracker.com/help/api?version=v5#Tracker_Updates_in_SCM_Post_Commit_Hooks"

	jiraTitle = "Your commit message is missing a JIRA Issue Key"
	jiraTip   = "It's important to add the issue key because it allows us to link code back " +
		"to the motivations for doing it, and in some cases provide an audit trail for " +
		"compliance purposes.\n\n" +
		"You can fix this by adding a key like `JRA-123` to the commit message"

	githubTitle = "Your commit message is missing a GitHub ID"
	githubTip   = "It's important to add the issue ID because it allows us to link code back " +
		"to the motivations for doing it, and because we can help people exploring the " +
		"repository link their issues to specific bits of code.\n\n" +
		"You can fix this by adding a ID like the following examples:\n\n" +
		"#642\n" +
		"GH-642\n" +
		"AnUser/git-mit#642\n" +
		"AnOrganisation/git-mit#642\n" +
		"fixes #642\n\n" +
		"Be careful just putting '#642' on a line by itself, as '#' is the default comment character"
	urlGitHubRefs = "https://docs.github.com/en/github/writing-on-github/working-with-advanced-formatting/autolinked-references-and-urls#issues-and-pull-requests"
)

var (
	pivotalRE = regexp.MustCompile(`(?i)\[(((finish|fix)(ed|es)?|complete[ds]?|deliver(s|ed)?) )?#\d+([, ]#\d+)*]`)
	jiraRE    = regexp.MustCompile(`(?m)(^| )[A-Z]{2,}-[0-9]+( |$)`)
	githubRE  = regexp.MustCompile(`(?m)(^| )([a-zA-Z0-9_-]{3,39}/[a-zA-Z0-9-]+#|GH-|#)[0-9]+( |$)`)
)

func checkPivotalTrackerID(msg *commit.Message) *model.Problem {
	if msg.MatchesPattern(pivotalRE) {
		return nil
	}
	problem := model.NewProblemBuilder(
		pivotalTitle, pivotalTip, model.CodePivotalTrackerIDMissing, msg.Raw(),
	).
		WithAnnotationAtLastLine("No Pivotal Tracker ID").
		WithURL(urlPivotal).
		Build()
	return &problem
}

func checkJiraIssueKey(msg *commit.Message) *model.Problem {
	if msg.MatchesPattern(jiraRE) {
		return nil
	}
	problem := model.NewProblem(jiraTitle, jiraTip, model.CodeJiraIssueKeyMissing, msg.Raw())
	return &problem
}

func checkGitHubID(msg *commit.Message) *model.Problem {
	if msg.MatchesPattern(githubRE) {
		return nil
	}
	problem := model.NewProblemBuilder(
		githubTitle, githubTip, model.CodeGitHubIDMissing, msg.Raw(),
	).
		WithAnnotationAtLastLine("No GitHub ID").
		WithURL(urlGitHubRefs).
		Build()
	return &problem
}
