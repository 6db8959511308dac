package trigger

import "fmt"

// Console URL builders. Pure string assembly; handy in decision logs
// and PR comments so a reader can jump straight to the thing the
// notification was about.

// BrowseRepoURL returns the console view of a repository's code.
func BrowseRepoURL(region, repo string) string {
	return fmt.Sprintf(
		"https://%s.console.aws.amazon.com/codesuite/codecommit/repositories/%s/browse?region=%s",
		region, repo, region,
	)
}

// BrowsePRURL returns the console view of a pull request.
func BrowsePRURL(region, repo, prID string) string {
	return fmt.Sprintf(
		"https://%s.console.aws.amazon.com/codesuite/codecommit/repositories/%s/pull-requests/%s?region=%s",
		region, repo, prID, region,
	)
}

// PRCommitURL returns the console view of one commit inside a pull request.
func PRCommitURL(region, repo, prID, commitID string) string {
	return fmt.Sprintf(
		"https://%s.console.aws.amazon.com/codesuite/codecommit/repositories/%s/pull-requests/%s/commit/%s?region=%s",
		region, repo, prID, commitID, region,
	)
}

// BuildRunURL returns the console view of a CI build run.
func BuildRunURL(region, account, project, runID string) string {
	return fmt.Sprintf(
		"https://%s.console.aws.amazon.com/codesuite/codebuild/%s/projects/%s/build/%s/?region=%s",
		region, account, project, runID, region,
	)
}
