package event

import (
	"strings"

	"github.com/pipeline-tools/ccnotify/semantic"
)

// Predicates over the classified event type.

func (ev *Event) IsCommitToBranch() bool          { return ev.Type() == TypeCommitToBranch }
func (ev *Event) IsCommitToBranchFromMerge() bool { return ev.Type() == TypeCommitToBranchFromMerge }
func (ev *Event) IsCreateBranch() bool            { return ev.Type() == TypeCreateBranch }
func (ev *Event) IsDeleteBranch() bool            { return ev.Type() == TypeDeleteBranch }
func (ev *Event) IsPRCreated() bool               { return ev.Type() == TypePRCreated }
func (ev *Event) IsPRClosed() bool                { return ev.Type() == TypePRClosed }
func (ev *Event) IsPRUpdated() bool               { return ev.Type() == TypePRUpdated }
func (ev *Event) IsPRMerged() bool                { return ev.Type() == TypePRMerged }
func (ev *Event) IsCommentOnPRCreated() bool      { return ev.Type() == TypeCommentOnPRCreated }
func (ev *Event) IsReplyToComment() bool          { return ev.Type() == TypeReplyToComment }
func (ev *Event) IsApprovePR() bool               { return ev.Type() == TypeApprovePR }
func (ev *Event) IsApproveRuleOverride() bool     { return ev.Type() == TypeApproveRuleOverride }

// IsCommit reports whether the event is a direct push to a branch,
// whether from a plain commit or a merge.
func (ev *Event) IsCommit() bool {
	return ev.IsCommitToBranch() || ev.IsCommitToBranchFromMerge()
}

// IsPR reports whether the event is a pull request lifecycle event.
func (ev *Event) IsPR() bool {
	return ev.IsPRCreated() || ev.IsPRUpdated() || ev.IsPRMerged() || ev.IsPRClosed()
}

// IsPRCreatedOrUpdated reports whether the event carries fresh commits
// on a pull request source branch.
func (ev *Event) IsPRCreatedOrUpdated() bool {
	return ev.IsPRCreated() || ev.IsPRUpdated()
}

// IsComment reports whether the event is a comment or a comment reply.
func (ev *Event) IsComment() bool {
	return ev.IsCommentOnPRCreated() || ev.IsReplyToComment()
}

// RepoName returns the repository the event happened in. Pull request
// payloads carry a repositoryNames list instead of repositoryName.
func (ev *Event) RepoName() string {
	if ev.RepositoryName != "" {
		return ev.RepositoryName
	}
	if len(ev.RepositoryNames) > 0 {
		return ev.RepositoryNames[0]
	}
	return ""
}

// stripRef removes the full-ref prefix some payloads carry on
// reference fields, leaving the plain branch name.
func stripRef(name string) string {
	return strings.TrimPrefix(name, "refs/heads/")
}

// SourceBranch returns the branch the change originated from: the
// updated reference for commit events, the pull request source
// reference otherwise. Events without a source reference (comments)
// return "".
func (ev *Event) SourceBranch() string {
	if ev.IsCommit() {
		return stripRef(ev.ReferenceName)
	}
	return stripRef(ev.SourceReference)
}

// TargetBranch returns the branch the change lands on. Commit and
// comment events have no destination reference and return "".
func (ev *Event) TargetBranch() string {
	return stripRef(ev.DestinationReference)
}

// SourceCommitID returns the commit the event points at: the pushed
// commit for commit events, the PR source commit otherwise, falling
// back to the after-commit of a comment thread.
func (ev *Event) SourceCommitID() string {
	if ev.IsCommit() {
		return ev.CommitID
	}
	if ev.SourceCommit != "" {
		return ev.SourceCommit
	}
	return ev.AfterCommitID
}

// TargetCommitID returns the commit on the receiving side: the previous
// head for commit events, the PR destination commit otherwise, falling
// back to the before-commit of a comment thread.
func (ev *Event) TargetCommitID() string {
	if ev.IsCommit() {
		return ev.OldCommitID
	}
	if ev.DestinationCommit != "" {
		return ev.DestinationCommit
	}
	return ev.BeforeCommitID
}

// PRID returns the pull request id, or "" for non-PR events.
func (ev *Event) PRID() string {
	return ev.PullRequestID
}

// PRStatus returns the raw pull request status field.
func (ev *Event) PRStatus() string {
	return ev.PullRequestStatus
}

// PRIsOpen reports whether the pull request is open.
func (ev *Event) PRIsOpen() bool {
	return ev.PullRequestStatus == "Open"
}

// PRIsMerged reports whether the pull request has been merged.
func (ev *Event) PRIsMerged() bool {
	return ev.IsMerged == "True"
}

// Semantic branch predicates over the source reference.

func (ev *Event) SourceIsMainBranch() bool    { return semantic.IsMainBranch(ev.SourceBranch()) }
func (ev *Event) SourceIsDevelopBranch() bool { return semantic.IsDevelopBranch(ev.SourceBranch()) }
func (ev *Event) SourceIsFeatureBranch() bool { return semantic.IsFeatureBranch(ev.SourceBranch()) }
func (ev *Event) SourceIsReleaseBranch() bool { return semantic.IsReleaseBranch(ev.SourceBranch()) }
func (ev *Event) SourceIsFixBranch() bool     { return semantic.IsFixBranch(ev.SourceBranch()) }

// Semantic branch predicates over the destination reference.

func (ev *Event) TargetIsMainBranch() bool    { return semantic.IsMainBranch(ev.TargetBranch()) }
func (ev *Event) TargetIsDevelopBranch() bool { return semantic.IsDevelopBranch(ev.TargetBranch()) }
func (ev *Event) TargetIsFeatureBranch() bool { return semantic.IsFeatureBranch(ev.TargetBranch()) }
func (ev *Event) TargetIsReleaseBranch() bool { return semantic.IsReleaseBranch(ev.TargetBranch()) }
func (ev *Event) TargetIsFixBranch() bool     { return semantic.IsFixBranch(ev.TargetBranch()) }

// Pull request flow predicates, true only for PR events.

func (ev *Event) IsPRFromDevelopToMain() bool {
	return ev.IsPR() && ev.SourceIsDevelopBranch() && ev.TargetIsMainBranch()
}

func (ev *Event) IsPRFromFeatureToMain() bool {
	return ev.IsPR() && ev.SourceIsFeatureBranch() && ev.TargetIsMainBranch()
}

func (ev *Event) IsPRFromFixToMain() bool {
	return ev.IsPR() && ev.SourceIsFixBranch() && ev.TargetIsMainBranch()
}
