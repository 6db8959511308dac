package event

import "strings"

// envField maps one Event field to an environment variable suffix.
type envField struct {
	key string
	get func(*Event) string
	set func(*Event, string)
}

var envFields = []envField{
	{"AFTER_COMMIT_ID", func(e *Event) string { return e.AfterCommitID }, func(e *Event, v string) { e.AfterCommitID = v }},
	{"APPROVAL_STATUS", func(e *Event) string { return e.ApprovalStatus }, func(e *Event, v string) { e.ApprovalStatus = v }},
	{"AUTHOR", func(e *Event) string { return e.Author }, func(e *Event, v string) { e.Author = v }},
	{"BEFORE_COMMIT_ID", func(e *Event) string { return e.BeforeCommitID }, func(e *Event, v string) { e.BeforeCommitID = v }},
	{"CALLER_USER_ARN", func(e *Event) string { return e.CallerUserARN }, func(e *Event, v string) { e.CallerUserARN = v }},
	{"COMMENT_ID", func(e *Event) string { return e.CommentID }, func(e *Event, v string) { e.CommentID = v }},
	{"COMMIT_ID", func(e *Event) string { return e.CommitID }, func(e *Event, v string) { e.CommitID = v }},
	{"CREATION_DATE", func(e *Event) string { return e.CreationDate }, func(e *Event, v string) { e.CreationDate = v }},
	{"DESTINATION_COMMIT", func(e *Event) string { return e.DestinationCommit }, func(e *Event, v string) { e.DestinationCommit = v }},
	{"DESTINATION_COMMIT_ID", func(e *Event) string { return e.DestinationCommitID }, func(e *Event, v string) { e.DestinationCommitID = v }},
	{"DESTINATION_REFERENCE", func(e *Event) string { return e.DestinationReference }, func(e *Event, v string) { e.DestinationReference = v }},
	{"EVENT", func(e *Event) string { return e.Event }, func(e *Event, v string) { e.Event = v }},
	{"IS_MERGED", func(e *Event) string { return e.IsMerged }, func(e *Event, v string) { e.IsMerged = v }},
	{"IN_REPLY_TO", func(e *Event) string { return e.InReplyTo }, func(e *Event, v string) { e.InReplyTo = v }},
	{"LAST_MODIFIED_DATE", func(e *Event) string { return e.LastModifiedDate }, func(e *Event, v string) { e.LastModifiedDate = v }},
	{"MERGE_OPTION", func(e *Event) string { return e.MergeOption }, func(e *Event, v string) { e.MergeOption = v }},
	{"NOTIFICATION_BODY", func(e *Event) string { return e.NotificationBody }, func(e *Event, v string) { e.NotificationBody = v }},
	{"OLD_COMMIT_ID", func(e *Event) string { return e.OldCommitID }, func(e *Event, v string) { e.OldCommitID = v }},
	{"OVERRIDE_STATUS", func(e *Event) string { return e.OverrideStatus }, func(e *Event, v string) { e.OverrideStatus = v }},
	{"PULL_REQUEST_ID", func(e *Event) string { return e.PullRequestID }, func(e *Event, v string) { e.PullRequestID = v }},
	{"PULL_REQUEST_STATUS", func(e *Event) string { return e.PullRequestStatus }, func(e *Event, v string) { e.PullRequestStatus = v }},
	{"REFERENCE_FULL_NAME", func(e *Event) string { return e.ReferenceFullName }, func(e *Event, v string) { e.ReferenceFullName = v }},
	{"REFERENCE_NAME", func(e *Event) string { return e.ReferenceName }, func(e *Event, v string) { e.ReferenceName = v }},
	{"REFERENCE_TYPE", func(e *Event) string { return e.ReferenceType }, func(e *Event, v string) { e.ReferenceType = v }},
	{"REPOSITORY_ID", func(e *Event) string { return e.RepositoryID }, func(e *Event, v string) { e.RepositoryID = v }},
	{"REPOSITORY_NAME", func(e *Event) string { return e.RepositoryName }, func(e *Event, v string) { e.RepositoryName = v }},
	{"REPOSITORY_NAMES", func(e *Event) string { return strings.Join(e.RepositoryNames, ",") }, func(e *Event, v string) { e.RepositoryNames = splitList(v) }},
	{"REVISION_ID", func(e *Event) string { return e.RevisionID }, func(e *Event, v string) { e.RevisionID = v }},
	{"SOURCE_COMMIT", func(e *Event) string { return e.SourceCommit }, func(e *Event, v string) { e.SourceCommit = v }},
	{"SOURCE_COMMIT_ID", func(e *Event) string { return e.RawSourceCommitID }, func(e *Event, v string) { e.RawSourceCommitID = v }},
	{"SOURCE_REFERENCE", func(e *Event) string { return e.SourceReference }, func(e *Event, v string) { e.SourceReference = v }},
	{"TITLE", func(e *Event) string { return e.Title }, func(e *Event, v string) { e.Title = v }},
	{"ACCOUNT", func(e *Event) string { return e.Account }, func(e *Event, v string) { e.Account = v }},
	{"REGION", func(e *Event) string { return e.Region }, func(e *Event, v string) { e.Region = v }},
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	return strings.Split(v, ",")
}

// ToEnvVar renders the event as environment variable pairs, one per
// populated field, keyed by prefix + UPPER_SNAKE field name. The
// mapping is used to pass event context into a CI job environment.
func (ev *Event) ToEnvVar(prefix string) map[string]string {
	vars := make(map[string]string)
	for _, f := range envFields {
		if v := f.get(ev); v != "" {
			vars[prefix+f.key] = v
		}
	}
	return vars
}

// FromEnvVar reconstructs an Event previously rendered by ToEnvVar
// with the same prefix. Unknown keys are ignored.
func FromEnvVar(vars map[string]string, prefix string) *Event {
	var ev Event
	for _, f := range envFields {
		if v, ok := vars[prefix+f.key]; ok {
			f.set(&ev, v)
		}
	}
	return &ev
}
