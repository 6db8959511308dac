package event

// Type labels a classified CodeCommit notification event.
type Type string

const (
	TypeCommitToBranch          Type = "commit_to_branch"
	TypeCommitToBranchFromMerge Type = "commit_to_branch_from_merge"
	TypeCreateBranch            Type = "create_branch"
	TypeDeleteBranch            Type = "delete_branch"
	TypePRCreated               Type = "pr_created"
	TypePRClosed                Type = "pr_closed"
	TypePRUpdated               Type = "pr_updated"
	TypePRMerged                Type = "pr_merged"
	TypeCommentOnPRCreated      Type = "comment_on_pr_created"
	TypeReplyToComment          Type = "reply_to_comment"
	TypeApprovePR               Type = "approve_pr"
	TypeApproveRuleOverride     Type = "approve_rule_override"
	TypeUnknown                 Type = "unknown"
)

// SourceCodeCommit is the event source emitted by the hosting service.
const SourceCodeCommit = "aws.codecommit"

// Event is a flat container for the fields of a CodeCommit notification
// "detail" object. Field availability depends on the event kind: commit
// events carry reference* fields, pull request events carry the PR
// fields, comment events carry comment fields. Absent fields stay "".
type Event struct {
	AfterCommitID        string   `json:"afterCommitId,omitempty"`
	ApprovalStatus       string   `json:"approvalStatus,omitempty"`
	Author               string   `json:"author,omitempty"`
	BeforeCommitID       string   `json:"beforeCommitId,omitempty"`
	CallerUserARN        string   `json:"callerUserArn,omitempty"`
	CommentID            string   `json:"commentId,omitempty"`
	CommitID             string   `json:"commitId,omitempty"`
	CreationDate         string   `json:"creationDate,omitempty"`
	DestinationCommit    string   `json:"destinationCommit,omitempty"`
	DestinationCommitID  string   `json:"destinationCommitId,omitempty"`
	DestinationReference string   `json:"destinationReference,omitempty"`
	Event                string   `json:"event,omitempty"`
	IsMerged             string   `json:"isMerged,omitempty"`
	InReplyTo            string   `json:"inReplyTo,omitempty"`
	LastModifiedDate     string   `json:"lastModifiedDate,omitempty"`
	MergeOption          string   `json:"mergeOption,omitempty"`
	NotificationBody     string   `json:"notificationBody,omitempty"`
	OldCommitID          string   `json:"oldCommitId,omitempty"`
	OverrideStatus       string   `json:"overrideStatus,omitempty"`
	PullRequestID        string   `json:"pullRequestId,omitempty"`
	PullRequestStatus    string   `json:"pullRequestStatus,omitempty"`
	ReferenceFullName    string   `json:"referenceFullName,omitempty"`
	ReferenceName        string   `json:"referenceName,omitempty"`
	ReferenceType        string   `json:"referenceType,omitempty"`
	RepositoryID         string   `json:"repositoryId,omitempty"`
	RepositoryName       string   `json:"repositoryName,omitempty"`
	RepositoryNames      []string `json:"repositoryNames,omitempty"`
	RevisionID           string   `json:"revisionId,omitempty"`
	SourceCommit         string   `json:"sourceCommit,omitempty"`
	RawSourceCommitID    string   `json:"sourceCommitId,omitempty"`
	SourceReference      string   `json:"sourceReference,omitempty"`
	Title                string   `json:"title,omitempty"`

	// Envelope metadata, populated by FromEnvelope / ParseSNSMessage.
	Account string `json:"-"`
	Region  string `json:"-"`
}

// Envelope is the outer notification event the hosting service
// publishes (codestar-notifications format delivered through SNS).
type Envelope struct {
	Account             string         `json:"account"`
	DetailType          string         `json:"detailType"`
	Region              string         `json:"region"`
	Source              string         `json:"source"`
	Time                string         `json:"time"`
	NotificationRuleARN string         `json:"notificationRuleArn"`
	Resources           []string       `json:"resources"`
	Detail              map[string]any `json:"detail"`
}

// snsNotification is the SNS delivery wrapper around an Envelope. The
// notification JSON itself arrives as an escaped string in Message.
type snsNotification struct {
	Records []struct {
		SNS struct {
			Message string `json:"Message"`
		} `json:"Sns"`
	} `json:"Records"`
}
