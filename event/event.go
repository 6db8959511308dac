// Package event classifies CodeCommit notification payloads and exposes
// convenience accessors over the parsed structure. It accepts payloads
// that have already been delivered (typically through an SNS topic fed
// by codestar-notifications) and never calls the hosting service.
package event

import (
	"encoding/json"
	"fmt"
)

// FromDetail builds an Event from the parsed "detail" object of a
// notification payload.
func FromDetail(detail map[string]any) (*Event, error) {
	raw, err := json.Marshal(detail)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event detail: %w", err)
	}
	var ev Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		return nil, fmt.Errorf("failed to decode event detail: %w", err)
	}
	return &ev, nil
}

// FromEnvelope builds an Event from a full notification envelope,
// carrying over the account and region metadata.
func FromEnvelope(env *Envelope) (*Event, error) {
	ev, err := FromDetail(env.Detail)
	if err != nil {
		return nil, err
	}
	ev.Account = env.Account
	ev.Region = env.Region
	return ev, nil
}

// ParseEnvelope decodes a raw notification event JSON document.
func ParseEnvelope(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode notification envelope: %w", err)
	}
	return &env, nil
}

// ParseSNSMessage decodes a payload as delivered by SNS. The
// notification envelope arrives as an escaped JSON string inside
// Records[0].Sns.Message; a payload without SNS records is treated as
// a bare envelope.
func ParseSNSMessage(data []byte) (*Envelope, error) {
	var wrapper snsNotification
	if err := json.Unmarshal(data, &wrapper); err == nil && len(wrapper.Records) > 0 {
		return ParseEnvelope([]byte(wrapper.Records[0].SNS.Message))
	}
	return ParseEnvelope(data)
}

// IsCodeCommit reports whether the envelope originated from the
// CodeCommit event source.
func (e *Envelope) IsCodeCommit() bool {
	return e.Source == SourceCodeCommit
}

// Event builds the typed Event carried by this envelope.
func (e *Envelope) Event() (*Event, error) {
	return FromEnvelope(e)
}

// Type classifies the event from its discriminating fields. The mapping
// is flat: the raw event name plus merge status, pull request state,
// reply linkage and approval status select one label. Combinations that
// do not match any known notification shape classify as TypeUnknown.
func (ev *Event) Type() Type {
	switch ev.Event {
	case "referenceUpdated":
		if ev.MergeOption == "" {
			return TypeCommitToBranch
		}
		return TypeCommitToBranchFromMerge
	case "referenceCreated":
		return TypeCreateBranch
	case "referenceDeleted":
		return TypeDeleteBranch
	case "pullRequestCreated":
		if ev.IsMerged == "False" && ev.PullRequestStatus == "Open" {
			return TypePRCreated
		}
		return TypeUnknown
	case "pullRequestStatusChanged":
		if ev.PullRequestStatus == "Closed" {
			return TypePRClosed
		}
		return TypeUnknown
	case "pullRequestSourceBranchUpdated":
		return TypePRUpdated
	case "pullRequestMergeStatusUpdated":
		if ev.IsMerged == "True" && ev.PullRequestStatus == "Closed" {
			return TypePRMerged
		}
		return TypeUnknown
	case "commentOnPullRequestCreated":
		if ev.InReplyTo == "" {
			return TypeCommentOnPRCreated
		}
		return TypeReplyToComment
	case "pullRequestApprovalStateChanged":
		if ev.ApprovalStatus == "APPROVE" {
			return TypeApprovePR
		}
		return TypeUnknown
	case "pullRequestApprovalRuleOverridden":
		return TypeApproveRuleOverride
	default:
		return TypeUnknown
	}
}
