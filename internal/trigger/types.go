package trigger

import (
	"github.com/pipeline-tools/ccnotify/event"
)

// DecisionType represents a binary trigger decision
type DecisionType string

const (
	Trigger DecisionType = "trigger" // Start the configured CI jobs
	Skip    DecisionType = "skip"    // Do nothing for this event
)

// Decision represents the trigger decision for one notification event.
// Every skip carries a human-readable reason.
type Decision struct {
	Type   DecisionType `json:"type"`
	Reason string       `json:"reason"`
}

// Context contains all information needed for a trigger decision. The
// commit message is supplied by the caller; this layer performs no
// lookups against the hosting service.
type Context struct {
	Event         *event.Event `json:"event"`
	CommitMessage string       `json:"commit_message,omitempty"`
}

func triggered(reason string) Decision {
	return Decision{Type: Trigger, Reason: reason}
}

func skipped(reason string) Decision {
	return Decision{Type: Skip, Reason: reason}
}

// Triggered reports whether the decision starts CI jobs.
func (d Decision) Triggered() bool {
	return d.Type == Trigger
}
