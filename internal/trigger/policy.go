package trigger

import (
	"fmt"
	"strings"

	"github.com/pipeline-tools/ccnotify/semantic"
)

// NoCIPrefix marks a commit message that must never trigger a build.
const NoCIPrefix = "no ci"

// Policy is the built-in branching-and-commit trigger rule. It reflects
// a trunk-based workflow: work happens on semantic branches, pull
// requests land on the trunk, and the commit message says what kind of
// CI run the author wants.
type Policy struct {
	// TargetPatterns restricts which PR target branches may trigger
	// builds. Glob patterns; empty means the trunk branch only.
	TargetPatterns []string
	// LayerStubs names additional branch families treated like
	// dependency-layer branches.
	LayerStubs []string
}

// NewPolicy creates a Policy with default settings
func NewPolicy() *Policy {
	return &Policy{LayerStubs: []string{"layer"}}
}

func (p *Policy) isLayerBranch(name string) bool {
	return semantic.IsCertainSemanticBranch(name, p.LayerStubs)
}

func (p *Policy) targetAllowed(branch string) bool {
	if len(p.TargetPatterns) == 0 {
		return semantic.IsMainBranch(branch)
	}
	return MatchesAnyPattern(branch, p.TargetPatterns)
}

// Evaluate decides whether the event should start CI jobs.
func (p *Policy) Evaluate(ctx *Context) Decision {
	ev := ctx.Event

	switch {
	case ev.IsCommit():
		return skipped(fmt.Sprintf(
			"direct commits to %q do not trigger builds", ev.SourceBranch()))

	case ev.IsPRCreatedOrUpdated():
		return p.evaluatePullRequest(ctx)

	case ev.IsPRMerged():
		return triggered("pull request merged")

	case ev.IsCreateBranch(), ev.IsDeleteBranch():
		return skipped("branch lifecycle events do not trigger builds")

	case ev.IsComment():
		return skipped("comment events do not trigger builds")

	case ev.IsApprovePR(), ev.IsApproveRuleOverride():
		return skipped("approval events do not trigger builds")

	default:
		return skipped(fmt.Sprintf("event type %q does not trigger builds", ev.Type()))
	}
}

// evaluatePullRequest gates pr_created and pr_updated events on the
// source branch family, the target branch and the commit message.
func (p *Policy) evaluatePullRequest(ctx *Context) Decision {
	ev := ctx.Event
	source := ev.SourceBranch()
	msg := strings.TrimSpace(ctx.CommitMessage)

	if strings.HasPrefix(strings.ToLower(msg), NoCIPrefix) {
		return skipped(fmt.Sprintf("commit message %q opts out of CI", msg))
	}

	if !(ev.SourceIsFeatureBranch() ||
		p.isLayerBranch(source) ||
		ev.SourceIsReleaseBranch() ||
		ev.SourceIsFixBranch()) {
		return skipped(fmt.Sprintf(
			"PR source branch %q is not a feature, layer, release or fix branch", source))
	}

	if !p.targetAllowed(ev.TargetBranch()) {
		return skipped(fmt.Sprintf(
			"PR target branch %q is not a build target", ev.TargetBranch()))
	}

	// Without a commit message there is nothing further to gate on.
	if msg == "" {
		return triggered("pull request created or updated")
	}

	var allowed bool
	switch {
	case ev.SourceIsFeatureBranch():
		allowed = semantic.IsFeatCommit(msg) ||
			semantic.IsBuildCommit(msg) ||
			semantic.IsPublishCommit(msg) ||
			semantic.IsUtestCommit(msg) ||
			semantic.IsItestCommit(msg) ||
			semantic.IsLtestCommit(msg)
	case p.isLayerBranch(source):
		allowed = semantic.IsFeatCommit(msg) ||
			semantic.IsBuildCommit(msg) ||
			semantic.IsPublishCommit(msg) ||
			semantic.IsUtestCommit(msg)
	case ev.SourceIsReleaseBranch():
		allowed = semantic.IsTestCommit(msg) ||
			semantic.IsFixCommit(msg) ||
			semantic.IsReleaseCommit(msg)
	case ev.SourceIsFixBranch():
		allowed = semantic.IsFixCommit(msg)
	}

	if !allowed {
		return skipped(fmt.Sprintf(
			"commit message %q does not request CI on branch %q", msg, source))
	}
	return triggered("pull request created or updated")
}
