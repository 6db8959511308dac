package trigger

import (
	"fmt"
	"sort"

	"github.com/Knetic/govaluate"

	"github.com/pipeline-tools/ccnotify/event"
	"github.com/pipeline-tools/ccnotify/internal/config"
	"github.com/pipeline-tools/ccnotify/internal/logging"
)

type compiledRule struct {
	project string
	expr    *govaluate.EvaluableExpression
}

// Engine evaluates user-defined expression rules on top of the built-in
// Policy. Each rule routes a matching event to one configured project.
type Engine struct {
	policy   *Policy
	projects map[string]config.ProjectConfig
	rules    []compiledRule
}

// NewEngine compiles the expression rules of a trigger configuration.
// A nil policy builds one from the configuration's policy section.
func NewEngine(cfg *config.TriggerConfig, policy *Policy) (*Engine, error) {
	if policy == nil {
		policy = NewPolicy()
		if len(cfg.Policy.TargetBranches) > 0 {
			policy.TargetPatterns = cfg.Policy.TargetBranches
		}
		if len(cfg.Policy.LayerStubs) > 0 {
			policy.LayerStubs = cfg.Policy.LayerStubs
		}
	}

	projects := make(map[string]config.ProjectConfig, len(cfg.Projects))
	for _, project := range cfg.Projects {
		projects[project.Name] = project
	}

	rules := make([]compiledRule, 0, len(cfg.Rules))
	for _, rule := range cfg.Rules {
		expr, err := govaluate.NewEvaluableExpression(rule.When)
		if err != nil {
			return nil, fmt.Errorf("failed to compile rule %q: %w", rule.When, err)
		}
		rules = append(rules, compiledRule{project: rule.Project, expr: expr})
	}

	return &Engine{policy: policy, projects: projects, rules: rules}, nil
}

// Parameters builds the expression evaluation parameters for an event:
// the flattened detail fields plus a handful of derived names.
func Parameters(env *event.Envelope, ev *event.Event, commitMessage string) map[string]interface{} {
	params := map[string]interface{}{}
	if env != nil {
		params = Flatten(env.Detail)
	}
	params["event_type"] = string(ev.Type())
	params["repo"] = ev.RepoName()
	params["source_branch"] = ev.SourceBranch()
	params["target_branch"] = ev.TargetBranch()
	params["account"] = ev.Account
	params["region"] = ev.Region
	params["commit_message"] = commitMessage
	return params
}

// Evaluate runs the built-in policy and the expression rules for one
// event and returns the decision plus the jobs to start. With no
// expression rules every configured project is started on a trigger
// decision; with rules only matching projects are.
func (e *Engine) Evaluate(ctx *Context, params map[string]interface{}) (Decision, []BuildJob) {
	decision := e.policy.Evaluate(ctx)
	if !decision.Triggered() {
		return decision, nil
	}

	selected := e.selectProjects(params)
	if len(selected) == 0 {
		return skipped("no project matched the trigger rules"), nil
	}

	jobs := AssembleJobs(selected, ctx)
	return decision, jobs
}

// selectProjects picks the projects whose expression rules match. When
// no rules are configured all projects are selected.
func (e *Engine) selectProjects(params map[string]interface{}) []config.ProjectConfig {
	if len(e.rules) == 0 {
		selected := make([]config.ProjectConfig, 0, len(e.projects))
		for _, project := range e.projects {
			selected = append(selected, project)
		}
		sort.Slice(selected, func(i, j int) bool { return selected[i].Name < selected[j].Name })
		return selected
	}

	seen := make(map[string]bool, len(e.rules))
	var selected []config.ProjectConfig
	for _, rule := range e.rules {
		result, err := rule.expr.Evaluate(params)
		if err != nil {
			logging.Warn("rule evaluation failed for project %s: %v", rule.project, err)
			continue
		}
		ok, _ := result.(bool)
		if ok && !seen[rule.project] {
			seen[rule.project] = true
			selected = append(selected, e.projects[rule.project])
		}
	}
	return selected
}
