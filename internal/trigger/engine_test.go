package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipeline-tools/ccnotify/event"
	"github.com/pipeline-tools/ccnotify/internal/config"
)

func engineConfig(rules ...config.ExpressionRule) *config.TriggerConfig {
	return &config.TriggerConfig{
		Projects: []config.ProjectConfig{
			{Name: "acme-service-ci", Batch: true},
			{Name: "acme-service-lint", Buildspec: "ci/lint.yaml"},
		},
		Rules: rules,
	}
}

func TestNewEngine_InvalidExpression(t *testing.T) {
	cfg := engineConfig(config.ExpressionRule{
		When:    "event_type == ",
		Project: "acme-service-ci",
	})

	_, err := NewEngine(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compile rule")
}

func TestEngineEvaluate_NoRulesStartsAllProjects(t *testing.T) {
	engine, err := NewEngine(engineConfig(), nil)
	require.NoError(t, err)

	ctx := &Context{Event: prEvent("pullRequestCreated", "feat/add-login", "main")}
	decision, jobs := engine.Evaluate(ctx, Parameters(nil, ctx.Event, ""))

	assert.True(t, decision.Triggered())
	require.Len(t, jobs, 2)
	// Deterministic order: projects sorted by name.
	assert.Equal(t, "acme-service-ci", jobs[0].Project)
	assert.Equal(t, "acme-service-lint", jobs[1].Project)
	assert.True(t, jobs[0].Batch)
	assert.Equal(t, "ci/lint.yaml", jobs[1].Buildspec)
}

func TestNewEngine_PolicyFromConfig(t *testing.T) {
	cfg := engineConfig()
	cfg.Policy = config.PolicyConfig{
		TargetBranches: []string{"release/*"},
		LayerStubs:     []string{"dep"},
	}
	engine, err := NewEngine(cfg, nil)
	require.NoError(t, err)

	ctx := &Context{Event: prEvent("pullRequestCreated", "feat/add-login", "release/1.4")}
	decision, _ := engine.Evaluate(ctx, Parameters(nil, ctx.Event, ""))
	assert.True(t, decision.Triggered())

	// main is no longer an allowed target once patterns are configured.
	ctx = &Context{Event: prEvent("pullRequestCreated", "feat/add-login", "main")}
	decision, _ = engine.Evaluate(ctx, Parameters(nil, ctx.Event, ""))
	assert.False(t, decision.Triggered())
}

func TestEngineEvaluate_PolicySkipShortCircuits(t *testing.T) {
	engine, err := NewEngine(engineConfig(), nil)
	require.NoError(t, err)

	ctx := &Context{Event: commitEvent("main")}
	decision, jobs := engine.Evaluate(ctx, Parameters(nil, ctx.Event, ""))

	assert.False(t, decision.Triggered())
	assert.Empty(t, jobs)
}

func TestEngineEvaluate_RulesSelectProjects(t *testing.T) {
	cfg := engineConfig(
		config.ExpressionRule{When: "event_type == 'pr_merged'", Project: "acme-service-ci"},
		config.ExpressionRule{When: "target_branch == 'main'", Project: "acme-service-lint"},
		// Duplicate routing to the same project is folded away.
		config.ExpressionRule{When: "repo == 'acme-service'", Project: "acme-service-lint"},
	)
	engine, err := NewEngine(cfg, nil)
	require.NoError(t, err)

	ctx := &Context{Event: prEvent("pullRequestCreated", "feat/add-login", "main")}
	decision, jobs := engine.Evaluate(ctx, Parameters(nil, ctx.Event, ""))

	assert.True(t, decision.Triggered())
	require.Len(t, jobs, 1)
	assert.Equal(t, "acme-service-lint", jobs[0].Project)
}

func TestEngineEvaluate_NoMatchingRuleSkips(t *testing.T) {
	cfg := engineConfig(
		config.ExpressionRule{When: "repo == 'other-repo'", Project: "acme-service-ci"},
	)
	engine, err := NewEngine(cfg, nil)
	require.NoError(t, err)

	ctx := &Context{Event: prEvent("pullRequestCreated", "feat/add-login", "main")}
	decision, jobs := engine.Evaluate(ctx, Parameters(nil, ctx.Event, ""))

	assert.False(t, decision.Triggered())
	assert.Equal(t, "no project matched the trigger rules", decision.Reason)
	assert.Empty(t, jobs)
}

func TestEngineEvaluate_RuleEvaluationErrorIsSkippedNotFatal(t *testing.T) {
	cfg := engineConfig(
		// References a parameter that does not exist for commit events.
		config.ExpressionRule{When: "nonexistent > 3", Project: "acme-service-ci"},
		config.ExpressionRule{When: "event_type == 'pr_created'", Project: "acme-service-lint"},
	)
	engine, err := NewEngine(cfg, nil)
	require.NoError(t, err)

	ctx := &Context{Event: prEvent("pullRequestCreated", "feat/add-login", "main")}
	decision, jobs := engine.Evaluate(ctx, Parameters(nil, ctx.Event, ""))

	assert.True(t, decision.Triggered())
	require.Len(t, jobs, 1)
	assert.Equal(t, "acme-service-lint", jobs[0].Project)
}

func TestParameters(t *testing.T) {
	env := &event.Envelope{
		Account: "111122223333",
		Region:  "eu-west-1",
		Source:  event.SourceCodeCommit,
		Detail: map[string]any{
			"event":           "pullRequestCreated",
			"pullRequestId":   "7",
			"repositoryNames": []any{"acme-service"},
		},
	}
	ev, err := env.Event()
	require.NoError(t, err)

	params := Parameters(env, ev, "feat: add login endpoint")

	assert.Equal(t, "pullRequestCreated", params["event"])
	assert.Equal(t, "7", params["pullRequestId"])
	assert.Equal(t, "acme-service", params["repositoryNames[0]"])
	assert.Equal(t, "acme-service", params["repo"])
	assert.Equal(t, "111122223333", params["account"])
	assert.Equal(t, "eu-west-1", params["region"])
	assert.Equal(t, "feat: add login endpoint", params["commit_message"])
	assert.Equal(t, "unknown", params["event_type"])
}
