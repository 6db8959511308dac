package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvVarRoundTrip(t *testing.T) {
	fixtures := map[string]string{
		"commit to main":    commitToMainJSON,
		"commit from merge": commitFromMergeJSON,
		"branch created":    branchCreatedJSON,
		"branch deleted":    branchDeletedJSON,
		"pr created":        prCreatedJSON,
		"pr closed":         prClosedJSON,
		"pr updated":        prUpdatedJSON,
		"pr merged":         prMergedJSON,
		"comment on pr":     commentOnPRJSON,
		"reply to comment":  replyToCommentJSON,
		"approval":          approvalJSON,
		"approval override": approvalOverrideJSON,
	}

	for name, raw := range fixtures {
		t.Run(name, func(t *testing.T) {
			ev := parseFixture(t, raw)
			vars := ev.ToEnvVar("CUSTOM_")
			restored := FromEnvVar(vars, "CUSTOM_")
			assert.Equal(t, ev, restored)
			assert.Equal(t, ev.Type(), restored.Type())
		})
	}
}

func TestToEnvVar_Keys(t *testing.T) {
	ev := parseFixture(t, prCreatedJSON)
	vars := ev.ToEnvVar("CC_EVENT_")

	assert.Equal(t, "pullRequestCreated", vars["CC_EVENT_EVENT"])
	assert.Equal(t, "7", vars["CC_EVENT_PULL_REQUEST_ID"])
	assert.Equal(t, "acme-service", vars["CC_EVENT_REPOSITORY_NAMES"])
	assert.Equal(t, "111122223333", vars["CC_EVENT_ACCOUNT"])
	assert.Equal(t, "us-east-1", vars["CC_EVENT_REGION"])

	// empty fields stay out of the environment
	_, ok := vars["CC_EVENT_COMMENT_ID"]
	assert.False(t, ok)
}

func TestFromEnvVar_IgnoresForeignKeys(t *testing.T) {
	vars := map[string]string{
		"CC_EVENT_EVENT":           "referenceUpdated",
		"CC_EVENT_REFERENCE_NAME":  "main",
		"CC_EVENT_REPOSITORY_NAME": "acme-service",
		"PATH":                     "/usr/bin",
		"OTHER_EVENT":              "nope",
	}

	ev := FromEnvVar(vars, "CC_EVENT_")
	assert.Equal(t, TypeCommitToBranch, ev.Type())
	assert.Equal(t, "acme-service", ev.RepoName())
}

func TestToEnvVar_MultipleRepositoryNames(t *testing.T) {
	ev := &Event{RepositoryNames: []string{"repo-a", "repo-b"}}
	vars := ev.ToEnvVar("X_")
	assert.Equal(t, "repo-a,repo-b", vars["X_REPOSITORY_NAMES"])

	restored := FromEnvVar(vars, "X_")
	assert.Equal(t, []string{"repo-a", "repo-b"}, restored.RepositoryNames)
}
