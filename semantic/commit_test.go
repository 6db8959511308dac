package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a, b, c", []string{"a", "b", "c"}},
		{"a, b: c d e", []string{"a", "b", "c", "d", "e"}},
		{"feat(scope)!: description", []string{"feat", "scope", "description"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}

	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("  \t\n"))
}

func TestParseMessage(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want *Commit
	}{
		{
			name: "multiple types with scope",
			msg:  "feat, build(STORY-001): add validator\nWe have done the following\n\n1. first\n2. second\n",
			want: &Commit{
				Types:       []string{"feat", "build"},
				Description: "add validator",
				Scope:       "STORY-001",
			},
		},
		{
			name: "no scope",
			msg:  "fix: be able to handle negative value\nsee the calculate function\n",
			want: &Commit{
				Types:       []string{"fix"},
				Description: "be able to handle negative value",
			},
		},
		{
			name: "no space after colon",
			msg:  "fix:be able to handle negative value",
			want: &Commit{
				Types:       []string{"fix"},
				Description: "be able to handle negative value",
			},
		},
		{
			name: "breaking change with scope",
			msg:  "fix (API)!: no longer support the old protocol",
			want: &Commit{
				Types:       []string{"fix"},
				Description: "no longer support the old protocol",
				Scope:       "API",
				Breaking:    "!",
			},
		},
		{
			name: "unknown types are dropped",
			msg:  "random, fix: something",
			want: &Commit{
				Types:       []string{"fix"},
				Description: "something",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := defaultParser.ParseMessage(tt.msg)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMessage_NotConventional(t *testing.T) {
	for _, msg := range []string{
		"update readme",
		"",
		": description without type",
	} {
		assert.Nil(t, defaultParser.ParseMessage(msg), "msg=%q", msg)
	}
}

func TestParser_CustomTypes(t *testing.T) {
	p := NewParser([]string{"layer", "deploy"})

	got := p.ParseMessage("layer, feat: rebuild dependency layer")
	require.NotNil(t, got)
	assert.Equal(t, []string{"layer"}, got.Types)
}

func TestIsCertainSemanticCommit(t *testing.T) {
	assert.True(t, IsCertainSemanticCommit("fix: the function cannot handle this edge case", "fix"))
	assert.True(t, IsCertainSemanticCommit("feat, utest: add login", "utest"))
	assert.False(t, IsCertainSemanticCommit("fix: something", "feat"))
	assert.False(t, IsCertainSemanticCommit("just a plain message", "fix"))
}

func TestNamedCommitHelpers(t *testing.T) {
	tests := []struct {
		msg  string
		fn   func(string) bool
		want bool
	}{
		{"feat: add login", IsFeatCommit, true},
		{"feature: add login", IsFeatCommit, true},
		{"fix: crash on empty input", IsFixCommit, true},
		{"doc: update readme", IsDocCommit, true},
		{"test: run everything", IsTestCommit, true},
		{"utest: run unit tests", IsTestCommit, true},
		{"itest: run integration tests", IsTestCommit, true},
		{"ltest: run load tests", IsTestCommit, true},
		{"utest: run unit tests", IsUtestCommit, true},
		{"itest: run integration tests", IsItestCommit, true},
		{"ltest: run load tests", IsLtestCommit, true},
		{"build: produce artifacts", IsBuildCommit, true},
		{"pub: push artifacts", IsPublishCommit, true},
		{"publish: push artifacts", IsPublishCommit, true},
		{"rls: cut 1.2.0", IsReleaseCommit, true},
		{"release: cut 1.2.0", IsReleaseCommit, true},
		{"chore: tidy up", IsChoreCommit, true},
		{"feat: add login", IsFixCommit, false},
		{"fix: crash", IsTestCommit, false},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.msg))
		})
	}
}

func TestIsCertainSemanticCommit_ManyTypes(t *testing.T) {
	msg := "feat, utest, itest, ltest, build, pub, rls, fix: do everything"

	assert.True(t, IsFeatCommit(msg))
	assert.True(t, IsUtestCommit(msg))
	assert.True(t, IsItestCommit(msg))
	assert.True(t, IsLtestCommit(msg))
	assert.True(t, IsTestCommit(msg))
	assert.True(t, IsBuildCommit(msg))
	assert.True(t, IsPublishCommit(msg))
	assert.True(t, IsReleaseCommit(msg))
	assert.True(t, IsFixCommit(msg))
}
