package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCertainSemanticBranch(t *testing.T) {
	tests := []struct {
		name   string
		branch string
		stubs  []string
		want   bool
	}{
		{"exact match", "feat", []string{"feat"}, true},
		{"prefix match", "feat/add-login", []string{"feat"}, true},
		{"case insensitive", "Feat/Add-Login", []string{"feat"}, true},
		{"uppercase stub", "feat/add-login", []string{"FEAT"}, true},
		{"no separator no match", "feature-branch", []string{"feature"}, false},
		{"substring is not a stub", "defeat/x", []string{"feat"}, false},
		{"second stub matches", "hotfix/crash", []string{"fix", "hotfix"}, true},
		{"empty name", "", []string{"feat"}, false},
		{"no stubs", "feat/x", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCertainSemanticBranch(tt.branch, tt.stubs))
		})
	}
}

func TestNamedBranchHelpers(t *testing.T) {
	tests := []struct {
		branch string
		fn     func(string) bool
		want   bool
	}{
		{"main", IsMainBranch, true},
		{"master", IsMainBranch, true},
		{"main/sub", IsMainBranch, true},
		{"mainline", IsMainBranch, false},
		{"Dev", IsDevelopBranch, true},
		{"Develop", IsDevelopBranch, true},
		{"dev/api", IsDevelopBranch, true},
		{"Feat", IsFeatureBranch, true},
		{"Feature", IsFeatureBranch, true},
		{"feature/login", IsFeatureBranch, true},
		{"build", IsBuildBranch, true},
		{"build/arm64", IsBuildBranch, true},
		{"doc", IsDocBranch, true},
		{"doc/readme", IsDocBranch, true},
		{"fix", IsFixBranch, true},
		{"hotfix/crash", IsFixBranch, true},
		{"rls", IsReleaseBranch, true},
		{"release", IsReleaseBranch, true},
		{"release/1.2.0", IsReleaseBranch, true},
		{"main", IsFeatureBranch, false},
		{"feat/x", IsMainBranch, false},
		{"feat/x", IsReleaseBranch, false},
	}

	for _, tt := range tests {
		t.Run(tt.branch, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.branch))
		})
	}
}
