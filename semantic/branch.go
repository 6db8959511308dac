// Package semantic classifies git branch names and commit messages
// against a semantic naming convention: branches carry a purpose stub
// prefix (feat/..., fix/...), commit subjects follow the conventional
// commit form "type1, type2(scope)!: description".
package semantic

import "strings"

// IsCertainSemanticBranch reports whether the branch name carries one
// of the given stubs. Matching is case-insensitive; a branch matches a
// stub when the name equals the stub or starts with "<stub>/".
func IsCertainSemanticBranch(name string, stubs []string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, stub := range stubs {
		s := strings.ToLower(strings.TrimSpace(stub))
		if lower == s || strings.HasPrefix(lower, s+"/") {
			return true
		}
	}
	return false
}

// IsMainBranch reports whether the name is the trunk branch.
func IsMainBranch(name string) bool {
	return IsCertainSemanticBranch(name, []string{"main", "master"})
}

// IsDevelopBranch matches dev and develop branches.
func IsDevelopBranch(name string) bool {
	return IsCertainSemanticBranch(name, []string{"dev", "develop"})
}

// IsFeatureBranch matches feat and feature branches.
func IsFeatureBranch(name string) bool {
	return IsCertainSemanticBranch(name, []string{"feat", "feature"})
}

// IsBuildBranch matches build branches.
func IsBuildBranch(name string) bool {
	return IsCertainSemanticBranch(name, []string{"build"})
}

// IsDocBranch matches doc branches.
func IsDocBranch(name string) bool {
	return IsCertainSemanticBranch(name, []string{"doc"})
}

// IsFixBranch matches fix and hotfix branches.
func IsFixBranch(name string) bool {
	return IsCertainSemanticBranch(name, []string{"fix", "hotfix"})
}

// IsReleaseBranch matches rls and release branches.
func IsReleaseBranch(name string) bool {
	return IsCertainSemanticBranch(name, []string{"rls", "release"})
}
