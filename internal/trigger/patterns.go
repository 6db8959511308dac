package trigger

import (
	"path/filepath"
	"strings"
)

// MatchesPattern checks if a branch name matches a glob pattern
func MatchesPattern(branch, pattern string) bool {
	if branch == "" || pattern == "" {
		return false
	}

	// Standard filepath.Match handles *, ? and character classes
	matched, err := filepath.Match(pattern, branch)
	if err != nil {
		// Fallback to substring matching for malformed patterns
		return strings.Contains(branch, strings.ReplaceAll(pattern, "*", ""))
	}
	return matched
}

// MatchesAnyPattern checks if a branch name matches any of the given patterns
func MatchesAnyPattern(branch string, patterns []string) bool {
	if len(patterns) == 0 {
		return true // No patterns means match all
	}

	for _, pattern := range patterns {
		if MatchesPattern(branch, pattern) {
			return true
		}
	}
	return false
}
