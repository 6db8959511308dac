package semantic

import (
	"regexp"
	"strings"
)

// delimiters are the characters Tokenize treats as word boundaries.
const delimiters = "!@#$%^&*()_+-=~`[{]}\\|;:'\",<.>/? \t\n"

// Tokenize splits free text into words, treating every delimiter
// character as a boundary and dropping empty tokens.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(delimiters, r)
	})
}

// subjectRegex matches a conventional commit subject line:
// "type1, type2(scope)!: description".
var subjectRegex = regexp.MustCompile(
	`^(?P<types>[\w ,]+)(?:\((?P<scope>[\w-]+)\))?(?P<breaking>!)?:[ \t]?(?P<description>.+)$`,
)

// Commit holds the parsed parts of a conventional commit subject.
type Commit struct {
	Types       []string
	Description string
	Scope       string
	Breaking    string
}

// Parser extracts conventional commits, keeping only the commit types
// it was configured to recognize.
type Parser struct {
	types map[string]struct{}
}

// NewParser builds a Parser for the given type vocabulary.
func NewParser(types []string) *Parser {
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		set[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}
	return &Parser{types: set}
}

// ExtractSubject returns the subject line of a commit message.
func (p *Parser) ExtractSubject(msg string) string {
	subject, _, _ := strings.Cut(msg, "\n")
	return strings.TrimSpace(subject)
}

// ParseMessage parses the subject line of a commit message. It returns
// nil when the subject is not in conventional form. Types outside the
// parser's vocabulary are dropped.
func (p *Parser) ParseMessage(msg string) *Commit {
	match := subjectRegex.FindStringSubmatch(p.ExtractSubject(msg))
	if match == nil {
		return nil
	}
	parts := make(map[string]string, 4)
	for i, name := range subjectRegex.SubexpNames() {
		if name != "" {
			parts[name] = match[i]
		}
	}
	var types []string
	for _, word := range strings.Split(parts["types"], ",") {
		word = strings.TrimSpace(word)
		if _, ok := p.types[strings.ToLower(word)]; ok {
			types = append(types, strings.ToLower(word))
		}
	}
	return &Commit{
		Types:       types,
		Description: parts["description"],
		Scope:       parts["scope"],
		Breaking:    parts["breaking"],
	}
}

// DefaultTypes is the semantic commit vocabulary: purpose words first,
// environment words after. A commit message can carry several.
var DefaultTypes = []string{
	"chore", "feat", "feature", "fix", "doc",
	"test", "utest", "itest", "ltest",
	"build", "pub", "publish", "rls", "release",
	"clean", "cleanup",
	"dev", "develop", "int", "stage", "staging",
	"qa", "preprod", "prod", "blue", "green",
}

var defaultParser = NewParser(DefaultTypes)

// IsCertainSemanticCommit reports whether the commit message is a
// conventional commit carrying at least one of the given type stubs.
func IsCertainSemanticCommit(msg string, stubs ...string) bool {
	commit := defaultParser.ParseMessage(msg)
	if commit == nil {
		return false
	}
	for _, t := range commit.Types {
		for _, stub := range stubs {
			if t == strings.ToLower(strings.TrimSpace(stub)) {
				return true
			}
		}
	}
	return false
}

func IsFeatCommit(msg string) bool { return IsCertainSemanticCommit(msg, "feat", "feature") }
func IsFixCommit(msg string) bool  { return IsCertainSemanticCommit(msg, "fix") }
func IsDocCommit(msg string) bool  { return IsCertainSemanticCommit(msg, "doc") }

// IsTestCommit matches any of the test flavors.
func IsTestCommit(msg string) bool {
	return IsCertainSemanticCommit(msg, "test", "utest", "itest", "ltest")
}

func IsUtestCommit(msg string) bool { return IsCertainSemanticCommit(msg, "utest") }
func IsItestCommit(msg string) bool { return IsCertainSemanticCommit(msg, "itest") }
func IsLtestCommit(msg string) bool { return IsCertainSemanticCommit(msg, "ltest") }

func IsBuildCommit(msg string) bool   { return IsCertainSemanticCommit(msg, "build") }
func IsPublishCommit(msg string) bool { return IsCertainSemanticCommit(msg, "pub", "publish") }
func IsReleaseCommit(msg string) bool { return IsCertainSemanticCommit(msg, "rls", "release") }
func IsChoreCommit(msg string) bool   { return IsCertainSemanticCommit(msg, "chore") }
