package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectConfig defines one CI project a trigger decision can start.
// One repository may be built by several projects in different ways.
type ProjectConfig struct {
	Name      string `yaml:"name"`      // CI project name
	Batch     bool   `yaml:"batch"`     // Start a batch build instead of a single build
	Buildspec string `yaml:"buildspec"` // Optional buildspec override path
}

// ExpressionRule routes an event to a project when its expression
// evaluates to true over the flattened event fields.
type ExpressionRule struct {
	When    string `yaml:"when"`    // govaluate expression
	Project string `yaml:"project"` // project to start when the expression holds
}

// PolicyConfig tunes the built-in branch policy. Both lists are
// optional; empty values keep the defaults (trunk targets only, the
// "layer" branch family).
type PolicyConfig struct {
	TargetBranches []string `yaml:"target_branches"` // glob patterns for allowed PR target branches
	LayerStubs     []string `yaml:"layer_stubs"`     // extra branch families treated as layer branches
}

// TriggerConfig holds the complete trigger rule configuration
type TriggerConfig struct {
	Projects []ProjectConfig  `yaml:"projects"`
	Rules    []ExpressionRule `yaml:"rules"`
	Policy   PolicyConfig     `yaml:"policy"`
}

// LoadTriggerConfig loads trigger rule configuration from YAML.
// The YAML file must exist and be valid - no fallbacks or defaults.
func LoadTriggerConfig(configPath string) (*TriggerConfig, error) {
	if configPath == "" {
		configPath = "trigger.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("trigger config file not found: %s (create this file to define trigger rules)", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read trigger config file %s: %w", configPath, err)
	}

	// Environment references in the file are expanded before parsing
	expanded := os.ExpandEnv(string(data))

	var cfg TriggerConfig
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse trigger config YAML %s: %w", configPath, err)
	}

	if err := ValidateTriggerConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid trigger configuration in %s: %w", configPath, err)
	}

	return &cfg, nil
}

// ValidateTriggerConfig validates the trigger rule configuration
func ValidateTriggerConfig(cfg *TriggerConfig) error {
	if len(cfg.Projects) == 0 {
		return fmt.Errorf("no projects configured")
	}

	names := make(map[string]bool, len(cfg.Projects))
	for i, project := range cfg.Projects {
		if project.Name == "" {
			return fmt.Errorf("project %d has no name", i)
		}
		if names[project.Name] {
			return fmt.Errorf("duplicate project name: %s", project.Name)
		}
		names[project.Name] = true
	}

	for i, rule := range cfg.Rules {
		if rule.When == "" {
			return fmt.Errorf("rule %d has an empty expression", i)
		}
		if rule.Project == "" {
			return fmt.Errorf("rule %d names no project", i)
		}
		if !names[rule.Project] {
			return fmt.Errorf("rule %d references unknown project: %s", i, rule.Project)
		}
	}

	return nil
}
