package config

import (
	"os"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Trigger TriggerFileConfig
	Webhook WebhookConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// TriggerFileConfig points at the trigger rule file
type TriggerFileConfig struct {
	RulesPath string
}

// WebhookConfig holds webhook security configuration
type WebhookConfig struct {
	Token              string // shared token expected on the event route
	EnableVerification bool   // enable token verification
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Trigger: TriggerFileConfig{
			RulesPath: getEnv("TRIGGER_RULES_PATH", "trigger.yaml"),
		},
		Webhook: WebhookConfig{
			Token:              getEnv("WEBHOOK_TOKEN", ""),
			EnableVerification: getEnv("WEBHOOK_VERIFY", "true") == "true",
		},
	}
}

// HasWebhookToken returns true if a shared webhook token is configured
func (c *Config) HasWebhookToken() bool {
	return c.Webhook.Token != ""
}

// WebhookSecurityMode returns a description of the current webhook security mode
func (c *Config) WebhookSecurityMode() string {
	if !c.Webhook.EnableVerification {
		return "Disabled (INSECURE)"
	}
	if c.HasWebhookToken() {
		return "Token verification enabled"
	}
	return "Verification enabled but no token configured"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
