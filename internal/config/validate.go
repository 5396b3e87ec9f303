package config

import (
	"fmt"
	"slices"
)

// ValidationIssue describes a problem with a config value.
type ValidationIssue struct {
	Path    string
	Message string
}

func (v ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a Config for issues. Returns nil if valid.
func Validate(cfg *Config) []ValidationIssue {
	var issues []ValidationIssue

	if cfg.Telegram.Token == "" {
		issues = append(issues, ValidationIssue{
			Path:    "telegram.token",
			Message: "token is required",
		})
	}

	if len(cfg.Telegram.Admins) == 0 {
		issues = append(issues, ValidationIssue{
			Path:    "telegram.admins",
			Message: "at least one admin user id is required",
		})
	}
	for i, id := range cfg.Telegram.Admins {
		if id <= 0 {
			issues = append(issues, ValidationIssue{
				Path:    fmt.Sprintf("telegram.admins[%d]", i),
				Message: fmt.Sprintf("must be a positive user id, got %d", id),
			})
		}
	}

	for i, id := range cfg.Telegram.Channels {
		if id >= 0 {
			issues = append(issues, ValidationIssue{
				Path:    fmt.Sprintf("telegram.channels[%d]", i),
				Message: fmt.Sprintf("channel ids are negative, got %d", id),
			})
		}
	}

	validLogLevels := []string{"silent", "fatal", "error", "warn", "info", "debug", "trace"}
	if cfg.Logging.Level != "" && !slices.Contains(validLogLevels, cfg.Logging.Level) {
		issues = append(issues, ValidationIssue{
			Path:    "logging.level",
			Message: fmt.Sprintf("must be one of %v, got %q", validLogLevels, cfg.Logging.Level),
		})
	}

	return issues
}
