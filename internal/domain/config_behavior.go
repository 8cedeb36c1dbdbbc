package domain

import (
	"fmt"
	"strings"
	"text/template"
	"time"
)

// GetDefaultModel returns the configured model name, falling back to
// DefaultModelName.
func (c *Config) GetDefaultModel() string {
	if strings.TrimSpace(c.AI.DefaultModel) == "" {
		return DefaultModelName
	}
	return c.AI.DefaultModel
}

// GetPromptTemplate returns the prompt template, falling back to
// DefaultPromptTemplate.
func (c *Config) GetPromptTemplate() string {
	if strings.TrimSpace(c.AI.PromptTemplate) == "" {
		return DefaultPromptTemplate
	}
	return c.AI.PromptTemplate
}

// GetTimeout returns the request timeout. Zero means no timeout.
func (c *Config) GetTimeout() (time.Duration, error) {
	if strings.TrimSpace(c.AI.Timeout) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.AI.Timeout)
	if err != nil {
		return 0, fmt.Errorf("ai.timeout invalid: %w", err)
	}
	return d, nil
}

// IsClipboardEnabled reports whether copy actions may touch the system clipboard.
func (c *Config) IsClipboardEnabled() bool {
	return c.Clipboard.Enabled
}

// ApplyModelDefault fills a blank model name in cfg from the configured default.
func (c *Config) ApplyModelDefault(cfg AIConfig) AIConfig {
	if strings.TrimSpace(cfg.ModelName) == "" {
		cfg.ModelName = c.GetDefaultModel()
	}
	return cfg
}

// ValidateConsistency checks the internal consistency of the configuration
func (c *Config) ValidateConsistency() error {
	if strings.TrimSpace(c.Storage.Path) == "" {
		return fmt.Errorf("storage.path must be set")
	}
	if _, err := c.GetTimeout(); err != nil {
		return err
	}
	if d, _ := c.GetTimeout(); d < 0 {
		return fmt.Errorf("ai.timeout must not be negative")
	}
	if _, err := template.New("prompt").Parse(c.GetPromptTemplate()); err != nil {
		return fmt.Errorf("ai.prompt_template invalid: %w", err)
	}
	return nil
}
