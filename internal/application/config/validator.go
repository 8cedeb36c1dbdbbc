package config

import (
	"fmt"
	"strings"

	"github.com/doeshing/cmdkit/internal/domain"
)

// SupportedFormatVersion is the only config_format_version this build reads.
const SupportedFormatVersion = "1"

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	version := strings.TrimSpace(cfg.ConfigFormatVersion)
	if version != "" && version != SupportedFormatVersion {
		return fmt.Errorf("config_format_version %q not supported (want %s)", version, SupportedFormatVersion)
	}
	if err := cfg.ValidateConsistency(); err != nil {
		return err
	}
	if model := strings.TrimSpace(cfg.AI.DefaultModel); model != cfg.AI.DefaultModel {
		return fmt.Errorf("ai.default_model must not carry surrounding whitespace")
	}
	return nil
}
