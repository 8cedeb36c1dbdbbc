package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/doeshing/cmdkit/internal/domain"
	"github.com/doeshing/cmdkit/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	KeyValueStore  ports.KeyValueStore
	AIConfigs      ports.AIConfigRepository
	Generator      ports.CommandGenerator
	Clipboard      ports.Clipboard
}

// Run executes checks and returns a report. Online adds a connection test
// against the saved endpoint.
func (s *Service) Run(ctx context.Context, online bool) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if err := cfg.ValidateConsistency(); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("format version %s", cfg.ConfigFormatVersion)))
	}

	if s.KeyValueStore != nil {
		if _, _, err := s.KeyValueStore.Get(ctx, domain.AIConfigKey); err != nil {
			checks = append(checks, fail("Storage", err.Error()))
		} else {
			checks = append(checks, ok("Storage", cfg.Storage.Path))
		}
	} else {
		checks = append(checks, warn("Storage", "key-value store not initialized"))
	}

	checks = append(checks, s.clipboardCheck(cfg))

	aiCheck, aiCfg := s.aiConfigCheck(ctx)
	checks = append(checks, aiCheck)

	if online && aiCheck.Status == domain.HealthOK && s.Generator != nil {
		if err := s.Generator.TestConnection(ctx, aiCfg); err != nil {
			checks = append(checks, fail("AI endpoint", err.Error()))
		} else {
			checks = append(checks, ok("AI endpoint", aiCfg.Endpoint(domain.ModelsPath)))
		}
	}

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) clipboardCheck(cfg domain.Config) domain.HealthCheck {
	if !cfg.IsClipboardEnabled() {
		return warn("Clipboard", "disabled in configuration")
	}
	if s.Clipboard == nil || !s.Clipboard.Enabled() {
		return warn("Clipboard", "no clipboard utility found")
	}
	return ok("Clipboard", "available")
}

func (s *Service) aiConfigCheck(ctx context.Context) (domain.HealthCheck, domain.AIConfig) {
	if s.AIConfigs == nil {
		return warn("AI config", "repository not initialized"), domain.AIConfig{}
	}
	cfg, found, err := s.AIConfigs.Load(ctx)
	if err != nil {
		return fail("AI config", err.Error()), domain.AIConfig{}
	}
	if !found {
		return warn("AI config", "not saved yet (cmdkit ai set)"), domain.AIConfig{}
	}
	if err := cfg.Validate(); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return warn("AI config", verr.Message), cfg
		}
		return warn("AI config", err.Error()), cfg
	}
	return ok("AI config", fmt.Sprintf("%s via %s", cfg.ModelName, cfg.APIHost)), cfg
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
