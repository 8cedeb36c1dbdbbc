package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/cmdkit/assets"
	"github.com/doeshing/cmdkit/internal/domain"
	"github.com/doeshing/cmdkit/internal/pkg/filesystem"
	"github.com/doeshing/cmdkit/internal/ports"
)

// EnvConfigPath overrides the configuration file location.
const EnvConfigPath = "CMDKIT_CONFIG"

// FileLoader loads YAML configuration from ~/.cmdkit/config.yaml (overridable via CMDKIT_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is created from the
// embedded defaults.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := writeConfig(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return hydrateDefaults(cfg), nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return hydrateDefaults(cfg), nil
}

// Save writes cfg to the configuration file.
func (l *FileLoader) Save(cfg domain.Config) error {
	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return err
	}
	return writeConfig(path, cfg)
}

// Reset overwrites the configuration file with the defaults.
func (l *FileLoader) Reset() (domain.Config, error) {
	cfg := DefaultConfig()
	if err := l.Save(cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

// Path returns the resolved configuration file path.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.AppDir(), "config.yaml")
}

// DefaultConfig decodes the embedded default configuration.
func DefaultConfig() domain.Config {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		cfg = domain.Config{ConfigFormatVersion: "1"}
	}
	return cfg
}

// EffectiveDefaults is DefaultConfig as Load would return it.
func EffectiveDefaults() domain.Config {
	return hydrateDefaults(DefaultConfig())
}

func ensureConfigDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, domain.DirectoryPermissions)
}

func writeConfig(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = filepath.Join(filesystem.AppDir(), "storage.db")
	}
	cfg.Storage.Path = filesystem.ExpandPath(cfg.Storage.Path)
	if cfg.AI.DefaultModel == "" {
		cfg.AI.DefaultModel = domain.DefaultModelName
	}
	if cfg.AI.PromptTemplate == "" {
		cfg.AI.PromptTemplate = domain.DefaultPromptTemplate
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
