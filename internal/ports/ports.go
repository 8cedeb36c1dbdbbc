// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application core (fragment editor, saved-command store and the workbench
// controller) depends only on these abstractions. Adapters in the
// infrastructure layer provide the clipboard, local key-value storage, CSV
// files, the chat-completion client and the CLI prompts.
package ports

import (
	"context"

	"github.com/doeshing/cmdkit/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.cmdkit/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// KeyValueStore is the local per-user key-value storage.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// AIConfigRepository persists the single AIConfig object.
// Load reports false when nothing has been saved yet.
type AIConfigRepository interface {
	Load(ctx context.Context) (domain.AIConfig, bool, error)
	Save(ctx context.Context, cfg domain.AIConfig) error
}

// CommandGenerator talks to an OpenAI-compatible chat-completion endpoint.
type CommandGenerator interface {
	TestConnection(ctx context.Context, cfg domain.AIConfig) error
	Generate(ctx context.Context, cfg domain.AIConfig, prompt string) (string, error)
}

// CSVFiles reads and writes the exported command list.
type CSVFiles interface {
	Read(path string) (string, error)
	Write(path, content string) error
}

// Clipboard provides cross-platform clipboard integration for copying commands.
type Clipboard interface {
	Copy(text string) error
	Enabled() bool
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
