package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
	// ExportFilePermissions is the permission for exported CSV files (rw-r--r--)
	ExportFilePermissions = 0o644
)

// AI constants
const (
	// DefaultModelName is used when the AI configuration leaves the model blank
	DefaultModelName = "gpt-3.5-turbo"
	// DefaultPromptTemplate wraps the user's prompt in the single chat message
	DefaultPromptTemplate = "Generate a command: {{.Prompt}}. Return only the command itself, without any explanation."
	// AIConfigKey is the key-value storage key holding the serialized AIConfig
	AIConfigKey = "aiConfig"
	// ModelsPath and ChatCompletionsPath are appended to the API host
	ModelsPath          = "models"
	ChatCompletionsPath = "chat/completions"
)

// CSV constants
const (
	// DefaultCSVFileName matches the download name of the export
	DefaultCSVFileName = "commands.csv"
	// FragmentSeparator joins fragments into a command and splits it back
	FragmentSeparator = " "
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
