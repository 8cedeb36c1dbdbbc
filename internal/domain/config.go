package domain

// Config mirrors ~/.cmdkit/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Storage             StorageSettings   `yaml:"storage"`
	AI                  AISettings        `yaml:"ai"`
	Clipboard           ClipboardSettings `yaml:"clipboard"`
	UI                  UISettings        `yaml:"ui"`
}

// StorageSettings locates the local key-value database.
type StorageSettings struct {
	Path string `yaml:"path"`
}

// AISettings shapes the request sent to the chat-completion endpoint.
type AISettings struct {
	DefaultModel    string `yaml:"default_model"`
	PromptTemplate  string `yaml:"prompt_template"`
	StripCodeFences bool   `yaml:"strip_code_fences"`
	Timeout         string `yaml:"timeout"`
}

// ClipboardSettings toggles system clipboard integration.
type ClipboardSettings struct {
	Enabled bool `yaml:"enabled"`
}

// UISettings controls terminal rendering.
type UISettings struct {
	Color bool `yaml:"color"`
}
