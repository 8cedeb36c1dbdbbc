package domain

import "strings"

// AIConfig points the command generator at an OpenAI-compatible endpoint.
// APIHost is a base URL expected to end in '/'.
type AIConfig struct {
	APIKey    string `json:"apiKey"`
	APIHost   string `json:"apiHost"`
	ModelName string `json:"modelName"`
}

// DefaultAIConfig is the configuration used before anything has been saved.
func DefaultAIConfig() AIConfig {
	return AIConfig{ModelName: DefaultModelName}
}

// Normalize trims every field and fills in the default model name.
func (c AIConfig) Normalize() AIConfig {
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.APIHost = strings.TrimSpace(c.APIHost)
	c.ModelName = strings.TrimSpace(c.ModelName)
	if c.ModelName == "" {
		c.ModelName = DefaultModelName
	}
	return c
}

// Validate requires the key and host needed to reach the endpoint.
func (c AIConfig) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return &ValidationError{Field: "apiKey", Message: "API key is required"}
	}
	if strings.TrimSpace(c.APIHost) == "" {
		return &ValidationError{Field: "apiHost", Message: "API host is required"}
	}
	return nil
}

// Endpoint resolves path against the host the way the HTTP client does: a
// host without a trailing '/' is treated as a directory.
func (c AIConfig) Endpoint(path string) string {
	host := c.APIHost
	if host != "" && !strings.HasSuffix(host, "/") {
		host += "/"
	}
	return host + path
}

// MaskedKey hides all but the last four characters of the key.
func (c AIConfig) MaskedKey() string {
	if len(c.APIKey) <= 4 {
		return strings.Repeat("*", len(c.APIKey))
	}
	return strings.Repeat("*", len(c.APIKey)-4) + c.APIKey[len(c.APIKey)-4:]
}
