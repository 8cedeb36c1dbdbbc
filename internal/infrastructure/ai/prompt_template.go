package ai

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/doeshing/cmdkit/internal/domain"
)

type templateData struct {
	Prompt string
}

// promptRenderer expands the configured template into the single user message.
type promptRenderer struct {
	tmpl *template.Template
}

func newPromptRenderer(raw string) (*promptRenderer, error) {
	if strings.TrimSpace(raw) == "" {
		raw = domain.DefaultPromptTemplate
	}
	tmpl, err := template.New("prompt").Parse(raw)
	if err != nil {
		return nil, err
	}
	return &promptRenderer{tmpl: tmpl}, nil
}

func (r *promptRenderer) render(prompt string) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, templateData{Prompt: prompt}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// extractCodeBlock returns the body of the first fenced block in content, or
// "" when there is none.
func extractCodeBlock(content string) string {
	start := strings.Index(content, "```")
	if start == -1 {
		return ""
	}
	suffix := content[start+3:]
	end := strings.Index(suffix, "```")
	if end == -1 {
		return ""
	}

	lines := strings.Split(suffix[:end], "\n")
	if len(lines) > 1 && !strings.Contains(strings.TrimSpace(lines[0]), " ") {
		// language tag such as "sh" or "bash"
		lines = lines[1:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
