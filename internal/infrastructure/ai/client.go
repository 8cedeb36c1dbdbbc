// Package ai generates commands through an OpenAI-compatible chat-completion
// endpoint.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/doeshing/cmdkit/internal/domain"
	"github.com/doeshing/cmdkit/internal/ports"
)

// Options configures a Client.
type Options struct {
	HTTPClient      *http.Client
	PromptTemplate  string
	StripCodeFences bool
	Logger          ports.Logger
	// DebugLog receives raw request/response dumps when set.
	DebugLog *log.Logger
}

// Client implements ports.CommandGenerator. The endpoint comes from the
// AIConfig passed to each call, so one Client serves any saved configuration.
type Client struct {
	httpClient  *http.Client
	renderer    *promptRenderer
	stripFences bool
	logger      ports.Logger
	debugLog    *log.Logger
}

// NewClient validates the prompt template and builds a client.
func NewClient(opts Options) (*Client, error) {
	renderer, err := newPromptRenderer(opts.PromptTemplate)
	if err != nil {
		return nil, fmt.Errorf("prompt template: %w", err)
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient:  httpClient,
		renderer:    renderer,
		stripFences: opts.StripCodeFences,
		logger:      opts.Logger,
		debugLog:    opts.DebugLog,
	}, nil
}

// TestConnection lists the models at {apiHost}models to check reachability
// and credentials.
func (c *Client) TestConnection(ctx context.Context, cfg domain.AIConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	capture := &remoteError{}
	client := c.newSDKClient(cfg, capture)

	c.debug("testing connection", map[string]interface{}{"endpoint": cfg.Endpoint(domain.ModelsPath)})
	if _, err := client.Models.List(ctx); err != nil {
		return c.classify("test connection", err, capture)
	}
	return nil
}

// Generate sends one user message built from prompt and returns the first
// choice's content.
func (c *Client) Generate(ctx context.Context, cfg domain.AIConfig, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", &domain.ValidationError{Field: "prompt", Message: "prompt is required"}
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	content, err := c.renderer.render(prompt)
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}

	capture := &remoteError{}
	client := c.newSDKClient(cfg, capture)

	c.debug("requesting completion", map[string]interface{}{
		"endpoint": cfg.Endpoint(domain.ChatCompletionsPath),
		"model":    cfg.ModelName,
	})
	completion, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: cfg.ModelName,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(content),
		},
	})
	if err != nil {
		return "", c.classify("generate", err, capture)
	}
	if len(completion.Choices) == 0 {
		return "", &domain.ParseError{Err: errors.New("response has no choices")}
	}

	reply := strings.TrimSpace(completion.Choices[0].Message.Content)
	if c.stripFences {
		if block := extractCodeBlock(reply); block != "" {
			reply = block
		}
	}
	return reply, nil
}

func (c *Client) newSDKClient(cfg domain.AIConfig, capture *remoteError) openai.Client {
	opts := []option.RequestOption{
		option.WithBaseURL(cfg.APIHost),
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(c.httpClient),
		option.WithMaxRetries(0),
		option.WithMiddleware(capture.middleware),
	}
	if c.debugLog != nil {
		opts = append(opts, option.WithDebugLog(c.debugLog))
	}
	return openai.NewClient(opts...)
}

// classify maps SDK errors onto the domain taxonomy.
func (c *Client) classify(op string, err error, capture *remoteError) error {
	var classified error
	var apiErr *openai.Error
	var urlErr *url.Error
	switch {
	case capture.status != 0:
		classified = &domain.NetworkError{Op: op, StatusCode: capture.status, Message: capture.message, Err: err}
	case capture.transport != nil:
		classified = &domain.NetworkError{Op: op, Err: capture.transport}
	case errors.As(err, &apiErr):
		classified = &domain.NetworkError{Op: op, StatusCode: apiErr.StatusCode, Message: apiErr.Message, Err: err}
	case errors.As(err, &urlErr), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		classified = &domain.NetworkError{Op: op, Err: err}
	default:
		classified = &domain.ParseError{Err: err}
	}
	if c.logger != nil {
		c.logger.Warn("ai request failed", map[string]interface{}{"op": op, "error": classified.Error()})
	}
	return classified
}

func (c *Client) debug(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}

// remoteError records transport failures and the status and
// {error:{message}} body of a non-2xx response before the SDK consumes it.
type remoteError struct {
	transport error
	status    int
	message   string
}

func (r *remoteError) middleware(req *http.Request, next option.MiddlewareNext) (*http.Response, error) {
	resp, err := next(req)
	if err != nil {
		r.transport = err
		return resp, err
	}
	if resp.StatusCode < 300 {
		return resp, nil
	}
	r.status = resp.StatusCode

	body, readErr := io.ReadAll(resp.Body)
	resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(body))
	if readErr != nil {
		return resp, nil
	}

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &envelope) == nil {
		r.message = envelope.Error.Message
	}
	return resp, nil
}

var _ ports.CommandGenerator = (*Client)(nil)
