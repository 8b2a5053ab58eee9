package llm

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// ClaudeBaseURL is the Anthropic API base URL.
	ClaudeBaseURL = "https://api.anthropic.com/"
	// ClaudeModel is the default model.
	ClaudeModel = "claude-sonnet-4-20250514"
	// MaxTokens caps each completion.
	MaxTokens = 4096
	// RequestTimeout bounds a single completion.
	RequestTimeout = 120 * time.Second
)

// ErrMissingAPIKey is returned when AI generation is requested without a key.
var ErrMissingAPIKey = errors.New("anthropic_api_key is required (set in config or ANTHROPIC_API_KEY env var)")

// Client generates README sections with Claude.
type Client struct {
	api    anthropic.Client
	model  string
	logger *logrus.Logger
}

// Option configures a Client.
type Option func(*clientSettings)

type clientSettings struct {
	baseURL    string
	maxRetries int
	httpClient *http.Client
	logger     *logrus.Logger
}

// WithBaseURL points the client at another endpoint, e.g. a test server.
func WithBaseURL(url string) (opt Option) {
	opt = func(s *clientSettings) {
		s.baseURL = url
	}
	return opt
}

// WithMaxRetries sets how often transient failures are retried.
func WithMaxRetries(n int) (opt Option) {
	opt = func(s *clientSettings) {
		s.maxRetries = n
	}
	return opt
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) (opt Option) {
	opt = func(s *clientSettings) {
		s.httpClient = c
	}
	return opt
}

// WithLogger sets the logger.
func WithLogger(logger *logrus.Logger) (opt Option) {
	opt = func(s *clientSettings) {
		s.logger = logger
	}
	return opt
}

// NewClient creates a Claude client. An empty model selects ClaudeModel.
func NewClient(apiKey, model string, opts ...Option) (client *Client, err error) {
	if apiKey == "" {
		err = ErrMissingAPIKey
		return client, err
	}

	if model == "" {
		model = ClaudeModel
	}

	settings := clientSettings{
		baseURL:    ClaudeBaseURL,
		maxRetries: 2,
		httpClient: &http.Client{
			Timeout: RequestTimeout,
		},
	}
	for _, opt := range opts {
		opt(&settings)
	}

	if settings.logger == nil {
		settings.logger = logrus.New()
		settings.logger.SetLevel(logrus.WarnLevel)
	}

	client = &Client{
		api: anthropic.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(settings.baseURL),
			option.WithMaxRetries(settings.maxRetries),
			option.WithHTTPClient(settings.httpClient),
		),
		model:  model,
		logger: settings.logger,
	}
	return client, err
}

// Model returns the model the client sends requests to.
func (c *Client) Model() (model string) {
	model = c.model
	return model
}

// Generate produces markdown for one README section.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (response GenerateResponse, err error) {
	prompt := BuildPrompt(req)

	c.logger.WithFields(logrus.Fields{
		"section": req.Section,
		"model":   c.model,
		"chars":   len(prompt),
	}).Debug("requesting completion")

	var responseText string
	responseText, err = c.sendRequest(ctx, SystemPrompt, prompt)
	if err != nil {
		err = errors.Wrapf(err, "%s generation request failed", req.Section)
		return response, err
	}

	response = GenerateResponse{
		Content: stripMarkdownCodeFences(responseText),
		Section: req.Section,
	}

	return response, err
}

// sendRequest sends one user turn and joins the text blocks of the answer.
func (c *Client) sendRequest(ctx context.Context, system, prompt string) (responseText string, err error) {
	var msg *anthropic.Message
	msg, err = c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: MaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		err = errors.Wrap(err, "API request failed")
		return responseText, err
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	if b.Len() == 0 {
		err = errors.New("no content in Claude response")
		return responseText, err
	}

	responseText = b.String()
	return responseText, err
}

// stripMarkdownCodeFences removes a fence wrapping the whole answer. Answers
// that merely start and end with separate code blocks are left alone.
func stripMarkdownCodeFences(text string) (cleaned string) {
	cleaned = strings.TrimSpace(text)

	if !strings.HasPrefix(cleaned, "```") || !strings.HasSuffix(cleaned, "```") || len(cleaned) < 6 {
		cleaned = text
		return cleaned
	}

	firstLine, rest, found := strings.Cut(cleaned, "\n")
	if !found {
		cleaned = text
		return cleaned
	}

	switch strings.TrimPrefix(firstLine, "```") {
	case "", "markdown", "md", "json":
	default:
		cleaned = text
		return cleaned
	}

	body := strings.TrimSuffix(rest, "```")
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			cleaned = text
			return cleaned
		}
	}

	cleaned = strings.TrimRight(body, " \r\n")
	return cleaned
}
