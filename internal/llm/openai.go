package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1/"
	DefaultModel   = "gpt-4o-mini"
	APIKeyEnv      = "OPENAI_API_KEY"

	// NoChoicesMessage is returned in place of content when the API answers
	// with an empty choices array.
	NoChoicesMessage = "OpenAI returned no choices."

	chatCompletionsPath = "chat/completions"
	betaHeaderValue     = "assistants=v2"
)

type Config struct {
	// HTTPClient is used as-is when set and never closed by the client.
	HTTPClient *http.Client
	// APIKey falls back to $OPENAI_API_KEY when blank.
	APIKey       string
	BaseURL      string
	Model        string
	Temperature  *float64
	SystemPrompt string
}

// ChatClient issues single-turn chat completions. It is immutable after
// construction and safe for concurrent use.
type ChatClient struct {
	endpoint     string
	apiKey       string
	model        string
	temperature  *float64
	systemPrompt string
	httpClient   *http.Client
	ownsClient   bool
}

func NewChatClient(cfg Config) (*ChatClient, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv(APIKeyEnv))
	}
	if apiKey == "" {
		return nil, &ConfigurationError{
			Field:   "api_key",
			Message: "set the " + APIKeyEnv + " environment variable before calling OpenAI",
		}
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	endpoint, err := buildChatEndpoint(baseURL)
	if err != nil {
		return nil, err
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	var temperature *float64
	if cfg.Temperature != nil {
		t := *cfg.Temperature
		temperature = &t
	}

	client := cfg.HTTPClient
	owns := client == nil
	if owns {
		// Close must only reach this transport, never http.DefaultTransport.
		client = &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()}
	}
	return &ChatClient{
		endpoint:     endpoint,
		apiKey:       apiKey,
		model:        model,
		temperature:  temperature,
		systemPrompt: cfg.SystemPrompt,
		httpClient:   client,
		ownsClient:   owns,
	}, nil
}

func (c *ChatClient) Model() string {
	return c.model
}

func (c *ChatClient) Complete(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", canceled(err)
	}
	payload := chatRequest{
		Model: c.model,
		Messages: []Message{
			{Role: RoleSystem, Content: c.systemPrompt},
			{Role: RoleUser, Content: prompt},
		},
		Temperature: c.temperature,
	}
	requestBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(requestBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("OpenAI-Beta", betaHeaderValue)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", canceled(ctxErr)
		}
		return "", fmt.Errorf("openai request: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", canceled(ctxErr)
		}
		return "", fmt.Errorf("read response: %w", err)
	}
	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return "", &UpstreamError{StatusCode: httpResp.StatusCode, Body: string(body)}
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return NoChoicesMessage, nil
	}
	content := resp.Choices[0].Message.Content
	if content == nil {
		return "", nil
	}
	return *content, nil
}

// Close releases idle connections of a transport the client created itself.
// An injected HTTPClient is left untouched.
func (c *ChatClient) Close() error {
	if c.ownsClient {
		c.httpClient.CloseIdleConnections()
	}
	return nil
}

func canceled(cause error) error {
	return fmt.Errorf("%w: %w", ErrCanceled, cause)
}

func buildChatEndpoint(baseURL string) (string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &ConfigurationError{Field: "base_url", Message: fmt.Sprintf("%q is not an absolute url", baseURL)}
	}
	return strings.TrimRight(baseURL, "/") + "/" + chatCompletionsPath, nil
}
