package anthropic

import (
	"bloompath-be/pkg/llm"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.anthropic.com"
	apiVersion     = "2023-06-01"
)

type AnthropicProvider struct {
	apiKey    string
	baseURL   string
	modelName string
	client    *http.Client
}

// Ensure AnthropicProvider implements LLMProvider
var _ llm.LLMProvider = &AnthropicProvider{}

func NewAnthropicProvider(apiKey, baseURL, modelName string) *AnthropicProvider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &AnthropicProvider{
		apiKey:    apiKey,
		baseURL:   baseURL,
		modelName: modelName,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type messagesRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
	Temperature *float64           `json:"temperature,omitempty"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// --- Interface Implementation ---

func (p *AnthropicProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		MaxTokens: 1024, // API requires max_tokens; default matches chat usage
	}
	for _, opt := range opts {
		opt(options)
	}

	// The Messages API takes the system prompt as a top-level field, not a
	// message. A system role inside history is lifted out if no explicit
	// option was given.
	system := options.System
	messages := make([]anthropicMessage, 0, len(history))
	for _, msg := range history {
		if msg.Role == "system" {
			if system == "" {
				system = msg.Content
			}
			continue
		}
		role := msg.Role
		if role == "model" {
			role = "assistant"
		}
		messages = append(messages, anthropicMessage{Role: role, Content: msg.Content})
	}

	model := p.modelName
	if options.Model != "" {
		model = options.Model
	}

	reqPayload := messagesRequest{
		Model:     model,
		MaxTokens: options.MaxTokens,
		System:    system,
		Messages:  messages,
	}
	if options.Temperature > 0 {
		reqPayload.Temperature = &options.Temperature
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := p.baseURL + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("anthropic error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var msgResp messagesResponse
	if err := json.Unmarshal(bodyBytes, &msgResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if msgResp.Error != nil {
		return "", fmt.Errorf("anthropic api returned error: %s", msgResp.Error.Message)
	}

	for _, block := range msgResp.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	// A response without a text block (e.g. max_tokens hit mid-thought) is
	// not an error; callers substitute their own fallback for empty replies.
	return "", nil
}

func (p *AnthropicProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}
