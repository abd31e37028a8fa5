// Package elevenlabs synthesizes speech through the ElevenLabs REST API.
package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.elevenlabs.io"

	// DefaultVoiceID is "Bella", a warm calm voice.
	DefaultVoiceID = "EXAVITQu4vr4xnSDxMaL"
	modelID        = "eleven_multilingual_v2"

	// maxChars caps synthesis input; longer texts are truncated with an
	// ellipsis rather than rejected.
	maxChars = 2500
)

// ErrNotConfigured is returned when no API key was provided. Callers map it
// to 503 so the feature degrades instead of erroring hard.
var ErrNotConfigured = errors.New("text-to-speech is not configured")

type Client struct {
	apiKey  string
	baseURL string
	voiceID string
	client  *http.Client
}

func NewClient(apiKey, voiceID string) *Client {
	if voiceID == "" {
		voiceID = DefaultVoiceID
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		voiceID: voiceID,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type synthesizeRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

// Synthesize converts text to MPEG audio. Input beyond the provider limit is
// truncated, matching what the voice can reasonably read in one clip.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	if !c.Configured() {
		return nil, "", ErrNotConfigured
	}

	if runes := []rune(text); len(runes) > maxChars {
		text = string(runes[:maxChars]) + "..."
	}

	payload, err := json.Marshal(synthesizeRequest{Text: text, ModelID: modelID})
	if err != nil {
		return nil, "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", c.baseURL, c.voiceID)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("elevenlabs request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, "", fmt.Errorf("elevenlabs error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read audio: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/mpeg"
	}
	return audio, contentType, nil
}
