package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bloompath-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatReturnsTextBlock(t *testing.T) {
	var gotReq messagesRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]string{{"type": "text", "text": "You're doing great."}},
		})
	}))
	defer srv.Close()

	p := NewAnthropicProvider("test-key", srv.URL, "claude-3-5-haiku-latest")

	reply, err := p.Chat(context.Background(),
		[]llm.Message{{Role: "user", Content: "hi"}},
		llm.WithSystem("be kind"),
		llm.WithMaxTokens(256),
	)

	require.NoError(t, err)
	assert.Equal(t, "You're doing great.", reply)
	assert.Equal(t, "claude-3-5-haiku-latest", gotReq.Model)
	assert.Equal(t, "be kind", gotReq.System)
	assert.Equal(t, 256, gotReq.MaxTokens)
}

func TestChatEmptyContentIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]string{},
		})
	}))
	defer srv.Close()

	p := NewAnthropicProvider("test-key", srv.URL, "claude-3-5-haiku-latest")

	reply, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})

	require.NoError(t, err)
	assert.Equal(t, "", reply)
}

func TestChatUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := NewAnthropicProvider("test-key", srv.URL, "claude-3-5-haiku-latest")

	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}
