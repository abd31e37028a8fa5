package elevenlabs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeNotConfigured(t *testing.T) {
	c := NewClient("", "")

	_, _, err := c.Synthesize(context.Background(), "hello")

	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, c.Configured())
}

func TestSynthesizeSendsExpectedRequest(t *testing.T) {
	var gotPath, gotKey string
	var gotBody synthesizeRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("xi-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	c := NewClient("test-key", "")
	c.baseURL = srv.URL

	audio, contentType, err := c.Synthesize(context.Background(), "breathe in, breathe out")

	require.NoError(t, err)
	assert.Equal(t, "/v1/text-to-speech/"+DefaultVoiceID, gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "breathe in, breathe out", gotBody.Text)
	assert.Equal(t, "eleven_multilingual_v2", gotBody.ModelID)
	assert.Equal(t, "audio/mpeg", contentType)
	assert.Equal(t, []byte("mp3-bytes"), audio)
}

func TestSynthesizeTruncatesLongText(t *testing.T) {
	var gotBody synthesizeRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewClient("test-key", "custom-voice")
	c.baseURL = srv.URL

	long := strings.Repeat("a", 2499) + strings.Repeat("é", 500)
	_, _, err := c.Synthesize(context.Background(), long)

	require.NoError(t, err)
	assert.Equal(t, 2503, len([]rune(gotBody.Text)))
	assert.True(t, strings.HasSuffix(gotBody.Text, "é..."))
	assert.True(t, utf8.ValidString(gotBody.Text))
	assert.NotContains(t, gotBody.Text, "�")
}

func TestSynthesizeUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("test-key", "")
	c.baseURL = srv.URL

	_, _, err := c.Synthesize(context.Background(), "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}
