package insight

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"bloompath-be/internal/constant"
	"bloompath-be/pkg/llm"
	"bloompath-be/pkg/scoring"

	"github.com/stretchr/testify/assert"
)

// stubProvider records the last call and returns a fixed reply or error.
type stubProvider struct {
	reply      string
	err        error
	called     bool
	lastSystem string
	lastTokens int
	lastPrompt string
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	s.called = true
	opts := &llm.Options{}
	for _, o := range options {
		o(opts)
	}
	s.lastSystem = opts.System
	s.lastTokens = opts.MaxTokens
	if len(history) > 0 {
		s.lastPrompt = history[len(history)-1].Content
	}
	return s.reply, s.err
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func newTestGenerator(p llm.LLMProvider) *Generator {
	return NewGenerator(p, log.New(io.Discard, "", 0))
}

func TestChatReplyCrisisShortCircuit(t *testing.T) {
	stub := &stubProvider{reply: "should never be used"}
	g := newTestGenerator(stub)

	reply, flagged := g.ChatReply(context.Background(), "I feel hopeless and alone", nil, 12)

	assert.True(t, flagged)
	assert.Equal(t, constant.CrisisResponse, reply)
	assert.False(t, stub.called, "crisis messages must not reach the provider")
}

func TestChatReplyPassesSystemPromptAndWeekContext(t *testing.T) {
	stub := &stubProvider{reply: "You're doing great."}
	g := newTestGenerator(stub)

	reply, flagged := g.ChatReply(context.Background(), "how do I sleep better?", nil, 24)

	assert.False(t, flagged)
	assert.Equal(t, "You're doing great.", reply)
	assert.Equal(t, constant.CompanionSystemPrompt, stub.lastSystem)
	assert.Equal(t, 1024, stub.lastTokens)
	assert.Contains(t, stub.lastPrompt, "week 24")
}

func TestChatReplyFallsBackOnProviderError(t *testing.T) {
	stub := &stubProvider{err: errors.New("connection refused")}
	g := newTestGenerator(stub)

	reply, flagged := g.ChatReply(context.Background(), "just checking in", nil, 0)

	assert.False(t, flagged)
	assert.Equal(t, constant.ChatFallbackResponse, reply)
}

func TestMoodInsightFallbackByBand(t *testing.T) {
	stub := &stubProvider{err: errors.New("down")}
	g := newTestGenerator(stub)
	ctx := context.Background()

	assert.Equal(t, constant.MoodInsightFallbackLow, g.MoodInsight(ctx, 1, []string{"sad"}, "", 0))
	assert.Equal(t, constant.MoodInsightFallbackNeutral, g.MoodInsight(ctx, 3, []string{"tired"}, "", 0))
	assert.Equal(t, constant.MoodInsightFallbackGood, g.MoodInsight(ctx, 5, []string{"happy"}, "", 0))
}

func TestWeeklySummaryNoEntries(t *testing.T) {
	stub := &stubProvider{reply: "unused"}
	g := newTestGenerator(stub)

	summary := g.WeeklySummary(context.Background(), nil, -1, 0)

	assert.Equal(t, constant.NoEntriesWeeklySummary, summary)
	assert.False(t, stub.called)
}

func TestWeeklySummaryPromptIncludesScreening(t *testing.T) {
	stub := &stubProvider{reply: "A gentle week in review."}
	g := newTestGenerator(stub)

	entries := []scoring.MoodSample{
		{Score: 2, Emotions: []string{"anxious"}},
		{Score: 3, Emotions: []string{"tired"}},
		{Score: 4, Emotions: []string{"hopeful"}},
	}
	summary := g.WeeklySummary(context.Background(), entries, 11, 30)

	assert.Equal(t, "A gentle week in review.", summary)
	assert.Contains(t, stub.lastPrompt, "11/30")
	assert.Contains(t, stub.lastPrompt, "borderline - worth monitoring")
	assert.Contains(t, stub.lastPrompt, "3 check-ins")
	assert.Equal(t, 300, stub.lastTokens)
}

func TestEPDSInsightSelfHarmOverridesRisk(t *testing.T) {
	stub := &stubProvider{reply: "unused"}
	g := newTestGenerator(stub)

	// Low total but a positive self-harm item still gets the fixed
	// safety response.
	result := scoring.EPDSResult{Total: 1, RiskLevel: scoring.RiskLow}
	text := g.EPDSInsight(context.Background(), result, true)

	assert.Equal(t, constant.SelfHarmScreeningResponse, text)
	assert.False(t, stub.called)
}

func TestEPDSInsightFallbackByRisk(t *testing.T) {
	stub := &stubProvider{err: errors.New("down")}
	g := newTestGenerator(stub)
	ctx := context.Background()

	high := g.EPDSInsight(ctx, scoring.EPDSResult{Total: 15, RiskLevel: scoring.RiskHigh}, false)
	moderate := g.EPDSInsight(ctx, scoring.EPDSResult{Total: 11, RiskLevel: scoring.RiskModerate}, false)
	low := g.EPDSInsight(ctx, scoring.EPDSResult{Total: 4, RiskLevel: scoring.RiskLow}, false)

	assert.Equal(t, constant.EPDSInsightFallbackHigh, high)
	assert.Equal(t, constant.EPDSInsightFallbackModerate, moderate)
	assert.Equal(t, constant.EPDSInsightFallbackLow, low)
}

func TestPartnerMessageFallbackEmbedsConcern(t *testing.T) {
	stub := &stubProvider{err: errors.New("down")}
	g := newTestGenerator(stub)

	msg := g.PartnerMessage(context.Background(), "I feel invisible lately", 18)

	assert.True(t, strings.Contains(msg, "I feel invisible lately"))
	assert.Contains(t, msg, "Can we find a good time to talk")
}
