// Package insight turns journaling data into supportive AI-written text,
// with fixed fallbacks so a model outage never leaves the user without a
// response.
package insight

import (
	"context"
	"fmt"
	"log"
	"strings"

	"bloompath-be/internal/constant"
	"bloompath-be/pkg/crisis"
	"bloompath-be/pkg/llm"
	"bloompath-be/pkg/scoring"
)

const (
	chatMaxTokens    = 1024
	insightMaxTokens = 256
	summaryMaxTokens = 300
	partnerMaxTokens = 512
)

// Generator creates companion replies, mood/screening insights, weekly
// summaries and partner messages from a single LLM provider.
type Generator struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewGenerator(llmProvider llm.LLMProvider, logger *log.Logger) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// ChatReply answers a companion chat message. The crisis check runs before
// anything touches the network; a flagged message returns the fixed crisis
// response immediately and never reaches the model.
func (g *Generator) ChatReply(ctx context.Context, userMessage string, history []llm.Message, week int) (string, bool) {
	if crisis.Detect(userMessage) {
		g.logger.Printf("[CHAT] crisis language detected, returning fixed response")
		return constant.CrisisResponse, true
	}

	content := userMessage
	if week > 0 {
		content = fmt.Sprintf("[Context: The user is in week %d of their pregnancy]\n\n%s", week, userMessage)
	}

	fullHistory := append(history, llm.Message{Role: constant.ChatMessageRoleUser, Content: content})

	response, err := g.llmProvider.Chat(ctx, fullHistory,
		llm.WithSystem(constant.CompanionSystemPrompt),
		llm.WithMaxTokens(chatMaxTokens),
	)
	if err != nil {
		g.logger.Printf("[ERROR] chat generation failed: %v", err)
		return constant.ChatFallbackResponse, false
	}
	if response == "" {
		return constant.ChatEmptyResponse, false
	}
	return response, false
}

// MoodInsight writes a short supportive reaction to a single mood entry.
func (g *Generator) MoodInsight(ctx context.Context, score int, emotions []string, notes string, week int) string {
	var prompt strings.Builder
	prompt.WriteString("A pregnant woman")
	if week > 0 {
		prompt.WriteString(fmt.Sprintf(" in week %d", week))
	}
	prompt.WriteString(" just logged her mood:\n")
	prompt.WriteString(fmt.Sprintf("- Mood score: %d/5\n", score))
	prompt.WriteString(fmt.Sprintf("- Emotions: %s\n", strings.Join(emotions, ", ")))
	if notes != "" {
		prompt.WriteString(fmt.Sprintf("- Notes: %q\n", notes))
	}
	prompt.WriteString(`
Provide a brief (2-3 sentences), warm, supportive response that:
1. Validates their current feelings
2. Offers one gentle suggestion or affirmation
3. Reminds them they're doing well

Keep it conversational and caring. Don't use bullet points.`)

	response, err := g.llmProvider.Generate(ctx, prompt.String(), llm.WithMaxTokens(insightMaxTokens))
	if err != nil || response == "" {
		if err != nil {
			g.logger.Printf("[ERROR] mood insight generation failed: %v", err)
		}
		return fallbackMoodInsight(score)
	}
	return response
}

func fallbackMoodInsight(score int) string {
	switch scoring.ClassifyMoodScore(score) {
	case scoring.MoodLow:
		return constant.MoodInsightFallbackLow
	case scoring.MoodNeutral:
		return constant.MoodInsightFallbackNeutral
	default:
		return constant.MoodInsightFallbackGood
	}
}

// WeeklySummary summarises the last week of mood entries, optionally in the
// light of the latest screening score. epdsScore < 0 means no screening yet.
func (g *Generator) WeeklySummary(ctx context.Context, entries []scoring.MoodSample, epdsScore int, week int) string {
	if len(entries) == 0 {
		return constant.NoEntriesWeeklySummary
	}

	agg := scoring.AggregateWeek(entries)
	topEmotions := make([]string, 0, 3)
	for i, ec := range agg.TopEmotions {
		if i == 3 {
			break
		}
		topEmotions = append(topEmotions, ec.Emotion)
	}

	var prompt strings.Builder
	prompt.WriteString("Summarize this pregnant woman's week")
	if week > 0 {
		prompt.WriteString(fmt.Sprintf(" (week %d of pregnancy)", week))
	}
	prompt.WriteString(":\n")
	prompt.WriteString(fmt.Sprintf("- Average mood: %.1f/5\n", agg.AverageScore))
	prompt.WriteString(fmt.Sprintf("- %d check-ins\n", agg.TotalEntries))
	prompt.WriteString(fmt.Sprintf("- Most common feelings: %s", strings.Join(topEmotions, ", ")))
	if epdsScore >= 0 {
		prompt.WriteString(fmt.Sprintf("\n- Latest EPDS screening score: %d/30 (%s)", epdsScore, epdsInterpretation(epdsScore)))
	}
	prompt.WriteString(`

Write 3-4 sentences that:
1. Acknowledge their emotional patterns
2. Highlight any positive trends or validate struggles
3. Offer encouragement for the coming week
4. If average is below 2.5 or EPDS ≥10, gently suggest talking to their healthcare provider

Be warm, supportive, and remind them that seeking support is a sign of strength.`)

	response, err := g.llmProvider.Generate(ctx, prompt.String(), llm.WithMaxTokens(summaryMaxTokens))
	if err != nil || response == "" {
		if err != nil {
			g.logger.Printf("[ERROR] weekly summary generation failed: %v", err)
		}
		return fmt.Sprintf("Over the past week, you've checked in %d times with an average mood of %.1f/5. Thank you for taking time to reflect on how you're feeling. Remember, being aware of your emotions is an important part of self-care during pregnancy, and 1 in 4 women experience challenging emotions during this time - you're not alone.", agg.TotalEntries, agg.AverageScore)
	}
	return response
}

func epdsInterpretation(score int) string {
	switch {
	case score >= 13:
		return "indicates possible depression"
	case score >= 10:
		return "borderline - worth monitoring"
	default:
		return "within normal range"
	}
}

// EPDSInsight reacts to a completed screening. A positive self-harm item
// short-circuits everything with a fixed safety response, regardless of the
// total score.
func (g *Generator) EPDSInsight(ctx context.Context, result scoring.EPDSResult, selfHarmFlagged bool) string {
	if selfHarmFlagged {
		g.logger.Printf("[EPDS] self-harm item positive, returning fixed response")
		return constant.SelfHarmScreeningResponse
	}

	var prompt strings.Builder
	prompt.WriteString("A pregnant/postpartum woman just completed the Edinburgh Postnatal Depression Scale:\n")
	prompt.WriteString(fmt.Sprintf("- Total score: %d/30\n", result.Total))
	prompt.WriteString(fmt.Sprintf("- Risk level: %s\n", result.RiskLevel))
	prompt.WriteString(fmt.Sprintf("- Score interpretation: %s\n", epdsScoreInterpretation(result.Total)))

	guidance := "Encourages continued self-care"
	if result.Total >= 10 {
		guidance = "Encourages them to discuss with their healthcare provider"
	}
	prompt.WriteString(fmt.Sprintf(`
Provide a 2-3 sentence response that:
1. Thanks them for completing the screening
2. Explains what their score means in gentle, non-alarming terms
3. %s
4. Reminds them this is a screening tool, not a diagnosis

Be warm, supportive, and emphasize that seeking help is a sign of strength.`, guidance))

	response, err := g.llmProvider.Generate(ctx, prompt.String(), llm.WithMaxTokens(insightMaxTokens))
	if err != nil || response == "" {
		if err != nil {
			g.logger.Printf("[ERROR] screening insight generation failed: %v", err)
		}
		return fallbackEPDSInsight(result.RiskLevel)
	}
	return response
}

func epdsScoreInterpretation(score int) string {
	switch {
	case score >= 13:
		return "Score suggests possible depression"
	case score >= 10:
		return "Borderline score - worth monitoring"
	default:
		return "Within normal range"
	}
}

func fallbackEPDSInsight(risk scoring.RiskLevel) string {
	switch risk {
	case scoring.RiskHigh:
		return constant.EPDSInsightFallbackHigh
	case scoring.RiskModerate:
		return constant.EPDSInsightFallbackModerate
	default:
		return constant.EPDSInsightFallbackLow
	}
}

// PartnerMessage drafts a message the user can send their partner about a
// concern they describe.
func (g *Generator) PartnerMessage(ctx context.Context, concern string, week int) string {
	var prompt strings.Builder
	prompt.WriteString("A pregnant woman")
	if week > 0 {
		prompt.WriteString(fmt.Sprintf(" in week %d", week))
	}
	prompt.WriteString(fmt.Sprintf(` wants help communicating with her partner. She's feeling:

%q

Generate a thoughtful, empathetic message she can share with her partner. The message should:

1. Use "I" statements to express her feelings clearly
2. Explain what she's experiencing without blame
3. Ask for specific support she needs
4. Acknowledge that pregnancy is challenging for both partners
5. Be warm and open, inviting conversation
6. Keep it concise (2-3 short paragraphs max)

Write the message as if she's speaking directly to her partner. Make it feel authentic and from the heart.`, concern))

	content := prompt.String()
	if week > 0 {
		content = fmt.Sprintf("[Context: The user is in week %d of their pregnancy]\n\n%s", week, content)
	}

	response, err := g.llmProvider.Chat(ctx,
		[]llm.Message{{Role: constant.ChatMessageRoleUser, Content: content}},
		llm.WithSystem(constant.PartnerMessageSystemPrompt),
		llm.WithMaxTokens(partnerMaxTokens),
	)
	if err != nil || response == "" {
		if err != nil {
			g.logger.Printf("[ERROR] partner message generation failed: %v", err)
		}
		return fallbackPartnerMessage(concern)
	}
	return response
}

func fallbackPartnerMessage(concern string) string {
	return fmt.Sprintf(`I wanted to share something with you that's been on my mind. %s

I know pregnancy can be challenging for both of us, and I want us to be able to talk about what I'm experiencing. I'd really appreciate your support and understanding right now.

Can we find a good time to talk about this? I value our connection and want to make sure we're both feeling supported through this journey.`, concern)
}
