package dto

import (
	"time"

	"bloompath-be/pkg/scoring"
)

type InsightStats struct {
	AverageScore      float64                `json:"average_score"`
	TotalEntries      int                    `json:"total_entries"`
	TopEmotions       []scoring.EmotionCount `json:"top_emotions"`
	ConcerningPattern bool                   `json:"concerning_pattern"`
}

type InsightScreeningSummary struct {
	TotalScore int       `json:"total_score"`
	RiskLevel  string    `json:"risk_level"`
	CreatedAt  time.Time `json:"created_at"`
}

type WeeklyInsightsResponse struct {
	Entries    []MoodEntryResponse      `json:"entries"`
	Stats      InsightStats             `json:"stats"`
	AiSummary  string                   `json:"ai_summary"`
	WeekNumber int                      `json:"week_number,omitempty"`
	EpdsData   *InsightScreeningSummary `json:"epds_data"`
}
