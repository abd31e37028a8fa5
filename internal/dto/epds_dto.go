package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitScreeningRequest struct {
	UserId     uuid.UUID `json:"user_id" validate:"required"`
	ItemScores []int     `json:"item_scores" validate:"required,len=10,dive,min=0,max=3"`
}

type ScreeningResponse struct {
	Id         uuid.UUID `json:"id"`
	TotalScore int       `json:"total_score"`
	ItemScores []int     `json:"item_scores"`
	RiskLevel  string    `json:"risk_level"`
	AiInsight  string    `json:"ai_insight"`
	CreatedAt  time.Time `json:"created_at"`
}
