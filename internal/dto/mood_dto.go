package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitMoodRequest struct {
	UserId   uuid.UUID `json:"user_id" validate:"required"`
	Score    int       `json:"score" validate:"required,min=1,max=5"`
	Emotions []string  `json:"emotions" validate:"required,min=1,dive,required"`
	Notes    *string   `json:"notes,omitempty"`
}

type MoodEntryResponse struct {
	Id        uuid.UUID `json:"id"`
	Score     int       `json:"score"`
	Emotions  []string  `json:"emotions"`
	Notes     *string   `json:"notes"`
	AiInsight string    `json:"ai_insight"`
	CreatedAt time.Time `json:"created_at"`
}
