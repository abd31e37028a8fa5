package entity

import (
	"time"

	"github.com/google/uuid"
)

type MoodEntry struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Score     int // 1-5
	Emotions  []string
	Notes     *string
	AiInsight string
	CreatedAt time.Time
}
