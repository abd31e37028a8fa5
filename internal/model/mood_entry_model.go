package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MoodEntry struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index:idx_mood_entries_user_created,priority:1"`
	Score     int            `gorm:"not null"`
	Emotions  datatypes.JSON `gorm:"type:jsonb;not null"`
	Notes     *string        `gorm:"type:text"`
	AiInsight string         `gorm:"type:text"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index:idx_mood_entries_user_created,priority:2"`
}

func (MoodEntry) TableName() string {
	return "mood_entries"
}
