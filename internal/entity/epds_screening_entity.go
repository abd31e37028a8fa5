package entity

import (
	"time"

	"github.com/google/uuid"

	"bloompath-be/pkg/scoring"
)

type EPDSScreening struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	TotalScore int
	ItemScores []int // 10 items, each 0-3
	RiskLevel  scoring.RiskLevel
	AiInsight  string
	CreatedAt  time.Time
}
