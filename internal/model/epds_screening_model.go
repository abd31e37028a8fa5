package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EPDSScreening struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index:idx_epds_screenings_user_created,priority:1"`
	TotalScore int            `gorm:"not null"`
	ItemScores datatypes.JSON `gorm:"type:jsonb;not null"`
	RiskLevel  string         `gorm:"type:varchar(20);not null"`
	AiInsight  string         `gorm:"type:text"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index:idx_epds_screenings_user_created,priority:2"`
}

func (EPDSScreening) TableName() string {
	return "epds_screenings"
}
