package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string     `gorm:"type:varchar(255);not null"`
	DueDate      *time.Time `gorm:"type:date"`
	WeekNumber   int        `gorm:"not null;default:1"`
	IsPostpartum bool       `gorm:"default:false"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
