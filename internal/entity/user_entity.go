package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Name         string
	DueDate      *time.Time
	WeekNumber   int
	IsPostpartum bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
