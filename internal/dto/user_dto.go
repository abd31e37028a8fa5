package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	DueDate string `json:"due_date" validate:"required,datetime=2006-01-02"`
}

type CreateUserResponse struct {
	Id         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	WeekNumber int       `json:"week_number"`
	CreatedAt  time.Time `json:"created_at"`
}

type ShowUserResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	WeekNumber   int       `json:"week_number"`
	DueDate      *string   `json:"due_date,omitempty"`
	IsPostpartum bool      `json:"is_postpartum"`
	CreatedAt    time.Time `json:"created_at"`
}

type RefreshWeekResponse struct {
	Id         uuid.UUID `json:"id"`
	WeekNumber int       `json:"week_number"`
}
