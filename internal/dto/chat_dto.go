package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	UserId  uuid.UUID `json:"user_id" validate:"required"`
	Message string    `json:"message" validate:"required"`
}

type ChatMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatResponse struct {
	Id             uuid.UUID `json:"id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	CrisisDetected bool      `json:"crisis_detected"`
	CreatedAt      time.Time `json:"created_at"`
}
