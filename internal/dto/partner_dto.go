package dto

import (
	"time"

	"github.com/google/uuid"
)

type PartnerMessageRequest struct {
	UserId  uuid.UUID `json:"user_id" validate:"required"`
	Concern string    `json:"concern" validate:"required"`
}

type PartnerMessageResponse struct {
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
