package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Role      string // "user" or "assistant"
	Content   string
	CreatedAt time.Time
}
