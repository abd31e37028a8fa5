package dto

import "github.com/google/uuid"

// MoodLoggedMessage is the internal bus payload emitted after a mood
// entry is persisted. The consumer re-reads the window from the
// database, so the entry itself is not carried.
type MoodLoggedMessage struct {
	EntryId uuid.UUID `json:"entry_id"`
	UserId  uuid.UUID `json:"user_id"`
}
