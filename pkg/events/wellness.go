package events

import "time"

// Event codes raised by the wellness services. Each code has a matching row
// in the notification_types table so alerts can be rendered for the user.
const (
	TypeCrisisDetected    = "CRISIS_DETECTED"
	TypeSelfHarmFlagged   = "SELF_HARM_FLAGGED"
	TypeConcerningPattern = "CONCERNING_PATTERN"
)

// NewCrisisDetected is raised when a chat message matched crisis language
// and the fixed safety response was returned.
func NewCrisisDetected(userID, messagePreview string) Event {
	return BaseEvent{
		Type: TypeCrisisDetected,
		Data: map[string]interface{}{
			"user_id":         userID,
			"message_preview": messagePreview,
		},
		OccurredAt: time.Now(),
	}
}

// NewSelfHarmFlagged is raised when a screening's self-harm item was
// answered positively, regardless of the total score.
func NewSelfHarmFlagged(userID string, totalScore int) Event {
	return BaseEvent{
		Type: TypeSelfHarmFlagged,
		Data: map[string]interface{}{
			"user_id":     userID,
			"total_score": totalScore,
		},
		OccurredAt: time.Now(),
	}
}

// NewConcerningPattern is raised when a week of mood entries shows a
// sustained low pattern.
func NewConcerningPattern(userID string, averageScore float64, totalEntries int) Event {
	return BaseEvent{
		Type: TypeConcerningPattern,
		Data: map[string]interface{}{
			"user_id":       userID,
			"average_score": averageScore,
			"total_entries": totalEntries,
		},
		OccurredAt: time.Now(),
	}
}
