package service

import (
	"context"
	"testing"
	"time"

	"bloompath-be/internal/model"
	"bloompath-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type stubNotificationRepo struct {
	types     map[string]*model.NotificationType
	created   []model.Notification
	hasUnread bool
}

func (r *stubNotificationRepo) CreateNotification(ctx context.Context, n *model.Notification) error {
	r.created = append(r.created, *n)
	return nil
}

func (r *stubNotificationRepo) GetNotificationsByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	return r.created, int64(len(r.created)), nil
}

func (r *stubNotificationRepo) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return int64(len(r.created)), nil
}

func (r *stubNotificationRepo) HasUnreadOfTypeSince(ctx context.Context, userID uuid.UUID, typeCode string, since time.Time) (bool, error) {
	return r.hasUnread, nil
}

func (r *stubNotificationRepo) MarkAsRead(ctx context.Context, notificationID uuid.UUID) error {
	return nil
}

func (r *stubNotificationRepo) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return nil
}

func (r *stubNotificationRepo) GetNotificationTypeByCode(ctx context.Context, code string) (*model.NotificationType, error) {
	return r.types[code], nil
}

type stubDelivery struct {
	sent []model.Notification
}

func (d *stubDelivery) Send(userID uuid.UUID, notification model.Notification) {
	d.sent = append(d.sent, notification)
}

func (d *stubDelivery) Broadcast(notification model.Notification) {}

func TestNotificationService_HandleEvent(t *testing.T) {
	userID := uuid.New()

	newService := func(repo *stubNotificationRepo, delivery *stubDelivery) *NotificationService {
		return NewNotificationService(repo, nil, delivery, noopLogger{})
	}

	t.Run("renders template placeholders and delivers", func(t *testing.T) {
		repo := &stubNotificationRepo{
			types: map[string]*model.NotificationType{
				events.TypeSelfHarmFlagged: {
					Code:        events.TypeSelfHarmFlagged,
					DisplayName: "Screening Follow-up",
					Template:    "Flagged with score {total_score}.",
					IsActive:    true,
				},
			},
		}
		delivery := &stubDelivery{}
		svc := newService(repo, delivery)

		evt := events.NewSelfHarmFlagged(userID.String(), 14)
		err := svc.handleEvent(context.Background(), evt)

		assert.NoError(t, err)
		if assert.Len(t, repo.created, 1) {
			assert.Equal(t, userID, repo.created[0].UserID)
			assert.Equal(t, "Screening Follow-up", repo.created[0].Title)
			assert.Equal(t, "Flagged with score 14.", repo.created[0].Message)
		}
		assert.Len(t, delivery.sent, 1)
	})

	t.Run("unknown type code is swallowed", func(t *testing.T) {
		repo := &stubNotificationRepo{types: map[string]*model.NotificationType{}}
		delivery := &stubDelivery{}
		svc := newService(repo, delivery)

		err := svc.handleEvent(context.Background(), events.NewCrisisDetected(userID.String(), "help"))

		assert.NoError(t, err)
		assert.Empty(t, repo.created)
	})

	t.Run("inactive type is skipped", func(t *testing.T) {
		repo := &stubNotificationRepo{
			types: map[string]*model.NotificationType{
				events.TypeCrisisDetected: {
					Code:     events.TypeCrisisDetected,
					IsActive: false,
				},
			},
		}
		delivery := &stubDelivery{}
		svc := newService(repo, delivery)

		err := svc.handleEvent(context.Background(), events.NewCrisisDetected(userID.String(), "help"))

		assert.NoError(t, err)
		assert.Empty(t, repo.created)
	})

	t.Run("pattern alerts are deduped while one is unread", func(t *testing.T) {
		repo := &stubNotificationRepo{
			types: map[string]*model.NotificationType{
				events.TypeConcerningPattern: {
					Code:        events.TypeConcerningPattern,
					DisplayName: "Mood Pattern Check-in",
					Template:    "Average {average_score} over {total_entries} check-ins.",
					IsActive:    true,
				},
			},
			hasUnread: true,
		}
		delivery := &stubDelivery{}
		svc := newService(repo, delivery)

		err := svc.handleEvent(context.Background(), events.NewConcerningPattern(userID.String(), 1.8, 5))

		assert.NoError(t, err)
		assert.Empty(t, repo.created)
		assert.Empty(t, delivery.sent)
	})

	t.Run("payload without user id is dropped", func(t *testing.T) {
		repo := &stubNotificationRepo{
			types: map[string]*model.NotificationType{
				events.TypeCrisisDetected: {
					Code:     events.TypeCrisisDetected,
					IsActive: true,
				},
			},
		}
		delivery := &stubDelivery{}
		svc := newService(repo, delivery)

		evt := events.BaseEvent{
			Type:       events.TypeCrisisDetected,
			Data:       map[string]interface{}{},
			OccurredAt: time.Now(),
		}
		err := svc.handleEvent(context.Background(), evt)

		assert.NoError(t, err)
		assert.Empty(t, repo.created)
	})
}
