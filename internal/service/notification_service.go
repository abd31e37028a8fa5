package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"bloompath-be/internal/model"
	"bloompath-be/internal/pkg/logger"
	"bloompath-be/internal/repository"
	"bloompath-be/pkg/events"
	pktNats "bloompath-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
	Broadcast(notification model.Notification)
}

type NotificationService struct {
	repo       repository.NotificationRepository
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(repo repository.NotificationRepository, sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		repo:       repo,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the alert bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("alerts.>", "alert-notification-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start alert subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to alerts.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	typeCode := event.EventType()
	s.logger.Info("NotificationService", fmt.Sprintf("Processing alert: %s", typeCode), map[string]interface{}{"type": typeCode})

	config, err := s.repo.GetNotificationTypeByCode(ctx, typeCode)
	if err != nil {
		return err // NATS will retry
	}
	if config == nil {
		s.logger.Warn("NotificationService", fmt.Sprintf("Config not found for code: '%s'", typeCode), nil)
		return nil
	}
	if !config.IsActive {
		s.logger.Info("NotificationService", fmt.Sprintf("Notification type '%s' is inactive", typeCode), nil)
		return nil
	}

	uidStr, ok := event.Payload()["user_id"].(string)
	if !ok {
		s.logger.Warn("NotificationService", fmt.Sprintf("No user_id in payload for alert %s", typeCode), nil)
		return nil
	}
	userID, err := uuid.Parse(uidStr)
	if err != nil {
		s.logger.Warn("NotificationService", "Invalid user_id in alert payload", map[string]interface{}{"user_id": uidStr})
		return nil
	}

	// Pattern alerts fire on every check-in while the window stays low.
	// One unread alert per day is enough.
	if typeCode == events.TypeConcerningPattern {
		now := time.Now()
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		exists, err := s.repo.HasUnreadOfTypeSince(ctx, userID, typeCode, midnight)
		if err != nil {
			return err
		}
		if exists {
			s.logger.Info("NotificationService", "Suppressing duplicate pattern alert", map[string]interface{}{"user_id": userID})
			return nil
		}
	}

	notif := s.buildNotification(userID, config, event)

	if err := s.repo.CreateNotification(ctx, &notif); err != nil {
		s.logger.Error("NotificationService", fmt.Sprintf("Error saving notification for user %s", userID), map[string]interface{}{"error": err})
		return err
	}

	if s.delivery != nil {
		s.delivery.Send(userID, notif)
	}

	return nil
}

func (s *NotificationService) buildNotification(userID uuid.UUID, config *model.NotificationType, event events.Event) model.Notification {
	// Simple template engine: {key} placeholders filled from the payload.
	msg := config.Template
	payload := event.Payload()

	for k, v := range payload {
		placeholder := fmt.Sprintf("{%s}", k)
		valStr := fmt.Sprintf("%v", v)
		msg = strings.ReplaceAll(msg, placeholder, valStr)
	}

	metaJSON, _ := json.Marshal(payload)

	return model.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		TypeCode:  config.Code,
		Title:     config.DisplayName,
		Message:   msg,
		Metadata:  datatypes.JSON(metaJSON),
		CreatedAt: time.Now(),
		IsRead:    false,
	}
}

// GetNotifications fetches notifications for a user.
func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	return s.repo.GetNotificationsByUserID(ctx, userID, limit, offset)
}

// GetUnreadCount fetches unread count.
func (s *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.GetUnreadCount(ctx, userID)
}

// MarkAsRead marks a notification as read.
func (s *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, id)
}

// MarkAllAsRead marks all notifications as read for a user.
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}
