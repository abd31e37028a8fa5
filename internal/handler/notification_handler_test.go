package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"bloompath-be/internal/model"
	"bloompath-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type stubNotificationRepo struct {
	notifications []model.Notification
	unread        int64
}

func (r *stubNotificationRepo) CreateNotification(ctx context.Context, n *model.Notification) error {
	return nil
}

func (r *stubNotificationRepo) GetNotificationsByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	return r.notifications, int64(len(r.notifications)), nil
}

func (r *stubNotificationRepo) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.unread, nil
}

func (r *stubNotificationRepo) HasUnreadOfTypeSince(ctx context.Context, userID uuid.UUID, typeCode string, since time.Time) (bool, error) {
	return false, nil
}

func (r *stubNotificationRepo) MarkAsRead(ctx context.Context, notificationID uuid.UUID) error {
	return nil
}

func (r *stubNotificationRepo) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return nil
}

func (r *stubNotificationRepo) GetNotificationTypeByCode(ctx context.Context, code string) (*model.NotificationType, error) {
	return nil, nil
}

func newTestApp(repo *stubNotificationRepo) *fiber.App {
	svc := service.NewNotificationService(repo, nil, nil, noopLogger{})
	h := NewNotificationHandler(svc, nil, noopLogger{})

	app := fiber.New()
	h.RegisterRoutes(app.Group("/api"))
	return app
}

func TestGetNotificationsPagination(t *testing.T) {
	userID := uuid.New()
	repo := &stubNotificationRepo{
		notifications: []model.Notification{{ID: uuid.New(), UserID: userID, Title: "Mood Pattern Check-in"}},
	}
	app := newTestApp(repo)

	tests := []struct {
		name     string
		query    string
		wantPage float64
	}{
		{"defaults", "", 1},
		{"second page", "&limit=10&offset=10", 2},
		{"zero limit falls back to default", "&limit=0", 1},
		{"negative limit falls back to default", "&limit=-5", 1},
		{"negative offset clamped", "&limit=10&offset=-20", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := fmt.Sprintf("/api/notifications/v1/?user_id=%s%s", userID, tt.query)
			resp, err := app.Test(httptest.NewRequest("GET", url, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantPage, body["page"])
			assert.Equal(t, float64(1), body["total"])
		})
	}
}

func TestGetNotificationsInvalidUserId(t *testing.T) {
	app := newTestApp(&stubNotificationRepo{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/notifications/v1/?user_id=not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetUnreadCount(t *testing.T) {
	app := newTestApp(&stubNotificationRepo{unread: 3})

	url := "/api/notifications/v1/unread-count?user_id=" + uuid.NewString()
	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(3), body["count"])
}
