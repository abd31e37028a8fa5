package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"bloompath-be/internal/entity"
	"bloompath-be/internal/repository/specification"
	"bloompath-be/internal/repository/unitofwork"
	"bloompath-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.MoodEntryRepository())
	assert.NotNil(t, uow.ChatMessageRepository())
	assert.NotNil(t, uow.EPDSScreeningRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Mood Entry Round Trip", func(t *testing.T) {
		ctx := context.Background()

		due := time.Now().AddDate(0, 0, 70)
		user := &entity.User{
			Id:         uuid.New(),
			Name:       "Integration Test User",
			DueDate:    &due,
			WeekNumber: 30,
			CreatedAt:  time.Now(),
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		notes := "slept badly"
		entry := &entity.MoodEntry{
			Id:        uuid.New(),
			UserId:    user.Id,
			Score:     2,
			Emotions:  []string{"tired", "anxious"},
			Notes:     &notes,
			AiInsight: "rest when you can",
			CreatedAt: time.Now(),
		}
		err = uow.MoodEntryRepository().Create(ctx, entry)
		assert.NoError(t, err)

		found, err := uow.MoodEntryRepository().FindOne(ctx,
			specification.ByID{ID: entry.Id},
			specification.OwnedBy{UserID: user.Id},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, entry.Score, found.Score)
			assert.Equal(t, []string{"tired", "anxious"}, found.Emotions)
		}

		// Cleanup
		assert.NoError(t, uow.MoodEntryRepository().Delete(ctx, entry.Id))
		assert.NoError(t, uow.UserRepository().Delete(ctx, user.Id))
	})

	t.Run("Check EPDS Screening Repository", func(t *testing.T) {
		count, err := uow.EPDSScreeningRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Screening count: %d", count)
	})
}
