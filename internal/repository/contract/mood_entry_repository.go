package contract

import (
	"context"

	"bloompath-be/internal/entity"
	"bloompath-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MoodEntryRepository interface {
	Create(ctx context.Context, entry *entity.MoodEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MoodEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MoodEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
