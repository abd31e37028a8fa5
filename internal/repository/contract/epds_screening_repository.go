package contract

import (
	"context"

	"bloompath-be/internal/entity"
	"bloompath-be/internal/repository/specification"

	"github.com/google/uuid"
)

type EPDSScreeningRepository interface {
	Create(ctx context.Context, screening *entity.EPDSScreening) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EPDSScreening, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EPDSScreening, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
