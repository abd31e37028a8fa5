package service

import (
	"context"
	"fmt"
	"time"

	"bloompath-be/internal/dto"
	"bloompath-be/internal/entity"
	"bloompath-be/internal/pkg/serverutils"
	"bloompath-be/internal/repository/specification"
	"bloompath-be/internal/repository/unitofwork"
	"bloompath-be/pkg/events"
	"bloompath-be/pkg/insight"
	pktNats "bloompath-be/pkg/nats"
	"bloompath-be/pkg/scoring"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// screeningHistoryLimit caps how many past screenings are returned.
const screeningHistoryLimit = 10

type IScreeningService interface {
	Submit(ctx context.Context, req *dto.SubmitScreeningRequest) (*dto.ScreeningResponse, error)
	History(ctx context.Context, userId uuid.UUID) ([]dto.ScreeningResponse, error)
	Latest(ctx context.Context, userId uuid.UUID) (*dto.ScreeningResponse, error)
}

type screeningService struct {
	uowFactory     unitofwork.RepositoryFactory
	generator      *insight.Generator
	eventPublisher *pktNats.Publisher
	summaryCache   *gocache.Cache
}

func NewScreeningService(
	uowFactory unitofwork.RepositoryFactory,
	generator *insight.Generator,
	eventPublisher *pktNats.Publisher,
	summaryCache *gocache.Cache,
) IScreeningService {
	return &screeningService{
		uowFactory:     uowFactory,
		generator:      generator,
		eventPublisher: eventPublisher,
		summaryCache:   summaryCache,
	}
}

func (c *screeningService) Submit(ctx context.Context, req *dto.SubmitScreeningRequest) (*dto.ScreeningResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.UserId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewHttpError(404, "User not found")
	}

	result, err := scoring.ScoreEPDS(req.ItemScores)
	if err != nil {
		return nil, serverutils.NewHttpError(400, err.Error())
	}
	flagged := scoring.SelfHarmFlagged(req.ItemScores)

	aiInsight := c.generator.EPDSInsight(ctx, result, flagged)

	screening := entity.EPDSScreening{
		Id:         uuid.New(),
		UserId:     req.UserId,
		TotalScore: result.Total,
		ItemScores: req.ItemScores,
		RiskLevel:  result.RiskLevel,
		AiInsight:  aiInsight,
		CreatedAt:  time.Now(),
	}
	if err := uow.EPDSScreeningRepository().Create(ctx, &screening); err != nil {
		return nil, err
	}

	// A fresh screening changes the weekly summary inputs.
	c.summaryCache.Delete(req.UserId.String())

	if flagged && c.eventPublisher != nil {
		evt := events.NewSelfHarmFlagged(req.UserId.String(), result.Total)
		if err := c.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.TypeSelfHarmFlagged, err)
		}
	}

	res := toScreeningResponse(&screening)
	return &res, nil
}

func (c *screeningService) History(ctx context.Context, userId uuid.UUID) ([]dto.ScreeningResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	screenings, err := uow.EPDSScreeningRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: screeningHistoryLimit},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.ScreeningResponse, 0, len(screenings))
	for _, screening := range screenings {
		res = append(res, toScreeningResponse(screening))
	}
	return res, nil
}

// Latest returns the most recent screening, or nil when the user has
// never completed one.
func (c *screeningService) Latest(ctx context.Context, userId uuid.UUID) (*dto.ScreeningResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	screening, err := uow.EPDSScreeningRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if screening == nil {
		return nil, nil
	}

	res := toScreeningResponse(screening)
	return &res, nil
}

func toScreeningResponse(screening *entity.EPDSScreening) dto.ScreeningResponse {
	return dto.ScreeningResponse{
		Id:         screening.Id,
		TotalScore: screening.TotalScore,
		ItemScores: screening.ItemScores,
		RiskLevel:  string(screening.RiskLevel),
		AiInsight:  screening.AiInsight,
		CreatedAt:  screening.CreatedAt,
	}
}
