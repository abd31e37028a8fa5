package service

import (
	"context"
	"time"

	"bloompath-be/internal/dto"
	"bloompath-be/internal/pkg/serverutils"
	"bloompath-be/internal/repository/specification"
	"bloompath-be/internal/repository/unitofwork"
	"bloompath-be/pkg/insight"
	"bloompath-be/pkg/scoring"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

type IInsightService interface {
	Weekly(ctx context.Context, userId uuid.UUID) (*dto.WeeklyInsightsResponse, error)
}

type insightService struct {
	uowFactory   unitofwork.RepositoryFactory
	generator    *insight.Generator
	summaryCache *gocache.Cache
}

func NewInsightService(
	uowFactory unitofwork.RepositoryFactory,
	generator *insight.Generator,
	summaryCache *gocache.Cache,
) IInsightService {
	return &insightService{
		uowFactory:   uowFactory,
		generator:    generator,
		summaryCache: summaryCache,
	}
}

func (c *insightService) Weekly(ctx context.Context, userId uuid.UUID) (*dto.WeeklyInsightsResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewHttpError(404, "User not found")
	}

	entries, err := uow.MoodEntryRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.CreatedSince{Since: time.Now().AddDate(0, 0, -7)},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	samples := make([]scoring.MoodSample, 0, len(entries))
	for _, entry := range entries {
		samples = append(samples, scoring.MoodSample{
			Score:     entry.Score,
			Emotions:  entry.Emotions,
			CreatedAt: entry.CreatedAt,
		})
	}
	agg := scoring.AggregateWeek(samples)

	latest, err := uow.EPDSScreeningRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	epdsScore := -1
	var epdsData *dto.InsightScreeningSummary
	if latest != nil {
		epdsScore = latest.TotalScore
		epdsData = &dto.InsightScreeningSummary{
			TotalScore: latest.TotalScore,
			RiskLevel:  string(latest.RiskLevel),
			CreatedAt:  latest.CreatedAt,
		}
	}

	// The summary is the only LLM call on this path; memoize it per
	// user so dashboard refreshes stay cheap. Writes invalidate.
	cacheKey := userId.String()
	var aiSummary string
	if cached, ok := c.summaryCache.Get(cacheKey); ok {
		aiSummary = cached.(string)
	} else {
		aiSummary = c.generator.WeeklySummary(ctx, samples, epdsScore, user.WeekNumber)
		c.summaryCache.Set(cacheKey, aiSummary, gocache.DefaultExpiration)
	}

	entryResponses := make([]dto.MoodEntryResponse, 0, len(entries))
	for _, entry := range entries {
		entryResponses = append(entryResponses, toMoodEntryResponse(entry))
	}

	return &dto.WeeklyInsightsResponse{
		Entries: entryResponses,
		Stats: dto.InsightStats{
			AverageScore:      agg.AverageScore,
			TotalEntries:      agg.TotalEntries,
			TopEmotions:       agg.TopEmotions,
			ConcerningPattern: agg.ConcerningPattern,
		},
		AiSummary:  aiSummary,
		WeekNumber: user.WeekNumber,
		EpdsData:   epdsData,
	}, nil
}
