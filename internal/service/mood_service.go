package service

import (
	"context"
	"encoding/json"
	"time"

	"bloompath-be/internal/dto"
	"bloompath-be/internal/entity"
	"bloompath-be/internal/pkg/serverutils"
	"bloompath-be/internal/repository/specification"
	"bloompath-be/internal/repository/unitofwork"
	"bloompath-be/pkg/insight"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

type IMoodService interface {
	Submit(ctx context.Context, req *dto.SubmitMoodRequest) (*dto.MoodEntryResponse, error)
	History(ctx context.Context, userId uuid.UUID, days int) ([]dto.MoodEntryResponse, error)
	Today(ctx context.Context, userId uuid.UUID) (*dto.MoodEntryResponse, error)
}

type moodService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	generator        *insight.Generator
	summaryCache     *gocache.Cache
}

func NewMoodService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	generator *insight.Generator,
	summaryCache *gocache.Cache,
) IMoodService {
	return &moodService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		generator:        generator,
		summaryCache:     summaryCache,
	}
}

func (c *moodService) Submit(ctx context.Context, req *dto.SubmitMoodRequest) (*dto.MoodEntryResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.UserId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewHttpError(404, "User not found")
	}

	notes := ""
	if req.Notes != nil {
		notes = *req.Notes
	}
	aiInsight := c.generator.MoodInsight(ctx, req.Score, req.Emotions, notes, user.WeekNumber)

	entry := entity.MoodEntry{
		Id:        uuid.New(),
		UserId:    req.UserId,
		Score:     req.Score,
		Emotions:  req.Emotions,
		Notes:     req.Notes,
		AiInsight: aiInsight,
		CreatedAt: time.Now(),
	}

	if err := uow.MoodEntryRepository().Create(ctx, &entry); err != nil {
		return nil, err
	}

	// New data invalidates the memoized weekly summary.
	c.summaryCache.Delete(req.UserId.String())

	msgPayload := dto.MoodLoggedMessage{
		EntryId: entry.Id,
		UserId:  entry.UserId,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return nil, err
	}

	if err := c.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	res := toMoodEntryResponse(&entry)
	return &res, nil
}

func (c *moodService) History(ctx context.Context, userId uuid.UUID, days int) ([]dto.MoodEntryResponse, error) {
	if days <= 0 {
		days = 7
	}
	uow := c.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.MoodEntryRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.CreatedSince{Since: time.Now().AddDate(0, 0, -days)},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.MoodEntryResponse, 0, len(entries))
	for _, entry := range entries {
		res = append(res, toMoodEntryResponse(entry))
	}
	return res, nil
}

// Today returns the latest entry logged since local midnight, or nil
// when the user has not checked in yet.
func (c *moodService) Today(ctx context.Context, userId uuid.UUID) (*dto.MoodEntryResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	entry, err := uow.MoodEntryRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.CreatedSince{Since: midnight},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	res := toMoodEntryResponse(entry)
	return &res, nil
}

func toMoodEntryResponse(entry *entity.MoodEntry) dto.MoodEntryResponse {
	return dto.MoodEntryResponse{
		Id:        entry.Id,
		Score:     entry.Score,
		Emotions:  entry.Emotions,
		Notes:     entry.Notes,
		AiInsight: entry.AiInsight,
		CreatedAt: entry.CreatedAt,
	}
}
