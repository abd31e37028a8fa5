package service

import (
	"context"
	"time"

	"bloompath-be/internal/dto"
	"bloompath-be/internal/pkg/serverutils"
	"bloompath-be/internal/repository/specification"
	"bloompath-be/internal/repository/unitofwork"
	"bloompath-be/pkg/insight"
)

type IPartnerService interface {
	Generate(ctx context.Context, req *dto.PartnerMessageRequest) (*dto.PartnerMessageResponse, error)
}

type partnerService struct {
	uowFactory unitofwork.RepositoryFactory
	generator  *insight.Generator
}

func NewPartnerService(uowFactory unitofwork.RepositoryFactory, generator *insight.Generator) IPartnerService {
	return &partnerService{
		uowFactory: uowFactory,
		generator:  generator,
	}
}

// Generate drafts a supportive message the partner can send. Nothing is
// persisted; the draft is theirs to edit and deliver.
func (c *partnerService) Generate(ctx context.Context, req *dto.PartnerMessageRequest) (*dto.PartnerMessageResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.UserId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewHttpError(404, "User not found")
	}

	message := c.generator.PartnerMessage(ctx, req.Concern, user.WeekNumber)

	return &dto.PartnerMessageResponse{
		Message:   message,
		CreatedAt: time.Now(),
	}, nil
}
