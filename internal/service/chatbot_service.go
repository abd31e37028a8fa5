package service

import (
	"context"
	"fmt"
	"time"

	"bloompath-be/internal/constant"
	"bloompath-be/internal/dto"
	"bloompath-be/internal/entity"
	"bloompath-be/internal/pkg/serverutils"
	"bloompath-be/internal/repository/specification"
	"bloompath-be/internal/repository/unitofwork"
	"bloompath-be/pkg/events"
	"bloompath-be/pkg/insight"
	"bloompath-be/pkg/llm"
	pktNats "bloompath-be/pkg/nats"

	"github.com/google/uuid"
)

// chatHistoryWindow is how many stored messages are replayed to the
// model as conversation context.
const chatHistoryWindow = 10

type IChatbotService interface {
	Send(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	History(ctx context.Context, userId uuid.UUID) ([]dto.ChatMessageResponse, error)
	Clear(ctx context.Context, userId uuid.UUID) error
}

type chatbotService struct {
	uowFactory     unitofwork.RepositoryFactory
	generator      *insight.Generator
	eventPublisher *pktNats.Publisher
}

func NewChatbotService(
	uowFactory unitofwork.RepositoryFactory,
	generator *insight.Generator,
	eventPublisher *pktNats.Publisher,
) IChatbotService {
	return &chatbotService{
		uowFactory:     uowFactory,
		generator:      generator,
		eventPublisher: eventPublisher,
	}
}

func (c *chatbotService) Send(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.UserId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewHttpError(404, "User not found")
	}

	userMsg := entity.ChatMessage{
		Id:        uuid.New(),
		UserId:    req.UserId,
		Role:      constant.ChatMessageRoleUser,
		Content:   req.Message,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, &userMsg); err != nil {
		return nil, err
	}

	history, err := c.recentHistory(ctx, uow, req.UserId, userMsg.Id)
	if err != nil {
		return nil, err
	}

	reply, crisisDetected := c.generator.ChatReply(ctx, req.Message, history, user.WeekNumber)

	assistantMsg := entity.ChatMessage{
		Id:        uuid.New(),
		UserId:    req.UserId,
		Role:      constant.ChatMessageRoleAssistant,
		Content:   reply,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, &assistantMsg); err != nil {
		return nil, err
	}

	if crisisDetected && c.eventPublisher != nil {
		evt := events.NewCrisisDetected(req.UserId.String(), truncatePreview(req.Message, 120))
		// The alert is auxiliary; the user already received the safety
		// response either way.
		if err := c.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.TypeCrisisDetected, err)
		}
	}

	return &dto.SendChatResponse{
		Id:             assistantMsg.Id,
		Role:           assistantMsg.Role,
		Content:        assistantMsg.Content,
		CrisisDetected: crisisDetected,
		CreatedAt:      assistantMsg.CreatedAt,
	}, nil
}

// recentHistory replays the last messages oldest-first, excluding the
// message that was just persisted (it is passed to the model as the
// live prompt, not as history).
func (c *chatbotService) recentHistory(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, excludeId uuid.UUID) ([]llm.Message, error) {
	recent, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: chatHistoryWindow},
	)
	if err != nil {
		return nil, err
	}

	history := make([]llm.Message, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		if recent[i].Id == excludeId {
			continue
		}
		history = append(history, llm.Message{
			Role:    recent[i].Role,
			Content: recent[i].Content,
		})
	}
	return history, nil
}

func (c *chatbotService) History(ctx context.Context, userId uuid.UUID) ([]dto.ChatMessageResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, msg := range messages {
		res = append(res, dto.ChatMessageResponse{
			Id:        msg.Id,
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}
	return res, nil
}

func (c *chatbotService) Clear(ctx context.Context, userId uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	return uow.ChatMessageRepository().DeleteByUserId(ctx, userId)
}

func truncatePreview(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
