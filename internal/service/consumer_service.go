package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"bloompath-be/internal/dto"
	"bloompath-be/internal/repository/specification"
	"bloompath-be/internal/repository/unitofwork"
	"bloompath-be/pkg/events"
	pktNats "bloompath-be/pkg/nats"
	"bloompath-be/pkg/scoring"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService watches the mood-logged topic and re-scores the
// trailing 7-day window after each check-in. Alerting off the write
// path keeps the submit endpoint fast.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.MoodLoggedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Re-scoring mood window for user %s", payload.UserId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.MoodEntryRepository().FindAll(ctx,
		specification.OwnedBy{UserID: payload.UserId},
		specification.CreatedSince{Since: time.Now().AddDate(0, 0, -7)},
	)
	if err != nil {
		log.Printf("[ERROR] Failed to load mood window for user %s: %v", payload.UserId, err)
		msg.Nack()
		return
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
	if agg.ConcerningPattern && cs.eventPublisher != nil {
		evt := events.NewConcerningPattern(payload.UserId.String(), agg.AverageScore, agg.TotalEntries)
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[ERROR] Failed to publish %s event: %v", events.TypeConcerningPattern, err)
			msg.Nack()
			return
		}
		log.Printf("[INFO] Concerning pattern flagged for user %s (avg %.1f over %d entries)",
			payload.UserId, agg.AverageScore, agg.TotalEntries)
	}

	msg.Ack()
}
