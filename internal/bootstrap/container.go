package bootstrap

import (
	"context"
	"log"
	"time"

	"bloompath-be/internal/config"
	"bloompath-be/internal/controller"
	"bloompath-be/internal/handler"
	"bloompath-be/internal/pkg/logger"
	"bloompath-be/internal/repository/implementation"
	"bloompath-be/internal/repository/unitofwork"
	"bloompath-be/internal/service"
	"bloompath-be/internal/websocket"
	"bloompath-be/pkg/insight"
	"bloompath-be/pkg/llm/factory"
	"bloompath-be/pkg/speech/elevenlabs"

	pktNats "bloompath-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	UserController    controller.IUserController
	MoodController    controller.IMoodController
	ChatController    controller.IChatController
	EPDSController    controller.IEPDSController
	InsightController controller.IInsightController
	PartnerController controller.IPartnerController
	SpeechController  controller.ISpeechController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Initialize LLM Provider based on Config
	llmProviderName := cfg.Ai.LLMProvider
	if llmProviderName == "anthropic" && cfg.Keys.Anthropic == "" {
		log.Printf("[WARN] ANTHROPIC_API_KEY not set, falling back to Ollama")
		llmProviderName = "ollama"
	}
	baseURL := cfg.Ai.OllamaBaseURL
	if llmProviderName == "anthropic" {
		baseURL = cfg.Ai.AnthropicBaseURL
	}
	llmProvider, err := factory.NewLLMProvider(
		llmProviderName,
		cfg.Ai.LLMModel,
		baseURL,
		cfg.Keys.Anthropic,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", llmProviderName, cfg.Ai.LLMModel)

	generator := insight.NewGenerator(llmProvider, log.Default())

	// Weekly summaries are memoized briefly; writes invalidate early.
	summaryCache := gocache.New(10*time.Minute, 30*time.Minute)

	// Text-to-speech (optional; endpoint answers 503 when unconfigured)
	voiceID := cfg.Keys.ElevenLabsVoice
	if voiceID == "" {
		voiceID = elevenlabs.DefaultVoiceID
	}
	ttsClient := elevenlabs.NewClient(cfg.Keys.ElevenLabs, voiceID)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Keys.MoodTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.MoodTopic,
		uowFactory,
		natsPub,
	)

	userService := service.NewUserService(uowFactory)
	moodService := service.NewMoodService(uowFactory, publisherService, generator, summaryCache)
	chatbotService := service.NewChatbotService(uowFactory, generator, natsPub)
	screeningService := service.NewScreeningService(uowFactory, generator, natsPub, summaryCache)
	insightService := service.NewInsightService(uowFactory, generator, summaryCache)
	partnerService := service.NewPartnerService(uowFactory, generator)
	speechService := service.NewSpeechService(ttsClient)

	// 3.5 Notification System Infrastructure
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	// Handler
	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	sysLogger.Info("Bootstrap", "Container initialized", map[string]interface{}{
		"llm_provider": llmProviderName,
		"tts_enabled":  ttsClient.Configured(),
	})

	// 4. Controllers
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
		UserController:      controller.NewUserController(userService),
		MoodController:      controller.NewMoodController(moodService),
		ChatController:      controller.NewChatController(chatbotService),
		EPDSController:      controller.NewEPDSController(screeningService),
		InsightController:   controller.NewInsightController(insightService),
		PartnerController:   controller.NewPartnerController(partnerService),
		SpeechController:    controller.NewSpeechController(speechService),

		ConsumerService: consumerService,
	}
}
