package bootstrap

import (
	"context"
	"log"

	"ai-mindsupport-be/internal/config"
	"ai-mindsupport-be/internal/controller"
	"ai-mindsupport-be/internal/pkg/logger"
	"ai-mindsupport-be/internal/pkg/mailer"
	"ai-mindsupport-be/internal/repository/unitofwork"
	"ai-mindsupport-be/internal/service"
	"ai-mindsupport-be/internal/websocket"
	chatevents "ai-mindsupport-be/pkg/chat/events"
	"ai-mindsupport-be/pkg/chat/history"
	"ai-mindsupport-be/pkg/chat/prompt"
	"ai-mindsupport-be/pkg/chat/response"
	"ai-mindsupport-be/pkg/llm/factory"
	"ai-mindsupport-be/pkg/sentiment"

	pktNats "ai-mindsupport-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController controller.IAuthController
	ChatController controller.IChatController
	MoodController controller.IMoodController

	// Background Services (Exposed for main.go to run)
	TurnWorkerService service.ITurnWorkerService

	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
	)

	// 2. Turn Queue
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	// NATS is optional; without it lifecycle events are skipped.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis (websocket fan-out across instances)
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
	wsLogger := logger.NewIsolatedLogger("logs/ws.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 4. Conversational Pipeline
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	scorer := sentiment.NewScorer(sentiment.DefaultLexicon())
	historyLoader := history.NewLoader(uowFactory)
	promptBuilder := prompt.NewBuilder()
	generator := response.NewGenerator(llmProvider)
	turnEventPublisher := chatevents.NewNatsPublisher(natsPub, sysLogger)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.TurnTopicName, pubSub)
	turnWorkerService := service.NewTurnWorkerService(
		pubSub,
		cfg.App.TurnTopicName,
		uowFactory,
		scorer,
		historyLoader,
		promptBuilder,
		generator,
		turnEventPublisher,
		wsHub, // Hub implements TurnDelivery
	)

	authService := service.NewAuthService(uowFactory, emailService)
	chatService := service.NewChatService(uowFactory, publisherService)
	moodService := service.NewMoodService(uowFactory)

	// 6. Controllers
	return &Container{
		AuthController: controller.NewAuthController(authService),
		ChatController: controller.NewChatController(chatService, wsHub, wsLogger),
		MoodController: controller.NewMoodController(moodService),

		TurnWorkerService: turnWorkerService,
		WebSocketHub:      wsHub,
	}
}
