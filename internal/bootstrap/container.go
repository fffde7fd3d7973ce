package bootstrap

import (
	"context"
	"log"

	"hadith-voice-be/internal/config"
	"hadith-voice-be/internal/controller"
	"hadith-voice-be/internal/handler"
	"hadith-voice-be/internal/pkg/logger"
	"hadith-voice-be/internal/repository/implementation"
	"hadith-voice-be/internal/service"
	"hadith-voice-be/internal/websocket"
	"hadith-voice-be/pkg/embedding"
	"hadith-voice-be/pkg/llm/factory"
	"hadith-voice-be/pkg/rag"
	"hadith-voice-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	TokenController   controller.ITokenController
	AgentController   controller.IAgentController
	SessionController controller.ISessionController
	LookupController  controller.ILookupController

	// WebSocket surface
	TranscriptHandler *handler.TranscriptHandler
	WebSocketHub      *websocket.Hub

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIApiKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Retrieval Pipeline
	chunkRepo := implementation.NewChunkRepository(db)
	retriever := rag.NewRetriever(embeddingProvider, chunkRepo, cfg.Rag.TopK)
	summarizer := rag.NewSummarizer(llmProvider, cfg.Ai.SummaryModel)
	historyStore := store.NewHistoryStore()

	// 5. Redis (optional; enables multi-instance transcript fan-out)
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v. Running single-instance", err)
			rdb = nil
		}
	}

	// 6. WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/transcript.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 7. Services
	publisherService := service.NewPublisherService(cfg.App.TranscriptTopic, pubSub)
	transcriptService := service.NewTranscriptService(wsHub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.TranscriptTopic, transcriptService)

	tokenService := service.NewTokenService(cfg.LiveKit)
	agentService := service.NewAgentService(
		retriever,
		summarizer,
		llmProvider,
		historyStore,
		publisherService,
		sysLogger,
		cfg.Agent.Name,
		cfg.Agent.Personality,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMTemperature,
		cfg.Rag.TimeoutSeconds,
	)
	sessionService := service.NewSessionService(agentService, transcriptService, sysLogger)

	// 8. Controllers
	return &Container{
		TokenController:   controller.NewTokenController(tokenService),
		AgentController:   controller.NewAgentController(agentService, sessionService, transcriptService),
		SessionController: controller.NewSessionController(sessionService),
		LookupController:  controller.NewLookupController(),

		TranscriptHandler: handler.NewTranscriptHandler(transcriptService, wsHub, cfg.LiveKit, wsLogger),
		WebSocketHub:      wsHub,

		ConsumerService: consumerService,
	}
}
