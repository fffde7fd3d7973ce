package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	LiveKit LiveKitConfig
	Store   StoreConfig
	Ai      AIConfig
	Rag     RagConfig
	Agent   AgentConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
	TranscriptTopic    string
}

type LiveKitConfig struct {
	ApiKey    string
	ApiSecret string
	URL       string
}

type StoreConfig struct {
	Connection string
	VectorDim  int
}

type AIConfig struct {
	OpenAIApiKey      string
	GoogleGemini      string
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaModel       string
	LLMProvider       string // "openai" or "ollama"
	LLMModel          string // e.g. "gpt-4o", "llama3"
	LLMTemperature    string // optional, empty means provider default
	SummaryModel      string // small model for context condensation
	SttModel          string
	TtsModel          string
	TtsVoice          string
}

type RagConfig struct {
	TopK           int
	ChunkSize      int
	ChunkOverlap   int
	TimeoutSeconds int
}

type AgentConfig struct {
	Name        string
	Personality string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8080"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			TranscriptTopic:    getEnv("TRANSCRIPT_TOPIC", "TRANSCRIPT_TURN_COMPLETED"),
		},
		LiveKit: LiveKitConfig{
			ApiKey:    getEnv("LIVEKIT_API_KEY", ""),
			ApiSecret: getEnv("LIVEKIT_API_SECRET", ""),
			URL:       getEnv("LIVEKIT_URL", ""),
		},
		Store: StoreConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
			VectorDim:  getEnvAsInt("EMBEDDING_DIMENSION", 768),
		},
		Ai: AIConfig{
			OpenAIApiKey:      getEnv("OPENAI_API_KEY", ""),
			GoogleGemini:      getEnv("GOOGLE_GEMINI_API_KEY", ""),
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "openai"),
			LLMModel:          getEnv("LLM_MODEL", "gpt-4o"),
			LLMTemperature:    getEnv("LLM_TEMPERATURE", ""),
			SummaryModel:      getEnv("SUMMARY_MODEL", "gpt-4o-mini"),
			SttModel:          getEnv("STT_MODEL", "whisper-1"),
			TtsModel:          getEnv("TTS_MODEL", "tts-1"),
			TtsVoice:          getEnv("TTS_VOICE", "alloy"),
		},
		Rag: RagConfig{
			TopK:           getEnvAsInt("TOP_K_RESULTS", 5),
			ChunkSize:      getEnvAsInt("CHUNK_SIZE", 1000),
			ChunkOverlap:   getEnvAsInt("CHUNK_OVERLAP", 200),
			TimeoutSeconds: getEnvAsInt("RAG_TIMEOUT_SECONDS", 10),
		},
		Agent: AgentConfig{
			Name: getEnv("AGENT_NAME", "Sheikh Abdullah"),
			Personality: getEnv(
				"AGENT_PERSONALITY",
				"You are a knowledgeable Islamic scholar specializing in Hadith sciences.",
			),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
