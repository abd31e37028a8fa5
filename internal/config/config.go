package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	Anthropic       string
	ElevenLabs      string
	ElevenLabsVoice string
	MoodTopic       string // Mood-logged topic
}

type AIConfig struct {
	LLMProvider      string // "anthropic" or "ollama"
	LLMModel         string
	OllamaBaseURL    string
	AnthropicBaseURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			Anthropic:       getEnv("ANTHROPIC_API_KEY", ""),
			ElevenLabs:      getEnv("ELEVENLABS_API_KEY", ""),
			ElevenLabsVoice: getEnv("ELEVENLABS_VOICE_ID", ""),
			MoodTopic:       getEnv("MOOD_LOGGED_TOPIC_NAME", "MOOD_LOGGED"),
		},
		Ai: AIConfig{
			LLMProvider:      getEnv("LLM_PROVIDER", "anthropic"),
			LLMModel:         getEnv("LLM_MODEL", "claude-3-5-haiku-latest"),
			OllamaBaseURL:    getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			AnthropicBaseURL: getEnv("ANTHROPIC_BASE_URL", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
