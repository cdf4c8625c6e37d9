package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	AIProvider      string `env:"AI_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL   string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	OpenAIModel     string `env:"OPENAI_MODEL" envDefault:"gpt-4"`
	GrokAPIKey      string `env:"GROK_API_KEY"`
	GrokBaseURL     string `env:"GROK_BASE_URL" envDefault:"https://api.x.ai/v1"`
	GrokModel       string `env:"GROK_MODEL" envDefault:"grok-beta"`
	AnthropicAPIKey string `env:"CLAUDE_API_KEY"`
	AnthropicModel  string `env:"CLAUDE_MODEL" envDefault:"claude-3-5-sonnet-20241022"`
	EmbeddingModel  string `env:"EMBEDDING_MODEL" envDefault:"text-embedding-3-small"`

	ConversationsDir string `env:"CONVERSATIONS_DIR" envDefault:"data/conversations"`

	RedisAddr         string `env:"REDIS_ADDR"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
	ChatRateLimit     int    `env:"CHAT_RATE_LIMIT" envDefault:"30"`
	ChatRateWindowSec int    `env:"CHAT_RATE_WINDOW_SEC" envDefault:"60"`

	JWTSecret         string `env:"JWT_SECRET"`
	AdminEmail        string `env:"ADMIN_EMAIL"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
