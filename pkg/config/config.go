package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	LLM      LLMConfig
	Analysis AnalysisConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"meeting_intelligence"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// RedisConfig holds the optional derived-row cache configuration
type RedisConfig struct {
	Enabled  bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string        `envconfig:"REDIS_PORT" default:"6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	TTL      time.Duration `envconfig:"REDIS_TTL" default:"24h"`
}

// LLMConfig holds the analysis provider configuration. Groq wins when both
// keys are present, matching the provider preference of the hosted deployment.
type LLMConfig struct {
	GroqAPIKey    string        `envconfig:"GROQ_API_KEY" default:""`
	GroqBaseURL   string        `envconfig:"GROQ_API_URL" default:"https://api.groq.com/openai/v1"`
	GroqModel     string        `envconfig:"GROQ_MODEL" default:"llama-3.3-70b-versatile"`
	OpenAIAPIKey  string        `envconfig:"OPENAI_API_KEY" default:""`
	OpenAIBaseURL string        `envconfig:"OPENAI_API_URL" default:"https://api.openai.com/v1"`
	OpenAIModel   string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	Timeout       time.Duration `envconfig:"LLM_TIMEOUT" default:"40s"`
}

// AnalysisConfig pins the versioning fields recorded with every derived row.
type AnalysisConfig struct {
	SchemaVersion string `envconfig:"ANALYSIS_SCHEMA_VERSION" default:"1"`
	PromptVersion string `envconfig:"ANALYSIS_PROMPT_VERSION" default:"1"`
}

// Provider identifies the resolved LLM provider.
type Provider string

const (
	ProviderGroq   Provider = "groq"
	ProviderOpenAI Provider = "openai"
)

// Load loads configuration from the environment, reading a .env file first
// when one is present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.LLM.GroqAPIKey == "" && c.LLM.OpenAIAPIKey == "" {
		return fmt.Errorf("LLM API key required: set GROQ_API_KEY or OPENAI_API_KEY")
	}
	return nil
}

// ResolveProvider picks the provider, model and credentials the analysis agent
// uses. The choice is made once at startup, never re-derived from ambient state.
func (c *Config) ResolveProvider() (Provider, string, string, string) {
	if c.LLM.GroqAPIKey != "" {
		return ProviderGroq, c.LLM.GroqBaseURL, c.LLM.GroqAPIKey, c.LLM.GroqModel
	}
	return ProviderOpenAI, c.LLM.OpenAIBaseURL, c.LLM.OpenAIAPIKey, c.LLM.OpenAIModel
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
