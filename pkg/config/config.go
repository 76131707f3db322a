package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Whisper    WhisperConfig
	Gemini     GeminiConfig
	Automation AutomationConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
	// RoutePrefix covers the two historical deployments: "/api" and "".
	RoutePrefix string `envconfig:"ROUTE_PREFIX" default:"/api"`
	TempDir     string `envconfig:"TEMP_DIR"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"meetmind"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// WhisperConfig holds transcription engine configuration. Model selects the
// size/quality tradeoff of the loaded model (tiny, base, small, ...).
type WhisperConfig struct {
	URL      string `envconfig:"WHISPER_URL"`
	Model    string `envconfig:"WHISPER_MODEL" default:"ggml-tiny"`
	Language string `envconfig:"WHISPER_LANGUAGE"`
}

// GeminiConfig holds summarization engine configuration
type GeminiConfig struct {
	APIKey string `envconfig:"GOOGLE_API_KEY"`
	Model  string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-pro"`
}

// AutomationConfig holds the outbound automation webhook configuration
type AutomationConfig struct {
	WebhookURL string        `envconfig:"AUTOMATION_WEBHOOK_URL"`
	Timeout    time.Duration `envconfig:"AUTOMATION_WEBHOOK_TIMEOUT" default:"30s"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if config.Server.TempDir == "" {
		config.Server.TempDir = os.TempDir()
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration. Every external collaborator is
// required at startup; the process refuses to start rather than degrading.
func (c *Config) Validate() error {
	if c.Database.Host == "" || c.Database.Name == "" {
		return fmt.Errorf("DB_HOST and DB_NAME are required")
	}
	if c.Whisper.URL == "" {
		return fmt.Errorf("WHISPER_URL is required")
	}
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GOOGLE_API_KEY is required")
	}
	if c.Automation.WebhookURL == "" {
		return fmt.Errorf("AUTOMATION_WEBHOOK_URL is required")
	}
	return nil
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
