package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	SMTP      SMTPConfig
	Agent     AgentConfig
	Crossmint CrossmintConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
	// TestRecipient reroutes every outgoing cold email to one inbox.
	// Leave empty in production to deliver to real contacts.
	TestRecipient string
	// SummaryEmail receives a workflow summary after each automated
	// campaign run. Empty disables the summary.
	SummaryEmail string
}

// AgentConfig points at the external sales-agent backend and tunes the
// connectivity probe against it.
type AgentConfig struct {
	BaseURL       string
	Timeout       time.Duration
	ProbeInterval time.Duration
	SalesAgentID  string
	DemoMode      bool
}

type CrossmintConfig struct {
	APIKey      string
	ProjectID   string
	Environment string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:          getEnv("SMTP_HOST", ""),
			Port:          getEnvAsInt("SMTP_PORT", 587),
			Email:         getEnv("SMTP_EMAIL", ""),
			Password:      getEnv("SMTP_PASSWORD", ""),
			SenderName:    getEnv("SMTP_SENDER_NAME", "Digital Sales Agent"),
			TestRecipient: getEnv("SMTP_TEST_RECIPIENT", ""),
			SummaryEmail:  getEnv("SMTP_SUMMARY_EMAIL", ""),
		},
		Agent: AgentConfig{
			BaseURL:       getEnv("AGENT_BACKEND_URL", "http://localhost:8000"),
			Timeout:       getEnvAsDuration("AGENT_TIMEOUT", 10*time.Second),
			ProbeInterval: getEnvAsDuration("AGENT_PROBE_INTERVAL", 30*time.Second),
			SalesAgentID:  getEnv("SALES_AGENT_ID", "default_agent"),
			DemoMode:      getEnvAsBool("DEMO_MODE", false),
		},
		Crossmint: CrossmintConfig{
			APIKey:      getEnv("CROSSMINT_API_KEY", ""),
			ProjectID:   getEnv("CROSSMINT_PROJECT_ID", ""),
			Environment: getEnv("CROSSMINT_ENVIRONMENT", "staging"),
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

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
