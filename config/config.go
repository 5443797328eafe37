package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig
	Timezone    string

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Storage and auth
	Database DatabaseConfig
	JWT      JWTConfig

	// Assistant
	Intent IntentConfig
	Chat   ChatConfig

	// Optional integrations
	Redis          RedisConfig
	NATS           NATSConfig
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

type DatabaseConfig struct {
	Path string
}

type JWTConfig struct {
	Secret          string
	Issuer          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type IntentConfig struct {
	Threshold float64
}

type ChatConfig struct {
	MaxMessageHistory int
	SessionTTL        time.Duration
	SessionSize       int
}

// RedisConfig enables the shared session store when URL is set.
type RedisConfig struct {
	URL string
}

// NATSConfig enables the intent request/reply service when URL is set.
type NATSConfig struct {
	URL     string
	Subject string
	Timeout time.Duration
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Timezone = viper.GetString("timezone")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	// Storage and auth
	cfg.Database.Path = viper.GetString("database.path")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Database.Path = strings.TrimPrefix(dbURL, "sqlite://")
	}
	cfg.JWT.Secret = viper.GetString("jwt.secret")
	if secret := viper.GetString("jwt_secret_key"); secret != "" {
		cfg.JWT.Secret = secret
	}
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.AccessTokenTTL = viper.GetDuration("jwt.access_token_ttl")
	cfg.JWT.RefreshTokenTTL = viper.GetDuration("jwt.refresh_token_ttl")

	// Assistant
	cfg.Intent.Threshold = viper.GetFloat64("intent.threshold")
	cfg.Chat.MaxMessageHistory = viper.GetInt("chat.max_message_history")
	cfg.Chat.SessionTTL = viper.GetDuration("chat.session_ttl")
	cfg.Chat.SessionSize = viper.GetInt("chat.session_size")

	// Optional integrations
	cfg.Redis.URL = viper.GetString("redis.url")
	cfg.NATS.URL = viper.GetString("nats.url")
	cfg.NATS.Subject = viper.GetString("nats.subject")
	cfg.NATS.Timeout = viper.GetDuration("nats.timeout")

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.JWT.Secret == "" && cfg.Environment.Name != "development" && cfg.Environment.Name != "test" {
		return errors.New("jwt.secret is required outside development")
	}
	if cfg.Intent.Threshold < 0 {
		return fmt.Errorf("intent.threshold must be >= 0, got %v", cfg.Intent.Threshold)
	}
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("timezone", "UTC")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_minute", 60)
	viper.SetDefault("rate_limit.burst", 0)

	viper.SetDefault("database.path", "todo.db")
	viper.SetDefault("jwt.issuer", "todo-ai-chatbot")
	viper.SetDefault("jwt.access_token_ttl", "60m")
	viper.SetDefault("jwt.refresh_token_ttl", "168h")

	viper.SetDefault("intent.threshold", 0.1)
	viper.SetDefault("chat.max_message_history", 50)
	viper.SetDefault("chat.session_ttl", "30m")
	viper.SetDefault("chat.session_size", 10000)

	viper.SetDefault("nats.subject", "todo.intent.classify")
	viper.SetDefault("nats.timeout", "5s")
}
