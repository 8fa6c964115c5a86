package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config aggregates the service configuration.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Chat    ChatConfig
	Booking BookingConfig
}

// ServerConfig describes the HTTP listener and its middleware.
type ServerConfig struct {
	Addr            string
	AllowedOrigins  []string
	RateLimitRPS    float64
	RateLimitBurst  int
	ShutdownTimeout time.Duration
}

// LogConfig selects the zap level and encoder.
type LogConfig struct {
	Level  string
	Format string
}

// ChatConfig controls the simulated assistant.
type ChatConfig struct {
	ReplyDelay time.Duration
}

// BookingConfig controls the booking wizard.
type BookingConfig struct {
	Location *time.Location
}

// environment is the raw variable set, decoded by envconfig.
type environment struct {
	Port               string        `envconfig:"PORT" default:"8080"`
	LogLevel           string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat          string        `envconfig:"LOG_FORMAT" default:"json"`
	CORSAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	RateLimitRPS       float64       `envconfig:"RATE_LIMIT_RPS" default:"20"`
	RateLimitBurst     int           `envconfig:"RATE_LIMIT_BURST" default:"40"`
	ShutdownTimeout    time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	ChatReplyDelay     time.Duration `envconfig:"CHAT_REPLY_DELAY" default:"1500ms"`
	BookingTimezone    string        `envconfig:"BOOKING_TIMEZONE" default:"Local"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var env environment
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	server, err := loadServerConfig(env)
	if err != nil {
		return nil, err
	}

	if env.ChatReplyDelay < 0 {
		return nil, fmt.Errorf("invalid CHAT_REPLY_DELAY value %q: must not be negative", env.ChatReplyDelay)
	}

	loc, err := time.LoadLocation(strings.TrimSpace(env.BookingTimezone))
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_TIMEZONE value %q: %w", env.BookingTimezone, err)
	}

	return &Config{
		Server: server,
		Log: LogConfig{
			Level:  env.LogLevel,
			Format: env.LogFormat,
		},
		Chat:    ChatConfig{ReplyDelay: env.ChatReplyDelay},
		Booking: BookingConfig{Location: loc},
	}, nil
}

// loadServerConfig resolves the listen address and middleware limits.
func loadServerConfig(env environment) (ServerConfig, error) {
	addr, err := parseAddr(env.Port)
	if err != nil {
		return ServerConfig{}, err
	}

	if env.RateLimitRPS <= 0 || env.RateLimitBurst <= 0 {
		return ServerConfig{}, fmt.Errorf("rate limit must be positive, got rps=%v burst=%d", env.RateLimitRPS, env.RateLimitBurst)
	}

	origins := make([]string, 0, len(env.CORSAllowedOrigins))
	for _, origin := range env.CORSAllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	return ServerConfig{
		Addr:            addr,
		AllowedOrigins:  origins,
		RateLimitRPS:    env.RateLimitRPS,
		RateLimitBurst:  env.RateLimitBurst,
		ShutdownTimeout: env.ShutdownTimeout,
	}, nil
}

func parseAddr(raw string) (string, error) {
	port := strings.TrimSpace(raw)
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" as given.
		return port, nil
	}

	if strings.Contains(port, " ") {
		return "", fmt.Errorf("invalid PORT value: %q", port)
	}

	return ":" + port, nil
}
