// Package server provides configuration loading and validation for the relay.
package server

import (
	"fmt"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"

	"github.com/Tyrowin/lobbychat/internal/chat"
)

// RateLimitConfig defines the parameters for per-connection message rate limiting.
type RateLimitConfig struct {
	Burst          int
	RefillInterval time.Duration
}

// Config holds the server configuration. Every field is read from the
// environment; unset variables fall back to the tag defaults.
type Config struct {
	Env      string `env:"APP_ENV,default=dev"`
	LogLevel string `env:"LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`

	Port           string `env:"SERVER_PORT,default=:8080" validate:"required"`
	Origins        string `env:"ALLOWED_ORIGINS,default=http://localhost:8080"`
	MaxMessageSize int64  `env:"MAX_MESSAGE_SIZE,default=512" validate:"gt=0"`
	SendBufferSize int    `env:"SEND_BUFFER_SIZE,default=256" validate:"gt=0"`

	RateLimitBurst         int `env:"RATE_LIMIT_BURST,default=5" validate:"gt=0"`
	RateLimitRefillSeconds int `env:"RATE_LIMIT_REFILL_INTERVAL,default=1" validate:"gt=0"`

	LobbyDurationSeconds   int  `env:"LOBBY_DURATION_SECONDS,default=300" validate:"gt=0"`
	RoomGraceSeconds       int  `env:"ROOM_GRACE_SECONDS,default=10" validate:"gt=0"`
	LobbyNameCaseSensitive bool `env:"LOBBY_NAME_CASE_SENSITIVE,default=false"`
	RoomHistoryLimit       int  `env:"ROOM_HISTORY_LIMIT,default=0" validate:"gte=0"`

	// AllowedOrigins is Origins split on commas and trimmed.
	AllowedOrigins []string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewConfig returns a Config populated with the default value of every field.
func NewConfig() *Config {
	cfg, err := ConfigFromEnvSet(env.EnvSet{})
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadConfig reads the configuration from the process environment and
// validates it.
func LoadConfig() (*Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg.finish()
}

// ConfigFromEnvSet builds a Config from an explicit variable set. Variables
// missing from es take their defaults.
func ConfigFromEnvSet(es env.EnvSet) (*Config, error) {
	var cfg Config
	if err := env.Unmarshal(es, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg.finish()
}

func (c Config) finish() (*Config, error) {
	c.AllowedOrigins = parseOrigins(c.Origins)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// RateLimit returns the per-connection token bucket settings.
func (c *Config) RateLimit() RateLimitConfig {
	return RateLimitConfig{
		Burst:          c.RateLimitBurst,
		RefillInterval: time.Duration(c.RateLimitRefillSeconds) * time.Second,
	}
}

// ChatConfig maps the environment settings onto the chat core.
func (c *Config) ChatConfig() chat.Config {
	cfg := chat.DefaultConfig()
	cfg.LobbyDuration = c.LobbyDurationSeconds
	cfg.GraceWindow = time.Duration(c.RoomGraceSeconds) * time.Second
	cfg.LobbyNameCaseSensitive = c.LobbyNameCaseSensitive
	cfg.HistoryLimit = c.RoomHistoryLimit
	return cfg
}

func parseOrigins(origins string) []string {
	var out []string
	for _, part := range strings.Split(origins, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
