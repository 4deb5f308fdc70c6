package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Overpass OverpassConfig
	Redis    RedisConfig
	Stats    StatsConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins string
}

type OverpassConfig struct {
	URL            string
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
	// QueryTimeout is the server-side [timeout:N] hint embedded in the query.
	QueryTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type StatsConfig struct {
	Enabled bool
	Key     string
}

type LogConfig struct {
	Level string
}

// Load reads configuration from an optional .env file in the working
// directory and from the environment. Environment variables win.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit env file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("API_HOST"),
			Port:         v.GetInt("API_PORT"),
			Env:          v.GetString("API_ENV"),
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Overpass: OverpassConfig{
			URL:            strings.TrimSpace(v.GetString("OVERPASS_URL")),
			ConnectTimeout: time.Duration(v.GetInt("OVERPASS_CONNECT_TIMEOUT")) * time.Second,
			RequestTimeout: time.Duration(v.GetInt("OVERPASS_REQUEST_TIMEOUT")) * time.Second,
			QueryTimeout:   time.Duration(v.GetInt("OVERPASS_QUERY_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Stats: StatsConfig{
			Enabled: v.GetBool("STATS_ENABLED"),
			Key:     v.GetString("STATS_REDIS_KEY"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")

	v.SetDefault("OVERPASS_URL", "https://overpass-api.de/api/interpreter")
	v.SetDefault("OVERPASS_CONNECT_TIMEOUT", 10)
	v.SetDefault("OVERPASS_REQUEST_TIMEOUT", 30)
	v.SetDefault("OVERPASS_QUERY_TIMEOUT", 25)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("STATS_ENABLED", false)
	v.SetDefault("STATS_REDIS_KEY", "cafe_finder:stats")

	v.SetDefault("LOG_LEVEL", "info")
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid API_PORT: %d", c.Server.Port)
	}
	if c.Overpass.URL == "" {
		return fmt.Errorf("OVERPASS_URL must not be empty")
	}
	if c.Overpass.ConnectTimeout <= 0 || c.Overpass.RequestTimeout <= 0 || c.Overpass.QueryTimeout <= 0 {
		return fmt.Errorf("overpass timeouts must be positive")
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Addr returns host:port for the Redis client.
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
