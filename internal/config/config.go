package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Registry   `yaml:"registry"`
	Redis      `yaml:"redis"`
	RabbitMQ   `yaml:"rabbitmq"`
}

type HTTPServer struct {
	Address      string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"120s"`
}

type Registry struct {
	Venue              string        `yaml:"venue" env:"REGISTRY_VENUE" env-default:"main"`
	Capacity           int           `yaml:"capacity" env:"REGISTRY_CAPACITY" env-default:"1024"`
	CompactionInterval time.Duration `yaml:"compaction_interval" env:"REGISTRY_COMPACTION_INTERVAL" env-default:"1m"`
	HistoryRetention   time.Duration `yaml:"history_retention" env:"REGISTRY_HISTORY_RETENTION" env-default:"24h"`
}

// Redis caching is disabled when Address is empty.
type Redis struct {
	Address    string        `yaml:"address" env:"REDIS_ADDR"`
	Password   string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB         int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	SeatMapTTL time.Duration `yaml:"seat_map_ttl" env:"REDIS_SEAT_MAP_TTL" env-default:"30s"`
}

// Event publishing is disabled when URL is empty.
type RabbitMQ struct {
	URL       string `yaml:"url" env:"RABBITMQ_URL"`
	QueueName string `yaml:"queue_name" env:"RABBITMQ_QUEUE" env-default:"reservation_events"`
}

// Load reads .env (if present) into the process environment, then fills the
// config from CONFIG_PATH when set, or from the environment alone.
func Load() (*Config, error) {
	const op = "config.Load"

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%s: config file %s: %w", op, path, err)
		}

		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}
