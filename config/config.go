package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Port the API server listens on
	Port string `env:"PORT" envDefault:"5260"`

	// Path to the sqlite project database
	DatabasePath string `env:"DATABASE_PATH" envDefault:"database/grihaplan.db"`

	// Inference service configuration
	Inference struct {
		// Base URL of the floor-plan generation service
		BaseURL string `env:"INFERENCE_URL" envDefault:"http://localhost:8000"`

		// Request timeout in seconds
		TimeoutSeconds int `env:"INFERENCE_TIMEOUT" envDefault:"30"`

		// Maximum number of retries for transient failures
		MaxRetries int `env:"INFERENCE_MAX_RETRIES" envDefault:"3"`

		// Interval between background health probes in seconds
		HealthIntervalSeconds int `env:"INFERENCE_HEALTH_INTERVAL" envDefault:"60"`
	}

	// Autosave configuration
	Autosave struct {
		// Number of workers draining the snapshot queue
		Workers int `env:"AUTOSAVE_WORKERS" envDefault:"1"`

		// Snapshot queue buffer size
		QueueSize int `env:"AUTOSAVE_QUEUE_SIZE" envDefault:"8"`

		// Maximum number of retries for a failed save
		MaxRetries int `env:"AUTOSAVE_MAX_RETRIES" envDefault:"3"`

		// Delay between retries in seconds
		RetryDelaySeconds int `env:"AUTOSAVE_RETRY_DELAY" envDefault:"1"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
