package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`

	DispatchWorkers int           `envconfig:"DISPATCH_WORKERS" default:"4"`
	MaxSendAttempts int           `envconfig:"MAX_SEND_ATTEMPTS" default:"3"`
	RetryBackoff    time.Duration `envconfig:"RETRY_BACKOFF" default:"100ms"`
	SendTimeout     time.Duration `envconfig:"SEND_TIMEOUT" default:"5s"`

	Colours bool `envconfig:"PROBE_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	// Missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
