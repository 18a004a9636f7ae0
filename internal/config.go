package internal

import (
	"fmt"
	"time"
)

type Config struct {
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel        string        `env:"LOG_LEVEL,required=true"`
	DispatchWorkers int           `env:"DISPATCH_WORKERS,required=true"`
	MaxSendAttempts int           `env:"MAX_SEND_ATTEMPTS,required=true"`
	RetryBackoff    time.Duration `env:"RETRY_BACKOFF,required=true"`
	SendTimeout     time.Duration `env:"SEND_TIMEOUT,required=true"`
	ReclaimInterval time.Duration `env:"RECLAIM_INTERVAL"`
	ReclaimStale    time.Duration `env:"RECLAIM_STALE_AFTER,required=true"`
}

// Validate catches values the env unmarshaller accepts but the dispatch
// engine cannot work with.
func (c Config) Validate() error {
	if c.DispatchWorkers < 1 {
		return fmt.Errorf("DISPATCH_WORKERS must be at least 1, got %d", c.DispatchWorkers)
	}
	if c.MaxSendAttempts < 1 {
		return fmt.Errorf("MAX_SEND_ATTEMPTS must be at least 1, got %d", c.MaxSendAttempts)
	}
	if c.SendTimeout <= 0 {
		return fmt.Errorf("SEND_TIMEOUT must be positive, got %v", c.SendTimeout)
	}
	if c.ReclaimStale <= 0 {
		return fmt.Errorf("RECLAIM_STALE_AFTER must be positive, got %v", c.ReclaimStale)
	}
	return nil
}
