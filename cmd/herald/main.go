package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"

	"herald/internal"
	"herald/repositories"
	"herald/runtime/workers"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Herald terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components and manages the process lifecycle, so
// 'defer' statements (like database cleanup) execute before the program
// exits and the wiring stays testable outside of main.
//
// The herald binary is the janitor side of the messaging core: it keeps
// the message store healthy by sweeping messages a crashed embedder left
// in DISPATCHING back to DRAFT. The lifecycle operations themselves are
// invoked in-process by the surrounding platform.
func run() (int, error) {
	// 1. Configuration & Logger
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	logger := internal.LoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.ERROR))
	if err != nil {
		return exitRuntime, fmt.Errorf("badger open: %w", err)
	}
	defer db.Close()

	messageRepo := repositories.NewMessageRepository(db, logger)

	// 3. Background workers under supervision
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	supervisor := workers.NewSupervisor(logger)
	supervisor.Add(workers.NewReclaimWorker(messageRepo, logger, config.ReclaimInterval, config.ReclaimStale))

	logger.Info("Herald janitor started")
	supervisor.Run(ctx)

	return exitOK, nil
}
