package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lolladder/fetcher/app"
	"lolladder/pkg/config"
	"lolladder/pkg/logger"
)

func main() {
	os.Exit(run())
}

// run returns the exit code, so the deferred cleanups still happen.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Couldn't initialize the configuration: %v", err)
		return 1
	}

	runLogger, err := logger.CreateConsoleLogger(cfg.LogLevel)
	if err != nil {
		log.Printf("Couldn't create the logger: %v", err)
		return 1
	}
	defer runLogger.Close()

	// Interrupting cuts the delays and in flight requests short, the boards still render.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ladder, err := app.New(ctx, cfg, runLogger)
	if err != nil {
		runLogger.Errorf("Couldn't start: %v", err)
		return 1
	}
	defer ladder.Close()

	exitCode := 0
	if err := ladder.Run(ctx, os.Stdout); err != nil {
		runLogger.Errorf("Run failed: %v", err)
		exitCode = 1
	}

	// Use a fresh context, the run one may be cancelled.
	uploadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ladder.UploadLog(uploadCtx, time.Now())

	return exitCode
}
