package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lolladder/pkg/config"
	"lolladder/pkg/logger"
	"lolladder/scheduler/jobs"

	"github.com/go-co-op/gocron/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	hour, minute, err := jobs.ParseAt(cfg.Schedule.At)
	if err != nil {
		log.Fatalf("Invalid schedule: %v", err)
	}

	jobLogger, err := logger.CreateConsoleLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Couldn't create the logger: %v", err)
	}
	defer jobLogger.Close()

	jobLogger.Infof("Starting scheduler, leaderboards are published daily at %02d:%02d UTC.", hour, minute)

	// Create a new scheduler with options.
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	// Only one run at a time, a full roster takes minutes with the step delay.
	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(hour, minute, 0),
			),
		),
		gocron.NewTask(
			jobs.PublishLeaderboards,
			cfg,
			jobLogger,
		),
		gocron.WithName("leaderboard-publish"),
		gocron.WithTags("leaderboard"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.JobOption(gocron.WithStartImmediately()),
	)
	if err != nil {
		log.Fatalf("Failed to create leaderboard job: %v", err)
	}

	// Start the scheduler.
	s.Start()

	defer func() {
		// Shutdown the scheduler when main() exits.
		err := s.Shutdown()
		if err != nil {
			jobLogger.Errorf("Error shutting down scheduler: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for termination signal.
	<-sigChan
	jobLogger.Infof("Shutting down scheduler...")
}
