package jobs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"lolladder/fetcher/app"
	"lolladder/pkg/config"
	"lolladder/pkg/logger"
)

// PublishLeaderboards runs the roster once and writes the boards to the output file, or stdout.
func PublishLeaderboards(cfg *config.Config, log *logger.NewLogger) error {
	// Each run ships its own log.
	log.CleanFile()
	log.Infof("Starting leaderboard job")
	ctx := context.Background()

	ladder, err := app.New(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("couldn't create the app: %w", err)
	}
	defer ladder.Close()

	// Render in memory so a failed run never leaves a half written file.
	var out bytes.Buffer
	if err := ladder.Run(ctx, &out); err != nil {
		log.Errorf("Leaderboard job failed: %v", err)
		return err
	}

	if err := writeOutput(cfg.Schedule.OutputPath, out.Bytes()); err != nil {
		log.Errorf("Couldn't write the leaderboards: %v", err)
		return err
	}

	ladder.UploadLog(ctx, time.Now())
	log.Infof("Leaderboard job completed successfully")
	return nil
}

func writeOutput(path string, content []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(content)
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// ParseAt parses a "HH:MM" time of day.
func ParseAt(at string) (uint, uint, error) {
	hourText, minuteText, found := strings.Cut(strings.TrimSpace(at), ":")
	if !found {
		return 0, 0, fmt.Errorf("invalid time of day %q, expected HH:MM", at)
	}

	hour, err := strconv.ParseUint(hourText, 10, 8)
	if err != nil || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", at)
	}

	minute, err := strconv.ParseUint(minuteText, 10, 8)
	if err != nil || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", at)
	}

	return uint(hour), uint(minute), nil
}
