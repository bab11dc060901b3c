package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	appConfig "lolladder/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"
)

// Logger that we will use to save our logs.
// Every record goes to a temporary file and to the console writer.
type NewLogger struct {
	mu       sync.Mutex
	logFile  *os.File
	filePath string
	log      zerolog.Logger
}

// lockedFile serializes writes with the file cleaning.
type lockedFile struct {
	l *NewLogger
}

func (f lockedFile) Write(p []byte) (int, error) {
	f.l.mu.Lock()
	defer f.l.mu.Unlock()
	return f.l.logFile.Write(p)
}

// Create the log instance with a temporary file.
// The console receives a human readable copy, stdout is left for the leaderboards.
func CreateLogger(level string, console io.Writer) (*NewLogger, error) {
	f, err := os.CreateTemp("", "log-*.log")
	if err != nil {
		return nil, err
	}

	l := &NewLogger{
		logFile:  f,
		filePath: f.Name(),
	}

	writers := []io.Writer{lockedFile{l: l}}
	if console != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: time.DateTime,
			NoColor:    true,
		})
	}

	l.log = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()

	return l, nil
}

// Default logger writing to stderr.
func CreateConsoleLogger(level string) (*NewLogger, error) {
	return CreateLogger(level, os.Stderr)
}

func parseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

// Log a debug message.
func (l *NewLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}

// Log a simple info.
func (l *NewLogger) Infof(format string, args ...interface{}) {
	l.log.Info().Msgf(format, args...)
}

// Log a warning.
func (l *NewLogger) Warnf(format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

// Log a error.
func (l *NewLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

// Write a empty line.
func (l *NewLogger) EmptyLine() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logFile.WriteString("\n")
}

// FilePath of the temporary log file.
func (l *NewLogger) FilePath() string {
	return l.filePath
}

// Clean the file contents.
func (l *NewLogger) CleanFile() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logFile.Truncate(0)

	l.logFile.Seek(0, 0)
}

// Close and remove the temporary file.
func (l *NewLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.logFile.Close(); err != nil {
		return err
	}
	return os.Remove(l.filePath)
}

// Upload the log to a s3 bucket.
func (l *NewLogger) UploadToS3Bucket(ctx context.Context, bucket appConfig.BucketConfiguration, objectKey string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.logFile.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to rewind file: %v", err)
	}

	// Get the config.
	cfg := aws.Config{
		Region: bucket.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				bucket.AccessKey,
				bucket.AccessSecret,
				"",
			),
		),
	}

	// Create the client.
	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(bucket.Endpoint)
	})

	// Run the put.
	_, err := s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket.LogBucket),
		Key:    aws.String(objectKey),
		Body:   l.logFile,
		ACL:    types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to S3 bucket: %v", objectKey, err)
	}

	// Clean the file after sending.
	l.logFile.Truncate(0)
	l.logFile.Seek(0, 0)

	return nil
}
