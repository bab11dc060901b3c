package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// PlaceholderApiKey is used when no key could be found anywhere.
// Every request will be rejected with a 401/403 until a real key is set.
const PlaceholderApiKey = "INSERT_YOUR_API_KEY_HERE"

var ErrEmptyApiKey = errors.New("api key file is empty")

// Riot API configuration.
type RiotConfiguration struct {
	ApiKey     string `env:"API_KEY"`
	ApiKeyPath string `env:"API_KEY_PATH" envDefault:"secretkey.txt"`
	SubRegion  string `env:"SUB_REGION" envDefault:"EUW1"`
	// Overrides the https://{region}.api.riotgames.com host when set.
	BaseURL string `env:"BASE_URL"`
}

// Fetch pipeline configuration.
type FetchConfiguration struct {
	StepDelay        time.Duration `env:"STEP_DELAY" envDefault:"3300ms"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	RateLimitEnabled bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
}

// A single rate limit window.
type LimitConfiguration struct {
	Count         int
	ResetInterval time.Duration
}

// Riot development key limits.
type LimitsConfiguration struct {
	Lower  LimitConfiguration
	Higher LimitConfiguration
}

// Roster file configuration.
type RosterConfiguration struct {
	Path              string `env:"PATH" envDefault:"accounts.json"`
	FallbackOnMissing bool   `env:"FALLBACK" envDefault:"true"`
}

// Redis configuration, the identity cache is disabled without a host.
type RedisConfiguration struct {
	Host     string        `env:"HOST"`
	Port     string        `env:"PORT" envDefault:"6379"`
	Password string        `env:"PASSWORD"`
	TTL      time.Duration `env:"TTL" envDefault:"168h"`
}

// Bucket configuration for the run log upload.
type BucketConfiguration struct {
	Region       string `env:"REGION" envDefault:"auto"`
	Endpoint     string `env:"ENDPOINT"`
	AccessKey    string `env:"ACCESS_KEY"`
	AccessSecret string `env:"ACCESS_SECRET"`
	LogBucket    string `env:"LOG_BUCKET"`
}

// Playtime estimate configuration.
type PlaytimeConfiguration struct {
	// Compute the weeks from the reference date instead of the fixed value.
	Elapsed       bool      `env:"ELAPSED" envDefault:"false"`
	FixedWeeks    float64   `env:"WEEKS" envDefault:"340"`
	ReferenceDate time.Time `env:"REFERENCE_DATE" envDefault:"2017-12-01T00:00:00Z"`
}

// Scheduled runner configuration.
type ScheduleConfiguration struct {
	At         string `env:"AT" envDefault:"18:00"`
	OutputPath string `env:"OUTPUT_PATH"`
}

type Config struct {
	Riot     RiotConfiguration `envPrefix:"RIOT_"`
	Fetch    FetchConfiguration
	Roster   RosterConfiguration   `envPrefix:"ROSTER_"`
	Redis    RedisConfiguration    `envPrefix:"REDIS_"`
	Bucket   BucketConfiguration   `envPrefix:"BUCKET_"`
	Playtime PlaytimeConfiguration `envPrefix:"PLAYTIME_"`
	Schedule ScheduleConfiguration `envPrefix:"SCHEDULE_"`
	Limits   LimitsConfiguration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Set when the API key came from the placeholder.
	UsingPlaceholderKey bool
}

// Load the .env file if present, then parse the environment.
func Load() (*Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("couldn't parse the environment: %w", err)
	}

	cfg.Limits = DefaultLimits()

	if err := cfg.loadApiKey(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultLimits returns the development key limits: 20 per second and 100 per 2 minutes.
func DefaultLimits() LimitsConfiguration {
	return LimitsConfiguration{
		Lower: LimitConfiguration{
			Count:         20,
			ResetInterval: time.Second,
		},
		Higher: LimitConfiguration{
			Count:         100,
			ResetInterval: 2 * time.Minute,
		},
	}
}

// loadApiKey resolves the key from the env, then the key file, then the placeholder.
func (c *Config) loadApiKey() error {
	if c.Riot.ApiKey != "" {
		return nil
	}

	key, err := ReadApiKeyFile(c.Riot.ApiKeyPath)
	if err == nil {
		c.Riot.ApiKey = key
		return nil
	}

	if !errors.Is(err, os.ErrNotExist) && !errors.Is(err, ErrEmptyApiKey) {
		return fmt.Errorf("couldn't read the api key file %s: %w", c.Riot.ApiKeyPath, err)
	}

	c.Riot.ApiKey = PlaceholderApiKey
	c.UsingPlaceholderKey = true
	return nil
}

// ReadApiKeyFile reads a key file, ignoring surrounding whitespace.
func ReadApiKeyFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	key := strings.TrimSpace(string(content))
	if key == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyApiKey, path)
	}
	return key, nil
}

// RedisEnabled reports whether the identity cache should be used.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

// BucketEnabled reports whether the run log should be uploaded.
func (c *Config) BucketEnabled() bool {
	return c.Bucket.LogBucket != "" && c.Bucket.AccessKey != "" && c.Bucket.Endpoint != ""
}
