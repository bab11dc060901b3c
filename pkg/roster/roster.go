package roster

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"lolladder/pkg/config"
	"lolladder/pkg/logger"
	"lolladder/pkg/models/profile"
)

// Placeholder for missing roster fields.
const unknownField = "???"

// ErrRosterMissing is returned when the roster file is absent and the fallback is disabled.
var ErrRosterMissing = errors.New("roster file not found")

// Sample roster used when the file is missing and the fallback is enabled.
//
//go:embed sample_accounts.json
var sampleRoster []byte

// Entry is a single roster record.
type Entry struct {
	IrlName  string `json:"irlName"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Load reads the roster file and creates one empty profile per entry.
func Load(cfg config.RosterConfiguration, log *logger.NewLogger) ([]*profile.Profile, error) {
	content, err := os.ReadFile(cfg.Path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("couldn't read the roster %s: %w", cfg.Path, err)
		}

		if !cfg.FallbackOnMissing {
			return nil, fmt.Errorf("%w: %s", ErrRosterMissing, cfg.Path)
		}

		log.Warnf("File not found: %s. The sample roster will be used instead.", cfg.Path)
		content = sampleRoster
	}

	return Parse(content)
}

// Parse decodes a roster document.
func Parse(content []byte) ([]*profile.Profile, error) {
	var entries []Entry
	if err := json.Unmarshal(content, &entries); err != nil {
		return nil, fmt.Errorf("couldn't parse the roster: %w", err)
	}

	profiles := make([]*profile.Profile, 0, len(entries))
	for _, entry := range entries {
		profiles = append(profiles, profile.New(
			orUnknown(entry.IrlName),
			orUnknown(entry.GameName),
			orUnknown(entry.TagLine),
		))
	}
	return profiles, nil
}

func orUnknown(value string) string {
	if value == "" {
		return unknownField
	}
	return value
}
