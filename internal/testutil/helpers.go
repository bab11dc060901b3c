package testutil

import (
	"context"
	"time"

	leaguefetcher "lolladder/fetcher/data/league"
)

// League entry builder for the fetcher mocks.
func NewLeagueEntry(queueType string, tier string, rank string, lp int, wins int, losses int) leaguefetcher.LeagueEntry {
	return leaguefetcher.LeagueEntry{
		QueueType:    &queueType,
		Tier:         &tier,
		Rank:         &rank,
		LeaguePoints: lp,
		Wins:         wins,
		Losses:       losses,
	}
}

// NoDelay is a sleep that returns right away unless the context is done.
func NoDelay(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
