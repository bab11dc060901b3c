package leaguefetcher

import (
	"context"
	"fmt"
	"net/url"

	"lolladder/fetcher/requests"
)

// LeagueEntry defines the type returned by the league entries.
type LeagueEntry struct {
	FreshBlood   bool    `json:"freshBlood"`
	HotStreak    bool    `json:"hotStreak"`
	Inactive     bool    `json:"inactive"`
	LeagueId     string  `json:"leagueId"`
	LeaguePoints int     `json:"leaguePoints"`
	Losses       int     `json:"losses"`
	Puuid        string  `json:"puuid"`
	QueueType    *string `json:"queueType,omitempty"`
	Rank         *string `json:"rank,omitempty"`
	SummonerId   string  `json:"summonerId"`
	Tier         *string `json:"tier,omitempty"`
	Veteran      bool    `json:"veteran"`
	Wins         int     `json:"wins"`
}

// LeagueFetcher with it's client and region host.
type LeagueFetcher struct {
	client        *requests.Client // Pointer to the client, since it's shared.
	subRegionHost string
}

// CreateLeagueFetcher creates a league fetcher.
func CreateLeagueFetcher(client *requests.Client, subRegionHost string) *LeagueFetcher {
	return &LeagueFetcher{
		client:        client,
		subRegionHost: subRegionHost,
	}
}

// GetLeagueEntriesBySummoner gets a given summoner entries for each ranked queue.
// Unranked summoners return an empty list.
func (l *LeagueFetcher) GetLeagueEntriesBySummoner(ctx context.Context, summonerId string) ([]LeagueEntry, error) {
	requestUrl := fmt.Sprintf("%s/lol/league/v4/entries/by-summoner/%s", l.subRegionHost, url.PathEscape(summonerId))

	entries, err := requests.GetJSON[[]LeagueEntry](ctx, l.client, requestUrl)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Value of a optional string field.
func StringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
