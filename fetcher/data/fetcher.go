package data

import (
	"context"
	"fmt"
	"strings"

	leaguefetcher "lolladder/fetcher/data/league"
	playerfetcher "lolladder/fetcher/data/player"
	"lolladder/fetcher/requests"
	"lolladder/pkg/regions"
)

// Fetcher is the set of Riot endpoints the profile pipeline uses.
type Fetcher interface {
	GetAccountByRiotId(ctx context.Context, gameName string, tagLine string) (*playerfetcher.Account, error)
	GetSummonerByPuuid(ctx context.Context, puuid string) (*playerfetcher.SummonerByPuuid, error)
	GetLeagueEntriesBySummoner(ctx context.Context, summonerId string) ([]leaguefetcher.LeagueEntry, error)
}

// Define a main fetcher.
type MainFetcher struct {
	Player *playerfetcher.PlayerFetcher
	League *leaguefetcher.LeagueFetcher
}

// Function to instanciate the main fetcher.
// A non empty baseUrl replaces both region hosts.
func CreateMainFetcher(client *requests.Client, subRegion regions.SubRegion, baseUrl string) (*MainFetcher, error) {
	mainRegion, err := subRegion.MainRegion()
	if err != nil {
		return nil, fmt.Errorf("couldn't create the fetcher: %w", err)
	}

	mainHost := mainRegion.Host()
	subHost := subRegion.Host()
	if baseUrl != "" {
		mainHost = strings.TrimRight(baseUrl, "/")
		subHost = mainHost
	}

	return &MainFetcher{
		Player: playerfetcher.CreatePlayerFetcher(client, mainHost, subHost),
		League: leaguefetcher.CreateLeagueFetcher(client, subHost),
	}, nil
}

func (m *MainFetcher) GetAccountByRiotId(ctx context.Context, gameName string, tagLine string) (*playerfetcher.Account, error) {
	return m.Player.GetAccountByRiotId(ctx, gameName, tagLine)
}

func (m *MainFetcher) GetSummonerByPuuid(ctx context.Context, puuid string) (*playerfetcher.SummonerByPuuid, error) {
	return m.Player.GetSummonerByPuuid(ctx, puuid)
}

func (m *MainFetcher) GetLeagueEntriesBySummoner(ctx context.Context, summonerId string) ([]leaguefetcher.LeagueEntry, error) {
	return m.League.GetLeagueEntriesBySummoner(ctx, summonerId)
}
