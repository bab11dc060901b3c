package playerfetcher

import (
	"context"
	"fmt"
	"net/url"

	"lolladder/fetcher/requests"
)

// PlayerFetcher resolves accounts on the main region and summoners on the sub region.
type PlayerFetcher struct {
	client         *requests.Client // Pointer to the client, since it's shared.
	mainRegionHost string
	subRegionHost  string
}

// CreatePlayerFetcher creates a player fetcher.
func CreatePlayerFetcher(client *requests.Client, mainRegionHost string, subRegionHost string) *PlayerFetcher {
	return &PlayerFetcher{
		client:         client,
		mainRegionHost: mainRegionHost,
		subRegionHost:  subRegionHost,
	}
}

// GetAccountByRiotId resolves a Riot ID to its account.
func (p *PlayerFetcher) GetAccountByRiotId(ctx context.Context, gameName string, tagLine string) (*Account, error) {
	// Names can contain spaces and non ascii characters.
	requestUrl := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		p.mainRegionHost, url.PathEscape(gameName), url.PathEscape(tagLine))

	account, err := requests.GetJSON[Account](ctx, p.client, requestUrl)
	if err != nil {
		return nil, err
	}

	if account.Puuid == "" {
		return nil, fmt.Errorf("%w: account %s#%s without puuid", requests.ErrDecode, gameName, tagLine)
	}

	return &account, nil
}

// GetSummonerByPuuid gets a players summoner data.
func (p *PlayerFetcher) GetSummonerByPuuid(ctx context.Context, puuid string) (*SummonerByPuuid, error) {
	requestUrl := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-puuid/%s", p.subRegionHost, url.PathEscape(puuid))

	summoner, err := requests.GetJSON[SummonerByPuuid](ctx, p.client, requestUrl)
	if err != nil {
		return nil, err
	}

	if summoner.Id == "" {
		return nil, fmt.Errorf("%w: summoner %s without id", requests.ErrDecode, puuid)
	}

	return &summoner, nil
}
