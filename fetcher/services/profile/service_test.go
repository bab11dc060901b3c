package profileservice

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	leaguefetcher "lolladder/fetcher/data/league"
	playerfetcher "lolladder/fetcher/data/player"
	"lolladder/fetcher/repositories"
	"lolladder/fetcher/requests"
	"lolladder/internal/testutil"
	"lolladder/pkg/logger"
	"lolladder/pkg/models/profile"
	queuevalues "lolladder/pkg/riotvalues/queue"
	tiervalues "lolladder/pkg/riotvalues/tier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestService(t *testing.T, cache repositories.AccountCacheRepository) (*ProfileService, *testutil.MockFetcher, *atomic.Int32) {
	t.Helper()

	log, err := logger.CreateLogger("debug", nil)
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })

	mockFetcher := new(testutil.MockFetcher)
	sleeps := new(atomic.Int32)

	service := NewProfileService(&ProfileServiceDeps{
		Fetcher:   mockFetcher,
		Cache:     cache,
		Logger:    log,
		Region:    "EUW1",
		StepDelay: 3300 * time.Millisecond,
		Sleep: func(ctx context.Context, d time.Duration) error {
			assert.Equal(t, 3300*time.Millisecond, d)
			sleeps.Add(1)
			return testutil.NoDelay(ctx, d)
		},
	})

	return service, mockFetcher, sleeps
}

// Expect a full successful pipeline for a profile.
func expectFullProfile(m *testutil.MockFetcher, gameName string, tagLine string, entries []leaguefetcher.LeagueEntry) {
	puuid := "puuid-" + gameName
	summonerId := "summoner-" + gameName

	m.On("GetAccountByRiotId", mock.Anything, gameName, tagLine).
		Return(&playerfetcher.Account{Puuid: puuid, GameName: gameName, TagLine: tagLine}, nil).Once()
	m.On("GetSummonerByPuuid", mock.Anything, puuid).
		Return(&playerfetcher.SummonerByPuuid{Id: summonerId, Puuid: puuid, SummonerLevel: 250}, nil).Once()
	m.On("GetLeagueEntriesBySummoner", mock.Anything, summonerId).
		Return(entries, nil).Once()
}

func TestNewProfileServiceDefaultSleep(t *testing.T) {
	service := NewProfileService(&ProfileServiceDeps{})
	assert.NotNil(t, service.sleep)
}

func TestFetchProfileSuccess(t *testing.T) {
	service, mockFetcher, sleeps := setupTestService(t, nil)

	expectFullProfile(mockFetcher, "Tombom", "EUW", []leaguefetcher.LeagueEntry{
		testutil.NewLeagueEntry("RANKED_SOLO_5x5", "GOLD", "II", 45, 10, 5),
		testutil.NewLeagueEntry("RANKED_FLEX_SR", "DIAMOND", "I", 20, 30, 25),
	})

	p := profile.New("Tombom", "Tombom", "EUW")
	service.FetchProfile(context.Background(), p)

	assert.True(t, p.Account.Ok())
	assert.Equal(t, "puuid-Tombom", p.Account.Value)
	assert.True(t, p.Summoner.Ok())
	assert.Equal(t, 250, p.Level())
	assert.True(t, p.Ranks.Ok())
	assert.Equal(t, "Gold II 45lp (10W 5L)", tiervalues.Summarize(p.Rank(queuevalues.Solo)))
	assert.Equal(t, tiervalues.Diamond, p.Rank(queuevalues.Flex).Tier)
	assert.Equal(t, int32(2), sleeps.Load())

	testutil.VerifyAllMocks(t, mockFetcher)
}

func TestFetchProfileOnlyFlex(t *testing.T) {
	service, mockFetcher, _ := setupTestService(t, nil)

	expectFullProfile(mockFetcher, "Dog", "Pop", []leaguefetcher.LeagueEntry{
		testutil.NewLeagueEntry("RANKED_FLEX_SR", "SILVER", "III", 60, 2, 9),
	})

	p := profile.New("Frederikpop", "Dog", "Pop")
	service.FetchProfile(context.Background(), p)

	assert.True(t, p.Ranks.Ok())
	assert.False(t, p.Rank(queuevalues.Solo).IsRanked())
	assert.Equal(t, tiervalues.Silver, p.Rank(queuevalues.Flex).Tier)
}

// A failed identity step must skip the summoner and league steps of that profile only.
func TestFetchAllIdentityFailure(t *testing.T) {
	service, mockFetcher, _ := setupTestService(t, nil)

	mockFetcher.On("GetAccountByRiotId", mock.Anything, "Ghost", "EUW").
		Return((*playerfetcher.Account)(nil), fmt.Errorf("%w: 404", requests.ErrNotFound)).Once()
	expectFullProfile(mockFetcher, "Neermark", "EUW", []leaguefetcher.LeagueEntry{
		testutil.NewLeagueEntry("RANKED_SOLO_5x5", "DIAMOND", "I", 20, 50, 40),
	})

	failed := profile.New("P", "Ghost", "EUW")
	complete := profile.New("Q", "Neermark", "EUW")
	service.FetchAll(context.Background(), []*profile.Profile{failed, complete})

	assert.Equal(t, profile.Failed, failed.Account.State)
	assert.ErrorIs(t, failed.Account.Err, requests.ErrNotFound)
	assert.Equal(t, profile.Skipped, failed.Summoner.State)
	assert.Equal(t, profile.Skipped, failed.Ranks.State)
	assert.False(t, failed.Rank(queuevalues.Solo).IsRanked())
	assert.Zero(t, failed.Level())

	assert.True(t, complete.Ranks.Ok())
	assert.Equal(t, tiervalues.Diamond, complete.Rank(queuevalues.Solo).Tier)

	mockFetcher.AssertNotCalled(t, "GetSummonerByPuuid", mock.Anything, "")
	mockFetcher.AssertNumberOfCalls(t, "GetSummonerByPuuid", 1)
	mockFetcher.AssertNumberOfCalls(t, "GetLeagueEntriesBySummoner", 1)
	testutil.VerifyAllMocks(t, mockFetcher)
}

func TestFetchProfileSummonerFailure(t *testing.T) {
	service, mockFetcher, sleeps := setupTestService(t, nil)

	mockFetcher.On("GetAccountByRiotId", mock.Anything, "MKmads", "EUW").
		Return(&playerfetcher.Account{Puuid: "puuid-mads"}, nil).Once()
	mockFetcher.On("GetSummonerByPuuid", mock.Anything, "puuid-mads").
		Return((*playerfetcher.SummonerByPuuid)(nil), fmt.Errorf("%w: bad json", requests.ErrDecode)).Once()

	p := profile.New("Mads", "MKmads", "EUW")
	service.FetchProfile(context.Background(), p)

	assert.True(t, p.Account.Ok())
	assert.Equal(t, profile.Failed, p.Summoner.State)
	assert.ErrorIs(t, p.Summoner.Err, requests.ErrDecode)
	assert.Equal(t, profile.Skipped, p.Ranks.State)
	assert.Equal(t, int32(2), sleeps.Load())

	mockFetcher.AssertNotCalled(t, "GetLeagueEntriesBySummoner", mock.Anything, mock.Anything)
	testutil.VerifyAllMocks(t, mockFetcher)
}

func TestFetchProfileLeagueFailure(t *testing.T) {
	service, mockFetcher, _ := setupTestService(t, nil)

	mockFetcher.On("GetAccountByRiotId", mock.Anything, "Snawer", "EUW").
		Return(&playerfetcher.Account{Puuid: "puuid-snawer"}, nil).Once()
	mockFetcher.On("GetSummonerByPuuid", mock.Anything, "puuid-snawer").
		Return(&playerfetcher.SummonerByPuuid{Id: "summoner-snawer", SummonerLevel: 99}, nil).Once()
	mockFetcher.On("GetLeagueEntriesBySummoner", mock.Anything, "summoner-snawer").
		Return(([]leaguefetcher.LeagueEntry)(nil), fmt.Errorf("%w: 429", requests.ErrStatus)).Once()

	p := profile.New("DavidSnawer", "Snawer", "EUW")
	service.FetchProfile(context.Background(), p)

	assert.Equal(t, 99, p.Level())
	assert.Equal(t, profile.Failed, p.Ranks.State)
	assert.ErrorIs(t, p.Ranks.Err, requests.ErrStatus)
	assert.False(t, p.Rank(queuevalues.Solo).IsRanked())
}

func TestFetchProfileIdentityFailureWaitsOnce(t *testing.T) {
	service, mockFetcher, sleeps := setupTestService(t, nil)

	mockFetcher.On("GetAccountByRiotId", mock.Anything, "Kogalee", "EUW").
		Return((*playerfetcher.Account)(nil), fmt.Errorf("%w: refused", requests.ErrTransport)).Once()

	service.FetchProfile(context.Background(), profile.New("Bølle", "Kogalee", "EUW"))

	assert.Equal(t, int32(1), sleeps.Load())
}

func TestFetchAccountCache(t *testing.T) {
	tests := []struct {
		name          string
		cacheReturn   string
		cacheError    error
		expectFetch   bool
		expectCaching bool
	}{
		{
			name:        "hit",
			cacheReturn: "puuid-cached",
		},
		{
			name:          "miss",
			cacheError:    repositories.ErrCacheMiss,
			expectFetch:   true,
			expectCaching: true,
		},
		{
			name:          "cache down",
			cacheError:    errors.New("connection refused"),
			expectFetch:   true,
			expectCaching: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCache := new(testutil.MockAccountCache)
			service, mockFetcher, _ := setupTestService(t, mockCache)

			mockCache.On("GetPuuid", mock.Anything, "EUW1", "Lexybang", "EUW").Return(tt.cacheReturn, tt.cacheError).Once()
			if tt.expectFetch {
				mockFetcher.On("GetAccountByRiotId", mock.Anything, "Lexybang", "EUW").
					Return(&playerfetcher.Account{Puuid: "puuid-fetched"}, nil).Once()
			}
			if tt.expectCaching {
				mockCache.On("SetPuuid", mock.Anything, "EUW1", "Lexybang", "EUW", "puuid-fetched").Return(nil).Once()
			}

			p := profile.New("Nico", "Lexybang", "EUW")
			service.fetchAccount(context.Background(), p)

			require.True(t, p.Account.Ok())
			if tt.expectFetch {
				assert.Equal(t, "puuid-fetched", p.Account.Value)
			} else {
				assert.Equal(t, "puuid-cached", p.Account.Value)
				mockFetcher.AssertNotCalled(t, "GetAccountByRiotId", mock.Anything, mock.Anything, mock.Anything)
			}

			testutil.VerifyAllMocks(t, mockFetcher, mockCache)
		})
	}
}

func TestSleep(t *testing.T) {
	start := time.Now()
	require.NoError(t, Sleep(context.Background(), 20*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Sleep(ctx, time.Hour), context.Canceled)
}

func TestConvertLeagueEntries(t *testing.T) {
	entries := ConvertLeagueEntries([]leaguefetcher.LeagueEntry{
		testutil.NewLeagueEntry("RANKED_SOLO_5x5", "MASTER", "I", 120, 80, 60),
		{LeaguePoints: 3},
	})

	require.Len(t, entries, 2)
	assert.Equal(t, tiervalues.Master, entries[0].Tier)
	assert.Equal(t, queuevalues.Solo, entries[0].Queue)
	assert.Equal(t, queuevalues.Unknown, entries[1].Queue)
	assert.False(t, entries[1].IsRanked())
}
