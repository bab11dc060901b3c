package testutil

import (
	"context"
	"testing"
	"time"

	leaguefetcher "lolladder/fetcher/data/league"
	playerfetcher "lolladder/fetcher/data/player"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(mock.TestingT) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Riot fetcher mock, used on the profile pipeline tests.
// ============================================================================

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) GetAccountByRiotId(ctx context.Context, gameName string, tagLine string) (*playerfetcher.Account, error) {
	args := m.Called(ctx, gameName, tagLine)
	return args.Get(0).(*playerfetcher.Account), args.Error(1)
}

func (m *MockFetcher) GetSummonerByPuuid(ctx context.Context, puuid string) (*playerfetcher.SummonerByPuuid, error) {
	args := m.Called(ctx, puuid)
	return args.Get(0).(*playerfetcher.SummonerByPuuid), args.Error(1)
}

func (m *MockFetcher) GetLeagueEntriesBySummoner(ctx context.Context, summonerId string) ([]leaguefetcher.LeagueEntry, error) {
	args := m.Called(ctx, summonerId)
	return args.Get(0).([]leaguefetcher.LeagueEntry), args.Error(1)
}

// ============================================================================
// Cache mocks.
// ============================================================================

type MockKeyValueStore struct {
	mock.Mock
}

func (m *MockKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockKeyValueStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

type MockAccountCache struct {
	mock.Mock
}

func (m *MockAccountCache) GetPuuid(ctx context.Context, region string, gameName string, tagLine string) (string, error) {
	args := m.Called(ctx, region, gameName, tagLine)
	return args.String(0), args.Error(1)
}

func (m *MockAccountCache) SetPuuid(ctx context.Context, region string, gameName string, tagLine string, puuid string) error {
	args := m.Called(ctx, region, gameName, tagLine, puuid)
	return args.Error(0)
}
