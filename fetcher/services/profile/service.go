package profileservice

import (
	"context"
	"errors"
	"time"

	"lolladder/fetcher/data"
	leaguefetcher "lolladder/fetcher/data/league"
	"lolladder/fetcher/repositories"
	"lolladder/pkg/logger"
	"lolladder/pkg/messages"
	"lolladder/pkg/models/profile"
	tiervalues "lolladder/pkg/riotvalues/tier"

	"golang.org/x/sync/errgroup"
)

// Sleeper waits between two dependent steps of a pipeline.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep waits for the duration or until the context is done.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ProfileService fills the roster profiles from the Riot API.
type ProfileService struct {
	fetcher   data.Fetcher
	cache     repositories.AccountCacheRepository
	logger    *logger.NewLogger
	region    string
	stepDelay time.Duration
	sleep     Sleeper
}

// ProfileServiceDeps contains the dependencies, Cache is optional.
type ProfileServiceDeps struct {
	Fetcher   data.Fetcher
	Cache     repositories.AccountCacheRepository
	Logger    *logger.NewLogger
	Region    string
	StepDelay time.Duration
	Sleep     Sleeper
}

// NewProfileService creates a new profile service.
func NewProfileService(deps *ProfileServiceDeps) *ProfileService {
	sleep := deps.Sleep
	if sleep == nil {
		sleep = Sleep
	}

	return &ProfileService{
		fetcher:   deps.Fetcher,
		cache:     deps.Cache,
		logger:    deps.Logger,
		region:    deps.Region,
		stepDelay: deps.StepDelay,
		sleep:     sleep,
	}
}

// FetchAll runs one pipeline per profile and waits for all of them.
// A profile failing never stops the others.
func (s *ProfileService) FetchAll(ctx context.Context, profiles []*profile.Profile) {
	var g errgroup.Group

	s.logger.Infof("Fetching %d profiles with a %s step delay.", len(profiles), s.stepDelay)

	for _, p := range profiles {
		g.Go(func() error {
			s.FetchProfile(ctx, p)
			return nil
		})
	}

	// Nothing returns an error, this is only the barrier.
	g.Wait()

	ranked := 0
	for _, p := range profiles {
		if p.Ranks.Ok() {
			ranked++
		}
	}
	s.logger.Infof("Finished fetching: %d of %d profiles complete.", ranked, len(profiles))
}

// FetchProfile runs account, summoner and league steps in order for one profile.
// Failures are recorded on the profile and the dependent steps are skipped.
func (s *ProfileService) FetchProfile(ctx context.Context, p *profile.Profile) {
	s.fetchAccount(ctx, p)

	// Keep the shared key under its requests per second quota.
	s.wait(ctx, p)

	if !p.Account.Ok() {
		s.logger.Warnf(messages.MissingPrerequisite, "summoner", p.RiotID(), "puuid")
		p.Summoner.Skip()
		p.Ranks.Skip()
		return
	}

	s.fetchSummoner(ctx, p)
	s.wait(ctx, p)

	if !p.Summoner.Ok() {
		s.logger.Warnf(messages.MissingPrerequisite, "ranked entries", p.RiotID(), "summoner id")
		p.Ranks.Skip()
		return
	}

	s.fetchRanks(ctx, p)
}

func (s *ProfileService) wait(ctx context.Context, p *profile.Profile) {
	if err := s.sleep(ctx, s.stepDelay); err != nil {
		s.logger.Debugf("Delay for %s interrupted: %v", p.RiotID(), err)
	}
}

// fetchAccount resolves the puuid, from the cache when possible.
func (s *ProfileService) fetchAccount(ctx context.Context, p *profile.Profile) {
	if s.cache != nil {
		puuid, err := s.cache.GetPuuid(ctx, s.region, p.GameName, p.TagLine)
		switch {
		case err == nil:
			s.logger.Debugf("Account cache hit for %s.", p.RiotID())
			p.Account.Set(puuid)
			return
		case !errors.Is(err, repositories.ErrCacheMiss):
			s.logger.Warnf("Account cache unavailable for %s: %v", p.RiotID(), err)
		}
	}

	account, err := s.fetcher.GetAccountByRiotId(ctx, p.GameName, p.TagLine)
	if err != nil {
		s.logger.Errorf("Couldn't get the account of %s: %v", p.RiotID(), err)
		p.Account.Fail(err)
		return
	}

	p.Account.Set(account.Puuid)

	if s.cache != nil {
		if err := s.cache.SetPuuid(ctx, s.region, p.GameName, p.TagLine, account.Puuid); err != nil {
			s.logger.Warnf("Couldn't cache the account of %s: %v", p.RiotID(), err)
		}
	}
}

func (s *ProfileService) fetchSummoner(ctx context.Context, p *profile.Profile) {
	summoner, err := s.fetcher.GetSummonerByPuuid(ctx, p.Account.Value)
	if err != nil {
		s.logger.Errorf("Couldn't get the summoner of %s: %v", p.RiotID(), err)
		p.Summoner.Fail(err)
		return
	}

	p.Summoner.Set(profile.Summoner{
		Id:            summoner.Id,
		Level:         summoner.SummonerLevel,
		ProfileIconId: summoner.ProfileIconId,
	})
}

func (s *ProfileService) fetchRanks(ctx context.Context, p *profile.Profile) {
	entries, err := s.fetcher.GetLeagueEntriesBySummoner(ctx, p.Summoner.Value.Id)
	if err != nil {
		s.logger.Errorf("Couldn't get the ranked entries of %s: %v", p.RiotID(), err)
		p.Ranks.Fail(err)
		return
	}

	p.SetRanks(ConvertLeagueEntries(entries))
	s.logger.Debugf("Fetched %s: %d ranked entries.", p.RiotID(), len(entries))
}

// ConvertLeagueEntries turns the API entries into rank entries.
func ConvertLeagueEntries(entries []leaguefetcher.LeagueEntry) []tiervalues.Entry {
	converted := make([]tiervalues.Entry, 0, len(entries))
	for _, entry := range entries {
		converted = append(converted, tiervalues.NewEntry(
			leaguefetcher.StringValue(entry.QueueType),
			leaguefetcher.StringValue(entry.Tier),
			leaguefetcher.StringValue(entry.Rank),
			entry.LeaguePoints,
			entry.Wins,
			entry.Losses,
		))
	}
	return converted
}
