package matches

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/sankalpcc/pavilion/internal/club"
	"github.com/sankalpcc/pavilion/internal/metrics"
	"github.com/sankalpcc/pavilion/internal/playcricket"
)

type service struct {
	store       club.ClubStore
	client      playcricket.PlayCricketClient
	fallbackKey string
	metrics     metrics.Metrics
}

// NewService creates a new MatchService. fallbackKey is the environment
// API key used when the stored config carries none.
func NewService(store club.ClubStore, client playcricket.PlayCricketClient, fallbackKey string, metricsSvc metrics.Metrics) MatchService {
	return &service{
		store:       store,
		client:      client,
		fallbackKey: fallbackKey,
		metrics:     metricsSvc,
	}
}

// credentials resolves the Play-Cricket credentials from the stored config
// plus the environment fallback key. ok is false when any piece is missing,
// in which case the caller serves samples.
func (s *service) credentials(cfg club.ClubConfig) (q playcricket.MatchesQuery, apiKey string, ok bool) {
	if cfg.PlayCricketClubID == nil || *cfg.PlayCricketClubID == "" {
		return q, "", false
	}
	if cfg.PlayCricketTeamID == nil || *cfg.PlayCricketTeamID == "" {
		return q, "", false
	}
	apiKey = s.fallbackKey
	if cfg.PlayCricketAPIKey != nil && *cfg.PlayCricketAPIKey != "" {
		apiKey = *cfg.PlayCricketAPIKey
	}
	if apiKey == "" {
		return q, "", false
	}
	q.ClubID = *cfg.PlayCricketClubID
	q.TeamID = *cfg.PlayCricketTeamID
	return q, apiKey, true
}

func normalizeOptions(opts FeedOptions) FeedOptions {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if opts.Season <= 0 {
		opts.Season = time.Now().UTC().Year()
	}
	return opts
}

func truncate[T any](items []T, limit int) []T {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

func (s *service) Fixtures(opts FeedOptions) (FixtureFeed, error) {
	opts = normalizeOptions(opts)

	cfg, err := s.store.GetConfig()
	if err != nil {
		return FixtureFeed{}, err
	}

	q, apiKey, ok := s.credentials(cfg)
	if !ok {
		log.Debug("Play-Cricket not configured, serving sample fixtures")
		s.metrics.IncFeedRequest("fixtures", string(SourceSample))
		return FixtureFeed{Source: SourceSample, Items: truncate(SampleFixtures(), opts.Limit)}, nil
	}

	q.Season = opts.Season
	q.MatchStatus = playcricket.MatchStatusFixture
	raw, err := s.client.GetMatches(apiKey, q)
	if err != nil {
		s.metrics.IncUpstreamError()
		return FixtureFeed{}, err
	}

	s.metrics.IncFeedRequest("fixtures", string(SourcePlayCricket))
	return FixtureFeed{Source: SourcePlayCricket, Items: truncate(NormalizeFixtures(raw), opts.Limit)}, nil
}

func (s *service) Results(opts FeedOptions) (ResultFeed, error) {
	opts = normalizeOptions(opts)

	cfg, err := s.store.GetConfig()
	if err != nil {
		return ResultFeed{}, err
	}

	q, apiKey, ok := s.credentials(cfg)
	if !ok {
		log.Debug("Play-Cricket not configured, serving sample results")
		s.metrics.IncFeedRequest("results", string(SourceSample))
		return ResultFeed{Source: SourceSample, Items: truncate(SampleResults(), opts.Limit)}, nil
	}

	q.Season = opts.Season
	q.MatchStatus = playcricket.MatchStatusResult
	raw, err := s.client.GetMatches(apiKey, q)
	if err != nil {
		s.metrics.IncUpstreamError()
		return ResultFeed{}, err
	}

	s.metrics.IncFeedRequest("results", string(SourcePlayCricket))
	return ResultFeed{Source: SourcePlayCricket, Items: truncate(NormalizeResults(raw), opts.Limit)}, nil
}
