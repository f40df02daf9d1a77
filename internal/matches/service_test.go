package matches_test

import (
	"testing"
	"time"

	"github.com/sankalpcc/pavilion/internal/club"
	"github.com/sankalpcc/pavilion/internal/matches"
	"github.com/sankalpcc/pavilion/internal/metrics"
	"github.com/sankalpcc/pavilion/internal/playcricket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func configuredStore(clubID, teamID, apiKey *string) *club.MockStore {
	store := club.NewMock()
	store.GetConfigFunc = func() (club.ClubConfig, error) {
		return club.ClubConfig{
			ID:                "cfg-1",
			ClubName:          club.DefaultClubName,
			PlayCricketClubID: clubID,
			PlayCricketTeamID: teamID,
			PlayCricketAPIKey: apiKey,
		}, nil
	}
	return store
}

func TestFixtures_IncompleteConfigServesSamples(t *testing.T) {
	cases := []struct {
		name   string
		clubID *string
		teamID *string
		apiKey *string
	}{
		{"nothing configured", nil, nil, nil},
		{"missing club id", nil, strptr("5678"), strptr("key")},
		{"missing team id", strptr("1234"), nil, strptr("key")},
		{"missing api key", strptr("1234"), strptr("5678"), nil},
		{"empty strings treated as missing", strptr(""), strptr(""), strptr("")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := playcricket.NewMockClient()
			svc := matches.NewService(configuredStore(tc.clubID, tc.teamID, tc.apiKey), client, "", metrics.NewMock())

			feed, err := svc.Fixtures(matches.FeedOptions{})
			require.NoError(t, err)
			assert.Equal(t, matches.SourceSample, feed.Source)
			assert.Len(t, feed.Items, 2)
			assert.Empty(t, client.GetMatchesCalls, "external API must not be called")
		})
	}
}

func TestFixtures_SampleLimit(t *testing.T) {
	svc := matches.NewService(configuredStore(nil, nil, nil), playcricket.NewMockClient(), "", metrics.NewMock())

	feed, err := svc.Fixtures(matches.FeedOptions{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, feed.Items, 1)
}

func TestFixtures_LiveFetch(t *testing.T) {
	client := playcricket.NewMockClient()
	client.GetMatchesFunc = func(apiKey string, q playcricket.MatchesQuery) (map[string]any, error) {
		assert.Equal(t, "stored-key", apiKey)
		return map[string]any{"matches": []any{
			map[string]any{"match_date": "23/08/2026", "opposition_club_name": "Greenfield CC", "is_home": true},
		}}, nil
	}

	store := configuredStore(strptr("1234"), strptr("5678"), strptr("stored-key"))
	svc := matches.NewService(store, client, "env-key", metrics.NewMock())

	feed, err := svc.Fixtures(matches.FeedOptions{Season: 2026})
	require.NoError(t, err)
	assert.Equal(t, matches.SourcePlayCricket, feed.Source)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "Greenfield CC", *feed.Items[0].Opposition)
	assert.Equal(t, "Home", feed.Items[0].HomeAway)

	require.Len(t, client.GetMatchesCalls, 1)
	q := client.GetMatchesCalls[0]
	assert.Equal(t, "1234", q.ClubID)
	assert.Equal(t, "5678", q.TeamID)
	assert.Equal(t, 2026, q.Season)
	assert.Equal(t, playcricket.MatchStatusFixture, q.MatchStatus)
}

func TestFixtures_EnvKeyFallback(t *testing.T) {
	client := playcricket.NewMockClient()
	var usedKey string
	client.GetMatchesFunc = func(apiKey string, q playcricket.MatchesQuery) (map[string]any, error) {
		usedKey = apiKey
		return map[string]any{}, nil
	}

	store := configuredStore(strptr("1234"), strptr("5678"), nil)
	svc := matches.NewService(store, client, "env-key", metrics.NewMock())

	_, err := svc.Fixtures(matches.FeedOptions{})
	require.NoError(t, err)
	assert.Equal(t, "env-key", usedKey, "env fallback key should be used when config has none")
}

func TestFixtures_SeasonDefaultsToCurrentYear(t *testing.T) {
	client := playcricket.NewMockClient()
	store := configuredStore(strptr("1234"), strptr("5678"), strptr("key"))
	svc := matches.NewService(store, client, "", metrics.NewMock())

	_, err := svc.Fixtures(matches.FeedOptions{})
	require.NoError(t, err)
	require.Len(t, client.GetMatchesCalls, 1)
	assert.Equal(t, time.Now().UTC().Year(), client.GetMatchesCalls[0].Season)
}

func TestFixtures_LiveLimit(t *testing.T) {
	client := playcricket.NewMockClient()
	client.GetMatchesFunc = func(apiKey string, q playcricket.MatchesQuery) (map[string]any, error) {
		return map[string]any{"matches": []any{
			map[string]any{"match_date": "1"},
			map[string]any{"match_date": "2"},
			map[string]any{"match_date": "3"},
		}}, nil
	}

	store := configuredStore(strptr("1234"), strptr("5678"), strptr("key"))
	svc := matches.NewService(store, client, "", metrics.NewMock())

	feed, err := svc.Fixtures(matches.FeedOptions{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, feed.Items, 2)
}

func TestFixtures_UpstreamErrorPropagates(t *testing.T) {
	client := playcricket.NewMockClient()
	client.GetMatchesFunc = func(apiKey string, q playcricket.MatchesQuery) (map[string]any, error) {
		return nil, &playcricket.UpstreamError{Status: 500, Snippet: "boom"}
	}

	store := configuredStore(strptr("1234"), strptr("5678"), strptr("key"))
	metricsMock := metrics.NewMock()
	svc := matches.NewService(store, client, "", metricsMock)

	_, err := svc.Fixtures(matches.FeedOptions{})
	var upstream *playcricket.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, 1, metricsMock.UpstreamErrorCount)
}

func TestResults_SampleAndLive(t *testing.T) {
	t.Run("sample", func(t *testing.T) {
		svc := matches.NewService(configuredStore(nil, nil, nil), playcricket.NewMockClient(), "", metrics.NewMock())

		feed, err := svc.Results(matches.FeedOptions{})
		require.NoError(t, err)
		assert.Equal(t, matches.SourceSample, feed.Source)
		require.Len(t, feed.Items, 2)
		assert.Equal(t, "Harbor CC", *feed.Items[0].Opposition)
		assert.NotNil(t, feed.Items[0].Result)
	})

	t.Run("live", func(t *testing.T) {
		client := playcricket.NewMockClient()
		client.GetMatchesFunc = func(apiKey string, q playcricket.MatchesQuery) (map[string]any, error) {
			assert.Equal(t, playcricket.MatchStatusResult, q.MatchStatus)
			return map[string]any{"data": []any{
				map[string]any{"match_date": "16/08/2026", "result_description": "Won"},
			}}, nil
		}

		store := configuredStore(strptr("1234"), strptr("5678"), strptr("key"))
		svc := matches.NewService(store, client, "", metrics.NewMock())

		feed, err := svc.Results(matches.FeedOptions{})
		require.NoError(t, err)
		assert.Equal(t, matches.SourcePlayCricket, feed.Source)
		require.Len(t, feed.Items, 1)
		assert.Equal(t, "Won", *feed.Items[0].Result)
	})
}
