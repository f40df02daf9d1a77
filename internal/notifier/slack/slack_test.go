package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/sankalpcc/pavilion/internal/matches"
	"github.com/sankalpcc/pavilion/internal/metrics"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func sampleFeed() matches.FixtureFeed {
	return matches.FixtureFeed{Source: matches.SourceSample, Items: matches.SampleFixtures()}
}

func TestSendFixturesDigest_DryRun(t *testing.T) {
	metricsMock := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metricsMock)

	err := notifier.SendFixturesDigest(sampleFeed(), true)
	require.NoError(t, err)
	assert.Equal(t, 0, metricsMock.NotifSentCount)
}

func TestSendFixturesDigest_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metricsMock := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metricsMock)

	err := notifier.SendFixturesDigest(sampleFeed(), false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metricsMock.NotifSentCount)
	assert.Equal(t, 0, metricsMock.NotifFailedCount)
}

func TestSendFixturesDigest_Failure(t *testing.T) {
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", errors.New("channel_not_found")
		},
	}

	metricsMock := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metricsMock)

	err := notifier.SendFixturesDigest(sampleFeed(), false)

	require.Error(t, err)
	assert.Equal(t, 1, metricsMock.NotifFailedCount)
}

func TestFormatFixturesDigest(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	msg := notifier.formatFixturesDigest(sampleFeed())

	// Header + two fixture sections + sample-data context note.
	require.Len(t, msg.Blocks.BlockSet, 4)
}
