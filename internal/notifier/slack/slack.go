package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sankalpcc/pavilion/internal/matches"
	"github.com/sankalpcc/pavilion/internal/metrics"
	"github.com/sankalpcc/pavilion/internal/notifier"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) error {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return nil
}

// SendFixturesDigest announces the upcoming fixtures to the club channel.
func (s *Notifier) SendFixturesDigest(feed matches.FixtureFeed, dryRun bool) error {
	msg := s.formatFixturesDigest(feed)
	return s.sendMessage(msg, dryRun)
}

// formatFixturesDigest creates the Slack message for the upcoming fixtures using Block Kit.
func (s *Notifier) formatFixturesDigest(feed matches.FixtureFeed) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏏 Upcoming fixtures 🏏", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(feed.Items) == 0 {
		emptyText := slack.NewTextBlockObject("plain_text", "No fixtures scheduled.", false, false)
		blocks = append(blocks, slack.NewSectionBlock(emptyText, nil, nil))
	}

	for _, fixture := range feed.Items {
		detailsText := fmt.Sprintf(
			"%s vs %s (%s)\n%s, %s at %s",
			orTBC(fixture.Date),
			orTBC(fixture.Opposition),
			fixture.HomeAway,
			orTBC(fixture.Competition),
			orTBC(fixture.Ground),
			orTBC(fixture.StartTime),
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, false, false), nil, nil))
	}

	if feed.Source == matches.SourceSample {
		noteText := slack.NewTextBlockObject("plain_text", "Sample data: Play-Cricket is not configured.", false, false)
		blocks = append(blocks, slack.NewContextBlock("", noteText))
	}

	msg := slack.NewBlockMessage(blocks...)
	return msg
}

func orTBC(s *string) string {
	if s == nil || *s == "" {
		return "TBC"
	}
	return *s
}
