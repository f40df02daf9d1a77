package notifier

import (
	"github.com/charmbracelet/log"
	"github.com/sankalpcc/pavilion/internal/matches"
)

// Noop is the Notifier used when no Slack credentials are configured.
type Noop struct{}

var _ Notifier = Noop{}

// NewNoop creates a no-op notifier.
func NewNoop() Noop {
	return Noop{}
}

func (Noop) SendFixturesDigest(feed matches.FixtureFeed, dryRun bool) error {
	log.Debug("Slack not configured, skipping fixtures digest", "fixtures", len(feed.Items))
	return nil
}
