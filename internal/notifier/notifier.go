package notifier

import "github.com/sankalpcc/pavilion/internal/matches"

// Notifier defines a high-level interface for announcing club events.
// This decouples the rest of the application from the specific notification
// provider (e.g., Slack).
type Notifier interface {
	// SendFixturesDigest announces the upcoming fixtures to the club channel.
	SendFixturesDigest(feed matches.FixtureFeed, dryRun bool) error
}
