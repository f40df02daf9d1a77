package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	PlayCricket   PlayCricketConfig
	Slack         SlackConfig
	Turso         TursoConfig
}

// PlayCricketConfig carries the environment-level fallback credentials for
// the Play-Cricket integration. Per-club credentials live in the stored
// club config record; this key is only consulted when the record has none.
type PlayCricketConfig struct {
	APIKey string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
