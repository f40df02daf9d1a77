package club

import (
	"database/sql"
	"sync"
)

// DefaultClubName is used when no config record exists yet and when an
// update omits the club name.
const DefaultClubName = "Sankalp"

// store handles all database operations for the club.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// ClubConfig is the singleton configuration record. At most one row of
// this kind exists; reads create it if missing.
type ClubConfig struct {
	ID                string  `json:"id"`
	ClubName          string  `json:"club_name"`
	PlayCricketClubID *string `json:"play_cricket_club_id"`
	PlayCricketTeamID *string `json:"play_cricket_team_id"`
	PlayCricketAPIKey *string `json:"play_cricket_api_key"`
	CreatedAt         int64   `json:"created_at"`
	UpdatedAt         int64   `json:"updated_at"`
}

// ConfigUpdate is the payload for a config upsert. All provided fields
// overwrite the stored record; an omitted club name falls back to the
// default, omitted integration fields are written as null.
type ConfigUpdate struct {
	ClubName          *string `json:"club_name"`
	PlayCricketClubID *string `json:"play_cricket_club_id"`
	PlayCricketTeamID *string `json:"play_cricket_team_id"`
	PlayCricketAPIKey *string `json:"play_cricket_api_key"`
}

// Player is a roster record. Lifecycle is create-then-list only.
type Player struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	BattingStyle *string `json:"batting_style"`
	BowlingStyle *string `json:"bowling_style"`
	PhotoURL     *string `json:"photo_url"`
	Matches      int     `json:"matches"`
	Runs         int     `json:"runs"`
	Wickets      int     `json:"wickets"`
	Catches      int     `json:"catches"`
}

// Founder is a founding-member record.
type Founder struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Role     *string `json:"role"`
	Bio      *string `json:"bio"`
	PhotoURL *string `json:"photo_url"`
	Year     *int    `json:"year"`
}
