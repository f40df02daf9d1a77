package club

import (
	"database/sql"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new ClubStore.
func New(db *sql.DB) ClubStore {
	return &store{
		db: db,
	}
}

// GetConfig returns the singleton config record, creating it with defaults
// if none exists yet.
func (s *store) GetConfig() (ClubConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.readConfig()
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return ClubConfig{}, err
	}

	now := time.Now().UTC().Unix()
	cfg = ClubConfig{
		ID:        uuid.NewString(),
		ClubName:  DefaultClubName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err = s.db.Exec(`
		INSERT INTO club_config (id, club_name, play_cricket_club_id, play_cricket_team_id, play_cricket_api_key, created_at, updated_at)
		VALUES (?, ?, NULL, NULL, NULL, ?, ?)
	`, cfg.ID, cfg.ClubName, cfg.CreatedAt, cfg.UpdatedAt)
	if err != nil {
		return ClubConfig{}, err
	}
	log.Info("Created default club config", "id", cfg.ID)
	return cfg, nil
}

// SaveConfig upserts the singleton config record. All provided fields
// overwrite the stored row wholesale; there are no partial-field semantics.
func (s *store) SaveConfig(upd ConfigUpdate) (ClubConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := DefaultClubName
	if upd.ClubName != nil {
		name = *upd.ClubName
	}
	now := time.Now().UTC().Unix()

	existing, err := s.readConfig()
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return ClubConfig{}, err
		}
		cfg := ClubConfig{
			ID:                uuid.NewString(),
			ClubName:          name,
			PlayCricketClubID: upd.PlayCricketClubID,
			PlayCricketTeamID: upd.PlayCricketTeamID,
			PlayCricketAPIKey: upd.PlayCricketAPIKey,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		_, err = s.db.Exec(`
			INSERT INTO club_config (id, club_name, play_cricket_club_id, play_cricket_team_id, play_cricket_api_key, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, cfg.ID, cfg.ClubName, cfg.PlayCricketClubID, cfg.PlayCricketTeamID, cfg.PlayCricketAPIKey, cfg.CreatedAt, cfg.UpdatedAt)
		if err != nil {
			return ClubConfig{}, err
		}
		return cfg, nil
	}

	_, err = s.db.Exec(`
		UPDATE club_config
		SET club_name = ?, play_cricket_club_id = ?, play_cricket_team_id = ?, play_cricket_api_key = ?, updated_at = ?
		WHERE id = ?
	`, name, upd.PlayCricketClubID, upd.PlayCricketTeamID, upd.PlayCricketAPIKey, now, existing.ID)
	if err != nil {
		return ClubConfig{}, err
	}

	existing.ClubName = name
	existing.PlayCricketClubID = upd.PlayCricketClubID
	existing.PlayCricketTeamID = upd.PlayCricketTeamID
	existing.PlayCricketAPIKey = upd.PlayCricketAPIKey
	existing.UpdatedAt = now
	return existing, nil
}

// readConfig fetches the singleton row without locking. Callers hold the mutex.
func (s *store) readConfig() (ClubConfig, error) {
	var cfg ClubConfig
	err := s.db.QueryRow(`
		SELECT id, club_name, play_cricket_club_id, play_cricket_team_id, play_cricket_api_key, created_at, updated_at
		FROM club_config
		LIMIT 1
	`).Scan(&cfg.ID, &cfg.ClubName, &cfg.PlayCricketClubID, &cfg.PlayCricketTeamID, &cfg.PlayCricketAPIKey, &cfg.CreatedAt, &cfg.UpdatedAt)
	return cfg, err
}

func (s *store) ListPlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, role, batting_style, bowling_style, photo_url, matches, runs, wickets, catches
		FROM players
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Role, &p.BattingStyle, &p.BowlingStyle, &p.PhotoURL, &p.Matches, &p.Runs, &p.Wickets, &p.Catches); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (s *store) AddPlayer(p Player) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	_, err := s.db.Exec(`
		INSERT INTO players (id, name, role, batting_style, bowling_style, photo_url, matches, runs, wickets, catches, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, p.Name, p.Role, p.BattingStyle, p.BowlingStyle, p.PhotoURL, p.Matches, p.Runs, p.Wickets, p.Catches, time.Now().UTC().Unix())
	if err != nil {
		return "", err
	}
	log.Debug("Added player", "id", id, "name", p.Name)
	return id, nil
}

func (s *store) ListFounders() ([]Founder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, role, bio, photo_url, year
		FROM founders
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var founders []Founder
	for rows.Next() {
		var f Founder
		if err := rows.Scan(&f.ID, &f.Name, &f.Role, &f.Bio, &f.PhotoURL, &f.Year); err != nil {
			return nil, err
		}
		founders = append(founders, f)
	}
	return founders, rows.Err()
}

func (s *store) AddFounder(f Founder) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	_, err := s.db.Exec(`
		INSERT INTO founders (id, name, role, bio, photo_url, year, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, f.Name, f.Role, f.Bio, f.PhotoURL, f.Year, time.Now().UTC().Unix())
	if err != nil {
		return "", err
	}
	log.Debug("Added founder", "id", id, "name", f.Name)
	return id, nil
}

// Collections lists the user tables, for the diagnostic endpoint.
func (s *store) Collections() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%' AND name NOT LIKE 'goose_%'
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *store) Ping() error {
	return s.db.Ping()
}

// Clear wipes all club data. Only used by the ops endpoint and tests.
func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"players", "founders", "club_config"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "table", table, "error", err)
		}
	}
}
