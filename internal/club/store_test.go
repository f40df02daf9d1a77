package club_test

import (
	"database/sql"
	"testing"

	"github.com/sankalpcc/pavilion/internal/club"
	"github.com/sankalpcc/pavilion/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (club.ClubStore, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := club.New(db)
	return store, db, dbTeardown
}

func strptr(s string) *string { return &s }

func TestGetConfig_CreatesDefault(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	cfg, err := store.GetConfig()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.ID)
	assert.Equal(t, club.DefaultClubName, cfg.ClubName)
	assert.Nil(t, cfg.PlayCricketClubID)
	assert.Nil(t, cfg.PlayCricketTeamID)
	assert.Nil(t, cfg.PlayCricketAPIKey)
	assert.NotZero(t, cfg.CreatedAt)
	assert.Equal(t, cfg.CreatedAt, cfg.UpdatedAt)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM club_config").Scan(&count))
	assert.Equal(t, 1, count, "exactly one config row should exist")
}

func TestGetConfig_Idempotent(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	first, err := store.GetConfig()
	require.NoError(t, err)
	second, err := store.GetConfig()
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeated reads should return the identical record, id included")
}

func TestSaveConfig_CreatesWhenMissing(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	cfg, err := store.SaveConfig(club.ConfigUpdate{
		ClubName:          strptr("Sankalp CC"),
		PlayCricketClubID: strptr("1234"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.ID)
	assert.Equal(t, "Sankalp CC", cfg.ClubName)
	assert.Equal(t, "1234", *cfg.PlayCricketClubID)
	assert.Nil(t, cfg.PlayCricketTeamID)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM club_config").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestSaveConfig_OverwritesWholesale(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	first, err := store.SaveConfig(club.ConfigUpdate{
		ClubName:          strptr("Sankalp CC"),
		PlayCricketClubID: strptr("1234"),
		PlayCricketTeamID: strptr("5678"),
		PlayCricketAPIKey: strptr("secret"),
	})
	require.NoError(t, err)

	// A second payload omitting fields clears them; there are no
	// partial-field semantics.
	second, err := store.SaveConfig(club.ConfigUpdate{
		PlayCricketClubID: strptr("9999"),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "the singleton row is updated in place")
	assert.Equal(t, club.DefaultClubName, second.ClubName, "omitted club name falls back to the default")
	assert.Equal(t, "9999", *second.PlayCricketClubID)
	assert.Nil(t, second.PlayCricketTeamID)
	assert.Nil(t, second.PlayCricketAPIKey)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM club_config").Scan(&count))
	assert.Equal(t, 1, count)

	stored, err := store.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, second.ClubName, stored.ClubName)
	assert.Nil(t, stored.PlayCricketAPIKey)
}

func TestAddAndListPlayers(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	id, err := store.AddPlayer(club.Player{
		Name:         "Aarav Patel",
		Role:         "All-rounder",
		BattingStyle: strptr("RHB"),
		BowlingStyle: strptr("RMF"),
		Matches:      42,
		Runs:         1250,
		Wickets:      58,
		Catches:      19,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = store.AddPlayer(club.Player{Name: "Rohan Mehta", Role: "Batter"})
	require.NoError(t, err)

	players, err := store.ListPlayers()
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, id, players[0].ID)
	assert.Equal(t, "Aarav Patel", players[0].Name)
	assert.Equal(t, 1250, players[0].Runs)
	assert.Nil(t, players[1].BowlingStyle)
}

func TestAddAndListFounders(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	year := 2011
	id, err := store.AddFounder(club.Founder{
		Name: "S. Nair",
		Role: strptr("Founder"),
		Year: &year,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	founders, err := store.ListFounders()
	require.NoError(t, err)
	require.Len(t, founders, 1)
	assert.Equal(t, "S. Nair", founders[0].Name)
	assert.Equal(t, 2011, *founders[0].Year)
	assert.Nil(t, founders[0].Bio)
}

func TestCollections(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	collections, err := store.Collections()
	require.NoError(t, err)
	assert.Contains(t, collections, "club_config")
	assert.Contains(t, collections, "players")
	assert.Contains(t, collections, "founders")
	assert.NotContains(t, collections, "goose_db_version")
}

func TestClear(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.AddPlayer(club.Player{Name: "Vikram Shah", Role: "Bowler"})
	require.NoError(t, err)
	_, err = store.GetConfig()
	require.NoError(t, err)

	store.Clear()

	players, err := store.ListPlayers()
	require.NoError(t, err)
	assert.Empty(t, players)

	// A fresh default config is created on the next read.
	cfg, err := store.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, club.DefaultClubName, cfg.ClubName)
}
