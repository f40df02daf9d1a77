package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

type seedPlayer struct {
	name         string
	role         string
	battingStyle string
	bowlingStyle string
	matches      int
	runs         int
	wickets      int
	catches      int
}

type seedFounder struct {
	name string
	role string
	bio  string
	year int
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	// Connect directly to the primary database
	dbURL := fmt.Sprintf("%s?authToken=%s", cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		log.Fatalf("Failed to open primary database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to primary database: %s", err)
	}

	log.Info("Successfully connected to the primary database.")

	players := []seedPlayer{
		{"Aarav Patel", "All-rounder", "RHB", "RMF", 42, 1250, 58, 19},
		{"Rohan Mehta", "Batter", "RHB", "", 38, 980, 4, 12},
		{"Vikram Shah", "Bowler", "RHB", "LS", 45, 320, 72, 22},
		{"Kunal Joshi", "Wicket-keeper", "LHB", "", 31, 640, 0, 34},
	}

	now := time.Now().UTC().Unix()
	for _, p := range players {
		var bowling any
		if p.bowlingStyle != "" {
			bowling = p.bowlingStyle
		}
		_, err := db.Exec(`
			INSERT INTO players (id, name, role, batting_style, bowling_style, photo_url, matches, runs, wickets, catches, created_at)
			VALUES (?, ?, ?, ?, ?, NULL, ?, ?, ?, ?, ?)
		`, uuid.NewString(), p.name, p.role, p.battingStyle, bowling, p.matches, p.runs, p.wickets, p.catches, now)
		if err != nil {
			log.Fatalf("Failed to seed player %s: %s", p.name, err)
		}
		log.Info("Seeded player", "name", p.name)
	}

	founders := []seedFounder{
		{"S. Nair", "Founder", "Brought the community together to form Sankalp CC.", 2011},
		{"A. Desai", "Co-Founder", "Early captain and coach, grew the junior program.", 2011},
	}

	for _, f := range founders {
		_, err := db.Exec(`
			INSERT INTO founders (id, name, role, bio, photo_url, year, created_at)
			VALUES (?, ?, ?, ?, NULL, ?, ?)
		`, uuid.NewString(), f.name, f.role, f.bio, f.year, now)
		if err != nil {
			log.Fatalf("Failed to seed founder %s: %s", f.name, err)
		}
		log.Info("Seeded founder", "name", f.name)
	}

	log.Info("Seeding complete.")
}
