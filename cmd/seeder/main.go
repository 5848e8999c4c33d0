package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/courtkeep/courtkeep/internal/club"
	"github.com/courtkeep/courtkeep/internal/database"
	"github.com/courtkeep/courtkeep/internal/tennis"
	"github.com/joho/godotenv"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":           "courtkeep.db",
		"TURSO_PRIMARY_URL": "",
		"TURSO_AUTH_TOKEN":  "",
		"MIGRATIONS_DIR":    "./migrations",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

var roster = []tennis.Player{
	{ID: "seed-1", Name: "Kim Minjun", Age: 31, PlayingStyle: tennis.StyleAggressiveBaseliner, Active: true},
	{ID: "seed-2", Name: "Lee Seoyeon", Age: 28, PlayingStyle: tennis.StyleCounterpuncher, Active: true},
	{ID: "seed-3", Name: "Park Jiho", Age: 35, PlayingStyle: tennis.StyleServeAndVolley, Active: true},
	{ID: "seed-4", Name: "Choi Haeun", Age: 24, PlayingStyle: tennis.StyleAllCourt, Active: true},
	{ID: "seed-5", Name: "Jung Woojin", Age: 41, PlayingStyle: tennis.StyleAllCourt, Active: true},
	{ID: "seed-6", Name: "Han Yuna", Age: 26, PlayingStyle: tennis.StyleAggressiveBaseliner, Active: false},
}

var scores = []string{
	"6-4,6-2",
	"7-5,6-4",
	"6-3,4-6,6-3",
	"7-6,6-4",
	"6-1,6-1",
	"6-0", // the score that doubles the loser's bet fee
	"5-5", // draw
	"6-6", // draw
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"], cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	store := club.New(db, tennis.TieSideA)

	if err := store.UpsertPlayers(roster); err != nil {
		log.Fatalf("Failed to seed players: %s", err)
	}
	log.Info("Seeded roster", "players", len(roster))

	const numMatches = 200
	startTime := time.Now()
	seeded := 0

	for i := 0; i < numMatches; i++ {
		matchDate := time.Now().AddDate(0, 0, -rand.Intn(90)).Unix()
		score := scores[rand.Intn(len(scores))]

		var sub club.MatchSubmission
		if rand.Intn(2) == 0 {
			a, b := pickTwo()
			sub = club.MatchSubmission{
				MatchType: tennis.MatchTypeSingles,
				Winner1ID: a,
				Loser1ID:  b,
				Score:     score,
				MatchDate: matchDate,
			}
		} else {
			a, b, c, d := pickFour()
			sub = club.MatchSubmission{
				MatchType: tennis.MatchTypeDoubles,
				Winner1ID: a,
				Winner2ID: b,
				Loser1ID:  c,
				Loser2ID:  d,
				Score:     score,
				MatchDate: matchDate,
			}
		}

		if _, err := store.CreateMatch(sub); err != nil {
			log.Fatalf("Failed to seed match: %s", err)
		}
		seeded++
	}

	fmt.Printf("Seeded %d matches in %s\n", seeded, time.Since(startTime))
}

func pickTwo() (string, string) {
	perm := rand.Perm(len(roster))
	return roster[perm[0]].ID, roster[perm[1]].ID
}

func pickFour() (string, string, string, string) {
	perm := rand.Perm(len(roster))
	return roster[perm[0]].ID, roster[perm[1]].ID, roster[perm[2]].ID, roster[perm[3]].ID
}
