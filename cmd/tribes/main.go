package main

import (
	"flag"
	"log"
	"os"

	"tribes/internal/database"
)

func main() {
	width := flag.Int("width", 24, "Map width in columns")
	height := flag.Int("height", 18, "Map height in rows")
	tribes := flag.Int("tribes", 4, "Number of tribes (2-6)")
	turns := flag.Int("turns", 150, "Turn limit")
	ruins := flag.Int("ruins", 6, "Ancient ruin sites")
	seed := flag.Int64("seed", 0, "World seed (0 = random)")
	dbPath := flag.String("db", "data/tribes.db", "Match ledger path")
	verbose := flag.Bool("v", false, "Log every game event")
	flag.Parse()

	// Use DB_PATH env var if set, for deployments with persistent disks
	actualDBPath := *dbPath
	if envDBPath := os.Getenv("DB_PATH"); envDBPath != "" {
		actualDBPath = envDBPath
		log.Printf("Using DB_PATH from environment: %s", actualDBPath)
	}

	db, err := database.Open(actualDBPath)
	if err != nil {
		log.Fatalf("Failed to open match ledger: %v", err)
	}
	defer db.Close()

	sim, err := newSimulation(simConfig{
		Width:   *width,
		Height:  *height,
		Tribes:  *tribes,
		Turns:   *turns,
		Ruins:   *ruins,
		Seed:    *seed,
		Verbose: *verbose,
	})
	if err != nil {
		log.Fatalf("Failed to set up the match: %v", err)
	}

	log.Printf("Tribes: %d tribes on a %dx%d world, seed %d",
		*tribes, *width, *height, sim.game.Settings.Seed)

	sim.Run()
	sim.PrintStandings()

	if err := db.RecordMatch(sim.game); err != nil {
		log.Fatalf("Failed to record match: %v", err)
	}
	log.Printf("Match %s recorded in %s", sim.game.ID, actualDBPath)
}
