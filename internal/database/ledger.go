package database

import (
	"fmt"
	"time"

	"tribes/internal/game"
)

// MatchRecord is one finished game.
type MatchRecord struct {
	ID         string    `db:"id"`
	Seed       int64     `db:"seed"`
	MapWidth   int       `db:"map_width"`
	MapHeight  int       `db:"map_height"`
	Turns      int       `db:"turns"`
	WinnerID   *string   `db:"winner_id"`
	FinishedAt time.Time `db:"finished_at"`
}

// MatchPlayerRecord is one tribe's final standing in a match.
type MatchPlayerRecord struct {
	MatchID    string `db:"match_id"`
	PlayerID   string `db:"player_id"`
	Name       string `db:"name"`
	Color      string `db:"color"`
	Score      int    `db:"score"`
	Cities     int    `db:"cities"`
	Techs      int    `db:"techs"`
	Eliminated bool   `db:"eliminated"`
}

// MatchEventRecord is one entry of a match's event log.
type MatchEventRecord struct {
	ID       int64  `db:"id"`
	MatchID  string `db:"match_id"`
	Turn     int    `db:"turn"`
	PlayerID string `db:"player_id"`
	Type     string `db:"event_type"`
	Message  string `db:"message"`
}

// PlayerStats aggregates a tribe name's results across matches.
type PlayerStats struct {
	Name      string `db:"name"`
	Matches   int    `db:"matches"`
	Wins      int    `db:"wins"`
	BestScore int    `db:"best_score"`
}

// RecordMatch writes a finished game's outcome and event log in one
// transaction.
func (db *DB) RecordMatch(g *game.GameState) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var winnerID *string
	if w := g.GetWinner(); w != nil {
		winnerID = &w.ID
	}
	_, err = tx.Exec(`
		INSERT INTO matches (id, seed, map_width, map_height, turns, winner_id)
		VALUES (?, ?, ?, ?, ?, ?)`,
		g.ID, g.Settings.Seed, g.Settings.MapWidth, g.Settings.MapHeight, g.Turn, winnerID)
	if err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}

	for _, id := range g.PlayerOrder {
		p := g.Players[id]
		row := MatchPlayerRecord{
			MatchID:    g.ID,
			PlayerID:   p.ID,
			Name:       p.Name,
			Color:      string(p.Color),
			Score:      g.Score(p.ID),
			Cities:     g.CountCities(p.ID),
			Techs:      len(p.Techs),
			Eliminated: p.Eliminated,
		}
		_, err = tx.NamedExec(`
			INSERT INTO match_players (match_id, player_id, name, color, score, cities, techs, eliminated)
			VALUES (:match_id, :player_id, :name, :color, :score, :cities, :techs, :eliminated)`, row)
		if err != nil {
			return fmt.Errorf("failed to insert standing for %s: %w", p.Name, err)
		}
	}

	for _, e := range g.Events {
		_, err = tx.Exec(`
			INSERT INTO match_events (match_id, turn, player_id, event_type, message)
			VALUES (?, ?, ?, ?, ?)`,
			g.ID, e.Turn, e.PlayerID, e.Type, e.Message)
		if err != nil {
			return fmt.Errorf("failed to insert event: %w", err)
		}
	}

	return tx.Commit()
}

// ListRecentMatches returns the most recently finished matches.
func (db *DB) ListRecentMatches(limit int) ([]MatchRecord, error) {
	var records []MatchRecord
	err := db.conn.Select(&records, `
		SELECT id, seed, map_width, map_height, turns, winner_id, finished_at
		FROM matches
		ORDER BY finished_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return records, nil
}

// MatchStandings returns the final standings of a match, best score first.
func (db *DB) MatchStandings(matchID string) ([]MatchPlayerRecord, error) {
	var records []MatchPlayerRecord
	err := db.conn.Select(&records, `
		SELECT match_id, player_id, name, color, score, cities, techs, eliminated
		FROM match_players
		WHERE match_id = ?
		ORDER BY score DESC`, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load standings: %w", err)
	}
	return records, nil
}

// MatchEvents returns a match's event log in order.
func (db *DB) MatchEvents(matchID string) ([]MatchEventRecord, error) {
	var records []MatchEventRecord
	err := db.conn.Select(&records, `
		SELECT id, match_id, turn, player_id, event_type, message
		FROM match_events
		WHERE match_id = ?
		ORDER BY id`, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	return records, nil
}

// StatsForName aggregates results for a tribe name across all matches.
func (db *DB) StatsForName(name string) (*PlayerStats, error) {
	var stats PlayerStats
	err := db.conn.Get(&stats, `
		SELECT
			mp.name AS name,
			COUNT(*) AS matches,
			COALESCE(SUM(CASE WHEN m.winner_id = mp.player_id THEN 1 ELSE 0 END), 0) AS wins,
			COALESCE(MAX(mp.score), 0) AS best_score
		FROM match_players mp
		JOIN matches m ON m.id = mp.match_id
		WHERE mp.name = ?
		GROUP BY mp.name`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats for %s: %w", name, err)
	}
	return &stats, nil
}
