package database

type migration struct {
	id   int
	name string
	sql  string
}

var migrations = []migration{
	{
		id:   1,
		name: "initial_schema",
		sql: `
			-- Matches: one row per finished game
			CREATE TABLE matches (
				id TEXT PRIMARY KEY,
				seed INTEGER NOT NULL,
				map_width INTEGER NOT NULL,
				map_height INTEGER NOT NULL,
				turns INTEGER NOT NULL,
				winner_id TEXT,
				finished_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX idx_matches_finished ON matches(finished_at);

			-- Match players: final standing of every tribe
			CREATE TABLE match_players (
				match_id TEXT NOT NULL,
				player_id TEXT NOT NULL,
				name TEXT NOT NULL,
				color TEXT NOT NULL,
				score INTEGER NOT NULL,
				cities INTEGER NOT NULL,
				techs INTEGER NOT NULL,
				eliminated BOOLEAN NOT NULL,
				PRIMARY KEY (match_id, player_id),
				FOREIGN KEY (match_id) REFERENCES matches(id) ON DELETE CASCADE
			);
			CREATE INDEX idx_match_players_name ON match_players(name);

			-- Match events: the game's event log, for replay and debugging
			CREATE TABLE match_events (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				match_id TEXT NOT NULL,
				turn INTEGER NOT NULL,
				player_id TEXT,
				event_type TEXT NOT NULL,
				message TEXT NOT NULL,
				FOREIGN KEY (match_id) REFERENCES matches(id) ON DELETE CASCADE
			);
			CREATE INDEX idx_match_events_match ON match_events(match_id);
		`,
	},
}
