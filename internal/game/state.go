// Package game contains the core rules engine for Tribes: the hex tile
// map, units and movement, cities and production, combat, the tech and
// policy trees, and the turn pipeline. It has no I/O; persistence and
// presentation live elsewhere.
package game

import (
	"math/rand"
)

// Settings contains the configurable game parameters.
type Settings struct {
	MapWidth  int   `json:"mapWidth"`
	MapHeight int   `json:"mapHeight"`
	TurnLimit int   `json:"turnLimit"`
	Seed      int64 `json:"seed"`
}

// DefaultSettings returns a standard small game.
func DefaultSettings() Settings {
	return Settings{
		MapWidth:  24,
		MapHeight: 18,
		TurnLimit: 150,
	}
}

// GameState represents the complete state of a game.
type GameState struct {
	ID              string             `json:"id"`
	Settings        Settings           `json:"settings"`
	Turn            int                `json:"turn"`
	CurrentPlayerID string             `json:"currentPlayerId"`
	PlayerOrder     []string           `json:"playerOrder"`
	Players         map[string]*Player `json:"players"`
	Tiles           *TileMap           `json:"tiles"`
	Units           map[string]*Unit   `json:"units"`
	Cities          map[string]*City   `json:"cities"`

	// Events is the append-only log of notable happenings, flushed to
	// the match ledger when the game ends.
	Events []Event `json:"events"`

	rng *rand.Rand
}

// Event is one entry in the game's event log.
type Event struct {
	Turn     int    `json:"turn"`
	PlayerID string `json:"playerId"`
	Type     string `json:"type"`
	Message  string `json:"message"`
}

// Event types recorded in the log.
const (
	EventCityFounded      = "city_founded"
	EventCityGrowth       = "city_growth"
	EventCityCaptured     = "city_captured"
	EventProductionDone   = "production_done"
	EventTechResearched   = "tech_researched"
	EventPolicyAdopted    = "policy_adopted"
	EventGoldenAge        = "golden_age"
	EventRuinExplored     = "ruin_explored"
	EventAttackSuccess    = "attack_success"
	EventAttackRepelled   = "attack_repelled"
	EventImprovementBuilt = "improvement_built"
	EventEliminated       = "eliminated"
	EventTurnStart        = "turn_start"
)

// NewGame creates a game over the given map. The seed drives combat
// variance and reward rolls, so a fixed seed replays identically.
func NewGame(id string, settings Settings, tiles *TileMap) *GameState {
	if settings.Seed == 0 {
		settings.Seed = rand.Int63()
	}
	return &GameState{
		ID:       id,
		Settings: settings,
		Turn:     1,
		Players:  make(map[string]*Player),
		Tiles:    tiles,
		Units:    make(map[string]*Unit),
		Cities:   make(map[string]*City),
		rng:      rand.New(rand.NewSource(settings.Seed)),
	}
}

// AddPlayer seats a tribe at the table.
func (g *GameState) AddPlayer(p *Player) {
	g.Players[p.ID] = p
	g.PlayerOrder = append(g.PlayerOrder, p.ID)
	if g.CurrentPlayerID == "" {
		g.CurrentPlayerID = p.ID
	}
}

// GetCurrentPlayer returns the tribe whose turn it is.
func (g *GameState) GetCurrentPlayer() *Player {
	return g.Players[g.CurrentPlayerID]
}

// logEvent appends an entry to the game's event log.
func (g *GameState) logEvent(playerID, eventType, message string) {
	g.Events = append(g.Events, Event{
		Turn:     g.Turn,
		PlayerID: playerID,
		Type:     eventType,
		Message:  message,
	})
}

// EndTurn finishes the current tribe's turn. When the last tribe in the
// order ends its turn, the between-turns pipeline runs for everyone and a
// new turn begins.
func (g *GameState) EndTurn(playerID string) error {
	if g.CurrentPlayerID != playerID {
		return ErrNotYourTurn
	}
	if g.IsGameOver() {
		return ErrGameOver
	}

	next := g.nextActivePlayer(playerID)
	wrapped := next == "" || g.playerIndex(next) <= g.playerIndex(playerID)
	if wrapped {
		g.runTurnPipeline()
		g.Turn++
		next = g.firstActivePlayer()
	}
	g.CurrentPlayerID = next
	return nil
}

// runTurnPipeline applies between-turns processing for every tribe:
// production, growth, research, culture, golden ages, milestones, and
// unit refresh.
func (g *GameState) runTurnPipeline() {
	for _, id := range g.PlayerOrder {
		p := g.Players[id]
		if p == nil || p.Eliminated {
			continue
		}

		var total Yields
		for _, c := range g.Cities {
			if c.Owner != id {
				continue
			}
			g.processProduction(c)
			g.processGrowth(c)
			total = total.Add(g.cityYields(c))
		}

		p.Gold += total.Gold
		p.Culture += total.Culture
		g.addScience(p, total.Science)
		if p.Researching == TechNone {
			if t := p.nextResearchable(); t != TechNone {
				p.Researching = t
			}
		}

		if p.GoldenAgeTurns > 0 {
			p.GoldenAgeTurns--
		}
		g.checkMilestones(p)
	}

	for _, u := range g.Units {
		u.ResetTurn()
	}
}

// playerIndex returns a player's seat in the turn order, or -1.
func (g *GameState) playerIndex(playerID string) int {
	for i, id := range g.PlayerOrder {
		if id == playerID {
			return i
		}
	}
	return -1
}

// nextActivePlayer returns the next non-eliminated tribe after playerID
// in the order, wrapping around; empty if none remain.
func (g *GameState) nextActivePlayer(playerID string) string {
	start := g.playerIndex(playerID)
	n := len(g.PlayerOrder)
	for i := 1; i <= n; i++ {
		id := g.PlayerOrder[(start+i)%n]
		if p := g.Players[id]; p != nil && !p.Eliminated {
			return id
		}
	}
	return ""
}

// firstActivePlayer returns the first non-eliminated tribe in the order.
func (g *GameState) firstActivePlayer() string {
	for _, id := range g.PlayerOrder {
		if p := g.Players[id]; p != nil && !p.Eliminated {
			return id
		}
	}
	return ""
}

// checkElimination eliminates a tribe that has founded a city before and
// now holds no cities and no settlers.
func (g *GameState) checkElimination(playerID string) {
	p := g.Players[playerID]
	if p == nil || p.Eliminated || !p.FoundedCity {
		return
	}
	if g.CountCities(playerID) > 0 {
		return
	}
	for _, u := range g.Units {
		if u.Owner == playerID && u.Type == UnitSettler {
			return
		}
	}
	p.Eliminated = true
	g.logEvent(playerID, EventEliminated, p.Name)
}

// Score returns a tribe's victory score.
func (g *GameState) Score(playerID string) int {
	p := g.Players[playerID]
	if p == nil {
		return 0
	}
	score := 0
	for _, c := range g.Cities {
		if c.Owner == playerID {
			score += 10 + 2*c.Population
			for b := range c.Buildings {
				if b.Info().IsWonder {
					score += 15
				}
			}
		}
	}
	score += 5 * len(p.Techs)
	score += 3 * len(p.Policies)
	return score
}

// IsGameOver checks if the game has ended: one tribe left standing, or
// the turn limit reached.
func (g *GameState) IsGameOver() bool {
	active := 0
	for _, p := range g.Players {
		if !p.Eliminated {
			active++
		}
	}
	if active <= 1 {
		return true
	}
	return g.Settings.TurnLimit > 0 && g.Turn > g.Settings.TurnLimit
}

// GetWinner returns the winning tribe, or nil if the game is not over or
// the top score is tied.
func (g *GameState) GetWinner() *Player {
	if !g.IsGameOver() {
		return nil
	}

	// Last tribe standing wins outright.
	var last *Player
	active := 0
	for _, p := range g.Players {
		if !p.Eliminated {
			active++
			last = p
		}
	}
	if active == 1 {
		return last
	}

	// Otherwise highest score at the turn limit, ties yield no winner.
	var best *Player
	bestScore, tied := -1, false
	for _, p := range g.Players {
		if p.Eliminated {
			continue
		}
		s := g.Score(p.ID)
		switch {
		case s > bestScore:
			best, bestScore, tied = p, s, false
		case s == bestScore:
			tied = true
		}
	}
	if tied {
		return nil
	}
	return best
}
