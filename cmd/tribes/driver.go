package main

import (
	"fmt"
	"log"
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"tribes/internal/game"
	"tribes/internal/mapgen"
	"tribes/pkg/hex"
)

var tribeNames = []string{
	"Ash Walkers", "River Folk", "Stone Kin", "Sun Chasers", "Mist Clan", "Iron Hands",
}

var cityNames = []string{
	"Ashton", "Riverhold", "Stonegate", "Sunfall", "Mistvale", "Ironmoor",
	"Oakrest", "Duskwatch", "Thornfield", "Embermark", "Coldspring", "Highbarrow",
}

type simConfig struct {
	Width   int
	Height  int
	Tribes  int
	Turns   int
	Ruins   int
	Seed    int64
	Verbose bool
}

// simulation drives a whole match by taking a random legal action stream
// for every tribe. It exists to exercise the rules engine end to end, not
// to play well.
type simulation struct {
	game    *game.GameState
	rng     *rand.Rand
	verbose bool
	cities  int // Names handed out so far
	logged  int // Events already printed
}

func newSimulation(cfg simConfig) (*simulation, error) {
	if cfg.Tribes < 2 || cfg.Tribes > 6 {
		return nil, fmt.Errorf("tribe count %d out of range 2-6", cfg.Tribes)
	}

	gen := mapgen.NewGenerator(mapgen.Options{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Seed:          cfg.Seed,
		SeaLevel:      0.30,
		MountainLevel: 0.75,
		Ruins:         cfg.Ruins,
		Tribes:        cfg.Tribes,
	})
	tiles, starts := gen.Generate()
	if len(starts) < cfg.Tribes {
		return nil, fmt.Errorf("map seats only %d of %d tribes", len(starts), cfg.Tribes)
	}

	g := game.NewGame(uuid.NewString(), game.Settings{
		MapWidth:  tiles.Width,
		MapHeight: tiles.Height,
		TurnLimit: cfg.Turns,
		Seed:      gen.Seed(),
	}, tiles)

	for i := 0; i < cfg.Tribes; i++ {
		p := game.NewPlayer(uuid.NewString(), tribeNames[i], game.AllColors()[i])
		g.AddPlayer(p)
		if _, err := g.SpawnUnit(p.ID, game.UnitSettler, starts[i]); err != nil {
			return nil, fmt.Errorf("failed to seat %s: %w", p.Name, err)
		}
	}

	return &simulation{
		game:    g,
		rng:     rand.New(rand.NewSource(gen.Seed())),
		verbose: cfg.Verbose,
	}, nil
}

// Run plays the match to completion.
func (s *simulation) Run() {
	for !s.game.IsGameOver() {
		playerID := s.game.CurrentPlayerID
		s.takeTurn(playerID)
		if err := s.game.EndTurn(playerID); err != nil {
			log.Fatalf("EndTurn for %s: %v", playerID, err)
		}
		s.flushEvents()
	}
}

// takeTurn issues a random legal action set for one tribe.
func (s *simulation) takeTurn(playerID string) {
	p := s.game.Players[playerID]
	if p == nil || p.Eliminated {
		return
	}

	for _, u := range s.playerUnits(playerID) {
		switch u.Type {
		case game.UnitSettler:
			s.actSettler(playerID, u)
		case game.UnitWorker:
			s.actWorker(playerID, u)
		default:
			s.actCombatant(playerID, u)
		}
	}

	for _, c := range s.playerCities(playerID) {
		if len(c.Queue) == 0 {
			s.queueSomething(playerID, c)
		}
	}

	s.adoptSomething(playerID, p)
}

// actSettler founds a city where legal, otherwise wanders.
func (s *simulation) actSettler(playerID string, u *game.Unit) {
	if _, err := s.game.FoundCity(playerID, u.ID, s.nextCityName()); err == nil {
		return
	}
	s.wander(playerID, u)
}

// actWorker improves the tile underfoot when possible, otherwise wanders.
func (s *simulation) actWorker(playerID string, u *game.Unit) {
	improvements := []game.Improvement{
		game.ImprovementFarm, game.ImprovementMine, game.ImprovementRoad,
	}
	s.rng.Shuffle(len(improvements), func(i, j int) {
		improvements[i], improvements[j] = improvements[j], improvements[i]
	})
	for _, imp := range improvements {
		if err := s.game.BuildImprovement(playerID, u.ID, imp); err == nil {
			return
		}
	}
	s.wander(playerID, u)
}

// actCombatant attacks an adjacent enemy when one exists, otherwise
// wanders.
func (s *simulation) actCombatant(playerID string, u *game.Unit) {
	for _, n := range u.Pos.Neighbors() {
		if _, err := s.game.Attack(playerID, u.ID, n); err == nil {
			return
		}
	}
	s.wander(playerID, u)
}

// wander moves the unit to a random reachable tile.
func (s *simulation) wander(playerID string, u *game.Unit) {
	reach, err := s.game.ReachableTiles(u.ID)
	if err != nil || len(reach) <= 1 {
		return
	}
	candidates := make([]hex.Hex, 0, len(reach))
	for coord := range reach {
		if coord != u.Pos {
			candidates = append(candidates, coord)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Q != b.Q {
			return a.Q < b.Q
		}
		return a.R < b.R
	})
	dest := candidates[s.rng.Intn(len(candidates))]
	s.game.MoveUnit(playerID, u.ID, dest) // Occupied destinations just fail
}

// queueSomething puts a random affordable order at the head of an idle
// city's queue.
func (s *simulation) queueSomething(playerID string, c *game.City) {
	orders := []game.BuildOrder{
		{Kind: game.BuildUnit, Unit: game.UnitScout},
		{Kind: game.BuildUnit, Unit: game.UnitWarrior},
		{Kind: game.BuildUnit, Unit: game.UnitArcher},
		{Kind: game.BuildUnit, Unit: game.UnitSpearman},
		{Kind: game.BuildUnit, Unit: game.UnitWorker},
		{Kind: game.BuildUnit, Unit: game.UnitSettler},
		{Kind: game.BuildBuilding, Building: game.BuildingMonument},
		{Kind: game.BuildBuilding, Building: game.BuildingGranary},
		{Kind: game.BuildBuilding, Building: game.BuildingBarracks},
		{Kind: game.BuildBuilding, Building: game.BuildingLibrary},
		{Kind: game.BuildBuilding, Building: game.BuildingWalls},
		{Kind: game.BuildBuilding, Building: game.BuildingMarket},
		{Kind: game.BuildBuilding, Building: game.BuildingGreatTemple},
	}
	s.rng.Shuffle(len(orders), func(i, j int) { orders[i], orders[j] = orders[j], orders[i] })
	for _, order := range orders {
		if err := s.game.QueueProduction(playerID, c.ID, order); err == nil {
			return
		}
	}
}

// adoptSomething spends culture on the first affordable policy.
func (s *simulation) adoptSomething(playerID string, p *game.Player) {
	for _, pol := range game.AllPolicies() {
		if err := s.game.AdoptPolicy(playerID, pol); err == nil {
			return
		}
	}
}

// playerUnits returns the tribe's units in a stable order. Actions mutate
// the unit map, so snapshot first.
func (s *simulation) playerUnits(playerID string) []*game.Unit {
	var units []*game.Unit
	for _, u := range s.game.Units {
		if u.Owner == playerID {
			units = append(units, u)
		}
	}
	sort.Slice(units, func(i, j int) bool { return units[i].ID < units[j].ID })
	return units
}

func (s *simulation) playerCities(playerID string) []*game.City {
	var cities []*game.City
	for _, c := range s.game.Cities {
		if c.Owner == playerID {
			cities = append(cities, c)
		}
	}
	sort.Slice(cities, func(i, j int) bool { return cities[i].ID < cities[j].ID })
	return cities
}

func (s *simulation) nextCityName() string {
	name := cityNames[s.cities%len(cityNames)]
	s.cities++
	if s.cities > len(cityNames) {
		name = fmt.Sprintf("%s %d", name, s.cities/len(cityNames)+1)
	}
	return name
}

// flushEvents prints game events that arrived since the last flush.
func (s *simulation) flushEvents() {
	if !s.verbose {
		s.logged = len(s.game.Events)
		return
	}
	for _, e := range s.game.Events[s.logged:] {
		name := e.PlayerID
		if p := s.game.Players[e.PlayerID]; p != nil {
			name = p.Name
		}
		log.Printf("turn %d [%s] %s: %s", e.Turn, e.Type, name, e.Message)
	}
	s.logged = len(s.game.Events)
}

// PrintStandings logs the final scoreboard.
func (s *simulation) PrintStandings() {
	log.Printf("Match over after %d turns", s.game.Turn)
	for _, id := range s.game.PlayerOrder {
		p := s.game.Players[id]
		status := "standing"
		if p.Eliminated {
			status = "eliminated"
		}
		log.Printf("  %-12s score %3d, %d cities, %d techs (%s)",
			p.Name, s.game.Score(id), s.game.CountCities(id), len(p.Techs), status)
	}
	if w := s.game.GetWinner(); w != nil {
		log.Printf("Winner: %s", w.Name)
	} else {
		log.Printf("No winner: tied score at the turn limit")
	}
}
