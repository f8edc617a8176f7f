package game

import (
	"math"

	"github.com/google/uuid"

	"tribes/pkg/hex"
)

// UnitType represents a trainable unit type.
type UnitType int

const (
	UnitScout UnitType = iota
	UnitWarrior
	UnitArcher
	UnitSpearman
	UnitSettler
	UnitWorker
)

// UnitStats describes a unit type's static attributes.
type UnitStats struct {
	Name     string
	Moves    float64 // Movement points per turn
	Strength int     // Combat strength; 0 = non-combatant
	Cost     int     // Production cost
	Requires Tech    // Tech required to train, TechNone if always available
}

// Stats returns the static data for a unit type.
func (u UnitType) Stats() UnitStats {
	switch u {
	case UnitScout:
		return UnitStats{Name: "Scout", Moves: 3, Strength: 4, Cost: 25}
	case UnitWarrior:
		return UnitStats{Name: "Warrior", Moves: 2, Strength: 8, Cost: 40}
	case UnitArcher:
		return UnitStats{Name: "Archer", Moves: 2, Strength: 7, Cost: 40, Requires: TechArchery}
	case UnitSpearman:
		return UnitStats{Name: "Spearman", Moves: 2, Strength: 11, Cost: 55, Requires: TechBronzeWorking}
	case UnitSettler:
		return UnitStats{Name: "Settler", Moves: 2, Cost: 60}
	case UnitWorker:
		return UnitStats{Name: "Worker", Moves: 2, Cost: 45}
	default:
		return UnitStats{Name: "Unknown"}
	}
}

// maxHealth is every unit's starting and maximum health.
const maxHealth = 100

// Unit is a unit on the map.
type Unit struct {
	ID        string   `json:"id"`
	Owner     string   `json:"owner"`
	Type      UnitType `json:"type"`
	Pos       hex.Hex  `json:"pos"`
	MovesLeft float64  `json:"movesLeft"`
	Health    int      `json:"health"`
	Attacked  bool     `json:"attacked,omitempty"` // One attack per turn
}

// ResetTurn restores the unit's per-turn movement and attack.
func (u *Unit) ResetTurn() {
	u.MovesLeft = u.Type.Stats().Moves
	u.Attacked = false
}

// IsCombatant returns true if the unit can attack and defend at full
// strength.
func (u *Unit) IsCombatant() bool {
	return u.Type.Stats().Strength > 0 && u.Type != UnitSettler && u.Type != UnitWorker
}

// SpawnUnit creates a unit on the given tile. The tile must be passable
// land and free of other units.
func (g *GameState) SpawnUnit(owner string, ut UnitType, pos hex.Hex) (*Unit, error) {
	tile := g.Tiles.Get(pos)
	if tile == nil || !tile.Terrain.IsLand() {
		return nil, ErrInvalidTarget
	}
	if tile.UnitID != "" {
		return nil, ErrTileOccupied
	}
	u := &Unit{
		ID:     uuid.NewString(),
		Owner:  owner,
		Type:   ut,
		Pos:    pos,
		Health: maxHealth,
	}
	u.ResetTurn()
	g.Units[u.ID] = u
	tile.UnitID = u.ID
	return u, nil
}

// movementCostFor builds the cost function used by pathfinding for the
// given unit: terrain cost with roads, and any tile holding another unit
// or a foreign city is impassable.
func (g *GameState) movementCostFor(u *Unit) hex.CostFunc {
	return func(c hex.Hex) float64 {
		tile := g.Tiles.Get(c)
		if tile == nil {
			return math.Inf(1)
		}
		if tile.UnitID != "" && tile.UnitID != u.ID {
			return math.Inf(1)
		}
		if tile.CityID != "" {
			if city := g.Cities[tile.CityID]; city != nil && city.Owner != u.Owner {
				return math.Inf(1)
			}
		}
		return tile.MovementCost()
	}
}

// MoveUnit moves a unit along the cheapest path to dest, spending movement
// points. The whole path must fit in the unit's remaining budget;
// otherwise ErrCannotReach is returned and nothing moves.
func (g *GameState) MoveUnit(playerID, unitID string, dest hex.Hex) ([]hex.Hex, error) {
	u := g.Units[unitID]
	if u == nil {
		return nil, ErrUnitNotFound
	}
	if u.Owner != playerID {
		return nil, ErrInvalidTarget
	}
	if g.CurrentPlayerID != playerID {
		return nil, ErrNotYourTurn
	}
	if dest == u.Pos {
		return []hex.Hex{u.Pos}, nil
	}
	if u.MovesLeft <= 0 {
		return nil, ErrNoMovesLeft
	}

	cost := g.movementCostFor(u)
	path := hex.FindPath(u.Pos, dest, hex.PathOptions{
		Cost:     cost,
		MaxCost:  u.MovesLeft,
		InBounds: g.Tiles.InBounds,
	})
	if path == nil {
		return nil, ErrCannotReach
	}

	total := 0.0
	for _, step := range path[1:] {
		total += cost(step)
	}

	g.Tiles.Get(u.Pos).UnitID = ""
	u.Pos = dest
	u.MovesLeft -= total
	tile := g.Tiles.Get(dest)
	tile.UnitID = u.ID

	if tile.HasRuin {
		g.collectRuin(u, tile)
	}
	return path, nil
}

// ReachableTiles returns every tile the unit can still reach this turn,
// mapped to the movement remaining after arriving there.
func (g *GameState) ReachableTiles(unitID string) (map[hex.Hex]float64, error) {
	u := g.Units[unitID]
	if u == nil {
		return nil, ErrUnitNotFound
	}
	return hex.Reachable(u.Pos, u.MovesLeft, hex.ReachOptions{
		Cost:     g.movementCostFor(u),
		InBounds: g.Tiles.InBounds,
	}), nil
}

// BuildImprovement has a worker build an improvement on its tile.
func (g *GameState) BuildImprovement(playerID, unitID string, imp Improvement) error {
	u := g.Units[unitID]
	if u == nil {
		return ErrUnitNotFound
	}
	if u.Owner != playerID || g.CurrentPlayerID != playerID {
		return ErrNotYourTurn
	}
	if u.Type != UnitWorker {
		return ErrWrongUnitType
	}
	p := g.Players[playerID]
	if !g.improvementUnlocked(p, imp) {
		return ErrMissingPrereq
	}
	tile := g.Tiles.Get(u.Pos)
	if !imp.ValidTerrain(tile.Terrain) {
		return ErrInvalidTarget
	}
	tile.Improvement = imp
	u.MovesLeft = 0
	g.logEvent(playerID, EventImprovementBuilt, imp.String())
	return nil
}

// improvementUnlocked reports whether any researched tech unlocks imp.
func (g *GameState) improvementUnlocked(p *Player, imp Improvement) bool {
	for t := range p.Techs {
		for _, e := range t.Info().Effects {
			if e.Kind == EffectUnlockImprovement && e.Improvement == imp {
				return true
			}
		}
	}
	return false
}

// removeUnit takes a unit off the map and out of the game.
func (g *GameState) removeUnit(u *Unit) {
	if tile := g.Tiles.Get(u.Pos); tile != nil && tile.UnitID == u.ID {
		tile.UnitID = ""
	}
	delete(g.Units, u.ID)
}
