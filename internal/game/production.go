package game

import "tribes/pkg/hex"

// Building represents a constructable city building or wonder.
type Building int

const (
	BuildingMonument Building = iota
	BuildingGranary
	BuildingBarracks
	BuildingLibrary
	BuildingWalls
	BuildingMarket
	BuildingGreatTemple // Wonder: one per game
)

// BuildingInfo describes a building's cost, yields, and unlock.
type BuildingInfo struct {
	Name     string
	Cost     int
	Requires Tech // TechNone if always available
	Yields   Yields
	IsWonder bool
}

// Info returns the static data for a building.
func (b Building) Info() BuildingInfo {
	switch b {
	case BuildingMonument:
		return BuildingInfo{Name: "Monument", Cost: 30, Yields: Yields{Culture: 2}}
	case BuildingGranary:
		return BuildingInfo{Name: "Granary", Cost: 45, Requires: TechPottery, Yields: Yields{Food: 2}}
	case BuildingBarracks:
		return BuildingInfo{Name: "Barracks", Cost: 45, Requires: TechBronzeWorking, Yields: Yields{Production: 1}}
	case BuildingLibrary:
		return BuildingInfo{Name: "Library", Cost: 55, Requires: TechWriting, Yields: Yields{Science: 2}}
	case BuildingWalls:
		return BuildingInfo{Name: "Walls", Cost: 55, Requires: TechMasonry}
	case BuildingMarket:
		return BuildingInfo{Name: "Market", Cost: 65, Requires: TechCurrency, Yields: Yields{Gold: 2}}
	case BuildingGreatTemple:
		return BuildingInfo{Name: "Great Temple", Cost: 120, Requires: TechMasonry, Yields: Yields{Culture: 4}, IsWonder: true}
	default:
		return BuildingInfo{Name: "Unknown"}
	}
}

// BuildKind discriminates what a build order produces.
type BuildKind int

const (
	BuildUnit BuildKind = iota
	BuildBuilding
)

// BuildOrder is one entry in a city's production queue.
type BuildOrder struct {
	Kind     BuildKind `json:"kind"`
	Unit     UnitType  `json:"unit,omitempty"`
	Building Building  `json:"building,omitempty"`
}

// cost returns the production cost of the order.
func (o BuildOrder) cost() int {
	if o.Kind == BuildUnit {
		return o.Unit.Stats().Cost
	}
	return o.Building.Info().Cost
}

// name returns a display name for the order.
func (o BuildOrder) name() string {
	if o.Kind == BuildUnit {
		return o.Unit.Stats().Name
	}
	return o.Building.Info().Name
}

// QueueProduction appends a build order to a city's queue after checking
// tech requirements and duplicates.
func (g *GameState) QueueProduction(playerID, cityID string, order BuildOrder) error {
	c := g.Cities[cityID]
	if c == nil {
		return ErrCityNotFound
	}
	if c.Owner != playerID || g.CurrentPlayerID != playerID {
		return ErrNotYourTurn
	}
	p := g.Players[playerID]

	switch order.Kind {
	case BuildUnit:
		if req := order.Unit.Stats().Requires; req != TechNone && !p.HasTech(req) {
			return ErrMissingPrereq
		}
	case BuildBuilding:
		info := order.Building.Info()
		if info.Requires != TechNone && !p.HasTech(info.Requires) {
			return ErrMissingPrereq
		}
		if c.Buildings[order.Building] {
			return ErrInvalidTarget
		}
		if info.IsWonder && g.wonderBuilt(order.Building) {
			return ErrInvalidTarget
		}
	}

	c.Queue = append(c.Queue, order)
	return nil
}

// HurryProduction spends gold to finish the head of the queue immediately,
// at two gold per missing production point.
func (g *GameState) HurryProduction(playerID, cityID string) error {
	c := g.Cities[cityID]
	if c == nil {
		return ErrCityNotFound
	}
	if c.Owner != playerID || g.CurrentPlayerID != playerID {
		return ErrNotYourTurn
	}
	if len(c.Queue) == 0 {
		return ErrNothingInQueue
	}
	p := g.Players[playerID]

	missing := c.Queue[0].cost() - c.Production
	if missing < 0 {
		missing = 0
	}
	price := 2 * missing
	if p.Gold < price {
		return ErrNotEnoughGold
	}
	p.Gold -= price
	c.Production = c.Queue[0].cost()
	g.completeProduction(c)
	return nil
}

// processProduction accumulates production and completes the head of the
// queue when its cost is met.
func (g *GameState) processProduction(c *City) {
	if len(c.Queue) == 0 {
		// Idle cities convert production into gold.
		if p := g.Players[c.Owner]; p != nil {
			p.Gold += g.cityYields(c).Production / 2
		}
		return
	}
	c.Production += g.cityYields(c).Production
	if c.Production >= c.Queue[0].cost() {
		g.completeProduction(c)
	}
}

// completeProduction pops the finished order and realizes it: units spawn
// on or next to the city center, buildings are added to the city.
func (g *GameState) completeProduction(c *City) {
	order := c.Queue[0]
	c.Production -= order.cost()
	c.Queue = c.Queue[1:]

	switch order.Kind {
	case BuildUnit:
		pos, ok := g.unitSpawnPoint(c)
		if !ok {
			// No free tile: refund into the next order.
			c.Production += order.cost()
			c.Queue = append([]BuildOrder{order}, c.Queue...)
			return
		}
		if _, err := g.SpawnUnit(c.Owner, order.Unit, pos); err != nil {
			return
		}
	case BuildBuilding:
		c.Buildings[order.Building] = true
	}
	g.logEvent(c.Owner, EventProductionDone, order.name())
}

// unitSpawnPoint finds the city center or the nearest free adjacent land
// tile for a newly trained unit.
func (g *GameState) unitSpawnPoint(c *City) (hex.Hex, bool) {
	if tile := g.Tiles.Get(c.Center); tile != nil && tile.UnitID == "" {
		return c.Center, true
	}
	for _, coord := range c.Center.Neighbors() {
		tile := g.Tiles.Get(coord)
		if tile != nil && tile.Terrain.IsLand() && tile.UnitID == "" {
			return coord, true
		}
	}
	return hex.Hex{}, false
}

// wonderBuilt reports whether any city in the game has the wonder.
func (g *GameState) wonderBuilt(b Building) bool {
	for _, c := range g.Cities {
		if c.Buildings[b] {
			return true
		}
	}
	return false
}
