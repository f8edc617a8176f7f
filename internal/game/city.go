package game

import (
	"github.com/google/uuid"

	"tribes/pkg/hex"
)

// minCitySpacing is the minimum hex distance between city centers.
const minCitySpacing = 3

// City represents a tribe's settlement.
type City struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Owner      string  `json:"owner"`
	Center     hex.Hex `json:"center"`
	Population int     `json:"population"`

	// Food accumulates toward the next population point.
	Food int `json:"food"`

	// Production accumulates toward the head of the queue.
	Production int          `json:"production"`
	Queue      []BuildOrder `json:"queue"`

	Buildings map[Building]bool `json:"buildings"`
}

// growthThreshold returns the food needed for the next population point.
func (c *City) growthThreshold() int {
	return 10 + 5*c.Population
}

// FoundCity consumes a settler to found a city on its current tile. The
// tile must be land, unowned or owned by the founder, and far enough from
// every existing city. The city claims its tile and the surrounding ring.
func (g *GameState) FoundCity(playerID, settlerID, name string) (*City, error) {
	u := g.Units[settlerID]
	if u == nil {
		return nil, ErrUnitNotFound
	}
	if u.Owner != playerID || g.CurrentPlayerID != playerID {
		return nil, ErrNotYourTurn
	}
	if u.Type != UnitSettler {
		return nil, ErrWrongUnitType
	}

	tile := g.Tiles.Get(u.Pos)
	if tile == nil || !tile.Terrain.IsLand() {
		return nil, ErrCitySiteInvalid
	}
	if tile.Owner != "" && tile.Owner != playerID {
		return nil, ErrCitySiteInvalid
	}
	for _, other := range g.Cities {
		if hex.Distance(other.Center, u.Pos) < minCitySpacing {
			return nil, ErrCitySiteInvalid
		}
	}

	city := &City{
		ID:         uuid.NewString(),
		Name:       name,
		Owner:      playerID,
		Center:     u.Pos,
		Population: 1,
		Buildings:  make(map[Building]bool),
	}
	g.Cities[city.ID] = city
	tile.CityID = city.ID

	// Claim the center and its first ring.
	for _, c := range hex.Range(u.Pos, 1) {
		if t := g.Tiles.Get(c); t != nil && t.Owner == "" {
			t.Owner = playerID
		}
	}

	g.removeUnit(u)
	if p := g.Players[playerID]; p != nil {
		p.FoundedCity = true
	}
	g.logEvent(playerID, EventCityFounded, name)
	return city, nil
}

// cityYields computes the city's per-turn output: the center tile plus
// every owned tile in the first ring, plus building, policy, and golden
// age bonuses.
func (g *GameState) cityYields(c *City) Yields {
	p := g.Players[c.Owner]

	total := Yields{}
	for _, coord := range hex.Range(c.Center, 1) {
		tile := g.Tiles.Get(coord)
		if tile == nil || tile.Owner != c.Owner {
			continue
		}
		total = total.Add(tile.Yields())
	}

	// A city works its land regardless of terrain: the center always
	// yields at least subsistence food and labor.
	if total.Food < 2 {
		total.Food = 2
	}
	if total.Production < 2 {
		total.Production = 2
	}

	for b := range c.Buildings {
		total = total.Add(b.Info().Yields)
	}
	if p != nil {
		total = total.Add(p.policyCityBonus())
		if p.InGoldenAge() {
			total = total.Add(goldenAgeBonus())
		}
	}

	// Population works the land: each point adds a little of everything
	// the city is already producing.
	total.Science += c.Population
	return total
}

// processGrowth accumulates food and grows the city when the threshold is
// met. Pop growth consumes the surplus.
func (g *GameState) processGrowth(c *City) {
	yields := g.cityYields(c)
	c.Food += yields.Food - 2*c.Population // Each pop eats 2 food
	if c.Food < 0 {
		c.Food = 0
	}
	if c.Food >= c.growthThreshold() {
		c.Food -= c.growthThreshold()
		c.Population++
		g.logEvent(c.Owner, EventCityGrowth, c.Name)
	}
}

// CountCities returns the number of cities owned by a tribe.
func (g *GameState) CountCities(playerID string) int {
	count := 0
	for _, c := range g.Cities {
		if c.Owner == playerID {
			count++
		}
	}
	return count
}

// captureCity transfers a city and its claimed tiles to the conqueror.
func (g *GameState) captureCity(c *City, newOwner string) {
	oldOwner := c.Owner
	c.Owner = newOwner
	for _, coord := range hex.Range(c.Center, 1) {
		if t := g.Tiles.Get(coord); t != nil && t.Owner == oldOwner {
			t.Owner = newOwner
		}
	}
	c.Queue = nil
	c.Production = 0
	g.logEvent(newOwner, EventCityCaptured, c.Name)
	g.checkElimination(oldOwner)
}
