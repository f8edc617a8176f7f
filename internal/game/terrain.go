package game

import "math"

// Terrain represents the base terrain of a tile.
type Terrain int

const (
	TerrainGrassland Terrain = iota
	TerrainPlains
	TerrainForest
	TerrainHills
	TerrainDesert
	TerrainTundra
	TerrainCoast
	TerrainMountain
	TerrainOcean
)

// String returns the terrain name.
func (t Terrain) String() string {
	switch t {
	case TerrainGrassland:
		return "Grassland"
	case TerrainPlains:
		return "Plains"
	case TerrainForest:
		return "Forest"
	case TerrainHills:
		return "Hills"
	case TerrainDesert:
		return "Desert"
	case TerrainTundra:
		return "Tundra"
	case TerrainCoast:
		return "Coast"
	case TerrainMountain:
		return "Mountain"
	case TerrainOcean:
		return "Ocean"
	default:
		return "Unknown"
	}
}

// MovementCost returns the cost for a land unit to enter this terrain.
// Mountains and water are impassable.
func (t Terrain) MovementCost() float64 {
	switch t {
	case TerrainForest, TerrainHills:
		return 2
	case TerrainMountain, TerrainOcean, TerrainCoast:
		return math.Inf(1)
	default:
		return 1
	}
}

// IsLand returns true if land units can occupy this terrain.
func (t Terrain) IsLand() bool {
	switch t {
	case TerrainCoast, TerrainOcean, TerrainMountain:
		return false
	default:
		return true
	}
}

// DefenseModifier returns the fractional combat bonus a defender gains on
// this terrain.
func (t Terrain) DefenseModifier() float64 {
	switch t {
	case TerrainForest, TerrainHills:
		return 0.25
	default:
		return 0
	}
}

// Yields represents per-turn output of a tile, city, or building.
type Yields struct {
	Food       int `json:"food"`
	Production int `json:"production"`
	Gold       int `json:"gold"`
	Science    int `json:"science"`
	Culture    int `json:"culture"`
}

// Add returns the component-wise sum of two yield sets.
func (y Yields) Add(o Yields) Yields {
	return Yields{
		Food:       y.Food + o.Food,
		Production: y.Production + o.Production,
		Gold:       y.Gold + o.Gold,
		Science:    y.Science + o.Science,
		Culture:    y.Culture + o.Culture,
	}
}

// Yields returns the base per-turn output of this terrain.
func (t Terrain) Yields() Yields {
	switch t {
	case TerrainGrassland:
		return Yields{Food: 2}
	case TerrainPlains:
		return Yields{Food: 1, Production: 1}
	case TerrainForest:
		return Yields{Food: 1, Production: 1}
	case TerrainHills:
		return Yields{Production: 2}
	case TerrainDesert:
		return Yields{}
	case TerrainTundra:
		return Yields{Food: 1}
	case TerrainCoast:
		return Yields{Food: 1, Gold: 1}
	default:
		return Yields{}
	}
}

// Resource represents a bonus resource on a tile.
type Resource int

const (
	ResourceNone Resource = iota
	ResourceWheat
	ResourceCattle
	ResourceFish
	ResourceStone
	ResourceIron
	ResourceGold
	ResourceGems
	ResourceFurs
)

// String returns the resource name.
func (r Resource) String() string {
	switch r {
	case ResourceWheat:
		return "Wheat"
	case ResourceCattle:
		return "Cattle"
	case ResourceFish:
		return "Fish"
	case ResourceStone:
		return "Stone"
	case ResourceIron:
		return "Iron"
	case ResourceGold:
		return "Gold"
	case ResourceGems:
		return "Gems"
	case ResourceFurs:
		return "Furs"
	default:
		return "None"
	}
}

// Yields returns the bonus output the resource adds to its tile.
func (r Resource) Yields() Yields {
	switch r {
	case ResourceWheat:
		return Yields{Food: 2}
	case ResourceCattle:
		return Yields{Food: 1, Production: 1}
	case ResourceFish:
		return Yields{Food: 2}
	case ResourceStone:
		return Yields{Production: 2}
	case ResourceIron:
		return Yields{Production: 2}
	case ResourceGold:
		return Yields{Gold: 3}
	case ResourceGems:
		return Yields{Gold: 2, Culture: 1}
	case ResourceFurs:
		return Yields{Gold: 2}
	default:
		return Yields{}
	}
}

// Improvement represents a worker-built tile improvement.
type Improvement int

const (
	ImprovementNone Improvement = iota
	ImprovementFarm
	ImprovementMine
	ImprovementRoad
)

// String returns the improvement name.
func (i Improvement) String() string {
	switch i {
	case ImprovementFarm:
		return "Farm"
	case ImprovementMine:
		return "Mine"
	case ImprovementRoad:
		return "Road"
	default:
		return "None"
	}
}

// Yields returns the bonus output the improvement adds to its tile.
func (i Improvement) Yields() Yields {
	switch i {
	case ImprovementFarm:
		return Yields{Food: 1}
	case ImprovementMine:
		return Yields{Production: 1}
	default:
		return Yields{}
	}
}

// ValidTerrain returns true if the improvement can be built on the terrain.
func (i Improvement) ValidTerrain(t Terrain) bool {
	switch i {
	case ImprovementFarm:
		return t == TerrainGrassland || t == TerrainPlains
	case ImprovementMine:
		return t == TerrainHills
	case ImprovementRoad:
		return t.IsLand()
	default:
		return false
	}
}
