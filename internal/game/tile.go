package game

import (
	"encoding/json"
	"fmt"

	"tribes/pkg/hex"
)

// Tile represents a single hex on the map.
type Tile struct {
	Coord       hex.Hex     `json:"coord"`
	Terrain     Terrain     `json:"terrain"`
	Resource    Resource    `json:"resource,omitempty"`
	Improvement Improvement `json:"improvement,omitempty"`
	HasRuin     bool        `json:"hasRuin,omitempty"`
	Owner       string      `json:"owner,omitempty"`  // Tribe ID, empty if unclaimed
	UnitID      string      `json:"unitId,omitempty"` // Occupying unit, empty if none
	CityID      string      `json:"cityId,omitempty"` // City centered here, empty if none
}

// MovementCost returns the cost of entering this tile. Roads flatten the
// terrain cost to 1; they never make a tile cheaper than that, so the
// pathfinding heuristic stays admissible.
func (t *Tile) MovementCost() float64 {
	if t.Improvement == ImprovementRoad {
		return 1
	}
	return t.Terrain.MovementCost()
}

// Yields returns the total per-turn output of the tile.
func (t *Tile) Yields() Yields {
	return t.Terrain.Yields().Add(t.Resource.Yields()).Add(t.Improvement.Yields())
}

// TileMap is the game map: a width x height field of hex tiles. Rows are
// offset so the playing field is roughly rectangular on screen; tiles are
// keyed by their axial coordinate.
type TileMap struct {
	Width  int
	Height int
	Tiles  map[hex.Hex]*Tile
}

// NewTileMap creates an empty map of the given dimensions.
func NewTileMap(width, height int) *TileMap {
	return &TileMap{
		Width:  width,
		Height: height,
		Tiles:  make(map[hex.Hex]*Tile, width*height),
	}
}

// RowCoord returns the axial coordinate of the tile in the given column
// and row of the rectangular field.
func RowCoord(col, row int) hex.Hex {
	return hex.New(col-row/2, row)
}

// Get returns the tile at the given coordinate, or nil if out of bounds.
func (m *TileMap) Get(c hex.Hex) *Tile {
	return m.Tiles[c]
}

// Set places a tile on the map.
func (m *TileMap) Set(t *Tile) {
	m.Tiles[t.Coord] = t
}

// InBounds reports whether a coordinate is on the map. It satisfies the
// bounds contract of hex.FindPath and hex.Reachable.
func (m *TileMap) InBounds(c hex.Hex) bool {
	_, ok := m.Tiles[c]
	return ok
}

// Count returns the number of tiles on the map.
func (m *TileMap) Count() int {
	return len(m.Tiles)
}

// tileMapJSON is the serialized form of a TileMap, with tiles keyed by
// their canonical hex key.
type tileMapJSON struct {
	Width  int              `json:"width"`
	Height int              `json:"height"`
	Tiles  map[string]*Tile `json:"tiles"`
}

// MarshalJSON encodes the map with hex-keyed tiles.
func (m *TileMap) MarshalJSON() ([]byte, error) {
	out := tileMapJSON{
		Width:  m.Width,
		Height: m.Height,
		Tiles:  make(map[string]*Tile, len(m.Tiles)),
	}
	for c, t := range m.Tiles {
		out.Tiles[c.Key()] = t
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a map produced by MarshalJSON.
func (m *TileMap) UnmarshalJSON(data []byte) error {
	var in tileMapJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("decode tile map: %w", err)
	}
	m.Width = in.Width
	m.Height = in.Height
	m.Tiles = make(map[hex.Hex]*Tile, len(in.Tiles))
	for key, t := range in.Tiles {
		coord := hex.ParseKey(key)
		t.Coord = coord
		m.Tiles[coord] = t
	}
	return nil
}
