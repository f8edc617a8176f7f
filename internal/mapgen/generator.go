// Package mapgen procedurally generates Tribes maps using layered simplex
// noise: elevation, rainfall, and temperature fields are sampled per hex
// and combined into terrain, resources, ancient ruins, and tribe start
// positions. Generation is deterministic for a given seed.
package mapgen

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"tribes/internal/game"
	"tribes/pkg/hex"
)

// Options contains settings for map generation.
type Options struct {
	Width  int   // Map width in columns: 12-40
	Height int   // Map height in rows: 12-30
	Seed   int64 // Random seed (0 = random)

	SeaLevel      float64 // Elevation threshold for ocean (0.0-1.0)
	MountainLevel float64 // Elevation threshold for mountains (0.0-1.0)

	Ruins  int // Ancient ruin sites to place
	Tribes int // Start positions to compute
}

// DefaultOptions returns a standard map configuration.
func DefaultOptions() Options {
	return Options{
		Width:         24,
		Height:        18,
		SeaLevel:      0.30,
		MountainLevel: 0.75,
		Ruins:         6,
		Tribes:        4,
	}
}

// Generator handles procedural map generation.
type Generator struct {
	opts Options
	rng  *rand.Rand
}

// NewGenerator creates a generator, clamping options to sane ranges and
// resolving a zero seed to a random one.
func NewGenerator(opts Options) *Generator {
	opts.Width = clamp(opts.Width, 12, 40)
	opts.Height = clamp(opts.Height, 12, 30)
	if opts.Seed == 0 {
		opts.Seed = rand.Int63()
	}
	if opts.SeaLevel <= 0 {
		opts.SeaLevel = 0.30
	}
	if opts.MountainLevel <= 0 {
		opts.MountainLevel = 0.75
	}
	return &Generator{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
	}
}

// Seed returns the resolved seed, for replay and the match ledger.
func (g *Generator) Seed() int64 {
	return g.opts.Seed
}

// Generate builds the map and the tribe start positions.
func (g *Generator) Generate() (*game.TileMap, []hex.Hex) {
	elevNoise := opensimplex.NewNormalized(g.opts.Seed)
	rainNoise := opensimplex.NewNormalized(g.opts.Seed + 1)
	tempNoise := opensimplex.NewNormalized(g.opts.Seed + 2)

	w, h := g.opts.Width, g.opts.Height
	m := game.NewTileMap(w, h)
	elevation := make(map[hex.Hex]float64, w*h)

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			coord := game.RowCoord(col, row)

			// Hex axial to cartesian for noise sampling.
			x := float64(coord.Q) + float64(coord.R)*0.5
			y := float64(coord.R) * math.Sqrt(3) / 2

			elev := octaveNoise(elevNoise, x, y, 4, 0.10, 0.5)
			rain := octaveNoise(rainNoise, x, y, 3, 0.08, 0.5)
			temp := octaveNoise(tempNoise, x, y, 3, 0.06, 0.5)

			// Push elevation down toward the map edges so the world is
			// ringed by ocean.
			elev *= edgeFalloff(col, row, w, h)

			// Colder toward the top and bottom rows and at altitude.
			lat := math.Abs(float64(row)/float64(h-1) - 0.5) * 2
			temp = temp*0.6 + (1-lat)*0.3 + (1-elev)*0.1

			elevation[coord] = elev
			m.Set(&game.Tile{
				Coord:   coord,
				Terrain: g.deriveTerrain(elev, rain, temp),
			})
		}
	}

	g.ensureLand(m, elevation)
	markCoast(m)
	g.placeResources(m)
	starts := g.placeStarts(m)
	g.placeRuins(m, starts)

	return m, starts
}

// deriveTerrain maps environmental parameters to a terrain type.
func (g *Generator) deriveTerrain(elev, rain, temp float64) game.Terrain {
	switch {
	case elev < g.opts.SeaLevel:
		return game.TerrainOcean
	case elev > g.opts.MountainLevel:
		return game.TerrainMountain
	case temp < 0.25:
		return game.TerrainTundra
	case rain < 0.25 && temp > 0.55:
		return game.TerrainDesert
	case elev > 0.60:
		return game.TerrainHills
	case rain > 0.55:
		return game.TerrainForest
	case rain < 0.40:
		return game.TerrainPlains
	default:
		return game.TerrainGrassland
	}
}

// ensureLand guarantees enough habitable land for every tribe by raising
// the highest underwater tiles when the noise produced too much ocean.
func (g *Generator) ensureLand(m *game.TileMap, elevation map[hex.Hex]float64) {
	needed := 8 * g.opts.Tribes
	land := 0
	for _, t := range m.Tiles {
		if t.Terrain.IsLand() {
			land++
		}
	}
	for land < needed {
		var best *game.Tile
		bestElev := -1.0
		for coord, t := range m.Tiles {
			if t.Terrain.IsLand() {
				continue
			}
			if e := elevation[coord]; e > bestElev {
				best, bestElev = t, e
			}
		}
		if best == nil {
			return
		}
		best.Terrain = game.TerrainGrassland
		land++
	}
}

// markCoast converts ocean tiles that touch land into coast.
func markCoast(m *game.TileMap) {
	var coastal []*game.Tile
	for coord, t := range m.Tiles {
		if t.Terrain != game.TerrainOcean {
			continue
		}
		for _, n := range coord.Neighbors() {
			if nt := m.Get(n); nt != nil && nt.Terrain.IsLand() {
				coastal = append(coastal, t)
				break
			}
		}
	}
	for _, t := range coastal {
		t.Terrain = game.TerrainCoast
	}
}

// placeResources scatters bonus resources appropriate to each terrain.
func (g *Generator) placeResources(m *game.TileMap) {
	coords := make([]hex.Hex, 0, len(m.Tiles))
	for coord := range m.Tiles {
		coords = append(coords, coord)
	}
	// Map iteration order is random; sort so the seeded rng draws are
	// reproducible.
	sortHexes(coords)
	for _, coord := range coords {
		t := m.Get(coord)
		if g.rng.Float64() > 0.15 {
			continue
		}
		switch t.Terrain {
		case game.TerrainGrassland:
			t.Resource = pick(g.rng, game.ResourceWheat, game.ResourceCattle)
		case game.TerrainPlains:
			t.Resource = pick(g.rng, game.ResourceWheat, game.ResourceCattle)
		case game.TerrainHills:
			t.Resource = pick(g.rng, game.ResourceStone, game.ResourceIron, game.ResourceGold)
		case game.TerrainForest:
			t.Resource = game.ResourceFurs
		case game.TerrainTundra:
			t.Resource = game.ResourceFurs
		case game.TerrainDesert:
			t.Resource = pick(g.rng, game.ResourceGold, game.ResourceGems)
		case game.TerrainCoast:
			t.Resource = game.ResourceFish
		}
	}
}

// placeStarts picks tribe start positions on passable land, greedily
// maximizing the minimum distance between tribes.
func (g *Generator) placeStarts(m *game.TileMap) []hex.Hex {
	var land []hex.Hex
	for coord, t := range m.Tiles {
		if t.Terrain.IsLand() && !math.IsInf(t.Terrain.MovementCost(), 1) {
			land = append(land, coord)
		}
	}
	if len(land) == 0 || g.opts.Tribes == 0 {
		return nil
	}
	// Map iteration order is random; sort for determinism, then shuffle
	// with the seeded generator.
	sortHexes(land)
	g.rng.Shuffle(len(land), func(i, j int) { land[i], land[j] = land[j], land[i] })

	starts := []hex.Hex{land[0]}
	for len(starts) < g.opts.Tribes {
		var best hex.Hex
		bestDist := -1
		for _, candidate := range land {
			d := minDistanceTo(starts, candidate)
			if d > bestDist {
				best, bestDist = candidate, d
			}
		}
		if bestDist < 1 {
			break // Out of distinct land tiles
		}
		starts = append(starts, best)
	}
	return starts
}

// placeRuins scatters ancient ruins on land tiles away from start
// positions.
func (g *Generator) placeRuins(m *game.TileMap, starts []hex.Hex) {
	var candidates []hex.Hex
	for coord, t := range m.Tiles {
		if !t.Terrain.IsLand() || math.IsInf(t.Terrain.MovementCost(), 1) {
			continue
		}
		if minDistanceTo(starts, coord) < 2 {
			continue
		}
		candidates = append(candidates, coord)
	}
	sortHexes(candidates)
	g.rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

	n := g.opts.Ruins
	if n > len(candidates) {
		n = len(candidates)
	}
	for _, coord := range candidates[:n] {
		m.Get(coord).HasRuin = true
	}
}

// minDistanceTo returns the distance from c to the nearest of the given
// hexes, or a large value when the list is empty.
func minDistanceTo(hexes []hex.Hex, c hex.Hex) int {
	min := math.MaxInt32
	for _, h := range hexes {
		if d := hex.Distance(h, c); d < min {
			min = d
		}
	}
	return min
}

// edgeFalloff reduces elevation near the rectangular map border.
func edgeFalloff(col, row, w, h int) float64 {
	nx := math.Abs(float64(col)/float64(w-1)-0.5) * 2
	ny := math.Abs(float64(row)/float64(h-1)-0.5) * 2
	d := math.Max(nx, ny)
	f := 1 - math.Pow(d, 3)
	if f < 0 {
		return 0
	}
	return f
}

// octaveNoise layers multiple noise frequencies into fractal terrain.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxVal
}

// sortHexes orders hexes by (q, r) so seeded shuffles are reproducible.
func sortHexes(hexes []hex.Hex) {
	for i := 1; i < len(hexes); i++ {
		for j := i; j > 0 && less(hexes[j], hexes[j-1]); j-- {
			hexes[j], hexes[j-1] = hexes[j-1], hexes[j]
		}
	}
}

func less(a, b hex.Hex) bool {
	if a.Q != b.Q {
		return a.Q < b.Q
	}
	return a.R < b.R
}

func pick(rng *rand.Rand, choices ...game.Resource) game.Resource {
	return choices[rng.Intn(len(choices))]
}

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
