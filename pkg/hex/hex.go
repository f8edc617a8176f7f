// Package hex implements axial hex-grid coordinates and the geometry used
// by the map, movement, and combat systems: neighbor enumeration, distance,
// line drawing, range and ring generation, pixel projection, and weighted
// pathfinding. All operations are pure functions over value types.
package hex

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Hex is a position on the grid in axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type Hex struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// New returns the hex at axial coordinates (q, r).
func New(q, r int) Hex {
	return Hex{Q: q, R: r}
}

// S returns the implicit third cube coordinate.
func (h Hex) S() int {
	return -h.Q - h.R
}

// Cube is the redundant three-axis form of a hex coordinate.
// Invariant: Q + R + S == 0.
type Cube struct {
	Q, R, S int
}

// Cube returns the cube form of h.
func (h Hex) Cube() Cube {
	return Cube{Q: h.Q, R: h.R, S: -h.Q - h.R}
}

// Axial drops the redundant S component.
func (c Cube) Axial() Hex {
	return Hex{Q: c.Q, R: c.R}
}

// Add returns the component-wise sum of two hexes.
func (h Hex) Add(o Hex) Hex {
	return Hex{Q: h.Q + o.Q, R: h.R + o.R}
}

// Scale multiplies both components by k.
func (h Hex) Scale(k int) Hex {
	return Hex{Q: h.Q * k, R: h.R * k}
}

// Key returns the canonical "q,r" string for use as a map key.
// ParseKey is its exact inverse for all integers.
func (h Hex) Key() string {
	return strconv.Itoa(h.Q) + "," + strconv.Itoa(h.R)
}

// ParseKey parses a key produced by Key. Keys are only ever produced
// internally, so a malformed key is a programmer error and panics.
func ParseKey(key string) Hex {
	q, r, ok := strings.Cut(key, ",")
	if !ok {
		panic(fmt.Sprintf("hex: malformed key %q", key))
	}
	qv, err := strconv.Atoi(q)
	if err != nil {
		panic(fmt.Sprintf("hex: malformed key %q", key))
	}
	rv, err := strconv.Atoi(r)
	if err != nil {
		panic(fmt.Sprintf("hex: malformed key %q", key))
	}
	return Hex{Q: qv, R: rv}
}

// Direction indexes the six neighbor offsets, 0..5.
type Direction int

// Directions lists the six neighbor offsets in a fixed rotation order.
// Callers rely on index-based access; do not reorder.
var Directions = [6]Hex{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbor returns the adjacent hex in the given direction.
func (h Hex) Neighbor(d Direction) Hex {
	return h.Add(Directions[d])
}

// Neighbors returns the six adjacent hexes in direction order.
func (h Hex) Neighbors() [6]Hex {
	var result [6]Hex
	for i, dir := range Directions {
		result[i] = h.Add(dir)
	}
	return result
}

// Distance returns the grid distance between two hexes: the maximum of the
// three cube-coordinate absolute differences. It is symmetric, zero only
// for identical coordinates, 1 for neighbors, and obeys the triangle
// inequality, which makes it an admissible pathfinding heuristic.
func Distance(a, b Hex) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	max := dq
	if dr > max {
		max = dr
	}
	if ds > max {
		max = ds
	}
	return max
}

// FracCube is a fractional cube coordinate, produced by interpolation and
// pixel-to-hex conversion before rounding.
type FracCube struct {
	Q, R, S float64
}

// Round snaps a fractional cube coordinate to the nearest valid hex.
// Each component is rounded independently, then the one with the largest
// rounding error is recomputed from the other two so that q+r+s=0 holds.
func (f FracCube) Round() Hex {
	q := math.Round(f.Q)
	r := math.Round(f.R)
	s := math.Round(f.S)

	dq := math.Abs(q - f.Q)
	dr := math.Abs(r - f.R)
	ds := math.Abs(s - f.S)

	// When s has the largest error it is simply discarded, since the
	// axial result only carries q and r.
	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	}
	return Hex{Q: int(q), R: int(r)}
}

// Line returns the ordered hexes from a to b inclusive, computed by linear
// interpolation in cube space with rounding. Length is Distance(a,b)+1 and
// consecutive elements are always adjacent.
func Line(a, b Hex) []Hex {
	n := Distance(a, b)
	if n == 0 {
		return []Hex{a}
	}

	// Nudge the endpoints off exact edge midpoints so rounding does not
	// flip sides between consecutive samples.
	ac, bc := a.Cube(), b.Cube()
	af := FracCube{Q: float64(ac.Q) + 1e-6, R: float64(ac.R) + 1e-6, S: float64(ac.S) - 2e-6}
	bf := FracCube{Q: float64(bc.Q) + 1e-6, R: float64(bc.R) + 1e-6, S: float64(bc.S) - 2e-6}

	results := make([]Hex, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		results = append(results, lerp(af, bf, t).Round())
	}
	return results
}

func lerp(a, b FracCube, t float64) FracCube {
	return FracCube{
		Q: a.Q + (b.Q-a.Q)*t,
		R: a.R + (b.R-a.R)*t,
		S: a.S + (b.S-a.S)*t,
	}
}

// Range returns every hex within the given distance of center, including
// center itself. The result has 1+3k(k+1) elements for radius k.
func Range(center Hex, radius int) []Hex {
	if radius < 0 {
		return nil
	}
	results := make([]Hex, 0, 1+3*radius*(radius+1))
	for q := -radius; q <= radius; q++ {
		lo := -radius
		if -q-radius > lo {
			lo = -q - radius
		}
		hi := radius
		if -q+radius < hi {
			hi = -q + radius
		}
		for r := lo; r <= hi; r++ {
			results = append(results, Hex{Q: center.Q + q, R: center.R + r})
		}
	}
	return results
}

// Ring returns the hexes at exactly the given distance from center, walked
// in direction order. The result has 6k elements for radius k >= 1, and
// just the center for radius 0.
func Ring(center Hex, radius int) []Hex {
	if radius < 0 {
		return nil
	}
	if radius == 0 {
		return []Hex{center}
	}

	results := make([]Hex, 0, 6*radius)
	current := center.Add(Directions[4].Scale(radius))
	for i := 0; i < 6; i++ {
		for j := 0; j < radius; j++ {
			results = append(results, current)
			current = current.Neighbor(Direction(i))
		}
	}
	return results
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
