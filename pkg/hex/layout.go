package hex

import "math"

// Point is a screen-space coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout describes the projection from hex space to screen space for a
// pointy-top grid: the pixel size of one hex and the pixel position of the
// grid origin.
type Layout struct {
	Size   Point `json:"size"`
	Origin Point `json:"origin"`
}

var sqrt3 = math.Sqrt(3)

// ToPixel projects a hex to the pixel position of its center.
func (l Layout) ToPixel(h Hex) Point {
	x := l.Size.X * (sqrt3*float64(h.Q) + sqrt3/2*float64(h.R))
	y := l.Size.Y * (1.5 * float64(h.R))
	return Point{X: x + l.Origin.X, Y: y + l.Origin.Y}
}

// FromPixel returns the hex containing the given pixel position. It is the
// inverse projection composed with coordinate rounding, so for any integer
// coordinate c, FromPixel(ToPixel(c)) == c exactly.
func (l Layout) FromPixel(p Point) Hex {
	x := (p.X - l.Origin.X) / l.Size.X
	y := (p.Y - l.Origin.Y) / l.Size.Y
	q := sqrt3/3*x - y/3
	r := 2.0 / 3.0 * y
	return FracCube{Q: q, R: r, S: -q - r}.Round()
}
