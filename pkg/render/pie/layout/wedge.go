package layout

import "math"

// StartAngle is where the first wedge begins, in degrees counterclockwise
// from the positive x-axis.
const StartAngle = 0.0

// arcStep is the largest angle, in degrees, between two boundary samples.
const arcStep = 1.0

// Point is a position in image coordinates (y grows downward).
type Point struct {
	X, Y float64
}

// Wedge is the angular extent of one slice. Start and End are in degrees,
// counterclockwise from the positive x-axis, with End >= Start.
type Wedge struct {
	Index      int
	Start, End float64
	Radius     float64
}

// Span returns the wedge's angular size in degrees.
func (w Wedge) Span() float64 { return w.End - w.Start }

// Empty reports whether the wedge covers no area.
func (w Wedge) Empty() bool { return w.Span() <= 0 || w.Radius <= 0 }

// Mid returns the bisecting angle in degrees.
func (w Wedge) Mid() float64 { return (w.Start + w.End) / 2 }

// Build lays slices out as contiguous wedges of the given radius, in slice
// order, starting at [StartAngle]. Spans are proportional to weight; the
// last wedge ends exactly at StartAngle+360.
func Build(slices []Slice, radius float64) []Wedge {
	total := Total(slices)
	wedges := make([]Wedge, len(slices))
	start, cum := StartAngle, 0.0
	for i, s := range slices {
		cum += s.Weight
		// cum reaches total exactly on the last slice.
		end := StartAngle + 360*cum/total
		wedges[i] = Wedge{Index: i, Start: start, End: end, Radius: radius}
		start = end
	}
	return wedges
}

// PointAt returns the image-space point at the given angle (degrees) and
// distance from center.
func PointAt(center Point, deg, dist float64) Point {
	rad := deg * math.Pi / 180
	return Point{
		X: center.X + dist*math.Cos(rad),
		Y: center.Y - dist*math.Sin(rad),
	}
}

// Boundary returns the wedge outline as a closed polygon: the center
// followed by arc samples from Start to End. The first point is not
// repeated at the end. An empty wedge yields just the center.
func (w Wedge) Boundary(center Point) []Point {
	if w.Empty() {
		return []Point{center}
	}
	n := int(math.Ceil(w.Span() / arcStep))
	pts := make([]Point, 0, n+2)
	pts = append(pts, center)
	for i := 0; i <= n; i++ {
		deg := w.Start + w.Span()*float64(i)/float64(n)
		pts = append(pts, PointAt(center, deg, w.Radius))
	}
	return pts
}

// Contains reports whether p lies inside the wedge (edges included) for a
// chart centered at center.
func (w Wedge) Contains(center Point, p Point) bool {
	if w.Empty() {
		return false
	}
	dx, dy := p.X-center.X, center.Y-p.Y
	if math.Hypot(dx, dy) > w.Radius {
		return false
	}
	if w.Span() >= 360 || (dx == 0 && dy == 0) {
		return true
	}
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	rel := math.Mod(deg-w.Start, 360)
	if rel < 0 {
		rel += 360
	}
	return rel <= w.Span()
}
