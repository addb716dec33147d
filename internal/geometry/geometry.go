package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

// Degree-to-meter scale factors at building scale. Longitude shrinks
// with the cosine of latitude; latitude is near constant.
const (
	MetersPerDegreeLat = 110540.0
	MetersPerDegreeLon = 111320.0
)

// CloseRing returns a ring whose last point equals its first. Site
// boundaries arrive from the drawing tool either open or closed.
func CloseRing(ring orb.Ring) orb.Ring {
	if len(ring) == 0 {
		return ring
	}
	if ring[0] == ring[len(ring)-1] {
		return ring
	}
	closed := make(orb.Ring, len(ring)+1)
	copy(closed, ring)
	closed[len(ring)] = ring[0]
	return closed
}

// PolygonArea returns the geodesic area in square meters of a simple
// polygon given as geographic coordinates. Returns 0 for fewer than 3
// distinct vertices. The ring may be supplied open or closed.
func PolygonArea(ring orb.Ring) float64 {
	if len(distinctPoints(ring)) < 3 {
		return 0
	}
	closed := CloseRing(ring)
	return math.Abs(geo.Area(orb.Polygon{closed}))
}

// Centroid returns the planar centroid of the ring.
func Centroid(ring orb.Ring) orb.Point {
	closed := CloseRing(ring)
	c, _ := planar.CentroidArea(orb.Polygon{closed})
	return c
}

// BoundsMeters returns the width (east-west) and depth (north-south) of
// the ring's bounding box, converted to meters at the ring's latitude.
func BoundsMeters(ring orb.Ring) (width, depth float64) {
	if len(ring) == 0 {
		return 0, 0
	}
	bound := ring.Bound()
	lat := (bound.Min[1] + bound.Max[1]) / 2
	width = (bound.Max[0] - bound.Min[0]) * MetersPerDegreeLon * math.Cos(lat*math.Pi/180)
	depth = (bound.Max[1] - bound.Min[1]) * MetersPerDegreeLat
	return width, depth
}

// RectRing builds a closed rectangular ring of the given meter
// dimensions centered on a geographic point.
func RectRing(center orb.Point, widthM, depthM float64) orb.Ring {
	halfLon := widthM / 2 / (MetersPerDegreeLon * math.Cos(center[1]*math.Pi/180))
	halfLat := depthM / 2 / MetersPerDegreeLat
	return orb.Ring{
		{center[0] - halfLon, center[1] - halfLat},
		{center[0] + halfLon, center[1] - halfLat},
		{center[0] + halfLon, center[1] + halfLat},
		{center[0] - halfLon, center[1] + halfLat},
		{center[0] - halfLon, center[1] - halfLat},
	}
}

// BufferInward erodes the ring boundary inward by a uniform distance in
// meters. Returns ok=false when the erosion consumes the polygon (the
// offset ring collapses or inverts), which callers treat as "site too
// small for the required setback".
func BufferInward(ring orb.Ring, meters float64) (orb.Ring, bool) {
	closed := CloseRing(ring)
	pts := distinctPoints(closed)
	if len(pts) < 3 || meters <= 0 {
		return nil, false
	}

	center := Centroid(closed)
	local := make([]orb.Point, len(pts))
	for i, p := range pts {
		local[i] = toLocalMeters(p, center)
	}

	originalArea := math.Abs(signedArea(local))
	if signedArea(local) < 0 {
		reverse(local)
	}

	n := len(local)
	offset := make([]orb.Point, n)
	for i := 0; i < n; i++ {
		prev := local[(i-1+n)%n]
		cur := local[i]
		next := local[(i+1)%n]

		// Translate both adjacent edges toward the interior (left side
		// of a CCW ring) and intersect them to find the new vertex.
		a1, a2 := translateEdge(prev, cur, meters)
		b1, b2 := translateEdge(cur, next, meters)

		p, ok := lineIntersection(a1, a2, b1, b2)
		if !ok {
			// Near-collinear edges: slide the vertex along the shared normal.
			nx, ny := inwardNormal(prev, cur)
			p = orb.Point{cur[0] + nx*meters, cur[1] + ny*meters}
		}
		offset[i] = p
	}

	// The erosion must preserve winding and strictly shrink the area;
	// anything else means the setback swallowed the site.
	area := signedArea(offset)
	if area <= 0 || math.Abs(area) >= originalArea {
		return nil, false
	}

	result := make(orb.Ring, 0, n+1)
	for _, p := range offset {
		result = append(result, fromLocalMeters(p, center))
	}
	result = append(result, result[0])
	return result, true
}

func distinctPoints(ring orb.Ring) []orb.Point {
	var pts []orb.Point
	for i, p := range ring {
		if i > 0 && p == ring[i-1] {
			continue
		}
		if i == len(ring)-1 && len(pts) > 0 && p == pts[0] {
			continue
		}
		pts = append(pts, p)
	}
	return pts
}

func toLocalMeters(p, origin orb.Point) orb.Point {
	return orb.Point{
		(p[0] - origin[0]) * MetersPerDegreeLon * math.Cos(origin[1]*math.Pi/180),
		(p[1] - origin[1]) * MetersPerDegreeLat,
	}
}

func fromLocalMeters(p, origin orb.Point) orb.Point {
	return orb.Point{
		origin[0] + p[0]/(MetersPerDegreeLon*math.Cos(origin[1]*math.Pi/180)),
		origin[1] + p[1]/MetersPerDegreeLat,
	}
}

func signedArea(pts []orb.Point) float64 {
	area := 0.0
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += pts[i][0]*pts[j][1] - pts[j][0]*pts[i][1]
	}
	return area / 2
}

func reverse(pts []orb.Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// inwardNormal returns the unit normal pointing into a CCW polygon for
// the edge from a to b.
func inwardNormal(a, b orb.Point) (float64, float64) {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	length := math.Hypot(dx, dy)
	if length == 0 {
		return 0, 0
	}
	return -dy / length, dx / length
}

func translateEdge(a, b orb.Point, dist float64) (orb.Point, orb.Point) {
	nx, ny := inwardNormal(a, b)
	return orb.Point{a[0] + nx*dist, a[1] + ny*dist},
		orb.Point{b[0] + nx*dist, b[1] + ny*dist}
}

// lineIntersection intersects the infinite lines through (a1,a2) and
// (b1,b2). Returns ok=false for near-parallel lines.
func lineIntersection(a1, a2, b1, b2 orb.Point) (orb.Point, bool) {
	d1x := a2[0] - a1[0]
	d1y := a2[1] - a1[1]
	d2x := b2[0] - b1[0]
	d2y := b2[1] - b1[1]

	denom := d1x*d2y - d1y*d2x
	if math.Abs(denom) < 1e-9 {
		return orb.Point{}, false
	}
	t := ((b1[0]-a1[0])*d2y - (b1[1]-a1[1])*d2x) / denom
	return orb.Point{a1[0] + t*d1x, a1[1] + t*d1y}, true
}
