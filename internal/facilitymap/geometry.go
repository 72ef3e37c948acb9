package facilitymap

import "math"

// PointInPolygon reports whether (x, y) lies inside poly using ray casting.
// Points exactly on a horizontal edge get a tiny denominator nudge so the
// division stays finite.
func PointInPolygon(x, y float64, poly []Point) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		xi, yi := poly[i].X, poly[i].Y
		xj, yj := poly[j].X, poly[j].Y
		dy := yj - yi
		if dy == 0 {
			dy = 1e-9
		}
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/dy+xi {
			inside = !inside
		}
	}
	return inside
}

// ZoneAt returns the first zone whose polygon contains the point, or nil.
func ZoneAt(x, y float64) *Zone {
	for i := range zones {
		if PointInPolygon(x, y, zones[i].Polygon) {
			return &zones[i]
		}
	}
	return nil
}

// NearestZone returns the zone whose centroid is closest to the point.
// It never returns nil while the zone table is non-empty.
func NearestZone(x, y float64) *Zone {
	var best *Zone
	bestD := math.Inf(1)
	for i := range zones {
		dx := zones[i].Centroid.X - x
		dy := zones[i].Centroid.Y - y
		if d := dx*dx + dy*dy; d < bestD {
			bestD = d
			best = &zones[i]
		}
	}
	return best
}

// Resolve maps any point in the base coordinate space to a zone: an exact
// polygon hit when there is one, otherwise the nearest centroid. Taps on
// walkways and water still land somewhere sensible.
func Resolve(x, y float64) *Zone {
	if z := ZoneAt(x, y); z != nil {
		return z
	}
	return NearestZone(x, y)
}
