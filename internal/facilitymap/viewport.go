package facilitymap

import "strings"

// Preset zoom views over the yard. "all" shows the full base extent; the
// three band presets share a fixed zoom factor and differ only in center.
const (
	ViewAll     = "all"
	ViewNorth   = "north"
	ViewCentral = "central"
	ViewSouth   = "south"

	presetZoom = 2.25
)

// Margins used when testing whether a zone belongs to the current view.
// Rendering is generous, the selection check is strict, and the side list
// sits in between so nearby zones stay reachable.
const (
	MarginRender    = 140.0
	MarginSelection = 40.0
	MarginList      = 220.0
)

// ViewBox is a rectangular window into the base coordinate space.
type ViewBox struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

var presetCenters = map[string]Point{
	ViewNorth:   {X: BaseWidth / 2, Y: 720},
	ViewCentral: {X: BaseWidth / 2, Y: 1180},
	ViewSouth:   {X: BaseWidth / 2, Y: 1780},
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ComputeViewBox returns the window for a named view. Unknown names fall
// back to the central band rather than failing.
func ComputeViewBox(view string) ViewBox {
	if view == "" || view == ViewAll {
		return ViewBox{X: 0, Y: 0, W: BaseWidth, H: BaseHeight}
	}
	w := BaseWidth / presetZoom
	h := BaseHeight / presetZoom
	c, ok := presetCenters[view]
	if !ok {
		c = presetCenters[ViewCentral]
	}
	return ViewBox{
		X: clamp(c.X-w/2, 0, BaseWidth-w),
		Y: clamp(c.Y-h/2, 0, BaseHeight-h),
		W: w,
		H: h,
	}
}

// InView reports whether the zone's centroid falls inside the view box,
// expanded by margin on every side.
func (z *Zone) InView(vb ViewBox, margin float64) bool {
	return z.Centroid.X >= vb.X-margin &&
		z.Centroid.X <= vb.X+vb.W+margin &&
		z.Centroid.Y >= vb.Y-margin &&
		z.Centroid.Y <= vb.Y+vb.H+margin
}

// PresetFor picks the band preset whose vertical slice covers the zone.
func PresetFor(z *Zone) string {
	if z == nil {
		return ViewCentral
	}
	switch {
	case z.Centroid.Y < 950:
		return ViewNorth
	case z.Centroid.Y < 1550:
		return ViewCentral
	default:
		return ViewSouth
	}
}

// ViewForSelection decides which view to show after the user picks a zone.
// If the zone sits outside the current preset window it switches to the
// zone's own band; otherwise the current view stays.
func ViewForSelection(current string, z *Zone) string {
	if z == nil || current == ViewAll || current == "" {
		if current == "" {
			return ViewAll
		}
		return current
	}
	if z.InView(ComputeViewBox(current), MarginSelection) {
		return current
	}
	return PresetFor(z)
}

// VisibleZones lists the zones to draw for a view, in declared order.
func VisibleZones(view string) []Zone {
	if view == "" || view == ViewAll {
		return Zones()
	}
	vb := ComputeViewBox(view)
	out := make([]Zone, 0, len(zones))
	for i := range zones {
		if zones[i].InView(vb, MarginRender) {
			out = append(out, zones[i])
		}
	}
	return out
}

// ListZones filters the side-list entries for a view and optional name
// substring. The list uses a wider margin than rendering so zones just off
// screen remain selectable.
func ListZones(view, query string) []Zone {
	vb := ComputeViewBox(view)
	limited := view != "" && view != ViewAll
	out := make([]Zone, 0, len(zones))
	for i := range zones {
		if limited && !zones[i].InView(vb, MarginList) {
			continue
		}
		if query != "" && !containsFold(zones[i].Name, query) {
			continue
		}
		out = append(out, zones[i])
	}
	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
