package facilitymap

// Base coordinate space of the facility map image. All polygon points below
// are defined in this space; the rendering layer is responsible for mapping
// device pixels back into it before hit-testing.
const (
	BaseWidth  = 3307.0
	BaseHeight = 2339.0
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Zone is a named polygonal region of the yard. Centroid is the vertex mean,
// which is enough for marker placement and nearest-zone fallback.
type Zone struct {
	Name     string  `json:"name"`
	Polygon  []Point `json:"polygon"`
	Centroid Point   `json:"centroid"`
}

var zones = buildZones([]rawZone{
	{"Steel & Sub-material Yard", [][2]float64{{2220, 240}, {2520, 150}, {3100, 150}, {3100, 260}, {3200, 390}, {3200, 520}, {2450, 640}, {2300, 520}}},
	{"Bending Platen", [][2]float64{{2320, 650}, {2560, 650}, {2560, 1230}, {2320, 1230}}},
	{"Block Yard", [][2]float64{{2080, 710}, {2900, 710}, {2920, 1210}, {2580, 1210}, {2580, 1360}, {2140, 1360}}},
	{"Pipe Yard", [][2]float64{{2580, 1210}, {2920, 1210}, {2920, 1360}, {2580, 1360}}},
	{"Cafeteria & Subcontractor House", [][2]float64{{2090, 600}, {2450, 600}, {2450, 710}, {2090, 710}}},
	{"Sub Platen", [][2]float64{{1250, 620}, {1700, 560}, {2050, 650}, {2140, 820}, {1800, 920}, {1380, 860}, {1250, 740}}},
	{"Sub Factory", [][2]float64{{1760, 780}, {2040, 780}, {2040, 910}, {1760, 910}}},
	{"Office", [][2]float64{{1760, 920}, {2040, 920}, {2040, 1000}, {1760, 1000}}},
	{"South Platen 3", [][2]float64{{1700, 1300}, {1950, 1300}, {1950, 1450}, {1700, 1450}}},
	{"South Platen 2", [][2]float64{{1280, 1300}, {1700, 1300}, {1700, 1450}, {1280, 1450}}},
	{"Processing Shop", [][2]float64{{1470, 1460}, {1630, 1460}, {1630, 1600}, {1470, 1600}}},
	{"Pipe Factory", [][2]float64{{1640, 1460}, {1860, 1460}, {1860, 1600}, {1640, 1600}}},
	{"Electrical & Compressor Room", [][2]float64{{1860, 1440}, {2070, 1500}, {2200, 1640}, {2000, 1730}, {1780, 1620}}},
	{"North Platen 2", [][2]float64{{460, 600}, {650, 600}, {650, 750}, {500, 820}, {420, 760}}},
	{"Piece Cutting Area", [][2]float64{{260, 560}, {410, 560}, {410, 650}, {260, 650}}},
	{"Tool Storage", [][2]float64{{430, 570}, {520, 570}, {520, 650}, {430, 650}}},
	{"Facility Workshop", [][2]float64{{260, 520}, {420, 520}, {420, 560}, {260, 560}}},
	{"Old Gas Center Factory", [][2]float64{{980, 590}, {1230, 590}, {1230, 680}, {980, 680}}},
	{"Building B", [][2]float64{{450, 720}, {1100, 720}, {1100, 860}, {450, 860}}},
	{"North Platen 1", [][2]float64{{280, 850}, {500, 850}, {500, 980}, {280, 980}}},
	{"Building A", [][2]float64{{560, 900}, {1460, 900}, {1460, 1020}, {560, 1020}}},
	{"Dock", [][2]float64{{210, 990}, {320, 990}, {320, 1090}, {210, 1090}}},
	{"Ship Under Construction", [][2]float64{{420, 1040}, {1440, 1040}, {1440, 1260}, {420, 1260}}},
	{"Outfitting Quay", [][2]float64{{630, 1260}, {730, 1260}, {730, 1950}, {630, 1950}}},
	{"70t Jib Crane", [][2]float64{{740, 1260}, {820, 1260}, {820, 1950}, {740, 1950}}},
	{"Building C", [][2]float64{{850, 1300}, {1030, 1300}, {1030, 1920}, {850, 1920}}},
	{"Outfitting Storage", [][2]float64{{820, 1780}, {1030, 1780}, {1030, 1920}, {820, 1920}}},
	{"Scrap Yard", [][2]float64{{1040, 1850}, {1180, 1850}, {1180, 2050}, {1040, 2050}}},
})

type rawZone struct {
	name string
	poly [][2]float64
}

func buildZones(raw []rawZone) []Zone {
	out := make([]Zone, 0, len(raw))
	for _, r := range raw {
		pts := make([]Point, 0, len(r.poly))
		for _, p := range r.poly {
			pts = append(pts, Point{X: p[0], Y: p[1]})
		}
		out = append(out, Zone{Name: r.name, Polygon: pts, Centroid: centroid(pts)})
	}
	return out
}

func centroid(poly []Point) Point {
	n := len(poly)
	if n == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, p := range poly {
		sx += p.X
		sy += p.Y
	}
	return Point{X: sx / float64(n), Y: sy / float64(n)}
}

// Zones returns all zones in declared order.
func Zones() []Zone {
	return zones
}

// ZoneByName returns the zone with the given name, or nil.
func ZoneByName(name string) *Zone {
	for i := range zones {
		if zones[i].Name == name {
			return &zones[i]
		}
	}
	return nil
}
