package facilitymap

import "testing"

func TestComputeViewBoxAll(t *testing.T) {
	vb := ComputeViewBox(ViewAll)
	if vb.X != 0 || vb.Y != 0 || vb.W != BaseWidth || vb.H != BaseHeight {
		t.Fatalf("all view should cover the base extent: %+v", vb)
	}
}

func TestComputeViewBoxPresetsShareZoom(t *testing.T) {
	north := ComputeViewBox(ViewNorth)
	south := ComputeViewBox(ViewSouth)
	if north.W != south.W || north.H != south.H {
		t.Fatalf("presets must share the zoom window: %+v vs %+v", north, south)
	}
	if north.W >= BaseWidth || north.H >= BaseHeight {
		t.Fatalf("preset window should be smaller than the base: %+v", north)
	}
	if north.Y >= south.Y {
		t.Fatalf("north window should sit above south: %v vs %v", north.Y, south.Y)
	}
}

func TestComputeViewBoxClamped(t *testing.T) {
	for _, view := range []string{ViewNorth, ViewCentral, ViewSouth} {
		vb := ComputeViewBox(view)
		if vb.X < 0 || vb.Y < 0 || vb.X+vb.W > BaseWidth || vb.Y+vb.H > BaseHeight {
			t.Fatalf("view %s escapes the base extent: %+v", view, vb)
		}
	}
}

func TestComputeViewBoxUnknownFallsBackToCentral(t *testing.T) {
	if ComputeViewBox("harbor") != ComputeViewBox(ViewCentral) {
		t.Fatalf("unknown view should use the central band")
	}
}

func TestPresetForBands(t *testing.T) {
	cases := []struct {
		zone string
		want string
	}{
		{"Steel & Sub-material Yard", ViewNorth},
		{"Ship Under Construction", ViewCentral},
		{"Scrap Yard", ViewSouth},
	}
	for _, tc := range cases {
		z := ZoneByName(tc.zone)
		if z == nil {
			t.Fatalf("zone %q missing", tc.zone)
		}
		if got := PresetFor(z); got != tc.want {
			t.Fatalf("PresetFor(%q) = %q, want %q (cy=%v)", tc.zone, got, tc.want, z.Centroid.Y)
		}
	}
}

func TestViewForSelectionSwitchesWhenOutOfView(t *testing.T) {
	scrap := ZoneByName("Scrap Yard")
	if got := ViewForSelection(ViewNorth, scrap); got != ViewSouth {
		t.Fatalf("selecting an out-of-view zone should switch presets, got %q", got)
	}
	steel := ZoneByName("Steel & Sub-material Yard")
	if got := ViewForSelection(ViewNorth, steel); got != ViewNorth {
		t.Fatalf("in-view selection should keep the preset, got %q", got)
	}
	if got := ViewForSelection(ViewAll, scrap); got != ViewAll {
		t.Fatalf("the all view never auto-switches, got %q", got)
	}
}

func TestVisibleZonesUsesRenderMargin(t *testing.T) {
	north := VisibleZones(ViewNorth)
	if len(north) == 0 || len(north) >= len(Zones()) {
		t.Fatalf("north view should trim the zone list, got %d of %d", len(north), len(Zones()))
	}
	if len(VisibleZones(ViewAll)) != len(Zones()) {
		t.Fatalf("all view renders everything")
	}
}

func TestListZonesSearch(t *testing.T) {
	hits := ListZones(ViewAll, "platen")
	if len(hits) == 0 {
		t.Fatalf("expected platen zones in search results")
	}
	for _, z := range hits {
		if !containsFold(z.Name, "platen") {
			t.Fatalf("unexpected search hit %q", z.Name)
		}
	}
	if len(ListZones(ViewAll, "")) != len(Zones()) {
		t.Fatalf("empty query lists everything in the all view")
	}
}
