package field_test

import (
	"testing"

	"github.com/pviana/futstats/internal/field"
)

func zoneIDSet() map[string]bool {
	ids := make(map[string]bool, len(field.Zones))
	for _, z := range field.Zones {
		ids[z.ID] = true
	}
	return ids
}

func TestZones_CatalogHas21UniqueZones(t *testing.T) {
	if len(field.Zones) != 21 {
		t.Fatalf("expected 21 zones, got %d", len(field.Zones))
	}
	if len(zoneIDSet()) != 21 {
		t.Error("expected zone ids to be unique")
	}
}

func TestZoneFromCoordinates_TotalCoverage(t *testing.T) {
	// every position inside the image must land in a catalog zone
	ids := zoneIDSet()
	const w, h = 300.0, 200.0
	for x := 0.0; x < w; x += 2.5 {
		for y := 0.0; y < h; y += 2.5 {
			zone := field.ZoneFromCoordinates(x, y, w, h)
			if !ids[zone] {
				t.Fatalf("coordinates (%v,%v) mapped to unknown zone %q", x, y, zone)
			}
		}
	}
}

func TestZoneFromCoordinates_Columns(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want string
	}{
		{"far left lands in Z1", 5, 50, "Z1_GOAL"},
		{"left progression", 30, 50, "Z2_PROG_CENTRAL_MID"},
		{"center field", 50, 50, "Z3_MID_CENTRAL"},
		{"right progression", 70, 50, "Z4_PROG_CENTRAL_MID"},
		{"far right lands in Z5", 95, 50, "Z5_GOAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := field.ZoneFromCoordinates(tt.x, tt.y, 100, 100)
			if got != tt.want {
				t.Errorf("ZoneFromCoordinates(%v,%v) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestZoneFromCoordinates_BreakpointsAreExclusiveLowerBounds(t *testing.T) {
	// exactly on a column breakpoint belongs to the next column
	if got := field.ZoneFromCoordinates(20, 0, 100, 100); got != "Z2_PROG_TOP" {
		t.Errorf("x on 0.2 breakpoint = %q, want Z2_PROG_TOP", got)
	}
	if got := field.ZoneFromCoordinates(19.99, 0, 100, 100); got != "Z1_LINE_TOP" {
		t.Errorf("x just below 0.2 breakpoint = %q, want Z1_LINE_TOP", got)
	}
	// same for the goal-column row breakpoints
	if got := field.ZoneFromCoordinates(0, 33, 100, 100); got != "Z1_GOAL" {
		t.Errorf("y on 0.33 breakpoint = %q, want Z1_GOAL", got)
	}
	if got := field.ZoneFromCoordinates(0, 67, 100, 100); got != "Z1_LINE_BOTTOM" {
		t.Errorf("y on 0.67 breakpoint = %q, want Z1_LINE_BOTTOM", got)
	}
}

func TestZoneFromCoordinates_OutOfRangeClampsToBoundaryBuckets(t *testing.T) {
	if got := field.ZoneFromCoordinates(-50, -50, 100, 100); got != "Z1_LINE_TOP" {
		t.Errorf("negative coordinates = %q, want Z1_LINE_TOP", got)
	}
	if got := field.ZoneFromCoordinates(500, 500, 100, 100); got != "Z5_LINE_BOTTOM" {
		t.Errorf("coordinates past the image = %q, want Z5_LINE_BOTTOM", got)
	}
}

func TestZoneFromCoordinates_MidVsProgNaming(t *testing.T) {
	// column 3 uses _MID_ names, columns 2 and 4 use _PROG_
	if got := field.ZoneFromCoordinates(50, 5, 100, 100); got != "Z3_MID_TOP" {
		t.Errorf("column 3 top = %q, want Z3_MID_TOP", got)
	}
	if got := field.ZoneFromCoordinates(70, 95, 100, 100); got != "Z4_PROG_BOTTOM" {
		t.Errorf("column 4 bottom = %q, want Z4_PROG_BOTTOM", got)
	}
}

func TestZoneName_KnownAndUnknown(t *testing.T) {
	if got := field.ZoneName("Z3_MID_CENTRAL"); got != "Z3 Meio Central" {
		t.Errorf("ZoneName(Z3_MID_CENTRAL) = %q", got)
	}
	// unknown ids fall back to the raw id, never fail
	if got := field.ZoneName("NOT_A_ZONE"); got != "NOT_A_ZONE" {
		t.Errorf("ZoneName(NOT_A_ZONE) = %q, want raw id", got)
	}
}

func TestFormatGameTime(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{65, "01:05"},
		{600, "10:00"},
		{3599, "59:59"},
		{-10, "00:00"},
	}

	for _, tt := range tests {
		if got := field.FormatGameTime(tt.seconds); got != tt.want {
			t.Errorf("FormatGameTime(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
