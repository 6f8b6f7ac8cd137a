// Package field defines the static partition of the pitch into 21 zones and
// maps pointer coordinates on the field image to zone ids.
package field

import "fmt"

// Zone is one fixed rectangular region of the field
type Zone struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Zones is the static catalog: 5 columns, with the two goal columns split
// into 3 rows and the three inner columns into 5. Never mutated at runtime.
var Zones = []Zone{
	// Z1 - left goal area
	{ID: "Z1_LINE_TOP", Name: "Z1 Linha de Fundo Sup. Esq."},
	{ID: "Z1_GOAL", Name: "Z1 Gol Esq."},
	{ID: "Z1_LINE_BOTTOM", Name: "Z1 Linha de Fundo Inf. Esq."},

	// Z2 - left progression
	{ID: "Z2_PROG_TOP", Name: "Z2 Progressão Sup."},
	{ID: "Z2_PROG_CENTRAL_TOP", Name: "Z2 Progressão Central Sup."},
	{ID: "Z2_PROG_CENTRAL_MID", Name: "Z2 Progressão Central Meio"},
	{ID: "Z2_PROG_CENTRAL_BOTTOM", Name: "Z2 Progressão Central Inf."},
	{ID: "Z2_PROG_BOTTOM", Name: "Z2 Progressão Inf."},

	// Z3 - center field
	{ID: "Z3_MID_TOP", Name: "Z3 Meio Sup."},
	{ID: "Z3_MID_CENTRAL_TOP", Name: "Z3 Meio Central Sup."},
	{ID: "Z3_MID_CENTRAL", Name: "Z3 Meio Central"},
	{ID: "Z3_MID_CENTRAL_BOTTOM", Name: "Z3 Meio Central Inf."},
	{ID: "Z3_MID_BOTTOM", Name: "Z3 Meio Inf."},

	// Z4 - right progression
	{ID: "Z4_PROG_TOP", Name: "Z4 Progressão Sup."},
	{ID: "Z4_PROG_CENTRAL_TOP", Name: "Z4 Progressão Central Sup."},
	{ID: "Z4_PROG_CENTRAL_MID", Name: "Z4 Progressão Central Meio"},
	{ID: "Z4_PROG_CENTRAL_BOTTOM", Name: "Z4 Progressão Central Inf."},
	{ID: "Z4_PROG_BOTTOM", Name: "Z4 Progressão Inf."},

	// Z5 - right goal area
	{ID: "Z5_LINE_TOP", Name: "Z5 Linha de Fundo Sup. Dir."},
	{ID: "Z5_GOAL", Name: "Z5 Gol Dir."},
	{ID: "Z5_LINE_BOTTOM", Name: "Z5 Linha de Fundo Inf. Dir."},
}

var zoneNames = func() map[string]string {
	m := make(map[string]string, len(Zones))
	for _, z := range Zones {
		m[z.ID] = z.Name
	}
	return m
}()

// ZoneName returns the display name for a zone id, or the raw id when the
// zone is unknown (removed types and foreign ids degrade, never fail)
func ZoneName(zoneID string) string {
	if name, ok := zoneNames[zoneID]; ok {
		return name
	}
	return zoneID
}

// ZoneFromCoordinates converts a pointer position within a width×height
// field image into a zone id. Comparisons are strict lower bounds, so
// positions outside the image fall into the nearest boundary bucket; the
// result is always one of the 21 catalog ids.
func ZoneFromCoordinates(x, y, width, height float64) string {
	relX := x / width
	relY := y / height

	var column int
	switch {
	case relX < 0.2:
		column = 1
	case relX < 0.4:
		column = 2
	case relX < 0.6:
		column = 3
	case relX < 0.8:
		column = 4
	default:
		column = 5
	}

	if column == 1 || column == 5 {
		prefix := fmt.Sprintf("Z%d", column)
		switch {
		case relY < 0.33:
			return prefix + "_LINE_TOP"
		case relY < 0.67:
			return prefix + "_GOAL"
		default:
			return prefix + "_LINE_BOTTOM"
		}
	}

	prefix := fmt.Sprintf("Z%d", column)
	mid := column == 3
	band := func(midName, progName string) string {
		if mid {
			return prefix + midName
		}
		return prefix + progName
	}
	switch {
	case relY < 0.2:
		return band("_MID_TOP", "_PROG_TOP")
	case relY < 0.4:
		return band("_MID_CENTRAL_TOP", "_PROG_CENTRAL_TOP")
	case relY < 0.6:
		return band("_MID_CENTRAL", "_PROG_CENTRAL_MID")
	case relY < 0.8:
		return band("_MID_CENTRAL_BOTTOM", "_PROG_CENTRAL_BOTTOM")
	default:
		return band("_MID_BOTTOM", "_PROG_BOTTOM")
	}
}

// FormatGameTime renders a second count as the match clock string "MM:SS"
func FormatGameTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
