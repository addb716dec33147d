package models

import (
	"github.com/paulmach/orb"

	"grihaplan/server/internal/catalog"
)

// PlacedUnit is one unit template instantiated at a position inside a
// building. Coordinates are meters in building-local space with the
// origin at the south-west corner of the floor plate; rotation is 0 or
// 180 degrees (south-side units face the corridor).
type PlacedUnit struct {
	ID         string      `json:"id"`
	TemplateID string      `json:"template_id"`
	BHKType    catalog.BHK `json:"bhk_type"`
	X          float64     `json:"x"`
	Y          float64     `json:"y"`
	WidthM     float64     `json:"width_m"`
	DepthM     float64     `json:"depth_m"`
	Rotation   int         `json:"rotation"`
	Floor      int         `json:"floor"`
}

// Building is one generated tower: a geographic footprint with floors of
// placed units. Regeneration replaces the whole record.
type Building struct {
	ID             string       `json:"id"`
	Footprint      orb.Ring     `json:"footprint"`
	FootprintSqm   float64      `json:"footprint_sqm"`
	Floors         int          `json:"floors"`
	FloorHeightM   float64      `json:"floor_height_m"`
	Units          []PlacedUnit `json:"units"`
	StiltParking   bool         `json:"stilt_parking"`
	LiftCores      int          `json:"lift_cores"`
	Staircases     int          `json:"staircases"`
}

// HeightM returns the total building height including any stilt floor.
func (b *Building) HeightM() float64 {
	return float64(b.Floors) * b.FloorHeightM
}

// ResidentialFloors returns the number of floors carrying units.
func (b *Building) ResidentialFloors() int {
	if b.StiltParking && b.Floors > 0 {
		return b.Floors - 1
	}
	return b.Floors
}

// BuildableEnvelope is the eroded site polygon the building must sit
// inside. Transient: derived on every generation run.
type BuildableEnvelope struct {
	Ring     orb.Ring  `json:"ring"`
	AreaSqm  float64   `json:"area_sqm"`
	WidthM   float64   `json:"width_m"`
	DepthM   float64   `json:"depth_m"`
	Center   orb.Point `json:"center"`
	Fallback bool      `json:"fallback"`
}

// FloorPlate describes one representative floor: gross dimensions and
// the circulation deductions that leave the usable unit area.
type FloorPlate struct {
	WidthM        float64 `json:"width_m"`
	DepthM        float64 `json:"depth_m"`
	CorridorM     float64 `json:"corridor_m"`
	LiftLobbySqm  float64 `json:"lift_lobby_sqm"`
	StaircaseSqm  float64 `json:"staircase_sqm"`
	GrossSqm      float64 `json:"gross_sqm"`
	UsableSqm     float64 `json:"usable_sqm"`
	LiftCores     int     `json:"lift_cores"`
	Staircases    int     `json:"staircases"`
}
