package layout

import (
	"math"

	"grihaplan/server/internal/models"
)

// Floor-plate design constants. Width and depth caps keep every unit
// within reach of cross ventilation; the corridor width is the NBC
// minimum for residential corridors.
const (
	MaxPlateWidthM    = 45.0
	MaxPlateDepthM    = 18.0
	CorridorWidthM    = 1.8
	LiftLobbySqm      = 12.0
	StaircaseSqm      = 15.0
	MinStaircases     = 2
	FloorsPerLiftCore = 8
	DefaultFloorHtM   = 3.0
)

// LiftCoresFor returns the number of lift cores a building of the given
// floor count needs: one core per 8 floors, minimum one.
func LiftCoresFor(floors int) int {
	cores := int(math.Ceil(float64(floors) / FloorsPerLiftCore))
	if cores < 1 {
		cores = 1
	}
	return cores
}

// DesignFloorPlate produces the representative floor for a building
// constrained to maxWidth x maxDepth meters. Circulation (central
// corridor strip, lift lobbies, two fire-egress stairs) is subtracted
// from the gross plate to get the usable unit area.
func DesignFloorPlate(maxWidthM, maxDepthM float64, floors int) models.FloorPlate {
	width := math.Min(math.Max(maxWidthM, 0), MaxPlateWidthM)
	depth := math.Min(math.Max(maxDepthM, 0), MaxPlateDepthM)

	cores := LiftCoresFor(floors)
	liftLobby := float64(cores) * LiftLobbySqm
	staircase := float64(MinStaircases) * StaircaseSqm

	gross := width * depth
	corridor := CorridorWidthM * width

	usable := gross - corridor - liftLobby - staircase
	if usable < 0 {
		usable = 0
	}

	return models.FloorPlate{
		WidthM:       width,
		DepthM:       depth,
		CorridorM:    CorridorWidthM,
		LiftLobbySqm: liftLobby,
		StaircaseSqm: staircase,
		GrossSqm:     gross,
		UsableSqm:    usable,
		LiftCores:    cores,
		Staircases:   MinStaircases,
	}
}
