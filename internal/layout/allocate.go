package layout

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"grihaplan/server/internal/catalog"
	"grihaplan/server/internal/models"
)

// Gap left between adjacent units for party walls.
const wallGapM = 0.3

// UnitMix maps BHK categories to target percentages. Percentages are
// normalized to whatever sum is actually present, so {60, 60} behaves
// like {50, 50}.
type UnitMix map[catalog.BHK]float64

// AllocateUnits distributes the target mix across the usable area and
// floors of a building, producing placed units under a double-loaded
// corridor policy: units alternate between the north and south side of
// the central corridor, each side filling west to east, south-side
// units rotated 180 degrees to face the corridor.
//
// A BHK category with no matching template is skipped and reported in
// the returned warnings. An all-zero mix yields no units and no error.
func AllocateUnits(mix UnitMix, totalUsableSqm float64, floors, startFloor int, plate models.FloorPlate, preferVastu bool) ([]models.PlacedUnit, []string) {
	if floors <= 0 || totalUsableSqm <= 0 {
		return nil, nil
	}

	var warnings []string

	total := 0.0
	for _, pct := range mix {
		if pct > 0 {
			total += pct
		}
	}
	if total == 0 {
		return nil, nil
	}

	// Resolve a representative template per category, in catalog order
	// so allocation is deterministic.
	type pick struct {
		tpl   *catalog.UnitTemplate
		count int
	}
	var picks []pick
	totalCount := 0
	for _, bhk := range catalog.AllBHK() {
		pct, present := mix[bhk]
		if !present || pct <= 0 {
			continue
		}
		tpl, err := catalog.ForBHK(bhk, preferVastu)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("no unit template for %s, category skipped", bhk))
			continue
		}
		share := pct / total * totalUsableSqm
		count := int(math.Floor(share / tpl.SuperBuiltUpSqm()))
		if count <= 0 {
			continue
		}
		picks = append(picks, pick{tpl: tpl, count: count})
		totalCount += count
	}
	if totalCount == 0 {
		return nil, warnings
	}

	perFloor := int(math.Ceil(float64(totalCount) / float64(floors)))

	// Unit depth on each side of the corridor is bounded by half the
	// plate depth less the corridor strip.
	sideDepth := (plate.DepthM - plate.CorridorM) / 2
	corridorY := plate.DepthM/2 - plate.CorridorM/2

	units := make([]models.PlacedUnit, 0, totalCount)
	placedOnFloor := 0
	floor := startFloor
	northX, southX := 0.0, 0.0
	north := true

	place := func(tpl *catalog.UnitTemplate) {
		if placedOnFloor == perFloor {
			floor++
			placedOnFloor = 0
			northX, southX = 0, 0
			north = true
		}

		depth := math.Min(tpl.DepthM, sideDepth)
		unit := models.PlacedUnit{
			ID:         uuid.NewString(),
			TemplateID: tpl.ID,
			BHKType:    tpl.BHKType,
			WidthM:     tpl.WidthM,
			DepthM:     depth,
			Floor:      floor,
		}
		if north {
			unit.X = northX
			unit.Y = corridorY + plate.CorridorM
			unit.Rotation = 0
			northX += tpl.WidthM + wallGapM
		} else {
			unit.X = southX
			unit.Y = corridorY - depth
			unit.Rotation = 180
			southX += tpl.WidthM + wallGapM
		}
		north = !north

		units = append(units, unit)
		placedOnFloor++
	}

	for _, p := range picks {
		for i := 0; i < p.count; i++ {
			place(p.tpl)
		}
	}

	return units, warnings
}
