package layout

import (
	"fmt"
	"math"
	"sort"

	"grihaplan/server/internal/catalog"
	"grihaplan/server/internal/models"
	"grihaplan/server/internal/regulation"
)

// BuildingShape is a massing template for the floor plate.
type BuildingShape string

const (
	ShapeLinear    BuildingShape = "linear"
	ShapeL         BuildingShape = "l-shape"
	ShapeU         BuildingShape = "u-shape"
	ShapeH         BuildingShape = "h-shape"
	ShapeCourtyard BuildingShape = "courtyard"
)

// CorridorType selects how units load onto the corridor.
type CorridorType string

const (
	DoubleLoaded CorridorType = "double-loaded"
	SingleLoaded CorridorType = "single-loaded"
)

// Share of the bounding rectangle each massing shape actually covers.
// Wings and courtyards carve area out of the plate.
var shapeAreaFactor = map[BuildingShape]float64{
	ShapeLinear:    1.0,
	ShapeL:         0.76,
	ShapeU:         0.62,
	ShapeH:         0.79,
	ShapeCourtyard: 0.91,
}

// Variant is one scored candidate design.
type Variant struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Shape    BuildingShape `json:"shape"`
	Corridor CorridorType  `json:"corridor"`
	Result   *Result       `json:"result"`
	Score    float64       `json:"score"`
}

var variantForms = []struct {
	shape    BuildingShape
	corridor CorridorType
}{
	{ShapeLinear, DoubleLoaded},
	{ShapeL, DoubleLoaded},
	{ShapeU, SingleLoaded},
	{ShapeH, DoubleLoaded},
	{ShapeCourtyard, SingleLoaded},
}

// GenerateVariants produces up to n scored candidates over the massing
// and corridor templates, best first. Variants whose shape leaves no
// usable area are dropped.
func (g *Generator) GenerateVariants(req Request, n int) ([]Variant, error) {
	if n <= 0 {
		n = len(variantForms)
	}

	rules, err := regulation.Rules(req.City, req.Site.Zone)
	if err != nil {
		return nil, err
	}
	allowedFSI, err := regulation.AllowedFSI(req.City, req.Site.Zone, req.Site.RoadWidthM, req.UsePremiumFSI)
	if err != nil {
		return nil, err
	}

	var variants []Variant
	for i, form := range variantForms {
		if len(variants) == n {
			break
		}

		res, err := g.generateShaped(req, form.shape, form.corridor)
		if err != nil {
			g.logger.WithError(err).WithField("shape", form.shape).Debug("Variant dropped")
			continue
		}

		score := scoreVariant(res, req, rules, allowedFSI)
		variants = append(variants, Variant{
			ID:       fmt.Sprintf("variant-%d", i+1),
			Name:     fmt.Sprintf("%s / %s", form.shape, form.corridor),
			Shape:    form.shape,
			Corridor: form.corridor,
			Result:   res,
			Score:    score,
		})
	}

	sort.SliceStable(variants, func(i, j int) bool {
		return variants[i].Score > variants[j].Score
	})
	return variants, nil
}

// generateShaped runs the standard pipeline, then discounts the usable
// area by the shape factor and reallocates. Single-loaded corridors
// halve the unit rows, so their effective usable area drops further.
func (g *Generator) generateShaped(req Request, shape BuildingShape, corridor CorridorType) (*Result, error) {
	res, err := g.Generate(req)
	if err != nil {
		return nil, err
	}

	factor := shapeAreaFactor[shape]
	if corridor == SingleLoaded {
		factor *= 0.55
	}
	if factor >= 1.0 {
		return res, nil
	}

	plate := res.Plate
	plate.GrossSqm *= factor
	plate.UsableSqm *= factor
	if plate.UsableSqm <= 0 {
		return nil, fmt.Errorf("shape %s leaves no usable area", shape)
	}

	building := res.Building
	residential := building.ResidentialFloors()
	startFloor := 0
	if building.StiltParking {
		startFloor = 1
	}
	totalUsable := plate.UsableSqm * float64(residential)
	units, warnings := AllocateUnits(req.UnitMix, totalUsable, residential, startFloor, plate, req.PreferVastu)

	building.Units = units
	building.FootprintSqm = plate.GrossSqm
	res.Plate = plate
	res.Warnings = warnings
	return res, nil
}

// scoreVariant rates a candidate 0-100: unit count (30), FSI
// utilization (25), coverage utilization (15), plate efficiency (20)
// and closeness to the requested mix (10).
func scoreVariant(res *Result, req Request, rules *regulation.ZoneRules, allowedFSI float64) float64 {
	b := res.Building
	siteArea := req.Site.AreaSqm

	score := math.Min(30, float64(len(b.Units))*0.5)

	achievedFSI := b.FootprintSqm * float64(b.Floors) / siteArea
	score += math.Min(1.0, achievedFSI/allowedFSI) * 25

	coverage := b.FootprintSqm / siteArea
	score += math.Min(1.0, coverage/rules.MaxCoverage) * 15

	if res.Plate.GrossSqm > 0 {
		score += res.Plate.UsableSqm / res.Plate.GrossSqm * 20
	}

	score += mixMatchScore(b.Units, req.UnitMix)

	return math.Min(100, score)
}

// mixMatchScore compares the achieved BHK distribution to the target,
// worth up to 10 points.
func mixMatchScore(units []models.PlacedUnit, target UnitMix) float64 {
	if len(units) == 0 || len(target) == 0 {
		return 0
	}
	totalTarget := 0.0
	for _, pct := range target {
		if pct > 0 {
			totalTarget += pct
		}
	}
	if totalTarget == 0 {
		return 0
	}

	actual := map[catalog.BHK]int{}
	for _, u := range units {
		actual[u.BHKType]++
	}

	errorSum := 0.0
	for bhk, pct := range target {
		targetPct := pct / totalTarget * 100
		actualPct := float64(actual[bhk]) / float64(len(units)) * 100
		errorSum += math.Abs(actualPct - targetPct)
	}
	return math.Max(0, 10-errorSum/10)
}
