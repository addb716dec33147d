package layout

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grihaplan/server/internal/catalog"
	"grihaplan/server/internal/geometry"
	"grihaplan/server/internal/models"
	"grihaplan/server/internal/regulation"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

// testSite returns a rectangular site of the given area near Chennai.
func testSite(areaSqm, roadWidth float64, zone regulation.Zone) *models.SiteBoundary {
	side := math.Sqrt(areaSqm)
	return &models.SiteBoundary{
		Ring:       geometry.RectRing(orb.Point{80.27, 13.05}, side, side),
		AreaSqm:    areaSqm,
		RoadWidthM: roadWidth,
		Zone:       zone,
	}
}

func TestEnvelopeResolver(t *testing.T) {
	resolver := NewEnvelopeResolver(testLogger())

	site := testSite(1000, 18, regulation.ZoneResidential)
	env, err := resolver.Resolve(site, regulation.Chennai)
	require.NoError(t, err)
	assert.False(t, env.Fallback)

	// 1000 sqm is the 501to1000 bracket: max setback 3.0 m, so a
	// ~31.6 m square shrinks to ~25.6 m.
	assert.InDelta(t, 25.6, env.WidthM, 0.5)
	assert.InDelta(t, 25.6, env.DepthM, 0.5)
	assert.Less(t, env.AreaSqm, site.AreaSqm)
	assert.Greater(t, env.AreaSqm, 0.0)
}

func TestEnvelopeResolver_Fallback(t *testing.T) {
	resolver := NewEnvelopeResolver(testLogger())

	// A 36 sqm site cannot absorb any residential setback bracket.
	site := testSite(36, 18, regulation.ZoneCommercial)
	env, err := resolver.Resolve(site, regulation.Chennai)
	require.NoError(t, err)

	assert.True(t, env.Fallback)
	assert.InDelta(t, 18, env.AreaSqm, 1e-6)
	assert.InDelta(t, math.Sqrt(18), env.WidthM, 1e-6)
}

func TestEnvelopeResolver_RejectsInvalidSite(t *testing.T) {
	resolver := NewEnvelopeResolver(testLogger())

	site := &models.SiteBoundary{
		Ring:       orb.Ring{{80.27, 13.05}, {80.271, 13.05}},
		AreaSqm:    100,
		RoadWidthM: 12,
		Zone:       regulation.ZoneResidential,
	}
	_, err := resolver.Resolve(site, regulation.Chennai)
	assert.ErrorIs(t, err, models.ErrInvalidBoundary)
}

func TestEnvelopeResolver_UnknownZone(t *testing.T) {
	resolver := NewEnvelopeResolver(testLogger())
	site := testSite(1000, 18, regulation.Zone("industrial"))
	_, err := resolver.Resolve(site, regulation.Chennai)
	assert.ErrorIs(t, err, regulation.ErrUnknownZone)
}

func TestDesignFloorPlate(t *testing.T) {
	plate := DesignFloorPlate(30, 15, 8)

	assert.Equal(t, 30.0, plate.WidthM)
	assert.Equal(t, 15.0, plate.DepthM)
	assert.Equal(t, 1, plate.LiftCores)
	assert.Equal(t, 2, plate.Staircases)
	// 450 gross - 54 corridor - 12 lobby - 30 stairs.
	assert.InDelta(t, 354, plate.UsableSqm, 1e-9)
}

func TestDesignFloorPlate_Caps(t *testing.T) {
	plate := DesignFloorPlate(90, 40, 20)
	assert.Equal(t, MaxPlateWidthM, plate.WidthM)
	assert.Equal(t, MaxPlateDepthM, plate.DepthM)
	assert.Equal(t, 3, plate.LiftCores)
}

func TestDesignFloorPlate_TinyPlateFloorsAtZero(t *testing.T) {
	plate := DesignFloorPlate(4, 4, 2)
	assert.Zero(t, plate.UsableSqm)
}

func TestLiftCoresFor(t *testing.T) {
	assert.Equal(t, 1, LiftCoresFor(1))
	assert.Equal(t, 1, LiftCoresFor(8))
	assert.Equal(t, 2, LiftCoresFor(9))
	assert.Equal(t, 2, LiftCoresFor(16))
	assert.Equal(t, 3, LiftCoresFor(17))
}

func TestAllocateUnits_ZeroMix(t *testing.T) {
	plate := DesignFloorPlate(30, 15, 4)
	units, warnings := AllocateUnits(UnitMix{catalog.BHK1: 0, catalog.BHK2: 0}, 1000, 4, 0, plate, false)
	assert.Empty(t, units)
	assert.Empty(t, warnings)
}

func TestAllocateUnits_SkipsUnknownCategory(t *testing.T) {
	plate := DesignFloorPlate(30, 15, 4)
	mix := UnitMix{catalog.BHK2: 50, catalog.BHK("6BHK"): 50}
	units, warnings := AllocateUnits(mix, 2000, 4, 0, plate, false)

	assert.NotEmpty(t, units)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "6BHK")
	for _, u := range units {
		assert.Equal(t, catalog.BHK2, u.BHKType)
	}
}

func TestAllocateUnits_MixShares(t *testing.T) {
	plate := DesignFloorPlate(40, 16, 6)
	mix := UnitMix{catalog.BHK1: 50, catalog.BHK2: 50}
	units, warnings := AllocateUnits(mix, 3000, 6, 0, plate, false)
	require.Empty(t, warnings)
	require.NotEmpty(t, units)

	counts := map[catalog.BHK]int{}
	for _, u := range units {
		counts[u.BHKType]++
	}

	// Each category got 1500 sqm; counts follow floor division by the
	// per-unit super-built-up area.
	tpl1, err := catalog.ForBHK(catalog.BHK1, false)
	require.NoError(t, err)
	tpl2, err := catalog.ForBHK(catalog.BHK2, false)
	require.NoError(t, err)
	assert.Equal(t, int(1500/tpl1.SuperBuiltUpSqm()), counts[catalog.BHK1])
	assert.Equal(t, int(1500/tpl2.SuperBuiltUpSqm()), counts[catalog.BHK2])
}

func TestAllocateUnits_NoOverlapPerFloor(t *testing.T) {
	plate := DesignFloorPlate(40, 16, 6)
	mix := UnitMix{catalog.BHK1: 30, catalog.BHK2: 40, catalog.BHK3: 30}
	units, _ := AllocateUnits(mix, 4000, 6, 0, plate, false)
	require.NotEmpty(t, units)

	byFloor := map[int][]models.PlacedUnit{}
	for _, u := range units {
		byFloor[u.Floor] = append(byFloor[u.Floor], u)
	}

	overlaps := func(a, b models.PlacedUnit) bool {
		return a.X < b.X+b.WidthM && b.X < a.X+a.WidthM &&
			a.Y < b.Y+b.DepthM && b.Y < a.Y+a.DepthM
	}
	for floor, fu := range byFloor {
		for i := 0; i < len(fu); i++ {
			for j := i + 1; j < len(fu); j++ {
				assert.False(t, overlaps(fu[i], fu[j]),
					"units %d and %d overlap on floor %d", i, j, floor)
			}
		}
	}
}

func TestAllocateUnits_AlternatesSidesAndRotation(t *testing.T) {
	plate := DesignFloorPlate(40, 16, 2)
	mix := UnitMix{catalog.BHK2: 100}
	units, _ := AllocateUnits(mix, 2000, 2, 0, plate, false)
	require.GreaterOrEqual(t, len(units), 4)

	corridorY := plate.DepthM/2 - plate.CorridorM/2
	firstFloor := units[0].Floor
	side := func(u models.PlacedUnit) string {
		if u.Y >= corridorY+plate.CorridorM {
			return "north"
		}
		return "south"
	}
	for i, u := range units {
		if u.Floor != firstFloor {
			break
		}
		if i%2 == 0 {
			assert.Equal(t, "north", side(u))
			assert.Equal(t, 0, u.Rotation)
		} else {
			assert.Equal(t, "south", side(u))
			assert.Equal(t, 180, u.Rotation)
		}
	}
}

func TestAllocateUnits_RoundRobinFloors(t *testing.T) {
	plate := DesignFloorPlate(40, 16, 3)
	units, _ := AllocateUnits(UnitMix{catalog.BHK1: 100}, 1800, 3, 1, plate, false)
	require.NotEmpty(t, units)

	perFloor := map[int]int{}
	minFloor, maxFloor := units[0].Floor, units[0].Floor
	for _, u := range units {
		perFloor[u.Floor]++
		if u.Floor < minFloor {
			minFloor = u.Floor
		}
		if u.Floor > maxFloor {
			maxFloor = u.Floor
		}
	}

	// Stilt floor offset: units start on floor 1.
	assert.Equal(t, 1, minFloor)
	assert.LessOrEqual(t, maxFloor, 3)

	quota := int(math.Ceil(float64(len(units)) / 3.0))
	for floor, n := range perFloor {
		assert.LessOrEqual(t, n, quota, "floor %d exceeds quota", floor)
	}
}

func TestGenerate_FloorCapsRespected(t *testing.T) {
	gen := NewGenerator(testLogger())
	req := Request{
		Site:          testSite(1000, 18, regulation.ZoneResidential),
		City:          regulation.Chennai,
		UsePremiumFSI: true,
		UnitMix:       UnitMix{catalog.BHK2: 60, catalog.BHK3: 40},
		MaxFloors:     6,
	}
	res, err := gen.Generate(req)
	require.NoError(t, err)

	b := res.Building
	assert.GreaterOrEqual(t, b.Floors, 2)
	assert.LessOrEqual(t, b.Floors, 6)

	// Height cap: 1.5 x (18 + 3.0) = 31.5 m at 3 m floors = 10 floors.
	assert.LessOrEqual(t, b.Floors, 10)

	// FSI cap: built-up never exceeds allowed FSI x plot area.
	assert.LessOrEqual(t, b.FootprintSqm*float64(b.Floors), 3.25*1000+1e-6)
}

func TestGenerate_ZeroMixProducesEmptyBuilding(t *testing.T) {
	gen := NewGenerator(testLogger())
	req := Request{
		Site:    testSite(1000, 18, regulation.ZoneResidential),
		City:    regulation.Chennai,
		UnitMix: UnitMix{catalog.BHK1: 0, catalog.BHK2: 0},
	}
	res, err := gen.Generate(req)
	require.NoError(t, err)
	assert.Empty(t, res.Building.Units)
	assert.Empty(t, res.Warnings)
}

func TestGenerate_StiltParking(t *testing.T) {
	gen := NewGenerator(testLogger())
	req := Request{
		Site:         testSite(1200, 18, regulation.ZoneResidential),
		City:         regulation.Chennai,
		UnitMix:      UnitMix{catalog.BHK2: 100},
		StiltParking: true,
	}
	res, err := gen.Generate(req)
	require.NoError(t, err)

	b := res.Building
	assert.True(t, b.StiltParking)
	assert.Equal(t, b.Floors-1, b.ResidentialFloors())
	for _, u := range b.Units {
		assert.GreaterOrEqual(t, u.Floor, 1, "no units on the stilt floor")
	}
}

func TestGenerate_UnknownCity(t *testing.T) {
	gen := NewGenerator(testLogger())
	req := Request{
		Site:    testSite(1000, 18, regulation.ZoneResidential),
		City:    regulation.City("madurai"),
		UnitMix: UnitMix{catalog.BHK2: 100},
	}
	_, err := gen.Generate(req)
	assert.ErrorIs(t, err, regulation.ErrUnknownCity)
}

func TestGenerate_FootprintInsideEnvelopeBounds(t *testing.T) {
	gen := NewGenerator(testLogger())
	req := Request{
		Site:    testSite(2000, 24, regulation.ZoneResidential),
		City:    regulation.Coimbatore,
		UnitMix: UnitMix{catalog.BHK2: 50, catalog.BHK3: 50},
	}
	res, err := gen.Generate(req)
	require.NoError(t, err)

	assert.LessOrEqual(t, res.Plate.WidthM, res.Envelope.WidthM+1e-6)
	assert.LessOrEqual(t, res.Plate.DepthM, res.Envelope.DepthM+1e-6)
	assert.LessOrEqual(t, res.Plate.GrossSqm, req.Site.AreaSqm*0.65+1e-6)
}

func TestGenerateVariants(t *testing.T) {
	gen := NewGenerator(testLogger())
	req := Request{
		Site:          testSite(1500, 18, regulation.ZoneResidential),
		City:          regulation.Chennai,
		UsePremiumFSI: true,
		UnitMix:       UnitMix{catalog.BHK1: 20, catalog.BHK2: 50, catalog.BHK3: 30},
	}

	variants, err := gen.GenerateVariants(req, 5)
	require.NoError(t, err)
	require.NotEmpty(t, variants)

	for i, v := range variants {
		assert.GreaterOrEqual(t, v.Score, 0.0)
		assert.LessOrEqual(t, v.Score, 100.0)
		require.NotNil(t, v.Result)
		if i > 0 {
			assert.LessOrEqual(t, v.Score, variants[i-1].Score, "variants sorted best first")
		}
	}

	// The linear double-loaded form wastes no plate area, so it should
	// never score below a courtyard single-loaded form of the same site.
	byShape := map[BuildingShape]float64{}
	for _, v := range variants {
		byShape[v.Shape] = v.Score
	}
	if linear, ok := byShape[ShapeLinear]; ok {
		if courtyard, ok := byShape[ShapeCourtyard]; ok {
			assert.GreaterOrEqual(t, linear, courtyard)
		}
	}
}
