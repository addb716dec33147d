package layout

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"grihaplan/server/internal/geometry"
	"grihaplan/server/internal/models"
	"grihaplan/server/internal/regulation"
)

// Safety margin applied to the footprint so the building never sits
// exactly on the coverage limit.
const footprintMargin = 0.9

// Residential buildings are at least ground plus one.
const minFloors = 2

// Request carries everything one generation run needs.
type Request struct {
	Site          *models.SiteBoundary `json:"site"`
	City          regulation.City      `json:"city"`
	UsePremiumFSI bool                 `json:"use_premium_fsi"`
	PreferVastu   bool                 `json:"prefer_vastu"`
	UnitMix       UnitMix              `json:"unit_mix"`
	MaxFloors     int                  `json:"max_floors"`
	FloorHeightM  float64              `json:"floor_height_m"`
	StiltParking  bool                 `json:"stilt_parking"`
}

// Result is one generated building plus the intermediates that shaped
// it, for display and debugging.
type Result struct {
	Building *models.Building          `json:"building"`
	Envelope *models.BuildableEnvelope `json:"envelope"`
	Plate    models.FloorPlate         `json:"plate"`
	Warnings []string                  `json:"warnings,omitempty"`
}

// Generator chains envelope resolution, floor-plate design and unit
// allocation into buildings.
type Generator struct {
	logger    *logrus.Logger
	envelopes *EnvelopeResolver
}

func NewGenerator(logger *logrus.Logger) *Generator {
	if logger == nil {
		logger = logrus.New()
	}
	return &Generator{
		logger:    logger,
		envelopes: NewEnvelopeResolver(logger),
	}
}

// Generate runs the full pipeline. Floor count is capped three ways:
// by permissible height, by the FSI built-up budget, and by the caller;
// the most restrictive wins, floored at G+1.
func (g *Generator) Generate(req Request) (*Result, error) {
	site := req.Site
	if site == nil {
		return nil, models.ErrInvalidBoundary
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}

	floorHeight := req.FloorHeightM
	if floorHeight <= 0 {
		floorHeight = DefaultFloorHtM
	}

	rules, err := regulation.Rules(req.City, site.Zone)
	if err != nil {
		return nil, fmt.Errorf("resolving zone rules: %w", err)
	}
	allowedFSI, err := regulation.AllowedFSI(req.City, site.Zone, site.RoadWidthM, req.UsePremiumFSI)
	if err != nil {
		return nil, err
	}
	setbacks, err := regulation.SetbacksFor(req.City, site.Zone, site.AreaSqm)
	if err != nil {
		return nil, err
	}
	maxHeight, err := regulation.MaxHeight(req.City, site.Zone, site.RoadWidthM, setbacks.Front)
	if err != nil {
		return nil, err
	}

	envelope, err := g.envelopes.Resolve(site, req.City)
	if err != nil {
		return nil, fmt.Errorf("resolving envelope: %w", err)
	}

	// Most restrictive footprint: envelope vs coverage limit, with a
	// safety margin, squared off and clipped to the envelope bounds.
	footprintArea := math.Min(envelope.AreaSqm, site.AreaSqm*rules.MaxCoverage) * footprintMargin
	side := math.Sqrt(math.Max(footprintArea, 0))
	width := math.Min(side, envelope.WidthM)
	depth := math.Min(side, envelope.DepthM)

	// Provisional plate for the actual footprint area; the lift-core
	// count is refined once floors are known.
	plate := DesignFloorPlate(width, depth, minFloors)
	actualFootprint := plate.GrossSqm
	if actualFootprint <= 0 {
		return nil, fmt.Errorf("site yields no buildable footprint")
	}

	floorsByHeight := int(math.Floor(maxHeight / floorHeight))
	floorsByFSI := int(math.Floor(allowedFSI * site.AreaSqm / actualFootprint))
	floors := floorsByHeight
	if floorsByFSI < floors {
		floors = floorsByFSI
	}
	if req.MaxFloors > 0 && req.MaxFloors < floors {
		floors = req.MaxFloors
	}
	if floors < minFloors {
		floors = minFloors
	}

	plate = DesignFloorPlate(width, depth, floors)

	residentialFloors := floors
	startFloor := 0
	if req.StiltParking {
		residentialFloors = floors - 1
		startFloor = 1
	}

	totalUsable := plate.UsableSqm * float64(residentialFloors)
	units, warnings := AllocateUnits(req.UnitMix, totalUsable, residentialFloors, startFloor, plate, req.PreferVastu)

	building := &models.Building{
		ID:           uuid.NewString(),
		Footprint:    geometry.RectRing(envelope.Center, plate.WidthM, plate.DepthM),
		FootprintSqm: plate.GrossSqm,
		Floors:       floors,
		FloorHeightM: floorHeight,
		Units:        units,
		StiltParking: req.StiltParking,
		LiftCores:    plate.LiftCores,
		Staircases:   plate.Staircases,
	}

	g.logger.WithFields(logrus.Fields{
		"floors":       floors,
		"by_height":    floorsByHeight,
		"by_fsi":       floorsByFSI,
		"units":        len(units),
		"footprint_m2": plate.GrossSqm,
		"fallback":     envelope.Fallback,
	}).Info("Generated building layout")

	return &Result{
		Building: building,
		Envelope: envelope,
		Plate:    plate,
		Warnings: warnings,
	}, nil
}
