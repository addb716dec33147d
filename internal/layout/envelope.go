package layout

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"grihaplan/server/internal/geometry"
	"grihaplan/server/internal/models"
	"grihaplan/server/internal/regulation"
)

// EnvelopeResolver shrinks a site polygon by the regulatory setback to
// produce the buildable envelope.
type EnvelopeResolver struct {
	logger *logrus.Logger
}

func NewEnvelopeResolver(logger *logrus.Logger) *EnvelopeResolver {
	if logger == nil {
		logger = logrus.New()
	}
	return &EnvelopeResolver{logger: logger}
}

// Resolve buffers the site inward by the largest of the four setback
// distances. Using the maximum as a uniform buffer is a conservative
// approximation of per-edge setback offsetting.
//
// When the buffer consumes the site, Resolve degrades to a best-effort
// envelope covering 50% of the site area centered on the centroid. That
// result carries Fallback=true and is not a regulatory determination.
func (r *EnvelopeResolver) Resolve(site *models.SiteBoundary, city regulation.City) (*models.BuildableEnvelope, error) {
	if err := site.Validate(); err != nil {
		return nil, err
	}

	area := site.AreaSqm
	if area <= 0 {
		area = geometry.PolygonArea(site.Ring)
	}

	setbacks, err := regulation.SetbacksFor(city, site.Zone, area)
	if err != nil {
		return nil, fmt.Errorf("resolving setbacks: %w", err)
	}

	center := geometry.Centroid(site.Ring)

	buffered, ok := geometry.BufferInward(site.Ring, setbacks.Max())
	if !ok {
		r.logger.WithFields(logrus.Fields{
			"site_area_sqm": area,
			"setback_m":     setbacks.Max(),
		}).Warn("Setback buffer consumed the site, falling back to 50% envelope")

		side := math.Sqrt(area * 0.5)
		ring := geometry.RectRing(center, side, side)
		return &models.BuildableEnvelope{
			Ring:     ring,
			AreaSqm:  area * 0.5,
			WidthM:   side,
			DepthM:   side,
			Center:   center,
			Fallback: true,
		}, nil
	}

	width, depth := geometry.BoundsMeters(buffered)
	return &models.BuildableEnvelope{
		Ring:    buffered,
		AreaSqm: geometry.PolygonArea(buffered),
		WidthM:  width,
		DepthM:  depth,
		Center:  geometry.Centroid(buffered),
	}, nil
}
