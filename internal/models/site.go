package models

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"grihaplan/server/internal/regulation"
)

var ErrInvalidBoundary = errors.New("invalid site boundary")

// SiteBoundary is the user-drawn plot outline plus the regulatory
// selections attached to it. The ring may arrive open or closed; the
// geometry helpers close it on use.
type SiteBoundary struct {
	Ring       orb.Ring        `json:"ring"`
	AreaSqm    float64         `json:"area_sqm"`
	RoadWidthM float64         `json:"road_width_m"`
	Zone       regulation.Zone `json:"zone"`
}

// Validate rejects degenerate boundaries before they reach the layout
// pipeline: at least 3 distinct vertices and a positive area.
func (s *SiteBoundary) Validate() error {
	distinct := 0
	seen := map[orb.Point]bool{}
	for _, p := range s.Ring {
		if !seen[p] {
			seen[p] = true
			distinct++
		}
	}
	if distinct < 3 {
		return fmt.Errorf("%w: need at least 3 distinct vertices, got %d", ErrInvalidBoundary, distinct)
	}
	if s.AreaSqm <= 0 {
		return fmt.Errorf("%w: zero or negative area", ErrInvalidBoundary)
	}
	if s.RoadWidthM <= 0 {
		return fmt.Errorf("%w: road width must be positive", ErrInvalidBoundary)
	}
	return nil
}
