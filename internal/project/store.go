package project

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"grihaplan/server/internal/layout"
	"grihaplan/server/internal/metrics"
	"grihaplan/server/internal/models"
	"grihaplan/server/internal/regulation"
)

var ErrNoSite = errors.New("no site boundary set")

// Project is the single source of truth for one planning session: the
// drawn site, the regulatory selections, and the generated buildings.
// Metrics and financials are projections, recomputed on demand.
type Project struct {
	Name          string               `json:"name"`
	City          regulation.City      `json:"city"`
	Site          *models.SiteBoundary `json:"site,omitempty"`
	UsePremiumFSI bool                 `json:"use_premium_fsi"`
	PreferVastu   bool                 `json:"prefer_vastu"`
	UnitMix       layout.UnitMix       `json:"unit_mix"`
	MaxFloors     int                  `json:"max_floors"`
	StiltParking  bool                 `json:"stilt_parking"`
	Buildings     []*models.Building   `json:"buildings"`
}

// Store owns the project state. One interactive user, one writer: every
// transition takes the lock, applies, and leaves a consistent state
// behind. Nothing outside the store mutates the project.
type Store struct {
	mu      sync.RWMutex
	project Project
	logger  *logrus.Logger
}

func NewStore(logger *logrus.Logger) *Store {
	if logger == nil {
		logger = logrus.New()
	}
	return &Store{
		logger: logger,
		project: Project{
			Name: "Untitled Project",
			City: regulation.Chennai,
		},
	}
}

// Snapshot returns a copy of the current project.
func (s *Store) Snapshot() Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.project
	p.Buildings = append([]*models.Building(nil), s.project.Buildings...)
	return p
}

// SetSite validates and installs a new site boundary. Changing the site
// invalidates the generated buildings.
func (s *Store) SetSite(site *models.SiteBoundary) error {
	if err := site.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.Site = site
	s.project.Buildings = nil
	s.logger.WithFields(logrus.Fields{
		"area_sqm":   site.AreaSqm,
		"zone":       site.Zone,
		"road_width": site.RoadWidthM,
	}).Info("Site boundary updated")
	return nil
}

// SetZoning updates the city and regulatory toggles. The city must be a
// supported one; no silent fallback.
func (s *Store) SetZoning(city regulation.City, usePremium, stiltParking bool, maxFloors int) error {
	if _, err := regulation.Get(city); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.City = city
	s.project.UsePremiumFSI = usePremium
	s.project.StiltParking = stiltParking
	s.project.MaxFloors = maxFloors
	return nil
}

// SetUnitMix replaces the target unit mix.
func (s *Store) SetUnitMix(mix layout.UnitMix, preferVastu bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.UnitMix = mix
	s.project.PreferVastu = preferVastu
}

// SetName renames the project.
func (s *Store) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.Name = name
}

// ReplaceBuildings swaps the full building set. Generation always
// replaces, never patches.
func (s *Store) ReplaceBuildings(buildings []*models.Building) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.Buildings = buildings
}

// Restore replaces the whole project, used when loading a saved one.
func (s *Store) Restore(p Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project = p
}

// GenerationRequest assembles a layout request from current state.
func (s *Store) GenerationRequest() (layout.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.project.Site == nil {
		return layout.Request{}, ErrNoSite
	}
	return layout.Request{
		Site:          s.project.Site,
		City:          s.project.City,
		UsePremiumFSI: s.project.UsePremiumFSI,
		PreferVastu:   s.project.PreferVastu,
		UnitMix:       s.project.UnitMix,
		MaxFloors:     s.project.MaxFloors,
		StiltParking:  s.project.StiltParking,
	}, nil
}

// Metrics recomputes the compliance snapshot from current state. Always
// derived fresh; the store never caches it.
func (s *Store) Metrics() (*models.Metrics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.project.Site == nil {
		return nil, ErrNoSite
	}
	return metrics.Compute(metrics.Input{
		Site:          s.project.Site,
		Buildings:     s.project.Buildings,
		City:          s.project.City,
		UsePremiumFSI: s.project.UsePremiumFSI,
	})
}
