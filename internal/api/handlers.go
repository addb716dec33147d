package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"

	"grihaplan/server/config"
	"grihaplan/server/internal/catalog"
	"grihaplan/server/internal/database"
	"grihaplan/server/internal/finance"
	"grihaplan/server/internal/geocoding"
	"grihaplan/server/internal/geometry"
	"grihaplan/server/internal/inference"
	"grihaplan/server/internal/layout"
	"grihaplan/server/internal/models"
	"grihaplan/server/internal/project"
	"grihaplan/server/internal/queue"
	"grihaplan/server/internal/regulation"
	"grihaplan/server/internal/report"
)

type Handler struct {
	store     *project.Store
	db        *database.Database
	generator *layout.Generator
	inference *inference.Client
	geocoder  *geocoding.Geocoder
	snapshots *queue.SnapshotQueue
	logger    *logrus.Logger
}

func NewHandler(store *project.Store, db *database.Database, inferenceClient *inference.Client, geocoder *geocoding.Geocoder, snapshots *queue.SnapshotQueue, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	return &Handler{
		store:     store,
		db:        db,
		generator: layout.NewGenerator(logger),
		inference: inferenceClient,
		geocoder:  geocoder,
		snapshots: snapshots,
		logger:    logger,
	}
}

// errorStatus maps domain errors onto HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidBoundary),
		errors.Is(err, regulation.ErrUnknownCity),
		errors.Is(err, regulation.ErrUnknownZone),
		errors.Is(err, project.ErrNoSite):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrUnknownTemplate),
		errors.Is(err, database.ErrProjectNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) abortWithError(c *gin.Context, err error, msg string) {
	h.logger.WithError(err).Error(msg)
	c.JSON(errorStatus(err), gin.H{"error": err.Error()})
}

// GetCities lists the supported cities and their map defaults.
func (h *Handler) GetCities(c *gin.Context) {
	c.JSON(http.StatusOK, config.SupportedCities)
}

// GetRegulations returns the full regulation table for a city.
func (h *Handler) GetRegulations(c *gin.Context) {
	city := regulation.City(c.Param("city"))
	regs, err := regulation.Get(city)
	if err != nil {
		h.abortWithError(c, err, "Failed to look up regulations")
		return
	}
	c.JSON(http.StatusOK, regs)
}

// GetUnitTemplates returns the unit template catalog.
func (h *Handler) GetUnitTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Templates())
}

type siteRequest struct {
	Ring       [][]float64     `json:"ring" binding:"required"`
	RoadWidthM float64         `json:"road_width_m" binding:"required"`
	Zone       regulation.Zone `json:"zone" binding:"required"`
}

// SetSite installs the drawn site boundary into the project.
func (h *Handler) SetSite(c *gin.Context) {
	var req siteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse site request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	ring := make(orb.Ring, len(req.Ring))
	for i, p := range req.Ring {
		if len(p) != 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates must be [lon, lat] pairs"})
			return
		}
		ring[i] = orb.Point{p[0], p[1]}
	}

	site := &models.SiteBoundary{
		Ring:       ring,
		AreaSqm:    geometry.PolygonArea(ring),
		RoadWidthM: req.RoadWidthM,
		Zone:       req.Zone,
	}
	if err := h.store.SetSite(site); err != nil {
		h.abortWithError(c, err, "Failed to set site boundary")
		return
	}
	c.JSON(http.StatusOK, site)
}

type zoningRequest struct {
	City          regulation.City `json:"city" binding:"required"`
	UsePremiumFSI bool            `json:"use_premium_fsi"`
	StiltParking  bool            `json:"stilt_parking"`
	MaxFloors     int             `json:"max_floors"`
}

// SetZoning updates the regulatory selections.
func (h *Handler) SetZoning(c *gin.Context) {
	var req zoningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse zoning request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}
	if err := h.store.SetZoning(req.City, req.UsePremiumFSI, req.StiltParking, req.MaxFloors); err != nil {
		h.abortWithError(c, err, "Failed to set zoning")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "zoning updated"})
}

type unitMixRequest struct {
	Mix         map[catalog.BHK]float64 `json:"mix" binding:"required"`
	PreferVastu bool                    `json:"prefer_vastu"`
}

// SetUnitMix replaces the target unit mix.
func (h *Handler) SetUnitMix(c *gin.Context) {
	var req unitMixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse unit mix request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}
	h.store.SetUnitMix(layout.UnitMix(req.Mix), req.PreferVastu)
	c.JSON(http.StatusOK, gin.H{"status": "unit mix updated"})
}

// GenerateLayout runs the layout pipeline against current project state
// and replaces the building set.
func (h *Handler) GenerateLayout(c *gin.Context) {
	req, err := h.store.GenerationRequest()
	if err != nil {
		h.abortWithError(c, err, "Cannot generate layout")
		return
	}

	result, err := h.generator.Generate(req)
	if err != nil {
		h.abortWithError(c, err, "Layout generation failed")
		return
	}
	h.store.ReplaceBuildings([]*models.Building{result.Building})

	if h.snapshots != nil {
		if err := h.snapshots.Push(h.store.Snapshot()); err != nil {
			h.logger.WithError(err).Warn("Skipping autosave snapshot")
		}
	}

	m, err := h.store.Metrics()
	if err != nil {
		h.abortWithError(c, err, "Failed to compute metrics")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":  result,
		"metrics": m,
	})
}

// GenerateVariants returns scored candidate designs without touching
// project state.
func (h *Handler) GenerateVariants(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", "5"))
	if err != nil || count <= 0 {
		count = 5
	}

	req, err := h.store.GenerationRequest()
	if err != nil {
		h.abortWithError(c, err, "Cannot generate variants")
		return
	}

	variants, err := h.generator.GenerateVariants(req, count)
	if err != nil {
		h.abortWithError(c, err, "Variant generation failed")
		return
	}
	c.JSON(http.StatusOK, variants)
}

// GetMetrics recomputes and returns the compliance snapshot.
func (h *Handler) GetMetrics(c *gin.Context) {
	m, err := h.store.Metrics()
	if err != nil {
		h.abortWithError(c, err, "Failed to compute metrics")
		return
	}
	c.JSON(http.StatusOK, m)
}

// GetFinancials projects the metrics through the pricing tables.
func (h *Handler) GetFinancials(c *gin.Context) {
	snap := h.store.Snapshot()
	if snap.Site == nil {
		h.abortWithError(c, project.ErrNoSite, "Cannot compute financials")
		return
	}

	m, err := h.store.Metrics()
	if err != nil {
		h.abortWithError(c, err, "Failed to compute metrics")
		return
	}
	fa, err := finance.Analyze(m, snap.City, snap.Site.Zone)
	if err != nil {
		h.abortWithError(c, err, "Failed to compute financials")
		return
	}
	c.JSON(http.StatusOK, fa)
}

// GetAreaStatement renders the plain-text area statement.
func (h *Handler) GetAreaStatement(c *gin.Context) {
	snap := h.store.Snapshot()
	if snap.Site == nil {
		h.abortWithError(c, project.ErrNoSite, "Cannot build area statement")
		return
	}

	m, err := h.store.Metrics()
	if err != nil {
		h.abortWithError(c, err, "Failed to compute metrics")
		return
	}
	c.String(http.StatusOK, report.AreaStatement(m, snap.City, snap.Site.Zone))
}

// GenerateFloorPlan proxies a room-level generation request to the
// inference service.
func (h *Handler) GenerateFloorPlan(c *gin.Context) {
	var req inference.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse floor plan request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Minute)
	defer cancel()

	resp, err := h.inference.Generate(ctx, req)
	if err != nil {
		var infErr *inference.Error
		if errors.As(err, &infErr) && infErr.StatusCode >= 400 && infErr.StatusCode < 500 {
			h.logger.WithError(err).Error("Floor plan request rejected")
			c.JSON(http.StatusBadRequest, gin.H{"error": infErr.Message})
			return
		}
		h.logger.WithError(err).Error("Floor plan generation failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Floor plan service unavailable"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GeocodeAddress resolves a site address to coordinates for centering
// the map.
func (h *Handler) GeocodeAddress(c *gin.Context) {
	address := c.Query("q")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	city := regulation.City(c.DefaultQuery("city", string(h.store.Snapshot().City)))
	if _, err := regulation.Get(city); err != nil {
		h.abortWithError(c, err, "Cannot geocode for unsupported city")
		return
	}

	lat, lon, err := h.geocoder.GeocodeAddress(address, city)
	if err != nil {
		h.logger.WithError(err).Error("Geocoding failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Geocoding failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"latitude": lat, "longitude": lon})
}

// FloorPlanHealth reports the inference service status.
func (h *Handler) FloorPlanHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	health, err := h.inference.CheckHealth(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Inference health check failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Floor plan service unavailable"})
		return
	}
	c.JSON(http.StatusOK, health)
}

type saveProjectRequest struct {
	Name string `json:"name" binding:"required"`
}

// SaveProject persists the current project under a name.
func (h *Handler) SaveProject(c *gin.Context) {
	var req saveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse save request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	h.store.SetName(req.Name)
	if err := h.db.SaveProject(h.store.Snapshot()); err != nil {
		h.abortWithError(c, err, "Failed to save project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved", "name": req.Name})
}

// ListProjects returns saved project names.
func (h *Handler) ListProjects(c *gin.Context) {
	names, err := h.db.ListProjects()
	if err != nil {
		h.abortWithError(c, err, "Failed to list projects")
		return
	}
	c.JSON(http.StatusOK, names)
}

// LoadProject restores a saved project into the store.
func (h *Handler) LoadProject(c *gin.Context) {
	name := c.Param("name")
	p, err := h.db.LoadProject(name)
	if err != nil {
		h.abortWithError(c, err, "Failed to load project")
		return
	}
	h.store.Restore(p)
	c.JSON(http.StatusOK, p)
}

// DeleteProject removes a saved project.
func (h *Handler) DeleteProject(c *gin.Context) {
	if err := h.db.DeleteProject(c.Param("name")); err != nil {
		h.abortWithError(c, err, "Failed to delete project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
