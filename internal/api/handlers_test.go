package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grihaplan/server/internal/database"
	"grihaplan/server/internal/geometry"
	"grihaplan/server/internal/inference"
	"grihaplan/server/internal/project"
	"grihaplan/server/internal/queue"
)

func testRouter(t *testing.T) (*gin.Engine, *project.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := project.NewStore(logger)
	inferenceClient := inference.NewClient("http://localhost:1", time.Second, 0, logger)
	snapshots := queue.NewSnapshotQueue(4, logger)

	router := gin.New()
	SetupRoutes(router, store, db, inferenceClient, nil, snapshots, logger)
	return router, store
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// A roughly 40x40m plot near Adyar, Chennai.
func testSiteBody() map[string]interface{} {
	center := orb.Point{80.2570, 13.0067}
	ring := geometry.RectRing(center, 40, 40)
	coords := make([][]float64, len(ring))
	for i, p := range ring {
		coords[i] = []float64{p[0], p[1]}
	}
	return map[string]interface{}{
		"ring":         coords,
		"road_width_m": 18.0,
		"zone":         "residential",
	}
}

func TestGetCities(t *testing.T) {
	router, _ := testRouter(t)
	w := doJSON(t, router, http.MethodGet, "/api/cities", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Chennai")
	assert.Contains(t, w.Body.String(), "Coimbatore")
}

func TestGetRegulations(t *testing.T) {
	router, _ := testRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/regulations/chennai", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "residential")

	w = doJSON(t, router, http.MethodGet, "/api/regulations/madurai", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUnitTemplates(t *testing.T) {
	router, _ := testRouter(t)
	w := doJSON(t, router, http.MethodGet, "/api/unit-templates", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2 BHK Standard")
}

func TestSetSite(t *testing.T) {
	router, store := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/site", testSiteBody())
	require.Equal(t, http.StatusOK, w.Code)

	snap := store.Snapshot()
	require.NotNil(t, snap.Site)
	assert.InDelta(t, 1600, snap.Site.AreaSqm, 50)

	// Degenerate boundary is rejected
	bad := testSiteBody()
	bad["ring"] = [][]float64{{80.25, 13.0}, {80.25, 13.0}}
	w = doJSON(t, router, http.MethodPost, "/api/site", bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateLayout_RequiresSite(t *testing.T) {
	router, _ := testRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/layout/generate", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no site boundary")
}

func TestFullPlanningFlow(t *testing.T) {
	router, store := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/site", testSiteBody())
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/zoning", map[string]interface{}{
		"city":          "chennai",
		"stilt_parking": true,
		"max_floors":    8,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/unit-mix", map[string]interface{}{
		"mix": map[string]float64{"2BHK": 0.6, "3BHK": 0.4},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/layout/generate", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Metrics struct {
			UnitCount   int     `json:"unit_count"`
			AchievedFSI float64 `json:"achieved_fsi"`
		} `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Positive(t, resp.Metrics.UnitCount)
	assert.Positive(t, resp.Metrics.AchievedFSI)

	require.Len(t, store.Snapshot().Buildings, 1)

	w = doJSON(t, router, http.MethodGet, "/api/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/financials", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gross_development_value")

	w = doJSON(t, router, http.MethodGet, "/api/area-statement", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AREA STATEMENT")
}

func TestGenerateVariants(t *testing.T) {
	router, _ := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/site", testSiteBody())
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodPost, "/api/unit-mix", map[string]interface{}{
		"mix": map[string]float64{"2BHK": 1.0},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/layout/variants?count=3", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var variants []json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &variants))
	assert.Len(t, variants, 3)
}

func TestProjectPersistence(t *testing.T) {
	router, store := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/site", testSiteBody())
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/projects", map[string]string{"name": "Adyar Residency"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Adyar Residency")

	// Mutate in-memory state, then load the saved copy back
	store.SetName("scratch")
	w = doJSON(t, router, http.MethodGet, "/api/projects/Adyar%20Residency", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Adyar Residency", store.Snapshot().Name)

	w = doJSON(t, router, http.MethodDelete, "/api/projects/Adyar%20Residency", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/projects/Adyar%20Residency", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
