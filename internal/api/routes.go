package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"grihaplan/server/internal/database"
	"grihaplan/server/internal/geocoding"
	"grihaplan/server/internal/inference"
	"grihaplan/server/internal/project"
	"grihaplan/server/internal/queue"
)

func SetupRoutes(router *gin.Engine, store *project.Store, db *database.Database, inferenceClient *inference.Client, geocoder *geocoding.Geocoder, snapshots *queue.SnapshotQueue, logger *logrus.Logger) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	handler := NewHandler(store, db, inferenceClient, geocoder, snapshots, logger)

	api := router.Group("/api")
	{
		api.GET("/cities", handler.GetCities)
		api.GET("/geocode", handler.GeocodeAddress)
		api.GET("/regulations/:city", handler.GetRegulations)
		api.GET("/unit-templates", handler.GetUnitTemplates)

		api.POST("/site", handler.SetSite)
		api.POST("/zoning", handler.SetZoning)
		api.POST("/unit-mix", handler.SetUnitMix)

		api.POST("/layout/generate", handler.GenerateLayout)
		api.POST("/layout/variants", handler.GenerateVariants)

		api.GET("/metrics", handler.GetMetrics)
		api.GET("/financials", handler.GetFinancials)
		api.GET("/area-statement", handler.GetAreaStatement)

		api.POST("/floor-plan/generate", handler.GenerateFloorPlan)
		api.GET("/floor-plan/health", handler.FloorPlanHealth)

		api.POST("/projects", handler.SaveProject)
		api.GET("/projects", handler.ListProjects)
		api.GET("/projects/:name", handler.LoadProject)
		api.DELETE("/projects/:name", handler.DeleteProject)
	}
}
