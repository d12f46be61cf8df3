// Package api exposes the symptom-analysis engine over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/adastra16/MediOracle-ai/internal/analysis"
)

const (
	ServiceName = "MediOracle Medical Analysis"
	Version     = "1.0.0"
)

// HealthChecker is the readiness probe over the optional database pool.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// NewRouter builds the HTTP router. db may be nil when no database is
// configured; readiness then reports it as disabled.
func NewRouter(db HealthChecker) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Logger(),
		gin.Recovery(),
		requestID(),
		medicalDisclaimer(),
		limitBodySize(1<<20), // 1MB max body
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       12 * time.Hour,
		}),
	)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":    "MediOracle AI - Medical Analysis API",
			"version":    Version,
			"status":     "running",
			"disclaimer": analysis.Disclaimer,
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": ServiceName,
			"version": Version,
		})
	})

	router.GET("/readyz", func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"db":     fmt.Sprintf("unhealthy: %v", err),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "ok"})
	})

	apiGroup := router.Group("/api")
	apiGroup.POST("/analyze-symptoms", analyzeSymptoms)
	apiGroup.POST("/analyze", detailedAnalysis)

	return router
}
