package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherstack.app/internal/ports"
)

// HealthResponse aggregates component health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth handles GET /health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	response := HealthResponse{Status: "healthy", Components: components}
	for _, component := range components {
		if component.Status != "healthy" {
			response.Status = "unhealthy"
			break
		}
	}

	if response.Status != "healthy" {
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}
	c.JSON(http.StatusOK, response)
}
