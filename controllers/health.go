package controllers

import (
	"net/http"
	"time"

	"stagifyapi/services"

	"github.com/labstack/echo/v4"
)

type HealthResponse struct {
	Status       string `json:"status"`
	Timestamp    string `json:"timestamp"`
	AIConfigured bool   `json:"aiConfigured"`
}

type HealthController struct {
	Processor services.StagingProcessor
}

func (controller *HealthController) HealthRoutes(g *echo.Group) {
	g.GET("/health", controller.Health)
}

func (controller *HealthController) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:       "healthy",
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		AIConfigured: controller.Processor.Configured(),
	})
}
