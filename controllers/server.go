package controllers

import (
	"embed"
	"io/fs"
	"log"
	"net/http"

	"stagifyapi/services"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

//go:embed static
var embeddedStatic embed.FS

func SetupServer(
	processor services.StagingProcessor,
	usageLog *services.UsageLogService,
) *echo.Echo {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	staticRoot, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		log.Println("Failed to mount embedded static site:", err)
	} else {
		e.StaticFS("/", staticRoot)
	}

	apiGroup := e.Group("/api")

	stagingController := StagingController{Processor: processor, UsageLog: usageLog}
	stagingController.StagingRoutes(apiGroup)

	blueprintController := BlueprintController{Processor: processor}
	blueprintController.BlueprintRoutes(apiGroup)

	contactController := ContactController{UsageLog: usageLog}
	contactController.ContactRoutes(apiGroup)

	healthController := HealthController{Processor: processor}
	healthController.HealthRoutes(apiGroup)

	return e
}
