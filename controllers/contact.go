package controllers

import (
	"log"
	"net/http"

	"stagifyapi/services"

	"github.com/labstack/echo/v4"
)

type LogContactIn struct {
	UserRole       string `json:"userRole" validate:"omitempty,max=100"`
	ReferralSource string `json:"referralSource" validate:"omitempty,max=200"`
	Email          string `json:"email" validate:"omitempty,max=200"`
	UserAgent      string `json:"userAgent" validate:"omitempty,max=500"`
}

type LogContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ContactController struct {
	UsageLog *services.UsageLogService
}

func (controller *ContactController) ContactRoutes(g *echo.Group) {
	g.POST("/log-contact", controller.LogContact)
}

// LogContact is best effort: the endpoint always answers 200 and internal
// problems only flip success to false.
func (controller *ContactController) LogContact(c echo.Context) error {
	var req LogContactIn
	if err := c.Bind(&req); err != nil {
		log.Printf("[Contact] Could not read contact payload: %v", err)
		return c.JSON(http.StatusOK, LogContactResponse{Success: false, Message: "Could not read contact payload"})
	}
	if err := c.Validate(req); err != nil {
		log.Printf("[Contact] Contact payload rejected: %v", err)
		return c.JSON(http.StatusOK, LogContactResponse{Success: false, Message: "Contact payload rejected"})
	}

	controller.UsageLog.LogContact(services.ContactLogRecord{
		UserRole:       req.UserRole,
		ReferralSource: req.ReferralSource,
		Email:          req.Email,
		UserAgent:      req.UserAgent,
		ClientIP:       c.RealIP(),
	})
	return c.JSON(http.StatusOK, LogContactResponse{Success: true, Message: "Contact logged"})
}
