package controllers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"slices"

	"stagifyapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
)

var maxUploadBytes int64 = 100 * 1024 * 1024

var allowedImageMimeTypes = []string{"image/png", "image/jpeg", "image/webp"}

type ProcessImageResponse struct {
	Success    bool   `json:"success"`
	Image      string `json:"image"`
	PromptUsed string `json:"promptUsed"`
}

type StagingController struct {
	Processor services.StagingProcessor
	UsageLog  *services.UsageLogService
}

func (controller *StagingController) StagingRoutes(g *echo.Group) {
	g.POST("/process-image", controller.ProcessImage)
}

type stagingOptions struct {
	RoomType         string
	FurnitureStyle   string
	AdditionalPrompt string
	RemoveFurniture  bool
	UserRole         string
	ReferralSource   string
	Email            string
}

func readStagingOptions(c echo.Context) stagingOptions {
	return stagingOptions{
		RoomType:         formValueOr(c, "roomType", "Living room"),
		FurnitureStyle:   formValueOr(c, "furnitureStyle", "standard"),
		AdditionalPrompt: c.FormValue("additionalPrompt"),
		// Exact match against "true" only. "True", "1" etc. stay false;
		// that is the documented contract with the frontend.
		RemoveFurniture: c.FormValue("removeFurniture") == "true",
		UserRole:        formValueOr(c, "userRole", "unknown"),
		ReferralSource:  formValueOr(c, "userReferralSource", "unknown"),
		Email:           formValueOr(c, "userEmail", "unknown"),
	}
}

func formValueOr(c echo.Context, name, fallback string) string {
	if v := c.FormValue(name); v != "" {
		return v
	}
	return fallback
}

// validateUploadedImage runs every client-side check before anything touches
// the network. When the upload is rejected it writes the error response and
// reports rejected=true.
func validateUploadedImage(c echo.Context, fileHeader *multipart.FileHeader) (rejected bool, err error) {
	if fileHeader.Size > maxUploadBytes {
		return true, c.JSON(http.StatusRequestEntityTooLarge, map[string]string{
			"error": "File too large, maximum allowed size is 100MB",
			"code":  "FILE_TOO_LARGE",
		})
	}
	declaredMime := fileHeader.Header.Get("Content-Type")
	if !slices.Contains(allowedImageMimeTypes, declaredMime) {
		return true, c.JSON(http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("Unsupported image type %q, allowed types are PNG, JPEG and WebP", declaredMime),
		})
	}
	return false, nil
}

func readUploadedImage(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// respondGenerationError maps provider failures onto distinct JSON bodies so
// the frontend can tell a declined generation from an outage.
func respondGenerationError(c echo.Context, err error) error {
	var textOnly *services.TextOnlyError
	switch {
	case errors.Is(err, services.ErrNotConfigured):
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "AI service is not configured",
		})
	case errors.As(err, &textOnly):
		log.Printf("[Staging] Model returned text instead of an image: %q", textOnly.Text)
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error":   "The model returned text instead of an image",
			"details": textOnly.Text,
		})
	case errors.Is(err, services.ErrEmptyResponse):
		log.Printf("[Staging] Provider returned no usable content")
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error":   "AI service returned no image",
			"details": err.Error(),
		})
	default:
		log.Printf("[Staging] AI processing failed: %v", err)
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error":   "AI processing failed",
			"details": err.Error(),
		})
	}
}

func (controller *StagingController) ProcessImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No image file provided"})
	}
	if rejected, resp := validateUploadedImage(c, fileHeader); rejected {
		return resp
	}
	if !controller.Processor.Configured() {
		log.Println("[Staging] Rejecting request, google ai key is not configured")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "AI service is not configured"})
	}

	imageBytes, err := readUploadedImage(fileHeader)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Failed to read uploaded file"})
	}

	opts := readStagingOptions(c)

	normalized, mimeType, err := services.NormalizeForProvider(imageBytes, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("[Staging] Upload rejected, not a decodable image: %v", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Uploaded file could not be decoded as an image"})
	}

	prompt := services.BuildStagingPrompt(opts.RoomType, opts.FurnitureStyle, opts.AdditionalPrompt, opts.RemoveFurniture)

	// Analytics only. Must never delay or fail the request.
	go controller.UsageLog.LogPrompt(services.PromptLogRecord{
		RoomType:         opts.RoomType,
		FurnitureStyle:   opts.FurnitureStyle,
		AdditionalPrompt: opts.AdditionalPrompt,
		RemoveFurniture:  opts.RemoveFurniture,
		UserRole:         opts.UserRole,
		ReferralSource:   opts.ReferralSource,
		Email:            opts.Email,
		ClientIP:         c.RealIP(),
	})

	result, err := controller.Processor.GenerateStagedImage(
		c.Request().Context(),
		services.Flash25Image,
		prompt,
		services.ProviderImage{Data: normalized, MIMEType: mimeType},
	)
	if err != nil {
		return respondGenerationError(c, err)
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s", result.Image.MIMEType, base64.StdEncoding.EncodeToString(result.Image.Data))
	return c.JSON(http.StatusOK, ProcessImageResponse{
		Success:    true,
		Image:      dataURI,
		PromptUsed: prompt,
	})
}
