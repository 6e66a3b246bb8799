package controllers

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"stagifyapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
)

type BlueprintController struct {
	Processor services.StagingProcessor
}

func (controller *BlueprintController) BlueprintRoutes(g *echo.Group) {
	g.POST("/process-blueprint", controller.ProcessBlueprint)
}

// ProcessBlueprint turns a 2D floor plan into a top-down 3D render. Extra
// furniture reference photos may be attached under "referenceImages"; they go
// to the provider after the blueprint and before the text prompt.
func (controller *BlueprintController) ProcessBlueprint(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No blueprint image provided"})
	}
	if rejected, resp := validateUploadedImage(c, fileHeader); rejected {
		return resp
	}
	if !controller.Processor.Configured() {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "AI service is not configured"})
	}

	blueprintBytes, err := readUploadedImage(fileHeader)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Failed to read uploaded file"})
	}
	normalized, mimeType, err := services.NormalizeForProvider(blueprintBytes, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Uploaded file could not be decoded as an image"})
	}

	images := []services.ProviderImage{{Data: normalized, MIMEType: mimeType}}

	form, err := c.MultipartForm()
	if err == nil {
		for _, refHeader := range form.File["referenceImages"] {
			if rejected, resp := validateUploadedImage(c, refHeader); rejected {
				return resp
			}
			refBytes, err := readUploadedImage(refHeader)
			if err != nil {
				sentry.CaptureException(err)
				return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Failed to read reference image %q", refHeader.Filename)})
			}
			refNormalized, refMime, err := services.NormalizeForProvider(refBytes, refHeader.Header.Get("Content-Type"))
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Reference image %q could not be decoded", refHeader.Filename)})
			}
			images = append(images, services.ProviderImage{Data: refNormalized, MIMEType: refMime})
		}
	}

	prompt := services.BuildBlueprintPrompt(c.FormValue("additionalPrompt"))

	result, err := controller.Processor.GenerateStagedImage(c.Request().Context(), services.Pro3Image, prompt, images...)
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
