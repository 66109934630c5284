package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autoaidc6/dalilscan-V2/internal/service"
	"github.com/autoaidc6/dalilscan-V2/internal/types"
)

const maxImageBytes = 10 << 20

// ScanHandler drives the capture flow: a meal photo goes to the vision model
// for analysis and to S3 for storage, and the result lands in the log as a
// meal entry.
type ScanHandler struct {
	visionService *service.VisionService
	imageService  *service.ImageService
	logService    *service.LogService
}

func NewScanHandler(visionService *service.VisionService, imageService *service.ImageService, logService *service.LogService) *ScanHandler {
	return &ScanHandler{
		visionService: visionService,
		imageService:  imageService,
		logService:    logService,
	}
}

func (h *ScanHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/scan", h.AnalyzeMeal)
}

// AnalyzeMeal accepts a multipart image upload, runs the analysis and logs
// the resulting meal.
func (h *ScanHandler) AnalyzeMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}
	defer func() { _ = file.Close() }()

	imageData, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	analysis, err := h.visionService.AnalyzeFoodImage(c.Request.Context(), imageData, mimeType)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to analyze image"})
		return
	}

	// Storage is best-effort: a failed upload drops the image reference but
	// not the analyzed meal.
	imageURL := ""
	if h.imageService != nil {
		if url, err := h.imageService.UploadMealImage(c.Request.Context(), imageData, mimeType); err == nil {
			imageURL = url
		}
	}

	meal, unlocks := h.logService.LogMeal(c.Request.Context(), userID, types.LogMealRequest{
		Name:     analysis.Name,
		Calories: analysis.Calories,
		Protein:  analysis.Protein,
		Carbs:    analysis.Carbs,
		Fat:      analysis.Fat,
		Image:    imageURL,
	})

	c.JSON(http.StatusCreated, gin.H{"meal": meal, "notifications": unlocks})
}
