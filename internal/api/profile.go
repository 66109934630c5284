package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autoaidc6/dalilscan-V2/internal/service"
	"github.com/autoaidc6/dalilscan-V2/internal/types"
)

// ProfileHandler exposes the user store: profile reads, partial updates and
// the UI language preference.
type ProfileHandler struct {
	profileService *service.ProfileService
	sessions       *service.SessionStore
}

func NewProfileHandler(profileService *service.ProfileService, sessions *service.SessionStore) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, sessions: sessions}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.PUT("/language", h.SetLanguage)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile := h.profileService.Get(c.Request.Context(), userID)
	language := h.sessions.Language(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{"profile": profile, "language": language})
}

// UpdateProfile merges the provided fields into the profile.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var patch types.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile := h.profileService.Update(c.Request.Context(), userID, patch)
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *ProfileHandler) SetLanguage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Language string `json:"language" binding:"required,len=2"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.sessions.SetLanguage(c.Request.Context(), userID, req.Language)
	c.JSON(http.StatusOK, gin.H{"language": req.Language})
}
