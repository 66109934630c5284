package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autoaidc6/dalilscan-V2/internal/models"
	"github.com/autoaidc6/dalilscan-V2/internal/service"
)

// GamificationHandler exposes streak/points/badge state, the daily challenge
// and the points leaderboard.
type GamificationHandler struct {
	profileService   *service.ProfileService
	challengeService *service.ChallengeService
	leaderboard      *service.LeaderboardService
}

func NewGamificationHandler(profileService *service.ProfileService, challengeService *service.ChallengeService, leaderboard *service.LeaderboardService) *GamificationHandler {
	return &GamificationHandler{
		profileService:   profileService,
		challengeService: challengeService,
		leaderboard:      leaderboard,
	}
}

func (h *GamificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	gamification := router.Group("/gamification")
	{
		gamification.GET("", h.GetState)
		gamification.GET("/badges", h.GetBadges)
		gamification.GET("/challenge", h.GetChallenge)
		gamification.GET("/leaderboard", h.GetLeaderboard)
	}
}

func (h *GamificationHandler) GetState(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile := h.profileService.Get(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{
		"streak":        profile.Streak,
		"points":        profile.Points,
		"earned_badges": profile.EarnedBadges,
	})
}

// GetBadges returns the full catalog alongside what the user has earned.
func (h *GamificationHandler) GetBadges(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile := h.profileService.Get(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{
		"catalog": models.AllBadges,
		"earned":  profile.EarnedBadges,
	})
}

func (h *GamificationHandler) GetChallenge(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.challengeService.Progress(c.Request.Context(), userID))
}

func (h *GamificationHandler) GetLeaderboard(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	entries, err := h.leaderboard.Top(c.Request.Context(), 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load leaderboard"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
