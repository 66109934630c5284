package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/autoaidc6/dalilscan-V2/internal/models"
	"github.com/autoaidc6/dalilscan-V2/internal/types"
)

// ChallengeProgress is a daily challenge together with the user's standing.
type ChallengeProgress struct {
	Challenge models.Challenge `json:"challenge"`
	Current   float64          `json:"current"`
	Percent   float64          `json:"percent"`
	Completed bool             `json:"completed"`
}

// ChallengeService selects the daily challenge and evaluates progress against
// the log aggregator's totals.
type ChallengeService struct {
	logs *LogService
	now  func() time.Time
}

func NewChallengeService(logs *LogService) *ChallengeService {
	return &ChallengeService{logs: logs, now: time.Now}
}

// Daily returns the challenge for the current calendar day. Selection is
// keyed on the day of year alone, so every user sees the same challenge all
// day and the catalog rotates by one entry at local midnight. YearDay is
// calendar-based, which keeps the index stable across DST transitions.
func (s *ChallengeService) Daily() models.Challenge {
	return models.AllChallenges[s.now().YearDay()%len(models.AllChallenges)]
}

// Progress evaluates the user's standing on today's challenge.
func (s *ChallengeService) Progress(ctx context.Context, userID uuid.UUID) ChallengeProgress {
	return evaluateChallenge(s.Daily(), s.logs.TodaySummary(ctx, userID))
}

// evaluateChallenge scores a summary against a challenge. The calories metric
// is an under-budget framing: it completes only while the total is above zero
// and still below the goal, unlike the at-least framings of water and meals.
func evaluateChallenge(challenge models.Challenge, summary types.DailySummary) ChallengeProgress {
	var current float64
	switch challenge.Metric {
	case models.MetricWater:
		current = float64(summary.Water)
	case models.MetricCalories:
		current = summary.Calories
	case models.MetricMeals:
		current = float64(summary.Meals)
	}

	completed := current >= challenge.Goal
	if challenge.Metric == models.MetricCalories {
		completed = current > 0 && current < challenge.Goal
	}

	percent := 0.0
	if challenge.Goal > 0 {
		percent = current / challenge.Goal * 100
		if percent > 100 {
			percent = 100
		}
	}

	return ChallengeProgress{
		Challenge: challenge,
		Current:   current,
		Percent:   percent,
		Completed: completed,
	}
}
