package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/autoaidc6/dalilscan-V2/internal/models"
	"github.com/autoaidc6/dalilscan-V2/internal/types"
)

func challengeIndex(id string) int {
	for i, c := range models.AllChallenges {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func TestDailyChallengeStableWithinDay(t *testing.T) {
	svc := NewChallengeService(nil)

	svc.now = fixedClock(time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local))
	morning := svc.Daily()

	svc.now = fixedClock(time.Date(2025, 3, 10, 23, 30, 0, 0, time.Local))
	evening := svc.Daily()

	assert.Equal(t, morning, evening)
}

func TestDailyChallengeRotatesNextDay(t *testing.T) {
	svc := NewChallengeService(nil)

	svc.now = fixedClock(time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local))
	first := svc.Daily()

	svc.now = fixedClock(time.Date(2025, 3, 11, 12, 0, 0, 0, time.Local))
	second := svc.Daily()

	want := (challengeIndex(first.ID) + 1) % len(models.AllChallenges)
	assert.Equal(t, want, challengeIndex(second.ID))
}

func TestDailyChallengeRotatesAcrossYearBoundary(t *testing.T) {
	svc := NewChallengeService(nil)

	svc.now = fixedClock(time.Date(2025, 12, 31, 12, 0, 0, 0, time.Local))
	last := svc.Daily()

	svc.now = fixedClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.Local))
	first := svc.Daily()

	// Dec 31 of a non-leap year is day 365, Jan 1 is day 1.
	assert.Equal(t, models.AllChallenges[365%3], last)
	assert.Equal(t, models.AllChallenges[1%3], first)
}

func TestEvaluateWaterChallenge(t *testing.T) {
	challenge := models.Challenge{ID: "drink_water", Metric: models.MetricWater, Goal: 2000}

	progress := evaluateChallenge(challenge, types.DailySummary{Water: 1000})
	assert.Equal(t, 1000.0, progress.Current)
	assert.Equal(t, 50.0, progress.Percent)
	assert.False(t, progress.Completed)

	progress = evaluateChallenge(challenge, types.DailySummary{Water: 2000})
	assert.True(t, progress.Completed)
	assert.Equal(t, 100.0, progress.Percent)
}

func TestEvaluateCaloriesChallengeIsUnderBudget(t *testing.T) {
	challenge := models.Challenge{ID: "stay_under_kcal", Metric: models.MetricCalories, Goal: 2000}

	// Nothing logged yet: not completed.
	progress := evaluateChallenge(challenge, types.DailySummary{})
	assert.False(t, progress.Completed)
	assert.Zero(t, progress.Percent)

	// Under budget with something logged: completed.
	progress = evaluateChallenge(challenge, types.DailySummary{Calories: 1500})
	assert.True(t, progress.Completed)
	assert.Equal(t, 75.0, progress.Percent)

	// Over budget: no longer completed, percent clamped.
	progress = evaluateChallenge(challenge, types.DailySummary{Calories: 2500})
	assert.False(t, progress.Completed)
	assert.Equal(t, 100.0, progress.Percent)
}

func TestEvaluateMealsChallenge(t *testing.T) {
	challenge := models.Challenge{ID: "log_meals", Metric: models.MetricMeals, Goal: 3}

	progress := evaluateChallenge(challenge, types.DailySummary{Meals: 2})
	assert.False(t, progress.Completed)
	assert.InDelta(t, 66.7, progress.Percent, 0.1)

	progress = evaluateChallenge(challenge, types.DailySummary{Meals: 4})
	assert.True(t, progress.Completed)
	assert.Equal(t, 100.0, progress.Percent)
}
