package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoaidc6/dalilscan-V2/internal/models"
	"github.com/autoaidc6/dalilscan-V2/internal/types"
)

func newTestLogService() *LogService {
	sessions := NewSessionStore(nil)
	profiles := NewProfileService(sessions)
	return NewLogService(NewGamificationService(), profiles, sessions, nil)
}

func mealRequest(name string, calories float64) types.LogMealRequest {
	return types.LogMealRequest{Name: name, Calories: calories, Protein: 20, Carbs: 30, Fat: 10}
}

func TestTodayTotalsExcludePriorDays(t *testing.T) {
	ctx := context.Background()
	svc := newTestLogService()
	userID := uuid.New()

	svc.now = fixedClock(day(9))
	svc.LogMeal(ctx, userID, mealRequest("Pasta", 500))

	svc.now = fixedClock(day(10))
	svc.LogMeal(ctx, userID, mealRequest("Salad", 300))
	svc.AddWater(ctx, userID)

	summary := svc.TodaySummary(ctx, userID)
	assert.Equal(t, 300.0, summary.Calories)
	assert.Equal(t, 20.0, summary.Macros.Protein)
	assert.Equal(t, 30.0, summary.Macros.Carbs)
	assert.Equal(t, 10.0, summary.Macros.Fat)
	assert.Equal(t, models.GlassML, summary.Water)
	assert.Equal(t, 1, summary.Meals)
}

func TestWeekChartShape(t *testing.T) {
	ctx := context.Background()
	svc := newTestLogService()
	userID := uuid.New()

	svc.now = fixedClock(day(9))
	svc.LogMeal(ctx, userID, mealRequest("Pasta", 500))

	today := day(10)
	svc.now = fixedClock(today)
	svc.LogMeal(ctx, userID, mealRequest("Salad", 300))

	chart := svc.WeekChart(ctx, userID)
	require.Len(t, chart, 7)
	assert.Equal(t, today.Format("Mon"), chart[6].Name)
	assert.Equal(t, 300.0, chart[6].Calories)
	assert.Equal(t, 500.0, chart[5].Calories)
	for i := 0; i < 5; i++ {
		assert.Zero(t, chart[i].Calories)
	}
}

func TestUpdateMealReplacesByID(t *testing.T) {
	ctx := context.Background()
	svc := newTestLogService()
	userID := uuid.New()

	svc.now = fixedClock(day(10))
	meal, _ := svc.LogMeal(ctx, userID, mealRequest("Pasta", 500))

	corrected := meal
	corrected.Name = "Pasta Carbonara"
	corrected.Calories = 650
	svc.UpdateMeal(ctx, userID, corrected)

	entries := svc.Entries(ctx, userID)
	require.Len(t, entries, 1)
	updated, ok := entries[0].(models.Meal)
	require.True(t, ok)
	assert.Equal(t, "Pasta Carbonara", updated.Name)
	assert.Equal(t, 650.0, updated.Calories)
	assert.Equal(t, meal.ID, updated.ID)
}

func TestUpdateMealKeepsFrozenTimestampAndSlot(t *testing.T) {
	ctx := context.Background()
	svc := newTestLogService()
	userID := uuid.New()

	logged := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
	svc.now = fixedClock(logged)
	meal, _ := svc.LogMeal(ctx, userID, mealRequest("Omelette", 300))

	// An edit carrying only the corrected fields, the way a client sends it.
	svc.UpdateMeal(ctx, userID, models.Meal{
		ID:       meal.ID,
		Name:     "Cheese Omelette",
		Calories: 450,
		Protein:  25,
		Carbs:    5,
		Fat:      35,
	})

	entries := svc.Entries(ctx, userID)
	require.Len(t, entries, 1)
	updated, ok := entries[0].(models.Meal)
	require.True(t, ok)
	assert.Equal(t, "Cheese Omelette", updated.Name)
	assert.Equal(t, logged, updated.Timestamp)
	assert.Equal(t, models.CategoryBreakfast, updated.MealType)

	// The edited entry still counts toward today because its timestamp
	// survived the edit.
	summary := svc.TodaySummary(ctx, userID)
	assert.Equal(t, 450.0, summary.Calories)
	assert.Equal(t, 1, summary.Meals)
}

func TestUpdateMealUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := newTestLogService()
	userID := uuid.New()

	svc.now = fixedClock(day(10))
	meal, _ := svc.LogMeal(ctx, userID, mealRequest("Pasta", 500))

	ghost := models.NewMeal("Ghost", 1, 1, 1, 1, "", day(10).Add(time.Hour))
	svc.UpdateMeal(ctx, userID, ghost)

	entries := svc.Entries(ctx, userID)
	require.Len(t, entries, 1)
	kept, ok := entries[0].(models.Meal)
	require.True(t, ok)
	assert.Equal(t, meal, kept)
}

func TestUpdateMealDoesNotRetriggerGamification(t *testing.T) {
	ctx := context.Background()
	svc := newTestLogService()
	userID := uuid.New()

	svc.now = fixedClock(day(10))
	meal, _ := svc.LogMeal(ctx, userID, mealRequest("Pasta", 500))

	before := svc.profiles.Get(ctx, userID).Points
	corrected := meal
	corrected.Calories = 650
	svc.UpdateMeal(ctx, userID, corrected)

	assert.Equal(t, before, svc.profiles.Get(ctx, userID).Points)
}

func TestLogMealRunsGamificationOnce(t *testing.T) {
	ctx := context.Background()
	svc := newTestLogService()
	userID := uuid.New()

	svc.now = fixedClock(day(10))
	_, unlocks := svc.LogMeal(ctx, userID, mealRequest("Pasta", 500))

	require.Len(t, unlocks, 1)
	assert.Equal(t, models.BadgeFirstScan, unlocks[0].Badge.ID)

	profile := svc.profiles.Get(ctx, userID)
	assert.Equal(t, 1, profile.Streak)
	assert.Equal(t, 30, profile.Points)
}

func TestLateNightMealCreditsItsOwnDay(t *testing.T) {
	ctx := context.Background()
	svc := newTestLogService()
	userID := uuid.New()

	// Streak bookkeeping runs on the entry's stamp, so a meal logged just
	// before midnight lands on that day even if processing crosses into the
	// next one.
	svc.now = fixedClock(time.Date(2025, 3, 10, 23, 59, 30, 0, time.Local))
	meal, _ := svc.LogMeal(ctx, userID, mealRequest("Midnight Snack", 200))

	profile := svc.profiles.Get(ctx, userID)
	assert.Equal(t, "2025-03-10", profile.LastLogDate)
	assert.Equal(t, meal.Timestamp.Format("2006-01-02"), profile.LastLogDate)
	assert.Equal(t, 1, profile.Streak)
}

func TestWaterDoesNotEarnFirstScan(t *testing.T) {
	ctx := context.Background()
	svc := newTestLogService()
	userID := uuid.New()

	svc.now = fixedClock(day(10))
	water, unlocks := svc.AddWater(ctx, userID)

	assert.Equal(t, models.GlassML, water.Amount)
	assert.Empty(t, unlocks)

	profile := svc.profiles.Get(ctx, userID)
	assert.Equal(t, 1, profile.Streak)
	assert.Equal(t, 10, profile.Points)
	assert.Empty(t, profile.EarnedBadges)
}

func TestResetLogClearsTotals(t *testing.T) {
	ctx := context.Background()
	svc := newTestLogService()
	userID := uuid.New()

	svc.now = fixedClock(day(10))
	svc.LogMeal(ctx, userID, mealRequest("Pasta", 500))
	svc.AddWater(ctx, userID)

	svc.Reset(ctx, userID)

	summary := svc.TodaySummary(ctx, userID)
	assert.Zero(t, summary.Calories)
	assert.Zero(t, summary.Macros.Protein)
	assert.Zero(t, summary.Macros.Carbs)
	assert.Zero(t, summary.Macros.Fat)
	assert.Zero(t, summary.Water)
	assert.Empty(t, svc.Entries(ctx, userID))
}

func TestEntriesPreserveInsertionOrder(t *testing.T) {
	ctx := context.Background()
	svc := newTestLogService()
	userID := uuid.New()

	base := day(10)
	for i, name := range []string{"Breakfast", "Lunch", "Dinner"} {
		svc.now = fixedClock(base.Add(time.Duration(i) * time.Hour))
		svc.LogMeal(ctx, userID, mealRequest(name, 100))
	}

	entries := svc.Entries(ctx, userID)
	require.Len(t, entries, 3)
	for i, name := range []string{"Breakfast", "Lunch", "Dinner"} {
		meal, ok := entries[i].(models.Meal)
		require.True(t, ok)
		assert.Equal(t, name, meal.Name)
	}
}
