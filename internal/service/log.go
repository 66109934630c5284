package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/autoaidc6/dalilscan-V2/internal/models"
	"github.com/autoaidc6/dalilscan-V2/internal/types"
)

// LogService owns the canonical ordered log of entries per user and exposes
// the derived totals the dashboard reads. Logging a meal or a glass of water
// runs the gamification engine exactly once, synchronously, before the call
// returns; edits and resets do not.
type LogService struct {
	mu   sync.Mutex
	logs map[uuid.UUID]models.EntryList

	gamification *GamificationService
	profiles     *ProfileService
	sessions     *SessionStore
	leaderboard  *LeaderboardService

	now func() time.Time
}

func NewLogService(gamification *GamificationService, profiles *ProfileService, sessions *SessionStore, leaderboard *LeaderboardService) *LogService {
	return &LogService{
		logs:         make(map[uuid.UUID]models.EntryList),
		gamification: gamification,
		profiles:     profiles,
		sessions:     sessions,
		leaderboard:  leaderboard,
		now:          time.Now,
	}
}

// entriesLocked returns the user's log, restoring it from the session store on
// first access. Callers must hold mu.
func (s *LogService) entriesLocked(ctx context.Context, userID uuid.UUID) models.EntryList {
	if entries, ok := s.logs[userID]; ok {
		return entries
	}
	entries, _ := s.sessions.LoadLog(ctx, userID)
	s.logs[userID] = entries
	return entries
}

// LogMeal appends a new meal entry stamped with the current time. The entry id
// and meal slot are frozen in here, per the entry model.
func (s *LogService) LogMeal(ctx context.Context, userID uuid.UUID, req types.LogMealRequest) (models.Meal, []Unlock) {
	meal := models.NewMeal(req.Name, req.Calories, req.Protein, req.Carbs, req.Fat, req.Image, s.now())

	s.mu.Lock()
	entries := append(s.entriesLocked(ctx, userID), meal)
	s.logs[userID] = entries
	s.sessions.SaveLog(ctx, userID, entries)
	s.mu.Unlock()

	return meal, s.runGamification(ctx, userID, meal.Timestamp, true)
}

// UpdateMeal replaces the meal whose id matches. An unknown id is a silent
// no-op: edits are idempotent corrections and never an error. Edits do not
// re-trigger the gamification engine. The entry's timestamp and meal slot are
// frozen at creation, so an edit can only correct name, nutrition and image;
// the stored values always win over whatever the caller sent.
func (s *LogService) UpdateMeal(ctx context.Context, userID uuid.UUID, updated models.Meal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.entriesLocked(ctx, userID)
	for i, entry := range entries {
		meal, ok := entry.(models.Meal)
		if !ok || meal.ID != updated.ID {
			continue
		}
		updated.Timestamp = meal.Timestamp
		updated.MealType = meal.MealType
		entries[i] = updated
		s.sessions.SaveLog(ctx, userID, entries)
		return
	}
}

// AddWater appends a fixed 250 ml water entry stamped with the current time.
// Water counts toward the streak but never toward the first-scan badge.
func (s *LogService) AddWater(ctx context.Context, userID uuid.UUID) (models.Water, []Unlock) {
	water := models.NewWater(s.now())

	s.mu.Lock()
	entries := append(s.entriesLocked(ctx, userID), water)
	s.logs[userID] = entries
	s.sessions.SaveLog(ctx, userID, entries)
	s.mu.Unlock()

	return water, s.runGamification(ctx, userID, water.Timestamp, false)
}

// runGamification performs one engine pass at the triggering entry's stamp
// time and persists the profile changes in a single merge, then syncs the
// leaderboard score.
func (s *LogService) runGamification(ctx context.Context, userID uuid.UUID, at time.Time, isNewLogAction bool) []Unlock {
	var unlocks []Unlock
	profile := s.profiles.Mutate(ctx, userID, func(p *models.Profile) {
		unlocks = s.gamification.PerformUpdate(p, at, isNewLogAction)
	})
	s.leaderboard.SetScore(ctx, userID, profile.Name, profile.Points)
	return unlocks
}

// Entries returns a copy of the user's ordered log.
func (s *LogService) Entries(ctx context.Context, userID uuid.UUID) models.EntryList {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.entriesLocked(ctx, userID)
	out := make(models.EntryList, len(entries))
	copy(out, entries)
	return out
}

// Reset clears the entire log. Used only on logout.
func (s *LogService) Reset(ctx context.Context, userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs[userID] = nil
	s.sessions.SaveLog(ctx, userID, nil)
}

// Forget drops the in-memory log, e.g. after logout cleared the session.
func (s *LogService) Forget(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.logs, userID)
}

// TodaySummary sums calories, macros, water and meal count over entries logged
// since local midnight. Entries from prior days never count.
func (s *LogService) TodaySummary(ctx context.Context, userID uuid.UUID) types.DailySummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var summary types.DailySummary
	for _, entry := range s.entriesLocked(ctx, userID) {
		if entry.LoggedAt().Before(midnight) {
			continue
		}
		switch e := entry.(type) {
		case models.Meal:
			summary.Calories += e.Calories
			summary.Macros.Protein += e.Protein
			summary.Macros.Carbs += e.Carbs
			summary.Macros.Fat += e.Fat
			summary.Meals++
		case models.Water:
			summary.Water += e.Amount
		}
	}
	return summary
}

// WeekChart buckets meal nutrition over the last 7 calendar days, oldest to
// newest, today included. Buckets match on calendar date, not a rolling 24h
// window, which deliberately differs from the today filter.
func (s *LogService) WeekChart(ctx context.Context, userID uuid.UUID) []types.DayNutrition {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.entriesLocked(ctx, userID)
	now := s.now()

	chart := make([]types.DayNutrition, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := now.AddDate(0, 0, -offset)
		bucket := types.DayNutrition{Name: day.Format("Mon")}

		for _, entry := range entries {
			meal, ok := entry.(models.Meal)
			if !ok {
				continue
			}
			y1, m1, d1 := meal.Timestamp.Date()
			y2, m2, d2 := day.Date()
			if y1 != y2 || m1 != m2 || d1 != d2 {
				continue
			}
			bucket.Calories += meal.Calories
			bucket.Protein += meal.Protein
			bucket.Carbs += meal.Carbs
			bucket.Fat += meal.Fat
		}
		chart = append(chart, bucket)
	}
	return chart
}
