package service

import (
	"fmt"
	"time"

	"github.com/autoaidc6/dalilscan-V2/internal/models"
)

const dateLayout = "2006-01-02"

// Points awarded by the engine.
const (
	pointsDailyLog  = 10
	pointsFirstScan = 20
	pointsStreak3   = 30
	pointsStreak7   = 70
)

// English toast labels; the client substitutes its own translation using the
// badge's name key when a language is selected.
var badgeLabels = map[string]string{
	models.BadgeFirstScan: "First Scan",
	models.BadgeStreak3:   "3-Day Streak",
	models.BadgeStreak7:   "7-Day Streak",
}

// Unlock is a badge-unlock notification for the toast collaborator.
type Unlock struct {
	Badge   models.Badge `json:"badge"`
	Points  int          `json:"points"`
	Message string       `json:"message"`
}

// GamificationService turns "a log-affecting action happened" plus the current
// profile state into updated streak/points/badge state and unlock events.
type GamificationService struct{}

func NewGamificationService() *GamificationService {
	return &GamificationService{}
}

// PerformUpdate applies one gamification transition to the profile in place
// and returns any badge unlocks. The transition is evaluated at the time the
// triggering entry was stamped, so the streak day always matches the entry's
// day even when the call straddles midnight. The streak branch runs at most
// once per calendar day no matter how many log actions happen; it is
// log-type-agnostic, so water alone extends a streak. The first-scan badge
// fires only for new log actions (meals), independently of the streak branch.
// The caller persists the mutated profile in a single merge afterwards.
func (s *GamificationService) PerformUpdate(profile *models.Profile, at time.Time, isNewLogAction bool) []Unlock {
	today := at.Format(dateLayout)

	var unlocks []Unlock

	if profile.LastLogDate != today {
		yesterday := at.AddDate(0, 0, -1).Format(dateLayout)
		if profile.LastLogDate == yesterday {
			profile.Streak++
		} else {
			// Any gap, including the very first log ever, starts over.
			profile.Streak = 1
		}
		profile.Points += pointsDailyLog
		profile.LastLogDate = today

		if profile.Streak >= 3 {
			unlocks = append(unlocks, s.award(profile, models.BadgeStreak3, pointsStreak3)...)
		}
		if profile.Streak >= 7 {
			unlocks = append(unlocks, s.award(profile, models.BadgeStreak7, pointsStreak7)...)
		}
	}

	if isNewLogAction {
		unlocks = append(unlocks, s.award(profile, models.BadgeFirstScan, pointsFirstScan)...)
	}

	return unlocks
}

// award grants a badge once. Awarding is permanent and idempotent; points only
// ever increase.
func (s *GamificationService) award(profile *models.Profile, badgeID string, points int) []Unlock {
	if profile.HasBadge(badgeID) {
		return nil
	}

	profile.EarnedBadges = append(profile.EarnedBadges, badgeID)
	profile.Points += points

	badge, ok := models.BadgeByID(badgeID)
	if !ok {
		return nil
	}
	return []Unlock{{
		Badge:   badge,
		Points:  points,
		Message: fmt.Sprintf("Badge unlocked: %s! +%d points", badgeLabels[badgeID], points),
	}}
}
