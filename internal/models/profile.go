package models

import (
	"strings"
	"unicode"
)

// AvatarPlaceholder is shown when the user has no usable name.
const AvatarPlaceholder = "?"

// Profile is the per-user session record: identity, daily goals, physical
// attributes and gamification state. It lives in memory for the session and
// is written through to the session store as a JSON blob.
type Profile struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	AvatarInitial string `json:"avatar_initial"`

	CalorieGoal float64 `json:"calorie_goal"`
	ProteinGoal float64 `json:"protein_goal"`
	CarbsGoal   float64 `json:"carbs_goal"`
	FatGoal     float64 `json:"fat_goal"`
	WaterGoal   int     `json:"water_goal"`

	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Age           int     `json:"age"`
	ActivityLevel string  `json:"activity_level"`

	Streak       int      `json:"streak"`
	LastLogDate  string   `json:"last_log_date,omitempty"`
	EarnedBadges []string `json:"earned_badges"`
	Points       int      `json:"points"`
}

// DefaultProfile returns the factory-default profile for a new user.
func DefaultProfile(name, email string) Profile {
	return Profile{
		Name:          name,
		Email:         email,
		AvatarInitial: AvatarInitial(name),
		CalorieGoal:   2000,
		ProteinGoal:   150,
		CarbsGoal:     250,
		FatGoal:       65,
		WaterGoal:     2000,
		Weight:        70,
		Height:        170,
		Age:           30,
		ActivityLevel: "moderate",
		EarnedBadges:  []string{},
	}
}

// AvatarInitial derives the avatar letter from a display name.
func AvatarInitial(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return AvatarPlaceholder
	}
	runes := []rune(trimmed)
	return string(unicode.ToUpper(runes[0]))
}

// HasBadge reports whether the badge was already earned. Awards are permanent,
// so membership is the only check the engine ever needs.
func (p *Profile) HasBadge(id string) bool {
	for _, earned := range p.EarnedBadges {
		if earned == id {
			return true
		}
	}
	return false
}
