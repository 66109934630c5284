package models

// Badge is a static catalog entry for a one-time achievement. Name and
// description keys are resolved by the client against its selected language.
type Badge struct {
	ID             string `json:"id"`
	NameKey        string `json:"name_key"`
	DescriptionKey string `json:"description_key"`
	Icon           string `json:"icon"`
}

// Badge ids awarded by the gamification engine.
const (
	BadgeFirstScan = "first_scan"
	BadgeStreak3   = "streak_3"
	BadgeStreak7   = "streak_7"
)

// AllBadges is the immutable badge catalog.
var AllBadges = []Badge{
	{ID: BadgeFirstScan, NameKey: "badgeNameFirstScan", DescriptionKey: "badgeDescFirstScan", Icon: "FirstScanIcon"},
	{ID: BadgeStreak3, NameKey: "badgeNameStreak3", DescriptionKey: "badgeDescStreak3", Icon: "Streak3Icon"},
	{ID: BadgeStreak7, NameKey: "badgeNameStreak7", DescriptionKey: "badgeDescStreak7", Icon: "Streak7Icon"},
}

// BadgeByID looks a badge up in the catalog.
func BadgeByID(id string) (Badge, bool) {
	for _, b := range AllBadges {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}
