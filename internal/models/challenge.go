package models

// ChallengeMetric names the aggregate a daily challenge is measured against.
type ChallengeMetric string

const (
	MetricWater    ChallengeMetric = "water"
	MetricCalories ChallengeMetric = "calories"
	MetricMeals    ChallengeMetric = "meals"
)

// Challenge is a static catalog entry for a date-selected daily goal.
type Challenge struct {
	ID       string          `json:"id"`
	TitleKey string          `json:"title_key"`
	Metric   ChallengeMetric `json:"metric"`
	Goal     float64         `json:"goal"`
}

// AllChallenges is the immutable, ordered challenge catalog. Selection indexes
// into it by day of year, so order changes the rotation.
var AllChallenges = []Challenge{
	{ID: "drink_water", TitleKey: "challengeDescDrinkWater", Metric: MetricWater, Goal: 2000},
	{ID: "log_meals", TitleKey: "challengeDescLogMeals", Metric: MetricMeals, Goal: 3},
	{ID: "stay_under_kcal", TitleKey: "challengeDescStayUnderKcal", Metric: MetricCalories, Goal: 2000},
}
