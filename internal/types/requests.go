package types

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LogMealRequest is the request body for a manual meal entry. The caller
// guarantees the numeric fields are present; the service does not validate
// ranges beyond binding.
type LogMealRequest struct {
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories" binding:"min=0"`
	Protein  float64 `json:"protein" binding:"min=0"`
	Carbs    float64 `json:"carbs" binding:"min=0"`
	Fat      float64 `json:"fat" binding:"min=0"`
	Image    string  `json:"image"`
}

// ProfilePatch is a partial profile update. Only fields that are present are
// merged into the stored profile; the incoming field always wins.
type ProfilePatch struct {
	Name          *string  `json:"name"`
	Email         *string  `json:"email"`
	CalorieGoal   *float64 `json:"calorie_goal"`
	ProteinGoal   *float64 `json:"protein_goal"`
	CarbsGoal     *float64 `json:"carbs_goal"`
	FatGoal       *float64 `json:"fat_goal"`
	WaterGoal     *int     `json:"water_goal"`
	Weight        *float64 `json:"weight"`
	Height        *float64 `json:"height"`
	Age           *int     `json:"age"`
	ActivityLevel *string  `json:"activity_level"`
}

// Macros is a protein/carbs/fat triple in grams.
type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// DailySummary holds the derived totals for the current calendar day.
type DailySummary struct {
	Calories float64 `json:"calories"`
	Macros   Macros  `json:"macros"`
	Water    int     `json:"water"`
	Meals    int     `json:"meals"`
}

// DayNutrition is one bucket of the rolling 7-day chart.
type DayNutrition struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// LeaderboardEntry is one row of the points leaderboard.
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}
