package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// MealCategory is the meal slot a meal was logged in. It is derived from the
// entry's local hour once, at creation, and frozen into the record so that
// historical entries keep their category even if the slot boundaries change.
type MealCategory string

const (
	CategoryBreakfast MealCategory = "Breakfast"
	CategoryLunch     MealCategory = "Lunch"
	CategoryDinner    MealCategory = "Dinner"
	CategorySnack     MealCategory = "Snack"
)

// EntryKind discriminates the log entry variants.
type EntryKind string

const (
	KindMeal  EntryKind = "Meal"
	KindWater EntryKind = "Water"
)

// GlassML is the fixed volume of a single water entry, in milliliters.
const GlassML = 250

// LogEntry is one logged event: a meal or a water intake.
type LogEntry interface {
	Kind() EntryKind
	EntryID() string
	LoggedAt() time.Time
}

// Meal is a logged meal with its estimated nutritional content.
type Meal struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Calories  float64      `json:"calories"`
	Protein   float64      `json:"protein"`
	Carbs     float64      `json:"carbs"`
	Fat       float64      `json:"fat"`
	Timestamp time.Time    `json:"timestamp"`
	Image     string       `json:"image,omitempty"`
	MealType  MealCategory `json:"meal_type"`
}

func (m Meal) Kind() EntryKind     { return KindMeal }
func (m Meal) EntryID() string     { return m.ID }
func (m Meal) LoggedAt() time.Time { return m.Timestamp }

// Water is a logged glass of water.
type Water struct {
	ID        string    `json:"id"`
	Amount    int       `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

func (w Water) Kind() EntryKind     { return KindWater }
func (w Water) EntryID() string     { return w.ID }
func (w Water) LoggedAt() time.Time { return w.Timestamp }

// CategoryForTime maps a local timestamp to its meal slot.
func CategoryForTime(t time.Time) MealCategory {
	switch hour := t.Hour(); {
	case hour >= 5 && hour < 11:
		return CategoryBreakfast
	case hour >= 11 && hour < 16:
		return CategoryLunch
	case hour >= 16 && hour < 22:
		return CategoryDinner
	default:
		return CategorySnack
	}
}

// NewMeal builds a meal entry logged at the given time. The entry id is the
// creation timestamp itself, and the meal slot is frozen in at this point.
func NewMeal(name string, calories, protein, carbs, fat float64, image string, at time.Time) Meal {
	return Meal{
		ID:        at.Format(time.RFC3339Nano),
		Name:      name,
		Calories:  calories,
		Protein:   protein,
		Carbs:     carbs,
		Fat:       fat,
		Timestamp: at,
		Image:     image,
		MealType:  CategoryForTime(at),
	}
}

// NewWater builds a fixed-volume water entry logged at the given time.
func NewWater(at time.Time) Water {
	return Water{
		ID:        at.Format(time.RFC3339Nano),
		Amount:    GlassML,
		Timestamp: at,
	}
}

// EntryList serializes a log as a JSON array of tagged entries, so the two
// variants survive a round trip through the session store.
type EntryList []LogEntry

type taggedMeal struct {
	Type EntryKind `json:"type"`
	Meal
}

type taggedWater struct {
	Type EntryKind `json:"type"`
	Water
}

// MarshalJSON writes each entry with a "type" discriminator field.
func (l EntryList) MarshalJSON() ([]byte, error) {
	out := make([]interface{}, len(l))
	for i, entry := range l {
		switch e := entry.(type) {
		case Meal:
			out[i] = taggedMeal{Type: KindMeal, Meal: e}
		case Water:
			out[i] = taggedWater{Type: KindWater, Water: e}
		default:
			return nil, fmt.Errorf("unknown log entry kind %q", entry.Kind())
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores the concrete variants from their tagged form.
func (l *EntryList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	entries := make([]LogEntry, 0, len(raw))
	for _, item := range raw {
		var tag struct {
			Type EntryKind `json:"type"`
		}
		if err := json.Unmarshal(item, &tag); err != nil {
			return err
		}

		switch tag.Type {
		case KindMeal:
			var meal Meal
			if err := json.Unmarshal(item, &meal); err != nil {
				return err
			}
			entries = append(entries, meal)
		case KindWater:
			var water Water
			if err := json.Unmarshal(item, &water); err != nil {
				return err
			}
			entries = append(entries, water)
		default:
			return fmt.Errorf("unknown log entry kind %q", tag.Type)
		}
	}

	*l = entries
	return nil
}
