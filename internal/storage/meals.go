package storage

import (
	"fmt"
	"time"

	"family-dashboard/internal/models"
)

// DateKey formats a time as the YYYY-MM-DD key indexing per-day meal plans.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DefaultDayPlan is the plan served for any day that has never been edited.
func DefaultDayPlan() models.DayMealPlan {
	return models.DayMealPlan{
		Breakfast: models.Meal{
			Time:        "08:00",
			Description: "Pancakes with fresh berries, maple syrup, and a glass of orange juice. A delightful start to your day!",
		},
		Lunch: models.Meal{
			Time:        "12:30",
			Description: "Grilled chicken salad with mixed greens, cherry tomatoes, cucumbers, and balsamic dressing. Light and nutritious!",
		},
		Dinner: models.Meal{
			Time:        "19:00",
			Description: "Homemade spaghetti bolognese with garlic bread and a fresh garden salad. Family favorite!",
		},
	}
}

// Meals returns the full date-key to day-plan mapping. A missing or corrupt
// value yields an empty mapping.
func (db *DB) Meals() (map[string]models.DayMealPlan, error) {
	plans := map[string]models.DayMealPlan{}
	if _, err := db.getJSON(keyMeals, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// PlanForDate returns the meal plan for the given date. A date with no
// stored plan is materialized from the default plan and persisted, so
// repeated reads are idempotent.
func (db *DB) PlanForDate(date time.Time) (models.DayMealPlan, error) {
	plans, err := db.Meals()
	if err != nil {
		return models.DayMealPlan{}, err
	}

	key := DateKey(date)
	if plan, ok := plans[key]; ok {
		return plan, nil
	}

	plan := DefaultDayPlan()
	plans[key] = plan
	if err := db.putJSON(keyMeals, plans); err != nil {
		return models.DayMealPlan{}, err
	}
	return plan, nil
}

// SetMeal overwrites one meal's time and description within the date's
// plan, leaving the other meals untouched. A date with no stored plan is
// materialized from the default plan first, so the stored entry always
// carries all three meals.
func (db *DB) SetMeal(date time.Time, mealName, mealTime, description string) error {
	if !models.ValidMealName(mealName) {
		return fmt.Errorf("unknown meal %q", mealName)
	}

	plans, err := db.Meals()
	if err != nil {
		return err
	}

	key := DateKey(date)
	plan, ok := plans[key]
	if !ok {
		plan = DefaultDayPlan()
	}
	plan.SetMeal(mealName, models.Meal{Time: mealTime, Description: description})
	plans[key] = plan

	return db.putJSON(keyMeals, plans)
}
