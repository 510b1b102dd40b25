package models

// Meal names within a day plan.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

// MealNames lists the three meals in day order.
var MealNames = []string{MealBreakfast, MealLunch, MealDinner}

// ValidMealName reports whether name is one of the three meals.
func ValidMealName(name string) bool {
	switch name {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	}
	return false
}

// Meal is a single planned meal: a 24-hour "HH:MM" time and free text.
type Meal struct {
	Time        string `json:"time"`
	Description string `json:"description"`
}

// DayMealPlan holds the three meals planned for one calendar day.
type DayMealPlan struct {
	Breakfast Meal `json:"breakfast"`
	Lunch     Meal `json:"lunch"`
	Dinner    Meal `json:"dinner"`
}

// Meal returns the named meal, or a zero Meal for an unknown name.
func (p DayMealPlan) Meal(name string) Meal {
	switch name {
	case MealBreakfast:
		return p.Breakfast
	case MealLunch:
		return p.Lunch
	case MealDinner:
		return p.Dinner
	}
	return Meal{}
}

// SetMeal overwrites the named meal. Unknown names are ignored.
func (p *DayMealPlan) SetMeal(name string, m Meal) {
	switch name {
	case MealBreakfast:
		p.Breakfast = m
	case MealLunch:
		p.Lunch = m
	case MealDinner:
		p.Dinner = m
	}
}
