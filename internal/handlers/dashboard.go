package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"family-dashboard/internal/models"
	"family-dashboard/internal/storage"
)

// CategoryDef defines the display properties of a shopping category.
type CategoryDef struct {
	ID    string
	Name  string
	Icon  string
	Color string
}

var categories = []CategoryDef{
	{models.CategoryGroceries, "Groceries", "🛒", "#d4856f"},
	{models.CategoryHousehold, "Household", "🏠", "#7a9d96"},
	{models.CategoryPersonal, "Personal", "🧴", "#f4c542"},
	{models.CategoryOther, "Other", "📦", "#6b8e9f"},
}

// CategoryStyle defines the visual style for a category.
type CategoryStyle struct {
	Icon  string
	Color string
}

func getCategoryStyle(category string) CategoryStyle {
	catLower := strings.ToLower(category)
	for _, c := range categories {
		if c.ID == catLower {
			return CategoryStyle{Icon: c.Icon, Color: c.Color}
		}
	}
	return CategoryStyle{Icon: "📦", Color: "#6b8e9f"}
}

// MealView is one meal prepared for display.
type MealView struct {
	Name        string
	Title       string
	Time        string
	Description string
}

// ItemView is a shopping item with its display style.
type ItemView struct {
	models.ShoppingItem
	CategoryStyle CategoryStyle
}

// DashboardViewModel is the data passed to the dashboard template.
type DashboardViewModel struct {
	FirstName  string
	FullName   string
	Initials   string
	DateText   string
	TimeText   string
	Meals      []MealView
	Items      []ItemView
	Filter     string
	Categories []CategoryDef
	Theme      string
}

// Dashboard renders the family dashboard: today's meals and the shopping
// list, optionally filtered to one category via ?category=.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	session, _, err := h.db.CurrentUser()
	if err != nil {
		log.Printf("Dashboard session: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	plan, err := h.db.PlanForDate(now)
	if err != nil {
		log.Printf("Dashboard meals: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	filter := r.URL.Query().Get("category")
	if !models.ValidCategory(filter) {
		filter = ""
	}
	items, err := h.db.FilteredShoppingList(storage.ItemFilter{Category: filter})
	if err != nil {
		log.Printf("Dashboard shopping: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	storage.SortForDisplay(items)

	itemViews := make([]ItemView, 0, len(items))
	for _, item := range items {
		itemViews = append(itemViews, ItemView{ShoppingItem: item, CategoryStyle: getCategoryStyle(item.Category)})
	}

	mealViews := make([]MealView, 0, len(models.MealNames))
	for _, name := range models.MealNames {
		meal := plan.Meal(name)
		mealViews = append(mealViews, MealView{
			Name:        name,
			Title:       strings.ToUpper(name[:1]) + name[1:],
			Time:        formatMealTime(meal.Time),
			Description: meal.Description,
		})
	}

	user := models.User{FirstName: session.FirstName, LastName: session.LastName}
	h.render(w, r, "dashboard.html", DashboardViewModel{
		FirstName:  session.FirstName,
		FullName:   user.FullName(),
		Initials:   user.Initials(),
		DateText:   now.Format("Monday, January 2, 2006"),
		TimeText:   now.Format("3:04 PM"),
		Meals:      mealViews,
		Items:      itemViews,
		Filter:     filter,
		Categories: categories,
		Theme:      h.db.Theme(),
	})
}

// ToggleItem flips an item's checked state and re-renders the dashboard.
func (h *Handlers) ToggleItem(w http.ResponseWriter, r *http.Request) {
	if err := h.db.ToggleShoppingItem(r.PathValue("id")); err != nil {
		log.Printf("ToggleItem: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	back := "/dashboard"
	if filter := r.FormValue("category"); models.ValidCategory(filter) {
		back += "?category=" + filter
	}
	http.Redirect(w, r, back, http.StatusFound)
}

// formatMealTime renders a 24-hour "HH:MM" value as "3:04 PM". Values that
// don't parse are shown as-is.
func formatMealTime(value string) string {
	hhmm := strings.SplitN(value, ":", 2)
	if len(hhmm) != 2 {
		return value
	}
	hour, err := strconv.Atoi(hhmm[0])
	if err != nil || hour < 0 || hour > 23 {
		return value
	}

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return strconv.Itoa(display) + ":" + hhmm[1] + " " + ampm
}
