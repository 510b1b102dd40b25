package handlers

import (
	"log"
	"net/http"
	"time"

	"family-dashboard/internal/models"
)

// CategoryCount is one slice of the shopping-by-category chart.
type CategoryCount struct {
	Category      string
	Count         int
	CategoryStyle CategoryStyle
}

// ActivityDay is one point of the 7-day family activity chart.
type ActivityDay struct {
	Label  string
	Logins int
}

// AdminStatsViewModel is the data passed to the admin overview template.
type AdminStatsViewModel struct {
	TotalUsers     int
	TodayMeals     int
	ShoppingItems  int
	CompletionRate int
	Categories     []CategoryCount
	Activity       []ActivityDay
	Theme          string
}

// AdminDashboard renders the admin overview: headline stats plus the data
// behind the category and activity charts.
func (h *Handlers) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	userCount, err := h.db.UserCount()
	if err != nil {
		log.Printf("AdminDashboard users: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	items, err := h.db.ShoppingList()
	if err != nil {
		log.Printf("AdminDashboard shopping: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	checked := 0
	byCategory := map[string]int{}
	for _, item := range items {
		if item.Checked {
			checked++
		}
		byCategory[item.Category]++
	}

	completionRate := 0
	if len(items) > 0 {
		completionRate = int(float64(checked)/float64(len(items))*100 + 0.5)
	}

	categoryCounts := make([]CategoryCount, 0, len(categories))
	for _, c := range categories {
		categoryCounts = append(categoryCounts, CategoryCount{
			Category:      c.Name,
			Count:         byCategory[c.ID],
			CategoryStyle: CategoryStyle{Icon: c.Icon, Color: c.Color},
		})
	}

	// Last 7 calendar days, oldest first, counting most-recent logins that
	// fell on each day.
	activity := make([]ActivityDay, 0, 7)
	now := time.Now()
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		activity = append(activity, ActivityDay{
			Label:  day.Format("Mon"),
			Logins: h.db.LoginsOnDay(day),
		})
	}

	h.render(w, r, "admin.html", AdminStatsViewModel{
		TotalUsers:     userCount,
		TodayMeals:     len(models.MealNames),
		ShoppingItems:  len(items),
		CompletionRate: completionRate,
		Categories:     categoryCounts,
		Activity:       activity,
		Theme:          h.db.Theme(),
	})
}
