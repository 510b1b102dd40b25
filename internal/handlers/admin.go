package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"family-dashboard/internal/models"
	"family-dashboard/internal/storage"
)

// AdminMealsViewModel is the data for the meal editing forms.
type AdminMealsViewModel struct {
	DateKey string
	Meals   []MealView
	Theme   string
}

// AdminMeals renders today's plan into the three meal forms.
func (h *Handlers) AdminMeals(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	plan, err := h.db.PlanForDate(now)
	if err != nil {
		log.Printf("AdminMeals: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	mealViews := make([]MealView, 0, len(models.MealNames))
	for _, name := range models.MealNames {
		meal := plan.Meal(name)
		mealViews = append(mealViews, MealView{
			Name:        name,
			Title:       strings.ToUpper(name[:1]) + name[1:],
			Time:        meal.Time,
			Description: meal.Description,
		})
	}

	h.render(w, r, "admin_meals.html", AdminMealsViewModel{
		DateKey: storage.DateKey(now),
		Meals:   mealViews,
		Theme:   h.db.Theme(),
	})
}

// UpdateMeal overwrites one of today's meals from its form.
func (h *Handlers) UpdateMeal(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	mealName := r.PathValue("meal")
	if err := h.db.SetMeal(time.Now(), mealName, r.FormValue("time"), r.FormValue("description")); err != nil {
		log.Printf("UpdateMeal: %v", err)
		http.Error(w, "Invalid meal", http.StatusBadRequest)
		return
	}

	w.Header().Set("HX-Location", `{"path":"/admin/meals", "target":"#content"}`)
	http.Redirect(w, r, "/admin/meals", http.StatusFound)
}

// AdminShoppingViewModel is the data for the shopping management page.
type AdminShoppingViewModel struct {
	Items      []ItemView
	Search     string
	Categories []CategoryDef
	Theme      string
}

// AdminShopping renders the manageable shopping list, filtered by the ?q=
// name search.
func (h *Handlers) AdminShopping(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("q")
	items, err := h.db.FilteredShoppingList(storage.ItemFilter{Search: search})
	if err != nil {
		log.Printf("AdminShopping: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	itemViews := make([]ItemView, 0, len(items))
	for _, item := range items {
		itemViews = append(itemViews, ItemView{ShoppingItem: item, CategoryStyle: getCategoryStyle(item.Category)})
	}

	h.render(w, r, "admin_shopping.html", AdminShoppingViewModel{
		Items:      itemViews,
		Search:     search,
		Categories: categories,
		Theme:      h.db.Theme(),
	})
}

// CreateItem adds a shopping item from the admin form.
func (h *Handlers) CreateItem(w http.ResponseWriter, r *http.Request) {
	name, category, priority, ok := parseItemForm(r)
	if !ok {
		http.Error(w, "Invalid item", http.StatusBadRequest)
		return
	}

	if _, err := h.db.AddShoppingItem(name, category, priority); err != nil {
		log.Printf("CreateItem: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin/shopping", http.StatusFound)
}

// UpdateItem edits an item's name, category, and priority. Unknown ids are
// ignored.
func (h *Handlers) UpdateItem(w http.ResponseWriter, r *http.Request) {
	name, category, priority, ok := parseItemForm(r)
	if !ok {
		http.Error(w, "Invalid item", http.StatusBadRequest)
		return
	}

	if err := h.db.EditShoppingItem(r.PathValue("id"), name, category, priority); err != nil {
		log.Printf("UpdateItem: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin/shopping", http.StatusFound)
}

// DeleteItem removes an item. Unknown ids are ignored.
func (h *Handlers) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.db.RemoveShoppingItem(r.PathValue("id")); err != nil {
		log.Printf("DeleteItem: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin/shopping", http.StatusFound)
}

func parseItemForm(r *http.Request) (name, category string, priority, ok bool) {
	if err := r.ParseForm(); err != nil {
		return "", "", false, false
	}
	name = strings.TrimSpace(r.FormValue("name"))
	category = r.FormValue("category")
	priority = r.FormValue("priority") == "on"
	if name == "" || !models.ValidCategory(category) {
		return "", "", false, false
	}
	return name, category, priority, true
}

// MemberRow is one row of the family member table.
type MemberRow struct {
	FullName      string
	LastLoginText string
	LoginCount    int
	Active        bool
}

// AdminUsersViewModel is the data for the family member table.
type AdminUsersViewModel struct {
	Members []MemberRow
	Theme   string
}

// AdminUsers renders the family member activity table.
func (h *Handlers) AdminUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.db.Users()
	if err != nil {
		log.Printf("AdminUsers: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	members := make([]MemberRow, 0, len(users))
	for _, u := range users {
		members = append(members, MemberRow{
			FullName:      u.FullName(),
			LastLoginText: formatLastLogin(u.LastLogin, time.Now()),
			LoginCount:    u.LoginCount,
			Active:        h.db.UserActive(u),
		})
	}

	h.render(w, r, "admin_users.html", AdminUsersViewModel{Members: members, Theme: h.db.Theme()})
}

// ExportData serves the full household snapshot as a JSON download.
func (h *Handlers) ExportData(w http.ResponseWriter, r *http.Request) {
	export, err := h.db.ExportData()
	if err != nil {
		log.Printf("ExportData: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="family-data.json"`)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(export); err != nil {
		log.Printf("ExportData encode: %v", err)
	}
}

// formatLastLogin renders a last-login time relative to now.
func formatLastLogin(lastLogin, now time.Time) string {
	days := int(now.Sub(lastLogin).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	default:
		return strconv.Itoa(days) + " days ago"
	}
}
