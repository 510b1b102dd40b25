package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"family-dashboard/internal/config"
	"family-dashboard/internal/handlers"
	"family-dashboard/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	db, err := storage.NewDB(cfg.DBPath)
	if err != nil {
		log.Printf("Failed to open database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	h := handlers.NewHandlers(db, cfg.TemplateDir, cfg.AdminPassword)
	mux := setupRouter(h, cfg.StaticDir)

	log.Printf("Family dashboard listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		log.Printf("Server error: %v", err)
		os.Exit(1)
	}
}

func setupRouter(h *handlers.Handlers, staticDir string) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	})

	mux.HandleFunc("GET /login", h.LoginForm)
	mux.HandleFunc("POST /login", h.Login)
	mux.HandleFunc("POST /admin/login", h.AdminLogin)
	mux.HandleFunc("GET /logout", h.Logout)
	mux.HandleFunc("POST /theme", h.ToggleTheme)

	mux.Handle("GET /dashboard", h.RequireUser(http.HandlerFunc(h.Dashboard)))
	mux.Handle("POST /shopping/{id}/toggle", h.RequireUser(http.HandlerFunc(h.ToggleItem)))

	mux.Handle("GET /admin", h.RequireAdmin(http.HandlerFunc(h.AdminDashboard)))
	mux.Handle("GET /admin/meals", h.RequireAdmin(http.HandlerFunc(h.AdminMeals)))
	mux.Handle("POST /admin/meals/{meal}", h.RequireAdmin(http.HandlerFunc(h.UpdateMeal)))
	mux.Handle("GET /admin/shopping", h.RequireAdmin(http.HandlerFunc(h.AdminShopping)))
	mux.Handle("POST /admin/shopping", h.RequireAdmin(http.HandlerFunc(h.CreateItem)))
	mux.Handle("POST /admin/shopping/{id}", h.RequireAdmin(http.HandlerFunc(h.UpdateItem)))
	mux.Handle("POST /admin/shopping/{id}/delete", h.RequireAdmin(http.HandlerFunc(h.DeleteItem)))
	mux.Handle("GET /admin/users", h.RequireAdmin(http.HandlerFunc(h.AdminUsers)))
	mux.Handle("GET /admin/export", h.RequireAdmin(http.HandlerFunc(h.ExportData)))
	mux.Handle("GET /admin/logout", h.RequireAdmin(http.HandlerFunc(h.AdminLogout)))

	return mux
}
