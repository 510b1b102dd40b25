package handlers

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"family-dashboard/internal/auth"
	"family-dashboard/internal/storage"
)

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	db          *storage.DB
	templateDir string
	adminHash   string
}

// NewHandlers creates a new Handlers instance. The admin password is kept
// only as its (deliberately weak) hash.
func NewHandlers(db *storage.DB, templateDir, adminPassword string) *Handlers {
	return &Handlers{
		db:          db,
		templateDir: templateDir,
		adminHash:   auth.HashPassword(adminPassword),
	}
}

// RequireUser wraps handlers that need a logged-in family member. Every
// request through it counts as activity and refreshes the timestamp; an
// expired or missing session is cleared and redirected to the login page.
func (h *Handlers) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found, err := h.db.CurrentUser()
		if err != nil {
			log.Printf("RequireUser: %v", err)
		}
		if !found || !h.db.SessionValid() {
			if err := h.db.Logout(); err != nil {
				log.Printf("RequireUser logout: %v", err)
			}
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		if err := h.db.Touch(); err != nil {
			log.Printf("RequireUser touch: %v", err)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin wraps handlers behind the admin session.
func (h *Handlers) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.db.AdminSessionValid() {
			if err := h.db.AdminLogout(); err != nil {
				log.Printf("RequireAdmin logout: %v", err)
			}
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		if err := h.db.Touch(); err != nil {
			log.Printf("RequireAdmin touch: %v", err)
		}
		next.ServeHTTP(w, r)
	})
}

// LoginViewModel holds data for the login page.
type LoginViewModel struct {
	Error       string
	AdminError  string
	FieldErrors map[string]string
	FirstName   string
	LastName    string
	Remembered  bool
	Theme       string
}

// LoginForm renders the login page, prefilled from "remember me" if a name
// pair was saved.
func (h *Handlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	// An already valid session skips the form.
	if _, found, _ := h.db.CurrentUser(); found && h.db.SessionValid() {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	vm := LoginViewModel{Theme: h.db.Theme()}
	if remembered, ok := h.db.RememberedUser(); ok {
		vm.FirstName = remembered.FirstName
		vm.LastName = remembered.LastName
		vm.Remembered = true
	}
	h.render(w, r, "login.html", vm)
}

// Login handles the login form submission.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, "login.html", LoginViewModel{Error: "Invalid form submission", Theme: h.db.Theme()})
		return
	}

	firstName := strings.TrimSpace(r.FormValue("first_name"))
	lastName := strings.TrimSpace(r.FormValue("last_name"))
	remember := r.FormValue("remember_me") == "on"

	_, err := h.db.Login(firstName, lastName, remember)
	if err != nil {
		var verr *auth.ValidationError
		if errors.As(err, &verr) {
			h.render(w, r, "login.html", LoginViewModel{
				FieldErrors: verr.Fields,
				FirstName:   firstName,
				LastName:    lastName,
				Remembered:  remember,
				Theme:       h.db.Theme(),
			})
			return
		}
		log.Printf("Login: %v", err)
		h.render(w, r, "login.html", LoginViewModel{Error: "Login failed. Please try again.", Theme: h.db.Theme()})
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// AdminLogin handles the admin password form.
func (h *Handlers) AdminLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, "login.html", LoginViewModel{AdminError: "Invalid form submission", Theme: h.db.Theme()})
		return
	}

	if _, err := h.db.AdminLogin(r.FormValue("password"), h.adminHash); err != nil {
		var aerr *auth.AuthError
		if errors.As(err, &aerr) {
			h.render(w, r, "login.html", LoginViewModel{AdminError: aerr.Reason, Theme: h.db.Theme()})
			return
		}
		log.Printf("AdminLogin: %v", err)
		h.render(w, r, "login.html", LoginViewModel{AdminError: "Login failed. Please try again.", Theme: h.db.Theme()})
		return
	}

	http.Redirect(w, r, "/admin", http.StatusFound)
}

// Logout clears the user session.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Logout(); err != nil {
		log.Printf("Logout: %v", err)
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

// AdminLogout clears the admin session.
func (h *Handlers) AdminLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.db.AdminLogout(); err != nil {
		log.Printf("AdminLogout: %v", err)
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

// ToggleTheme flips the stored theme and sends the caller back where it
// came from.
func (h *Handlers) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	if _, err := h.db.ToggleTheme(); err != nil {
		log.Printf("ToggleTheme: %v", err)
	}

	back := r.Referer()
	if back == "" {
		back = "/dashboard"
	}
	http.Redirect(w, r, back, http.StatusFound)
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, viewName string, data any) {
	tmpl, err := template.ParseFiles(filepath.Join(h.templateDir, "base.html"), filepath.Join(h.templateDir, viewName))
	if err != nil {
		log.Printf("Template error: %v", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}
	target := "base.html"
	if r.Header.Get("HX-Request") == "true" {
		target = "content"
	}
	if err := tmpl.ExecuteTemplate(w, target, data); err != nil {
		log.Printf("Template execution error: %v", err)
	}
}
