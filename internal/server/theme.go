package server

import (
	"net/http"
)

// themeCookie persists the reader's light/dark choice so server
// renders can emit data-theme and avoid a flash of the wrong theme.
const themeCookie = "theme"

// themeFromRequest reads the theme cookie. Returns "" if absent or
// invalid, letting theme.js decide from localStorage or the OS
// preference.
func themeFromRequest(r *http.Request) string {
	c, err := r.Cookie(themeCookie)
	if err != nil {
		return ""
	}
	if c.Value == "light" || c.Value == "dark" {
		return c.Value
	}
	return ""
}

// handleThemeToggle handles POST /theme. theme.js calls it after a
// toggle so the next server render matches the client.
func (s *Server) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	theme := r.FormValue("theme")
	if theme != "light" && theme != "dark" {
		http.Error(w, "invalid theme", http.StatusBadRequest)
		return
	}

	// Non-HttpOnly so client scripts can read it too.
	http.SetCookie(w, &http.Cookie{
		Name:     themeCookie,
		Value:    theme,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60, // 1 year
		SameSite: http.SameSiteLaxMode,
		HttpOnly: false,
	})
	w.WriteHeader(http.StatusOK)
}
