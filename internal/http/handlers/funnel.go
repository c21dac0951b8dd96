package handlers

import (
	"net/http"

	"edpulse/internal/sqlinline"
)

// MetricsFunnel returns the conversion funnel: all users, users who finished
// a lesson, users with three or more finished lessons, premium users.
func (a *App) MetricsFunnel(w http.ResponseWriter, r *http.Request) {
	row := a.SQL.QueryRow(r.Context(), sqlinline.QConversionFunnel)
	var totalUsers, completedLesson, completedThree, premiumUsers int64
	if err := row.Scan(&totalUsers, &completedLesson, &completedThree, &premiumUsers); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load funnel")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"total_users":         totalUsers,
		"completed_lesson":    completedLesson,
		"completed_3_lessons": completedThree,
		"premium_users":       premiumUsers,
	})
}
