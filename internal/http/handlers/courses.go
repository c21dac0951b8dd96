package handlers

import (
	"net/http"

	"edpulse/internal/sqlinline"
)

type coursePerformance struct {
	CourseID              string  `json:"course_id"`
	TotalUsers            int64   `json:"total_users"`
	TotalSessions         int64   `json:"total_sessions"`
	AvgSessionDuration    float64 `json:"avg_session_duration"`
	CompletionRate        float64 `json:"completion_rate"`
	PremiumConversionRate float64 `json:"premium_conversion_rate"`
}

// MetricsCourses returns per-course performance over the last 30 days.
func (a *App) MetricsCourses(w http.ResponseWriter, r *http.Request) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QCoursePerformance)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load course metrics")
		return
	}
	defer rows.Close()

	courses := []coursePerformance{}
	for rows.Next() {
		var c coursePerformance
		if err := rows.Scan(&c.CourseID, &c.TotalUsers, &c.TotalSessions, &c.AvgSessionDuration, &c.CompletionRate, &c.PremiumConversionRate); err != nil {
			a.error(w, http.StatusInternalServerError, "internal", "failed to read course row")
			return
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to read course metrics")
		return
	}

	a.json(w, http.StatusOK, map[string]any{"courses": courses})
}
