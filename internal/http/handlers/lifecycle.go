package handlers

import (
	"net/http"

	"edpulse/internal/sqlinline"
)

type lifecycleStage struct {
	Stage          string  `json:"stage"`
	Users          int64   `json:"users"`
	AvgSessions    float64 `json:"avg_sessions"`
	AvgDuration    float64 `json:"avg_duration"`
	AvgLessons     float64 `json:"avg_lessons"`
	ConversionRate float64 `json:"conversion_rate"`
}

// MetricsLifecycle segments users into lifecycle stages (One-time, New,
// Active, At Risk, Churned) with per-stage engagement aggregates.
func (a *App) MetricsLifecycle(w http.ResponseWriter, r *http.Request) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QLifecycleStages)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load lifecycle stages")
		return
	}
	defer rows.Close()

	stages := []lifecycleStage{}
	for rows.Next() {
		var s lifecycleStage
		if err := rows.Scan(&s.Stage, &s.Users, &s.AvgSessions, &s.AvgDuration, &s.AvgLessons, &s.ConversionRate); err != nil {
			a.error(w, http.StatusInternalServerError, "internal", "failed to read lifecycle row")
			return
		}
		stages = append(stages, s)
	}
	if err := rows.Err(); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to read lifecycle stages")
		return
	}

	a.json(w, http.StatusOK, map[string]any{"stages": stages})
}
