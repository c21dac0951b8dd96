package handlers

import (
	"net/http"

	"edpulse/internal/sqlinline"
)

// summaryMetrics is the key-metrics row the dashboard header renders.
type summaryMetrics struct {
	TotalUsers     int64   `json:"total_users"`
	DAU            int64   `json:"dau"`
	WAU            int64   `json:"wau"`
	MAU            int64   `json:"mau"`
	AvgSessionTime float64 `json:"avg_session_time"`
	CompletionRate float64 `json:"completion_rate"`
	PremiumRate    float64 `json:"premium_rate"`
	Day1Retention  float64 `json:"day1_retention"`
}

func (a *App) MetricsSummary(w http.ResponseWriter, r *http.Request) {
	row := a.SQL.QueryRow(r.Context(), sqlinline.QMetricsSummary)
	var m summaryMetrics
	if err := row.Scan(
		&m.TotalUsers, &m.DAU, &m.WAU, &m.MAU,
		&m.AvgSessionTime, &m.CompletionRate, &m.PremiumRate, &m.Day1Retention,
	); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load metrics summary")
		return
	}
	a.json(w, http.StatusOK, m)
}
