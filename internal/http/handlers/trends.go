package handlers

import (
	"net/http"
	"strconv"
	"time"

	"edpulse/internal/sqlinline"
)

const (
	defaultTrendDays = 30
	maxTrendDays     = 365
)

type trendPoint struct {
	Date             string  `json:"date"`
	DailyActiveUsers int64   `json:"daily_active_users"`
	TotalSessions    int64   `json:"total_sessions"`
	AvgSessionTime   float64 `json:"avg_session_time"`
	CompletionRate   float64 `json:"completion_rate"`
	PremiumRate      float64 `json:"premium_rate"`
}

func (a *App) MetricsTrends(w http.ResponseWriter, r *http.Request) {
	days := defaultTrendDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxTrendDays {
			a.error(w, http.StatusBadRequest, "bad_request", "days must be an integer between 1 and 365")
			return
		}
		days = parsed
	}

	rows, err := a.SQL.Query(r.Context(), sqlinline.QDailyTrends, days)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load trends")
		return
	}
	defer rows.Close()

	points := []trendPoint{}
	for rows.Next() {
		var (
			date time.Time
			p    trendPoint
		)
		if err := rows.Scan(&date, &p.DailyActiveUsers, &p.TotalSessions, &p.AvgSessionTime, &p.CompletionRate, &p.PremiumRate); err != nil {
			a.error(w, http.StatusInternalServerError, "internal", "failed to read trend row")
			return
		}
		p.Date = date.Format("2006-01-02")
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to read trends")
		return
	}

	a.json(w, http.StatusOK, map[string]any{"days": days, "points": points})
}
