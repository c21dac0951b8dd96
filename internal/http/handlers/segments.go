package handlers

import (
	"net/http"

	"edpulse/internal/sqlinline"
)

type segmentRow struct {
	DeviceType       string  `json:"device_type"`
	SubscriptionType string  `json:"subscription_type"`
	Users            int64   `json:"users"`
	AvgSessionTime   float64 `json:"avg_session_time"`
	CompletionRate   float64 `json:"completion_rate"`
	TotalSessions    int64   `json:"total_sessions"`
}

// MetricsSegments returns device x subscription segmentation over the last
// seven days.
func (a *App) MetricsSegments(w http.ResponseWriter, r *http.Request) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QSegmentation)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load segments")
		return
	}
	defer rows.Close()

	segments := []segmentRow{}
	for rows.Next() {
		var s segmentRow
		if err := rows.Scan(&s.DeviceType, &s.SubscriptionType, &s.Users, &s.AvgSessionTime, &s.CompletionRate, &s.TotalSessions); err != nil {
			a.error(w, http.StatusInternalServerError, "internal", "failed to read segment row")
			return
		}
		segments = append(segments, s)
	}
	if err := rows.Err(); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to read segments")
		return
	}

	a.json(w, http.StatusOK, map[string]any{"segments": segments})
}
