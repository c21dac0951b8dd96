package handlers

import (
	"net/http"
	"time"

	"edpulse/internal/sqlinline"
)

type cohortCell struct {
	CohortWeek    string  `json:"cohort_week"`
	PeriodNumber  int     `json:"period_number"`
	Users         int64   `json:"users"`
	CohortSize    int64   `json:"cohort_size"`
	RetentionRate float64 `json:"retention_rate"`
}

// MetricsCohorts returns the weekly cohort retention matrix, one cell per
// (signup week, weeks-since-signup) pair, covering the last 12 weeks.
func (a *App) MetricsCohorts(w http.ResponseWriter, r *http.Request) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QCohortRetention)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load cohorts")
		return
	}
	defer rows.Close()

	cells := []cohortCell{}
	for rows.Next() {
		var (
			week time.Time
			c    cohortCell
		)
		if err := rows.Scan(&week, &c.PeriodNumber, &c.Users, &c.CohortSize, &c.RetentionRate); err != nil {
			a.error(w, http.StatusInternalServerError, "internal", "failed to read cohort row")
			return
		}
		c.CohortWeek = week.Format("2006-01-02")
		cells = append(cells, c)
	}
	if err := rows.Err(); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to read cohorts")
		return
	}

	a.json(w, http.StatusOK, map[string]any{"cells": cells})
}
