package handlers

import (
	"net/http"

	"edpulse/internal/sqlinline"
)

type insight struct {
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Detail   string `json:"detail"`
}

// Insights evaluates the rule set the dashboard surfaces next to the charts.
// Thresholds mirror long-standing product benchmarks.
func (a *App) Insights(w http.ResponseWriter, r *http.Request) {
	row := a.SQL.QueryRow(r.Context(), sqlinline.QMetricsSummary)
	var m summaryMetrics
	if err := row.Scan(
		&m.TotalUsers, &m.DAU, &m.WAU, &m.MAU,
		&m.AvgSessionTime, &m.CompletionRate, &m.PremiumRate, &m.Day1Retention,
	); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load metrics for insights")
		return
	}

	a.json(w, http.StatusOK, map[string]any{"insights": buildInsights(m)})
}

func buildInsights(m summaryMetrics) []insight {
	insights := []insight{}

	if m.Day1Retention < 35 {
		insights = append(insights, insight{
			Severity: "critical",
			Title:    "Low day-1 retention",
			Detail:   "Day-1 retention is below the 40-50% benchmark; strengthen onboarding with early micro-lessons.",
		})
	}
	if m.PremiumRate < 25 {
		insights = append(insights, insight{
			Severity: "warning",
			Title:    "Premium conversion has headroom",
			Detail:   "Consider achievement-based premium triggers after five completed lessons.",
		})
	}
	if m.AvgSessionTime > 120 {
		insights = append(insights, insight{
			Severity: "success",
			Title:    "High engagement",
			Detail:   "Long average sessions indicate strong fit; lean on engagement for conversion campaigns.",
		})
	}
	if m.MAU > 800 {
		insights = append(insights, insight{
			Severity: "info",
			Title:    "User base ready to scale",
			Detail:   "MAU supports retention-focused optimization for the strongest return.",
		})
	}
	if m.CompletionRate > 75 {
		insights = append(insights, insight{
			Severity: "success",
			Title:    "Strong content completion",
			Detail:   "Highlight completion achievements during onboarding to reinforce the early experience.",
		})
	}

	return insights
}
