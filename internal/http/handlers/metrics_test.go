package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"edpulse/internal/infra"
	"edpulse/internal/sqlinline"
)

func testApp(sql infra.SQLExecutor) *App {
	return NewApp(sql, infra.NewLogger("test"))
}

func TestMetricsSummary(t *testing.T) {
	sql := &fakeSQL{rows: map[string][][]any{
		sqlinline.QMetricsSummary: {
			{int64(1200), int64(140), int64(480), int64(900), 27.5, 63.2, 21.4, 38.9},
		},
	}}
	app := testApp(sql)

	rr := httptest.NewRecorder()
	app.MetricsSummary(rr, httptest.NewRequest(http.MethodGet, "/v1/metrics/summary", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got summaryMetrics
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.TotalUsers != 1200 || got.MAU != 900 {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if got.Day1Retention != 38.9 {
		t.Fatalf("Day1Retention = %v, want 38.9", got.Day1Retention)
	}
}

func TestMetricsSummaryScanFailure(t *testing.T) {
	app := testApp(&fakeSQL{rows: map[string][][]any{}})

	rr := httptest.NewRecorder()
	app.MetricsSummary(rr, httptest.NewRequest(http.MethodGet, "/v1/metrics/summary", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
}

func TestMetricsFunnel(t *testing.T) {
	sql := &fakeSQL{rows: map[string][][]any{
		sqlinline.QConversionFunnel: {
			{int64(1000), int64(640), int64(320), int64(180)},
		},
	}}
	app := testApp(sql)

	rr := httptest.NewRecorder()
	app.MetricsFunnel(rr, httptest.NewRequest(http.MethodGet, "/v1/metrics/funnel", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got map[string]int64
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got["total_users"] != 1000 || got["premium_users"] != 180 {
		t.Fatalf("unexpected payload: %v", got)
	}
}

func TestMetricsTrendsRejectsBadDays(t *testing.T) {
	tests := []string{"abc", "0", "-3", "9999"}
	app := testApp(&fakeSQL{rows: map[string][][]any{}})

	for _, days := range tests {
		t.Run(days, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/v1/metrics/trends?days="+days, nil)
			app.MetricsTrends(rr, req)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("days=%s: status = %d, want 400", days, rr.Code)
			}
		})
	}
}

func TestMetricsTrends(t *testing.T) {
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	sql := &fakeSQL{rows: map[string][][]any{
		sqlinline.QDailyTrends: {
			{day, int64(120), int64(310), 26.1, 58.0, 18.2},
			{day.AddDate(0, 0, 1), int64(131), int64(340), 27.0, 59.5, 18.9},
		},
	}}
	app := testApp(sql)

	rr := httptest.NewRecorder()
	app.MetricsTrends(rr, httptest.NewRequest(http.MethodGet, "/v1/metrics/trends?days=7", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got struct {
		Days   int          `json:"days"`
		Points []trendPoint `json:"points"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Days != 7 || len(got.Points) != 2 {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if got.Points[0].Date != "2024-02-01" {
		t.Fatalf("Date = %q, want 2024-02-01", got.Points[0].Date)
	}
}

func TestMetricsSegments(t *testing.T) {
	sql := &fakeSQL{rows: map[string][][]any{
		sqlinline.QSegmentation: {
			{"mobile", "free", int64(420), 21.3, 55.1, int64(900)},
			{"desktop", "premium", int64(150), 44.7, 78.9, int64(380)},
		},
	}}
	app := testApp(sql)

	rr := httptest.NewRecorder()
	app.MetricsSegments(rr, httptest.NewRequest(http.MethodGet, "/v1/metrics/segments", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got struct {
		Segments []segmentRow `json:"segments"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(got.Segments))
	}
	if got.Segments[1].DeviceType != "desktop" || got.Segments[1].SubscriptionType != "premium" {
		t.Fatalf("unexpected second segment: %+v", got.Segments[1])
	}
}

func TestHealth(t *testing.T) {
	app := testApp(&fakeSQL{})
	rr := httptest.NewRecorder()
	app.Health(rr, httptest.NewRequest(http.MethodGet, "/v1/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
}
