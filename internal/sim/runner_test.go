package sim

import (
	"context"
	"math"
	"reflect"
	"testing"
	"time"
)

func runnerConfig(users, days, workers int) Config {
	return Config{
		Users:   users,
		Days:    days,
		Start:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Seed:    42,
		Workers: workers,
	}
}

func TestNewRunnerValidation(t *testing.T) {
	catalog := DefaultCatalog()
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "zero users", cfg: runnerConfig(0, 30, 1)},
		{name: "negative users", cfg: runnerConfig(-5, 30, 1)},
		{name: "zero days", cfg: runnerConfig(10, 0, 1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewRunner(catalog, tc.cfg); err == nil {
				t.Fatal("NewRunner accepted invalid config")
			}
		})
	}

	if _, err := NewRunner(nil, runnerConfig(10, 30, 1)); err == nil {
		t.Fatal("NewRunner accepted nil catalog")
	}
}

func TestRunDeterministicAcrossWorkerCounts(t *testing.T) {
	catalog := DefaultCatalog()

	run := func(workers int) []string {
		r, err := NewRunner(catalog, runnerConfig(50, 60, workers))
		if err != nil {
			t.Fatalf("NewRunner returned error: %v", err)
		}
		events, report, err := r.Run(context.Background())
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
		if len(report.Failures) != 0 {
			t.Fatalf("unexpected failures: %v", report.Failures)
		}
		out := make([]string, len(events))
		for i, e := range events {
			out[i] = e.Date.Format("2006-01-02") + "|" + e.UserID + "|" + e.CourseID + "|" +
				string(e.DeviceType) + "|" + string(e.SubscriptionType)
		}
		return out
	}

	sequential := run(1)
	parallel := run(8)
	if !reflect.DeepEqual(sequential, parallel) {
		t.Fatal("same seed produced different streams across worker counts")
	}
	if len(sequential) == 0 {
		t.Fatal("50 users over 60 days produced no events")
	}
}

func TestRunUserMajorOrder(t *testing.T) {
	r, err := NewRunner(DefaultCatalog(), runnerConfig(20, 45, 4))
	if err != nil {
		t.Fatalf("NewRunner returned error: %v", err)
	}
	events, _, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	lastUser := ""
	seen := map[string]bool{}
	for _, e := range events {
		if e.UserID != lastUser {
			if seen[e.UserID] {
				t.Fatalf("user %s events are not contiguous", e.UserID)
			}
			seen[e.UserID] = true
			lastUser = e.UserID
		}
	}
}

func TestRunReportsPerUserFailuresWithoutAborting(t *testing.T) {
	// NaN weights pass catalog construction (they are not negative) but
	// make every categorical draw fail, so each user fails independently.
	catalog, err := NewCatalog(
		[]Course{{ID: "C101", Weight: math.NaN()}, {ID: "C102", Weight: 1}},
		[]Device{{Kind: "mobile", Probability: 1, MeanSessionMinutes: 25, BaseCompletionRate: 0.65}},
	)
	if err != nil {
		t.Fatalf("NewCatalog returned error: %v", err)
	}

	r, err := NewRunner(catalog, runnerConfig(10, 60, 2))
	if err != nil {
		t.Fatalf("NewRunner returned error: %v", err)
	}
	events, report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(report.Failures) == 0 {
		t.Fatal("expected per-user failures, got none")
	}
	if report.UsersSimulated != 10 {
		t.Fatalf("UsersSimulated = %d, want 10; one user's failure must not stop the batch", report.UsersSimulated)
	}
	for _, f := range report.Failures {
		if f.Err == nil || f.UserID == "" {
			t.Fatalf("malformed failure record: %+v", f)
		}
		// A failed user contributes no events at all.
		for _, e := range events {
			if e.UserID == f.UserID {
				t.Fatalf("failed user %s has events in the stream", f.UserID)
			}
		}
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	r, err := NewRunner(DefaultCatalog(), runnerConfig(1000, 90, 1))
	if err != nil {
		t.Fatalf("NewRunner returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, report, err := r.Run(ctx)
	if err == nil {
		t.Fatal("Run ignored a cancelled context")
	}
	if report.UsersSimulated >= 1000 {
		t.Fatalf("cancelled run still simulated all %d users", report.UsersSimulated)
	}
}

func TestRunPicksSeedWhenUnset(t *testing.T) {
	cfg := runnerConfig(1, 30, 1)
	cfg.Seed = 0
	r, err := NewRunner(DefaultCatalog(), cfg)
	if err != nil {
		t.Fatalf("NewRunner returned error: %v", err)
	}
	if r.Seed() == 0 {
		t.Fatal("runner left the master seed unset")
	}
}
