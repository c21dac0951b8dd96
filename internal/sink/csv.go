package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"edpulse/internal/domain"
)

// csvHeader matches the activity table column order, so an exported file can
// be COPY-loaded straight back into Postgres.
var csvHeader = []string{
	"date", "user_id", "course_id", "lesson_completed",
	"time_spent", "device_type", "subscription_type",
}

// CSV exports the event stream to a flat tabular file, the backup and
// inspection artifact written independently of the bulk sink.
type CSV struct {
	w io.Writer
}

// NewCSV writes to the given writer.
func NewCSV(w io.Writer) *CSV {
	return &CSV{w: w}
}

// WriteFile exports events to path, creating or truncating the file.
func WriteFile(ctx context.Context, path string, events []domain.ActivityEvent) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w: %w", path, err, domain.ErrPersistence)
	}
	defer f.Close()

	if err := NewCSV(f).Write(ctx, events); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w: %w", path, err, domain.ErrPersistence)
	}
	return nil
}

// Write streams the header and one row per event.
func (s *CSV) Write(ctx context.Context, events []domain.ActivityEvent) error {
	cw := csv.NewWriter(s.w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w: %w", err, domain.ErrPersistence)
	}
	for _, e := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		row := []string{
			e.Date.Format("2006-01-02"),
			e.UserID,
			e.CourseID,
			strconv.FormatBool(e.LessonCompleted),
			strconv.Itoa(e.TimeSpent),
			string(e.DeviceType),
			string(e.SubscriptionType),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w: %w", err, domain.ErrPersistence)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w: %w", err, domain.ErrPersistence)
	}
	return nil
}

var _ EventSink = (*CSV)(nil)
