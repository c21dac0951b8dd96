package sink

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"edpulse/internal/domain"
	"edpulse/internal/infra"
	"edpulse/internal/sqlinline"
)

// Postgres bulk-writes activity events with pgx CopyFrom.
type Postgres struct {
	pool   *pgxpool.Pool
	logger infra.Logger
}

// NewPostgres constructs the sink over an existing pool.
func NewPostgres(pool *pgxpool.Pool, logger infra.Logger) *Postgres {
	return &Postgres{pool: pool, logger: logger}
}

// EnsureSchema creates the activity table and its indexes if missing.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	runner := infra.NewSQLRunner(s.pool, s.logger)
	for _, q := range []string{
		sqlinline.QCreateActivityTable,
		sqlinline.QCreateActivityDateIndex,
		sqlinline.QCreateActivityUserIndex,
	} {
		if _, err := runner.Exec(ctx, q); err != nil {
			return fmt.Errorf("ensure activity schema: %w: %w", err, domain.ErrPersistence)
		}
	}
	return nil
}

// Truncate clears the activity table ahead of a fresh load.
func (s *Postgres) Truncate(ctx context.Context) error {
	runner := infra.NewSQLRunner(s.pool, s.logger)
	if _, err := runner.Exec(ctx, sqlinline.QTruncateActivity); err != nil {
		return fmt.Errorf("truncate activity: %w: %w", err, domain.ErrPersistence)
	}
	return nil
}

var activityColumns = []string{
	"date", "user_id", "course_id", "lesson_completed",
	"time_spent", "device_type", "subscription_type",
}

// Write copies the whole stream into the activity table in one round trip.
func (s *Postgres) Write(ctx context.Context, events []domain.ActivityEvent) error {
	if len(events) == 0 {
		return nil
	}

	copied, err := s.pool.CopyFrom(
		ctx,
		pgx.Identifier{"activity"},
		activityColumns,
		pgx.CopyFromSlice(len(events), func(i int) ([]any, error) {
			e := events[i]
			return []any{
				e.Date,
				e.UserID,
				e.CourseID,
				e.LessonCompleted,
				e.TimeSpent,
				string(e.DeviceType),
				string(e.SubscriptionType),
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy activity events: %w: %w", err, domain.ErrPersistence)
	}
	if copied != int64(len(events)) {
		return fmt.Errorf("copied %d of %d events: %w", copied, len(events), domain.ErrPersistence)
	}

	s.logger.Info().Int64("rows", copied).Msg("activity events persisted")
	return nil
}

var _ EventSink = (*Postgres)(nil)
