package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"edpulse/internal/infra"
	"edpulse/internal/sim"
	"edpulse/internal/sink"
)

func main() {
	var (
		usersFlag   int
		daysFlag    int
		startFlag   string
		seedFlag    int64
		workersFlag int
		csvFlag     string
		initFlag    bool
		truncFlag   bool
		dryRunFlag  bool
	)

	flag.IntVar(&usersFlag, "users", 1000, "population size to simulate")
	flag.IntVar(&daysFlag, "days", 90, "horizon length in days (values above 30 keep signup dates spread out)")
	flag.StringVar(&startFlag, "start", "", "horizon start date YYYY-MM-DD (default: today minus -days)")
	flag.Int64Var(&seedFlag, "seed", 0, "master RNG seed; 0 derives one from the clock")
	flag.IntVar(&workersFlag, "workers", 4, "concurrent user simulations")
	flag.StringVar(&csvFlag, "csv", "", "also export the stream to this CSV file")
	flag.BoolVar(&initFlag, "init", false, "create the activity table and indexes before inserting")
	flag.BoolVar(&truncFlag, "truncate", false, "truncate the activity table before inserting")
	flag.BoolVar(&dryRunFlag, "dry-run", false, "simulate without writing to the database")
	flag.Parse()

	_ = godotenv.Load()

	if usersFlag <= 0 {
		exitWithError(errors.New("-users must be positive"))
	}
	if daysFlag <= 0 {
		exitWithError(errors.New("-days must be positive"))
	}

	start := time.Now().UTC().AddDate(0, 0, -daysFlag)
	if startFlag != "" {
		parsed, err := time.Parse("2006-01-02", startFlag)
		if err != nil {
			exitWithError(fmt.Errorf("invalid -start: %w", err))
		}
		start = parsed
	}

	logger := infra.NewLogger(getAppEnv()).With().Str("cmd", "seed").Logger()

	runner, err := sim.NewRunner(sim.DefaultCatalog(), sim.Config{
		Users:   usersFlag,
		Days:    daysFlag,
		Start:   start,
		Seed:    seedFlag,
		Workers: workersFlag,
	})
	if err != nil {
		exitWithError(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runID := uuid.NewString()
	logger.Info().
		Str("run_id", runID).
		Int("users", usersFlag).
		Int("days", daysFlag).
		Int64("seed", runner.Seed()).
		Msg("generation started")

	events, report, err := runner.Run(ctx)
	if err != nil {
		exitWithError(fmt.Errorf("generation interrupted: %w", err))
	}
	for _, f := range report.Failures {
		logger.Warn().Str("user_id", f.UserID).Err(f.Err).Msg("user simulation failed")
	}
	logger.Info().
		Str("run_id", runID).
		Int("users_simulated", report.UsersSimulated).
		Int("events", report.Events).
		Int("failures", len(report.Failures)).
		Dur("elapsed", report.Elapsed).
		Msg("generation finished")

	if csvFlag != "" {
		if err := sink.WriteFile(ctx, csvFlag, events); err != nil {
			exitWithError(err)
		}
		logger.Info().Str("path", csvFlag).Msg("csv export written")
	}

	if dryRunFlag {
		return
	}

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required unless -dry-run is set"))
	}

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer pool.Close()

	pgSink := sink.NewPostgres(pool, logger)
	if initFlag {
		if err := pgSink.EnsureSchema(ctx); err != nil {
			exitWithError(err)
		}
	}
	if truncFlag {
		if err := pgSink.Truncate(ctx); err != nil {
			exitWithError(err)
		}
	}
	if err := pgSink.Write(ctx, events); err != nil {
		exitWithError(err)
	}
}

func getAppEnv() string {
	if v := os.Getenv("APP_ENV"); v != "" {
		return v
	}
	return "development"
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
