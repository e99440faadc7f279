package app

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/hitting-tracker/internal/config"
	"github.com/riskibarqy/hitting-tracker/internal/platform/logging"
)

const (
	dbDriverName      = "postgres"
	dbConnMaxIdleTime = 5 * time.Minute
	dbConnMaxLifetime = 30 * time.Minute
)

// openDB opens a traced postgres pool and waits for it to answer a ping.
func openDB(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBBinaryParameters)
	dbName := dbNameFromURL(dsn)

	db, err := otelsqlx.Open(dbDriverName, dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbName),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(max(1, cfg.DBMaxOpenConns/2))
	db.SetConnMaxIdleTime(dbConnMaxIdleTime)
	db.SetConnMaxLifetime(dbConnMaxLifetime)

	if err := pingDB(ctx, db, cfg.DBConnectTimeout, logger); err != nil {
		_ = db.Close()
		return nil, err
	}
	otelsql.ReportDBStatsMetrics(db.DB, otelsql.WithDBName(dbName))

	logger.Info("database connected", "db_name", dbName, "max_open_conns", cfg.DBMaxOpenConns)
	return db, nil
}

// pingDB retries with exponential backoff until the database answers or
// timeout elapses.
func pingDB(ctx context.Context, db *sqlx.DB, timeout time.Duration, logger *logging.Logger) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 250 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = timeout

	attempt := 0
	ping := func() error {
		attempt++
		pingCtx, cancel := context.WithTimeout(ctx, bo.MaxInterval)
		defer cancel()
		return db.PingContext(pingCtx)
	}
	notify := func(err error, wait time.Duration) {
		logger.Warn("database ping failed, retrying",
			"attempt", attempt,
			"retry_in", wait,
			"error", err,
		)
	}

	if err := backoff.RetryNotify(ping, backoff.WithContext(bo, ctx), notify); err != nil {
		return fmt.Errorf("ping database after %d attempt(s): %w", attempt, err)
	}
	return nil
}
