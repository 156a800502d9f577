package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
)

// slogTraceLogger adapts a slog.Logger to the pgx tracelog interface.
type slogTraceLogger struct {
	logger *slog.Logger
}

func (l *slogTraceLogger) Log(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	attrs := make([]any, 0, len(data)*2)
	for k, v := range data {
		attrs = append(attrs, slog.Any(k, v))
	}
	switch level {
	case tracelog.LogLevelTrace, tracelog.LogLevelDebug:
		l.logger.DebugContext(ctx, msg, attrs...)
	case tracelog.LogLevelInfo:
		l.logger.InfoContext(ctx, msg, attrs...)
	case tracelog.LogLevelWarn:
		l.logger.WarnContext(ctx, msg, attrs...)
	default:
		l.logger.ErrorContext(ctx, msg, attrs...)
	}
}

// NewPgxPool creates a new PostgreSQL connection pool. When echo is true every
// executed statement is logged through the given logger.
func NewPgxPool(ctx context.Context, databaseURL string, echo bool, logger *slog.Logger) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}

	if echo {
		config.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   &slogTraceLogger{logger: logger},
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// ClosePgxPool closes the PostgreSQL connection pool.
func ClosePgxPool(pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
	}
}
