package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"notekeeper/config"
	"notekeeper/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger sends gorm output to slog. Bound parameters are never logged,
// so password hashes and note bodies stay out of the logs.
type queryLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
}

var (
	_ logger.Interface = (*queryLogger)(nil)
	_ gorm.ParamsFilter = (*queryLogger)(nil)
)

// newQueryLogger logs every statement in debug mode and only failures and slow queries otherwise.
func newQueryLogger(base *slog.Logger, cfg *config.Config) *queryLogger {
	level := logger.Warn
	if cfg.Env.Debug {
		level = logger.Info
	}

	return &queryLogger{
		logger: base.With(slog.String("component", "gorm")),
		level:  level,
	}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < threshold {
		return
	}

	l.logger.Log(ctx, level, fmt.Sprintf(msg, args...))
}

// ParamsFilter drops bound values before gorm renders the statement.
func (l *queryLogger) ParamsFilter(_ context.Context, sql string, _ ...any) (string, []any) {
	return sql, nil
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRows func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg := slog.LevelInfo, "Query"

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		level, msg = slog.LevelError, "Query failed"
	case elapsed > slowQueryThreshold && l.level >= logger.Warn:
		level, msg = slog.LevelWarn, "Slow query"
	case l.level >= logger.Info:
	default:
		return
	}

	sql, rows := sqlAndRows()
	attrs := []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if level == slog.LevelError {
		attrs = append(attrs, slog.Any("error", err))
	}

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}
