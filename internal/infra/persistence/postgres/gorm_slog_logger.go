package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"eats/config"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	slowQueryThreshold = 200 * time.Millisecond
	// Seed batches and menu saves carry whole menus as JSON.
	maxLoggedSQLLength = 2048
)

var statementTable = regexp.MustCompile(`(?i)\b(?:from|into|update)\s+"?([a-z_][a-z0-9_]*)"?`)

// queryLogger routes gorm output to slog. Every query line names the
// statement kind and the table it touched so catalog reads, seed batches and
// moderation writes can be told apart without reading the SQL.
type queryLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}
	if baseLogger == nil {
		level = logger.Silent
	} else {
		baseLogger = baseLogger.With(slog.String("component", "database"))
	}

	return &queryLogger{logger: baseLogger, level: level}
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

func (l *queryLogger) message(ctx context.Context, needs logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < needs || l.logger == nil {
		return
	}

	l.logger.LogAttrs(ctx, level, "Database message", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent || l.logger == nil {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
		l.logger.LogAttrs(ctx, slog.LevelError, "Database query failed", attrs...)
	case elapsed > slowQueryThreshold && l.level >= logger.Warn:
		attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.Duration("slowThreshold", slowQueryThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Database slow query", attrs...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelInfo, "Database query", queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()
	op, table := describeStatement(sql)
	if len(sql) > maxLoggedSQLLength {
		sql = sql[:maxLoggedSQLLength] + "..."
	}

	return []slog.Attr{
		slog.String("op", op),
		slog.String("table", table),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
		slog.String("sql", sql),
	}
}

// describeStatement returns the lower-case statement keyword and the first
// table the statement reads from or writes to.
func describeStatement(sql string) (op, table string) {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "", ""
	}
	op = strings.ToLower(fields[0])

	if match := statementTable.FindStringSubmatch(sql); match != nil {
		table = strings.ToLower(match[1])
	}

	return op, table
}
