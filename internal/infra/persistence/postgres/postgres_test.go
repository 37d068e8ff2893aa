package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"eats/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestNew_RequiresPostgresConfig(t *testing.T) {
	_, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{},
		Logger:    slog.Default(),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestPoolWait(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	_, _, waited := poolWait(prev, prev)
	assert.False(t, waited)

	level, attrs, waited := poolWait(prev, sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 20*time.Millisecond, InUse: 4})
	require.True(t, waited)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Equal(t, "waits", attrs[0].Key)
	assert.Equal(t, int64(2), attrs[0].Value.Int64())
	assert.Equal(t, 10*time.Millisecond, attrs[2].Value.Duration())

	level, _, waited = poolWait(prev, sql.DBStats{WaitCount: 11, WaitDuration: time.Second + dbPoolWarnDurationThreshold})
	require.True(t, waited)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestDescribeStatement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sql       string
		wantOp    string
		wantTable string
	}{
		{sql: `SELECT * FROM "restaurants" ORDER BY position`, wantOp: "select", wantTable: "restaurants"},
		{sql: `INSERT INTO "reports" ("id","status") VALUES ($1,$2)`, wantOp: "insert", wantTable: "reports"},
		{sql: `UPDATE "reports" SET "status"=$1 WHERE id = $2 AND status = $3`, wantOp: "update", wantTable: "reports"},
		{sql: `DELETE FROM special_hours WHERE id = $1`, wantOp: "delete", wantTable: "special_hours"},
		{sql: "", wantOp: "", wantTable: ""},
	}

	for _, tt := range tests {
		t.Run(tt.wantOp+" "+tt.wantTable, func(t *testing.T) {
			t.Parallel()

			op, table := describeStatement(tt.sql)

			assert.Equal(t, tt.wantOp, op)
			assert.Equal(t, tt.wantTable, table)
		})
	}
}

func TestQueryLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := context.Background()
	query := func() (string, int64) { return `SELECT * FROM "restaurants"`, 3 }

	readLines := func() []map[string]any {
		var lines []map[string]any
		for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
			if raw == "" {
				continue
			}
			var line map[string]any
			require.NoError(t, json.Unmarshal([]byte(raw), &line))
			lines = append(lines, line)
		}
		buf.Reset()

		return lines
	}

	quiet := newGormSlogLogger(base, &config.Config{})
	quiet.Trace(ctx, time.Now(), query, nil)
	quiet.Trace(ctx, time.Now(), query, gorm.ErrRecordNotFound)
	assert.Empty(t, readLines())

	quiet.Trace(ctx, time.Now(), query, errors.New("connection reset"))
	lines := readLines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Database query failed", lines[0]["msg"])
	assert.Equal(t, "select", lines[0]["op"])
	assert.Equal(t, "restaurants", lines[0]["table"])
	assert.Equal(t, "database", lines[0]["component"])
	assert.Equal(t, "connection reset", lines[0]["error"])

	quiet.Trace(ctx, time.Now().Add(-time.Second), query, nil)
	lines = readLines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Database slow query", lines[0]["msg"])
	assert.Equal(t, "WARN", lines[0]["level"])

	debug := &config.Config{}
	debug.Env.Debug = true
	verbose := newGormSlogLogger(base, debug)
	verbose.Trace(ctx, time.Now(), query, nil)
	lines = readLines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Database query", lines[0]["msg"])
	assert.InDelta(t, 3, lines[0]["rows"], 0)

	verbose.LogMode(logger.Silent).Trace(ctx, time.Now(), query, errors.New("ignored"))
	assert.Empty(t, readLines())

	// without a logger nothing is written and nothing panics
	newGormSlogLogger(nil, debug).Trace(ctx, time.Now(), query, errors.New("ignored"))
}
