package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"wordtrainer/config"
	deliverycontext "wordtrainer/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlAndRows() (string, int64) {
	return `SELECT * FROM "accounts"`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		begin    time.Time
		debug    bool
		contains string
		silent   bool
	}{
		{name: "query error", err: errors.New("boom"), begin: time.Now(), contains: "GORM query failed"},
		{name: "record not found is ignored", err: gorm.ErrRecordNotFound, begin: time.Now(), silent: true},
		{name: "unique violation is ignored", err: &pgconn.PgError{Code: pgUniqueViolation}, begin: time.Now(), silent: true},
		{name: "slow query", begin: time.Now().Add(-time.Second), contains: "GORM slow query"},
		{name: "fast query below info level", begin: time.Now(), silent: true},
		{name: "fast query in debug mode", begin: time.Now(), debug: true, contains: "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			l := newGormSlogLogger(newBufferLogger(&buf), cfg)

			l.Trace(context.Background(), tt.begin, sqlAndRows, tt.err)

			if tt.silent {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), tt.contains)
			}
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&base), &config.Config{})

	reqLogger := newBufferLogger(&scoped).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlAndRows, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-42")
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	silent := l.LogMode(logger.Silent)
	silent.Error(context.Background(), "ignored %d", 1)
	silent.Trace(context.Background(), time.Now(), sqlAndRows, errors.New("boom"))
	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "pool %s", "exhausted")
	assert.Contains(t, buf.String(), "pool exhausted")
}

func TestGormSlogLogger_DropsBoundValues(t *testing.T) {
	l := newGormSlogLogger(newBufferLogger(&bytes.Buffer{}), &config.Config{})

	filter, ok := l.(gorm.ParamsFilter)
	assert.True(t, ok)

	sql, params := filter.ParamsFilter(context.Background(), `INSERT INTO "accounts" ("email","password_hash") VALUES ($1,$2)`,
		"a@x.com", "$2a$12$hash")

	assert.Equal(t, `INSERT INTO "accounts" ("email","password_hash") VALUES ($1,$2)`, sql)
	assert.Empty(t, params)
}
