package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWaitReport(t *testing.T) {
	tests := []struct {
		name      string
		prev      sql.DBStats
		cur       sql.DBStats
		wantOK    bool
		wantLevel slog.Level
	}{
		{
			name:   "no new waits",
			prev:   sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			cur:    sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			wantOK: false,
		},
		{
			name:      "short waits",
			prev:      sql.DBStats{WaitCount: 1},
			cur:       sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond},
			wantOK:    true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "long waits",
			prev:      sql.DBStats{},
			cur:       sql.DBStats{WaitCount: 2, WaitDuration: dbPoolWarnDurationThreshold},
			wantOK:    true,
			wantLevel: slog.LevelWarn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, attrs, ok := poolWaitReport(tt.prev, tt.cur)

			assert.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Nil(t, attrs)

				return
			}
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, "waits", attrs[0].Key)
			assert.Equal(t, tt.cur.WaitCount-tt.prev.WaitCount, attrs[0].Value.Int64())
		})
	}
}
