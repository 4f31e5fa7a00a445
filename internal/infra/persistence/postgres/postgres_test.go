package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportPoolWait(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		prev, cur sql.DBStats
		wantLevel string
		wantAvg   time.Duration
	}{
		{
			name: "no new waits",
			prev: sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			cur:  sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
		},
		{
			name:      "short waits are debug",
			prev:      sql.DBStats{WaitCount: 1},
			cur:       sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond},
			wantLevel: "DEBUG",
			wantAvg:   5 * time.Millisecond,
		},
		{
			name:      "long waits are warnings",
			cur:       sql.DBStats{WaitCount: 2, WaitDuration: 200 * time.Millisecond, InUse: 10},
			wantLevel: "WARN",
			wantAvg:   100 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			reportPoolWait(ctx, logger, tt.prev, tt.cur)

			if tt.wantLevel == "" {
				assert.Zero(t, buf.Len())

				return
			}

			var record map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
			assert.Equal(t, tt.wantLevel, record["level"])
			assert.InDelta(t, float64(tt.wantAvg), record["avg_wait"], 0)
		})
	}
}

func TestMonitorPool_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		monitorPool(ctx, slog.New(slog.DiscardHandler), func() sql.DBStats { return sql.DBStats{} }, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}
