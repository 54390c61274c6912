package database

import (
	"context"
	"database/sql"
	"time"
)

// PoolStats is a snapshot of connection pool pressure. Wait counts climbing
// alongside ingest latency usually means MaxOpenConns is too low for the
// batch volume.
type PoolStats struct {
	Open         int   `json:"open"`
	InUse        int   `json:"in_use"`
	Idle         int   `json:"idle"`
	WaitCount    int64 `json:"wait_count"`
	WaitDuration int64 `json:"wait_duration_ms"`
	MaxOpen      int   `json:"max_open"`
}

// HealthStatus is the database fragment of the /health payload.
type HealthStatus struct {
	Status       string    `json:"status"`
	ResponseTime int64     `json:"response_time_ms"`
	Pool         PoolStats `json:"pool"`
}

// Health pings the database and reports liveness with pool statistics. On
// ping failure the error is returned alongside an unhealthy status so the
// handler can both degrade and report.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	stats := db.Stats()
	return &HealthStatus{
		Status:       "healthy",
		ResponseTime: time.Since(start).Milliseconds(),
		Pool: PoolStats{
			Open:         stats.OpenConnections,
			InUse:        stats.InUse,
			Idle:         stats.Idle,
			WaitCount:    stats.WaitCount,
			WaitDuration: stats.WaitDuration.Milliseconds(),
			MaxOpen:      stats.MaxOpenConnections,
		},
	}, nil
}
