package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/SMC-CareSlotService/pkg/metrics"
)

// DBExecutor is the subset of *sql.DB used by repositories.
// Both *sql.DB and *DB satisfy it.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PingContext(ctx context.Context) error
}

const defaultCollectInterval = 15 * time.Second

// DB wraps *sql.DB and records statement latency.
type DB struct {
	*sql.DB
	metrics *metrics.Metrics
	name    string
}

// Wrap returns an instrumented DB and starts a pool stats collector that
// runs until stop is closed.
func Wrap(db *sql.DB, m *metrics.Metrics, name string, interval time.Duration, stop <-chan struct{}) *DB {
	w := &DB{DB: db, metrics: m, name: name}
	go w.collectPoolStats(interval, stop)
	return w
}

// WrapWithDefault is Wrap with the default collection interval.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, name string, stop <-chan struct{}) *DB {
	return Wrap(db, m, name, defaultCollectInterval, stop)
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	defer d.observe("exec", time.Now())
	return d.DB.ExecContext(ctx, query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	defer d.observe("query", time.Now())
	return d.DB.QueryContext(ctx, query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	defer d.observe("query_row", time.Now())
	return d.DB.QueryRowContext(ctx, query, args...)
}

func (d *DB) observe(kind string, start time.Time) {
	d.metrics.DBQueryDuration.WithLabelValues(d.name, kind).Observe(time.Since(start).Seconds())
}

func (d *DB) collectPoolStats(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.recordPoolStats()
	for {
		select {
		case <-ticker.C:
			d.recordPoolStats()
		case <-stop:
			return
		}
	}
}

func (d *DB) recordPoolStats() {
	stats := d.DB.Stats()
	d.metrics.DBOpenConnections.WithLabelValues(d.name).Set(float64(stats.OpenConnections))
	d.metrics.DBInUseConnections.WithLabelValues(d.name).Set(float64(stats.InUse))
	d.metrics.DBIdleConnections.WithLabelValues(d.name).Set(float64(stats.Idle))
	d.metrics.DBWaitCount.WithLabelValues(d.name).Set(float64(stats.WaitCount))
}
