package bitflag

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    migrationHistogram prometheus.Histogram
//	    growthCounter      prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordGrowth(words int) {
//	    p.growthCounter.Add(float64(words))
//	}
type MetricsCollector interface {
	// RecordMigration is called after each SetWidth call.
	// fields is the number of field slots reflowed, err is nil if successful.
	RecordMigration(from, to, fields int, duration time.Duration, err error)

	// RecordGrowth is called whenever lazy growth appends words.
	RecordGrowth(words int)

	// RecordClearAll is called after ClearAll with the number of words released.
	RecordClearAll(words int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordMigration(int, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordGrowth(int)                                    {}
func (NoopMetricsCollector) RecordClearAll(int)                                  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	MigrationCount      atomic.Int64
	MigrationErrors     atomic.Int64
	MigrationFields     atomic.Int64
	MigrationTotalNanos atomic.Int64
	GrowthCount         atomic.Int64
	GrowthWords         atomic.Int64
	ClearAllCount       atomic.Int64
	ClearAllWords       atomic.Int64
}

// RecordMigration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMigration(from, to, fields int, duration time.Duration, err error) {
	b.MigrationCount.Add(1)
	if err != nil {
		b.MigrationErrors.Add(1)
		return
	}
	b.MigrationFields.Add(int64(fields))
	b.MigrationTotalNanos.Add(duration.Nanoseconds())
}

// RecordGrowth implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrowth(words int) {
	b.GrowthCount.Add(1)
	b.GrowthWords.Add(int64(words))
}

// RecordClearAll implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClearAll(words int) {
	b.ClearAllCount.Add(1)
	b.ClearAllWords.Add(int64(words))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		MigrationCount:    b.MigrationCount.Load(),
		MigrationErrors:   b.MigrationErrors.Load(),
		MigrationFields:   b.MigrationFields.Load(),
		MigrationAvgNanos: b.getAvgMigrationNanos(),
		GrowthCount:       b.GrowthCount.Load(),
		GrowthWords:       b.GrowthWords.Load(),
		ClearAllCount:     b.ClearAllCount.Load(),
		ClearAllWords:     b.ClearAllWords.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgMigrationNanos() int64 {
	count := b.MigrationCount.Load() - b.MigrationErrors.Load()
	if count <= 0 {
		return 0
	}
	return b.MigrationTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	MigrationCount    int64
	MigrationErrors   int64
	MigrationFields   int64
	MigrationAvgNanos int64
	GrowthCount       int64
	GrowthWords       int64
	ClearAllCount     int64
	ClearAllWords     int64
}
