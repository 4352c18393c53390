package crcspeed

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Table.Update never reports metrics itself; RecordUpdate is called by
// callers that time their own runs, such as the benchmark harness.
type MetricsCollector interface {
	// RecordTableBuild is called after each MakeTable.
	RecordTableBuild(width int, order ByteOrder, duration time.Duration)

	// RecordUpdate is called after a timed CRC computation over n bytes.
	RecordUpdate(n int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTableBuild(int, ByteOrder, time.Duration) {}
func (NoopMetricsCollector) RecordUpdate(int, time.Duration)                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	TableBuilds          atomic.Int64
	TableBuildsBig       atomic.Int64
	TableBuildTotalNanos atomic.Int64
	UpdateCount          atomic.Int64
	UpdateBytes          atomic.Int64
	UpdateTotalNanos     atomic.Int64
}

// RecordTableBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTableBuild(_ int, order ByteOrder, duration time.Duration) {
	b.TableBuilds.Add(1)
	if order == BigEndian {
		b.TableBuildsBig.Add(1)
	}
	b.TableBuildTotalNanos.Add(duration.Nanoseconds())
}

// RecordUpdate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUpdate(n int, duration time.Duration) {
	b.UpdateCount.Add(1)
	b.UpdateBytes.Add(int64(n))
	b.UpdateTotalNanos.Add(duration.Nanoseconds())
}

// MetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type MetricsStats struct {
	TableBuilds        int64
	TableBuildsBig     int64
	TableBuildAvgNanos int64
	UpdateCount        int64
	UpdateBytes        int64
	UpdateBytesPerSec  float64
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	stats := MetricsStats{
		TableBuilds:    b.TableBuilds.Load(),
		TableBuildsBig: b.TableBuildsBig.Load(),
		UpdateCount:    b.UpdateCount.Load(),
		UpdateBytes:    b.UpdateBytes.Load(),
	}
	if stats.TableBuilds > 0 {
		stats.TableBuildAvgNanos = b.TableBuildTotalNanos.Load() / stats.TableBuilds
	}
	if nanos := b.UpdateTotalNanos.Load(); nanos > 0 {
		stats.UpdateBytesPerSec = float64(stats.UpdateBytes) / time.Duration(nanos).Seconds()
	}
	return stats
}
