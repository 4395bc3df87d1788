package setcover

import (
	"errors"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    coverHistogram *prometheus.HistogramVec
//	}
//
//	func (p *PrometheusCollector) RecordCover(s setcover.Strategy, universeSize, numSets, chosen int, d time.Duration, err error) {
//	    p.coverHistogram.WithLabelValues(s.String()).Observe(d.Seconds())
//	}
type MetricsCollector interface {
	// RecordCover is called after each cover computation, successful or not.
	// chosen is the number of sets in the cover (0 on error).
	RecordCover(strategy Strategy, universeSize, numSets, chosen int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCover(Strategy, int, int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CoverCount       atomic.Int64
	CoverTotalNanos  atomic.Int64
	SetsChosen       atomic.Int64
	ElementsCovered  atomic.Int64
	InfeasibleCount  atomic.Int64
	InvalidAlgoCount atomic.Int64
	OtherErrors      atomic.Int64
	DenseCount       atomic.Int64
	BitsetCount      atomic.Int64
	TextbookCount    atomic.Int64
}

// RecordCover implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCover(strategy Strategy, universeSize, _ int, chosen int, duration time.Duration, err error) {
	b.CoverCount.Add(1)
	b.CoverTotalNanos.Add(duration.Nanoseconds())

	switch strategy {
	case Dense:
		b.DenseCount.Add(1)
	case Bitset:
		b.BitsetCount.Add(1)
	case Textbook:
		b.TextbookCount.Add(1)
	}

	switch {
	case err == nil:
		b.SetsChosen.Add(int64(chosen))
		b.ElementsCovered.Add(int64(universeSize))
	case errors.Is(err, ErrInfeasibleCover):
		b.InfeasibleCount.Add(1)
	case errors.Is(err, ErrInvalidAlgorithm):
		b.InvalidAlgoCount.Add(1)
	default:
		b.OtherErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CoverCount:       b.CoverCount.Load(),
		CoverAvgNanos:    b.getAvgCoverNanos(),
		SetsChosen:       b.SetsChosen.Load(),
		ElementsCovered:  b.ElementsCovered.Load(),
		InfeasibleCount:  b.InfeasibleCount.Load(),
		InvalidAlgoCount: b.InvalidAlgoCount.Load(),
		OtherErrors:      b.OtherErrors.Load(),
		DenseCount:       b.DenseCount.Load(),
		BitsetCount:      b.BitsetCount.Load(),
		TextbookCount:    b.TextbookCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgCoverNanos() int64 {
	count := b.CoverCount.Load()
	if count == 0 {
		return 0
	}
	return b.CoverTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CoverCount       int64
	CoverAvgNanos    int64
	SetsChosen       int64
	ElementsCovered  int64
	InfeasibleCount  int64
	InvalidAlgoCount int64
	OtherErrors      int64
	DenseCount       int64
	BitsetCount      int64
	TextbookCount    int64
}
