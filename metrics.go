package halfvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordEncode is called after each batch encode. vectors is the batch
	// size, err is nil if successful.
	RecordEncode(format Format, vectors int, duration time.Duration, err error)

	// RecordDecode is called after each decode of one or more buffers.
	RecordDecode(format Format, vectors int, duration time.Duration, err error)

	// RecordVerify is called after a round-trip verification. checked is the
	// number of vectors compared, failed the number with a component outside
	// the format tolerance.
	RecordVerify(format Format, checked, failed int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEncode(Format, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordDecode(Format, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordVerify(Format, int, int)                  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Safe for concurrent use.
type BasicMetricsCollector struct {
	EncodeCount      atomic.Int64
	EncodeErrors     atomic.Int64
	EncodedVectors   atomic.Int64
	EncodeTotalNanos atomic.Int64
	DecodeCount      atomic.Int64
	DecodeErrors     atomic.Int64
	DecodedVectors   atomic.Int64
	DecodeTotalNanos atomic.Int64
	VerifiedVectors  atomic.Int64
	VerifyFailures   atomic.Int64
}

// RecordEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEncode(_ Format, vectors int, duration time.Duration, err error) {
	b.EncodeCount.Add(1)
	b.EncodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EncodeErrors.Add(1)
		return
	}
	b.EncodedVectors.Add(int64(vectors))
}

// RecordDecode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecode(_ Format, vectors int, duration time.Duration, err error) {
	b.DecodeCount.Add(1)
	b.DecodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DecodeErrors.Add(1)
		return
	}
	b.DecodedVectors.Add(int64(vectors))
}

// RecordVerify implements MetricsCollector.
func (b *BasicMetricsCollector) RecordVerify(_ Format, checked, failed int) {
	b.VerifiedVectors.Add(int64(checked))
	b.VerifyFailures.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		EncodeCount:     b.EncodeCount.Load(),
		EncodeErrors:    b.EncodeErrors.Load(),
		EncodedVectors:  b.EncodedVectors.Load(),
		EncodeAvgNanos:  avg(b.EncodeTotalNanos.Load(), b.EncodeCount.Load()),
		DecodeCount:     b.DecodeCount.Load(),
		DecodeErrors:    b.DecodeErrors.Load(),
		DecodedVectors:  b.DecodedVectors.Load(),
		DecodeAvgNanos:  avg(b.DecodeTotalNanos.Load(), b.DecodeCount.Load()),
		VerifiedVectors: b.VerifiedVectors.Load(),
		VerifyFailures:  b.VerifyFailures.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	EncodeCount     int64
	EncodeErrors    int64
	EncodedVectors  int64
	EncodeAvgNanos  int64
	DecodeCount     int64
	DecodeErrors    int64
	DecodedVectors  int64
	DecodeAvgNanos  int64
	VerifiedVectors int64
	VerifyFailures  int64
}
