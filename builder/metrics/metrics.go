// Package metrics tracks counters and phase timings for one build.
package metrics

import (
	"fmt"
	"sync/atomic"
	"time"
)

// BuildMetrics tracks performance data during the build process.
// Counters touched by the write phase are atomic.
type BuildMetrics struct {
	// Timing
	StartTime time.Time
	EndTime   time.Time
	ParseTime time.Duration
	PlanTime  time.Duration
	WriteTime time.Duration

	// Counters
	PostsParsed int
	PagesParsed int
	CacheHits   int
	CacheMisses int
	MediaCopied int

	filesWritten  atomic.Int64
	postsRendered atomic.Int64

	// True when the deploy directory was new and the cache was ignored.
	CacheBypassed bool
}

// NewBuildMetrics creates a new metrics instance.
func NewBuildMetrics() *BuildMetrics {
	return &BuildMetrics{
		StartTime: time.Now(),
	}
}

// RecordEnd marks the end of the build.
func (m *BuildMetrics) RecordEnd() {
	m.EndTime = time.Now()
}

// Phase runs fn and adds its duration to *into.
func (m *BuildMetrics) Phase(into *time.Duration, fn func() error) error {
	start := time.Now()
	err := fn()
	*into += time.Since(start)
	return err
}

// TotalDuration returns the total build duration.
func (m *BuildMetrics) TotalDuration() time.Duration {
	if m.EndTime.IsZero() {
		return time.Since(m.StartTime)
	}
	return m.EndTime.Sub(m.StartTime)
}

// CacheHitRate returns the cache hit percentage.
func (m *BuildMetrics) CacheHitRate() float64 {
	total := m.CacheHits + m.CacheMisses
	if total == 0 {
		return 0
	}
	return float64(m.CacheHits) / float64(total) * 100
}

func (m *BuildMetrics) AddFileWritten()   { m.filesWritten.Add(1) }
func (m *BuildMetrics) AddPostRendered()  { m.postsRendered.Add(1) }
func (m *BuildMetrics) FilesWritten() int { return int(m.filesWritten.Load()) }
func (m *BuildMetrics) PostsRendered() int {
	return int(m.postsRendered.Load())
}

// String returns a formatted summary of the build metrics (minimal single-line format).
func (m *BuildMetrics) String() string {
	return fmt.Sprintf("📊 Built %d posts, %d pages into %d files in %v (rendered %d, skipped %d, cache %.0f%%)",
		m.PostsParsed,
		m.PagesParsed,
		m.FilesWritten(),
		m.TotalDuration().Round(time.Millisecond),
		m.PostsRendered(),
		m.CacheHits,
		m.CacheHitRate(),
	)
}

// Print outputs the metrics to stdout.
func (m *BuildMetrics) Print() {
	fmt.Println(m.String())
}
