// Package metrics collects aggregate counters over a fact run:
// results by kind, results by context label, and suite
// completions.
package metrics

import (
	"sync"
	"time"

	"digital.vasic.facts/pkg/fact"
)

// RunMetrics defines the interface for recording run metrics.
type RunMetrics interface {
	// RecordResult records a single evaluated fact.
	RecordResult(result fact.Result)
	// RecordSuite records a completed suite and its duration.
	RecordSuite(description string, duration time.Duration)
}

// NoopMetrics is a no-op implementation of RunMetrics useful
// when metrics collection is disabled.
type NoopMetrics struct{}

func (NoopMetrics) RecordResult(_ fact.Result)            {}
func (NoopMetrics) RecordSuite(_ string, _ time.Duration) {}

// Collector is an in-memory RunMetrics implementation. It is
// safe for concurrent use.
type Collector struct {
	mu        sync.Mutex
	byKind    map[string]int
	byContext map[string]int
	suites    int
	suiteTime time.Duration
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{
		byKind:    make(map[string]int),
		byContext: make(map[string]int),
	}
}

// RecordResult counts a result by kind and by context label.
// It satisfies the session observer signature via Observe.
func (c *Collector) RecordResult(result fact.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.byKind[result.Kind]++
	if result.Meta.Context != "" {
		c.byContext[result.Meta.Context]++
	}
}

// Observe is an alias for RecordResult matching the session
// observer signature.
func (c *Collector) Observe(result fact.Result) {
	c.RecordResult(result)
}

// RecordSuite counts a completed suite.
func (c *Collector) RecordSuite(
	_ string,
	duration time.Duration,
) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.suites++
	c.suiteTime += duration
}

// KindCount returns the number of results recorded for a kind.
func (c *Collector) KindCount(kind string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.byKind[kind]
}

// ContextCount returns the number of results recorded under a
// context label.
func (c *Collector) ContextCount(label string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.byContext[label]
}

// SuiteCount returns the number of completed suites recorded.
func (c *Collector) SuiteCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.suites
}

// SuiteTime returns the accumulated suite wall-clock time.
func (c *Collector) SuiteTime() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.suiteTime
}
