// Package observe provides observability for batch builds: in-process
// counters, build metrics, OpenTelemetry instruments, and structured
// logging, all delivered through the hook system in batch/core.
package observe

import (
	"sync/atomic"
	"time"

	"github.com/lguimbarda/min-batch/batch/core"
)

// Counter holds thread-safe counts of builder events. One Counter may be
// shared by any number of builds across goroutines.
type Counter struct {
	puts      atomic.Int64
	drops     atomic.Int64
	commits   atomic.Int64
	rollbacks atomic.Int64
}

// Puts returns the number of values written across observed builds.
func (c *Counter) Puts() int64 { return c.puts.Load() }

// Drops returns the number of values destroyed during rollbacks.
func (c *Counter) Drops() int64 { return c.drops.Load() }

// Commits returns the number of observed builds that committed.
func (c *Counter) Commits() int64 { return c.commits.Load() }

// Rollbacks returns the number of observed builds that rolled back.
func (c *Counter) Rollbacks() int64 { return c.rollbacks.Load() }

// Reset zeroes all counts.
func (c *Counter) Reset() {
	c.puts.Store(0)
	c.drops.Store(0)
	c.commits.Store(0)
	c.rollbacks.Store(0)
}

// CountHooks returns hooks that feed the counter.
func CountHooks[T any](c *Counter) core.Hooks[T] {
	return core.Hooks[T]{
		OnPut:      func(int, T) { c.puts.Add(1) },
		OnDrop:     func(int, T) { c.drops.Add(1) },
		OnCommit:   func(int) { c.commits.Add(1) },
		OnRollback: func(int) { c.rollbacks.Add(1) },
	}
}

// WithCounter returns an Option that feeds the counter during a build.
func WithCounter[T any](c *Counter) core.Option[T] {
	return core.WithHooks(CountHooks[T](c))
}

// BuildMetrics holds statistics about a single build's execution.
type BuildMetrics struct {
	Puts      int
	Drops     int
	Committed bool
	Size      int // committed batch size, 0 on rollback

	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// Measure returns an Option that collects metrics for one build.
// The onComplete callback fires once, when the build commits or rolls back.
// A Measure option observes a single build; create a fresh one per build.
func Measure[T any](onComplete func(BuildMetrics)) core.Option[T] {
	m := &BuildMetrics{StartTime: time.Now()}

	finish := func(committed bool, size int) {
		m.Committed = committed
		m.Size = size
		m.EndTime = time.Now()
		m.Duration = m.EndTime.Sub(m.StartTime)
		if onComplete != nil {
			onComplete(*m)
		}
	}

	return core.WithHooks(core.Hooks[T]{
		OnPut:      func(int, T) { m.Puts++ },
		OnDrop:     func(int, T) { m.Drops++ },
		OnCommit:   func(size int) { finish(true, size) },
		OnRollback: func(int) { finish(false, 0) },
	})
}
