package observe

import (
	"context"

	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/min-batch/batch/core"
)

// Instruments bundles the OpenTelemetry instruments for builder events.
type Instruments struct {
	Puts      metric.Int64Counter
	Drops     metric.Int64Counter
	Commits   metric.Int64Counter
	Rollbacks metric.Int64Counter
	BatchSize metric.Int64Histogram
}

// NewInstruments creates the builder instruments on the given meter.
func NewInstruments(meter metric.Meter) (*Instruments, error) {
	puts, err := meter.Int64Counter("batch.puts", metric.WithDescription("count of values written"))
	if err != nil {
		return nil, err
	}
	drops, err := meter.Int64Counter("batch.drops", metric.WithDescription("count of values destroyed during rollback"))
	if err != nil {
		return nil, err
	}
	commits, err := meter.Int64Counter("batch.commits", metric.WithDescription("count of committed builds"))
	if err != nil {
		return nil, err
	}
	rollbacks, err := meter.Int64Counter("batch.rollbacks", metric.WithDescription("count of rolled back builds"))
	if err != nil {
		return nil, err
	}
	batchSize, err := meter.Int64Histogram("batch.size", metric.WithDescription("committed batch sizes"))
	if err != nil {
		return nil, err
	}

	return &Instruments{
		Puts:      puts,
		Drops:     drops,
		Commits:   commits,
		Rollbacks: rollbacks,
		BatchSize: batchSize,
	}, nil
}

// InstrumentHooks returns hooks that record builder events on the
// instruments. Builds are synchronous, so the context captured here is the
// context of every measurement.
func InstrumentHooks[T any](ctx context.Context, ins *Instruments) core.Hooks[T] {
	return core.Hooks[T]{
		OnPut:  func(int, T) { ins.Puts.Add(ctx, 1) },
		OnDrop: func(int, T) { ins.Drops.Add(ctx, 1) },
		OnCommit: func(size int) {
			ins.Commits.Add(ctx, 1)
			ins.BatchSize.Record(ctx, int64(size))
		},
		OnRollback: func(int) { ins.Rollbacks.Add(ctx, 1) },
	}
}

// WithInstruments returns an Option that records builder events on the
// instruments during a build.
func WithInstruments[T any](ctx context.Context, ins *Instruments) core.Option[T] {
	return core.WithHooks(InstrumentHooks[T](ctx, ins))
}
