package observe_test

import (
	"context"
	"fmt"
	"testing"

	"go.opentelemetry.io/otel/metric/noop"

	"github.com/lguimbarda/min-batch/batch"
	"github.com/lguimbarda/min-batch/batch/observe"
)

// Demonstrates wiring builder hooks to OpenTelemetry counters and histograms.
func TestOtelInstrumentsIntegration(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("minbatch/observability")

	ins, err := observe.NewInstruments(meter)
	if err != nil {
		t.Fatalf("create instruments: %v", err)
	}

	ctx := context.Background()
	var counter observe.Counter

	// A successful build records puts, a commit, and the batch size.
	out, err := batch.Try([]int{1, 2, 3}, func(n int) (int, error) {
		return n * 2, nil
	},
		observe.WithInstruments[int](ctx, ins),
		observe.WithCounter[int](&counter),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("len(out) = %d, want 3", len(out))
	}

	// A failing build records drops and a rollback.
	_, err = batch.Try([]int{1, 0, 2}, func(n int) (int, error) {
		if n == 0 {
			return 0, fmt.Errorf("boom")
		}
		return n * 2, nil
	},
		observe.WithInstruments[int](ctx, ins),
		observe.WithCounter[int](&counter),
	)
	if err == nil {
		t.Fatal("expected the second build to fail")
	}

	// The noop meter accepts every measurement; the counter sharing the
	// same hooks path confirms what was recorded.
	if counter.Puts() != 4 {
		t.Errorf("Puts() = %d, want 4", counter.Puts())
	}
	if counter.Drops() != 1 {
		t.Errorf("Drops() = %d, want 1", counter.Drops())
	}
	if counter.Commits() != 1 {
		t.Errorf("Commits() = %d, want 1", counter.Commits())
	}
	if counter.Rollbacks() != 1 {
		t.Errorf("Rollbacks() = %d, want 1", counter.Rollbacks())
	}
}
