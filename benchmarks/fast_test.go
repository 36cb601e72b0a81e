package benchmarks

import (
	"testing"

	"github.com/lguimbarda/min-batch/batch"
	"github.com/lguimbarda/min-batch/batch/fast"
)

// =============================================================================
// Fast Package Benchmarks
// Measures the cost of the guarded builder against unguarded loops.
// =============================================================================

func BenchmarkFast_Map_Small(b *testing.B) {
	benchmarkFastMap(b, SmallSize)
}

func BenchmarkFast_Map_Medium(b *testing.B) {
	benchmarkFastMap(b, MediumSize)
}

func BenchmarkFast_Map_Large(b *testing.B) {
	benchmarkFastMap(b, LargeSize)
}

func benchmarkFastMap(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = fast.Map(data, square)
	}
}

func BenchmarkGuarded_Map_Small(b *testing.B) {
	benchmarkGuardedMap(b, SmallSize)
}

func BenchmarkGuarded_Map_Medium(b *testing.B) {
	benchmarkGuardedMap(b, MediumSize)
}

func BenchmarkGuarded_Map_Large(b *testing.B) {
	benchmarkGuardedMap(b, LargeSize)
}

func benchmarkGuardedMap(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = batch.Map(data, square)
	}
}

func BenchmarkFast_Try_Medium(b *testing.B) {
	data := generateInts(MediumSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = fast.Try(data, squareWithErr)
	}
}

func BenchmarkGuarded_Try_Medium(b *testing.B) {
	data := generateInts(MediumSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = batch.Try(data, squareWithErr)
	}
}

func BenchmarkFast_Tabulate_Medium(b *testing.B) {
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = fast.Tabulate(MediumSize, square)
	}
}

func BenchmarkGuarded_Tabulate_Medium(b *testing.B) {
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = batch.Tabulate(MediumSize, square)
	}
}
