package benchmarks

import (
	"testing"

	"github.com/ahmetb/go-linq/v3"
	"github.com/destel/rill"
	"github.com/lguimbarda/min-batch/batch"
	"github.com/samber/lo"
)

// =============================================================================
// Map Benchmarks
// =============================================================================

func BenchmarkMap_MinBatch_Small(b *testing.B) {
	benchmarkMapMinBatch(b, SmallSize)
}

func BenchmarkMap_MinBatch_Medium(b *testing.B) {
	benchmarkMapMinBatch(b, MediumSize)
}

func BenchmarkMap_MinBatch_Large(b *testing.B) {
	benchmarkMapMinBatch(b, LargeSize)
}

func benchmarkMapMinBatch(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = batch.Map(data, square)
	}
}

func BenchmarkMap_Rill_Small(b *testing.B) {
	benchmarkMapRill(b, SmallSize)
}

func BenchmarkMap_Rill_Medium(b *testing.B) {
	benchmarkMapRill(b, MediumSize)
}

func BenchmarkMap_Rill_Large(b *testing.B) {
	benchmarkMapRill(b, LargeSize)
}

func benchmarkMapRill(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		stream := rill.FromSlice(data, nil)
		mapped := rill.Map(stream, 1, func(x int) (int, error) {
			return square(x), nil
		})
		_, _ = rill.ToSlice(mapped)
	}
}

func BenchmarkMap_Lo_Small(b *testing.B) {
	benchmarkMapLo(b, SmallSize)
}

func BenchmarkMap_Lo_Medium(b *testing.B) {
	benchmarkMapLo(b, MediumSize)
}

func BenchmarkMap_Lo_Large(b *testing.B) {
	benchmarkMapLo(b, LargeSize)
}

func benchmarkMapLo(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = lo.Map(data, func(x int, _ int) int {
			return square(x)
		})
	}
}

func BenchmarkMap_GoLinq_Small(b *testing.B) {
	benchmarkMapGoLinq(b, SmallSize)
}

func BenchmarkMap_GoLinq_Medium(b *testing.B) {
	benchmarkMapGoLinq(b, MediumSize)
}

func BenchmarkMap_GoLinq_Large(b *testing.B) {
	benchmarkMapGoLinq(b, LargeSize)
}

func benchmarkMapGoLinq(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var result []int
		linq.From(data).SelectT(func(x int) int {
			return square(x)
		}).ToSlice(&result)
	}
}

// Baseline: raw for loop
func BenchmarkMap_RawLoop_Small(b *testing.B) {
	benchmarkMapRawLoop(b, SmallSize)
}

func BenchmarkMap_RawLoop_Medium(b *testing.B) {
	benchmarkMapRawLoop(b, MediumSize)
}

func BenchmarkMap_RawLoop_Large(b *testing.B) {
	benchmarkMapRawLoop(b, LargeSize)
}

func benchmarkMapRawLoop(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		result := make([]int, len(data))
		for j, x := range data {
			result[j] = square(x)
		}
		_ = result
	}
}

// =============================================================================
// Try Benchmarks - fallible transforms
// =============================================================================

func BenchmarkTry_MinBatch_Small(b *testing.B) {
	benchmarkTryMinBatch(b, SmallSize)
}

func BenchmarkTry_MinBatch_Medium(b *testing.B) {
	benchmarkTryMinBatch(b, MediumSize)
}

func BenchmarkTry_MinBatch_Large(b *testing.B) {
	benchmarkTryMinBatch(b, LargeSize)
}

func benchmarkTryMinBatch(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = batch.Try(data, squareWithErr)
	}
}

func BenchmarkTry_Rill_Small(b *testing.B) {
	benchmarkTryRill(b, SmallSize)
}

func BenchmarkTry_Rill_Medium(b *testing.B) {
	benchmarkTryRill(b, MediumSize)
}

func BenchmarkTry_Rill_Large(b *testing.B) {
	benchmarkTryRill(b, LargeSize)
}

func benchmarkTryRill(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		stream := rill.FromSlice(data, nil)
		mapped := rill.Map(stream, 1, squareWithErr)
		_, _ = rill.ToSlice(mapped)
	}
}

func BenchmarkTry_RawLoop_Small(b *testing.B) {
	benchmarkTryRawLoop(b, SmallSize)
}

func BenchmarkTry_RawLoop_Medium(b *testing.B) {
	benchmarkTryRawLoop(b, MediumSize)
}

func BenchmarkTry_RawLoop_Large(b *testing.B) {
	benchmarkTryRawLoop(b, LargeSize)
}

func benchmarkTryRawLoop(b *testing.B, size int) {
	data := generateInts(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		result := make([]int, len(data))
		for j, x := range data {
			v, err := squareWithErr(x)
			if err != nil {
				result = nil
				break
			}
			result[j] = v
		}
		_ = result
	}
}

// Failure at the midpoint measures the cost of tearing a batch down.
func BenchmarkTry_MinBatch_MidpointFailure(b *testing.B) {
	data := generateInts(MediumSize)
	mid := MediumSize / 2
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = batch.Try(data, func(x int) (int, error) {
			if x == mid {
				return 0, errTest
			}
			return square(x), nil
		})
	}
}

// =============================================================================
// Parse Benchmarks - string to int conversion through the error path
// =============================================================================

func BenchmarkParse_MinBatch_Medium(b *testing.B) {
	data := generateStrings(MediumSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = batch.Try(data, parseInt)
	}
}

func BenchmarkParse_Rill_Medium(b *testing.B) {
	data := generateStrings(MediumSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		stream := rill.FromSlice(data, nil)
		parsed := rill.Map(stream, 1, parseInt)
		_, _ = rill.ToSlice(parsed)
	}
}

func BenchmarkParse_RawLoop_Medium(b *testing.B) {
	data := generateStrings(MediumSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		result := make([]int, len(data))
		for j, s := range data {
			v, err := parseInt(s)
			if err != nil {
				result = nil
				break
			}
			result[j] = v
		}
		_ = result
	}
}
