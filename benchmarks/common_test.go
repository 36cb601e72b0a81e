// Package benchmarks provides comparative benchmarks of min-batch against
// popular Go slice and stream processing libraries.
package benchmarks

import (
	"errors"
	"strconv"
)

// Common test errors
var errTest = errors.New("test error")

// Test data sizes
const (
	SmallSize  = 100
	MediumSize = 1_000
	LargeSize  = 10_000
)

// generateInts creates a slice of integers for benchmarking.
func generateInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return data
}

// generateStrings creates a slice of strings for benchmarking.
func generateStrings(n int) []string {
	data := make([]string, n)
	for i := range data {
		data[i] = strconv.Itoa(i)
	}
	return data
}

// Common transformation functions used across benchmarks
// Note: min-batch's Try expects func(IN) (OUT, error) signature

// squareWithErr returns the square of an integer (min-batch compatible).
func squareWithErr(x int) (int, error) {
	return x * x, nil
}

// square returns the square of an integer (for other libraries).
func square(x int) int {
	return x * x
}

// parseInt converts a decimal string to an int.
func parseInt(s string) (int, error) {
	return strconv.Atoi(s)
}
