// Package fast provides high-performance batch transforms that sacrifice
// min-batch's safety and observability features for raw speed.
//
// # DISCLAIMER: USE AT YOUR OWN RISK
//
// This package intentionally bypasses the following min-batch features:
//
//   - Guarded building: No builder, no live-prefix tracking
//   - Teardown: Values written before a failure are abandoned, not destroyed
//   - Hooks: No put/drop/commit/rollback events
//   - Misuse detection: No double-commit or overfill panics
//
// # When to use this package
//
//   - Transforms over plain values that own no resources
//   - Trusted code paths where panics are acceptable
//   - Benchmarking to measure the cost of min-batch's guard
//   - Hot paths in production after extensive testing
//
// # When NOT to use this package
//
//   - Elements that own resources (handles, connections, buffers)
//   - Processing untrusted or user-provided data
//   - When a failed build must release what it acquired
//   - When observability (metrics, logging) is required
//
// This package serves a secondary purpose: benchmarking the overhead of each
// min-batch feature to identify optimization opportunities in the core
// package.
package fast
