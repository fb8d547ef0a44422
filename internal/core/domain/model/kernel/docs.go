// Package kernel contains shared value objects used by all aggregates.
// Everything here is immutable and safe for concurrent use.
package kernel
