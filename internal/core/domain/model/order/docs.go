// Package order contains the order aggregate and its lifecycle rules: the
// status set, the cancellation-reason invariant and the total-price snapshot
// taken at creation time.
package order
