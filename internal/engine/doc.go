// Package engine holds the pure calculation core: currency conversion,
// compound-interest projection, installments-vs-cash comparison, rate
// aggregation and portfolio valuation. Every function is a deterministic
// computation over its arguments with no I/O, no clock and no shared state,
// so calls are safe from any number of goroutines without locking. Rate and
// price feeds are always passed in; the engine never fetches.
package engine
