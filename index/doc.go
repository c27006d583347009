// Package index defines a minimal abstraction for 2D spatial indexes that
// can be built from keyed points and queried for nearest neighbors.
// Implementations in this module include a brute-force baseline and a
// vantage-point tree.
package index
