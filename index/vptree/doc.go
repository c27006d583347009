// Package vptree provides a vantage-point tree spatial index. It prunes kNN
// searches with the triangle inequality and computes distances through the
// viant/vec search primitives. Build order determines tie resolution among
// equidistant points, so queries are deterministic for a fixed input order.
package vptree
