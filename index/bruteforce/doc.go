// Package bruteforce provides a simple spatial index that answers kNN
// queries by scanning all points. It is the correctness baseline the tree
// index is validated against and the default for small point sets.
package bruteforce
