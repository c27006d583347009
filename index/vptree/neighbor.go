package vptree

import "github.com/mzmatch/mzmatch/index"

// neighbors implements heap.Interface sorted by descending distance
// (max-heap), so the root is always the current worst candidate.
type neighbors []index.Neighbor

func (h neighbors) Len() int           { return len(h) }
func (h neighbors) Less(i, j int) bool { return h[i].Distance > h[j].Distance }
func (h neighbors) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *neighbors) Push(x interface{}) {
	*h = append(*h, x.(index.Neighbor))
}

func (h *neighbors) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
