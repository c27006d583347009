package vptree

import (
	"container/heap"
	"math"
	"sort"

	"github.com/viant/vec/search"

	"github.com/mzmatch/mzmatch/index"
)

// Index implements a Euclidean kNN index using a VP-tree to prune search.
type Index struct {
	points []index.Point
	vecs   [][]float32
	root   *node
}

type node struct {
	idx   int // index into points/vecs
	thr   float64
	left  *node
	right *node
}

// New returns an empty VP-tree index.
func New() *Index { return &Index{} }

// Build constructs the VP-tree over the given points.
func (i *Index) Build(points []index.Point) error {
	i.points = append([]index.Point(nil), points...)
	i.vecs = make([][]float32, len(points))
	for j, p := range points {
		i.vecs[j] = []float32{float32(p.Time), float32(p.Mass)}
	}
	if len(points) == 0 {
		i.root = nil
		return nil
	}
	idxs := make([]int, len(points))
	for k := range idxs {
		idxs[k] = k
	}
	i.root = i.buildVP(idxs)
	return nil
}

func (i *Index) buildVP(idxs []int) *node {
	if len(idxs) == 0 {
		return nil
	}
	// last element is the vantage point
	vp := idxs[len(idxs)-1]
	idxs = idxs[:len(idxs)-1]
	if len(idxs) == 0 {
		return &node{idx: vp}
	}
	dists := make([]float64, len(idxs))
	for k, j := range idxs {
		dists[k] = i.distance(i.vecs[vp], i.vecs[j])
	}
	// median threshold
	mid := len(dists) / 2
	order := make([]int, len(idxs))
	for k := range order {
		order[k] = k
	}
	sort.Slice(order, func(a, b int) bool { return dists[order[a]] < dists[order[b]] })
	thr := dists[order[mid]]
	leftIdxs := make([]int, 0, mid+1)
	rightIdxs := make([]int, 0, len(idxs)-(mid+1))
	for rank, k := range order {
		if rank <= mid {
			leftIdxs = append(leftIdxs, idxs[k])
		} else {
			rightIdxs = append(rightIdxs, idxs[k])
		}
	}
	return &node{
		idx:   vp,
		thr:   thr,
		left:  i.buildVP(leftIdxs),
		right: i.buildVP(rightIdxs),
	}
}

func (i *Index) distance(a, b []float32) float64 {
	return float64(search.Float32s(a).EuclideanDistance(b))
}

// Nearest returns up to k points ordered by ascending Euclidean distance.
func (i *Index) Nearest(query index.Point, k int) ([]index.Neighbor, error) {
	if i.root == nil || k <= 0 {
		return nil, nil
	}
	q := []float32{float32(query.Time), float32(query.Mass)}
	h := &neighbors{}
	heap.Init(h)
	i.search(i.root, q, k, h)
	result := make([]index.Neighbor, h.Len())
	for j := len(result) - 1; j >= 0; j-- {
		result[j] = heap.Pop(h).(index.Neighbor)
	}
	return result, nil
}

func (i *Index) search(n *node, q []float32, k int, h *neighbors) {
	if n == nil {
		return
	}
	d := i.distance(q, i.vecs[n.idx])
	if h.Len() < k {
		heap.Push(h, index.Neighbor{Point: i.points[n.idx], Distance: d})
	} else if d < (*h)[0].Distance {
		heap.Pop(h)
		heap.Push(h, index.Neighbor{Point: i.points[n.idx], Distance: d})
	}
	bound := math.Inf(1)
	if h.Len() == k {
		bound = (*h)[0].Distance
	}
	// prune using the triangle inequality, nearer half first
	if d < n.thr {
		if d-bound <= n.thr {
			i.search(n.left, q, k, h)
		}
		if h.Len() == k {
			bound = (*h)[0].Distance
		}
		if d+bound >= n.thr {
			i.search(n.right, q, k, h)
		}
	} else {
		if d+bound >= n.thr {
			i.search(n.right, q, k, h)
		}
		if h.Len() == k {
			bound = (*h)[0].Distance
		}
		if d-bound <= n.thr {
			i.search(n.left, q, k, h)
		}
	}
}

// Ensure Index satisfies the index interface.
var _ index.Index = (*Index)(nil)
