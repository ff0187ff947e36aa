package sim

import (
	"container/heap"
	"fmt"
)

// departureHeap implements heap.Interface and orders pending departure
// times ascending.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type departureHeap []float64

func (h departureHeap) Len() int           { return len(h) }
func (h departureHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h departureHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *departureHeap) Push(x any) {
	*h = append(*h, x.(float64))
}

func (h *departureHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

// ServerPool models the bounded set of homogeneous servers. Occupied
// servers are represented only by their pending departure times, kept in
// a min-heap so the earliest departure is always retrievable first.
// Capacity is fixed at construction and never changes within a run.
//
// Add on a full pool and RemoveEarliest on an empty pool are contract
// violations: SimulateDay checks IsFull before every Add, and only calls
// RemoveEarliest when the pool is full. Both panic.
type ServerPool struct {
	capacity int
	pending  departureHeap
}

// NewServerPool creates a pool with the given fixed capacity.
// Capacity must be at least 1.
func NewServerPool(capacity int) *ServerPool {
	if capacity < 1 {
		panic(fmt.Sprintf("NewServerPool: capacity must be >= 1, got %d", capacity))
	}
	return &ServerPool{
		capacity: capacity,
		pending:  make(departureHeap, 0, capacity),
	}
}

// Capacity returns the fixed number of servers in the pool.
func (p *ServerPool) Capacity() int {
	return p.capacity
}

// Len returns the current number of occupied servers.
func (p *ServerPool) Len() int {
	return len(p.pending)
}

// IsFull reports whether every server is occupied.
func (p *ServerPool) IsFull() bool {
	return len(p.pending) == p.capacity
}

// Add records a newly occupied server by its departure time.
// Panics if the pool is full.
func (p *ServerPool) Add(departure float64) {
	if p.IsFull() {
		panic(fmt.Sprintf("ServerPool.Add: pool is full (capacity %d)", p.capacity))
	}
	heap.Push(&p.pending, departure)
}

// RemoveEarliest removes and returns the minimum pending departure time,
// freeing that server. Panics if the pool is empty.
func (p *ServerPool) RemoveEarliest() float64 {
	if len(p.pending) == 0 {
		panic("ServerPool.RemoveEarliest: pool is empty")
	}
	return heap.Pop(&p.pending).(float64)
}
