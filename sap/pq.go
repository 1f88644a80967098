package sap

import "container/heap"

// queueItem is an entry of the solver's min-priority queue.
type queueItem struct {
	value    int // node or arc index, depending on the caller
	priority float64
	index    int // position in the heap, maintained by heap.Interface
}

// itemHeap is the raw container/heap backing store; use minQueue.
type itemHeap []*queueItem

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool { return h[i].priority < h[j].priority }

func (h itemHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *itemHeap) Push(x interface{}) {
	item := x.(*queueItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	item.index = -1
	*h = old[:n-1]

	return item
}

// minQueue is a lowest-priority-first queue of queueItems.
type minQueue struct {
	h itemHeap
}

func (q *minQueue) Len() int { return q.h.Len() }

func (q *minQueue) Push(item *queueItem) { heap.Push(&q.h, item) }

func (q *minQueue) Pop() *queueItem { return heap.Pop(&q.h).(*queueItem) }

// Fix re-sorts an item after its priority changed in place.
func (q *minQueue) Fix(item *queueItem, priority float64) {
	item.priority = priority
	heap.Fix(&q.h, item.index)
}
