package routing

import "container/heap"

// searchNode is per-call scratch state for one star reached by the search
type searchNode struct {
	star          int
	costFromStart float64
	totalCost     float64
	neighbors     []int
	expanded      bool
	parent        int
	index         int // position in the open set, -1 once popped
	seq           int // discovery order, breaks cost ties
}

// openSet is a min-heap of search nodes ordered by total cost then discovery order
type openSet []*searchNode

func (q openSet) Len() int { return len(q) }
func (q openSet) Less(i, j int) bool {
	if q[i].totalCost != q[j].totalCost {
		return q[i].totalCost < q[j].totalCost
	}
	return q[i].seq < q[j].seq
}
func (q openSet) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}
func (q *openSet) Push(x interface{}) {
	node := x.(*searchNode)
	node.index = len(*q)
	*q = append(*q, node)
}
func (q *openSet) Pop() interface{} {
	old := *q
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*q = old[:n-1]
	return node
}

func (q *openSet) push(node *searchNode) { heap.Push(q, node) }
func (q *openSet) pop() *searchNode     { return heap.Pop(q).(*searchNode) }
func (q *openSet) update(node *searchNode) {
	heap.Fix(q, node.index)
}
