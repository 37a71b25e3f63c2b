package astar

// openEntry is a single open candidate together with its heap position.
type openEntry struct {
	wp    *Waypoint
	index int // position in openQueue, maintained by Swap/Push/Pop
}

// openQueue is a min-heap of open candidates ordered by total cost, ties
// broken by Location.Less. Unlike a lazy-decrease-key queue it never holds
// stale entries: every location appears exactly once and cheaper candidates
// are applied in place with heap.Fix.
type openQueue []*openEntry

// Len returns the number of open candidates.
func (q openQueue) Len() int { return len(q) }

// Less compares total costs, then locations.
func (q openQueue) Less(i, j int) bool {
	a, b := q[i].wp, q[j].wp
	if a.totalCost != b.totalCost {
		return a.totalCost < b.totalCost
	}
	return a.loc.Less(b.loc)
}

// Swap exchanges two entries and keeps their indices in sync.
func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

// Push appends x, which must be an *openEntry. Called by heap.Push.
func (q *openQueue) Push(x interface{}) {
	e := x.(*openEntry)
	e.index = len(*q)
	*q = append(*q, e)
}

// Pop removes the last entry. Called by heap.Pop and heap.Remove.
func (q *openQueue) Pop() interface{} {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]

	return e
}
