package clock

// deferredAction 排队中的延迟行为
type deferredAction struct {
	due int64  // 执行的 tick
	seq uint64 // 排队序号，同一 tick 内按序号执行
	fn  func()
}

// deferredQueue 按 (due, seq) 排序的最小堆
type deferredQueue []*deferredAction

func (q deferredQueue) Len() int { return len(q) }

func (q deferredQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q deferredQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *deferredQueue) Push(x any) {
	*q = append(*q, x.(*deferredAction))
}

func (q *deferredQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
