package engine

import (
	"container/heap"
	"time"
)

// timedEvent is one scheduled callback with its deadline.
type timedEvent struct {
	at time.Time
	fn func()
}

// eventQueue is a min-heap of timed events ordered by deadline.
type eventQueue []*timedEvent

func (q eventQueue) Len() int           { return len(q) }
func (q eventQueue) Less(i, j int) bool { return q[i].at.Before(q[j].at) }
func (q eventQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *eventQueue) Push(x any)        { *q = append(*q, x.(*timedEvent)) }
func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return ev
}

// push adds an event keeping the heap ordered.
func (q *eventQueue) push(ev *timedEvent) {
	heap.Push(q, ev)
}

// popDue removes and returns the earliest event if its deadline has passed.
func (q *eventQueue) popDue(now time.Time) (*timedEvent, bool) {
	if len(*q) == 0 || (*q)[0].at.After(now) {
		return nil, false
	}
	return heap.Pop(q).(*timedEvent), true
}

// next returns the earliest pending deadline.
func (q eventQueue) next() (time.Time, bool) {
	if len(q) == 0 {
		return time.Time{}, false
	}
	return q[0].at, true
}
