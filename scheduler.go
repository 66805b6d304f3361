package sparkle

import (
	"container/heap"
	"time"
)

// minTimerInterval bounds repeating timers so a zero interval cannot spin.
const minTimerInterval = time.Millisecond

// timer is a scheduled callback. A queued timer has index >= 0.
type timer struct {
	at    time.Time
	every time.Duration // zero for one-shot
	seq   uint64
	index int
	fn    func()
}

// queued reports whether t is waiting to fire.
func (t *timer) queued() bool {
	return t != nil && t.index >= 0
}

// timerQueue is a min-heap ordered by fire time, then scheduling order.
type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].at.Equal(q[j].at) {
		return q[i].seq < q[j].seq
	}
	return q[i].at.Before(q[j].at)
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// scheduler fires timers against a Clock when polled. Cancelling removes a
// timer from the queue, so a cancelled timer can never fire later.
type scheduler struct {
	clock  Clock
	queue  timerQueue
	seq    uint64
	firing bool
	cursor time.Time // due time of the timer being fired
}

func newScheduler(clock Clock) *scheduler {
	return &scheduler{clock: clock}
}

// now is the base for new timers. Inside a callback it is the firing timer's
// due time, so chained timers do not drift with poll latency.
func (s *scheduler) now() time.Time {
	if s.firing {
		return s.cursor
	}
	return s.clock.Now()
}

// after schedules fn once, d from now.
func (s *scheduler) after(d time.Duration, fn func()) *timer {
	return s.push(&timer{at: s.now().Add(max(d, 0)), fn: fn})
}

// every schedules fn repeatedly, first firing d from now.
func (s *scheduler) every(d time.Duration, fn func()) *timer {
	d = max(d, minTimerInterval)
	return s.push(&timer{at: s.now().Add(d), every: d, fn: fn})
}

func (s *scheduler) push(t *timer) *timer {
	s.seq++
	t.seq = s.seq
	heap.Push(&s.queue, t)
	return t
}

// cancel removes t if queued. Safe on nil and already-fired timers.
func (s *scheduler) cancel(t *timer) {
	if !t.queued() {
		return
	}
	heap.Remove(&s.queue, t.index)
}

// advance fires every timer due at or before now, in due order, and returns
// the number fired. Repeating timers are requeued before their callback so
// the callback may cancel them. A repeating timer overdue by more than one
// interval fires once and skips to its first due time after now; missed
// ticks are dropped.
func (s *scheduler) advance(now time.Time) int {
	fired := 0
	s.firing = true
	defer func() { s.firing = false }()
	for len(s.queue) > 0 && !s.queue[0].at.After(now) {
		t := s.queue[0]
		s.cursor = t.at
		if t.every > 0 {
			t.at = nextTick(t.at, t.every, now)
			s.seq++
			t.seq = s.seq
			heap.Fix(&s.queue, 0)
		} else {
			heap.Pop(&s.queue)
		}
		t.fn()
		fired++
	}
	return fired
}

// nextTick returns the first time after now on the grid at + k*every, k >= 1.
func nextTick(at time.Time, every time.Duration, now time.Time) time.Time {
	next := at.Add(every)
	if next.After(now) {
		return next
	}
	missed := now.Sub(at) / every
	return at.Add((missed + 1) * every)
}

// len returns the number of queued timers.
func (s *scheduler) len() int {
	return len(s.queue)
}
