package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/particlefx/core"
)

// Handle identifies one pending frame request; zero is never issued
type Handle uint64

// Scheduler is the host's request-repaint primitive
// A request fires once; callers re-request from inside the callback to keep running
type Scheduler interface {
	Request(fn func(now time.Time)) Handle
	Cancel(h Handle)
}

type request struct {
	handle Handle
	fn     func(now time.Time)
}

// queue is the one-shot request list shared by schedulers
type queue struct {
	mu      sync.Mutex
	next    Handle
	pending []request
	spare   []request
}

func (q *queue) request(fn func(now time.Time)) Handle {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.next++
	q.pending = append(q.pending, request{handle: q.next, fn: fn})
	return q.next
}

func (q *queue) cancel(h Handle) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, r := range q.pending {
		if r.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// fire runs every request pending at call time; requests made by callbacks wait for the next fire
func (q *queue) fire(now time.Time) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = q.spare[:0]
	q.mu.Unlock()

	for _, r := range batch {
		r.fn(now)
	}

	q.mu.Lock()
	clear(batch)
	q.spare = batch[:0]
	q.mu.Unlock()
	return len(batch)
}

// FrameClock is a manually pumped Scheduler
// Hosts with their own refresh callback (and tests) call Pump once per display frame
type FrameClock struct {
	q queue
}

// NewFrameClock creates an empty clock
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

func (c *FrameClock) Request(fn func(now time.Time)) Handle { return c.q.request(fn) }

func (c *FrameClock) Cancel(h Handle) { c.q.cancel(h) }

// Pending returns the number of requests waiting for the next Pump
func (c *FrameClock) Pending() int { return c.q.len() }

// Pump fires pending requests and returns how many ran
func (c *FrameClock) Pump(now time.Time) int { return c.q.fire(now) }

// TickerScheduler fires requests on a background goroutine at a fixed cadence
// Drift is corrected against deadlines; a late tick never fires twice to catch up
type TickerScheduler struct {
	q        queue
	clock    TimeSource
	interval time.Duration

	ticks atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewTickerScheduler creates a scheduler running at frameRate ticks per second
func NewTickerScheduler(frameRate int, clock TimeSource) *TickerScheduler {
	if frameRate <= 0 {
		frameRate = 60
	}
	if clock == nil {
		clock = NewTimeProvider()
	}
	return &TickerScheduler{
		clock:    clock,
		interval: time.Second / time.Duration(frameRate),
		stopChan: make(chan struct{}),
	}
}

func (s *TickerScheduler) Request(fn func(now time.Time)) Handle { return s.q.request(fn) }

func (s *TickerScheduler) Cancel(h Handle) { s.q.cancel(h) }

// Pending returns the number of requests waiting for the next tick
func (s *TickerScheduler) Pending() int { return s.q.len() }

// Ticks returns the number of ticks processed
func (s *TickerScheduler) Ticks() uint64 { return s.ticks.Load() }

// Interval returns the tick period
func (s *TickerScheduler) Interval() time.Duration { return s.interval }

// Start begins the scheduler loop
func (s *TickerScheduler) Start() {
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		core.Go(s.loop)
	}
}

// Stop halts the scheduler loop; pending requests are dropped
func (s *TickerScheduler) Stop() {
	s.stopOnce.Do(func() {
		if s.running.CompareAndSwap(true, false) {
			close(s.stopChan)
			s.wg.Wait()
		}
	})
}

func (s *TickerScheduler) loop() {
	defer s.wg.Done()

	deadline := s.clock.Now().Add(s.interval)
	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-timer.C:
		}

		now := s.clock.Now()
		s.q.fire(now)
		s.ticks.Add(1)

		deadline = deadline.Add(s.interval)
		if now.Sub(deadline) > s.interval*2 {
			deadline = now.Add(s.interval)
		}
		sleep := deadline.Sub(s.clock.Now())
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
