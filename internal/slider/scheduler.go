package slider

import (
	"sync"
	"time"
)

// FrameInterval is the fallback delay when no frame-synchronized source is
// available.
const FrameInterval = time.Second / 60

// FrameSource runs fn at the next display frame.
type FrameSource func(fn func())

// TimerFrameSource defers callbacks by a fixed delay.
func TimerFrameSource(d time.Duration) FrameSource {
	return func(fn func()) { time.AfterFunc(d, fn) }
}

// Scheduler coalesces redraw requests so that at most one frame is in
// flight. Each FrameClient owns one pending slot: a request made while a
// frame is pending replaces that client's callback and leaves other clients'
// callbacks alone.
type Scheduler struct {
	mu        sync.Mutex
	source    FrameSource
	pending   []*FrameClient
	scheduled bool
	stopped   bool
	def       *FrameClient
}

// FrameClient is one caller's slot on a Scheduler.
type FrameClient struct {
	sched  *Scheduler
	fn     func()
	queued bool
	closed bool
}

// NewScheduler creates a scheduler on top of source; a nil source falls back
// to a FrameInterval timer.
func NewScheduler(source FrameSource) *Scheduler {
	if source == nil {
		source = TimerFrameSource(FrameInterval)
	}
	s := &Scheduler{source: source}
	s.def = s.Client()
	return s
}

// Client registers a new pending slot.
func (s *Scheduler) Client() *FrameClient {
	return &FrameClient{sched: s}
}

// Request schedules fn for the next frame on the scheduler's own slot. It
// reports false once the scheduler is stopped.
func (s *Scheduler) Request(fn func()) bool {
	return s.def.Request(fn)
}

// Pending reports whether a frame is scheduled and not yet run.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheduled
}

// Stop turns any in-flight frame into a no-op and rejects later requests
// from every client.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	for _, c := range s.pending {
		c.fn, c.queued = nil, false
	}
	s.pending = nil
	s.mu.Unlock()
}

// Request schedules fn for the next frame, replacing this client's pending
// callback. It reports false once the client is closed or the scheduler is
// stopped.
func (c *FrameClient) Request(fn func()) bool {
	if fn == nil {
		return false
	}
	s := c.sched
	s.mu.Lock()
	if s.stopped || c.closed {
		s.mu.Unlock()
		return false
	}
	c.fn = fn
	if !c.queued {
		c.queued = true
		s.pending = append(s.pending, c)
	}
	if s.scheduled {
		s.mu.Unlock()
		return true
	}
	s.scheduled = true
	source := s.source
	s.mu.Unlock()

	source(s.flush)
	return true
}

// Close drops this client's pending callback and rejects later requests.
// Other clients of the scheduler are unaffected.
func (c *FrameClient) Close() {
	s := c.sched
	s.mu.Lock()
	c.closed = true
	c.fn = nil
	s.mu.Unlock()
}

func (s *Scheduler) flush() {
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, c := range batch {
		// taken one at a time so a Close issued by an earlier callback holds
		s.mu.Lock()
		fn := c.fn
		c.fn, c.queued = nil, false
		live := !s.stopped && !c.closed
		s.mu.Unlock()
		if live && fn != nil {
			fn()
		}
	}

	s.mu.Lock()
	// a request that arrived while callbacks were running gets its own frame
	if len(s.pending) > 0 && !s.stopped {
		source := s.source
		s.mu.Unlock()
		source(s.flush)
		return
	}
	s.scheduled = false
	s.mu.Unlock()
}
