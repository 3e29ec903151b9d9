package core

// Handle identifies a pending tick request. The zero Handle is never issued,
// so it doubles as "nothing scheduled".
type Handle uint64

type request struct {
	handle Handle
	fn     func()
}

// Scheduler hands out one-shot callbacks that fire on the next tick, the way
// a per-display-refresh primitive does. Callbacks requested while a tick is
// running fire on the following tick, in request order.
type Scheduler struct {
	log     Logger
	next    Handle
	pending []*request
	live    map[Handle]*request
	faults  int
}

// NewScheduler returns an empty scheduler. A nil logger discards output.
func NewScheduler(logger Logger) *Scheduler {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &Scheduler{log: logger, live: map[Handle]*request{}}
}

// RequestTick queues fn for the next tick and returns a handle for CancelTick.
func (s *Scheduler) RequestTick(fn func()) Handle {
	s.next++
	req := &request{handle: s.next, fn: fn}
	s.pending = append(s.pending, req)
	s.live[req.handle] = req
	return req.handle
}

// CancelTick stops a pending callback. It reports whether the handle was
// still pending; cancelling the zero handle or a fired one is a no-op.
func (s *Scheduler) CancelTick(h Handle) bool {
	req, ok := s.live[h]
	if !ok {
		return false
	}
	req.fn = nil
	delete(s.live, h)
	for i, p := range s.pending {
		if p == req {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			break
		}
	}
	return true
}

// Pending returns the number of callbacks waiting for a tick.
func (s *Scheduler) Pending() int { return len(s.live) }

// Faults returns how many callbacks panicked so far.
func (s *Scheduler) Faults() int { return s.faults }

// Tick runs every callback that was pending when it was called and returns
// how many ran. A panicking callback is logged and does not stop the rest.
func (s *Scheduler) Tick() int {
	batch := s.pending
	s.pending = nil
	ran := 0
	for _, req := range batch {
		// Cancelled by an earlier callback of the same batch.
		if req.fn == nil {
			continue
		}
		delete(s.live, req.handle)
		fn := req.fn
		req.fn = nil
		s.run(req.handle, fn)
		ran++
	}
	return ran
}

func (s *Scheduler) run(h Handle, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.faults++
			s.log.Errorf("scheduler", "tick callback %d panicked: %v", h, r)
		}
	}()
	fn()
}
