package tetris

import "time"

// maxTicksPerFrame bounds the catch-up after a stalled frame.
const maxTicksPerFrame = 4

// frameScheduler turns the platform's fixed frame rate into engine ticks.
// The engine arms it with a fall interval; Advance reports how many
// intervals elapsed during a frame.
type frameScheduler struct {
	interval time.Duration
	elapsed  time.Duration
	armed    bool
	gen      uint64 // bumped by every Start and Stop
}

// Start arms the scheduler, or reprograms it at a new interval. The
// partial interval accumulated so far is dropped.
func (s *frameScheduler) Start(interval time.Duration) {
	s.interval = interval
	s.elapsed = 0
	s.armed = interval > 0
	s.gen++
}

// Stop disarms the scheduler.
func (s *frameScheduler) Stop() {
	s.armed = false
	s.elapsed = 0
	s.gen++
}

// Armed reports whether ticks are being produced.
func (s *frameScheduler) Armed() bool {
	return s.armed
}

// Advance adds one frame of wall time and returns the number of ticks due.
func (s *frameScheduler) Advance(dt time.Duration) int {
	if !s.armed {
		return 0
	}
	s.elapsed += dt
	due := int(s.elapsed / s.interval)
	s.elapsed -= time.Duration(due) * s.interval
	if due > maxTicksPerFrame {
		due = maxTicksPerFrame
	}
	return due
}

// Run advances one frame and calls tick for each interval due. A tick that
// reprograms or stops the scheduler ends the frame, so the ticks left over
// from the old interval are dropped. Returns the number of ticks run.
func (s *frameScheduler) Run(dt time.Duration, tick func()) int {
	due := s.Advance(dt)
	for i := 0; i < due; i++ {
		gen := s.gen
		tick()
		if s.gen != gen {
			return i + 1
		}
	}
	return due
}
