package glide

import "time"

// Clock reports the current time as a duration from an arbitrary epoch.
type Clock interface {
	Now() time.Duration
}

// ManualClock is a Clock that only moves when told to. Shell drives one from
// event timestamps and Update calls so that timers fire deterministically.
type ManualClock struct {
	now time.Duration
}

// Now returns the current clock value.
func (c *ManualClock) Now() time.Duration { return c.now }

// Set moves the clock to t. The clock never moves backwards.
func (c *ManualClock) Set(t time.Duration) {
	if t > c.now {
		c.now = t
	}
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

type systemClock struct {
	start time.Time
}

func (c systemClock) Now() time.Duration { return time.Since(c.start) }

// SystemClock returns a Clock measuring wall time since the call.
func SystemClock() Clock {
	return systemClock{start: time.Now()}
}

// timer is a single-shot deadline. It never fires on its own: the owner polls
// expired from its Update, so a firing is delivered on the caller's goroutine
// between events like any other input.
type timer struct {
	deadline time.Duration
	active   bool
}

// start arms the timer to fire d after now, replacing any earlier deadline.
func (t *timer) start(now, d time.Duration) {
	t.deadline = now + d
	t.active = true
}

func (t *timer) stop() {
	t.active = false
	t.deadline = 0
}

// expired reports whether the timer is due at now, disarming it if so.
func (t *timer) expired(now time.Duration) bool {
	if !t.active || now < t.deadline {
		return false
	}
	t.stop()
	return true
}
