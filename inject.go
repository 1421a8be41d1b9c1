package glide

import "time"

// InjectPress queues a primary-button press at the given screen coordinates
// and time. Queued events are delivered by Update once the clock reaches
// their time.
func (s *Shell) InjectPress(x, y float64, at time.Duration) {
	s.inject(PointerEvent{Kind: PointerPress, Pos: Vec2{X: x, Y: y}, Time: at, Button: MouseButtonLeft})
}

// InjectMove queues a pointer move with the primary button held. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (s *Shell) InjectMove(x, y float64, at time.Duration) {
	s.inject(PointerEvent{Kind: PointerMove, Pos: Vec2{X: x, Y: y}, Time: at, Button: MouseButtonLeft})
}

// InjectRelease queues a primary-button release.
func (s *Shell) InjectRelease(x, y float64, at time.Duration) {
	s.inject(PointerEvent{Kind: PointerRelease, Pos: Vec2{X: x, Y: y}, Time: at, Button: MouseButtonLeft})
}

// InjectDoubleClick queues a host-detected double click.
func (s *Shell) InjectDoubleClick(x, y float64, at time.Duration) {
	s.inject(PointerEvent{Kind: PointerDoubleClick, Pos: Vec2{X: x, Y: y}, Time: at, Button: MouseButtonLeft})
}

// InjectWheel queues a wheel event of steps notches at the given position.
func (s *Shell) InjectWheel(x, y, steps float64, at time.Duration) {
	s.inject(PointerEvent{Kind: PointerWheel, Pos: Vec2{X: x, Y: y}, Time: at, WheelDelta: steps})
}

// InjectClick queues a press at time at followed by a release hold later at
// the same screen coordinates.
func (s *Shell) InjectClick(x, y float64, at, hold time.Duration) {
	s.InjectPress(x, y, at)
	s.InjectRelease(x, y, at+hold)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY) at time
// at, steps linearly interpolated moves spread over d, and a release at
// (toX, toY) at at+d. Minimum steps is 1.
func (s *Shell) InjectDrag(fromX, fromY, toX, toY float64, at, d time.Duration, steps int) {
	if steps < 1 {
		steps = 1
	}
	s.InjectPress(fromX, fromY, at)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.InjectMove(x, y, at+time.Duration(float64(d)*t))
	}
	s.InjectRelease(toX, toY, at+d)
}

// PendingInjected reports how many injected events have not been delivered yet.
func (s *Shell) PendingInjected() int {
	return len(s.injectQueue)
}

// inject appends evt, keeping the queue ordered by time. Events with equal
// times keep their queue order.
func (s *Shell) inject(evt PointerEvent) {
	i := len(s.injectQueue)
	for i > 0 && s.injectQueue[i-1].Time > evt.Time {
		i--
	}
	s.injectQueue = append(s.injectQueue, PointerEvent{})
	copy(s.injectQueue[i+1:], s.injectQueue[i:])
	s.injectQueue[i] = evt
}

// processInjectedInput delivers queued events stamped at or before now, one
// at a time, firing timers that fall due between them.
func (s *Shell) processInjectedInput(now time.Duration) {
	for len(s.injectQueue) > 0 && s.injectQueue[0].Time <= now {
		evt := s.injectQueue[0]
		copy(s.injectQueue, s.injectQueue[1:])
		s.injectQueue[len(s.injectQueue)-1] = PointerEvent{}
		s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

		s.HandleEvent(evt)
	}
}
