package glide

import (
	"time"

	"github.com/rs/zerolog"
)

// Shell is the top-level object that owns the input filter, the gesture
// recognizer, the viewport controller and the clock they share. Feed it raw
// events with HandleEvent and call Update once per frame.
type Shell struct {
	surface    Surface
	clock      *ManualClock
	filter     *RawInputFilter
	recognizer *GestureRecognizer
	viewport   *ViewportController

	handlers handlerRegistry
	sink     EventSink

	injectQueue []PointerEvent

	baseLog zerolog.Logger
	log     zerolog.Logger
	debug   bool
	closed  bool
}

// NewShell wires a shell around surface, shown in a viewport of the given
// size. cfg is used as is; call Config.Validate first for untrusted values.
func NewShell(surface Surface, viewport Size, cfg Config) *Shell {
	s := &Shell{surface: surface, clock: &ManualClock{}}
	s.viewport = NewViewportController(surface, viewport, cfg, s.clock)
	s.recognizer = NewGestureRecognizer(s.viewport, cfg)
	s.filter = NewRawInputFilter(s.recognizer)
	s.viewport.SetGestureListener(s.dispatch)
	s.SetLogger(zerolog.Nop())
	return s
}

// Filter returns the shell's raw input filter.
func (s *Shell) Filter() *RawInputFilter { return s.filter }

// Recognizer returns the shell's gesture recognizer.
func (s *Shell) Recognizer() *GestureRecognizer { return s.recognizer }

// Viewport returns the shell's viewport controller.
func (s *Shell) Viewport() *ViewportController { return s.viewport }

// Now returns the shell's clock time.
func (s *Shell) Now() time.Duration { return s.clock.Now() }

// HandleEvent delivers a raw event and reports whether it was consumed.
// Timers due before the event fire first. Wheel events zoom by their delta.
func (s *Shell) HandleEvent(evt PointerEvent) bool {
	if s.closed {
		return false
	}
	s.advance(evt.Time)
	if s.filter.Filter(evt) {
		return true
	}
	if evt.Kind == PointerWheel && s.filter.Enabled() && evt.WheelDelta != 0 {
		s.viewport.ZoomBy(evt.WheelDelta)
		return true
	}
	return false
}

// Update delivers queued injected events stamped at or before now, then fires
// due timers and advances animations.
func (s *Shell) Update(now time.Duration) {
	if s.closed {
		return
	}
	s.processInjectedInput(now)
	s.advance(now)
}

// ContentsSizeChanged forwards a content size notification from the surface.
func (s *Shell) ContentsSizeChanged(size Size) {
	s.viewport.ContentsSizeChanged(size)
}

// SetEventSink sets the optional external event bridge.
func (s *Shell) SetEventSink(sink EventSink) {
	s.sink = sink
}

// Close drops pending input, stops every timer and leaves the surface's tile
// cache producing tiles. The shell ignores input afterwards.
func (s *Shell) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.injectQueue = nil
	s.recognizer.Close()
	s.viewport.Close()
}

// advance moves the clock to t and runs everything that became due.
func (s *Shell) advance(t time.Duration) {
	s.clock.Set(t)
	now := s.clock.Now()
	s.recognizer.Update(now)
	s.viewport.Update(now)
}

func (s *Shell) dispatch(ev GestureEvent) {
	s.logGesture(ev)
	s.handlers.fire(ev)
	if s.sink != nil {
		s.sink.EmitGesture(ev)
	}
}
