package glide

import (
	"math"
	"time"

	"github.com/rs/zerolog"
)

// GestureConsumer receives the gestures a GestureRecognizer classifies.
// ViewportController is the production implementation.
type GestureConsumer interface {
	IsPanning() bool
	StartPan(dir PanDirection)
	PanBy(delta Vec2)
	StopPan()
	TapGesture(press, release PointerEvent)
	DoubleTapGesture(press PointerEvent)
}

// pendingPress is a click held back until it is known whether it is a tap,
// the first half of a double tap, or the start of a pan.
type pendingPress struct {
	press    PointerEvent
	release  PointerEvent
	released bool

	// second is the press of a potential double tap, down while released is set.
	second     PointerEvent
	secondDown bool
}

// GestureRecognizer turns primary-button pointer events into taps, double
// taps and pans. Clicks are delayed by Config.PressDelay so a following click
// can turn them into a double tap; movement past Config.PanStartDistance, or
// any movement after Config.ClickTimeout, turns a press into a pan at once.
type GestureRecognizer struct {
	consumer GestureConsumer
	cfg      Config
	log      zerolog.Logger

	pending *pendingPress
	dwell   timer
	anchor  Vec2
}

// NewGestureRecognizer creates a recognizer reporting to consumer.
func NewGestureRecognizer(consumer GestureConsumer, cfg Config) *GestureRecognizer {
	return &GestureRecognizer{
		consumer: consumer,
		cfg:      cfg,
		log:      zerolog.Nop(),
	}
}

// SetLogger sets the logger used to trace events at debug level.
func (r *GestureRecognizer) SetLogger(l zerolog.Logger) {
	r.log = l
}

// FilterEvent classifies evt and reports whether it was consumed. Press,
// move, release and double-click events are handled; other kinds are not.
func (r *GestureRecognizer) FilterEvent(evt PointerEvent) bool {
	switch evt.Kind {
	case PointerDoubleClick:
		return r.doubleClick(evt)
	case PointerMove:
		return r.move(evt)
	case PointerPress:
		return r.press(evt)
	case PointerRelease:
		return r.release(evt)
	}
	return false
}

// Update fires the dwell timer if it is due at now. A click whose dwell
// interval passed with no second click is reported as a tap.
func (r *GestureRecognizer) Update(now time.Duration) {
	if !r.dwell.expired(now) {
		return
	}
	p := r.pending
	// A held press or a held second click is resolved by its release.
	if p == nil || !p.released || p.secondDown {
		return
	}
	r.flushTap()
}

// Pending reports whether a press is waiting to be classified.
func (r *GestureRecognizer) Pending() bool {
	return r.pending != nil
}

// Reset drops the pan anchor and any pending click without reporting it.
// A pan in progress is ended, since its release will not arrive.
func (r *GestureRecognizer) Reset() {
	if r.consumer.IsPanning() {
		r.consumer.StopPan()
	}
	r.anchor = Vec2{}
	r.clearPending()
}

// Close releases the pending click and stops the dwell timer.
func (r *GestureRecognizer) Close() {
	r.Reset()
}

func (r *GestureRecognizer) press(evt PointerEvent) bool {
	r.trace(evt)
	if evt.Button != MouseButtonLeft {
		return false
	}
	if r.consumer.IsPanning() {
		return true
	}

	p := r.pending
	switch {
	case p == nil:
		r.capturePress(evt)
	case p.released && !p.secondDown:
		p.second = evt
		p.secondDown = true
	}
	return true
}

func (r *GestureRecognizer) move(evt PointerEvent) bool {
	panning := r.consumer.IsPanning()

	if !panning && r.pending != nil {
		p := r.pending
		switch {
		case !p.released:
			d := evt.Pos.Sub(p.press.Pos)
			if d.exceeds(r.cfg.PanStartDistance) || evt.Time-p.press.Time > r.cfg.ClickTimeout.Std() {
				r.trace(evt)
				r.startPan(evt, d)
				return true
			}
		case p.secondDown:
			// Dragging on the second click: the first click stands on its own.
			d := evt.Pos.Sub(p.second.Pos)
			if d.exceeds(r.cfg.PanStartDistance) {
				r.trace(evt)
				r.flushTap()
				r.startPan(evt, d)
				return true
			}
		}
	}

	if panning {
		r.clearPending()
		r.consumer.PanBy(evt.Pos.Sub(r.anchor))
		r.anchor = evt.Pos
		return true
	}
	return r.pending != nil
}

func (r *GestureRecognizer) release(evt PointerEvent) bool {
	r.trace(evt)
	if evt.Button != MouseButtonLeft {
		return false
	}

	if r.consumer.IsPanning() {
		r.consumer.StopPan()
		r.anchor = Vec2{}
		return true
	}

	p := r.pending
	if p == nil {
		return false
	}
	if !p.released {
		r.captureRelease(evt)
		return true
	}

	// A second release while the first click is still pending. The host
	// sometimes loses the double click when the pointer moves a little in
	// between, so synthesize it here within DoubleTapSlop of the first press.
	if !evt.Pos.Sub(p.press.Pos).exceeds(r.cfg.DoubleTapSlop) {
		press := p.press
		r.clearPending()
		r.handleDoubleTap(press)
		return true
	}

	second := p.second
	if !p.secondDown {
		second = evt
		second.Kind = PointerPress
	}
	r.flushTap()
	r.capturePress(second)
	r.captureRelease(evt)
	return true
}

func (r *GestureRecognizer) doubleClick(evt PointerEvent) bool {
	r.trace(evt)
	press := evt
	if r.pending != nil {
		press.Pos = r.pending.press.Pos
	}
	r.clearPending()
	r.handleDoubleTap(press)
	return true
}

// handleDoubleTap reports a double tap at press. Synthesized double taps come
// through here directly instead of being re-sent through FilterEvent.
func (r *GestureRecognizer) handleDoubleTap(press PointerEvent) {
	press.Kind = PointerDoubleClick
	r.log.Debug().Float64("x", press.Pos.X).Float64("y", press.Pos.Y).Msg("double tap")
	r.consumer.DoubleTapGesture(press)
}

func (r *GestureRecognizer) capturePress(evt PointerEvent) {
	r.pending = &pendingPress{press: evt}
	r.dwell.start(evt.Time, r.cfg.PressDelay.Std())
}

// captureRelease stores the release of the pending press. Press coordinates
// are more reliable than release coordinates, so the release takes them.
func (r *GestureRecognizer) captureRelease(evt PointerEvent) {
	rel := evt
	rel.Pos = r.pending.press.Pos
	r.pending.release = rel
	r.pending.released = true
	r.dwell.start(evt.Time, r.cfg.PressDelay.Std())
}

func (r *GestureRecognizer) flushTap() {
	p := r.pending
	r.clearPending()
	r.log.Debug().Float64("x", p.press.Pos.X).Float64("y", p.press.Pos.Y).Msg("tap")
	r.consumer.TapGesture(p.press, p.release)
}

// startPan promotes the pending press to a pan anchored at evt. The press is
// dropped, never reported as a tap. The anchor is the current position, not
// the press position, to avoid an initial jump.
func (r *GestureRecognizer) startPan(evt PointerEvent, d Vec2) {
	r.clearPending()
	r.consumer.StartPan(r.panDirection(d))
	r.anchor = evt.Pos
}

func (r *GestureRecognizer) panDirection(d Vec2) PanDirection {
	ax, ay := math.Abs(d.X), math.Abs(d.Y)
	switch {
	case ax > r.cfg.AxisLockRatio*ay:
		return PanHorizontal
	case ay > r.cfg.AxisLockRatio*ax:
		return PanVertical
	}
	return PanFree
}

func (r *GestureRecognizer) clearPending() {
	r.dwell.stop()
	r.pending = nil
}

func (r *GestureRecognizer) trace(evt PointerEvent) {
	r.log.Debug().
		Stringer("kind", evt.Kind).
		Stringer("button", evt.Button).
		Float64("x", evt.Pos.X).
		Float64("y", evt.Pos.Y).
		Dur("t", evt.Time).
		Msg("pointer")
}
