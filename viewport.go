package glide

import (
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/tanema/gween/ease"
)

// zoomEpsilon is the relative margin above the fit-to-width scale at which
// the view counts as zoomed in.
const zoomEpsilon = 0.01

// zoomAnim holds an active animated zoom, optionally with a pan to follow.
// tweens animates the scale, then pan X and Y when hasPan is set.
type zoomAnim struct {
	tweens    *tweenGroup
	target    float64
	panTarget Vec2
	hasPan    bool
}

// ViewportController maps gestures onto the zoom and pan of a Surface. It
// keeps the surface's tile cache suspended while the zoom is changing and
// commits the resting zoom to the cache Config.CommitDelay after the last
// change.
type ViewportController struct {
	surface Surface
	cfg     Config
	clock   Clock
	log     zerolog.Logger

	state  InteractionState
	panDir PanDirection

	scale    float64
	viewport Size
	// initialLoad is set while a page is loading; content size changes refit
	// the zoom to the page width only then.
	initialLoad bool

	cache       CacheMode
	commitTimer timer

	anim       *zoomAnim
	lastUpdate time.Duration

	listener func(GestureEvent)
}

// NewViewportController creates a controller for surface shown in a viewport
// of the given size. The controller starts in the initial-load phase.
func NewViewportController(surface Surface, viewport Size, cfg Config, clock Clock) *ViewportController {
	c := &ViewportController{
		surface:     surface,
		cfg:         cfg,
		clock:       clock,
		log:         zerolog.Nop(),
		viewport:    viewport,
		initialLoad: true,
		scale:       cfg.clampZoom(surface.Scale()),
		lastUpdate:  clock.Now(),
	}
	if c.scale != surface.Scale() {
		surface.SetScale(c.scale)
	}
	return c
}

// SetLogger sets the logger used to trace zoom and cache changes at debug level.
func (c *ViewportController) SetLogger(l zerolog.Logger) {
	c.log = l
}

// SetGestureListener sets the function receiving every gesture the
// controller acts on. Shell uses it to feed its handlers.
func (c *ViewportController) SetGestureListener(fn func(GestureEvent)) {
	c.listener = fn
}

// State returns the current interaction state.
func (c *ViewportController) State() InteractionState { return c.state }

// PanDirection returns the axis the current pan started along.
func (c *ViewportController) PanDirection() PanDirection { return c.panDir }

// CacheMode returns the tile cache mode the controller last set.
func (c *ViewportController) CacheMode() CacheMode { return c.cache }

// ZoomScale returns the current zoom scale, always within [MinZoom, MaxZoom].
func (c *ViewportController) ZoomScale() float64 { return c.scale }

// SetZoomScale clamps value into the zoom range and shows it on the surface
// at once. With commitInstantly the tile cache is tuned to the new scale now;
// otherwise tile production is suspended and the commit timer re-armed, even
// when the scale did not change, so the cache resumes CommitDelay after the
// last call.
func (c *ViewportController) SetZoomScale(value float64, commitInstantly bool) {
	c.stopAnim()
	c.applyScale(value)

	if commitInstantly {
		c.commitZoom()
		return
	}
	c.suspendCache()
	c.commitTimer.start(c.clock.Now(), c.cfg.CommitDelay.Std())
}

// AnimateZoomScaleTo zooms smoothly to target over Config.ZoomAnimDuration,
// then commits like SetZoomScale. The tile cache stays suspended while the
// animation runs.
func (c *ViewportController) AnimateZoomScaleTo(target float64) {
	c.animateTo(target, nil)
}

// ZoomBy changes the scale by Config.ZoomStepFactor raised to steps.
// Positive steps zoom in.
func (c *ViewportController) ZoomBy(steps float64) {
	if steps == 0 {
		return
	}
	c.SetZoomScale(c.scale*math.Pow(c.cfg.ZoomStepFactor, steps), false)
}

// Update advances a running zoom animation and fires the commit timer if it
// is due at now.
func (c *ViewportController) Update(now time.Duration) {
	if c.anim != nil {
		dt := now - c.lastUpdate
		if dt < 0 {
			dt = 0
		}
		c.stepAnim(float32(dt.Seconds()))
	}
	c.lastUpdate = now

	if c.commitTimer.expired(now) {
		c.commitZoom()
	}
}

// ContentsSizeChanged is called by the surface whenever the content's
// laid-out size changes. While the page is loading the zoom is refit to the
// page width; afterwards a size change keeps the user's zoom.
func (c *ViewportController) ContentsSizeChanged(size Size) {
	c.log.Debug().Float64("w", size.Width).Float64("h", size.Height).Bool("loading", c.initialLoad).Msg("contents size")
	if c.initialLoad {
		c.SetZoomScale(c.fitScale(size), false)
	}
}

// SetViewportSize changes the size of the viewport. While the page is
// loading the zoom is refit to the page width.
func (c *ViewportController) SetViewportSize(size Size) {
	c.viewport = size
	if c.initialLoad {
		c.SetZoomScale(c.fitScale(c.surface.ContentsSize()), false)
	}
}

// ViewportSize returns the size of the viewport.
func (c *ViewportController) ViewportSize() Size { return c.viewport }

// ResetState enters the initial-load phase for a new page. Any running zoom
// animation is dropped; the zoom is refit by the next content size change.
func (c *ViewportController) ResetState() {
	c.stopAnim()
	c.state = StateIdle
	c.panDir = PanFree
	c.initialLoad = true
}

// LoadFinished ends the initial-load phase.
func (c *ViewportController) LoadFinished() {
	c.initialLoad = false
}

// Loading reports whether the controller is in the initial-load phase.
func (c *ViewportController) Loading() bool { return c.initialLoad }

// SaveState returns the current zoom and pan position.
func (c *ViewportController) SaveState() ViewState {
	return ViewState{Zoom: c.scale, Pan: c.surface.PanPos(), ok: true}
}

// RestoreState applies a saved view. Invalid states are ignored. A restored
// view ends the initial-load phase so autofit does not override it.
func (c *ViewportController) RestoreState(s ViewState) {
	if !s.Valid() {
		return
	}
	c.initialLoad = false
	c.SetZoomScale(s.Zoom, false)
	c.surface.SetPanPos(s.Pan)
}

// IsPanning reports whether a pan gesture is active.
func (c *ViewportController) IsPanning() bool {
	return c.state == StatePanning
}

// StartPan enters the panning state. A running zoom animation stops at its
// current scale.
func (c *ViewportController) StartPan(dir PanDirection) {
	if c.anim != nil {
		c.SetZoomScale(c.scale, false)
	}
	c.state = StatePanning
	c.panDir = dir
	c.emit(GestureEvent{Type: GesturePanStart, Direction: dir})
}

// PanBy hands a screen-space delta to the surface, which clamps it. Zero
// deltas, and deltas outside a pan, are ignored.
func (c *ViewportController) PanBy(delta Vec2) {
	if c.state != StatePanning {
		return
	}
	if c.cfg.AxisLock {
		switch c.panDir {
		case PanHorizontal:
			delta.Y = 0
		case PanVertical:
			delta.X = 0
		}
	}
	if delta.IsZero() {
		return
	}
	c.surface.PanBy(delta)
	c.emit(GestureEvent{Type: GesturePan, Delta: delta, Direction: c.panDir})
}

// StopPan leaves the panning state.
func (c *ViewportController) StopPan() {
	if c.state != StatePanning {
		return
	}
	dir := c.panDir
	c.state = StateIdle
	c.panDir = PanFree
	c.emit(GestureEvent{Type: GesturePanEnd, Direction: dir})
}

// TapGesture reports a click to the host so it can forward it to the content.
func (c *ViewportController) TapGesture(press, release PointerEvent) {
	c.emit(GestureEvent{Type: GestureTap, Pos: press.Pos})
}

// DoubleTapGesture toggles between fitting the page width and zooming in on
// the block element under the press.
func (c *ViewportController) DoubleTapGesture(press PointerEvent) {
	c.emit(GestureEvent{Type: GestureDoubleTap, Pos: press.Pos})
	c.zoomToggle(press.Pos)
}

// Close stops the animation and timers and leaves the tile cache producing
// tiles at the current scale.
func (c *ViewportController) Close() {
	c.stopAnim()
	c.state = StateIdle
	c.commitZoom()
}

func (c *ViewportController) zoomToggle(p Vec2) {
	fit := c.fitScale(c.surface.ContentsSize())
	focus := c.toContent(p)

	if c.scale > fit*(1+zoomEpsilon) {
		c.animateTo(fit, &Vec2{X: 0, Y: focus.Y - p.Y/fit})
		return
	}

	r := c.surface.HitTest(p)
	if r.Empty() {
		return
	}
	pad := c.cfg.ZoomTargetPadding
	r = r.Adjusted(-pad, -pad, pad, pad)
	if over := r.Width - c.cfg.ZoomTargetMinWidth; over < 0 {
		r = r.Adjusted(over/2, 0, -over/2, 0)
	}
	target := c.cfg.clampZoom(c.viewport.Width / r.Width)
	c.animateTo(target, &Vec2{X: r.X, Y: focus.Y - p.Y/target})
}

// fitScale is the scale at which contents exactly fill the viewport width.
func (c *ViewportController) fitScale(contents Size) float64 {
	if contents.Width <= 0 {
		return c.cfg.clampZoom(1)
	}
	return c.cfg.clampZoom(c.viewport.Width / contents.Width)
}

func (c *ViewportController) toContent(p Vec2) Vec2 {
	return c.surface.PanPos().Add(p.Scale(1 / c.scale))
}

func (c *ViewportController) animateTo(target float64, pan *Vec2) {
	target = c.cfg.clampZoom(target)
	dur := float32(c.cfg.ZoomAnimDuration.Std().Seconds())
	if dur <= 0 {
		c.SetZoomScale(target, false)
		if pan != nil {
			c.surface.SetPanPos(*pan)
		}
		return
	}

	c.stopAnim()
	a := &zoomAnim{target: target}
	pairs := [][2]float64{{c.scale, target}}
	if pan != nil {
		from := c.surface.PanPos()
		pairs = append(pairs, [2]float64{from.X, pan.X}, [2]float64{from.Y, pan.Y})
		a.panTarget = *pan
		a.hasPan = true
	}
	a.tweens = newTweenGroup(dur, ease.OutQuad, pairs...)
	c.anim = a
	c.lastUpdate = c.clock.Now()
	if c.state != StatePanning {
		c.state = StateZooming
	}
	c.suspendCache()
	c.commitTimer.stop()
	c.log.Debug().Float64("from", c.scale).Float64("to", target).Msg("zoom animation")
}

func (c *ViewportController) stepAnim(dt float32) {
	a := c.anim
	if !a.tweens.update(dt) {
		v := a.tweens.values
		c.applyScale(v[0])
		if a.hasPan {
			c.surface.SetPanPos(Vec2{X: v[1], Y: v[2]})
		}
		return
	}

	c.anim = nil
	if c.state == StateZooming {
		c.state = StateIdle
	}
	c.SetZoomScale(a.target, false)
	if a.hasPan {
		c.surface.SetPanPos(a.panTarget)
	}
}

// stopAnim drops a running animation, leaving the scale where it got to. The
// commit timer is re-armed so the suspended cache still resumes.
func (c *ViewportController) stopAnim() {
	if c.anim == nil {
		return
	}
	c.anim = nil
	if c.state == StateZooming {
		c.state = StateIdle
	}
	c.commitTimer.start(c.clock.Now(), c.cfg.CommitDelay.Std())
}

// applyScale shows value on the surface without touching the tile cache.
func (c *ViewportController) applyScale(value float64) {
	value = c.cfg.clampZoom(value)
	if value == c.scale {
		return
	}
	c.scale = value
	c.surface.SetScale(value)
	c.emit(GestureEvent{Type: GestureZoom})
}

func (c *ViewportController) suspendCache() {
	if c.cache == CacheSuspended {
		return
	}
	c.cache = CacheSuspended
	c.surface.SetTileCacheMode(CacheSuspended)
	c.log.Debug().Msg("tile cache suspended")
}

// commitZoom tunes the tile cache to the current scale and resumes tile
// production.
func (c *ViewportController) commitZoom() {
	c.commitTimer.stop()
	c.surface.SetTileCacheZoomFactor(c.scale)
	c.surface.SetTileCacheMode(CacheNormal)
	c.cache = CacheNormal
	c.log.Debug().Float64("scale", c.scale).Msg("zoom committed")
}

func (c *ViewportController) emit(ev GestureEvent) {
	if c.listener == nil {
		return
	}
	ev.Scale = c.scale
	ev.Time = c.clock.Now()
	c.listener(ev)
}
