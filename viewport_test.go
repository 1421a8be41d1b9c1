package glide

import (
	"math"
	"testing"
)

// countingSurface is a Page that counts scale and tile cache calls.
type countingSurface struct {
	*Page
	scaleSets int
	suspends  int
	resumes   int
	commits   []float64
}

func (s *countingSurface) SetScale(v float64) {
	s.scaleSets++
	s.Page.SetScale(v)
}

func (s *countingSurface) SetTileCacheMode(m CacheMode) {
	if m == CacheSuspended {
		s.suspends++
	} else {
		s.resumes++
	}
	s.Page.SetTileCacheMode(m)
}

func (s *countingSurface) SetTileCacheZoomFactor(f float64) {
	s.commits = append(s.commits, f)
	s.Page.SetTileCacheZoomFactor(f)
}

func newTestViewport(contents Size) (*ViewportController, *countingSurface, *ManualClock) {
	viewport := Size{Width: 800, Height: 600}
	surf := &countingSurface{Page: NewPage(viewport, contents)}
	clk := &ManualClock{}
	return NewViewportController(surf, viewport, DefaultConfig(), clk), surf, clk
}

// at moves the clock to t and updates c.
func at(c *ViewportController, clk *ManualClock, t int) {
	clk.Set(ms(t))
	c.Update(ms(t))
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestSetZoomScaleClamps(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"above max", 15, 10},
		{"below min", 0.001, 0.01},
		{"negative", -3, 0.01},
		{"in range", 2.5, 2.5},
		{"at max", 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, surf, _ := newTestViewport(Size{Width: 800, Height: 3000})
			c.SetZoomScale(tt.value, false)
			if got := c.ZoomScale(); got != tt.want {
				t.Errorf("ZoomScale() = %v, want %v", got, tt.want)
			}
			if got := surf.Scale(); got != tt.want {
				t.Errorf("surface scale = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetZoomScaleIdempotent(t *testing.T) {
	c, surf, clk := newTestViewport(Size{Width: 800, Height: 3000})

	c.SetZoomScale(2, false)
	c.SetZoomScale(2, false)
	if surf.scaleSets != 1 {
		t.Errorf("scale sets = %d, want 1", surf.scaleSets)
	}

	at(c, clk, 499)
	if len(surf.commits) != 0 {
		t.Fatal("committed before commit delay")
	}
	at(c, clk, 500)
	at(c, clk, 5000)
	if len(surf.commits) != 1 || surf.commits[0] != 2 {
		t.Errorf("commits = %v, want [2]", surf.commits)
	}
	if c.CacheMode() != CacheNormal || surf.TileCacheMode() != CacheNormal {
		t.Error("cache not resumed after commit")
	}
}

func TestSetZoomScaleRearmsCommit(t *testing.T) {
	c, surf, clk := newTestViewport(Size{Width: 800, Height: 3000})

	c.SetZoomScale(2, false)
	at(c, clk, 300)
	c.SetZoomScale(2, false)
	at(c, clk, 500)
	if c.CacheMode() != CacheSuspended {
		t.Fatal("cache resumed within commit delay of the last call")
	}
	at(c, clk, 800)
	if c.CacheMode() != CacheNormal || len(surf.commits) != 1 {
		t.Errorf("mode = %v commits = %v", c.CacheMode(), surf.commits)
	}
}

func TestCacheSuspendedOncePerBurst(t *testing.T) {
	c, surf, clk := newTestViewport(Size{Width: 800, Height: 3000})

	for i, v := range []float64{1.5, 2, 2.5, 3} {
		at(c, clk, i*100)
		c.SetZoomScale(v, false)
		if surf.TileCacheMode() != CacheSuspended {
			t.Fatalf("cache normal mid-burst at step %d", i)
		}
	}
	if surf.suspends != 1 || surf.resumes != 0 {
		t.Fatalf("suspends = %d resumes = %d, want 1 and 0", surf.suspends, surf.resumes)
	}

	at(c, clk, 800)
	if surf.resumes != 1 || surf.commits[0] != 3 {
		t.Errorf("resumes = %d commits = %v", surf.resumes, surf.commits)
	}

	// A new burst suspends again.
	c.SetZoomScale(4, false)
	if surf.suspends != 2 {
		t.Errorf("suspends = %d, want 2", surf.suspends)
	}
}

func TestSetZoomScaleInstant(t *testing.T) {
	c, surf, _ := newTestViewport(Size{Width: 800, Height: 3000})
	c.SetZoomScale(3, true)
	if surf.suspends != 0 {
		t.Error("instant commit suspended the cache")
	}
	if len(surf.commits) != 1 || surf.commits[0] != 3 {
		t.Errorf("commits = %v, want [3]", surf.commits)
	}

	// An instant commit ends a pending burst.
	c.SetZoomScale(4, false)
	c.SetZoomScale(5, true)
	if c.CacheMode() != CacheNormal {
		t.Error("cache still suspended after instant commit")
	}
}

func TestContentsSizeAutofit(t *testing.T) {
	c, _, clk := newTestViewport(Size{Width: 800, Height: 3000})

	c.ContentsSizeChanged(Size{Width: 1600, Height: 4000})
	if got := c.ZoomScale(); got != 0.5 {
		t.Errorf("autofit scale = %v, want 0.5", got)
	}

	c.LoadFinished()
	c.ContentsSizeChanged(Size{Width: 400, Height: 4000})
	if got := c.ZoomScale(); got != 0.5 {
		t.Errorf("scale after load = %v, want 0.5 kept", got)
	}

	c.ResetState()
	if !c.Loading() {
		t.Fatal("ResetState did not enter loading")
	}
	c.ContentsSizeChanged(Size{Width: 400, Height: 4000})
	if got := c.ZoomScale(); got != 2 {
		t.Errorf("autofit after reset = %v, want 2", got)
	}

	at(c, clk, 1000)
	if c.CacheMode() != CacheNormal {
		t.Error("cache not resumed after autofit")
	}
}

func TestSetViewportSizeRefitsWhileLoading(t *testing.T) {
	c, _, _ := newTestViewport(Size{Width: 1600, Height: 3000})
	c.SetViewportSize(Size{Width: 400, Height: 600})
	if got := c.ZoomScale(); got != 0.25 {
		t.Errorf("scale = %v, want 0.25", got)
	}
	c.LoadFinished()
	c.SetViewportSize(Size{Width: 800, Height: 600})
	if got := c.ZoomScale(); got != 0.25 {
		t.Errorf("scale after load = %v, want 0.25 kept", got)
	}
}

func TestAnimateZoomScaleTo(t *testing.T) {
	c, surf, clk := newTestViewport(Size{Width: 800, Height: 3000})

	c.AnimateZoomScaleTo(2)
	if c.State() != StateZooming {
		t.Errorf("state = %v, want zooming", c.State())
	}
	if c.CacheMode() != CacheSuspended {
		t.Error("cache not suspended during animation")
	}

	at(c, clk, 200)
	mid := c.ZoomScale()
	if mid <= 1 || mid >= 2 {
		t.Errorf("mid-animation scale = %v, want between 1 and 2", mid)
	}

	at(c, clk, 500)
	if c.ZoomScale() != 2 {
		t.Errorf("final scale = %v, want 2", c.ZoomScale())
	}
	if c.State() != StateIdle {
		t.Errorf("state = %v after animation, want idle", c.State())
	}
	if c.CacheMode() != CacheSuspended || len(surf.commits) != 0 {
		t.Fatal("committed as soon as the animation ended")
	}

	at(c, clk, 1000)
	if c.CacheMode() != CacheNormal || len(surf.commits) != 1 || surf.commits[0] != 2 {
		t.Errorf("mode = %v commits = %v", c.CacheMode(), surf.commits)
	}
	if surf.suspends != 1 {
		t.Errorf("suspends = %d, want 1", surf.suspends)
	}
}

func TestAnimateZoomImmediateWithoutDuration(t *testing.T) {
	viewport := Size{Width: 800, Height: 600}
	page := NewPage(viewport, Size{Width: 800, Height: 3000})
	cfg := DefaultConfig()
	cfg.ZoomAnimDuration = 0
	c := NewViewportController(page, viewport, cfg, &ManualClock{})

	c.AnimateZoomScaleTo(3)
	if c.ZoomScale() != 3 || c.State() != StateIdle {
		t.Errorf("scale = %v state = %v", c.ZoomScale(), c.State())
	}
}

func TestResetStateResumesCache(t *testing.T) {
	c, _, clk := newTestViewport(Size{Width: 800, Height: 3000})
	c.AnimateZoomScaleTo(4)
	at(c, clk, 100)
	c.ResetState()
	if c.State() != StateIdle {
		t.Errorf("state = %v, want idle", c.State())
	}
	at(c, clk, 600)
	if c.CacheMode() != CacheNormal {
		t.Error("cache left suspended after animation was dropped")
	}
}

func TestStartPanStopsAnimation(t *testing.T) {
	c, _, clk := newTestViewport(Size{Width: 800, Height: 3000})
	c.AnimateZoomScaleTo(4)
	at(c, clk, 100)
	scale := c.ZoomScale()

	c.StartPan(PanVertical)
	if !c.IsPanning() || c.PanDirection() != PanVertical {
		t.Fatalf("state = %v direction = %v", c.State(), c.PanDirection())
	}
	at(c, clk, 1000)
	if c.ZoomScale() != scale {
		t.Errorf("scale moved to %v after pan start, want %v", c.ZoomScale(), scale)
	}
	if c.CacheMode() != CacheNormal {
		t.Error("cache left suspended")
	}

	c.StopPan()
	if c.IsPanning() || c.PanDirection() != PanFree {
		t.Error("still panning after StopPan")
	}
}

func TestPanByAxisLock(t *testing.T) {
	viewport := Size{Width: 800, Height: 600}
	page := NewPage(viewport, Size{Width: 1600, Height: 3000})
	cfg := DefaultConfig()
	cfg.AxisLock = true
	c := NewViewportController(page, viewport, cfg, &ManualClock{})
	page.SetPanPos(Vec2{X: 400, Y: 500})

	var pans []Vec2
	c.SetGestureListener(func(ev GestureEvent) {
		if ev.Type == GesturePan {
			pans = append(pans, ev.Delta)
		}
	})

	c.PanBy(Vec2{X: 10, Y: 10})
	if len(pans) != 0 {
		t.Fatal("PanBy outside a pan moved the surface")
	}

	c.StartPan(PanVertical)
	c.PanBy(Vec2{X: 10, Y: 30})
	c.PanBy(Vec2{X: 20, Y: 0})
	c.StopPan()

	if got := page.PanPos(); got != (Vec2{X: 400, Y: 470}) {
		t.Errorf("pan = %v, want (400,470)", got)
	}
	if len(pans) != 1 {
		t.Errorf("pan events = %v, want one", pans)
	}
}

func TestPanByClampedBySurface(t *testing.T) {
	c, surf, _ := newTestViewport(Size{Width: 800, Height: 3000})
	c.StartPan(PanFree)
	c.PanBy(Vec2{X: 0, Y: 500})
	if got := surf.PanPos(); got != (Vec2{}) {
		t.Errorf("pan = %v, want clamped to origin", got)
	}
	c.PanBy(Vec2{X: 0, Y: -10000})
	if got := surf.PanPos(); got.Y != 2400 {
		t.Errorf("pan y = %v, want 2400", got.Y)
	}
}

func TestZoomBy(t *testing.T) {
	c, _, _ := newTestViewport(Size{Width: 800, Height: 3000})
	c.ZoomBy(1)
	if !approx(c.ZoomScale(), 1.25) {
		t.Errorf("scale = %v, want 1.25", c.ZoomScale())
	}
	c.ZoomBy(-2)
	if !approx(c.ZoomScale(), 0.8) {
		t.Errorf("scale = %v, want 0.8", c.ZoomScale())
	}
	c.ZoomBy(100)
	if c.ZoomScale() != 10 {
		t.Errorf("scale = %v, want clamped to 10", c.ZoomScale())
	}
}

func TestDoubleTapZoomToggle(t *testing.T) {
	c, surf, clk := newTestViewport(Size{Width: 800, Height: 3000})
	surf.AddElement(Rect{X: 100, Y: 100, Width: 200, Height: 100})
	surf.AddElement(Rect{X: 0, Y: 0, Width: 800, Height: 3000})
	c.LoadFinished()

	var got []GestureType
	c.SetGestureListener(func(ev GestureEvent) { got = append(got, ev.Type) })

	press := PointerEvent{Kind: PointerDoubleClick, Pos: Vec2{X: 150, Y: 150}, Button: MouseButtonLeft}
	c.DoubleTapGesture(press)
	if len(got) == 0 || got[0] != GestureDoubleTap {
		t.Fatalf("first event = %v, want double tap", got)
	}
	at(c, clk, 1000)

	// Padded to 210 wide, then widened to the 300 minimum around its center.
	want := 800.0 / 300
	if !approx(c.ZoomScale(), want) {
		t.Fatalf("zoomed scale = %v, want %v", c.ZoomScale(), want)
	}
	if p := surf.PanPos(); !approx(p.X, 50) || !approx(p.Y, 150-150/want) {
		t.Errorf("pan = %v, want (50, %v)", p, 150-150/want)
	}

	c.DoubleTapGesture(press)
	at(c, clk, 2000)
	if !approx(c.ZoomScale(), 1) {
		t.Errorf("scale after second double tap = %v, want fit 1", c.ZoomScale())
	}
	if p := surf.PanPos(); p.X != 0 {
		t.Errorf("pan x = %v, want 0", p.X)
	}
	at(c, clk, 3000)
	if c.CacheMode() != CacheNormal {
		t.Error("cache not resumed after double tap zoom")
	}
}

func TestDoubleTapNoTarget(t *testing.T) {
	c, _, _ := newTestViewport(Size{Width: 800, Height: 3000})
	c.DoubleTapGesture(PointerEvent{Kind: PointerDoubleClick, Pos: Vec2{X: 10, Y: 10}})
	if c.State() != StateIdle || c.ZoomScale() != 1 {
		t.Errorf("state = %v scale = %v, want no zoom", c.State(), c.ZoomScale())
	}
}

func TestSaveRestoreState(t *testing.T) {
	c, surf, _ := newTestViewport(Size{Width: 800, Height: 3000})
	c.LoadFinished()
	c.SetZoomScale(2, true)
	surf.SetPanPos(Vec2{X: 100, Y: 200})
	saved := c.SaveState()
	if !saved.Valid() {
		t.Fatal("saved state invalid")
	}

	c.ResetState()
	c.SetZoomScale(1, true)
	surf.SetPanPos(Vec2{})

	c.RestoreState(ViewState{})
	if c.ZoomScale() != 1 {
		t.Error("invalid state was applied")
	}

	c.RestoreState(saved)
	if c.ZoomScale() != 2 || surf.PanPos() != (Vec2{X: 100, Y: 200}) {
		t.Errorf("restored scale = %v pan = %v", c.ZoomScale(), surf.PanPos())
	}
	if c.Loading() {
		t.Error("restore left the loading phase on")
	}
	c.ContentsSizeChanged(Size{Width: 1600, Height: 3000})
	if c.ZoomScale() != 2 {
		t.Error("autofit overrode the restored zoom")
	}
}

func TestViewportCloseResumesCache(t *testing.T) {
	c, surf, _ := newTestViewport(Size{Width: 800, Height: 3000})
	c.AnimateZoomScaleTo(3)
	c.Close()
	if surf.TileCacheMode() != CacheNormal {
		t.Error("Close left the cache suspended")
	}
	if c.State() != StateIdle {
		t.Errorf("state = %v after Close", c.State())
	}
	if n := len(surf.commits); n != 1 {
		t.Errorf("commits = %d, want 1", n)
	}
}

func TestZoomEmitsScale(t *testing.T) {
	c, _, clk := newTestViewport(Size{Width: 800, Height: 3000})
	clk.Set(ms(42))
	var evs []GestureEvent
	c.SetGestureListener(func(ev GestureEvent) { evs = append(evs, ev) })
	c.SetZoomScale(2, false)
	c.SetZoomScale(2, false)
	if len(evs) != 1 {
		t.Fatalf("zoom events = %d, want 1", len(evs))
	}
	if evs[0].Type != GestureZoom || evs[0].Scale != 2 || evs[0].Time != ms(42) {
		t.Errorf("event = %+v", evs[0])
	}
}
