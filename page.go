package glide

import "math"

const defaultMinTargetWidth = 100.0 // content pixels

// Page is an in-memory Surface: a content area of a given size with a list of
// block element rectangles. It clamps panning to the content bounds and
// records the tile cache mode and zoom factor it is told to use. Hosts
// without a real web view, and tests, use it directly.
type Page struct {
	viewport Size
	contents Size
	scale    float64
	pan      Vec2

	// MinTargetWidth is the narrowest element HitTest returns; narrower
	// elements are skipped in favor of an enclosing one.
	MinTargetWidth float64

	elements []Rect

	cacheMode   CacheMode
	cacheFactor float64

	contentsListeners []func(Size)
}

// NewPage creates a page showing contents through a viewport of the given
// size at scale 1.
func NewPage(viewport, contents Size) *Page {
	return &Page{
		viewport:       viewport,
		contents:       contents,
		scale:          1,
		MinTargetWidth: defaultMinTargetWidth,
		cacheFactor:    1,
	}
}

// OnContentsSizeChanged registers fn to be called whenever SetContentsSize
// changes the content size.
func (p *Page) OnContentsSizeChanged(fn func(Size)) {
	p.contentsListeners = append(p.contentsListeners, fn)
}

// SetContentsSize changes the laid-out content size, as when a page finishes
// loading, and notifies listeners.
func (p *Page) SetContentsSize(s Size) {
	if s == p.contents {
		return
	}
	p.contents = s
	p.clampPan()
	for _, fn := range p.contentsListeners {
		fn(s)
	}
}

// SetViewportSize changes the size of the area the page is shown in.
func (p *Page) SetViewportSize(s Size) {
	p.viewport = s
	p.clampPan()
}

// ViewportSize returns the size of the area the page is shown in.
func (p *Page) ViewportSize() Size { return p.viewport }

// AddElement adds a block element in content coordinates.
func (p *Page) AddElement(r Rect) {
	p.elements = append(p.elements, r)
}

// Elements returns the page's block elements. The returned slice MUST NOT be mutated.
func (p *Page) Elements() []Rect { return p.elements }

// ContentsSize returns the size of the content at scale 1.
func (p *Page) ContentsSize() Size { return p.contents }

// Scale returns the current zoom scale.
func (p *Page) Scale() float64 { return p.scale }

// SetScale sets the zoom scale, keeping the pan position within bounds.
// Non-positive scales are ignored.
func (p *Page) SetScale(scale float64) {
	if scale <= 0 {
		return
	}
	p.scale = scale
	p.clampPan()
}

// PanPos returns the content point shown at the top-left of the viewport.
func (p *Page) PanPos() Vec2 { return p.pan }

// SetPanPos scrolls so pos is at the top-left of the viewport, within bounds.
func (p *Page) SetPanPos(pos Vec2) {
	p.pan = pos
	p.clampPan()
}

// PanBy moves the content with the pointer: dragging right reveals content
// to the left.
func (p *Page) PanBy(delta Vec2) {
	p.pan = p.pan.Sub(delta.Scale(1 / p.scale))
	p.clampPan()
}

// ScreenToContent converts a viewport point to content coordinates.
func (p *Page) ScreenToContent(s Vec2) Vec2 {
	return p.pan.Add(s.Scale(1 / p.scale))
}

// ContentToScreen converts a content point to viewport coordinates.
func (p *Page) ContentToScreen(c Vec2) Vec2 {
	return c.Sub(p.pan).Scale(p.scale)
}

// HitTest returns the smallest element containing the content point under s
// that is at least MinTargetWidth wide.
func (p *Page) HitTest(s Vec2) Rect {
	c := p.ScreenToContent(s)
	var best Rect
	bestArea := math.Inf(1)
	for _, r := range p.elements {
		if r.Width < p.MinTargetWidth || !r.Contains(c.X, c.Y) {
			continue
		}
		if a := r.Width * r.Height; a < bestArea {
			best, bestArea = r, a
		}
	}
	return best
}

// SetTileCacheMode records the tile production mode.
func (p *Page) SetTileCacheMode(mode CacheMode) { p.cacheMode = mode }

// TileCacheMode returns the last mode set with SetTileCacheMode.
func (p *Page) TileCacheMode() CacheMode { return p.cacheMode }

// SetTileCacheZoomFactor records the scale tiles are produced at.
func (p *Page) SetTileCacheZoomFactor(factor float64) { p.cacheFactor = factor }

// TileCacheZoomFactor returns the last factor set with SetTileCacheZoomFactor.
func (p *Page) TileCacheZoomFactor() float64 { return p.cacheFactor }

// VisibleBounds returns the content-space rectangle currently in view.
func (p *Page) VisibleBounds() Rect {
	return Rect{
		X:      p.pan.X,
		Y:      p.pan.Y,
		Width:  p.viewport.Width / p.scale,
		Height: p.viewport.Height / p.scale,
	}
}

// clampPan restricts the pan position so the visible area stays within the
// content. Content narrower than the visible area is centered horizontally;
// content shorter than it sticks to the top.
func (p *Page) clampPan() {
	visW := p.viewport.Width / p.scale
	visH := p.viewport.Height / p.scale

	maxX := p.contents.Width - visW
	maxY := p.contents.Height - visH

	if maxX < 0 {
		p.pan.X = maxX / 2
	} else {
		p.pan.X = math.Max(0, math.Min(p.pan.X, maxX))
	}
	if maxY < 0 {
		p.pan.Y = 0
	} else {
		p.pan.Y = math.Max(0, math.Min(p.pan.Y, maxY))
	}
}
