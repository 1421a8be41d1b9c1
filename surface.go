package glide

// Surface is the embedded content view a ViewportController drives: a large,
// lazily rendered page behind a tile cache. All calls are synchronous and must
// not block.
type Surface interface {
	// ContentsSize is the laid-out size of the content in content pixels.
	ContentsSize() Size
	// Scale is the current ratio of viewport pixels to content pixels.
	Scale() float64
	SetScale(scale float64)

	// PanPos is the content position shown at the viewport's top-left.
	PanPos() Vec2
	// SetPanPos scrolls to p, clamped to what the surface is willing to show.
	SetPanPos(p Vec2)
	// PanBy moves the content by a screen-space delta, clamped like SetPanPos.
	PanBy(delta Vec2)

	// HitTest returns the bounds, in content pixels, of the block element
	// under screen point p that is worth zooming to, or an empty Rect.
	HitTest(p Vec2) Rect

	SetTileCacheMode(mode CacheMode)
	// SetTileCacheZoomFactor tunes the resolution new tiles are rendered at.
	SetTileCacheZoomFactor(factor float64)
}

// ViewState is a zoom scale and pan position saved with a navigation entry so
// returning to the entry restores the view. The zero value is invalid.
type ViewState struct {
	Zoom float64
	Pan  Vec2
	ok   bool
}

// Valid reports whether s was produced by ViewportController.SaveState.
func (s ViewState) Valid() bool {
	return s.ok && s.Zoom > 0
}
