package glide

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const overlayRefresh = 500 * time.Millisecond

// statusOverlay displays FPS and the viewport's zoom, interaction state and
// tile cache mode. The text is redrawn every overlayRefresh.
type statusOverlay struct {
	img         *ebiten.Image
	lastRefresh time.Duration
	drawn       bool
}

func newStatusOverlay() *statusOverlay {
	// 160x64 is enough for four lines of debug text.
	return &statusOverlay{img: ebiten.NewImage(160, 64)}
}

func (o *statusOverlay) update(now time.Duration, v *ViewportController) {
	if o.drawn && now-o.lastRefresh < overlayRefresh {
		return
	}
	o.lastRefresh = now
	o.drawn = true

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, statusText(ebiten.ActualFPS(), v))
}

func (o *statusOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}

func statusText(fps float64, v *ViewportController) string {
	return fmt.Sprintf("FPS: %.1f\nZoom: %.2f\nState: %s\nCache: %s",
		fps, v.ZoomScale(), v.State(), v.CacheMode())
}
