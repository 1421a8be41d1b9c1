package glide

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowStatus draws FPS, zoom, interaction state and tile cache mode in
	// the top-left corner.
	ShowStatus bool
	// Draw renders the surface each frame.
	Draw func(screen *ebiten.Image)
	// OnResize is called when the window size changes, after the shell's
	// viewport has been resized.
	OnResize func(Size)
}

// runGame adapts a Shell to ebiten.Game.
type runGame struct {
	shell  *Shell
	source *EbitenSource
	clock  Clock
	cfg    RunConfig
	size   Size
	status *statusOverlay
	now    time.Duration
}

func (g *runGame) Update() error {
	now := g.clock.Now()
	g.now = now
	g.source.Poll(now, g.shell.HandleEvent)
	g.shell.Update(now)
	return nil
}

func (g *runGame) Draw(screen *ebiten.Image) {
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen)
	}
	if g.status != nil {
		g.status.update(g.now, g.shell.Viewport())
		g.status.draw(screen)
	}
}

func (g *runGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := Size{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	if size != g.size {
		g.size = size
		g.shell.Viewport().SetViewportSize(size)
		if g.cfg.OnResize != nil {
			g.cfg.OnResize(size)
		}
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and drives shell from ebiten's mouse, touch and wheel
// input until the window is closed. The shell is closed on return.
func Run(shell *Shell, cfg RunConfig) error {
	defer shell.Close()

	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 800
	}
	if h <= 0 {
		h = 600
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &runGame{
		shell:  shell,
		source: NewEbitenSource(),
		clock:  SystemClock(),
		cfg:    cfg,
	}
	if cfg.ShowStatus {
		g.status = newStatusOverlay()
	}
	return ebiten.RunGame(g)
}
