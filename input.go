package glide

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RawInputFilter is the entry point for raw pointer events from the host.
// It forwards press, move, release and double-click events to a
// GestureRecognizer and leaves every other kind to the host.
type RawInputFilter struct {
	recognizer *GestureRecognizer
	disabled   bool
}

// NewRawInputFilter creates a filter feeding recognizer.
func NewRawInputFilter(recognizer *GestureRecognizer) *RawInputFilter {
	return &RawInputFilter{recognizer: recognizer}
}

// Filter reports whether evt was consumed by gesture recognition.
func (f *RawInputFilter) Filter(evt PointerEvent) bool {
	if f.disabled {
		return false
	}
	switch evt.Kind {
	case PointerPress, PointerMove, PointerRelease, PointerDoubleClick:
		return f.recognizer.FilterEvent(evt)
	}
	return false
}

// SetEnabled turns filtering on or off. Disabling drops any pending click,
// as when the view loses focus.
func (f *RawInputFilter) SetEnabled(enabled bool) {
	if !enabled && !f.disabled {
		f.recognizer.Reset()
	}
	f.disabled = !enabled
}

// Enabled reports whether the filter forwards events.
func (f *RawInputFilter) Enabled() bool { return !f.disabled }

// --- Ebitengine polling ---

// EbitenSource turns ebiten's polled mouse, touch and wheel state into
// PointerEvents, once per frame. The first active touch acts as the primary
// button; further touches are ignored.
type EbitenSource struct {
	mouseDown   bool
	mouseButton MouseButton
	lastMouse   Vec2

	touching  bool
	touchID   ebiten.TouchID
	lastTouch Vec2
	touchBuf  []ebiten.TouchID
}

// NewEbitenSource creates a source with no pointer down.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// Poll reads the current input state and passes the resulting events, all
// stamped with now, to handle.
func (s *EbitenSource) Poll(now time.Duration, handle func(PointerEvent) bool) {
	s.pollTouch(now, handle)
	if !s.touching {
		s.pollMouse(now, handle)
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		handle(PointerEvent{Kind: PointerWheel, Pos: s.lastMouse, Time: now, WheelDelta: wy})
	}
}

func (s *EbitenSource) pollMouse(now time.Duration, handle func(PointerEvent) bool) {
	mx, my := ebiten.CursorPosition()
	pos := Vec2{X: float64(mx), Y: float64(my)}

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		switch {
		case left:
			button = MouseButtonLeft
		case right:
			button = MouseButtonRight
		default:
			button = MouseButtonMiddle
		}
	}

	moved := pos != s.lastMouse
	s.lastMouse = pos

	switch {
	case pressed && !s.mouseDown:
		// Keep the press button for the whole interaction.
		s.mouseDown = true
		s.mouseButton = button
		handle(PointerEvent{Kind: PointerPress, Pos: pos, Time: now, Button: button})
	case !pressed && s.mouseDown:
		s.mouseDown = false
		handle(PointerEvent{Kind: PointerRelease, Pos: pos, Time: now, Button: s.mouseButton})
	case moved:
		handle(PointerEvent{Kind: PointerMove, Pos: pos, Time: now, Button: s.mouseButton})
	}
}

func (s *EbitenSource) pollTouch(now time.Duration, handle func(PointerEvent) bool) {
	s.touchBuf = ebiten.AppendTouchIDs(s.touchBuf[:0])

	if s.touching {
		for _, id := range s.touchBuf {
			if id != s.touchID {
				continue
			}
			tx, ty := ebiten.TouchPosition(id)
			pos := Vec2{X: float64(tx), Y: float64(ty)}
			if pos != s.lastTouch {
				s.lastTouch = pos
				handle(PointerEvent{Kind: PointerMove, Pos: pos, Time: now, Button: MouseButtonLeft})
			}
			return
		}
		// The tracked touch lifted; release where it was last seen.
		s.touching = false
		handle(PointerEvent{Kind: PointerRelease, Pos: s.lastTouch, Time: now, Button: MouseButtonLeft})
		return
	}

	if len(s.touchBuf) == 0 || s.mouseDown {
		return
	}
	s.touching = true
	s.touchID = s.touchBuf[0]
	tx, ty := ebiten.TouchPosition(s.touchID)
	s.lastTouch = Vec2{X: float64(tx), Y: float64(ty)}
	handle(PointerEvent{Kind: PointerPress, Pos: s.lastTouch, Time: now, Button: MouseButtonLeft})
}
