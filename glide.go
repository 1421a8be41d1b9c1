package glide

import (
	"math"
	"time"
)

// Vec2 is a 2D vector used for positions, offsets and deltas throughout the
// API. Screen positions have their origin at the top-left, Y increasing down.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// exceeds reports whether either component of v is farther than limit from zero.
func (v Vec2) exceeds(limit float64) bool {
	return math.Abs(v.X) > limit || math.Abs(v.Y) > limit
}

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Adjusted moves the left/top edges by (dx1, dy1) and the right/bottom edges
// by (dx2, dy2).
func (r Rect) Adjusted(dx1, dy1, dx2, dy2 float64) Rect {
	return Rect{
		X:      r.X + dx1,
		Y:      r.Y + dy1,
		Width:  r.Width - dx1 + dx2,
		Height: r.Height - dy1 + dy2,
	}
}

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary button; touches report as left
	MouseButtonRight                     // secondary button
	MouseButtonMiddle                    // middle button (scroll wheel click)
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	}
	return "unknown"
}

// PointerKind identifies a raw pointer event delivered by the host.
type PointerKind uint8

const (
	PointerPress       PointerKind = iota // button pressed
	PointerMove                           // pointer moved, button held or not
	PointerRelease                        // button released
	PointerDoubleClick                    // host-detected double click
	PointerWheel                          // wheel scrolled; WheelDelta holds the steps
)

func (k PointerKind) String() string {
	switch k {
	case PointerPress:
		return "press"
	case PointerMove:
		return "move"
	case PointerRelease:
		return "release"
	case PointerDoubleClick:
		return "doubleclick"
	case PointerWheel:
		return "wheel"
	}
	return "unknown"
}

// PointerEvent is a single raw input event in screen coordinates. Time is
// measured from an arbitrary host epoch and must not go backwards.
type PointerEvent struct {
	Kind       PointerKind
	Pos        Vec2
	Time       time.Duration
	Button     MouseButton
	WheelDelta float64
}

// GestureType identifies a semantic gesture reported by the engine.
type GestureType uint8

const (
	GestureTap       GestureType = iota // single click resolved after the dwell interval
	GestureDoubleTap                    // double click, host-detected or synthesized
	GesturePanStart                     // pointer movement promoted a press into a pan
	GesturePan                          // pan moved by Delta
	GesturePanEnd                       // pan finished on release
	GestureZoom                         // visible zoom scale changed to Scale
	numGestureTypes
)

func (g GestureType) String() string {
	switch g {
	case GestureTap:
		return "tap"
	case GestureDoubleTap:
		return "doubletap"
	case GesturePanStart:
		return "panstart"
	case GesturePan:
		return "pan"
	case GesturePanEnd:
		return "panend"
	case GestureZoom:
		return "zoom"
	}
	return "unknown"
}

// PanDirection is the axis a pan was started along. When axis locking is
// enabled, deltas off the locked axis are dropped.
type PanDirection uint8

const (
	PanFree       PanDirection = iota // no dominant axis
	PanHorizontal                     // started mostly along X
	PanVertical                       // started mostly along Y
)

func (d PanDirection) String() string {
	switch d {
	case PanFree:
		return "free"
	case PanHorizontal:
		return "horizontal"
	case PanVertical:
		return "vertical"
	}
	return "unknown"
}

// InteractionState is the exclusive interaction mode of a ViewportController.
type InteractionState uint8

const (
	StateIdle    InteractionState = iota // no gesture or animation in progress
	StatePanning                         // a pan gesture is active
	StateZooming                         // a zoom animation is running
)

func (s InteractionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePanning:
		return "panning"
	case StateZooming:
		return "zooming"
	}
	return "unknown"
}

// CacheMode is the tile production mode of a surface's rendering cache.
type CacheMode uint8

const (
	CacheNormal    CacheMode = iota // tiles are created and refreshed as usual
	CacheSuspended                  // no new tiles are created; existing ones are scaled
)

func (m CacheMode) String() string {
	if m == CacheSuspended {
		return "suspended"
	}
	return "normal"
}

// GestureEvent carries a recognized gesture to handlers and the EventSink.
type GestureEvent struct {
	Type GestureType
	// Pos is the press position for taps and double taps.
	Pos Vec2
	// Delta is the pan movement since the previous pan event.
	Delta Vec2
	// Scale is the zoom scale after the gesture.
	Scale float64
	// Direction is the axis a pan started along.
	Direction PanDirection
	Time      time.Duration
}

// EventSink is the interface for optional integration with an external event
// system. When set on a Shell, every gesture is forwarded to it.
type EventSink interface {
	EmitGesture(event GestureEvent)
}
