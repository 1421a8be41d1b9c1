package glide

// --- Handler registry ---

type gestureHandler struct {
	id uint32
	fn func(GestureEvent)
}

type handlerRegistry struct {
	byType [numGestureTypes][]gestureHandler
	nextID uint32
}

func (reg *handlerRegistry) add(t GestureType, fn func(GestureEvent)) CallbackHandle {
	reg.nextID++
	id := reg.nextID
	reg.byType[t] = append(reg.byType[t], gestureHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: reg, event: t}
}

func (reg *handlerRegistry) fire(ev GestureEvent) {
	for _, h := range reg.byType[ev.Type] {
		h.fn(ev)
	}
}

// CallbackHandle allows removing a registered shell-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event GestureType
}

// Remove unregisters this callback so it no longer fires. It is safe to call
// from inside a callback, including the one being removed; a dispatch already
// in progress still reaches every callback registered when it began.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.event >= numGestureTypes {
		return
	}
	s := h.reg.byType[h.event]
	for i := range s {
		if s[i].id == h.id {
			// Build a new slice; fire may be ranging over the old one.
			kept := make([]gestureHandler, 0, len(s)-1)
			kept = append(kept, s[:i]...)
			h.reg.byType[h.event] = append(kept, s[i+1:]...)
			return
		}
	}
}

// --- Shell-level event registration ---

// OnTap registers a callback for taps. Hosts forward the click to the content here.
func (s *Shell) OnTap(fn func(GestureEvent)) CallbackHandle {
	return s.handlers.add(GestureTap, fn)
}

// OnDoubleTap registers a callback for double taps. It fires before the
// double-tap zoom starts.
func (s *Shell) OnDoubleTap(fn func(GestureEvent)) CallbackHandle {
	return s.handlers.add(GestureDoubleTap, fn)
}

// OnPanStart registers a callback for the start of a pan.
func (s *Shell) OnPanStart(fn func(GestureEvent)) CallbackHandle {
	return s.handlers.add(GesturePanStart, fn)
}

// OnPan registers a callback for pan movement.
func (s *Shell) OnPan(fn func(GestureEvent)) CallbackHandle {
	return s.handlers.add(GesturePan, fn)
}

// OnPanEnd registers a callback for the end of a pan.
func (s *Shell) OnPanEnd(fn func(GestureEvent)) CallbackHandle {
	return s.handlers.add(GesturePanEnd, fn)
}

// OnZoom registers a callback for visible zoom scale changes, including each
// step of an animated zoom.
func (s *Shell) OnZoom(fn func(GestureEvent)) CallbackHandle {
	return s.handlers.add(GestureZoom, fn)
}
