package glide

import "github.com/rs/zerolog"

// SetLogger sets the logger for the shell and its components. Output is
// limited to info level and above unless debug mode is on.
func (s *Shell) SetLogger(l zerolog.Logger) {
	s.baseLog = l
	s.applyLogLevel()
}

// SetDebugMode enables or disables debug mode. When enabled, every raw
// event, gesture, zoom change and tile cache transition is logged at debug
// level.
func (s *Shell) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.applyLogLevel()
}

func (s *Shell) applyLogLevel() {
	level := zerolog.InfoLevel
	if s.debug {
		level = zerolog.DebugLevel
	}
	s.log = s.baseLog.Level(level)
	s.recognizer.SetLogger(s.log.With().Str("component", "gesture").Logger())
	s.viewport.SetLogger(s.log.With().Str("component", "viewport").Logger())
}

func (s *Shell) logGesture(ev GestureEvent) {
	e := s.log.Debug()
	if !e.Enabled() {
		return
	}
	e = e.Stringer("type", ev.Type).Float64("scale", ev.Scale).Dur("t", ev.Time)
	switch ev.Type {
	case GestureTap, GestureDoubleTap:
		e = e.Float64("x", ev.Pos.X).Float64("y", ev.Pos.Y)
	case GesturePan:
		e = e.Float64("dx", ev.Delta.X).Float64("dy", ev.Delta.Y)
	case GesturePanStart, GesturePanEnd:
		e = e.Stringer("direction", ev.Direction)
	}
	e.Msg("gesture")
}
