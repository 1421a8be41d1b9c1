package glide

import (
	"encoding/json"
	"fmt"
	"time"
)

// testStep represents a single action in a test script. Times are in
// milliseconds.
type testStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Ms     int     `json:"ms,omitempty"`
	Steps  int     `json:"steps,omitempty"`
	Value  float64 `json:"value,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"press": true, "move": true, "release": true, "click": true,
	"doubleclick": true, "drag": true, "wheel": true, "wait": true,
	"zoom": true, "contents": true, "loaded": true,
}

// contentsResizer is a Surface whose content size can be set, like Page.
type contentsResizer interface {
	SetContentsSize(Size)
}

// TestRunner replays a scripted sequence of pointer input and viewport
// commands against a Shell on a script clock, for automated gesture tests.
type TestRunner struct {
	steps  []testStep
	cursor int
	now    time.Duration
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be run against a Shell.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.cursor >= len(r.steps)
}

// Now returns the script clock.
func (r *TestRunner) Now() time.Duration {
	return r.now
}

// Run executes every remaining step against s. Input steps happen at the
// current script time; "wait" advances the clock by ms and updates the
// shell, letting timers and animations run. A "contents" step resizes the
// surface's content when it supports SetContentsSize; do not also route the
// surface's own size notifications to the shell.
func (r *TestRunner) Run(s *Shell) {
	for !r.Done() {
		r.step(s)
	}
}

// step executes one step.
func (r *TestRunner) step(s *Shell) {
	st := r.steps[r.cursor]
	r.cursor++
	ms := time.Duration(st.Ms) * time.Millisecond

	switch st.Action {
	case "press":
		s.InjectPress(st.X, st.Y, r.now)
	case "move":
		s.InjectMove(st.X, st.Y, r.now)
	case "release":
		s.InjectRelease(st.X, st.Y, r.now)
	case "click":
		s.InjectClick(st.X, st.Y, r.now, ms)
		r.now += ms
	case "doubleclick":
		s.InjectDoubleClick(st.X, st.Y, r.now)
	case "drag":
		s.InjectDrag(st.X, st.Y, st.ToX, st.ToY, r.now, ms, st.Steps)
		r.now += ms
	case "wheel":
		s.InjectWheel(st.X, st.Y, st.Value, r.now)
	case "wait":
		r.now += ms
	case "zoom":
		s.Update(r.now)
		s.Viewport().SetZoomScale(st.Value, false)
	case "contents":
		s.Update(r.now)
		size := Size{Width: st.Width, Height: st.Height}
		if cr, ok := s.surface.(contentsResizer); ok {
			cr.SetContentsSize(size)
		}
		s.ContentsSizeChanged(size)
	case "loaded":
		s.Update(r.now)
		s.Viewport().LoadFinished()
	}
	s.Update(r.now)
}
