package glide

import (
	"strings"
	"testing"
)

func TestStatusText(t *testing.T) {
	s, _ := newTestShell()
	s.Viewport().SetZoomScale(2, false)

	got := statusText(60, s.Viewport())
	for _, want := range []string{"FPS: 60.0", "Zoom: 2.00", "State: idle", "Cache: suspended"} {
		if !strings.Contains(got, want) {
			t.Errorf("status %q missing %q", got, want)
		}
	}
}
