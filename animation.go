package glide

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// tweenGroup animates up to 3 values simultaneously over the same duration.
// Call update(dt) each frame and read values; there is no global animation
// manager.
type tweenGroup struct {
	tweens [3]*gween.Tween
	count  int
	values [3]float64
	done   bool
}

// newTweenGroup creates a group animating each [from, to] pair over duration
// seconds. Extra pairs beyond 3 are ignored.
func newTweenGroup(duration float32, fn ease.TweenFunc, pairs ...[2]float64) *tweenGroup {
	g := &tweenGroup{}
	for _, p := range pairs {
		if g.count == len(g.tweens) {
			break
		}
		g.tweens[g.count] = gween.New(float32(p[0]), float32(p[1]), duration, fn)
		g.values[g.count] = p[0]
		g.count++
	}
	return g
}

// update advances all tweens by dt seconds and reports whether every tween
// has finished.
func (g *tweenGroup) update(dt float32) bool {
	if g.done {
		return true
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.values[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.done = allDone
	return allDone
}
