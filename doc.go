// Package glide recognizes pointer gestures and drives the zoom and pan of a
// large, tile-cached content surface, running under [Ebitengine].
//
// A stream of raw press, move, release and double-click events is classified
// into taps, double taps and pans. Taps are held back for a short dwell
// interval so a following click can turn them into a double tap; movement
// turns a press into a pan at once. Zoom changes are shown immediately but
// the surface's tile cache is only re-tuned once the zoom has been still for
// a moment.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and polls
// mouse, touch and wheel input for you:
//
//	page := glide.NewPage(glide.Size{Width: 800, Height: 600}, glide.Size{Width: 1200, Height: 5000})
//	shell := glide.NewShell(page, page.ViewportSize(), glide.DefaultConfig())
//	shell.OnTap(func(ev glide.GestureEvent) { /* forward the click */ })
//	glide.Run(shell, glide.RunConfig{
//		Title: "Browser", Width: 800, Height: 600,
//		Draw: func(screen *ebiten.Image) { /* draw page */ },
//	})
//
// For full control, feed [Shell.HandleEvent] from your own input source and
// call [Shell.Update] once per frame with the current time.
//
// # Components
//
// [RawInputFilter] is the entry point for raw events. It hands primary-button
// events to a [GestureRecognizer], which reports to a [GestureConsumer].
// [ViewportController] is the consumer that maps gestures onto a [Surface]:
// it clamps the zoom, animates double-tap zooms (via [gween]), fits the page
// width while a page loads and suspends the tile cache during zoom bursts.
// [Page] is an in-memory Surface for hosts without a real content view.
//
// Thresholds live in [Config], which can be loaded from TOML with
// [LoadConfig]. All timing is driven by event timestamps and Update calls, so
// scripted input through [Shell.InjectClick] and friends, or a [TestRunner]
// script, is fully deterministic.
//
// Gestures can be forwarded to an ECS world through an [EventSink]; the
// [Donburi] adapter lives in glide/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package glide
