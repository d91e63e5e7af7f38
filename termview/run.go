package termview

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/evergreen"
)

// Tick is the frame interval of Run.
const Tick = time.Second / 30

// Run drives scene on an initialized screen until q or Esc is pressed or
// ctx is done. Space flips toggle; a nil toggle falls back to the scene's.
// It returns ctx.Err() on cancellation and nil on quit.
func Run(ctx context.Context, screen tcell.Screen, scene *evergreen.Scene, toggle *evergreen.Toggle) error {
	if toggle == nil {
		toggle = scene.Toggle()
	}
	rd := NewRenderer(screen, scene)
	dt := Tick.Seconds()

	done := make(chan struct{})
	defer close(done)
	events := pumpEvents(screen, done)

	ticker := time.NewTicker(Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				// Screen finalized.
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
				if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' && toggle != nil {
					toggle.Flip()
				}
			case *tcell.EventResize:
				rd.Resize()
				screen.Sync()
			}

		case <-ticker.C:
			scene.Update(dt)
			rd.Advance(dt, scene.Progress())
			rd.Draw()
			screen.Show()
		}
	}
}

// pumpEvents forwards screen events until done is closed or the screen is
// finalized, then closes the returned channel.
func pumpEvents(screen tcell.Screen, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}
