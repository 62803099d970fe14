package app

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/crux/internal/animation"
)

// Post hands an input event to the frame goroutine. ErrQuit from the
// handler ends Run; other errors are logged.
func (a *Application) Post(ev tcell.Event) {
	a.sched.RequestFrame(func(time.Time) {
		err := a.HandleEvent(ev)
		switch {
		case errors.Is(err, ErrQuit):
			a.Quit()
		case err != nil:
			a.logger.WithComponent("input").Error("%v", err)
			a.status = err.Error()
		}
	})
}

// HandleEvent processes one input event. It must run on the frame
// goroutine; hosts use Post.
// Returns ErrQuit if the application should exit.
func (a *Application) HandleEvent(ev tcell.Event) error {
	switch e := ev.(type) {
	case *tcell.EventKey:
		a.metrics.RecordInput()
		return a.handleKey(e)
	case *tcell.EventResize:
		if a.active == nil || a.active.State() != animation.StateRunning {
			a.snapBar()
		}
		return nil
	default:
		return nil
	}
}

// handleKey maps keys to list actions.
func (a *Application) handleKey(ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ErrQuit
	case tcell.KeyUp:
		a.moveCursor(-1)
	case tcell.KeyDown:
		a.moveCursor(1)
	case tcell.KeyHome:
		a.moveTo(0)
	case tcell.KeyEnd:
		a.moveTo(len(a.items) - 1)
	case tcell.KeyEnter:
		return a.model.Toggle(a.items[a.cursor])
	case tcell.KeyRune:
		return a.handleRune(ev.Rune())
	}
	return nil
}

func (a *Application) handleRune(r rune) error {
	switch r {
	case 'q':
		return ErrQuit
	case 'k':
		a.moveCursor(-1)
	case 'j':
		a.moveCursor(1)
	case ' ':
		return a.model.Toggle(a.items[a.cursor])
	case 'a':
		return a.model.SelectMultiple(a.items)
	case 'c':
		return a.model.Clear()
	case 'm':
		a.toggleMotion()
	}
	return nil
}
