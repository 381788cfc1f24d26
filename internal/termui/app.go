// Package termui runs a circle-siege session in a terminal with tcell.
package termui

import (
	"fmt"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/circle-siege/internal/game"
)

const (
	frameInterval = 16 * time.Millisecond
	statusTTL     = 3 * time.Second
)

// Open creates and initialises a terminal screen with mouse motion enabled.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	return screen, nil
}

// App drives one session on a tcell screen.
type App struct {
	screen  tcell.Screen
	driver  *game.Driver
	sampler *game.Sampler
	keys    *holdTracker
	raster  raster
	start   time.Time

	mouseDown   bool
	status      string
	statusUntil time.Time
	lastID      string
	wasOver     bool
}

// NewApp creates an app on an initialised screen.
func NewApp(screen tcell.Screen, seed int64, hold time.Duration) *App {
	cols, rows := screen.Size()
	s := game.NewSession(viewportFor(cols, rows), seed)
	in := game.NewSampler()
	a := &App{
		screen:  screen,
		driver:  game.NewDriver(s, in, game.DefaultConfig()),
		sampler: in,
		keys:    newHoldTracker(hold),
		start:   time.Now(),
		lastID:  s.ID.String(),
	}
	log.Printf("session %s started (%dx%d cells seed=%d)", a.lastID, cols, rows, seed)
	return a
}

// Run polls events on a goroutine and renders frames until the user quits.
// Events are drained at the start of each frame.
func (a *App) Run() error {
	events := make(chan tcell.Event, 128)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for now := range ticker.C {
		for drained := false; !drained; {
			select {
			case ev := <-events:
				if !a.handleEvent(ev, now) {
					return nil
				}
			default:
				drained = true
			}
		}
		a.frame(now)
	}
	return nil
}

// handleEvent applies one terminal event. It returns false on quit.
func (a *App) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		act, k := translateKey(ev)
		switch act {
		case actQuit:
			return false
		case actHold:
			a.keys.press(k, now, a.sampler)
		case actRestart:
			a.driver.RestartKey()
		case actCopy:
			a.copySummary(now)
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := cellCenter(col, row)
		a.sampler.PointerMove(x, y)
		down := ev.Buttons()&tcell.Button1 != 0
		switch {
		case down && !a.mouseDown:
			a.sampler.PointerDown()
		case !down && a.mouseDown:
			a.sampler.PointerUp()
			a.driver.Click(x, y)
		}
		a.mouseDown = down
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventFocus:
		if !ev.Focused {
			a.sampler.ReleaseAll()
			a.mouseDown = false
		}
	}
	return true
}

func (a *App) copySummary(now time.Time) {
	sm := a.driver.Session.Summarize()
	if err := clipboard.WriteAll(sm.String()); err != nil {
		log.Printf("copy summary: %v", err)
		a.setStatus("clipboard unavailable", now)
		return
	}
	a.setStatus("summary copied", now)
}

func (a *App) setStatus(msg string, now time.Time) {
	a.status = msg
	a.statusUntil = now.Add(statusTTL)
}

// frame runs one driver frame and paints it.
func (a *App) frame(now time.Time) {
	a.keys.expire(now, a.sampler)

	cols, rows := a.screen.Size()
	a.raster.resize(cols, rows)
	cmds := a.driver.Frame(now.Sub(a.start), viewportFor(cols, rows))
	a.raster.paint(cmds)
	a.raster.flush(a.screen)
	a.drawStatus(now, cols, rows)
	a.screen.Show()

	a.logLifecycle()
}

func (a *App) drawStatus(now time.Time, cols, rows int) {
	if a.status == "" || now.After(a.statusUntil) || rows == 0 {
		return
	}
	st := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	col := 0
	for _, ch := range a.status {
		if col >= cols {
			break
		}
		a.screen.SetContent(col, rows-1, ch, nil, st)
		col++
	}
}

func (a *App) logLifecycle() {
	s := a.driver.Session
	if id := s.ID.String(); id != a.lastID {
		log.Printf("session %s started (restart of %s)", id, a.lastID)
		a.lastID = id
	}
	over := s.GameOver()
	if over && !a.wasOver {
		log.Printf("session %s over: score %d after %.1fs", a.lastID, s.Score, s.Clock())
	}
	a.wasOver = over
}
