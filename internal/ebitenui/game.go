// Package ebitenui runs a circle-siege session in an ebiten window.
package ebitenui

import (
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/circle-siege/internal/game"
)

// Game adapts a game.Driver to ebiten's Update/Draw/Layout loop.
type Game struct {
	driver  *game.Driver
	sampler *game.Sampler
	start   time.Time

	width  int
	height int

	cmds     []game.DrawCmd
	prevKeys map[ebiten.Key]bool
	lastID   string
	wasOver  bool

	showFeed bool
	text     *textDrawer
}

// New creates a window game sized w×h with the given RNG seed.
func New(w, h int, seed int64) *Game {
	vp := game.Viewport{W: float64(w), H: float64(h)}
	s := game.NewSession(vp, seed)
	in := game.NewSampler()
	g := &Game{
		driver:   game.NewDriver(s, in, game.DefaultConfig()),
		sampler:  in,
		start:    time.Now(),
		width:    w,
		height:   h,
		prevKeys: make(map[ebiten.Key]bool),
		text:     newTextDrawer(),
	}
	g.lastID = s.ID.String()
	log.Printf("session %s started (%dx%d seed=%d)", g.lastID, w, h, seed)
	return g
}

// Update samples input and runs one driver frame.
func (g *Game) Update() error {
	g.handleInput()

	vp := game.Viewport{W: float64(g.width), H: float64(g.height)}
	g.cmds = g.driver.Frame(time.Since(g.start), vp)

	g.logLifecycle()
	return nil
}

func (g *Game) handleInput() {
	if !ebiten.IsFocused() {
		g.sampler.ReleaseAll()
		return
	}

	for ek, k := range keyMap {
		if ebiten.IsKeyPressed(ek) {
			g.sampler.KeyDown(k)
		} else {
			g.sampler.KeyUp(k)
		}
	}

	mx, my := ebiten.CursorPosition()
	g.sampler.PointerMove(float64(mx), float64(my))
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.sampler.PointerDown()
	} else {
		g.sampler.PointerUp()
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.driver.Click(float64(mx), float64(my))
	}

	currentKeys := map[ebiten.Key]bool{}

	// Enter: restart after game over.
	currentKeys[ebiten.KeyEnter] = ebiten.IsKeyPressed(ebiten.KeyEnter)
	if currentKeys[ebiten.KeyEnter] && !g.prevKeys[ebiten.KeyEnter] {
		g.driver.RestartKey()
	}

	// F3: toggle the event feed.
	currentKeys[ebiten.KeyF3] = ebiten.IsKeyPressed(ebiten.KeyF3)
	if currentKeys[ebiten.KeyF3] && !g.prevKeys[ebiten.KeyF3] {
		g.showFeed = !g.showFeed
	}

	// C: copy the run summary.
	currentKeys[ebiten.KeyC] = ebiten.IsKeyPressed(ebiten.KeyC)
	if currentKeys[ebiten.KeyC] && !g.prevKeys[ebiten.KeyC] {
		g.copySummary()
	}

	g.prevKeys = currentKeys
}

func (g *Game) copySummary() {
	sm := g.driver.Session.Summarize()
	if err := clipboard.WriteAll(sm.String()); err != nil {
		log.Printf("copy summary: %v", err)
		return
	}
	log.Printf("session %s summary copied to clipboard", sm.SessionID)
}

func (g *Game) logLifecycle() {
	s := g.driver.Session
	if id := s.ID.String(); id != g.lastID {
		log.Printf("session %s started (restart of %s)", id, g.lastID)
		g.lastID = id
	}
	over := s.GameOver()
	if over && !g.wasOver {
		log.Printf("session %s over: score %d after %.1fs", g.lastID, s.Score, s.Clock())
	}
	g.wasOver = over
}

// Draw replays the frame's commands onto the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	for _, c := range g.cmds {
		g.drawCmd(screen, c)
	}
	if g.showFeed {
		drawFeed(screen, g.driver.Session.Log.Tail(feedMaxEntries), g.width, g.height)
	}
}

// Layout tracks the window size so the playfield follows resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width = outsideWidth
		g.height = outsideHeight
	}
	return g.width, g.height
}
