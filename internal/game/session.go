package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// State is the session phase.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Stats are per-session counters used for the run summary.
type Stats struct {
	Frames    int
	Shots     int
	Kills     int
	HitsTaken int
	Spawned   int
	Expired   int // bullets that ran out of lifetime
}

// Session is one playthrough plus the timers that drive it. All mutable game
// state lives here; nothing is global.
type Session struct {
	ID       uuid.UUID
	Store    Store
	Score    int
	State    State
	Viewport Viewport
	Stats    Stats
	Log      *SimLog

	clock      float64 // seconds of simulated time since the session began
	lastShot   float64
	spawnTimer float64
	rng        *rand.Rand
}

// NewSession creates a PLAYING session sized to vp. seed drives enemy
// placement and sizes.
func NewSession(vp Viewport, seed int64) *Session {
	s := &Session{
		Viewport: vp,
		Log:      NewSimLog(DefaultLogLimit),
		rng:      rand.New(rand.NewSource(seed)), // #nosec G404 -- gameplay only
	}
	s.reset()
	return s
}

// Clock returns the session-relative simulated time in seconds.
func (s *Session) Clock() float64 {
	return s.clock
}

// GameOver reports whether the session is in its terminal state.
func (s *Session) GameOver() bool {
	return s.State == StateGameOver
}

// SetViewport updates the visible bounds. Clamping and spawn placement use
// the new size from the next step on.
func (s *Session) SetViewport(vp Viewport) {
	s.Viewport = vp
}

// Restart reinitialises the whole session from GAME_OVER or PLAYING alike:
// fresh player, no bullets or enemies, zero score, reset timers.
func (s *Session) Restart() {
	prev := s.ID
	s.reset()
	s.logf("state", "restart", 0, "%s → %s", shortID(prev), shortID(s.ID))
}

func (s *Session) reset() {
	s.ID = uuid.New()
	s.Store.reset(s.Viewport)
	s.Score = 0
	s.State = StatePlaying
	s.Stats = Stats{}
	s.clock = 0
	// The first shot is never blocked by the cooldown.
	s.lastShot = -FireCooldown
	s.spawnTimer = 0
}

func (s *Session) logf(category, key string, num float64, format string, args ...any) {
	if s.Log == nil {
		return
	}
	s.Log.Add(s.Stats.Frames, s.clock, category, key, fmt.Sprintf(format, args...), num)
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
