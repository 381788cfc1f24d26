package game

import "math"

// Autopilot is a simple input policy for headless runs: aim at the nearest
// enemy, hold fire, and move away from whatever is closest.
type Autopilot struct {
	// DodgeRadius is the distance at which the pilot starts backing off.
	DodgeRadius float64
}

// NewAutopilot returns a pilot with a reasonable dodge distance.
func NewAutopilot() *Autopilot {
	return &Autopilot{DodgeRadius: 180}
}

// Decide returns the input for the current state of s.
func (a *Autopilot) Decide(s *Session) InputSnapshot {
	p := s.Store.Player
	nearest := -1
	best := math.Inf(1)
	for i, e := range s.Store.Enemies {
		d := dist(p.X, p.Y, e.X, e.Y) - e.Radius
		if d < best {
			best = d
			nearest = i
		}
	}
	if nearest < 0 {
		cx, cy := s.Viewport.Center()
		dx, dy := normalize(cx-p.X, cy-p.Y)
		if dist(p.X, p.Y, cx, cy) < p.Radius {
			dx, dy = 0, 0
		}
		return InputSnapshot{DirX: dx, DirY: dy, AimX: cx, AimY: cy}
	}

	e := s.Store.Enemies[nearest]
	in := InputSnapshot{AimX: e.X, AimY: e.Y, Fire: true}
	if best < a.DodgeRadius {
		// Back away, bending toward the centre so the wall doesn't pin us.
		ax, ay := normalize(p.X-e.X, p.Y-e.Y)
		cx, cy := s.Viewport.Center()
		bx, by := normalize(cx-p.X, cy-p.Y)
		in.DirX, in.DirY = normalize(ax+0.5*bx, ay+0.5*by)
	}
	return in
}
