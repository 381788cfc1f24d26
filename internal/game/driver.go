package game

import (
	"math"
	"time"
)

// Config tunes how wall-clock frames are turned into simulation steps.
type Config struct {
	// MaxFrameDelta caps the seconds simulated for one frame, so a stalled
	// or backgrounded window does not teleport everything. 0 disables it.
	MaxFrameDelta float64
	// MaxSubstep splits a frame into equal steps no longer than this many
	// seconds, so fast bullets cannot skip over an enemy. 0 disables it.
	MaxSubstep float64
}

// DefaultConfig returns the tuning used by the shipped platforms.
func DefaultConfig() Config {
	return Config{
		MaxFrameDelta: 0.25,
		MaxSubstep:    1.0 / 60.0,
	}
}

type click struct{ x, y float64 }

// Driver sequences Sample → Step → Render once per display refresh. It is the
// only thing that advances a Session.
type Driver struct {
	Session *Session
	Input   *Sampler
	cfg     Config

	last    time.Duration
	started bool

	clicks     []click
	restartKey bool
	cmds       []DrawCmd
}

// NewDriver creates a driver for session s reading input from in.
func NewDriver(s *Session, in *Sampler, cfg Config) *Driver {
	return &Driver{Session: s, Input: in, cfg: cfg}
}

// Click queues a pointer click; it is applied at the start of the next frame.
func (d *Driver) Click(x, y float64) {
	d.clicks = append(d.clicks, click{x, y})
}

// RestartKey queues a keyboard restart request for the next frame.
func (d *Driver) RestartKey() {
	d.restartKey = true
}

// Delta converts a frame timestamp into the seconds to simulate. The first
// frame simulates nothing.
func (d *Driver) Delta(now time.Duration) float64 {
	if !d.started {
		d.started = true
		d.last = now
		return 0
	}
	dt := (now - d.last).Seconds()
	d.last = now
	if dt < 0 {
		return 0
	}
	if d.cfg.MaxFrameDelta > 0 && dt > d.cfg.MaxFrameDelta {
		dt = d.cfg.MaxFrameDelta
	}
	return dt
}

// Frame runs one full frame at timestamp now for viewport vp and returns the
// draw commands. The returned slice is reused by the next call.
func (d *Driver) Frame(now time.Duration, vp Viewport) []DrawCmd {
	s := d.Session
	s.SetViewport(vp)

	for _, c := range d.clicks {
		s.HandlePointerClick(c.x, c.y)
	}
	d.clicks = d.clicks[:0]
	if d.restartKey {
		s.HandleRestartKey()
		d.restartKey = false
	}

	dt := d.Delta(now)
	in := d.Input.Snapshot()
	n := d.substeps(dt)
	for i := 0; i < n; i++ {
		s.Step(dt/float64(n), in)
	}

	d.cmds = AppendRender(d.cmds[:0], s)
	return d.cmds
}

func (d *Driver) substeps(dt float64) int {
	if d.cfg.MaxSubstep <= 0 || dt <= d.cfg.MaxSubstep {
		return 1
	}
	return int(math.Ceil(dt/d.cfg.MaxSubstep - 1e-9))
}
