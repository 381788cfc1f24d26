package game

import (
	"testing"
	"time"
)

func newTestDriver(cfg Config, opts ...SimOption) (*Driver, *Sampler) {
	ts := NewTestSim(append([]SimOption{WithSpawnDelay(noSpawns)}, opts...)...)
	in := NewSampler()
	return NewDriver(ts.Session, in, cfg), in
}

var vp800 = Viewport{W: 800, H: 600}

func TestDriver_Delta(t *testing.T) {
	d, _ := newTestDriver(DefaultConfig())
	if got := d.Delta(5 * time.Second); got != 0 {
		t.Fatalf("first delta = %v, want 0", got)
	}
	if got := d.Delta(5*time.Second + 20*time.Millisecond); got < 0.0199 || got > 0.0201 {
		t.Fatalf("delta = %v, want 0.02", got)
	}
	if got := d.Delta(10 * time.Second); got != 0.25 {
		t.Fatalf("stalled delta = %v, want clamp to 0.25", got)
	}
	if got := d.Delta(9 * time.Second); got != 0 {
		t.Fatalf("backwards delta = %v, want 0", got)
	}
}

func TestDriver_Substeps(t *testing.T) {
	d, _ := newTestDriver(DefaultConfig())
	tests := []struct {
		dt   float64
		want int
	}{
		{0, 1},
		{1.0 / 60.0, 1},
		{1.0 / 30.0, 2},
		{0.25, 15},
		{0.02, 2},
	}
	for _, tt := range tests {
		if got := d.substeps(tt.dt); got != tt.want {
			t.Errorf("substeps(%v) = %d, want %d", tt.dt, got, tt.want)
		}
	}

	d.cfg.MaxSubstep = 0
	if got := d.substeps(0.25); got != 1 {
		t.Errorf("substeps with splitting off = %d, want 1", got)
	}
}

func TestDriver_FrameAdvancesBySubsteps(t *testing.T) {
	d, _ := newTestDriver(DefaultConfig())
	d.Frame(0, vp800)
	if d.Session.Stats.Frames != 1 {
		t.Fatalf("first frame steps = %d, want 1 zero-length step", d.Session.Stats.Frames)
	}
	d.Frame(100*time.Millisecond, vp800)
	if got := d.Session.Stats.Frames; got != 1+6 {
		t.Fatalf("steps after 100ms frame = %d, want 7", got)
	}
	if c := d.Session.Clock(); c < 0.0999 || c > 0.1001 {
		t.Fatalf("clock = %v, want 0.1", c)
	}
}

func TestDriver_FrameUsesOneSnapshot(t *testing.T) {
	d, in := newTestDriver(DefaultConfig())
	in.KeyDown(KeyD)
	d.Frame(0, vp800)
	x0 := d.Session.Store.Player.X
	d.Frame(50*time.Millisecond, vp800)
	moved := d.Session.Store.Player.X - x0
	if want := PlayerSpeed * 0.05; moved < want-0.01 || moved > want+0.01 {
		t.Fatalf("moved %v in 50ms, want %v", moved, want)
	}
}

func TestDriver_ClickAppliedBeforeStep(t *testing.T) {
	d, _ := newTestDriver(DefaultConfig())
	d.Frame(0, vp800)
	d.Session.State = StateGameOver
	d.Session.Score = 50

	d.Click(400, 310)
	d.Frame(16*time.Millisecond, vp800)

	s := d.Session
	if s.State != StatePlaying || s.Score != 0 {
		t.Fatalf("click not applied: state=%v score=%d", s.State, s.Score)
	}
	if s.Stats.Frames == 0 {
		t.Fatal("restarted session did not step in the same frame")
	}
	if len(d.clicks) != 0 {
		t.Fatal("click queue not drained")
	}
}

func TestDriver_RestartKey(t *testing.T) {
	d, _ := newTestDriver(DefaultConfig())
	d.Frame(0, vp800)
	d.Session.State = StateGameOver
	d.RestartKey()
	d.Frame(16*time.Millisecond, vp800)
	if d.Session.GameOver() {
		t.Fatal("restart key not applied")
	}
	if d.restartKey {
		t.Fatal("restart request not cleared")
	}
}

func TestDriver_FrameTracksViewport(t *testing.T) {
	d, _ := newTestDriver(DefaultConfig())
	d.Frame(0, vp800)
	d.Frame(16*time.Millisecond, Viewport{W: 300, H: 200})
	p := d.Session.Store.Player
	if p.X > 300-p.Radius || p.Y > 200-p.Radius {
		t.Fatalf("player (%v,%v) outside shrunk viewport", p.X, p.Y)
	}
}

func TestDriver_FrameReusesCommandBuffer(t *testing.T) {
	d, _ := newTestDriver(DefaultConfig())
	a := d.Frame(0, vp800)
	b := d.Frame(16*time.Millisecond, vp800)
	if &a[0] != &b[0] {
		t.Fatal("frame allocated a fresh command slice")
	}
}
