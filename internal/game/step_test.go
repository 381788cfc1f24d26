package game

import (
	"math"
	"testing"
)

const noSpawns = 1e9

func TestStep_PlayerStaysInBounds(t *testing.T) {
	dirs := [][2]float64{
		{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	dts := []float64{0, 1.0 / 144, 1.0 / 60, 0.5, 10}
	starts := [][2]float64{{400, 300}, {18, 18}, {782, 582}, {0, 0}, {900, 700}}

	for _, start := range starts {
		for _, d := range dirs {
			for _, dt := range dts {
				ts := NewTestSim(WithSpawnDelay(noSpawns), WithPlayerAt(start[0], start[1]))
				ts.Session.Step(dt, InputSnapshot{DirX: d[0], DirY: d[1]})

				p := ts.Session.Store.Player
				if p.X < p.Radius || p.X > ts.Width-p.Radius || p.Y < p.Radius || p.Y > ts.Height-p.Radius {
					t.Fatalf("start=%v dir=%v dt=%v: player escaped to (%.2f,%.2f)", start, d, dt, p.X, p.Y)
				}
			}
		}
	}
}

func TestStep_DiagonalMovementIsNormalized(t *testing.T) {
	ts := NewTestSim(WithSpawnDelay(noSpawns), WithPlayerAt(400, 300))
	ts.Session.Step(0.1, InputSnapshot{DirX: 1, DirY: 1})

	p := ts.Session.Store.Player
	moved := dist(400, 300, p.X, p.Y)
	want := PlayerSpeed * 0.1
	if math.Abs(moved-want) > 1e-9 {
		t.Fatalf("diagonal move = %.4f, want %.4f", moved, want)
	}
}

func TestStep_FireCooldown(t *testing.T) {
	ts := NewTestSim(WithSpawnDelay(noSpawns), WithPlayerAt(400, 300))
	fire := InputSnapshot{AimX: 400, AimY: 0, Fire: true}

	ts.Session.Step(0.1, fire)
	ts.Session.Step(0.04, fire)
	if got := len(ts.Session.Store.Bullets); got != 1 {
		t.Fatalf("bullets after two shots within cooldown = %d, want 1", got)
	}

	ts.Session.Step(0.12, fire)
	if got := len(ts.Session.Store.Bullets); got != 2 {
		t.Fatalf("bullets after cooldown elapsed = %d, want 2", got)
	}
	if ts.Session.Stats.Shots != 2 {
		t.Fatalf("shots = %d, want 2", ts.Session.Stats.Shots)
	}
}

func TestStep_FireScenario(t *testing.T) {
	ts := NewTestSim(WithSpawnDelay(noSpawns), WithPlayerAt(400, 300))
	ts.Session.Step(0, InputSnapshot{AimX: 500, AimY: 300, Fire: true})

	if len(ts.Session.Store.Bullets) != 1 {
		t.Fatalf("expected one bullet, got %d", len(ts.Session.Store.Bullets))
	}
	b := ts.Session.Store.Bullets[0]
	if b.X != 400 || b.Y != 300 {
		t.Errorf("bullet position = (%.1f,%.1f), want (400,300)", b.X, b.Y)
	}
	if math.Abs(b.VX-800) > 1e-9 || math.Abs(b.VY) > 1e-9 {
		t.Errorf("bullet velocity = (%.3f,%.3f), want (800,0)", b.VX, b.VY)
	}
	if b.Life != BulletLifetime {
		t.Errorf("bullet life = %v, want %v", b.Life, BulletLifetime)
	}
}

func TestStep_AimAtPlayerFiresAlongX(t *testing.T) {
	ts := NewTestSim(WithSpawnDelay(noSpawns), WithPlayerAt(400, 300))
	ts.Session.Step(0, InputSnapshot{AimX: 400, AimY: 300, Fire: true})

	b := ts.Session.Store.Bullets[0]
	if b.VX != BulletSpeed || b.VY != 0 {
		t.Fatalf("velocity = (%v,%v), want (%v,0)", b.VX, b.VY, BulletSpeed)
	}
}

func TestStep_BulletLifetime(t *testing.T) {
	ts := NewTestSim(WithSpawnDelay(noSpawns), WithBullet(100, 100, 0, 0, 1.0))

	prev := 1.0
	for i := 0; i < 3; i++ {
		ts.Session.Step(0.25, InputSnapshot{})
		if len(ts.Session.Store.Bullets) != 1 {
			t.Fatalf("step %d: bullet removed early", i)
		}
		life := ts.Session.Store.Bullets[0].Life
		if math.Abs(prev-life-0.25) > 1e-12 {
			t.Fatalf("step %d: life went %v → %v, want a 0.25 drop", i, prev, life)
		}
		prev = life
	}

	ts.Session.Step(0.25, InputSnapshot{})
	if len(ts.Session.Store.Bullets) != 0 {
		t.Fatalf("bullet still present after 1.0s: %+v", ts.Session.Store.Bullets)
	}
	if ts.Session.Stats.Expired != 1 {
		t.Fatalf("expired = %d, want 1", ts.Session.Stats.Expired)
	}
}

func TestStep_BulletGoneAfterLifetime(t *testing.T) {
	ts := NewTestSim(WithSpawnDelay(noSpawns), WithPlayerAt(400, 300), WithStepDT(1.0/60))
	ts.Session.Step(0, InputSnapshot{AimX: 500, AimY: 300, Fire: true})
	ts.RunFor(1.05)

	if n := len(ts.Session.Store.Bullets); n != 0 {
		t.Fatalf("bullets after 1.05s = %d, want 0", n)
	}
}

func TestStep_EnemyApproachesStationaryPlayer(t *testing.T) {
	ts := NewTestSim(
		WithSpawnDelay(noSpawns),
		WithPlayerAt(400, 300),
		WithPlayerHealth(5),
		WithEnemy(50, 20, 20, 120),
	)

	p := ts.Session.Store.Player
	e := ts.Session.Store.Enemies[0]
	prev := dist(e.X, e.Y, p.X, p.Y)
	for i := 0; i < 600; i++ {
		ts.Session.Step(1.0/60, InputSnapshot{})
		if ts.Session.Stats.HitsTaken > 0 {
			return
		}
		e = ts.Session.Store.Enemies[0]
		d := dist(e.X, e.Y, p.X, p.Y)
		if d > prev+1e-9 {
			t.Fatalf("step %d: distance grew %.4f → %.4f", i, prev, d)
		}
		prev = d
	}
	t.Fatal("enemy never reached the player")
}

func TestStep_WestEnemyScenario(t *testing.T) {
	ts := NewTestSim(
		WithSpawnDelay(noSpawns),
		WithPlayerAt(400, 300),
		WithEnemy(300, 300, 20, 100),
	)

	ts.Session.Step(1.0, InputSnapshot{})

	if hp := ts.Session.Store.Player.Health; hp != 0 {
		t.Fatalf("health = %d, want 0", hp)
	}
	if !ts.Session.GameOver() {
		t.Fatal("expected GAME_OVER after the hit")
	}
	if ts.Session.Stats.HitsTaken != 1 {
		t.Fatalf("hits taken = %d, want 1", ts.Session.Stats.HitsTaken)
	}
	// The enemy arrived at the player's centre and was knocked back away.
	e := ts.Session.Store.Enemies[0]
	if math.Abs(e.X-(400-Knockback)) > 1e-9 || e.Y != 300 {
		t.Fatalf("enemy at (%.2f,%.2f), want (%.0f,300)", e.X, e.Y, 400-Knockback)
	}
}

func TestStep_EachCollidingEnemyCostsHealth(t *testing.T) {
	ts := NewTestSim(
		WithSpawnDelay(noSpawns),
		WithPlayerAt(400, 300),
		WithPlayerHealth(3),
		WithEnemy(410, 300, 20, 0),
		WithEnemy(390, 300, 20, 0),
		WithEnemy(400, 310, 20, 0),
	)

	ts.Session.Step(1.0/60, InputSnapshot{})
	if hp := ts.Session.Store.Player.Health; hp != 0 {
		t.Fatalf("health = %d, want 0", hp)
	}
	if !ts.Session.GameOver() {
		t.Fatal("expected GAME_OVER")
	}
	if n := ts.Session.Log.Count("state", "game_over"); n != 1 {
		t.Fatalf("game_over logged %d times, want 1", n)
	}
}

func TestStep_KnockbackPreventsRepeatHits(t *testing.T) {
	ts := NewTestSim(
		WithSpawnDelay(noSpawns),
		WithPlayerAt(400, 300),
		WithPlayerHealth(10),
		WithEnemy(370, 300, 15, 10),
	)

	ts.Session.Step(1.0/60, InputSnapshot{})
	ts.Session.Step(1.0/60, InputSnapshot{})
	if hits := ts.Session.Stats.HitsTaken; hits != 1 {
		t.Fatalf("hits taken over two frames = %d, want 1", hits)
	}
}

func TestStep_BulletKillScoresTen(t *testing.T) {
	ts := NewTestSim(
		WithSpawnDelay(noSpawns),
		WithPlayerAt(100, 100),
		WithEnemy(600, 400, 20, 0),
		WithBullet(600, 400, 0, 0, 1.0),
	)

	ts.Session.Step(1.0/60, InputSnapshot{})
	if ts.Session.Score != KillScore {
		t.Fatalf("score = %d, want %d", ts.Session.Score, KillScore)
	}
	if len(ts.Session.Store.Enemies) != 0 {
		t.Fatalf("enemy not removed: %+v", ts.Session.Store.Enemies)
	}
	if len(ts.Session.Store.Bullets) != 0 {
		t.Fatalf("bullet not consumed: %+v", ts.Session.Store.Bullets)
	}
}

func TestStep_FirstHitWins(t *testing.T) {
	t.Run("two bullets one enemy", func(t *testing.T) {
		ts := NewTestSim(
			WithSpawnDelay(noSpawns),
			WithPlayerAt(100, 100),
			WithEnemy(600, 400, 20, 0),
			WithBullet(600, 400, 0, 0, 1.0),
			WithBullet(605, 400, 0, 0, 1.0),
		)
		ts.Session.Step(1.0/60, InputSnapshot{})

		if ts.Session.Score != KillScore {
			t.Fatalf("score = %d, want %d", ts.Session.Score, KillScore)
		}
		if len(ts.Session.Store.Bullets) != 1 {
			t.Fatalf("bullets = %d, want the second bullet to survive", len(ts.Session.Store.Bullets))
		}
	})

	t.Run("one bullet two enemies", func(t *testing.T) {
		ts := NewTestSim(
			WithSpawnDelay(noSpawns),
			WithPlayerAt(100, 100),
			WithEnemy(600, 400, 20, 0),
			WithEnemy(610, 400, 20, 0),
			WithBullet(605, 400, 0, 0, 1.0),
		)
		ts.Session.Step(1.0/60, InputSnapshot{})

		if ts.Session.Score != KillScore {
			t.Fatalf("score = %d, want %d", ts.Session.Score, KillScore)
		}
		if len(ts.Session.Store.Enemies) != 1 {
			t.Fatalf("enemies = %d, want 1 survivor", len(ts.Session.Store.Enemies))
		}
	})
}

func TestStep_GameOverFreezesSession(t *testing.T) {
	ts := NewTestSim(
		WithPlayerAt(400, 300),
		WithEnemy(400, 300, 20, 100),
	)
	ts.Session.Step(1.0/60, InputSnapshot{})
	if !ts.Session.GameOver() {
		t.Fatal("expected GAME_OVER")
	}

	before := ts.Session.Summarize()
	player := ts.Session.Store.Player
	enemies := append([]Enemy(nil), ts.Session.Store.Enemies...)
	bullets := append([]Bullet(nil), ts.Session.Store.Bullets...)

	for i := 0; i < 30; i++ {
		ts.Session.Step(0.5, InputSnapshot{DirX: 1, Fire: true, AimX: 0, AimY: 0})
	}

	if ts.Session.Store.Player != player {
		t.Errorf("player changed after GAME_OVER: %+v → %+v", player, ts.Session.Store.Player)
	}
	if ts.Session.Score != before.Score || ts.Session.Clock() != before.Survived {
		t.Errorf("score/clock changed after GAME_OVER")
	}
	if len(ts.Session.Store.Enemies) != len(enemies) || len(ts.Session.Store.Bullets) != len(bullets) {
		t.Fatalf("collections changed after GAME_OVER")
	}
	for i := range enemies {
		if ts.Session.Store.Enemies[i] != enemies[i] {
			t.Errorf("enemy %d moved after GAME_OVER", i)
		}
	}
}

func TestStep_SpawnsAtMostOnePerStep(t *testing.T) {
	ts := NewTestSim(WithPlayerHealth(100))
	ts.Session.Step(5.0, InputSnapshot{})
	if n := len(ts.Session.Store.Enemies); n != 1 {
		t.Fatalf("enemies after one long step = %d, want 1", n)
	}

	ts.Session.Step(0.5, InputSnapshot{})
	if n := len(ts.Session.Store.Enemies); n != 1 {
		t.Fatalf("spawned before interval elapsed: %d enemies", n)
	}
	ts.Session.Step(0.31, InputSnapshot{})
	if n := len(ts.Session.Store.Enemies); n != 2 {
		t.Fatalf("enemies after interval = %d, want 2", n)
	}
}

func TestStep_NegativeDTIsIgnored(t *testing.T) {
	ts := NewTestSim(WithSpawnDelay(noSpawns), WithPlayerAt(400, 300), WithBullet(10, 10, 100, 0, 1))
	ts.Session.Step(-1, InputSnapshot{DirX: 1})

	if p := ts.Session.Store.Player; p.X != 400 {
		t.Fatalf("player moved on negative dt: x=%.2f", p.X)
	}
	if b := ts.Session.Store.Bullets[0]; b.Life != 1 || b.X != 10 {
		t.Fatalf("bullet changed on negative dt: %+v", b)
	}
}

func TestStep_ResizeReclampsPlayer(t *testing.T) {
	ts := NewTestSim(WithSpawnDelay(noSpawns), WithPlayerAt(700, 500))
	ts.Session.SetViewport(Viewport{W: 320, H: 240})
	ts.Session.Step(0, InputSnapshot{})

	p := ts.Session.Store.Player
	if p.X != 320-p.Radius || p.Y != 240-p.Radius {
		t.Fatalf("player at (%.1f,%.1f) after shrink, want (%.1f,%.1f)", p.X, p.Y, 320-p.Radius, 240-p.Radius)
	}
}

func TestSpawnEnemy_PlacementAndRanges(t *testing.T) {
	s := NewSession(Viewport{W: 800, H: 600}, 7)
	seen := map[string]bool{}
	for i := 0; i < 400; i++ {
		s.spawnEnemy()
	}
	for i, e := range s.Store.Enemies {
		switch {
		case e.Y == -SpawnMargin && e.X >= 0 && e.X <= 800:
			seen["top"] = true
		case e.X == 800+SpawnMargin && e.Y >= 0 && e.Y <= 600:
			seen["right"] = true
		case e.Y == 600+SpawnMargin && e.X >= 0 && e.X <= 800:
			seen["bottom"] = true
		case e.X == -SpawnMargin && e.Y >= 0 && e.Y <= 600:
			seen["left"] = true
		default:
			t.Fatalf("enemy %d spawned at (%.1f,%.1f), not just outside an edge", i, e.X, e.Y)
		}
		if e.Radius < EnemyRadiusMin || e.Radius >= EnemyRadiusMax {
			t.Errorf("enemy %d radius %.2f out of range", i, e.Radius)
		}
		if e.Speed < EnemySpeedMin || e.Speed >= EnemySpeedMax {
			t.Errorf("enemy %d speed %.2f out of range", i, e.Speed)
		}
	}
	if len(seen) != 4 {
		t.Fatalf("expected spawns on all four edges, saw %v", seen)
	}
}

func TestRestart_ResetsEverything(t *testing.T) {
	ts := NewTestSim(WithPilot(NewAutopilot().Decide), WithSeed(3))
	ts.RunFor(3)
	ts.Session.Store.Player.Health = 0
	ts.Session.State = StateGameOver
	oldID := ts.Session.ID

	ts.Session.Restart()

	s := ts.Session
	if s.Score != 0 || len(s.Store.Bullets) != 0 || len(s.Store.Enemies) != 0 {
		t.Fatalf("restart left state behind: score=%d bullets=%d enemies=%d",
			s.Score, len(s.Store.Bullets), len(s.Store.Enemies))
	}
	if s.Store.Player.Health != PlayerHealth || s.State != StatePlaying {
		t.Fatalf("restart: health=%d state=%s", s.Store.Player.Health, s.State)
	}
	if s.Store.Player.X != 400 || s.Store.Player.Y != 300 {
		t.Fatalf("player not centred: (%.1f,%.1f)", s.Store.Player.X, s.Store.Player.Y)
	}
	if s.Clock() != 0 || s.Stats != (Stats{}) {
		t.Fatalf("timers/stats not reset: clock=%v stats=%+v", s.Clock(), s.Stats)
	}
	if s.ID == oldID {
		t.Fatal("restart kept the old session id")
	}

	// Timers reset: the first shot and the first spawn happen immediately.
	s.Step(0, InputSnapshot{AimX: 0, AimY: 0, Fire: true})
	if len(s.Store.Bullets) != 1 || len(s.Store.Enemies) != 1 {
		t.Fatalf("after restart step: bullets=%d enemies=%d, want 1/1", len(s.Store.Bullets), len(s.Store.Enemies))
	}
}
