package game

// Step advances the session by dt seconds using the given input. Every
// sub-update uses the same dt. In GAME_OVER it does nothing.
func (s *Session) Step(dt float64, in InputSnapshot) {
	if s.State == StateGameOver {
		return
	}
	if dt < 0 {
		dt = 0
	}
	s.Stats.Frames++
	s.clock += dt

	s.movePlayer(dt, in)
	if in.Fire {
		s.tryFire(in.AimX, in.AimY)
	}
	s.tickSpawner(dt)
	s.integrateBullets(dt)
	s.pursue(dt)
	s.resolveBulletHits()
	s.Store.compactEnemies()
	s.Store.compactBullets()
}

// movePlayer applies the movement direction and keeps the whole circle inside
// the viewport.
func (s *Session) movePlayer(dt float64, in InputSnapshot) {
	p := &s.Store.Player
	dx, dy := normalize(in.DirX, in.DirY)
	p.X += dx * p.Speed * dt
	p.Y += dy * p.Speed * dt

	vp := s.Viewport
	p.X = clamp(p.X, p.Radius, vp.W-p.Radius)
	p.Y = clamp(p.Y, p.Radius, vp.H-p.Radius)
}

// tryFire spawns a bullet toward the aim point unless the cooldown is active.
// Requests during cooldown are dropped, not queued.
func (s *Session) tryFire(aimX, aimY float64) bool {
	if s.clock-s.lastShot < FireCooldown {
		return false
	}
	s.lastShot = s.clock

	p := &s.Store.Player
	dx, dy := aimX-p.X, aimY-p.Y
	if dx == 0 && dy == 0 {
		// Aiming at the player's own centre fires along +X.
		dx = 1
	}
	nx, ny := normalize(dx, dy)
	s.Store.AddBullet(Bullet{
		X:      p.X,
		Y:      p.Y,
		VX:     nx * BulletSpeed,
		VY:     ny * BulletSpeed,
		Radius: BulletRadius,
		Life:   BulletLifetime,
	})
	s.Stats.Shots++
	s.Log.AddVerbose(s.Stats.Frames, s.clock, "fire", "shot",
		formatPoint(aimX, aimY), float64(s.Stats.Shots))
	return true
}

// tickSpawner counts down and spawns at most one enemy per step.
func (s *Session) tickSpawner(dt float64) {
	s.spawnTimer -= dt
	if s.spawnTimer <= 0 {
		s.spawnTimer = SpawnInterval
		s.spawnEnemy()
	}
}

func (s *Session) integrateBullets(dt float64) {
	for i := range s.Store.Bullets {
		b := &s.Store.Bullets[i]
		b.X += b.VX * dt
		b.Y += b.VY * dt
		b.Life -= dt
	}
	s.Stats.Expired += s.Store.compactBullets()
}

// pursue moves every enemy toward the player's current position and resolves
// contact damage. Several enemies touching in one frame each cost one health.
func (s *Session) pursue(dt float64) {
	p := &s.Store.Player
	for i := range s.Store.Enemies {
		e := &s.Store.Enemies[i]
		ux, uy := normalize(p.X-e.X, p.Y-e.Y)
		e.X += ux * e.Speed * dt
		e.Y += uy * e.Speed * dt

		if !circlesOverlap(e.X, e.Y, e.Radius, p.X, p.Y, p.Radius) {
			continue
		}
		p.Health--
		s.Stats.HitsTaken++
		e.X -= ux * Knockback
		e.Y -= uy * Knockback
		s.logf("hit", "player", float64(p.Health), "health %d", p.Health)
		if p.Health <= 0 && s.State != StateGameOver {
			s.State = StateGameOver
			s.logf("state", "game_over", float64(s.Score), "score %d after %.2fs", s.Score, s.clock)
		}
	}
}

// resolveBulletHits marks enemies hit by live bullets. First hit wins: a
// marked enemy and a spent bullet take no further part, so each kill scores
// exactly once.
func (s *Session) resolveBulletHits() {
	for bi := range s.Store.Bullets {
		b := &s.Store.Bullets[bi]
		for ei := range s.Store.Enemies {
			if !b.Alive() {
				break
			}
			e := &s.Store.Enemies[ei]
			if e.hit {
				continue
			}
			if !circlesOverlap(b.X, b.Y, b.Radius, e.X, e.Y, e.Radius) {
				continue
			}
			e.hit = true
			b.Life = 0
			s.Score += KillScore
			s.Stats.Kills++
			s.logf("kill", "enemy", float64(s.Score), "at (%.0f,%.0f) score %d", e.X, e.Y, s.Score)
		}
	}
}
