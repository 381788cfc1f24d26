package game

// Player is the controlled circle. One per session.
type Player struct {
	X, Y   float64
	Radius float64
	Speed  float64 // units per second
	Health int
}

func newPlayer(vp Viewport) Player {
	cx, cy := vp.Center()
	return Player{
		X:      cx,
		Y:      cy,
		Radius: PlayerRadius,
		Speed:  PlayerSpeed,
		Health: PlayerHealth,
	}
}

// Bullet is a projectile fired by the player.
type Bullet struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Life   float64 // seconds remaining
}

// Alive reports whether the bullet still has lifetime left.
func (b *Bullet) Alive() bool {
	return b.Life > 0
}

// Enemy pursues the player until shot.
type Enemy struct {
	X, Y   float64
	Radius float64
	Speed  float64
	hit    bool // marked for removal this frame
}

// Marked reports whether the enemy has been hit this frame.
func (e *Enemy) Marked() bool {
	return e.hit
}

// Store owns the entity collections of a session.
type Store struct {
	Player  Player
	Bullets []Bullet
	Enemies []Enemy
}

// AddBullet appends a bullet.
func (st *Store) AddBullet(b Bullet) {
	st.Bullets = append(st.Bullets, b)
}

// AddEnemy appends an enemy.
func (st *Store) AddEnemy(e Enemy) {
	st.Enemies = append(st.Enemies, e)
}

// compactBullets drops bullets whose lifetime has run out, reusing the
// backing array.
func (st *Store) compactBullets() int {
	kept := st.Bullets[:0]
	for _, b := range st.Bullets {
		if b.Alive() {
			kept = append(kept, b)
		}
	}
	removed := len(st.Bullets) - len(kept)
	clear(st.Bullets[len(kept):])
	st.Bullets = kept
	return removed
}

// compactEnemies drops enemies marked during collision detection.
func (st *Store) compactEnemies() int {
	kept := st.Enemies[:0]
	for _, e := range st.Enemies {
		if !e.hit {
			kept = append(kept, e)
		}
	}
	removed := len(st.Enemies) - len(kept)
	clear(st.Enemies[len(kept):])
	st.Enemies = kept
	return removed
}

// reset empties the collections and places a fresh player.
func (st *Store) reset(vp Viewport) {
	st.Player = newPlayer(vp)
	clear(st.Bullets)
	st.Bullets = st.Bullets[:0]
	clear(st.Enemies)
	st.Enemies = st.Enemies[:0]
}
