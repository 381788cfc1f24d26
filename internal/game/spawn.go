package game

// Edge is a side of the viewport.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
	edgeCount
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	default:
		return "unknown"
	}
}

func (s *Session) randRange(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// spawnPoint picks a point SpawnMargin outside the given edge.
func (s *Session) spawnPoint(edge Edge) (float64, float64) {
	vp := s.Viewport
	switch edge {
	case EdgeTop:
		return s.randRange(0, vp.W), -SpawnMargin
	case EdgeRight:
		return vp.W + SpawnMargin, s.randRange(0, vp.H)
	case EdgeBottom:
		return s.randRange(0, vp.W), vp.H + SpawnMargin
	default:
		return -SpawnMargin, s.randRange(0, vp.H)
	}
}

// spawnEnemy adds one enemy just outside a uniformly chosen edge.
func (s *Session) spawnEnemy() {
	edge := Edge(s.rng.Intn(int(edgeCount)))
	x, y := s.spawnPoint(edge)
	e := Enemy{
		X:      x,
		Y:      y,
		Radius: s.randRange(EnemyRadiusMin, EnemyRadiusMax),
		Speed:  s.randRange(EnemySpeedMin, EnemySpeedMax),
	}
	s.Store.AddEnemy(e)
	s.Stats.Spawned++
	s.logf("spawn", edge.String(), e.Speed, "r=%.1f at (%.0f,%.0f)", e.Radius, x, y)
}
