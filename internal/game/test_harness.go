package game

// TestSim is a headless harness used by tests and the headless report. It
// steps a Session directly with a fixed dt and a pluggable input policy, no
// platform involved.
type TestSim struct {
	Session *Session
	Width   float64
	Height  float64
	DT      float64
	Pilot   func(*Session) InputSnapshot

	seed       int64
	verbose    bool
	spawnDelay float64
	spawnSet   bool
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // viewport, seed, verbose, timers
	simOptEntity                      // player placement, enemies, bullets
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithViewport sets the playfield dimensions.
func WithViewport(w, h float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Width = w
		ts.Height = h
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.seed = seed
	}}
}

// WithVerbose records shots in the event log.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.verbose = v
	}}
}

// WithStepDT sets the fixed step used by RunSteps and RunFor.
func WithStepDT(dt float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.DT = dt
	}}
}

// WithSpawnDelay postpones the first enemy spawn by the given seconds. Use a
// large value to keep a scenario free of random enemies.
func WithSpawnDelay(sec float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.spawnDelay = sec
		ts.spawnSet = true
	}}
}

// WithPilot sets the input policy consulted before every step.
func WithPilot(p func(*Session) InputSnapshot) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Pilot = p
	}}
}

// WithPlayerAt moves the player.
func WithPlayerAt(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Session.Store.Player.X = x
		ts.Session.Store.Player.Y = y
	}}
}

// WithPlayerHealth overrides the starting health.
func WithPlayerHealth(hp int) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Session.Store.Player.Health = hp
	}}
}

// WithEnemy adds an enemy with the given radius and speed.
func WithEnemy(x, y, radius, speed float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Session.Store.AddEnemy(Enemy{X: x, Y: y, Radius: radius, Speed: speed})
	}}
}

// WithBullet adds a live bullet.
func WithBullet(x, y, vx, vy, life float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Session.Store.AddBullet(Bullet{X: x, Y: y, VX: vx, VY: vy, Radius: BulletRadius, Life: life})
	}}
}

// NewTestSim constructs a TestSim from the given options in two passes:
//  1. Infrastructure (viewport, seed, verbose, timers), then the session
//  2. Entities placed into the new session
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		Width:  800,
		Height: 600,
		DT:     1.0 / 60.0,
		seed:   1,
		Pilot:  func(*Session) InputSnapshot { return InputSnapshot{} },
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	ts.Session = NewSession(Viewport{W: ts.Width, H: ts.Height}, ts.seed)
	ts.Session.Log = NewSimLog(0)
	ts.Session.Log.SetVerbose(ts.verbose)
	if ts.spawnSet {
		ts.Session.spawnTimer = ts.spawnDelay
	}
	for _, o := range opts {
		if o.kind == simOptEntity {
			o.fn(ts)
		}
	}
	return ts
}

// Step advances one step of dt with the pilot's input.
func (ts *TestSim) Step(dt float64) {
	ts.Session.Step(dt, ts.Pilot(ts.Session))
}

// RunSteps advances n fixed steps.
func (ts *TestSim) RunSteps(n int) {
	for i := 0; i < n; i++ {
		ts.Step(ts.DT)
	}
}

// RunFor advances at least the given simulated seconds in fixed steps.
func (ts *TestSim) RunFor(seconds float64) {
	steps := int(seconds/ts.DT + 0.5)
	ts.RunSteps(steps)
}

// RunUntil advances up to maxSteps, stopping early once predicate holds.
// Returns the number of steps taken when it held, or -1.
func (ts *TestSim) RunUntil(predicate func(*Session) bool, maxSteps int) int {
	for i := 1; i <= maxSteps; i++ {
		ts.Step(ts.DT)
		if predicate(ts.Session) {
			return i
		}
	}
	return -1
}
