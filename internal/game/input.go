package game

import "sync"

// Key is a platform-neutral key code. Platforms translate their native key
// events into these codes before feeding the Sampler.
type Key string

const (
	KeyW          Key = "KeyW"
	KeyA          Key = "KeyA"
	KeyS          Key = "KeyS"
	KeyD          Key = "KeyD"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeySpace      Key = "Space"
	KeyEnter      Key = "Enter"
)

// FireKey is the key that fires while held.
const FireKey = KeySpace

// InputSnapshot is the per-frame intent read from the Sampler.
type InputSnapshot struct {
	DirX, DirY float64 // unit vector or zero
	AimX, AimY float64 // pointer position in viewport coordinates
	Fire       bool
}

// Sampler holds the latest raw input state. Platform callbacks write to it at
// any time; the frame driver reads it once per frame.
type Sampler struct {
	mu       sync.Mutex
	held     map[Key]bool
	pointerX float64
	pointerY float64
	pointer  bool
}

// NewSampler creates an empty sampler.
func NewSampler() *Sampler {
	return &Sampler{held: make(map[Key]bool)}
}

// KeyDown marks k as held.
func (s *Sampler) KeyDown(k Key) {
	s.mu.Lock()
	s.held[k] = true
	s.mu.Unlock()
}

// KeyUp marks k as released.
func (s *Sampler) KeyUp(k Key) {
	s.mu.Lock()
	delete(s.held, k)
	s.mu.Unlock()
}

// PointerMove records the pointer position.
func (s *Sampler) PointerMove(x, y float64) {
	s.mu.Lock()
	s.pointerX, s.pointerY = x, y
	s.mu.Unlock()
}

// PointerDown marks the pointer button as held.
func (s *Sampler) PointerDown() {
	s.mu.Lock()
	s.pointer = true
	s.mu.Unlock()
}

// PointerUp marks the pointer button as released.
func (s *Sampler) PointerUp() {
	s.mu.Lock()
	s.pointer = false
	s.mu.Unlock()
}

// ReleaseAll drops every held key and the pointer button, e.g. on focus loss.
func (s *Sampler) ReleaseAll() {
	s.mu.Lock()
	clear(s.held)
	s.pointer = false
	s.mu.Unlock()
}

// Held reports whether k is currently held.
func (s *Sampler) Held(k Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.held[k]
}

// Snapshot reads the current state without draining it.
func (s *Sampler) Snapshot() InputSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var dx, dy float64
	if s.held[KeyW] || s.held[KeyArrowUp] {
		dy--
	}
	if s.held[KeyS] || s.held[KeyArrowDown] {
		dy++
	}
	if s.held[KeyA] || s.held[KeyArrowLeft] {
		dx--
	}
	if s.held[KeyD] || s.held[KeyArrowRight] {
		dx++
	}
	dx, dy = normalize(dx, dy)

	return InputSnapshot{
		DirX: dx,
		DirY: dy,
		AimX: s.pointerX,
		AimY: s.pointerY,
		Fire: s.held[FireKey] || s.pointer,
	}
}
